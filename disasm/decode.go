package disasm

import (
	"fmt"
	"sync"
)

// Host is the set of callbacks a debugger or other embedder supplies to
// the decoder. ReadWord returns the little-endian 32-bit word at addr;
// failures are the host's problem, the decoder does not validate the
// returned value. Printf is a textual sink accepting positional
// substitutions; the decoder writes ASCII text and a trailing newline.
type Host interface {
	ReadWord(addr uint32) uint32
	Printf(format string, args ...interface{})
}

var initOnce sync.Once

// Init compiles every entry's format string into its Mask/Pattern/Tokens.
// It is idempotent and must complete before the first call to Disasm;
// NewDecoder calls it automatically, so embedders never need to call it
// directly unless they want compilation to happen at a predictable time
// (e.g. at process start, off the decode path).
func Init() {
	initOnce.Do(func() {
		for i := range table {
			compileEntry(&table[i])
		}
	})
}

// Decoder decodes AArch64 instruction words against the compiled
// instruction table. A Decoder has no mutable state of its own — the
// table it scans is the package-level singleton compiled by Init — so a
// single Decoder value may be shared and called concurrently from
// multiple goroutines once Init has run.
type Decoder struct{}

// NewDecoder returns a Decoder, compiling the instruction table on first
// use.
func NewDecoder() *Decoder {
	Init()
	return &Decoder{}
}

// Disasm decodes one instruction at addr, writes its assembly text (or
// "undefined\t<hex>") through host.Printf, and returns addr + 4. altfmt is
// reserved for host ABI compatibility and is accepted but never consumed.
func (d *Decoder) Disasm(host Host, addr uint32, altfmt int) uint32 {
	insn := host.ReadWord(addr)

	entry := match(insn)
	if entry == nil {
		host.Printf("undefined\t%08x\n", insn)
		return addr + 4
	}

	if !format(host, entry, insn, addr) {
		host.Printf("undefined\t%08x\n", insn)
	}

	return addr + 4
}

// match scans the table in source order and returns the first entry
// whose mask/pattern matches insn, or nil if none does.
func match(insn uint32) *InstructionEntry {
	for i := range table {
		e := &table[i]
		if e.valid() && insn&e.Mask == e.Pattern {
			return e
		}
	}
	return nil
}

// extracted bundles a token's presence and raw unsigned value.
type extracted struct {
	present bool
	value   uint32
}

// extract reads token name from insn per e's compiled token list. The
// zero value (present == false) means the token is not part of this
// entry's encoding — never an error.
func extract(e *InstructionEntry, insn uint32, name string) extracted {
	t := e.findToken(name)
	if t == nil {
		return extracted{}
	}
	mask := uint32(1)<<uint(t.Len) - 1
	return extracted{present: true, value: (insn >> uint(t.Pos)) & mask}
}

// extractSigned is extract's sign-extending counterpart, used for IMM
// when SignExt is in effect.
func extractSigned(e *InstructionEntry, insn uint32, name string) (int32, bool) {
	t := e.findToken(name)
	if t == nil {
		return 0, false
	}
	mask := uint32(1)<<uint(t.Len) - 1
	v := (insn >> uint(t.Pos)) & mask
	if v&(1<<uint(t.Len-1)) != 0 {
		v |= ^mask
	}
	return int32(v), true
}

// format dispatches a matched entry to its print-type formatter. It
// returns false when the entry hits one of the reserved/invalid-encoding
// paths from spec §7 category 4, in which case the caller falls through
// to "undefined".
func format(host Host, e *InstructionEntry, insn uint32, loc uint32) bool {
	sf := 1
	if sfTok := extract(e, insn, "SF"); sfTok.present {
		sf = int(sfTok.value)
	}
	if e.Flags&SF32 != 0 {
		sf = 0
	}
	if e.Flags&SFInv != 0 {
		sf = 1 - sf
	}
	is64 := sf == 1

	signExt := false
	if signTok := extract(e, insn, "SIGN"); signTok.present {
		signExt = signTok.value == 0
	}
	if e.Flags&SignExt != 0 {
		signExt = true
	}

	var imm int64
	if signExt {
		v, ok := extractSigned(e, insn, "IMM")
		if ok {
			imm = int64(v)
		}
	} else {
		v := extract(e, insn, "IMM")
		imm = int64(v.value)
	}

	switch {
	case e.Flags&Mult4 != 0:
		imm <<= 2
	case e.Flags&Mult16 != 0:
		imm <<= 4
	case e.Flags&MultScale != 0:
		imm <<= uint(2 + sf)
	}

	switch e.Type {
	case TypeShiftedReg:
		return formatShiftedReg(host, e, insn, is64, imm)
	case TypeLoadStore:
		return formatLoadStore(host, e, insn, is64, sf, imm, signExt)
	case TypeLiteral:
		return formatLiteral(host, e, insn, is64, loc, imm)
	case TypeExtendedReg:
		return formatExtendedReg(host, e, insn, is64, sf, imm)
	case TypeBitmaskImm:
		return formatBitmaskImm(host, e, insn, sf)
	default:
		return false
	}
}

// regOf names the register extracted for tok (e.g. "RD") under the
// RD_SP/RT_SP/RN_SP/RM_SP flag matching tok.
func regOf(e *InstructionEntry, insn uint32, is64 bool, tok string, spFlag OptionFlags) (name string, present bool) {
	v := extract(e, insn, tok)
	if !v.present {
		return "", false
	}
	return regName(is64, int(v.value), e.Flags&spFlag != 0), true
}

func formatShiftedReg(host Host, e *InstructionEntry, insn uint32, is64 bool, imm int64) bool {
	rd, rdPresent := regOf(e, insn, is64, "RD", RdSP)
	rn, rnPresent := regOf(e, insn, is64, "RN", RnSP)
	rm, rmPresent := regOf(e, insn, is64, "RM", RmSP)

	shift := extract(e, insn, "SHIFT")
	if shift.present && shift.value == 3 && e.Flags&ShiftROR == 0 {
		return false
	}

	host.Printf("%s\t", e.Mnemonic)

	switch {
	case rdPresent && rnPresent:
		host.Printf("%s, %s", rd, rn)
	case rdPresent:
		host.Printf("%s", rd)
	default:
		host.Printf("%s", rn)
	}

	if rmPresent {
		host.Printf(", %s", rm)
		if imm != 0 {
			host.Printf(", %s #%d", shiftNames[shift.value], imm)
		}
	} else {
		if imm != 0 || shift.value != 0 {
			host.Printf(", #0x%x", imm)
		}
		if shift.value != 0 {
			host.Printf(" lsl #12")
		}
	}

	host.Printf("\n")
	return true
}

func formatLoadStore(host Host, e *InstructionEntry, insn uint32, is64 bool, sf int, imm int64, signExt bool) bool {
	rt, rtOK := regOf(e, insn, is64, "RT", RtSP)
	rnTok := extract(e, insn, "RN")
	if !rtOK || !rnTok.present {
		diagnosticf("disasm: %s: missing mandatory RT/RN token", e.Mnemonic)
		return false
	}
	// The base register is always rendered in 64-bit sp form for the
	// memory operand, regardless of any RN_SP authoring on the entry.
	rnBase := xRegName(int(rnTok.value), true)

	option := extract(e, insn, "OPTION")
	scale := extract(e, insn, "SCALE")
	rm, rmOK := regOf(e, insn, option.value&1 != 0, "RM", RmSP)

	if !rmOK {
		// Every non-sign-extended form without RM is rescaled by the SIZE
		// field in the word's top two bits (the unsigned-immediate-offset
		// ldr/ldrb/ldrh/... forms). A MultScale entry without SignExt would
		// get this shift on top of format's 2+SF shift; the ldp/stp entries
		// carry SignExt, so for them only the MultScale shift applies.
		if !signExt {
			sizeShift := (insn >> 30) & 0x3
			imm <<= int64(sizeShift)
			option = extracted{present: true, value: 0}
		}

		var pre, inside bool
		switch option.value {
		case 0:
			pre, inside = false, true
		case 1:
			pre, inside = false, false
		default:
			pre, inside = true, true
		}

		rt2, rt2OK := regOf(e, insn, is64, "RT2", RtSP)
		rs, rsOK := regOf(e, insn, is64, "RS", 0)

		host.Printf("%s\t", e.Mnemonic)
		if rsOK {
			host.Printf("%s, ", rs)
		}
		host.Printf("%s, ", rt)
		if rt2OK {
			host.Printf("%s, ", rt2)
		}

		if inside {
			host.Printf("[%s", rnBase)
			if imm != 0 {
				host.Printf(", #%d", imm)
			}
			host.Printf("]")
		} else {
			host.Printf("[%s]", rnBase)
			if imm != 0 {
				host.Printf(", #%d", imm)
			}
		}
		if pre {
			host.Printf("!")
		}
	} else {
		host.Printf("%s\t%s, [%s, %s", e.Mnemonic, rt, rnBase, rm)

		var amount int64
		if scale.value != 0 {
			amount = int64((insn >> 30) & 0x3)
		}

		switch option.value {
		case 2:
			host.Printf(", uxtw #%d", amount)
		case 3:
			if scale.value != 0 {
				host.Printf(", lsl #%d", amount)
			}
		case 6:
			host.Printf(", sxtw #%d", amount)
		case 7:
			host.Printf(", sxtx #%d", amount)
		default:
			host.Printf(", rsv")
		}
		host.Printf("]")
	}

	host.Printf("\n")
	return true
}

func formatLiteral(host Host, e *InstructionEntry, insn uint32, is64 bool, loc uint32, imm int64) bool {
	rt, rtOK := regOf(e, insn, is64, "RT", RtSP)

	host.Printf("%s\t", e.Mnemonic)
	if rtOK {
		host.Printf("%s, ", rt)
	}

	if e.Flags&Literal != 0 {
		host.Printf("0x%x", int64(loc)+imm)
	} else {
		host.Printf("#%d", imm)
	}

	host.Printf("\n")
	return true
}

func formatExtendedReg(host Host, e *InstructionEntry, insn uint32, is64 bool, sf int, imm int64) bool {
	rnTok := extract(e, insn, "RN")
	rmTok := extract(e, insn, "RM")
	option := extract(e, insn, "OPTION")
	rdTok := extract(e, insn, "RD")

	rdIsSP := rdTok.present && rdTok.value == 31
	rnIsSP := rnTok.value == 31
	lslPreferredUXTW := sf == 0 && option.value == 2
	lslPreferredUXTX := sf == 1 && option.value == 3
	lslPreferred := (rdIsSP || rnIsSP) && (lslPreferredUXTW || lslPreferredUXTX)

	var extend string
	switch {
	case lslPreferred && imm == 0:
		extend = ""
	case lslPreferred:
		extend = "lsl"
	default:
		extend = extendNames[option.value]
	}

	host.Printf("%s\t", e.Mnemonic)
	if rdTok.present {
		host.Printf("%s, ", regName(is64, int(rdTok.value), true))
	}
	host.Printf("%s, ", regName(is64, int(rnTok.value), true))

	rmWidth := is64 && (option.value == 3 || option.value == 7)
	host.Printf("%s", regName(rmWidth, int(rmTok.value), false))

	if extend != "" {
		host.Printf(", %s #%d", extend, imm)
	}

	host.Printf("\n")
	return true
}

func formatBitmaskImm(host Host, e *InstructionEntry, insn uint32, sf int) bool {
	rdTok := extract(e, insn, "RD")
	rn := extract(e, insn, "RN")
	n := extract(e, insn, "N")
	immr := extract(e, insn, "IMMR")
	imms := extract(e, insn, "IMMS")

	if sf == 0 && n.value != 0 {
		return false
	}

	value, ok := decodeBitmask(sf, n.value, imms.value, immr.value, true)
	if !ok {
		return false
	}

	movPreferred := e.Mnemonic == "orr" && rn.value == 31 &&
		!moveWidePreferred(sf, n.value, imms.value, immr.value)

	mnemonic := e.Mnemonic
	if movPreferred {
		mnemonic = "mov"
	}
	host.Printf("%s\t", mnemonic)

	if rdTok.present {
		host.Printf("%s, ", regName(sf == 1, int(rdTok.value), e.Flags&RdSP != 0))
	}
	if !movPreferred {
		host.Printf("%s, ", regName(sf == 1, int(rn.value), false))
	}

	host.Printf("#0x%s\n", fmt.Sprintf("%x", value))
	return true
}
