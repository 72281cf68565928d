package disasm

import (
	"fmt"
	"strings"
	"testing"
)

// fakeHost is a minimal disasm.Host backed by an in-memory word map and a
// strings.Builder sink, used to drive end-to-end Disasm scenarios without
// pulling in the hostio package.
type fakeHost struct {
	words map[uint32]uint32
	out   strings.Builder
}

func newFakeHost(words map[uint32]uint32) *fakeHost {
	return &fakeHost{words: words}
}

func (h *fakeHost) ReadWord(addr uint32) uint32 {
	return h.words[addr]
}

func (h *fakeHost) Printf(format string, args ...interface{}) {
	fmt.Fprintf(&h.out, format, args...)
}

func TestDisasmShiftedRegisterAdd(t *testing.T) {
	host := newFakeHost(map[uint32]uint32{0x1000: 0x8B010000})
	d := NewDecoder()

	next := d.Disasm(host, 0x1000, 0)

	if next != 0x1004 {
		t.Errorf("next address = %#x, want %#x", next, 0x1004)
	}
	if got := host.out.String(); got != "add\tx0, x0, x1\n" {
		t.Errorf("Disasm output = %q, want %q", got, "add\tx0, x0, x1\n")
	}
}

func TestDisasmBitmaskImmMovAlias(t *testing.T) {
	host := newFakeHost(map[uint32]uint32{0x2000: 0xB201F3E0})
	d := NewDecoder()

	d.Disasm(host, 0x2000, 0)

	want := "mov\tx0, #0xaaaaaaaaaaaaaaaa\n"
	if got := host.out.String(); got != want {
		t.Errorf("Disasm output = %q, want %q", got, want)
	}
}

func TestDisasmUnmappedWordIsUndefined(t *testing.T) {
	host := newFakeHost(map[uint32]uint32{0x3000: 0x00000000})
	d := NewDecoder()

	d.Disasm(host, 0x3000, 0)

	want := "undefined\t00000000\n"
	if got := host.out.String(); got != want {
		t.Errorf("Disasm output = %q, want %q", got, want)
	}
}

func TestDisasmAddImmediate(t *testing.T) {
	// add x0, x1, #1: SF(1)|0010001|SHIFT(2)|IMM(12)|RN(5)|RD(5), sf=1,
	// shift=00, imm=1, rn=x1, rd=x0. Word 0x91000420.
	var word uint32
	word |= 1 << 31         // SF=1 (64-bit)
	word |= 0b0010001 << 24 // family literal
	word |= 0b00 << 22      // SHIFT=00
	word |= uint32(1) << 10 // IMM=1
	word |= uint32(1) << 5  // RN=x1
	word |= uint32(0)       // RD=x0

	host := newFakeHost(map[uint32]uint32{0x7000: word})
	d := NewDecoder()

	d.Disasm(host, 0x7000, 0)

	want := "add\tx0, x1, #0x1\n"
	if got := host.out.String(); got != want {
		t.Errorf("Disasm output = %q, want %q", got, want)
	}
}

func TestDisasmLdrUnsignedOffset(t *testing.T) {
	// ldr x0, [x1]: 1|SF(1)|11100101|IMM(12)|RN(5)|RT(5), sf=1, imm=0,
	// rn=x1, rt=x0. Word 0xF9400020.
	var word uint32
	word |= 1 << 31          // literal leading bit
	word |= 1 << 30          // SF=1 (64-bit)
	word |= 0b11100101 << 22 // family literal
	word |= uint32(0) << 10  // IMM=0
	word |= uint32(1) << 5   // RN=x1
	word |= uint32(0)        // RT=x0

	host := newFakeHost(map[uint32]uint32{0x7100: word})
	d := NewDecoder()

	d.Disasm(host, 0x7100, 0)

	want := "ldr\tx0, [x1]\n"
	if got := host.out.String(); got != want {
		t.Errorf("Disasm output = %q, want %q", got, want)
	}
}

func TestDisasmLdrPostIndex(t *testing.T) {
	// ldr x0, [x1], #16: 1|SF(1)|111000010|IMM(9)|OPTION(2)|RN(5)|RT(5),
	// sf=1, imm=16, option=01 (post-index), rn=x1, rt=x0. Word 0xF8410420.
	var word uint32
	word |= 1 << 31           // literal leading bit
	word |= 1 << 30           // SF=1 (64-bit)
	word |= 0b111000010 << 21 // family literal
	word |= uint32(16) << 12  // IMM=16
	word |= uint32(1) << 10   // OPTION=01 (post-index)
	word |= uint32(1) << 5    // RN=x1
	word |= uint32(0)         // RT=x0

	host := newFakeHost(map[uint32]uint32{0x7200: word})
	d := NewDecoder()

	d.Disasm(host, 0x7200, 0)

	want := "ldr\tx0, [x1], #16\n"
	if got := host.out.String(); got != want {
		t.Errorf("Disasm output = %q, want %q", got, want)
	}
}

func TestDisasmLiteralLdr32Bit(t *testing.T) {
	// Word 0x18000040: 0|SF(1)|011000|IMM(19)|RT(5), sf=0 (w register),
	// imm19=2 -> Mult4 -> +8 bytes, rt=w0. This is the word spec.md §8's
	// fifth golden scenario names; bit31=0 puts it on the plain literal-ldr
	// entry rather than the bit31=1 ldrsw-literal entry, matching the
	// imm=2-then-<<2 arithmetic the scenario describes.
	var word uint32
	word |= 0 << 31          // literal leading bit (32/64-bit ldr, not ldrsw)
	word |= 0 << 30          // SF=0 (w0, 32-bit)
	word |= 0b011000 << 24   // family literal
	word |= uint32(2) << 5   // IMM19 = 2
	// RT = 0: left at its zero value.

	host := newFakeHost(map[uint32]uint32{0x7300: word})
	d := NewDecoder()

	d.Disasm(host, 0x7300, 0)

	want := "ldr\tw0, 0x7308\n"
	if got := host.out.String(); got != want {
		t.Errorf("Disasm output = %q, want %q", got, want)
	}
}

func TestDisasmLiteralLdr(t *testing.T) {
	// ldr x0, <label>: 0|SF(1)|011000|IMM(19)|RT(5), sf=1, imm19=2 -> +8 bytes.
	// bit31=0 (literal), SF=bit30, bits29-24="011000", IMM bits23-5 (19
	// bits), RT bits4-0.
	var word uint32
	word |= 1 << 30 // SF=1 (x0, 64-bit)
	word |= 0b011000 << 24
	word |= uint32(2) << 5 // IMM19 = 2
	// RT = 0, bit31 = 0: both left at their zero value.

	host := newFakeHost(map[uint32]uint32{0x4000: word})
	d := NewDecoder()

	d.Disasm(host, 0x4000, 0)

	want := "ldr\tx0, 0x4008\n"
	if got := host.out.String(); got != want {
		t.Errorf("Disasm output = %q, want %q", got, want)
	}
}

func TestDisasmLoadStorePairSignedOffset(t *testing.T) {
	// stp x1, x2, [x0, #16]: SF(1)|010100|OPTION(2)|0|IMM(7)|RT2(5)|RN(5)|RT(5)
	// OPTION=00 (signed offset); imm7 encodes a MultScale-shifted offset:
	// #16 / 8 == 2.
	var word uint32
	word |= 1 << 31        // SF=1
	word |= 0b010100 << 25 // family literal
	word |= 0 << 23        // OPTION = 00 (signed offset)
	word |= 0 << 22        // L = 0 (store)
	word |= uint32(2) << 15
	word |= uint32(2) << 10 // RT2 = x2
	word |= uint32(0) << 5  // RN = x0
	word |= uint32(1)       // RT = x1

	host := newFakeHost(map[uint32]uint32{0x5000: word})
	d := NewDecoder()

	d.Disasm(host, 0x5000, 0)

	want := "stp\tx1, x2, [x0, #16]\n"
	if got := host.out.String(); got != want {
		t.Errorf("Disasm output = %q, want %q", got, want)
	}
}

func TestDisasmLoadStorePairPostIndex(t *testing.T) {
	// ldp x1, x2, [x0], #16: same layout, OPTION=01 (post-index), L=1.
	var word uint32
	word |= 1 << 31
	word |= 0b010100 << 25
	word |= 1 << 23 // OPTION = 01 (post-index)
	word |= 1 << 22 // L = 1 (load)
	word |= uint32(2) << 15
	word |= uint32(2) << 10
	word |= uint32(0) << 5
	word |= uint32(1)

	host := newFakeHost(map[uint32]uint32{0x5100: word})
	d := NewDecoder()

	d.Disasm(host, 0x5100, 0)

	want := "ldp\tx1, x2, [x0], #16\n"
	if got := host.out.String(); got != want {
		t.Errorf("Disasm output = %q, want %q", got, want)
	}
}

func TestDisasmShiftedRegisterMovRegisterAlias(t *testing.T) {
	// mov x3, x5: SF(1)|0101010000|RM(5)|000000|11111|RD(5), an orr-with-
	// zr alias that table.go encodes as its own "mov register" entry.
	var word uint32
	word |= 1 << 31
	word |= 0b0101010000 << 21
	word |= uint32(5) << 16 // RM = x5
	word |= 0 << 10         // six zero bits
	word |= 0b11111 << 5    // RN = xzr (fixed)
	word |= uint32(3)       // RD = x3

	host := newFakeHost(map[uint32]uint32{0x6000: word})
	d := NewDecoder()

	d.Disasm(host, 0x6000, 0)

	want := "mov\tx3, x5\n"
	if got := host.out.String(); got != want {
		t.Errorf("Disasm output = %q, want %q", got, want)
	}
}

func TestMatchIsFirstMatchWins(t *testing.T) {
	Init()
	// mov (to/from sp) and add-immediate share an encoding space when
	// SHIFT/IMM are both zero; the authored table places "mov" first so it
	// wins the tie. Word: SF=1, RN=x2 (as sp), RD=x1, rest zero.
	var word uint32
	word |= 1 << 31
	word |= 0b001000100000000000000 << 10
	word |= uint32(2) << 5
	word |= uint32(1)

	e := match(word)
	if e == nil {
		t.Fatalf("expected a match")
	}
	if e.Mnemonic != "mov" {
		t.Errorf("first-match-wins violated: got mnemonic %q, want %q", e.Mnemonic, "mov")
	}
}
