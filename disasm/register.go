package disasm

// wReg/xReg name the 32-bit and 64-bit general-purpose register views for
// numbers 0-30. Number 31 is handled separately since it names either the
// zero register or the stack pointer depending on context.
var wReg = [...]string{
	"w0", "w1", "w2", "w3", "w4", "w5", "w6", "w7",
	"w8", "w9", "w10", "w11", "w12", "w13", "w14", "w15",
	"w16", "w17", "w18", "w19", "w20", "w21", "w22", "w23",
	"w24", "w25", "w26", "w27", "w28", "w29", "w30",
}

var xReg = [...]string{
	"x0", "x1", "x2", "x3", "x4", "x5", "x6", "x7",
	"x8", "x9", "x10", "x11", "x12", "x13", "x14", "x15",
	"x16", "x17", "x18", "x19", "x20", "x21", "x22", "x23",
	"x24", "x25", "x26", "x27", "x28", "x29", "lr",
}

// shiftNames indexes the two-bit SHIFT field: lsl, lsr, asr, ror.
var shiftNames = [...]string{"lsl", "lsr", "asr", "ror"}

// extendNames indexes the three-bit OPTION field used by extended-register
// arithmetic: uxtb, uxth, uxtw, uxtx, sxtb, sxth, sxtw, sxtx.
var extendNames = [...]string{
	"uxtb", "uxth", "uxtw", "uxtx",
	"sxtb", "sxth", "sxtw", "sxtx",
}

// wRegName names a 32-bit register, rendering number 31 as wsp when sp is
// true and wzr otherwise.
func wRegName(num int, sp bool) string {
	if num == 31 {
		if sp {
			return "wsp"
		}
		return "wzr"
	}
	return wReg[num]
}

// xRegName names a 64-bit register, rendering number 31 as sp when sp is
// true and xzr otherwise.
func xRegName(num int, sp bool) string {
	if num == 31 {
		if sp {
			return "sp"
		}
		return "xzr"
	}
	return xReg[num]
}

// regName picks the 32- or 64-bit view of a register number according to
// is64, applying the sp-vs-zero-register rule at number 31.
func regName(is64 bool, num int, sp bool) string {
	if is64 {
		return xRegName(num, sp)
	}
	return wRegName(num, sp)
}
