package disasm

// table is the authored, ordered instruction table. First-match-wins:
// entry order is a semantic commitment, not a convenience — more specific
// patterns (aliases) are placed before the more general forms they
// overlap, exactly as the original disassembler orders them (e.g. the
// to/from-sp "mov" precedes the general "add immediate", and the
// bitmask-immediate "orr" is where the MOV(bitmask) alias is selected at
// format time, never by table order, since both share one entry).
//
// Each entry's Format is compiled once by Init (see decode.go) into a
// Mask/Pattern/Tokens triple; the fields below are the authored source of
// truth and are never touched afterward.
var table = []InstructionEntry{
	// --- shifted-register / immediate arithmetic (TYPE_01) ---
	{Mnemonic: "add", Format: "SF(1)|0001011|SHIFT(2)|0|RM(5)|IMM(6)|RN(5)|RD(5)", Type: TypeShiftedReg},
	{Mnemonic: "mov", Format: "SF(1)|001000100000000000000|RN(5)|RD(5)", Type: TypeShiftedReg, Flags: RdSP | RnSP}, // mov (to/from sp)
	{Mnemonic: "add", Format: "SF(1)|0010001|SHIFT(2)|IMM(12)|RN(5)|RD(5)", Type: TypeShiftedReg, Flags: RdSP | RnSP}, // add immediate
	{Mnemonic: "cmn", Format: "SF(1)|0101011|SHIFT(2)|0|RM(5)|IMM(6)|RN(5)|11111", Type: TypeShiftedReg},
	{Mnemonic: "adds", Format: "SF(1)|0101011|SHIFT(2)|0|RM(5)|IMM(6)|RN(5)|RD(5)", Type: TypeShiftedReg},
	{Mnemonic: "neg", Format: "SF(1)|1001011|SHIFT(2)|0|RM(5)|IMM(6)|11111|RD(5)", Type: TypeShiftedReg},
	{Mnemonic: "sub", Format: "SF(1)|1001011|SHIFT(2)|0|RM(5)|IMM(6)|RN(5)|RD(5)", Type: TypeShiftedReg},
	{Mnemonic: "sub", Format: "SF(1)|1010001|SHIFT(2)|IMM(12)|RN(5)|RD(5)", Type: TypeShiftedReg, Flags: RdSP | RnSP}, // sub immediate
	{Mnemonic: "cmp", Format: "SF(1)|1101011|SHIFT(2)|0|RM(5)|IMM(6)|RN(5)|11111", Type: TypeShiftedReg},
	{Mnemonic: "negs", Format: "SF(1)|1101011|SHIFT(2)|0|RM(5)|IMM(6)|11111|RD(5)", Type: TypeShiftedReg},
	{Mnemonic: "subs", Format: "SF(1)|1101011|SHIFT(2)|0|RM(5)|IMM(6)|RN(5)|RD(5)", Type: TypeShiftedReg},
	{Mnemonic: "mvn", Format: "SF(1)|0101010|SHIFT(2)|1|RM(5)|IMM(6)|11111|RD(5)", Type: TypeShiftedReg, Flags: ShiftROR},
	{Mnemonic: "orn", Format: "SF(1)|0101010|SHIFT(2)|1|RM(5)|IMM(6)|RN(5)|RD(5)", Type: TypeShiftedReg, Flags: ShiftROR},
	{Mnemonic: "mov", Format: "SF(1)|0101010000|RM(5)|000000|11111|RD(5)", Type: TypeShiftedReg}, // mov register
	{Mnemonic: "orr", Format: "SF(1)|0101010|SHIFT(2)|0|RM(5)|IMM(6)|RN(5)|RD(5)", Type: TypeShiftedReg, Flags: ShiftROR},
	{Mnemonic: "and", Format: "SF(1)|0001010|SHIFT(2)|0|RM(5)|IMM(6)|RN(5)|RD(5)", Type: TypeShiftedReg, Flags: ShiftROR},
	{Mnemonic: "tst", Format: "SF(1)|1101010|SHIFT(2)|0|RM(5)|IMM(6)|RN(5)|11111", Type: TypeShiftedReg, Flags: ShiftROR},
	{Mnemonic: "ands", Format: "SF(1)|1101010|SHIFT(2)|0|RM(5)|IMM(6)|RN(5)|RD(5)", Type: TypeShiftedReg, Flags: ShiftROR},
	{Mnemonic: "bic", Format: "SF(1)|0001010|SHIFT(2)|1|RM(5)|IMM(6)|RN(5)|RD(5)", Type: TypeShiftedReg, Flags: ShiftROR},
	{Mnemonic: "bics", Format: "SF(1)|1101010|SHIFT(2)|1|RM(5)|IMM(6)|RN(5)|RD(5)", Type: TypeShiftedReg, Flags: ShiftROR},
	{Mnemonic: "eon", Format: "SF(1)|1001010|SHIFT(2)|1|RM(5)|IMM(6)|RN(5)|RD(5)", Type: TypeShiftedReg, Flags: ShiftROR},
	{Mnemonic: "eor", Format: "SF(1)|1001010|SHIFT(2)|0|RM(5)|IMM(6)|RN(5)|RD(5)", Type: TypeShiftedReg, Flags: ShiftROR},

	// --- extended-register arithmetic (TYPE_04) ---
	{Mnemonic: "add", Format: "SF(1)|0001011001|RM(5)|OPTION(3)|IMM(3)|RN(5)|RD(5)", Type: TypeExtendedReg, Flags: RdSP},
	{Mnemonic: "cmn", Format: "SF(1)|0101011001|RM(5)|OPTION(3)|IMM(3)|RN(5)|11111", Type: TypeExtendedReg},
	{Mnemonic: "adds", Format: "SF(1)|0101011001|RM(5)|OPTION(3)|IMM(3)|RN(5)|RD(5)", Type: TypeExtendedReg},
	{Mnemonic: "sub", Format: "SF(1)|1001011001|RM(5)|OPTION(3)|IMM(3)|RN(5)|RD(5)", Type: TypeExtendedReg, Flags: RdSP},
	{Mnemonic: "cmp", Format: "SF(1)|1101011001|RM(5)|OPTION(3)|IMM(3)|RN(5)|11111", Type: TypeExtendedReg},
	{Mnemonic: "subs", Format: "SF(1)|1101011001|RM(5)|OPTION(3)|IMM(3)|RN(5)|RD(5)", Type: TypeExtendedReg},

	// --- bitmask-immediate logical family (TYPE_05) ---
	// orr's entry is also the "mov (bitmask immediate)" alias: TYPE_05's
	// formatter chooses the mnemonic at format time via moveWidePreferred,
	// not via a second table entry, so it must precede nothing — there is
	// no separate "orr" general-form entry to shadow.
	{Mnemonic: "orr", Format: "SF(1)|01100100|N(1)|IMMR(6)|IMMS(6)|RN(5)|RD(5)", Type: TypeBitmaskImm, Flags: RdSP},
	{Mnemonic: "tst", Format: "SF(1)|11100100|N(1)|IMMR(6)|IMMS(6)|RN(5)|11111", Type: TypeBitmaskImm},
	{Mnemonic: "ands", Format: "SF(1)|11100100|N(1)|IMMR(6)|IMMS(6)|RN(5)|RD(5)", Type: TypeBitmaskImm},
	{Mnemonic: "and", Format: "SF(1)|00100100|N(1)|IMMR(6)|IMMS(6)|RN(5)|RD(5)", Type: TypeBitmaskImm, Flags: RdSP},
	{Mnemonic: "eor", Format: "SF(1)|10100100|N(1)|IMMR(6)|IMMS(6)|RN(5)|RD(5)", Type: TypeBitmaskImm, Flags: RdSP},

	// --- load/store (TYPE_02) ---
	{Mnemonic: "ldr", Format: "1|SF(1)|111000010|IMM(9)|OPTION(2)|RN(5)|RT(5)", Type: TypeLoadStore, Flags: SignExt}, // immediate post/pre-index
	{Mnemonic: "ldr", Format: "1|SF(1)|11100101|IMM(12)|RN(5)|RT(5)", Type: TypeLoadStore},                          // immediate unsigned
	{Mnemonic: "ldr", Format: "1|SF(1)|111000011|RM(5)|OPTION(3)|SCALE(1)|10|RN(5)|RT(5)", Type: TypeLoadStore},     // register
	{Mnemonic: "ldrb", Format: "00|111000010|IMM(9)|OPTION(2)|RN(5)|RT(5)", Type: TypeLoadStore, Flags: SignExt | SF32},
	{Mnemonic: "ldrb", Format: "00|11100101|IMM(12)|RN(5)|RT(5)", Type: TypeLoadStore, Flags: SF32},
	{Mnemonic: "ldrb", Format: "00|111000011|RM(5)|OPTION(3)|SCALE(1)|10|RN(5)|RT(5)", Type: TypeLoadStore, Flags: SF32},
	{Mnemonic: "ldrh", Format: "01|111000010|IMM(9)|OPTION(2)|RN(5)|RT(5)", Type: TypeLoadStore, Flags: SignExt | SF32},
	{Mnemonic: "ldrh", Format: "01|11100101|IMM(12)|RN(5)|RT(5)", Type: TypeLoadStore, Flags: SF32},
	{Mnemonic: "ldrh", Format: "01|111000011|RM(5)|OPTION(3)|SCALE(1)|10|RN(5)|RT(5)", Type: TypeLoadStore, Flags: SF32},
	{Mnemonic: "ldrsb", Format: "001110001|SF(1)|0|IMM(9)|OPTION(2)|RN(5)|RT(5)", Type: TypeLoadStore, Flags: SignExt | SFInv},
	{Mnemonic: "ldrsb", Format: "001110011|SF(1)|IMM(12)|RN(5)|RT(5)", Type: TypeLoadStore, Flags: SFInv},
	{Mnemonic: "ldrsb", Format: "001110001|SF(1)|1|RM(5)|OPTION(3)|SCALE(1)|10|RN(5)|RT(5)", Type: TypeLoadStore, Flags: SFInv},
	{Mnemonic: "ldrsh", Format: "011110001|SF(1)|0|IMM(9)|OPTION(2)|RN(5)|RT(5)", Type: TypeLoadStore, Flags: SignExt | SFInv},
	{Mnemonic: "ldrsh", Format: "011110011|SF(1)|IMM(12)|RN(5)|RT(5)", Type: TypeLoadStore, Flags: SFInv},
	{Mnemonic: "ldrsh", Format: "011110001|SF(1)|1|RM(5)|OPTION(3)|SCALE(1)|10|RN(5)|RT(5)", Type: TypeLoadStore, Flags: SFInv},
	{Mnemonic: "ldrsw", Format: "10111000100|IMM(9)|OPTION(2)|RN(5)|RT(5)", Type: TypeLoadStore, Flags: SignExt},
	{Mnemonic: "ldrsw", Format: "1011100110|IMM(12)|RN(5)|RT(5)", Type: TypeLoadStore},
	{Mnemonic: "ldrsw", Format: "10111000101|RM(5)|OPTION(3)|SCALE(1)|10|RN(5)|RT(5)", Type: TypeLoadStore},
	{Mnemonic: "ldrsw", Format: "10011000|IMM(19)|RT(5)", Type: TypeLiteral, Flags: SignExt | Literal | Mult4},
	{Mnemonic: "str", Format: "1|SF(1)|111000000|IMM(9)|OPTION(2)|RN(5)|RT(5)", Type: TypeLoadStore, Flags: SignExt},
	{Mnemonic: "str", Format: "1|SF(1)|11100100|IMM(12)|RN(5)|RT(5)", Type: TypeLoadStore},
	{Mnemonic: "str", Format: "1|SF(1)|111000001|RM(5)|OPTION(3)|SCALE(1)|10|RN(5)|RT(5)", Type: TypeLoadStore},
	{Mnemonic: "strb", Format: "00111000000|IMM(9)|OPTION(2)|RN(5)|RT(5)", Type: TypeLoadStore, Flags: SignExt | SF32},
	{Mnemonic: "strb", Format: "0011100100|IMM(12)|RN(5)|RT(5)", Type: TypeLoadStore, Flags: SF32},
	{Mnemonic: "strb", Format: "00111000001|RM(5)|OPTION(3)|SCALE(1)|10|RN(5)|RT(5)", Type: TypeLoadStore, Flags: SF32},
	{Mnemonic: "strh", Format: "01111000000|IMM(9)|OPTION(2)|RN(5)|RT(5)", Type: TypeLoadStore, Flags: SF32 | SignExt},
	{Mnemonic: "strh", Format: "0111100100|IMM(12)|RN(5)|RT(5)", Type: TypeLoadStore, Flags: SF32},
	{Mnemonic: "strh", Format: "01111000001|RM(5)|OPTION(3)|SCALE(1)|10|RN(5)|RT(5)", Type: TypeLoadStore, Flags: SF32},

	// --- PC-relative literal load (TYPE_03 / TypeLiteral) ---
	{Mnemonic: "ldr", Format: "0|SF(1)|011000|IMM(19)|RT(5)", Type: TypeLiteral, Flags: SignExt | Literal | Mult4},

	// --- supplemented: load/store pair, exercising RT2/MULT_SCALE (SPEC_FULL.md §4) ---
	// ldp/stp: OP Rt, Rt2, [Xn|sp {, #imm}] | [Xn|sp], #imm | [Xn|sp, #imm]!
	// One entry per mnemonic covers all three addressing-mode variants: the
	// OPTION token (00 = signed offset, 01 = post-index, 11 = pre-index)
	// drives the same pre/inside branch formatLoadStore already uses for
	// the single-register immediate post/pre-index forms above.
	{Mnemonic: "ldp", Format: "SF(1)|010100|OPTION(2)|1|IMM(7)|RT2(5)|RN(5)|RT(5)", Type: TypeLoadStore, Flags: MultScale | SignExt},
	{Mnemonic: "stp", Format: "SF(1)|010100|OPTION(2)|0|IMM(7)|RT2(5)|RN(5)|RT(5)", Type: TypeLoadStore, Flags: MultScale | SignExt},

	// --- supplemented: PC-relative branch, exercising LITERAL without a
	// register operand's own entry kind (kept TYPE_03-shaped: RT is simply
	// absent, the formatter prints only the bare literal — see formatLiteral
	// in decode.go).
	{Mnemonic: "b", Format: "000101|IMM(26)", Type: TypeLiteral, Flags: SignExt | Literal | Mult4},
	{Mnemonic: "bl", Format: "100101|IMM(26)", Type: TypeLiteral, Flags: SignExt | Literal | Mult4},
}

// Mult16 has no production table entry: no general-purpose (non-SIMD/FP)
// AArch64 encoding scales a literal/immediate by 16, and SIMD/FP encodings
// are explicitly out of scope (see spec's Non-goals). The flag and its
// formatter support are still implemented, the same way spec.md tolerates
// the reserved "idx" token; no table entry or test exercises them.
