package cpu

// OpcodeInfo describes one instruction's mnemonic and operand count, as
// exported for tooling (the assembler and disassembler) that needs the
// same opcode table the execution core dispatches from without
// duplicating it.
type OpcodeInfo struct {
	Name     string
	Operands int
}

// OpcodeTable returns a copy of the opcode->mnemonic/operand-count
// table Step() dispatches from, keyed by encoded opcode byte.
func OpcodeTable() map[byte]OpcodeInfo {
	out := make(map[byte]OpcodeInfo, len(opcodeTable))
	for op, def := range opcodeTable {
		out[op] = OpcodeInfo{Name: def.name, Operands: def.operands}
	}
	return out
}

// NoOperandMnemonics lists the opcodes whose operand count is zero and
// therefore skip the mode-byte fetch entirely (§4.2).
func NoOperandMnemonics() map[string]bool {
	out := make(map[string]bool)
	for _, def := range opcodeTable {
		if def.operands == 0 {
			out[def.name] = true
		}
	}
	return out
}

// registerNames is the authoritative name->code table for every
// register the prefixed-operand encoder can address (§6's complete
// register code table). P8/P9 are listed under their SP/FP aliases as
// well as their P-numbered names, all resolving to the same storage.
var registerNames = map[string]byte{
	"R0": RegR0 + 0, "R1": RegR0 + 1, "R2": RegR0 + 2, "R3": RegR0 + 3, "R4": RegR0 + 4,
	"R5": RegR0 + 5, "R6": RegR0 + 6, "R7": RegR0 + 7, "R8": RegR0 + 8, "R9": RegR0 + 9,

	"P0": RegP0 + 0, "P1": RegP0 + 1, "P2": RegP0 + 2, "P3": RegP0 + 3,
	"P4": RegP0 + 4, "P5": RegP0 + 5, "P6": RegP0 + 6, "P7": RegP0 + 7,
	"P8": RegSP, "SP": RegSP,
	"P9": RegFP, "FP": RegFP,

	"VX": RegVX, "VY": RegVY, "VM": RegVM, "VL": RegVL,

	"TT": RegTT, "TM": RegTM, "TC": RegTC, "TS": RegTS,

	"SA": RegSA, "SF": RegSF, "SV": RegSV, "SW": RegSW,
}

// RegisterCode looks up the encoder byte for a register mnemonic
// (case-sensitive, upper case, e.g. "R3", "SP", "VL").
func RegisterCode(name string) (byte, bool) {
	code, ok := registerNames[name]
	return code, ok
}

// RegisterName returns the canonical mnemonic for a register code,
// preferring P8/P9 over SP/FP so round-tripped disassembly reads the
// same as the general-purpose register file.
func RegisterName(code byte) (string, bool) {
	switch {
	case code >= RegR0 && code <= RegR0+9:
		return "R" + string(rune('0'+code-RegR0)), true
	case code >= RegP0 && code <= RegP0+7:
		return "P" + string(rune('0'+code-RegP0)), true
	case code == RegSP:
		return "P8", true
	case code == RegFP:
		return "P9", true
	case code == RegVX:
		return "VX", true
	case code == RegVY:
		return "VY", true
	case code == RegVM:
		return "VM", true
	case code == RegVL:
		return "VL", true
	case code == RegTT:
		return "TT", true
	case code == RegTM:
		return "TM", true
	case code == RegTC:
		return "TC", true
	case code == RegTS:
		return "TS", true
	case code == RegSA:
		return "SA", true
	case code == RegSF:
		return "SF", true
	case code == RegSV:
		return "SV", true
	case code == RegSW:
		return "SW", true
	}
	return "", false
}

// IsRRegisterName reports whether name is one of R0..R9 - the 8-bit
// general-purpose registers.
func IsRRegisterName(name string) bool {
	code, ok := registerNames[name]
	return ok && isRRegister(code)
}
