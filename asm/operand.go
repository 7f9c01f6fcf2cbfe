package asm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/starfighterlily/nova16/cpu"
)

// operandClass mirrors §4.2's addressing classes plus the two
// memory-reference sub-kinds the classifier distinguishes before a
// class-3 operand's indexed/direct bits are known.
type operandClass int

const (
	classRegister operandClass = iota
	classImmediate8
	classImmediate16
	classRegisterIndirect
	classRegisterIndexed
	classDirect
)

// operandRef is one classified, not-yet-resolved operand: either a
// literal value, a register, or a symbol reference to be resolved in
// pass 2.
type operandRef struct {
	class operandClass

	regName   string // classRegister, classRegisterIndirect, classRegisterIndexed
	indexLit  int    // literal index/offset byte for classRegisterIndexed
	indexSet  bool

	addrLit  uint16 // literal address for classDirect
	addrSet  bool

	imm    uint16 // resolved/literal immediate value
	symbol string // unresolved symbol name, if any
	hiByte bool   // SYMBOL: (high byte)
	loByte bool   // :SYMBOL (low byte)

	// indexedDirectReg is set when the source wrote `[0xNNNN+reg]`, the
	// one memory form the assembler recognizes but rejects (§4.5/§7).
	indexedDirectReg string
}

// encodedSize returns the number of bytes this operand contributes to
// the instruction once encoded, per §4.5's pass-1 sizing table.
func (o operandRef) encodedSize() int {
	switch o.class {
	case classRegister:
		return 1
	case classImmediate8:
		return 1
	case classImmediate16:
		return 2
	case classRegisterIndirect:
		return 1
	case classRegisterIndexed:
		return 2
	case classDirect:
		return 2
	}
	return 0
}

// addrModeBits returns this operand's 2-bit addressing class (§4.2's
// mode-byte field) plus, for class 3 (memory), whether the shared
// indexed/direct flags it requires are indexed, direct, or both.
func (o operandRef) addrModeBits() (class int, indexed, direct bool) {
	switch o.class {
	case classRegister:
		return 0, false, false
	case classImmediate8:
		return 1, false, false
	case classImmediate16:
		return 2, false, false
	case classRegisterIndirect:
		return 3, false, false
	case classRegisterIndexed:
		return 3, true, false
	case classDirect:
		return 3, false, true
	}
	return 0, false, false
}

var (
	bracketRe    = regexp.MustCompile(`^\[(.+)\]$`)
	regOffsetRe  = regexp.MustCompile(`^(\w+)\s*([+-])\s*(\w+)$`)
	hiByteRe     = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_-]*):$`)
	loByteRe     = regexp.MustCompile(`^:([A-Za-z_][A-Za-z0-9_-]*)$`)
)

// parseOperand classifies a single raw operand token per §4.5's
// operand classifier. It never resolves symbols to addresses (pass 1
// doesn't have them yet); symbol references are sized by syntax alone.
func parseOperand(tok string) (operandRef, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return operandRef{}, fmt.Errorf("empty operand")
	}

	if m := bracketRe.FindStringSubmatch(tok); m != nil {
		return parseMemoryOperand(strings.TrimSpace(m[1]))
	}

	if m := hiByteRe.FindStringSubmatch(tok); m != nil {
		return operandRef{class: classImmediate8, symbol: m[1], hiByte: true}, nil
	}
	if m := loByteRe.FindStringSubmatch(tok); m != nil {
		return operandRef{class: classImmediate8, symbol: m[1], loByte: true}, nil
	}

	if _, ok := cpu.RegisterCode(strings.ToUpper(tok)); ok {
		return operandRef{class: classRegister, regName: strings.ToUpper(tok)}, nil
	}

	if n, ok := parseNumber(tok); ok {
		if n <= 127 {
			return operandRef{class: classImmediate8, imm: uint16(n)}, nil
		}
		return operandRef{class: classImmediate16, imm: uint16(n)}, nil
	}

	if !isIdentifier(tok) {
		return operandRef{}, fmt.Errorf("malformed operand %q", tok)
	}
	return operandRef{class: classImmediate16, symbol: tok}, nil
}

// parseMemoryOperand classifies the contents of a `[...]` operand into
// one of REGISTER_INDIRECT, REGISTER_INDEXED, or DIRECT (§4.5).
func parseMemoryOperand(inner string) (operandRef, error) {
	if m := regOffsetRe.FindStringSubmatch(inner); m != nil {
		regTok, sign, offTok := strings.ToUpper(m[1]), m[2], m[3]
		if _, ok := cpu.RegisterCode(regTok); ok {
			if n, ok := parseNumber(offTok); ok {
				if sign == "-" {
					n = -n
				}
				return operandRef{class: classRegisterIndexed, regName: regTok, indexLit: int(int8(n)), indexSet: true}, nil
			}
			// `[reg+register]` or `[reg+symbol]` without a literal
			// offset isn't representable by the single index byte the
			// mode byte encodes; reject rather than silently truncate.
			return operandRef{}, fmt.Errorf("index %q in %q must be a decimal or hex literal", offTok, "["+inner+"]")
		}
		// A bare hex/decimal address with a register offset, e.g.
		// `[0x2000+R1]`: direct-indexed memory. The mode byte has an
		// encoding for it (§4.2) but the assembler never emits it
		// (§4.5/§9's open question); return it flagged so pass 1
		// reports it as a line error.
		if _, ok := parseNumber(m[1]); ok {
			if _, ok := cpu.RegisterCode(offTok); ok {
				return operandRef{indexedDirectReg: offTok}, nil
			}
		}
		return operandRef{}, fmt.Errorf("unrecognized memory operand %q", "["+inner+"]")
	}

	if _, ok := cpu.RegisterCode(strings.ToUpper(inner)); ok {
		return operandRef{class: classRegisterIndirect, regName: strings.ToUpper(inner)}, nil
	}

	if n, ok := parseNumber(inner); ok {
		return operandRef{class: classDirect, addrLit: uint16(n), addrSet: true}, nil
	}

	return operandRef{}, fmt.Errorf("unrecognized memory operand %q", "["+inner+"]")
}

// parseNumber parses a `0x...` hex literal or a plain decimal integer.
func parseNumber(tok string) (int, bool) {
	neg := false
	t := tok
	if strings.HasPrefix(t, "-") {
		neg = true
		t = t[1:]
	}
	var n int64
	var err error
	if strings.HasPrefix(strings.ToLower(t), "0x") {
		n, err = strconv.ParseInt(t[2:], 16, 32)
	} else {
		n, err = strconv.ParseInt(t, 10, 32)
	}
	if err != nil {
		return 0, false
	}
	if neg {
		n = -n
	}
	return int(n), true
}

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

func isIdentifier(tok string) bool {
	return identifierRe.MatchString(tok)
}
