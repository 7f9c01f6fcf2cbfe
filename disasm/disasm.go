// Package disasm implements the Nova-16 disassembler: the inverse of
// package asm. It walks a raw byte stream, decoding one instruction
// (or folded string literal) per line using the same opcode and
// register tables package cpu exports for this purpose, rather than
// duplicating them (§4.2, §6).
package disasm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/starfighterlily/nova16/cpu"
)

// Line is one decoded line of output: its load address, the raw bytes
// it consumed, and its formatted mnemonic/operand text.
type Line struct {
	Addr  uint16
	Bytes []byte
	Text  string
}

// String renders a Line the way the CLI prints it: "address: hexbytes
// MNEMONIC operands" (§6).
func (l Line) String() string {
	hex := make([]string, len(l.Bytes))
	for i, b := range l.Bytes {
		hex[i] = fmt.Sprintf("%02X", b)
	}
	return fmt.Sprintf("0x%04X: %-24s %s", l.Addr, strings.Join(hex, " "), l.Text)
}

// Decode disassembles data, treating its first byte as loading at
// address org. A run of three or more printable ASCII bytes followed
// by a NUL is folded into a DEFSTR line (§6) instead of being decoded
// as instructions; everything else is decoded opcode by opcode. A byte
// that isn't a known opcode, or an instruction whose operand bytes run
// past the end of data, is emitted as a single-byte `DB` line and
// decoding resumes at the next byte — the disassembler never panics or
// aborts on malformed or hand-crafted input.
func Decode(data []byte, org uint16) []Line {
	opcodes := cpu.OpcodeTable()

	var out []Line
	i := 0
	for i < len(data) {
		addr := org + uint16(i)

		if n := printableRunLength(data[i:]); n >= 3 && i+n < len(data) && data[i+n] == 0 {
			out = append(out, Line{
				Addr:  addr,
				Bytes: append([]byte(nil), data[i:i+n+1]...),
				Text:  fmt.Sprintf("DEFSTR %s", quoteString(data[i : i+n])),
			})
			i += n + 1
			continue
		}

		info, ok := opcodes[data[i]]
		if !ok {
			out = append(out, Line{Addr: addr, Bytes: []byte{data[i]}, Text: fmt.Sprintf("DB 0x%02X", data[i])})
			i++
			continue
		}

		text, size, err := decodeInstruction(data[i:], info)
		if err != nil {
			out = append(out, Line{Addr: addr, Bytes: []byte{data[i]}, Text: fmt.Sprintf("DB 0x%02X", data[i])})
			i++
			continue
		}
		out = append(out, Line{Addr: addr, Bytes: append([]byte(nil), data[i:i+size]...), Text: info.Name + text})
		i += size
	}
	return out
}

// decodeInstruction decodes one instruction starting at b[0] (the
// opcode byte), returning its formatted operand text (empty for a
// no-operand mnemonic) and the total byte count it consumed.
func decodeInstruction(b []byte, info cpu.OpcodeInfo) (string, int, error) {
	pos := 1
	if info.Operands == 0 {
		return "", pos, nil
	}

	var parts []string
	for g := 0; g < info.Operands; g += 3 {
		if pos >= len(b) {
			return "", 0, fmt.Errorf("truncated mode byte")
		}
		mb := b[pos]
		pos++
		classes := [3]int{int(mb & 0x3), int((mb >> 2) & 0x3), int((mb >> 4) & 0x3)}
		indexed, direct := mb&0x40 != 0, mb&0x80 != 0

		for j := 0; j < 3 && g+j < info.Operands; j++ {
			text, n, err := decodeOperand(b[pos:], classes[j], indexed, direct)
			if err != nil {
				return "", 0, err
			}
			parts = append(parts, text)
			pos += n
		}
	}
	return " " + strings.Join(parts, ", "), pos, nil
}

// decodeOperand decodes one operand's data bytes per its addressing
// class (§4.2), returning its formatted text and byte count consumed.
func decodeOperand(b []byte, class int, indexed, direct bool) (string, int, error) {
	switch class {
	case cpu.ClassRegister:
		if len(b) < 1 {
			return "", 0, fmt.Errorf("truncated register operand")
		}
		name, ok := cpu.RegisterName(b[0])
		if !ok {
			return fmt.Sprintf("0x%02X", b[0]), 1, nil
		}
		return name, 1, nil
	case cpu.ClassImmediate8:
		if len(b) < 1 {
			return "", 0, fmt.Errorf("truncated imm8 operand")
		}
		return fmt.Sprintf("0x%02X", b[0]), 1, nil
	case cpu.ClassImmediate16:
		if len(b) < 2 {
			return "", 0, fmt.Errorf("truncated imm16 operand")
		}
		return fmt.Sprintf("0x%04X", uint16(b[0])<<8|uint16(b[1])), 2, nil
	case cpu.ClassMemory:
		return decodeMemoryOperand(b, indexed, direct)
	}
	return "", 0, fmt.Errorf("unknown operand class %d", class)
}

func decodeMemoryOperand(b []byte, indexed, direct bool) (string, int, error) {
	switch {
	case direct && !indexed:
		if len(b) < 2 {
			return "", 0, fmt.Errorf("truncated direct memory operand")
		}
		return fmt.Sprintf("[0x%04X]", uint16(b[0])<<8|uint16(b[1])), 2, nil
	case !direct && !indexed:
		if len(b) < 1 {
			return "", 0, fmt.Errorf("truncated register-indirect operand")
		}
		name, ok := cpu.RegisterName(b[0])
		if !ok {
			return "", 0, fmt.Errorf("unknown register code 0x%02X", b[0])
		}
		return fmt.Sprintf("[%s]", name), 1, nil
	case !direct && indexed:
		if len(b) < 2 {
			return "", 0, fmt.Errorf("truncated register-indexed operand")
		}
		name, ok := cpu.RegisterName(b[0])
		if !ok {
			return "", 0, fmt.Errorf("unknown register code 0x%02X", b[0])
		}
		return fmt.Sprintf("[%s+0x%02X]", name, b[1]), 2, nil
	default: // direct && indexed: a literal base address plus a literal
		// byte offset (§9's open question: the hardware encoding for
		// this is a literal, not a register, so the asm package rejects
		// `[0xNNNN+reg]` source syntax while this decoder still reads
		// the encoding legally).
		if len(b) < 3 {
			return "", 0, fmt.Errorf("truncated direct-indexed operand")
		}
		return fmt.Sprintf("[0x%04X+0x%02X]", uint16(b[0])<<8|uint16(b[1]), b[2]), 3, nil
	}
}

// printableRunLength returns the length of the leading run of
// printable ASCII bytes (0x20-0x7E) in b.
func printableRunLength(b []byte) int {
	n := 0
	for n < len(b) && b[n] >= 0x20 && b[n] <= 0x7E {
		n++
	}
	return n
}

// quoteString renders raw bytes as a Go-syntax double-quoted string,
// matching the escapes the assembler's DEFSTR literal parser accepts.
func quoteString(b []byte) string {
	return strconv.Quote(string(b))
}
