package cpu

// Addressing classes, encoded 2 bits per operand in the mode byte (§4.2).
const (
	ClassRegister = iota
	ClassImmediate8
	ClassImmediate16
	ClassMemory
)

// Operand is the uniform decoded-operand descriptor handlers work with:
// get_operand_value/set_operand_value from the spec's decode function.
type Operand struct {
	Class   int
	Reg     byte
	Imm     uint16
	EffAddr uint16
}

// Width returns the natural bit width (8 or 16) of this operand, which
// governs flag-mask selection per §4.2's destination-width rule.
func (o Operand) Width() int {
	switch o.Class {
	case ClassRegister:
		return registerWidth(o.Reg)
	case ClassImmediate8:
		return 8
	case ClassImmediate16:
		return 16
	default: // memory
		return 16
	}
}

// IsRDestination reports whether this operand, used as a destination,
// triggers 8-bit (R-register) flag masking per §4.2.
func (o Operand) IsRDestination() bool {
	return o.Class == ClassRegister && isRRegister(o.Reg)
}

// modeByte unpacks the mode byte's per-operand addressing classes and
// the shared indexed/direct flags (§4.2).
type modeByte struct {
	class1, class2, class3 int
	indexed, direct         bool
}

func decodeModeByte(b byte) modeByte {
	return modeByte{
		class1:  int(b & 0x3),
		class2:  int((b >> 2) & 0x3),
		class3:  int((b >> 4) & 0x3),
		indexed: b&0x40 != 0,
		direct:  b&0x80 != 0,
	}
}

// decodeOperand consumes the operand-data bytes for one operand of the
// given class from the instruction stream (advancing PC) and returns
// its descriptor.
func (c *CPU) decodeOperand(class int, indexed, direct bool) Operand {
	switch class {
	case ClassRegister:
		return Operand{Class: ClassRegister, Reg: c.fetchByte()}
	case ClassImmediate8:
		return Operand{Class: ClassImmediate8, Imm: uint16(c.fetchByte())}
	case ClassImmediate16:
		return Operand{Class: ClassImmediate16, Imm: c.fetchWord()}
	case ClassMemory:
		return c.decodeMemoryOperand(indexed, direct)
	}
	c.raiseFault("decode", "invalid operand class")
	return Operand{}
}

// decodeMemoryOperand resolves the four (direct, indexed) sub-modes of
// a class-3 memory reference (§4.2).
func (c *CPU) decodeMemoryOperand(indexed, direct bool) Operand {
	var addr uint16
	switch {
	case direct && !indexed:
		addr = c.fetchWord()
	case !direct && !indexed:
		reg := c.fetchByte()
		addr = c.getRegister(reg)
	case !direct && indexed:
		reg := c.fetchByte()
		idx := c.fetchByte()
		addr = c.getRegister(reg) + uint16(idx)
	default: // direct && indexed
		base := c.fetchWord()
		idx := c.fetchByte()
		addr = base + uint16(idx)
	}
	return Operand{Class: ClassMemory, EffAddr: addr}
}

// getOperandValue reads an operand's current value (spec's
// get_operand_value).
func (c *CPU) getOperandValue(o Operand) uint16 {
	switch o.Class {
	case ClassRegister:
		return c.getRegister(o.Reg)
	case ClassImmediate8, ClassImmediate16:
		return o.Imm
	default:
		return c.readWord(o.EffAddr)
	}
}

// setOperandValue writes val to a destination operand (spec's
// set_operand_value), masking to the operand's width.
func (c *CPU) setOperandValue(o Operand, val uint16) {
	switch o.Class {
	case ClassRegister:
		if registerWidth(o.Reg) == 8 {
			c.setRegister(o.Reg, val&0xFF)
		} else {
			c.setRegister(o.Reg, val&0xFFFF)
		}
	case ClassMemory:
		c.writeWord(o.EffAddr, val&0xFFFF)
	default:
		c.raiseFault("decode", "cannot write to an immediate operand")
	}
}

// parseOperands reads the mode byte (if needed) and decodes n operand
// descriptors in order. Instructions in the no-operand set never call
// this; the dispatcher skips the mode-byte fetch for them.
//
// A single mode byte only has room for three operand-class fields
// (§4.2), but a handful of instructions (SLINE, SRECT, SCIRC, STREXT,
// STREXTI) take more than three operands. For those, parseOperands consumes one
// additional mode byte per group of three operands, so operand 4 reuses
// class1 of a second mode byte, and so on; indexed/direct flags for a
// class-3 operand always come from that operand's own mode byte.
func (c *CPU) parseOperands(n int) []Operand {
	ops := make([]Operand, n)
	for i := 0; i < n; i += 3 {
		mb := decodeModeByte(c.fetchByte())
		classes := [3]int{mb.class1, mb.class2, mb.class3}
		for j := 0; j < 3 && i+j < n; j++ {
			ops[i+j] = c.decodeOperand(classes[j], mb.indexed, mb.direct)
		}
	}
	return ops
}
