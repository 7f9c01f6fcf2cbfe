package cpu

func destWidth(ops []Operand) int {
	if ops[0].IsRDestination() {
		return 8
	}
	return 16
}

func widthMask(width int) uint32 {
	if width == 8 {
		return 0xFF
	}
	return 0xFFFF
}

// ADD performs ops[0] += ops[1].
func (c *CPU) ADD(ops []Operand) {
	width := destWidth(ops)
	mask := widthMask(width)
	left := uint32(c.getOperandValue(ops[0]))
	right := uint32(c.getOperandValue(ops[1]))
	sum := left + right
	c.setOperandValue(ops[0], uint16(sum&mask))
	c.setAddFlags(left, right, sum, width)
}

// SUB performs ops[0] -= ops[1].
func (c *CPU) SUB(ops []Operand) {
	width := destWidth(ops)
	mask := widthMask(width)
	left := uint32(c.getOperandValue(ops[0]))
	right := uint32(c.getOperandValue(ops[1]))
	result := (left - right) & mask
	c.setOperandValue(ops[0], uint16(result))
	c.setSubFlags(left, right, result, width)
}

// MUL performs ops[0] *= ops[1].
func (c *CPU) MUL(ops []Operand) {
	width := destWidth(ops)
	mask := widthMask(width)
	left := uint32(c.getOperandValue(ops[0]))
	right := uint32(c.getOperandValue(ops[1]))
	product := left * right
	c.setOperandValue(ops[0], uint16(product&mask))
	c.setZSP(product, mask)
	c.SetFlag(FlagCarry, product > mask)
}

// DIV performs ops[0] /= ops[1]; division by zero is a fatal fault.
func (c *CPU) DIV(ops []Operand) {
	width := destWidth(ops)
	mask := widthMask(width)
	left := uint32(c.getOperandValue(ops[0]))
	right := uint32(c.getOperandValue(ops[1]))
	if right == 0 {
		c.raiseFault("arithmetic", "division by zero")
		return
	}
	q := left / right
	c.setOperandValue(ops[0], uint16(q&mask))
	c.setZSP(q, mask)
}

// MOD performs ops[0] %= ops[1]; modulo by zero is a fatal fault.
func (c *CPU) MOD(ops []Operand) {
	width := destWidth(ops)
	mask := widthMask(width)
	left := uint32(c.getOperandValue(ops[0]))
	right := uint32(c.getOperandValue(ops[1]))
	if right == 0 {
		c.raiseFault("arithmetic", "modulo by zero")
		return
	}
	r := left % right
	c.setOperandValue(ops[0], uint16(r&mask))
	c.setZSP(r, mask)
}

// INC increments ops[0] in place.
func (c *CPU) INC(ops []Operand) {
	width := destWidth(ops)
	mask := widthMask(width)
	val := uint32(c.getOperandValue(ops[0]))
	sum := val + 1
	c.setOperandValue(ops[0], uint16(sum&mask))
	c.setAddFlags(val, 1, sum, width)
}

// DEC decrements ops[0] in place.
func (c *CPU) DEC(ops []Operand) {
	width := destWidth(ops)
	mask := widthMask(width)
	val := uint32(c.getOperandValue(ops[0]))
	result := (val - 1) & mask
	c.setOperandValue(ops[0], uint16(result))
	c.setSubFlags(val, 1, result, width)
}

// NEG negates ops[0] in place (two's-complement: 0 - value).
func (c *CPU) NEG(ops []Operand) {
	width := destWidth(ops)
	mask := widthMask(width)
	val := uint32(c.getOperandValue(ops[0]))
	result := (0 - val) & mask
	c.setOperandValue(ops[0], uint16(result))
	c.setSubFlags(0, val, result, width)
}

// ABS replaces ops[0] with its absolute value, interpreted as a signed
// quantity of the destination's width.
func (c *CPU) ABS(ops []Operand) {
	width := destWidth(ops)
	mask := widthMask(width)
	val := uint32(c.getOperandValue(ops[0]))
	var result uint32
	if width == 8 {
		signed := int8(val)
		if signed < 0 {
			result = uint32(-int32(signed)) & mask
		} else {
			result = val
		}
	} else {
		signed := int16(val)
		if signed < 0 {
			result = uint32(-int32(signed)) & mask
		} else {
			result = val
		}
	}
	c.setOperandValue(ops[0], uint16(result))
	c.setZSP(result, mask)
}
