package cpu

// CMP compares ops[0] against ops[1] (ops[0] - ops[1]) without storing
// the result, setting flags exactly as SUB would.
func (c *CPU) CMP(ops []Operand) {
	width := destWidth(ops)
	mask := widthMask(width)
	left := uint32(c.getOperandValue(ops[0]))
	right := uint32(c.getOperandValue(ops[1]))
	result := (left - right) & mask
	c.setSubFlags(left, right, result, width)
}
