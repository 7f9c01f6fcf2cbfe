package cpu

// MEMCPY copies ops[2] bytes from ops[1] to ops[0], wrapping addresses
// at the 64KiB boundary.
func (c *CPU) MEMCPY(ops []Operand) {
	dst := c.getOperandValue(ops[0])
	src := c.getOperandValue(ops[1])
	length := c.getOperandValue(ops[2])
	for i := uint16(0); i < length; i++ {
		c.mem.WriteByte(dst+i, c.mem.ReadByte(src+i))
	}
}

// MEMSET fills ops[2] bytes starting at ops[0] with the low byte of
// ops[1].
func (c *CPU) MEMSET(ops []Operand) {
	dst := c.getOperandValue(ops[0])
	fill := byte(c.getOperandValue(ops[1]))
	length := c.getOperandValue(ops[2])
	for i := uint16(0); i < length; i++ {
		c.mem.WriteByte(dst+i, fill)
	}
}
