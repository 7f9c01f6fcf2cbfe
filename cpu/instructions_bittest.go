package cpu

// BTST tests bit ops[1] of ops[0]; Z is set when the tested bit is 0.
func (c *CPU) BTST(ops []Operand) {
	width := destWidth(ops)
	bit := uint(c.getOperandValue(ops[1])) & uint(width-1)
	val := c.getOperandValue(ops[0])
	set := val&(1<<bit) != 0
	c.SetFlag(FlagZero, !set)
}

// BSET sets bit ops[1] of ops[0].
func (c *CPU) BSET(ops []Operand) {
	width := destWidth(ops)
	bit := uint(c.getOperandValue(ops[1])) & uint(width-1)
	val := c.getOperandValue(ops[0])
	val |= 1 << bit
	c.setOperandValue(ops[0], val&uint16(widthMask(width)))
	c.SetFlag(FlagZero, val&uint16(widthMask(width)) == 0)
}

// BCLR clears bit ops[1] of ops[0].
func (c *CPU) BCLR(ops []Operand) {
	width := destWidth(ops)
	bit := uint(c.getOperandValue(ops[1])) & uint(width-1)
	val := c.getOperandValue(ops[0])
	val &^= 1 << bit
	c.setOperandValue(ops[0], val&uint16(widthMask(width)))
	c.SetFlag(FlagZero, val&uint16(widthMask(width)) == 0)
}

// BFLIP toggles bit ops[1] of ops[0].
func (c *CPU) BFLIP(ops []Operand) {
	width := destWidth(ops)
	bit := uint(c.getOperandValue(ops[1])) & uint(width-1)
	val := c.getOperandValue(ops[0])
	val ^= 1 << bit
	c.setOperandValue(ops[0], val&uint16(widthMask(width)))
	c.SetFlag(FlagZero, val&uint16(widthMask(width)) == 0)
}
