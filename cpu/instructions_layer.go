package cpu

// LCPY copies layer ops[1]'s contents into layer ops[0].
func (c *CPU) LCPY(ops []Operand) {
	c.gfx.LCPY(int(c.getOperandValue(ops[1])), int(c.getOperandValue(ops[0])))
}

// LCLR clears layer ops[0] to zero.
func (c *CPU) LCLR(ops []Operand) {
	c.gfx.LCLR(int(c.getOperandValue(ops[0])))
}

// LMOV moves layer ops[1]'s contents into layer ops[0], clearing the
// source.
func (c *CPU) LMOV(ops []Operand) {
	c.gfx.LMOV(int(c.getOperandValue(ops[1])), int(c.getOperandValue(ops[0])))
}

// LSHFT shifts layer ops[0] vertically by ops[1] pixels.
func (c *CPU) LSHFT(ops []Operand) {
	c.gfx.LSHFT(int(c.getOperandValue(ops[0])), int(c.getOperandValue(ops[1])))
}

// LROT rotates layer ops[0] clockwise by ops[1] 90-degree turns.
func (c *CPU) LROT(ops []Operand) {
	c.gfx.LROT(int(c.getOperandValue(ops[0])), int(c.getOperandValue(ops[1])))
}

// LFLIP mirrors layer ops[0] along axis ops[1].
func (c *CPU) LFLIP(ops []Operand) {
	c.gfx.LFLIP(int(c.getOperandValue(ops[0])), int(c.getOperandValue(ops[1])))
}

// LSWAP exchanges the contents of layers ops[0] and ops[1].
func (c *CPU) LSWAP(ops []Operand) {
	c.gfx.LSWAP(int(c.getOperandValue(ops[0])), int(c.getOperandValue(ops[1])))
}
