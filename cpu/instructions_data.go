package cpu

// MOV copies the value of ops[1] into the destination ops[0].
func (c *CPU) MOV(ops []Operand) {
	c.setOperandValue(ops[0], c.getOperandValue(ops[1]))
}
