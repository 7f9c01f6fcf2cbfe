package cpu

// CALL pushes the return address (the instruction following this CALL)
// and jumps to ops[0]'s target.
func (c *CPU) CALL(ops []Operand) {
	target := c.jumpTarget(ops[0])
	if !c.push16(c.PC) {
		return
	}
	c.PC = target
}

// RET pops the return address into PC.
func (c *CPU) RET() {
	v, ok := c.pop16()
	if !ok {
		return
	}
	c.PC = v
}
