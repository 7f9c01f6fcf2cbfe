package cpu

// PUSH pushes ops[0]'s value as a single byte, decrementing SP by one
// (§4.2).
func (c *CPU) PUSH(ops []Operand) {
	c.push8(byte(c.getOperandValue(ops[0])))
}

// POP pops a single byte into ops[0].
func (c *CPU) POP(ops []Operand) {
	v, ok := c.pop8()
	if !ok {
		return
	}
	c.setOperandValue(ops[0], uint16(v))
}

// PUSHF pushes the packed flags word.
func (c *CPU) PUSHF() {
	c.push16(c.flags)
}

// POPF restores the packed flags word.
func (c *CPU) POPF() {
	v, ok := c.pop16()
	if !ok {
		return
	}
	c.SetFlags(v)
}

// PUSHA pushes every general-purpose and addressing register as a
// 2-byte slot: R0..R9, then P0..P9, then VX, VY, in that order.
func (c *CPU) PUSHA() {
	for i := 0; i < NumGeneralRegisters; i++ {
		if !c.push16(uint16(c.R[i])) {
			return
		}
	}
	for i := 0; i < NumGeneralRegisters; i++ {
		if !c.push16(c.P[i]) {
			return
		}
	}
	if !c.push16(uint16(c.gfx.VX())) {
		return
	}
	c.push16(uint16(c.gfx.VY()))
}

// POPA restores every register PUSHA saves, in the reverse order.
func (c *CPU) POPA() {
	vy, ok := c.pop16()
	if !ok {
		return
	}
	vx, ok := c.pop16()
	if !ok {
		return
	}
	c.gfx.SetVY(byte(vy))
	c.gfx.SetVX(byte(vx))
	for i := NumGeneralRegisters - 1; i >= 0; i-- {
		v, ok := c.pop16()
		if !ok {
			return
		}
		c.P[i] = v
	}
	for i := NumGeneralRegisters - 1; i >= 0; i-- {
		v, ok := c.pop16()
		if !ok {
			return
		}
		c.R[i] = byte(v)
	}
}
