package cpu

// INT performs a software interrupt into vector ops[0], bypassing the
// per-vector hardware enable mask (software INT ignores that mask) but
// still gated on IF: with IF=0 the operand is consumed and PC has
// already advanced past it, and INT is otherwise a no-op (§7).
func (c *CPU) INT(ops []Operand) {
	v := int(c.getOperandValue(ops[0]))
	if !c.Flag(FlagInterruptEnable) {
		return
	}
	c.dispatchInterrupt(v)
}

// IRET returns from an interrupt handler. INT's entry sequence pushes PC
// then flags, leaving flags at the top of the stack; IRET must undo that
// order exactly, popping flags first and PC second (§9's resolution of
// the original implementation's swapped pop order).
func (c *CPU) IRET() {
	flags, ok := c.pop16()
	if !ok {
		return
	}
	pc, ok := c.pop16()
	if !ok {
		return
	}
	c.SetFlags(flags)
	c.PC = pc
}

// CLI clears the interrupt-enable flag.
func (c *CPU) CLI() {
	c.SetFlag(FlagInterruptEnable, false)
}

// STI sets the interrupt-enable flag.
func (c *CPU) STI() {
	c.SetFlag(FlagInterruptEnable, true)
}
