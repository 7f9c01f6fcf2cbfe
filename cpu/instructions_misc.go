package cpu

// HLT stops execution; Step becomes a no-op afterward.
func (c *CPU) HLT() {
	c.halted = true
}

// NOP does nothing.
func (c *CPU) NOP() {}
