package cpu

// SPLAY starts channel ops[0] playing using the current SA/SF/SV/SW
// shadow register values. SW's low nibble selects the waveform and its
// top bit requests looping.
func (c *CPU) SPLAY(ops []Operand) {
	channel := int(c.getOperandValue(ops[0]))
	waveform := c.sound.sw & 0x0F
	loop := c.sound.sw&0x80 != 0
	c.snd.Play(channel, waveform, c.sound.sf, c.sound.sv, loop)
}

// SSTOP silences channel ops[0], or every channel when ops[0] is 0xFF.
func (c *CPU) SSTOP(ops []Operand) {
	channel := int(c.getOperandValue(ops[0]))
	if channel == 0xFF {
		c.snd.Stop(-1)
		return
	}
	c.snd.Stop(channel)
}

// STRIG fires one-shot effect ops[0].
func (c *CPU) STRIG(ops []Operand) {
	c.snd.Trig(byte(c.getOperandValue(ops[0])))
}
