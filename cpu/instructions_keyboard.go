package cpu

// KEYIN pops the oldest buffered key code into ops[0].
func (c *CPU) KEYIN(ops []Operand) {
	c.setOperandValue(ops[0], uint16(c.keyIn()))
}

// KEYSTAT copies the keyboard status byte into ops[0].
func (c *CPU) KEYSTAT(ops []Operand) {
	c.setOperandValue(ops[0], uint16(c.keyboard.status))
}

// KEYCOUNT copies the number of buffered key codes into ops[0].
func (c *CPU) KEYCOUNT(ops []Operand) {
	c.setOperandValue(ops[0], uint16(len(c.keyboard.buffer)))
}

// KEYCLEAR discards the key buffer and resets keyboard status.
func (c *CPU) KEYCLEAR() {
	c.keyClear()
}

// KEYCTRL writes the keyboard control byte from ops[0].
func (c *CPU) KEYCTRL(ops []Operand) {
	c.keyboard.control = byte(c.getOperandValue(ops[0]))
}
