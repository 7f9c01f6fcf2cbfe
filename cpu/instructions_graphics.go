package cpu

// SBLEND sets the graphics coprocessor's blend mode from ops[0].
func (c *CPU) SBLEND(ops []Operand) {
	c.gfx.SetBlendMode(byte(c.getOperandValue(ops[0])))
}

// SREAD reads the pixel at (VX,VY,VM) on the current VL layer into ops[0].
func (c *CPU) SREAD(ops []Operand) {
	c.setOperandValue(ops[0], uint16(c.gfx.SREAD()))
}

// SWRITE blends ops[0]'s value into the pixel at (VX,VY,VM) on the
// current VL layer.
func (c *CPU) SWRITE(ops []Operand) {
	c.gfx.SWRITE(byte(c.getOperandValue(ops[0])))
}

// SROL rolls the current layer by ops[1] pixels along axis ops[0].
func (c *CPU) SROL(ops []Operand) {
	c.gfx.SROL(int(c.getOperandValue(ops[0])), int(c.getOperandValue(ops[1])))
}

// SROT rotates the current layer by ops[1] 90-degree turns in
// direction ops[0].
func (c *CPU) SROT(ops []Operand) {
	c.gfx.SROT(int(c.getOperandValue(ops[0])), int(c.getOperandValue(ops[1])))
}

// SSHFT shifts the current layer by ops[1] pixels along axis ops[0],
// zero-filling the vacated edge.
func (c *CPU) SSHFT(ops []Operand) {
	c.gfx.SSHFT(int(c.getOperandValue(ops[0])), int(c.getOperandValue(ops[1])))
}

// SFLIP mirrors the current layer along axis ops[0].
func (c *CPU) SFLIP(ops []Operand) {
	c.gfx.SFLIP(int(c.getOperandValue(ops[0])))
}

// SLINE draws a Bresenham line from (ops[0],ops[1]) to (ops[2],ops[3])
// in color ops[4].
func (c *CPU) SLINE(ops []Operand) {
	c.gfx.SLINE(
		int(c.getOperandValue(ops[0])), int(c.getOperandValue(ops[1])),
		int(c.getOperandValue(ops[2])), int(c.getOperandValue(ops[3])),
		byte(c.getOperandValue(ops[4])),
	)
}

// SRECT draws an axis-aligned rectangle from (ops[0],ops[1]) to
// (ops[2],ops[3]) in color ops[4], filled when ops[5] != 0.
func (c *CPU) SRECT(ops []Operand) {
	c.gfx.SRECT(
		int(c.getOperandValue(ops[0])), int(c.getOperandValue(ops[1])),
		int(c.getOperandValue(ops[2])), int(c.getOperandValue(ops[3])),
		byte(c.getOperandValue(ops[4])), c.getOperandValue(ops[5]) != 0,
	)
}

// SCIRC draws a circle centered at (ops[0],ops[1]) with radius ops[2] in
// color ops[3], filled when ops[4] != 0.
func (c *CPU) SCIRC(ops []Operand) {
	c.gfx.SCIRC(
		int(c.getOperandValue(ops[0])), int(c.getOperandValue(ops[1])),
		int(c.getOperandValue(ops[2])), byte(c.getOperandValue(ops[3])),
		c.getOperandValue(ops[4]) != 0,
	)
}

// SINV inverts every pixel on the current layer.
func (c *CPU) SINV() {
	c.gfx.SINV()
}

// SBLIT copies a 256x256 byte region from memory at ops[0] into the
// current layer.
func (c *CPU) SBLIT(ops []Operand) {
	c.gfx.SBLIT(c.getOperandValue(ops[0]), c.mem.ReadBlock)
}

// SFILL fills the current layer with color ops[0].
func (c *CPU) SFILL(ops []Operand) {
	c.gfx.SFILL(byte(c.getOperandValue(ops[0])))
}

// VREAD reads the VRAM pixel at (VX,VY,VM) into ops[0].
func (c *CPU) VREAD(ops []Operand) {
	c.setOperandValue(ops[0], uint16(c.gfx.VREAD()))
}

// VWRITE writes ops[0]'s value to the VRAM pixel at (VX,VY,VM); ops[1]
// is accepted (per the original opcode table's 2-operand encoding) but
// unused.
func (c *CPU) VWRITE(ops []Operand) {
	c.gfx.VWRITE(byte(c.getOperandValue(ops[0])))
}

// VBLIT copies a 256x256 byte region from memory at ops[0] into VRAM.
func (c *CPU) VBLIT(ops []Operand) {
	c.gfx.VBLIT(c.getOperandValue(ops[0]), c.mem.ReadBlock)
}

// CHAR renders the glyph for code ops[0] in color ops[1] at (VX,VY).
func (c *CPU) CHAR(ops []Operand) {
	c.gfx.CHAR(byte(c.getOperandValue(ops[0])), byte(c.getOperandValue(ops[1])))
}

// TEXT renders the null-terminated string at ops[0] in color ops[1].
func (c *CPU) TEXT(ops []Operand) {
	c.gfx.TEXT(c.getOperandValue(ops[0]), byte(c.getOperandValue(ops[1])), c.mem.ReadByte)
}

// SPBLIT blits a single sprite (index ops[0]) to its designated layer.
func (c *CPU) SPBLIT(ops []Operand) {
	c.gfx.SPBLIT(int(c.getOperandValue(ops[0])))
}

// SPBLITALL blits every active sprite to its designated layer.
func (c *CPU) SPBLITALL() {
	c.gfx.SPBLITALL()
}
