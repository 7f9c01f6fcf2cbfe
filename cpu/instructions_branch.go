package cpu

// jumpTarget resolves an operand used as an absolute branch/call target:
// a register or immediate gives the address value directly, and a memory
// operand contributes its already-computed effective address rather than
// the word stored there (the addressing mode picks the destination; it
// is not itself a data load).
func (c *CPU) jumpTarget(o Operand) uint16 {
	switch o.Class {
	case ClassMemory:
		return o.EffAddr
	default:
		return c.getOperandValue(o)
	}
}

// JMP is an unconditional absolute jump.
func (c *CPU) JMP(ops []Operand) {
	c.PC = c.jumpTarget(ops[0])
}

func (c *CPU) condJump(mnemonic string, ops []Operand) {
	if c.conditionTrue(mnemonic) {
		c.PC = c.jumpTarget(ops[0])
	}
}

func (c *CPU) JZ(ops []Operand)  { c.condJump("Z", ops) }
func (c *CPU) JNZ(ops []Operand) { c.condJump("NZ", ops) }
func (c *CPU) JO(ops []Operand)  { c.condJump("O", ops) }
func (c *CPU) JNO(ops []Operand) { c.condJump("NO", ops) }
func (c *CPU) JC(ops []Operand)  { c.condJump("C", ops) }
func (c *CPU) JNC(ops []Operand) { c.condJump("NC", ops) }
func (c *CPU) JS(ops []Operand)  { c.condJump("S", ops) }
func (c *CPU) JNS(ops []Operand) { c.condJump("NS", ops) }
func (c *CPU) JGT(ops []Operand) { c.condJump("GT", ops) }
func (c *CPU) JLT(ops []Operand) { c.condJump("LT", ops) }
func (c *CPU) JGE(ops []Operand) { c.condJump("GE", ops) }
func (c *CPU) JLE(ops []Operand) { c.condJump("LE", ops) }

// relTarget sign-extends a 16-bit operand value as a branch offset from
// the already-advanced PC (the address of the instruction following this
// one, per the BR family's definition in §4.2).
func (c *CPU) relTarget(o Operand) uint16 {
	raw := c.getOperandValue(o)
	offset := int16(raw)
	return uint16(int32(c.PC) + int32(offset))
}

// BR branches unconditionally by a sign-extended relative offset.
func (c *CPU) BR(ops []Operand) {
	c.PC = c.relTarget(ops[0])
}

// BRZ branches by a relative offset when Z is set.
func (c *CPU) BRZ(ops []Operand) {
	if c.Flag(FlagZero) {
		c.PC = c.relTarget(ops[0])
	}
}

// BRNZ branches by a relative offset when Z is clear.
func (c *CPU) BRNZ(ops []Operand) {
	if !c.Flag(FlagZero) {
		c.PC = c.relTarget(ops[0])
	}
}
