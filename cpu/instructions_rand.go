package cpu

// nextRand advances the PRNG state with the linear congruential
// formula seed = seed*1103515245 + 12345 (mod 2^16) and returns the new
// seed. The CPU's seed starts at 0 on reset, so the sequence is
// deterministic and reproducible run to run (§4.2, §8's determinism
// invariant).
func (c *CPU) nextRand() uint16 {
	c.prngSeed = uint16(uint32(c.prngSeed)*1103515245 + 12345)
	return c.prngSeed
}

// RND writes a pseudo-random value, masked to ops[0]'s width, into ops[0].
func (c *CPU) RND(ops []Operand) {
	width := destWidth(ops)
	c.setOperandValue(ops[0], uint16(uint32(c.nextRand())&widthMask(width)))
}

// RNDR writes a pseudo-random value in the inclusive range [ops[1], ops[2]]
// into ops[0].
func (c *CPU) RNDR(ops []Operand) {
	lo := c.getOperandValue(ops[1])
	hi := c.getOperandValue(ops[2])
	if hi < lo {
		lo, hi = hi, lo
	}
	span := uint32(hi-lo) + 1
	v := lo
	if span > 0 {
		v = lo + uint16(uint32(c.nextRand())%span)
	}
	c.setOperandValue(ops[0], v)
}
