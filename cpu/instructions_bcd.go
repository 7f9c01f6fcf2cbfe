package cpu

// SED and CLD set and clear the Decimal flag. The BCD mnemonics below
// do not read it; they operate in BCD whatever its state.
func (c *CPU) SED() { c.SetFlag(FlagDecimal, true) }
func (c *CPU) CLD() { c.SetFlag(FlagDecimal, false) }

// CLA clears R0, the implicit BCD accumulator.
func (c *CPU) CLA() { c.R[0] = 0 }

func isValidBCD(v byte) bool {
	return v&0x0F <= 9 && (v&0xF0)>>4 <= 9
}

func bcdToBinary(v byte) int {
	if !isValidBCD(v) {
		return int(v)
	}
	return int((v&0xF0)>>4)*10 + int(v&0x0F)
}

func binaryToBCD(v int) byte {
	if v > 99 {
		v %= 100
	}
	if v < 0 {
		v = 0
	}
	tens := v / 10
	ones := v % 10
	return byte(tens<<4 | ones)
}

// bcdAdd adds val1 and val2 as BCD bytes, folding in an existing BCD
// carry, and reports the resulting BCD byte and whether it carried.
func bcdAdd(val1, val2 byte, carryIn bool) (byte, bool) {
	c := 0
	if carryIn {
		c = 1
	}
	result := bcdToBinary(val1) + bcdToBinary(val2) + c
	carry := result > 99
	if carry {
		result %= 100
	}
	return binaryToBCD(result), carry
}

// bcdSub subtracts val2 from val1 as BCD bytes, folding in an existing
// BCD borrow, and reports the resulting BCD byte and whether it
// borrowed.
func bcdSub(val1, val2 byte, borrowIn bool) (byte, bool) {
	b := 0
	if borrowIn {
		b = 1
	}
	result := bcdToBinary(val1) - bcdToBinary(val2) - b
	borrow := result < 0
	if borrow {
		result += 100
	}
	return binaryToBCD(result), borrow
}

// setBCDFlags mirrors the additive/subtractive flag rule used elsewhere
// in the flag file, but for an 8-bit BCD result: Zero/Sign/Parity from
// the result byte, and Carry doubling as the BCD carry/borrow bit.
func (c *CPU) setBCDFlags(result byte, carry bool) {
	c.setZSP(uint32(result), 0xFF)
	c.SetFlag(FlagBCDCarry, carry)
	c.SetFlag(FlagCarry, carry)
}

// BCDA adds ops[0]'s BCD byte into R0, honoring any pending BCD carry.
func (c *CPU) BCDA(ops []Operand) {
	val := byte(c.getOperandValue(ops[0]))
	result, carry := bcdAdd(c.R[0], val, c.Flag(FlagBCDCarry))
	c.R[0] = result
	c.setBCDFlags(result, carry)
}

// BCDS subtracts ops[0]'s BCD byte from R0, honoring any pending BCD
// borrow.
func (c *CPU) BCDS(ops []Operand) {
	val := byte(c.getOperandValue(ops[0]))
	result, borrow := bcdSub(c.R[0], val, c.Flag(FlagBCDCarry))
	c.R[0] = result
	c.setBCDFlags(result, borrow)
}

// BCDADD adds R0 and ops[0] as BCD bytes and writes the BCD sum back
// into ops[0], leaving R0 untouched (the explicit-destination sibling
// of BCDA).
func (c *CPU) BCDADD(ops []Operand) {
	val := byte(c.getOperandValue(ops[0]))
	result, carry := bcdAdd(val, c.R[0], c.Flag(FlagBCDCarry))
	c.setOperandValue(ops[0], uint16(result))
	c.setBCDFlags(result, carry)
}

// BCDSUB subtracts R0 from ops[0] as BCD bytes and writes the BCD
// difference back into ops[0].
func (c *CPU) BCDSUB(ops []Operand) {
	val := byte(c.getOperandValue(ops[0]))
	result, borrow := bcdSub(val, c.R[0], c.Flag(FlagBCDCarry))
	c.setOperandValue(ops[0], uint16(result))
	c.setBCDFlags(result, borrow)
}

// BCDCMP compares ops[0]'s BCD byte against R0 without storing a
// result, setting flags as BCDS would.
func (c *CPU) BCDCMP(ops []Operand) {
	val := byte(c.getOperandValue(ops[0]))
	result, borrow := bcdSub(c.R[0], val, false)
	c.setBCDFlags(result, borrow)
}

// BCD2BIN converts ops[0]'s BCD byte to its binary value in place.
func (c *CPU) BCD2BIN(ops []Operand) {
	val := byte(c.getOperandValue(ops[0]))
	bin := bcdToBinary(val)
	c.setOperandValue(ops[0], uint16(bin))
	c.setZSP(uint32(bin), 0xFF)
}

// BIN2BCD converts ops[0]'s binary value (0..99) to its BCD encoding in
// place.
func (c *CPU) BIN2BCD(ops []Operand) {
	val := int(c.getOperandValue(ops[0]))
	bcd := binaryToBCD(val)
	c.setOperandValue(ops[0], uint16(bcd))
	c.setZSP(uint32(bcd), 0xFF)
}
