package cpu

// readCString reads bytes from mem starting at addr up to and
// including the null terminator, returning the bytes without the
// terminator.
func (c *CPU) readCString(addr uint16) []byte {
	var out []byte
	for i := 0; ; i++ {
		b := c.mem.ReadByte(addr + uint16(i))
		if b == 0 {
			break
		}
		out = append(out, b)
	}
	return out
}

// STRCPY copies the null-terminated string at ops[1] to ops[0],
// including the terminator.
func (c *CPU) STRCPY(ops []Operand) {
	dst := c.getOperandValue(ops[0])
	src := c.getOperandValue(ops[1])
	for i := 0; ; i++ {
		ch := c.mem.ReadByte(src + uint16(i))
		c.mem.WriteByte(dst+uint16(i), ch)
		if ch == 0 {
			break
		}
	}
}

// STRCAT appends the null-terminated string at ops[1] to the end of
// the null-terminated string at ops[0].
func (c *CPU) STRCAT(ops []Operand) {
	dst := c.getOperandValue(ops[0])
	src := c.getOperandValue(ops[1])
	i := uint16(0)
	for c.mem.ReadByte(dst+i) != 0 {
		i++
	}
	for j := uint16(0); ; j++ {
		ch := c.mem.ReadByte(src + j)
		c.mem.WriteByte(dst+i+j, ch)
		if ch == 0 {
			break
		}
	}
}

// STRCMP compares up to ops[2] bytes of the strings at ops[0] and
// ops[1], stopping at the first mismatch or either string's
// terminator, and stores -1/0/1 into R0.
func (c *CPU) STRCMP(ops []Operand) {
	a := c.getOperandValue(ops[0])
	b := c.getOperandValue(ops[1])
	maxLen := c.getOperandValue(ops[2])
	result := byte(0)
	for i := uint16(0); i < maxLen; i++ {
		ca := c.mem.ReadByte(a + i)
		cb := c.mem.ReadByte(b + i)
		if ca != cb {
			if ca > cb {
				result = 1
			} else {
				result = 0xFF // -1, masked to 8 bits
			}
			break
		}
		if ca == 0 {
			break
		}
	}
	c.R[0] = result
}

// STRLEN stores the length of the null-terminated string at ops[0]
// into R0.
func (c *CPU) STRLEN(ops []Operand) {
	addr := c.getOperandValue(ops[0])
	length := 0
	for c.mem.ReadByte(addr+uint16(length)) != 0 {
		length++
	}
	c.R[0] = byte(length & 0xFF)
}

// STRUPR uppercases the null-terminated string at ops[0] in place.
func (c *CPU) STRUPR(ops []Operand) {
	addr := c.getOperandValue(ops[0])
	for i := uint16(0); ; i++ {
		ch := c.mem.ReadByte(addr + i)
		if ch == 0 {
			break
		}
		if ch >= 'a' && ch <= 'z' {
			c.mem.WriteByte(addr+i, ch-32)
		}
	}
}

// STRLWR lowercases the null-terminated string at ops[0] in place.
func (c *CPU) STRLWR(ops []Operand) {
	addr := c.getOperandValue(ops[0])
	for i := uint16(0); ; i++ {
		ch := c.mem.ReadByte(addr + i)
		if ch == 0 {
			break
		}
		if ch >= 'A' && ch <= 'Z' {
			c.mem.WriteByte(addr+i, ch+32)
		}
	}
}

// STRREV reverses the null-terminated string at ops[0] in place.
func (c *CPU) STRREV(ops []Operand) {
	addr := c.getOperandValue(ops[0])
	length := uint16(0)
	for c.mem.ReadByte(addr+length) != 0 {
		length++
	}
	for i := uint16(0); i < length/2; i++ {
		left := c.mem.ReadByte(addr + i)
		right := c.mem.ReadByte(addr + length - 1 - i)
		c.mem.WriteByte(addr+i, right)
		c.mem.WriteByte(addr+length-1-i, left)
	}
}

func caseInsensitiveEq(a, b byte) bool {
	if a == b {
		return true
	}
	if a >= 'A' && a <= 'Z' {
		return a+32 == b
	}
	if a >= 'a' && a <= 'z' {
		return a-32 == b
	}
	return false
}

// STRFIND sets R0 to 1 if the null-terminated needle at ops[1] occurs
// anywhere within the null-terminated haystack at ops[0], 0 otherwise.
// An empty needle always matches.
func (c *CPU) STRFIND(ops []Operand) {
	c.R[0] = boolByte(c.stringFind(ops, false))
}

// STRFINDI is STRFIND's case-insensitive sibling.
func (c *CPU) STRFINDI(ops []Operand) {
	c.R[0] = boolByte(c.stringFind(ops, true))
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

func (c *CPU) stringFind(ops []Operand, caseInsensitive bool) bool {
	haystack := c.getOperandValue(ops[0])
	needle := c.readCString(c.getOperandValue(ops[1]))
	if len(needle) == 0 {
		return true
	}
	for i := uint16(0); ; i++ {
		h := c.mem.ReadByte(haystack + i)
		if h == 0 {
			return false
		}
		match := true
		for j := 0; j < len(needle); j++ {
			hc := c.mem.ReadByte(haystack + i + uint16(j))
			nc := needle[j]
			eq := hc == nc
			if caseInsensitive {
				eq = caseInsensitiveEq(hc, nc)
			}
			if hc == 0 || !eq {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
}

// STREXT copies, into the buffer at ops[0], the first max-ops[3]-byte
// run of the haystack at ops[1] starting at the first occurrence of
// the needle at ops[2]; an empty result (a lone terminator) is written
// when the needle is empty or not found. ops[3] also bounds the search:
// at most ops[3] needle bytes are read, and a match is looked for only
// at haystack offsets 0..ops[3]-len(needle).
func (c *CPU) STREXT(ops []Operand) {
	c.stringExtract(ops, false)
}

// STREXTI is STREXT's case-insensitive sibling.
func (c *CPU) STREXTI(ops []Operand) {
	c.stringExtract(ops, true)
}

func (c *CPU) stringExtract(ops []Operand, caseInsensitive bool) {
	dst := c.getOperandValue(ops[0])
	haystack := c.getOperandValue(ops[1])
	needleAddr := c.getOperandValue(ops[2])
	maxLen := int(c.getOperandValue(ops[3]))

	needle := make([]byte, 0, maxLen)
	for i := 0; i < maxLen; i++ {
		ch := c.mem.ReadByte(needleAddr + uint16(i))
		if ch == 0 {
			break
		}
		needle = append(needle, ch)
	}
	if len(needle) == 0 {
		c.mem.WriteByte(dst, 0)
		return
	}

	startPos := -1
	for i := 0; i <= maxLen-len(needle); i++ {
		match := true
		for j := range needle {
			hc := c.mem.ReadByte(haystack + uint16(i+j))
			eq := hc == needle[j]
			if caseInsensitive {
				eq = caseInsensitiveEq(hc, needle[j])
			}
			if !eq {
				match = false
				break
			}
		}
		if match {
			startPos = i
			break
		}
	}
	if startPos < 0 {
		c.mem.WriteByte(dst, 0)
		return
	}
	for i := 0; i < maxLen; i++ {
		ch := c.mem.ReadByte(haystack + uint16(startPos+i))
		c.mem.WriteByte(dst+uint16(i), ch)
		if ch == 0 {
			break
		}
	}
}
