package gfx

// buildPalette generates the deterministic 256-entry RGB palette: 16
// ramps of 16 linearly-interpolated entries. The formulas below are
// reproduced bit-for-bit from the original implementation's
// set_color_palette so that rendered screenshots are comparable (§4.4).
func (g *Graphics) buildPalette() {
	for i := 0; i < 256; i++ {
		g.palette[i] = rampColor(i)
	}
}

func rampColor(i int) [3]byte {
	switch {
	case i <= 0x0F:
		v := i * 255 / 15
		return [3]byte{byte(v), byte(v), byte(v)} // grayscale
	case i <= 0x1F:
		v := (i - 0x10) * 255 / 15
		return [3]byte{byte(v), 0, 0} // red
	case i <= 0x2F:
		v := (i - 0x20) * 255 / 15
		return [3]byte{0, byte(v), 0} // green
	case i <= 0x3F:
		v := (i - 0x30) * 255 / 15
		return [3]byte{0, 0, byte(v)} // blue
	case i <= 0x4F:
		v := (i - 0x40) * 255 / 15
		return [3]byte{byte(v), byte(v), 0} // yellow
	case i <= 0x5F:
		v := (i - 0x50) * 255 / 15
		return [3]byte{byte(v), 0, byte(v)} // magenta
	case i <= 0x6F:
		v := (i - 0x60) * 255 / 15
		return [3]byte{0, byte(v), byte(v)} // cyan
	case i <= 0x7F:
		v := (i - 0x70) * 255 / 15
		return [3]byte{byte(v), byte(int(float64(v) * 0.5)), 0} // orange
	case i <= 0x8F:
		v := (i - 0x80) * 255 / 15
		return [3]byte{byte(int(float64(v) * 0.5)), 0, byte(v)} // purple
	case i <= 0x9F:
		v := (i - 0x90) * 255 / 15
		return [3]byte{byte(int(float64(v) * 0.5)), byte(v), 0} // lime
	case i <= 0xAF:
		v := (i - 0xA0) * 255 / 15
		h := byte(int(float64(v) * 0.5))
		return [3]byte{byte(v), h, h} // pink
	case i <= 0xBF:
		v := (i - 0xB0) * 255 / 15
		h := byte(int(float64(v) * 0.5))
		return [3]byte{0, h, h} // teal
	case i <= 0xCF:
		v := (i - 0xC0) * 255 / 15
		return [3]byte{byte(int(float64(v) * 0.6)), byte(int(float64(v) * 0.3)), 0} // brown
	case i <= 0xDF:
		v := (i - 0xD0) * 255 / 15
		h := byte(int(float64(v) * 0.5))
		return [3]byte{h, h, byte(v)} // light blue
	case i <= 0xEF:
		v := (i - 0xE0) * 255 / 15
		h := byte(int(float64(v) * 0.5))
		return [3]byte{h, byte(v), h} // light green
	default: // 0xF0-0xFF
		v := (i - 0xF0) * 255 / 15
		h := byte(int(float64(v) * 0.5))
		return [3]byte{byte(v), h, h} // light red
	}
}
