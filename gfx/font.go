package gfx

// Glyph rows are written as 8-character strings, '#' for a set pixel
// and '.' for clear, most-significant (leftmost) pixel first -- this
// mirrors the §4.4 encoding (bit 7 is the leftmost pixel of each row)
// without hand-packing bytes. The retrieved source tree's font data
// lived in a separate `font.py` module that fell outside the retrieval
// filter, so this table is an original 8x8 monospace design rather than
// a reproduction of the original asset; see DESIGN.md.
var glyphRows = map[rune][8]string{
	' ': {"........", "........", "........", "........", "........", "........", "........", "........"},
	'0': {"..####..", ".#....#.", ".#...##.", ".#..#.#.", ".##...#.", "#....#..", "..####..", "........"},
	'1': {"...#....", "..##....", "...#....", "...#....", "...#....", "...#....", "..###...", "........"},
	'2': {"..###...", ".#...#..", "......#.", "....##..", "..##....", ".#......", ".#####..", "........"},
	'3': {".####...", "......#.", "....##..", "......#.", "......#.", "#.....#.", ".#####..", "........"},
	'4': {"....##..", "...#.#..", "..#..#..", ".#...#..", ".######.", "....##..", "....##..", "........"},
	'5': {".#####..", ".#......", ".####...", "......#.", "......#.", "#.....#.", ".#####..", "........"},
	'6': {"...##...", "..#.....", ".#......", ".####...", "#....##.", "#.....#.", ".#####..", "........"},
	'7': {".#####..", "#.....#.", ".....#..", "....#...", "...#....", "...#....", "...#....", "........"},
	'8': {".#####..", "#.....#.", ".#####..", "#.....#.", "#.....#.", "#.....#.", ".#####..", "........"},
	'9': {".#####..", "#.....#.", "#.....#.", ".######.", ".....#..", "....#...", "..##....", "........"},
	'A': {"...#....", "..#.#...", ".#...#..", "#.....#.", "#######.", "#.....#.", "#.....#.", "........"},
	'B': {"######..", "#.....#.", "######..", "#.....#.", "#.....#.", "#.....#.", "######..", "........"},
	'C': {".#####..", "#.....#.", "#.......", "#.......", "#.......", "#.....#.", ".#####..", "........"},
	'D': {"######..", "#.....#.", "#.....#.", "#.....#.", "#.....#.", "#.....#.", "######..", "........"},
	'E': {"#######.", "#.......", "#####...", "#.......", "#.......", "#.......", "#######.", "........"},
	'F': {"#######.", "#.......", "#####...", "#.......", "#.......", "#.......", "#.......", "........"},
	'G': {".#####..", "#.....#.", "#.......", "#..####.", "#.....#.", "#.....#.", ".#####..", "........"},
	'H': {"#.....#.", "#.....#.", "#######.", "#.....#.", "#.....#.", "#.....#.", "#.....#.", "........"},
	'I': {"..###...", "...#....", "...#....", "...#....", "...#....", "...#....", "..###...", "........"},
	'J': {"....##..", ".....#..", ".....#..", ".....#..", "#....#..", "#....#..", ".####...", "........"},
	'K': {"#....#..", "#...#...", "#..#....", "###.....", "#..#....", "#...#...", "#....#..", "........"},
	'L': {"#.......", "#.......", "#.......", "#.......", "#.......", "#.......", "#######.", "........"},
	'M': {"#.....#.", "##...##.", "#.#.#.#.", "#..#..#.", "#.....#.", "#.....#.", "#.....#.", "........"},
	'N': {"#.....#.", "##....#.", "#.#...#.", "#..#..#.", "#...#.#.", "#....##.", "#.....#.", "........"},
	'O': {".#####..", "#.....#.", "#.....#.", "#.....#.", "#.....#.", "#.....#.", ".#####..", "........"},
	'P': {"######..", "#.....#.", "######..", "#.......", "#.......", "#.......", "#.......", "........"},
	'Q': {".#####..", "#.....#.", "#.....#.", "#.....#.", "#..#..#.", "#...#...", ".####.#.", "........"},
	'R': {"######..", "#.....#.", "######..", "#...#...", "#....#..", "#.....#.", "#.....#.", "........"},
	'S': {".#####..", "#.......", ".#####..", "......#.", "......#.", "......#.", "######..", "........"},
	'T': {"#######.", "...#....", "...#....", "...#....", "...#....", "...#....", "...#....", "........"},
	'U': {"#.....#.", "#.....#.", "#.....#.", "#.....#.", "#.....#.", "#.....#.", ".#####..", "........"},
	'V': {"#.....#.", "#.....#.", "#.....#.", "#.....#.", ".#...#..", "..#.#...", "...#....", "........"},
	'W': {"#.....#.", "#.....#.", "#.....#.", "#..#..#.", "#.#.#.#.", "##...##.", "#.....#.", "........"},
	'X': {"#.....#.", ".#...#..", "..#.#...", "...#....", "..#.#...", ".#...#..", "#.....#.", "........"},
	'Y': {"#.....#.", ".#...#..", "..#.#...", "...#....", "...#....", "...#....", "...#....", "........"},
	'Z': {"#######.", ".....#..", "....#...", "...#....", "..#.....", ".#......", "#######.", "........"},
	'.': {"........", "........", "........", "........", "........", "..##....", "..##....", "........"},
	',': {"........", "........", "........", "........", "..##....", "..##....", "..#.....", ".#......"},
	':': {"........", "..##....", "..##....", "........", "..##....", "..##....", "........", "........"},
	';': {"........", "..##....", "..##....", "........", "..##....", "..##....", "..#.....", ".#......"},
	'!': {"...#....", "...#....", "...#....", "...#....", "...#....", "........", "...#....", "........"},
	'?': {".####...", "#....#..", ".....#..", "....#...", "...#....", "........", "...#....", "........"},
	'-': {"........", "........", "........", ".#####..", "........", "........", "........", "........"},
	'_': {"........", "........", "........", "........", "........", "........", "########", "........"},
	'/': {".....#..", "....#...", "...#....", "..#.....", ".#......", "#.......", "........", "........"},
	'\'': {"..#.....", "..#.....", "........", "........", "........", "........", "........", "........"},
	'"': {".#.#....", ".#.#....", "........", "........", "........", "........", "........", "........"},
	'(': {"...#....", "..#.....", ".#......", ".#......", ".#......", "..#.....", "...#....", "........"},
	')': {".#......", "..#.....", "...#....", "...#....", "...#....", "..#.....", ".#......", "........"},
	'+': {"........", "...#....", "...#....", ".#####..", "...#....", "...#....", "........", "........"},
	'=': {"........", "........", ".#####..", "........", ".#####..", "........", "........", "........"},
	'*': {"........", "#..#..#.", ".#.#.#..", "..###...", ".#.#.#..", "#..#..#.", "........", "........"},
	'%': {"##...#..", "##..#...", "...#....", "..#.....", ".#..##..", "#..##.#.", "........", "........"},
}

// fallbackBox is used for any printable code without a hand-drawn
// pattern above: lowercase letters fall back to their uppercase glyph
// (a common monospace-font simplification on systems with no
// descenders); anything else gets a hollow box, a legible placeholder
// rather than garbage pixels.
var fallbackBox = [8]string{
	"########",
	"#......#",
	"#......#",
	"#......#",
	"#......#",
	"#......#",
	"#......#",
	"########",
}

func glyphBytes(rows [8]string) (out [8]byte) {
	for r, row := range rows {
		var b byte
		for c := 0; c < 8 && c < len(row); c++ {
			if row[c] == '#' {
				b |= 0x80 >> uint(c)
			}
		}
		out[r] = b
	}
	return out
}

// buildFont materializes the 96-entry glyph table indexed by
// ASCII-32..127.
func (g *Graphics) buildFont() {
	for code := 32; code <= 127; code++ {
		ch := rune(code)
		if rows, ok := glyphRows[ch]; ok {
			g.font[code-32] = glyphBytes(rows)
			continue
		}
		if ch >= 'a' && ch <= 'z' {
			if rows, ok := glyphRows[ch-32]; ok {
				g.font[code-32] = glyphBytes(rows)
				continue
			}
		}
		g.font[code-32] = glyphBytes(fallbackBox)
	}
}

// glyph returns the 8-row bitmap for code, defaulting to the space
// glyph for anything outside the printable ASCII 32..127 range.
func (g *Graphics) glyph(code byte) [8]byte {
	if code < 32 || code > 127 {
		code = 32
	}
	return g.font[code-32]
}

// CHAR renders the glyph for code at (VX,VY) on the current layer in
// color; bit 7 of each glyph row is the leftmost pixel, and background
// pixels (bit clear) are left transparent (unwritten). Glyphs that
// would extend off the 256x256 buffer are skipped entirely.
func (g *Graphics) CHAR(code, color byte) {
	x, y := int(g.vx), int(g.vy)
	if x < 0 || y < 0 || x+8 > Dim || y+8 > Dim {
		return
	}
	l := g.currentLayer()
	bitmap := g.glyph(code)
	for row := 0; row < 8; row++ {
		rowBits := bitmap[row]
		for col := 0; col < 8; col++ {
			if rowBits&(0x80>>uint(col)) != 0 {
				l[y+row][x+col] = color
			}
		}
	}
	g.markDirty(int(g.VL()))
}

// TEXT walks the null-terminated byte string at strAddr in mem, drawing
// each character with CHAR starting at (VX,VY); '\n' advances Y by 8
// and resets X to VX's original value, '\t' advances X by 9*4 (§4.4).
func (g *Graphics) TEXT(strAddr uint16, color byte, readByte func(uint16) byte) {
	startX := g.vx
	x, y := g.vx, g.vy
	for addr := strAddr; ; addr++ {
		b := readByte(addr)
		if b == 0 {
			break
		}
		switch b {
		case '\n':
			x = startX
			y += 8
		case '\t':
			x += 9 * 4
		default:
			g.vx, g.vy = x, y
			g.CHAR(b, color)
			x += 8
		}
	}
	g.vx, g.vy = x, y
}
