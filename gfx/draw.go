package gfx

// inBounds reports whether (x,y) falls on the 256x256 buffer.
func inBounds(x, y int) bool {
	return x >= 0 && x < Dim && y >= 0 && y < Dim
}

func (g *Graphics) plot(l *layer, x, y int, color byte) {
	if inBounds(x, y) {
		l[y][x] = color
	}
}

// SLINE draws a Bresenham line from (x1,y1) to (x2,y2) on the current
// layer, clipping each plotted pixel to [0,255] (§4.4).
func (g *Graphics) SLINE(x1, y1, x2, y2 int, color byte) {
	l := g.currentLayer()
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 >= x2 {
		sx = -1
	}
	if y1 >= y2 {
		sy = -1
	}
	err := dx + dy
	x, y := x1, y1
	for {
		g.plot(l, x, y, color)
		if x == x2 && y == y2 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	g.markDirty(int(g.VL()))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// SRECT draws an axis-aligned rectangle between (x1,y1) and (x2,y2),
// filled or outlined, on the current layer.
func (g *Graphics) SRECT(x1, y1, x2, y2 int, color byte, filled bool) {
	l := g.currentLayer()
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if filled {
		for y := y1; y <= y2; y++ {
			for x := x1; x <= x2; x++ {
				g.plot(l, x, y, color)
			}
		}
	} else {
		for x := x1; x <= x2; x++ {
			g.plot(l, x, y1, color)
			g.plot(l, x, y2, color)
		}
		for y := y1; y <= y2; y++ {
			g.plot(l, x1, y, color)
			g.plot(l, x2, y, color)
		}
	}
	g.markDirty(int(g.VL()))
}

// SCIRC draws a circle centered at (cx,cy) with the given radius using
// the midpoint-circle algorithm: filled draws horizontal spans per row,
// unfilled plots the eight-symmetry points only (§4.4).
func (g *Graphics) SCIRC(cx, cy, radius int, color byte, filled bool) {
	l := g.currentLayer()
	x, y := radius, 0
	err := 1 - radius

	plotOctants := func(x, y int) {
		if filled {
			g.hline(l, cx-x, cx+x, cy+y, color)
			g.hline(l, cx-x, cx+x, cy-y, color)
			g.hline(l, cx-y, cx+y, cy+x, color)
			g.hline(l, cx-y, cx+y, cy-x, color)
		} else {
			g.plot(l, cx+x, cy+y, color)
			g.plot(l, cx-x, cy+y, color)
			g.plot(l, cx+x, cy-y, color)
			g.plot(l, cx-x, cy-y, color)
			g.plot(l, cx+y, cy+x, color)
			g.plot(l, cx-y, cy+x, color)
			g.plot(l, cx+y, cy-x, color)
			g.plot(l, cx-y, cy-x, color)
		}
	}

	for x >= y {
		plotOctants(x, y)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
	g.markDirty(int(g.VL()))
}

func (g *Graphics) hline(l *layer, x1, x2, y int, color byte) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		g.plot(l, x, y, color)
	}
}

// SINV inverts every pixel (255-pixel) on the current layer.
func (g *Graphics) SINV() {
	l := g.currentLayer()
	for y := 0; y < Dim; y++ {
		for x := 0; x < Dim; x++ {
			l[y][x] = 255 - l[y][x]
		}
	}
	g.markDirty(int(g.VL()))
}

// SFILL fills the current layer with color.
func (g *Graphics) SFILL(color byte) {
	l := g.currentLayer()
	for y := 0; y < Dim; y++ {
		for x := 0; x < Dim; x++ {
			l[y][x] = color
		}
	}
	g.markDirty(int(g.VL()))
}

// SBLIT copies a 256x256 byte region from mem starting at addr into the
// current layer, row-major (§4.4).
func (g *Graphics) SBLIT(addr uint16, readBlock func(uint16, int) []byte) {
	data := readBlock(addr, Dim*Dim)
	l := g.currentLayer()
	for y := 0; y < Dim; y++ {
		copy(l[y][:], data[y*Dim:(y+1)*Dim])
	}
	g.markDirty(int(g.VL()))
}
