package gfx

// Axis selectors for the roll/shift/flip family (§4.2).
const (
	AxisX = 0
	AxisY = 1
)

// rollLayer wraps l's rows (axis=Y) or columns (axis=X) by amount,
// pixels that fall off one edge reappearing at the other.
func rollLayer(l *layer, axis int, amount int) {
	if axis == AxisX {
		amount = ((amount % Dim) + Dim) % Dim
		if amount == 0 {
			return
		}
		for y := 0; y < Dim; y++ {
			var row [Dim]byte
			for x := 0; x < Dim; x++ {
				row[(x+amount)%Dim] = l[y][x]
			}
			l[y] = row
		}
		return
	}
	amount = ((amount % Dim) + Dim) % Dim
	if amount == 0 {
		return
	}
	var shifted layer
	for y := 0; y < Dim; y++ {
		shifted[(y+amount)%Dim] = l[y]
	}
	*l = shifted
}

// shiftLayer moves pixels by amount along axis, zero-filling the
// vacated edge rather than wrapping (§4.4).
func shiftLayer(l *layer, axis int, amount int) {
	if axis == AxisX {
		var out layer
		for y := 0; y < Dim; y++ {
			for x := 0; x < Dim; x++ {
				nx := x + amount
				if nx >= 0 && nx < Dim {
					out[y][nx] = l[y][x]
				}
			}
		}
		*l = out
		return
	}
	var out layer
	for y := 0; y < Dim; y++ {
		ny := y + amount
		if ny >= 0 && ny < Dim {
			out[ny] = l[y]
		}
	}
	*l = out
}

// flipLayer mirrors l horizontally (axis=X) or vertically (axis=Y).
func flipLayer(l *layer, axis int) {
	if axis == AxisX {
		for y := 0; y < Dim; y++ {
			for x := 0; x < Dim/2; x++ {
				l[y][x], l[y][Dim-1-x] = l[y][Dim-1-x], l[y][x]
			}
		}
		return
	}
	for y := 0; y < Dim/2; y++ {
		l[y], l[Dim-1-y] = l[Dim-1-y], l[y]
	}
}

// rotateLayer90CW rotates l clockwise by one 90-degree turn.
func rotateLayer90CW(l *layer) {
	var out layer
	for y := 0; y < Dim; y++ {
		for x := 0; x < Dim; x++ {
			out[x][Dim-1-y] = l[y][x]
		}
	}
	*l = out
}

// rotateLayer rotates l by quarters 90-degree turns; direction 0 is
// clockwise, nonzero is counterclockwise (three CW turns).
func rotateLayer(l *layer, direction, quarters int) {
	turns := ((quarters % 4) + 4) % 4
	if direction != 0 {
		turns = (4 - turns) % 4
	}
	for i := 0; i < turns; i++ {
		rotateLayer90CW(l)
	}
}

// SROL rolls the current VL layer by amount along axis, wrapping.
func (g *Graphics) SROL(axis, amount int) {
	rollLayer(g.currentLayer(), axis, amount)
	g.markDirty(int(g.VL()))
}

// SSHFT shifts the current VL layer by amount along axis, zero-filling.
func (g *Graphics) SSHFT(axis, amount int) {
	shiftLayer(g.currentLayer(), axis, amount)
	g.markDirty(int(g.VL()))
}

// SFLIP mirrors the current VL layer along axis.
func (g *Graphics) SFLIP(axis int) {
	flipLayer(g.currentLayer(), axis)
	g.markDirty(int(g.VL()))
}

// SROT rotates the current VL layer by amount 90-degree turns in
// direction.
func (g *Graphics) SROT(direction, amount int) {
	rotateLayer(g.currentLayer(), direction, amount)
	g.markDirty(int(g.VL()))
}

// LCPY copies layer src's contents into layer dst.
func (g *Graphics) LCPY(src, dst int) {
	*g.layerByIndex(dst) = *g.layerByIndex(src)
	g.markDirty(dst)
}

// LCLR clears layer to zero.
func (g *Graphics) LCLR(layerIdx int) {
	*g.layerByIndex(layerIdx) = layer{}
	g.markDirty(layerIdx)
}

// LMOV copies src into dst, then clears src.
func (g *Graphics) LMOV(src, dst int) {
	g.LCPY(src, dst)
	g.LCLR(src)
}

// LSHFT shifts layerIdx vertically by amount (the explicit-layer
// sibling of SSHFT; a fixed vertical axis keeps its two-operand
// encoding distinct from SSHFT's axis+amount pair).
func (g *Graphics) LSHFT(layerIdx, amount int) {
	shiftLayer(g.layerByIndex(layerIdx), AxisY, amount)
	g.markDirty(layerIdx)
}

// LROT rotates layerIdx clockwise by amount 90-degree turns.
func (g *Graphics) LROT(layerIdx, amount int) {
	rotateLayer(g.layerByIndex(layerIdx), 0, amount)
	g.markDirty(layerIdx)
}

// LFLIP mirrors layerIdx along axis.
func (g *Graphics) LFLIP(layerIdx, axis int) {
	flipLayer(g.layerByIndex(layerIdx), axis)
	g.markDirty(layerIdx)
}

// LSWAP exchanges the contents of layers a and b.
func (g *Graphics) LSWAP(a, b int) {
	la, lb := g.layerByIndex(a), g.layerByIndex(b)
	*la, *lb = *lb, *la
	g.markDirty(a)
	g.markDirty(b)
}
