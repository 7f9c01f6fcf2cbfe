package gfx

// SetLayerVisibility controls whether layer idx participates in
// composition.
func (g *Graphics) SetLayerVisibility(idx int, visible bool) {
	if idx < 0 || idx >= NumLayers {
		return
	}
	g.visibility[idx] = visible
	g.layersDirty = true
}

// LayerVisible reports whether layer idx is currently visible.
func (g *Graphics) LayerVisible(idx int) bool {
	if idx < 0 || idx >= NumLayers {
		return false
	}
	return g.visibility[idx]
}

// Dirty reports whether a composition is needed before the next read
// of Screen (the layers_dirty invariant, §8.7).
func (g *Graphics) Dirty() bool { return g.layersDirty }

// composite rebuilds g.screen from the nine layers in z-order: layer 0
// is the opaque base, layers 1..8 are drawn on top wherever their pixel
// is nonzero (0 is transparent) and the layer is visible (§4.4).
func (g *Graphics) composite() {
	if g.visibility[LayerScreen] {
		g.screen = g.layers[LayerScreen]
	} else {
		g.screen = layer{}
	}
	for idx := 1; idx < NumLayers; idx++ {
		if !g.visibility[idx] {
			continue
		}
		src := &g.layers[idx]
		for y := 0; y < Dim; y++ {
			for x := 0; x < Dim; x++ {
				if src[y][x] != 0 {
					g.screen[y][x] = src[y][x]
				}
			}
		}
	}
	g.layersDirty = false
}

// Screen returns the composited 256x256 byte buffer, recompositing
// first if any layer has been touched since the last composition
// (§6's get_screen contract).
func (g *Graphics) Screen() [Dim][Dim]byte {
	if g.layersDirty {
		g.composite()
	}
	return g.screen
}
