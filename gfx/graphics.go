// Package gfx implements the Nova-16 graphics coprocessor: nine
// composable 256x256 indexed-color layers (one main screen, four
// background, four sprite) plus a separate VRAM buffer, the VX/VY/VM/VL
// addressing registers, per-pixel blending, drawing primitives, the
// sprite blitter, and the 8x8 font text rasterizer.
package gfx

import "github.com/starfighterlily/nova16/memory"

// Dim is the width and height, in pixels, of every layer and of VRAM.
const Dim = 256

// Layer indices, per the data model: layer 0 is the main screen, 1..4
// are the background layers, 5..8 are the sprite layers.
const (
	LayerScreen    = 0
	LayerBG0       = 1
	LayerBG3       = 4
	LayerSprite0   = 5
	LayerSprite3   = 8
	NumLayers      = 9
	NumSpriteSlots = 4
)

// Blend modes for SWRITE/VX,VY pixel writes (§4.4).
const (
	BlendNormal = 0
	BlendAdd    = 1
	BlendSub    = 2
	BlendMul    = 3
	BlendScreen = 4
)

// layer is one 256x256 indexed-color pixel buffer.
type layer [Dim][Dim]byte

// Graphics holds all coprocessor state: the nine layers, VRAM, the
// VX/VY/VM/VL addressing registers, blend configuration, layer
// visibility, and the dirty flags the CPU and composition honor.
type Graphics struct {
	layers [NumLayers]layer
	vram   layer

	vx, vy, vm, vl byte

	blendMode  byte
	blendAlpha byte

	visibility [NumLayers]bool

	layersDirty bool
	screen      layer

	palette [256][3]byte
	font    [96][8]byte

	mem *memory.Memory
}

// New returns a Graphics coprocessor wired to mem (for sprite control
// block and SBLIT/VBLIT source reads), already reset.
func New(mem *memory.Memory) *Graphics {
	g := &Graphics{mem: mem}
	g.buildPalette()
	g.buildFont()
	g.Reset()
	return g
}

// Reset zeroes every layer and VRAM, zeroes the addressing
// registers, and restores default blend/visibility state. Palette and
// font are deterministic constants and are not regenerated.
func (g *Graphics) Reset() {
	for i := range g.layers {
		g.layers[i] = layer{}
	}
	g.vram = layer{}
	g.screen = layer{}
	g.vx, g.vy, g.vm, g.vl = 0, 0, 0, 0
	g.blendMode = BlendNormal
	g.blendAlpha = 255
	for i := range g.visibility {
		g.visibility[i] = true
	}
	g.layersDirty = false
}

// VX, VY, VM, VL are the addressing register accessors the CPU's
// register file aliases into (§6's register code table).
func (g *Graphics) VX() byte      { return g.vx }
func (g *Graphics) SetVX(v byte)  { g.vx = v }
func (g *Graphics) VY() byte      { return g.vy }
func (g *Graphics) SetVY(v byte)  { g.vy = v }
func (g *Graphics) VM() byte      { return g.vm }
func (g *Graphics) SetVM(v byte)  { g.vm = v }
func (g *Graphics) VL() byte      { return g.vl & 0x0F }
func (g *Graphics) SetVL(v byte)  { g.vl = v & 0x0F }

// SetBlendMode and SetBlendAlpha configure SWRITE's pixel-combine rule.
func (g *Graphics) SetBlendMode(m byte)  { g.blendMode = m }
func (g *Graphics) SetBlendAlpha(a byte) { g.blendAlpha = a }

// currentLayer resolves VL to one of the nine layer buffers, defaulting
// to the main screen for an out-of-range selector.
func (g *Graphics) currentLayer() *layer {
	return g.layerByIndex(int(g.VL()))
}

// layerByIndex returns the layer buffer addressed by idx (0..8),
// defaulting to the main screen for anything out of range.
func (g *Graphics) layerByIndex(idx int) *layer {
	if idx < 0 || idx >= NumLayers {
		return &g.layers[LayerScreen]
	}
	return &g.layers[idx]
}

// markDirty marks layersDirty when layer idx is anything but the base
// screen, per §4.4's composition rule and the layers_dirty invariant.
func (g *Graphics) markDirty(idx int) {
	if idx != LayerScreen {
		g.layersDirty = true
	}
}

// coords resolves the pixel address for the current VM mode: (VX, VY)
// directly in coordinate mode, or the packed linear address (VX<<8)|VY
// decoded to (addr%256, addr/256) in linear mode (§4.4).
func (g *Graphics) coords() (x, y int) {
	if g.vm == 0 {
		return int(g.vx), int(g.vy)
	}
	addr := int(g.vx)<<8 | int(g.vy)
	return addr % Dim, addr / Dim
}

// blend combines an existing pixel with an incoming one under the
// current blend mode and alpha (§4.4's blend formula table).
func (g *Graphics) blend(old, new byte) byte {
	alpha := float64(g.blendAlpha) / 255.0
	switch g.blendMode {
	case BlendAdd:
		return clamp255(float64(old) + float64(new)*alpha)
	case BlendSub:
		return clamp0(float64(old) - float64(new)*alpha)
	case BlendMul:
		return clamp255(float64(old) * float64(new) * alpha / 255.0)
	case BlendScreen:
		inv := 255.0 - (255.0-float64(old))*(255.0-float64(new))*alpha/255.0
		return clamp255(inv)
	default: // BlendNormal
		return new
	}
}

func clamp255(v float64) byte {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return byte(v)
}

func clamp0(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

// SWRITE blends val into the pixel addressed by (VX,VY,VM) on the
// current VL layer and stores the result.
func (g *Graphics) SWRITE(val byte) {
	x, y := g.coords()
	if x < 0 || x >= Dim || y < 0 || y >= Dim {
		return
	}
	l := g.currentLayer()
	l[y][x] = g.blend(l[y][x], val)
	g.markDirty(int(g.VL()))
}

// SREAD returns the pixel at (VX,VY,VM) on the current VL layer.
func (g *Graphics) SREAD() byte {
	x, y := g.coords()
	if x < 0 || x >= Dim || y < 0 || y >= Dim {
		return 0
	}
	l := g.currentLayer()
	return l[y][x]
}

// Palette returns the RGB triple for a palette index.
func (g *Graphics) Palette(index byte) (r, g2, b byte) {
	c := g.palette[index]
	return c[0], c[1], c[2]
}
