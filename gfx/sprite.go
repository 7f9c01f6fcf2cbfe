package gfx

import "github.com/starfighterlily/nova16/memory"

// spriteControlBlock is the decoded 16-byte memory-mapped sprite
// record (§3's sprite control block table).
type spriteControlBlock struct {
	dataAddr         uint16
	x, y             byte
	width, height    byte
	active           bool
	transparent      bool
	transparentColor byte
	layer            int // 5 or 6, per flags bit 7
}

func (g *Graphics) readSpriteControlBlock(index int) spriteControlBlock {
	base := uint16(memory.SpriteRegionStart + index*memory.SpriteBlockSize)
	hi := g.mem.ReadByte(base)
	lo := g.mem.ReadByte(base + 1)
	flags := g.mem.ReadByte(base + 6)
	layer := LayerSprite0
	if flags&0x80 != 0 {
		layer = LayerSprite0 + 1
	}
	return spriteControlBlock{
		dataAddr:         uint16(hi)<<8 | uint16(lo),
		x:                g.mem.ReadByte(base + 2),
		y:                g.mem.ReadByte(base + 3),
		width:            g.mem.ReadByte(base + 4),
		height:           g.mem.ReadByte(base + 5),
		active:           flags&0x01 != 0,
		transparent:      flags&0x02 != 0,
		transparentColor: g.mem.ReadByte(base + 7),
		layer:            layer,
	}
}

// SPBLIT blits a single sprite (0..15) onto its designated layer, per
// the sprite control block read from memory.
func (g *Graphics) SPBLIT(index int) {
	if index < 0 || index >= memory.NumSprites {
		return
	}
	g.blitOneSprite(g.readSpriteControlBlock(index))
}

// SPBLITALL clears sprite layers 5 and 6, then blits every active
// sprite (0..15) in order, per §4.4's "blit all sprites" operation.
func (g *Graphics) SPBLITALL() {
	g.layers[LayerSprite0] = layer{}
	g.layers[LayerSprite0+1] = layer{}
	for i := 0; i < memory.NumSprites; i++ {
		g.blitOneSprite(g.readSpriteControlBlock(i))
	}
	g.layersDirty = true
}

func (g *Graphics) blitOneSprite(s spriteControlBlock) {
	if !s.active || s.width == 0 || s.height == 0 {
		return
	}
	w, h := int(s.width), int(s.height)
	size := w * h
	if int(s.dataAddr)+size > memory.Size {
		return
	}
	pixels := make([]byte, size)
	for i := 0; i < size; i++ {
		pixels[i] = g.mem.ReadByte(s.dataAddr + uint16(i))
	}

	ox, oy := int(s.x), int(s.y)
	if ox >= Dim || oy >= Dim || ox+w <= 0 || oy+h <= 0 {
		return
	}

	target := &g.layers[s.layer]
	for row := 0; row < h; row++ {
		py := oy + row
		if py < 0 || py >= Dim {
			continue
		}
		for col := 0; col < w; col++ {
			px := ox + col
			if px < 0 || px >= Dim {
				continue
			}
			val := pixels[row*w+col]
			if s.transparent && val == s.transparentColor {
				continue
			}
			target[py][px] = val
		}
	}
	g.layersDirty = true
}
