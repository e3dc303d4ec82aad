// Package ppu provides the video RAM tile cache. Raw VRAM bytes are
// the source of truth; the decoded tile set is derived data,
// recomputed synchronously on every write inside the tile data region.
// There is no separate invalidation step and no stale data.
package ppu

import (
	"image"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gbcore/internal/types"
)

const (
	// VRAMSize is the size of the video RAM window.
	VRAMSize = 0x2000
	// TileDataSize is the size of the tile data region at the start of
	// VRAM. Writes beyond it carry no tile data and are stored as-is.
	TileDataSize = 0x1800

	// TileCount is the number of tiles backed by the tile data region.
	// Each tile is 8 rows of 2 bytes.
	TileCount = TileDataSize / 16
)

// PPU holds the raw video RAM and the tile set derived from it. It is
// mutated only through WriteVRAM; a renderer consuming the tile set
// reads a snapshot between engine steps.
type PPU struct {
	vram    [VRAMSize]uint8
	tileSet [TileCount]Tile
}

// New returns a new PPU with empty VRAM and a blank tile set.
func New() *PPU {
	return &PPU{}
}

// ReadVRAM returns the raw byte at the given address. Addresses are
// relative to the start of the VRAM window.
func (p *PPU) ReadVRAM(address uint16) uint8 {
	return p.vram[address]
}

// WriteVRAM stores the raw byte at the given address, then, if the
// address falls inside the tile data region, re-derives the 8 pixels
// of the affected tile row from the row's two planar bytes.
func (p *PPU) WriteVRAM(address uint16, value uint8) {
	p.vram[address] = value

	if address >= TileDataSize {
		return
	}

	// normalize to the even offset of the row pair
	offset := address &^ 1
	lo := p.vram[offset]
	hi := p.vram[offset+1]

	tileIndex := offset / 16
	rowIndex := (offset % 16) / 2
	p.tileSet[tileIndex].decodeRow(int(rowIndex), lo, hi)
}

// Read implements mmu.IOBus.
func (p *PPU) Read(address uint16) uint8 {
	return p.ReadVRAM(address)
}

// Write implements mmu.IOBus.
func (p *PPU) Write(address uint16, value uint8) {
	p.WriteVRAM(address, value)
}

// Tile returns a copy of the decoded tile at the given index.
func (p *PPU) Tile(index int) Tile {
	return p.tileSet[index]
}

// Image renders the full tile set into an image, 16 tiles per row,
// for consumption by an external renderer or debugger.
func (p *PPU) Image() *image.RGBA {
	const perRow = 16
	img := image.NewRGBA(image.Rect(0, 0, perRow*8, TileCount/perRow*8))
	for i := range p.tileSet {
		p.tileSet[i].Draw(img, i%perRow*8, i/perRow*8)
	}
	return img
}

// Hash returns an xxhash digest of the decoded tile set, so a
// renderer can cheaply detect that nothing changed between frames.
func (p *PPU) Hash() uint64 {
	buf := make([]byte, 0, TileCount*64)
	for i := range p.tileSet {
		for y := 0; y < 8; y++ {
			buf = append(buf, p.tileSet[i][y][:]...)
		}
	}
	return xxhash.Sum64(buf)
}

var _ types.Stater = (*PPU)(nil)

// Save writes the raw VRAM contents to the given state. The tile set
// is derived data and not saved.
func (p *PPU) Save(s *types.State) {
	s.WriteData(p.vram[:])
}

// Load restores VRAM from the given state, replaying the bytes
// through WriteVRAM so the tile set is re-derived.
func (p *PPU) Load(s *types.State) {
	var raw [VRAMSize]uint8
	s.ReadData(raw[:])
	for i, v := range raw {
		p.WriteVRAM(uint16(i), v)
	}
}
