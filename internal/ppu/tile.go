package ppu

import (
	"image"
	"image/color"
)

// Tile represents a single tile. Each tile has a size of 8x8 pixels
// and a colour depth of 4 gray shades. A pixel value is the 2-bit
// combination of the bit-planar bytes that back it: the high byte of a
// row pair supplies the most significant bit, the low byte the least
// significant bit.
type Tile [8][8]uint8

// shades maps a 2-bit pixel value to an RGB gray shade.
var shades = [4][3]uint8{
	{0xFF, 0xFF, 0xFF},
	{0xAA, 0xAA, 0xAA},
	{0x55, 0x55, 0x55},
	{0x00, 0x00, 0x00},
}

// decodeRow unpacks one row of the tile from its two planar bytes.
// Bit 7 of each byte contributes to the leftmost pixel.
func (t *Tile) decodeRow(row int, lo, hi uint8) {
	for x := 0; x < 8; x++ {
		mask := uint8(1) << (7 - x)
		var value uint8
		if hi&mask != 0 {
			value |= 2
		}
		if lo&mask != 0 {
			value |= 1
		}
		t[row][x] = value
	}
}

// Draw draws the tile to the given image at the given position.
func (t *Tile) Draw(img *image.RGBA, x, y int) {
	for tileY := 0; tileY < 8; tileY++ {
		for tileX := 0; tileX < 8; tileX++ {
			rgb := shades[t[tileY][tileX]&3]
			img.Set(x+tileX, y+tileY, color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF})
		}
	}
}
