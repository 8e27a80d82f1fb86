package raster

import (
	"golang.org/x/image/vector"
)

// accumulator replays glyph outlines into a vector rasterizer. It
// implements font.OutlineBuilder.
//
// Outlines arrive in font units, y-up. The accumulator scales them and
// shifts them so that the glyph's left bearing is at x=0 and the font's
// descender at the bottom of the cell, then flips y for the rasterizer.
type accumulator struct {
	z      *vector.Rasterizer
	scale  float32
	dx, dy float32 // offset in pixels, applied after scaling
	height float32 // cell height in pixels
	open   bool
}

func newAccumulator() *accumulator {
	return &accumulator{z: vector.NewRasterizer(0, 0)}
}

// reset prepares the accumulator for a glyph cell of w × h pixels.
func (acc *accumulator) reset(w, h int, scale, dx, dy float32) {
	acc.z.Reset(w, h)
	acc.scale, acc.dx, acc.dy = scale, dx, dy
	acc.height = float32(h)
	acc.open = false
}

func (acc *accumulator) tx(x float32) float32 {
	return x*acc.scale + acc.dx
}

func (acc *accumulator) ty(y float32) float32 {
	return acc.height - (y*acc.scale + acc.dy)
}

func (acc *accumulator) MoveTo(x, y float32) {
	if acc.open { // previous subpath has not been closed
		acc.z.ClosePath()
	}
	acc.z.MoveTo(acc.tx(x), acc.ty(y))
	acc.open = true
}

func (acc *accumulator) LineTo(x, y float32) {
	acc.z.LineTo(acc.tx(x), acc.ty(y))
}

func (acc *accumulator) QuadTo(cx, cy, x, y float32) {
	acc.z.QuadTo(acc.tx(cx), acc.ty(cy), acc.tx(x), acc.ty(y))
}

func (acc *accumulator) CubeTo(c1x, c1y, c2x, c2y, x, y float32) {
	acc.z.CubeTo(acc.tx(c1x), acc.ty(c1y), acc.tx(c2x), acc.ty(c2y), acc.tx(x), acc.ty(y))
}

func (acc *accumulator) Close() {
	if acc.open {
		acc.z.ClosePath()
		acc.open = false
	}
}

// finish closes a dangling subpath.
func (acc *accumulator) finish() {
	acc.Close()
}
