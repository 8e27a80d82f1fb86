package raster

import (
	"image"
	"image/draw"
	"math"

	"github.com/npillmayer/folio/core/dimen"
	"github.com/npillmayer/folio/core/font"
	"github.com/npillmayer/folio/engine/typeset"
)

// PixelFunc receives a pixel of a rasterized glyph, in destination
// coordinates. ink is 0 for black and 255 for white; fully white pixels
// are never emitted.
type PixelFunc func(x, y int, ink uint8)

// Rasterizer rasterizes glyph runs. It keeps its coverage accumulator and
// mask between glyphs.
type Rasterizer struct {
	acc  *accumulator
	mask *image.Alpha
}

// NewRasterizer creates a rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		acc:  newAccumulator(),
		mask: image.NewAlpha(image.Rect(0, 0, 0, 0)),
	}
}

// RasterRun rasterizes a run with a fresh rasterizer, using the face of
// the family matching the run's style.
func RasterRun(fam *font.Family, run typeset.Run, destWidth int, emit PixelFunc) error {
	face, err := fam.Face(run.Style)
	if err != nil {
		return err
	}
	return NewRasterizer().Raster(face, run, destWidth, emit)
}

// cell describes the placement of a glyph's pixel cell.
type cell struct {
	w, h   int
	clip   image.Rectangle // clip rectangle in cell coordinates, y-up
	origin image.Point     // destination of the cell's top left pixel
}

// Raster rasterizes all glyphs of a run. Pixels left or right of the
// destination, i.e. outside of [0, destWidth), and pixels above the
// destination are dropped.
func (r *Rasterizer) Raster(face *font.Face, run typeset.Run, destWidth int, emit PixelFunc) error {
	otf, err := face.Open()
	if err != nil {
		return err
	}
	m, err := otf.Metrics()
	if err != nil {
		return err
	}
	scale := face.ScaleFactor(run.PointSize)
	for _, g := range run.Glyphs {
		gm, err := otf.GlyphMetrics(g.ID)
		if err != nil {
			return err
		}
		c := cell{
			w: int(math.Ceil(float64((gm.BBox.Max.X - g.Bearing) * scale))),
			h: int(math.Ceil(float64((m.Ascender - g.Descender) * scale))),
		}
		if c.w <= 0 || c.h <= 0 {
			continue // no ink, e.g. a blank glyph
		}
		c.clip = clipRect(gm.BBox, g.Bearing, g.Descender, scale)
		c.origin = image.Pt(
			int(g.Pos.X+g.Bearing*scale),
			int(g.Pos.Y),
		)
		r.acc.reset(c.w, c.h, scale, -g.Bearing*scale, -g.Descender*scale)
		if _, err := otf.Outline(g.ID, r.acc); err != nil {
			return err
		}
		r.acc.finish()
		r.coverage(c.w, c.h)
		emitCell(r.mask, c, destWidth, emit)
	}
	tracer().Debugf("rasterized %s", run)
	return nil
}

// coverage computes the coverage mask of the accumulated outline.
func (r *Rasterizer) coverage(w, h int) {
	if r.mask.Rect.Dx() < w || r.mask.Rect.Dy() < h {
		r.mask = image.NewAlpha(image.Rect(0, 0, w, h))
	}
	rect := image.Rect(0, 0, w, h)
	draw.Draw(r.mask, rect, image.Transparent, image.Point{}, draw.Src)
	r.acc.z.DrawOp = draw.Src
	r.acc.z.Draw(r.mask, rect, image.Opaque, image.Point{})
}

// clipRect transforms a glyph's bounding box into cell coordinates, y-up.
func clipRect(bbox dimen.Rect, bearing, descender, scale float32) image.Rectangle {
	floor := func(v float32) int { return int(math.Floor(float64(v))) }
	ceil := func(v float32) int { return int(math.Ceil(float64(v))) }
	return image.Rect(
		floor((bbox.Min.X-bearing)*scale),
		floor((bbox.Min.Y-descender)*scale),
		ceil((bbox.Max.X-bearing)*scale),
		ceil((bbox.Max.Y-descender)*scale),
	)
}

// emitCell hands the covered pixels of a cell to emit. Mask rows are
// y-down, the clip rectangle is y-up.
func emitCell(mask *image.Alpha, c cell, destWidth int, emit PixelFunc) {
	for row := 0; row < c.h; row++ {
		y := c.h - 1 - row // y-up
		if y < c.clip.Min.Y || y >= c.clip.Max.Y {
			continue
		}
		dy := c.origin.Y + row
		if dy < 0 {
			continue
		}
		for x := 0; x < c.w; x++ {
			if x < c.clip.Min.X || x >= c.clip.Max.X {
				continue
			}
			v := mask.Pix[row*mask.Stride+x]
			if v == 0 {
				continue
			}
			dx := c.origin.X + x
			if dx < 0 || dx >= destWidth {
				continue
			}
			emit(dx, dy, 255-v)
		}
	}
}
