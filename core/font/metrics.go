package font

import (
	"github.com/npillmayer/folio/core"
	"github.com/npillmayer/folio/core/dimen"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// GlyphIndex is the index of a glyph within a font.
type GlyphIndex = sfnt.GlyphIndex

// Font is a parsed view on a face's binary. All values are reported in
// font design units, with the y-axis pointing upwards.
type Font struct {
	face *Face
	sf   *sfnt.Font
	buf  sfnt.Buffer
}

// FontMetrics holds the global vertical metrics of a font.
type FontMetrics struct {
	UnitsPerEm float32
	Ascender   float32
	Descender  float32 // negative for descenders below the baseline
	LineGap    float32
}

// Height is the distance between two baselines, in font units.
func (m FontMetrics) Height() float32 {
	return m.Ascender - m.Descender + m.LineGap
}

// GlyphMetrics holds the horizontal metrics and bounding box of a glyph.
type GlyphMetrics struct {
	Advance float32
	LSB     float32 // left side bearing
	BBox    dimen.Rect
}

// Face returns the face this font has been opened from.
func (otf *Font) Face() *Face {
	return otf.face
}

// unscaled returns a ppem value for which sfnt reports plain font units
// in 26.6 fixed point.
func (otf *Font) unscaled() fixed.Int26_6 {
	return fixed.Int26_6(otf.sf.UnitsPerEm()) << 6
}

func units(x fixed.Int26_6) float32 {
	return float32(x) / 64
}

// Metrics returns ascender, descender and line gap of the font.
func (otf *Font) Metrics() (FontMetrics, error) {
	m, err := otf.sf.Metrics(&otf.buf, otf.unscaled(), xfont.HintingNone)
	if err != nil {
		return FontMetrics{}, core.WrapError(err, core.EFORMAT, "cannot read metrics of %s", otf.face)
	}
	asc, desc := units(m.Ascent), units(m.Descent)
	return FontMetrics{
		UnitsPerEm: otf.face.unitsPerEm,
		Ascender:   asc,
		Descender:  -desc,
		LineGap:    units(m.Height) - asc - desc,
	}, nil
}

// GlyphIndex maps a character to a glyph. Characters not covered by the
// font's cmap result in a NoGlyphError.
func (otf *Font) GlyphIndex(r rune) (GlyphIndex, error) {
	gid, err := otf.sf.GlyphIndex(&otf.buf, r)
	if err != nil {
		return 0, core.WrapError(err, core.EFORMAT, "cannot map character %q in %s", r, otf.face)
	}
	if gid == 0 {
		return 0, NoGlyphError{Char: r}
	}
	return gid, nil
}

// GlyphMetrics returns advance, left side bearing and bounding box of
// a glyph. The left side bearing is taken as the bounding box minimum x.
func (otf *Font) GlyphMetrics(gid GlyphIndex) (GlyphMetrics, error) {
	bounds, adv, err := otf.sf.GlyphBounds(&otf.buf, gid, otf.unscaled(), xfont.HintingNone)
	if err != nil {
		return GlyphMetrics{}, core.WrapError(err, core.EFORMAT, "no metrics for glyph %d in %s", gid, otf.face)
	}
	bbox := dimen.Rect{ // flip y-down bounds to y-up
		Min: dimen.Pt(units(bounds.Min.X), -units(bounds.Max.Y)),
		Max: dimen.Pt(units(bounds.Max.X), -units(bounds.Min.Y)),
	}
	return GlyphMetrics{
		Advance: units(adv),
		LSB:     bbox.Min.X,
		BBox:    bbox,
	}, nil
}

// OutlineBuilder receives the contours of a glyph outline, in font units
// with y pointing upwards.
type OutlineBuilder interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	QuadTo(cx, cy, x, y float32)
	CubeTo(c1x, c1y, c2x, c2y, x, y float32)
	Close()
}

// Outline walks the contours of a glyph and returns the glyph's bounding
// box. Every contour is terminated by a call to Close.
func (otf *Font) Outline(gid GlyphIndex, b OutlineBuilder) (dimen.Rect, error) {
	gm, err := otf.GlyphMetrics(gid)
	if err != nil {
		return dimen.Rect{}, err
	}
	segs, err := otf.sf.LoadGlyph(&otf.buf, gid, otf.unscaled(), nil)
	if err != nil {
		return dimen.Rect{}, core.WrapError(err, core.EFORMAT, "cannot load outline of glyph %d in %s", gid, otf.face)
	}
	pt := func(p fixed.Point26_6) (float32, float32) {
		return units(p.X), -units(p.Y)
	}
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				b.Close()
			}
			b.MoveTo(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			b.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			b.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(seg.Args[0])
			c2x, c2y := pt(seg.Args[1])
			x, y := pt(seg.Args[2])
			b.CubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		b.Close()
	}
	return gm.BBox, nil
}
