package raster

import (
	"image"
	"testing"

	"github.com/npillmayer/folio/core/dimen"
	"github.com/npillmayer/folio/core/font"
	"github.com/npillmayer/folio/core/parameters"
	"github.com/npillmayer/folio/engine/caret"
	"github.com/npillmayer/folio/engine/typeset"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pixel struct {
	x, y int
	ink  uint8
}

func collect(pixels *[]pixel) PixelFunc {
	return func(x, y int, ink uint8) {
		*pixels = append(*pixels, pixel{x, y, ink})
	}
}

func typesetText(t *testing.T, text string) (parameters.TypesetConfig, typeset.Run) {
	conf := parameters.TypesetConfig{
		Family:           font.FallbackFamily(),
		PointSize:        18,
		PageWidth:        640,
		PageHeight:       480,
		HorizontalMargin: 16,
		VerticalMargin:   16,
	}
	c, err := caret.New(conf)
	require.NoError(t, err)
	res, err := typeset.Typeset(conf, c, []rune(text), 0, font.Regular)
	require.NoError(t, err)
	return conf, res.Run
}

func TestRasterStaysInBoundingBox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folio.raster")
	defer teardown()
	//
	conf, run := typesetText(t, "Hg")
	face, err := conf.Family.Face(font.Regular)
	require.NoError(t, err)
	otf, err := face.Open()
	require.NoError(t, err)
	m, err := otf.Metrics()
	require.NoError(t, err)
	s := face.ScaleFactor(run.PointSize)
	//
	for _, g := range run.Glyphs {
		var pixels []pixel
		single := typeset.Run{Glyphs: []typeset.Glyph{g}, PointSize: run.PointSize, Style: run.Style}
		require.NoError(t, NewRasterizer().Raster(face, single, conf.PageWidth, collect(&pixels)))
		require.NotEmpty(t, pixels, "glyph %d has no ink", g.ID)
		gm, err := otf.GlyphMetrics(g.ID)
		require.NoError(t, err)
		// bounding box in destination coordinates (y-down)
		baseline := g.Pos.Y + m.Ascender*s
		minX := g.Pos.X + gm.BBox.Min.X*s
		maxX := g.Pos.X + gm.BBox.Max.X*s
		minY := baseline - gm.BBox.Max.Y*s
		maxY := baseline - gm.BBox.Min.Y*s
		dark := 0
		for _, p := range pixels {
			assert.GreaterOrEqual(t, float32(p.x), minX-2, "pixel %v left of bbox", p)
			assert.LessOrEqual(t, float32(p.x), maxX+2, "pixel %v right of bbox", p)
			assert.GreaterOrEqual(t, float32(p.y), minY-2, "pixel %v above bbox", p)
			assert.LessOrEqual(t, float32(p.y), maxY+2, "pixel %v below bbox", p)
			assert.Less(t, p.ink, uint8(255))
			if p.ink < 64 {
				dark++
			}
		}
		assert.Greater(t, dark, 10, "glyph %d is expected to have solid ink", g.ID)
	}
}

func TestRasterDropsOutsideDestination(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folio.raster")
	defer teardown()
	//
	conf, run := typesetText(t, "WWW")
	var all, clipped []pixel
	require.NoError(t, RasterRun(conf.Family, run, conf.PageWidth, collect(&all)))
	narrow := 40
	require.NoError(t, RasterRun(conf.Family, run, narrow, collect(&clipped)))
	assert.Less(t, len(clipped), len(all))
	for _, p := range clipped {
		assert.True(t, p.x >= 0 && p.x < narrow && p.y >= 0)
	}
	//
	run.Glyphs[0].Pos = dimen.Pt(16, -20) // partly above the destination
	var above []pixel
	require.NoError(t, RasterRun(conf.Family, run, conf.PageWidth, collect(&above)))
	for _, p := range above {
		assert.GreaterOrEqual(t, p.y, 0)
	}
}

func TestRasterIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folio.raster")
	defer teardown()
	//
	conf, run := typesetText(t, "Rasterize me")
	var p1, p2 []pixel
	r := NewRasterizer()
	require.NoError(t, RasterRun(conf.Family, run, conf.PageWidth, collect(&p1)))
	face, _ := conf.Family.Face(font.Regular)
	require.NoError(t, r.Raster(face, run, conf.PageWidth, collect(&p2)))
	assert.Equal(t, p1, p2)
}

func TestEmitCellClips(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 10, 10))
	for i := range mask.Pix {
		mask.Pix[i] = 200 // coverage everywhere, also outside the glyph box
	}
	c := cell{w: 10, h: 10, clip: image.Rect(2, 3, 6, 8), origin: image.Pt(100, 50)}
	var pixels []pixel
	emitCell(mask, c, 640, collect(&pixels))
	assert.Len(t, pixels, 4*5)
	for _, p := range pixels {
		x, yUp := p.x-100, 10-1-(p.y-50)
		assert.True(t, x >= 2 && x < 6, "x=%d outside clip", x)
		assert.True(t, yUp >= 3 && yUp < 8, "y=%d outside clip", yUp)
		assert.Equal(t, uint8(55), p.ink)
	}
}

func TestClipRect(t *testing.T) {
	bbox := dimen.Rect{Min: dimen.Pt(100, -200), Max: dimen.Pt(1100, 1400)}
	r := clipRect(bbox, 100, -400, 0.5)
	assert.Equal(t, image.Rect(0, 100, 500, 900), r)
}

type square struct{ closeExplicitly bool }

func (sq square) replay(acc *accumulator) {
	acc.MoveTo(10, 10)
	acc.LineTo(90, 10)
	acc.LineTo(90, 90)
	acc.LineTo(10, 90)
	if sq.closeExplicitly {
		acc.Close()
	}
	acc.MoveTo(200, 200) // degenerate second subpath
	acc.finish()
}

func TestAccumulatorClosesSubpaths(t *testing.T) {
	masks := make([][]byte, 2)
	for i, explicit := range []bool{true, false} {
		r := NewRasterizer()
		r.acc.reset(12, 12, 0.1, 0, 0)
		square{closeExplicitly: explicit}.replay(r.acc)
		r.coverage(12, 12)
		masks[i] = append([]byte(nil), r.mask.Pix...)
	}
	assert.Equal(t, masks[0], masks[1])
	sum := 0
	for _, v := range masks[0] {
		sum += int(v)
	}
	// 8×8 pixel square
	assert.InDelta(t, 64*255, sum, 64*255*0.02)
}
