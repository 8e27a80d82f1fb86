package canvas

import (
	"image"
	"image/png"
	"io"
	"math"

	"github.com/npillmayer/folio/backend/raster"
	"github.com/npillmayer/folio/core"
	"github.com/npillmayer/folio/core/dimen"
	"github.com/npillmayer/folio/core/font"
	"github.com/npillmayer/folio/core/imaging"
	"github.com/npillmayer/folio/engine/paginate"
)

const (
	white uint32 = 0x00ffffff
	black uint32 = 0x00000000
)

// Canvas is a white-initialized buffer of packed 0x00RRGGBB pixels,
// row by row.
type Canvas struct {
	Width, Height int
	Pix           []uint32
}

// New creates a white canvas. Negative dimensions are treated as 0.
func New(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{Width: w, Height: h, Pix: make([]uint32, w*h)}
	c.Blank()
	return c
}

// Blank resets every pixel to white.
func (c *Canvas) Blank() {
	for i := range c.Pix {
		c.Pix[i] = white
	}
}

func grey(v uint8) uint32 {
	g := uint32(v)
	return g<<16 | g<<8 | g
}

// Plot sets a grey pixel, unless the pixel is already darker.
// Coordinates outside the canvas are ignored.
func (c *Canvas) Plot(x, y int, ink uint8) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	i := y*c.Width + x
	if uint8(c.Pix[i]&0xff) > ink {
		c.Pix[i] = grey(ink)
	}
}

// At returns the pixel value at (x, y), or white outside the canvas.
func (c *Canvas) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return white
	}
	return c.Pix[y*c.Width+x]
}

// DrawRule fills the rectangle between start and end black.
func (c *Canvas) DrawRule(start, end dimen.Point) {
	x0, x1 := ordered(start.X, end.X)
	y0, y1 := ordered(start.Y, end.Y)
	r := image.Rect(x0, y0, x1, y1).Intersect(c.bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.Pix[y*c.Width+x] = black
		}
	}
}

func ordered(a, b float32) (int, int) {
	if a > b {
		a, b = b, a
	}
	return int(math.Floor(float64(a))), int(math.Ceil(float64(b)))
}

// DrawBitmap copies a bitmap in grey with its top left corner at at.
// Parts outside the canvas are clipped.
func (c *Canvas) DrawBitmap(at dimen.Point, bm *imaging.Bitmap) {
	if bm == nil {
		return
	}
	ox, oy := int(at.X), int(at.Y)
	dst := image.Rect(ox, oy, ox+bm.Size.W, oy+bm.Size.H).Intersect(c.bounds())
	for y := dst.Min.Y; y < dst.Max.Y; y++ {
		for x := dst.Min.X; x < dst.Max.X; x++ {
			c.Pix[y*c.Width+x] = grey(bm.Luminance(x-ox, y-oy))
		}
	}
}

func (c *Canvas) bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width, c.Height)
}

// RenderPage draws all elements of a page. Glyph runs are rasterized with
// the faces of fam.
func (c *Canvas) RenderPage(page *paginate.Page, fam *font.Family) error {
	if page == nil {
		return nil
	}
	if fam == nil {
		return core.Error(core.EINVALID, "cannot render page without font family")
	}
	r := raster.NewRasterizer()
	for _, e := range page.Elements {
		switch el := e.(type) {
		case *paginate.TextElement:
			face, err := fam.Face(el.Run.Style)
			if err != nil {
				return err
			}
			if err := r.Raster(face, el.Run, c.Width, c.Plot); err != nil {
				return err
			}
		case *paginate.RuleElement:
			c.DrawRule(el.Start, el.End)
		case *paginate.ImageElement:
			c.DrawBitmap(el.At, el.Bitmap)
		}
	}
	tracer().Debugf("rendered %s", page)
	return nil
}

// Image returns a copy of the canvas as an opaque RGBA image.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(c.bounds())
	for i, v := range c.Pix {
		j := i * 4
		img.Pix[j] = uint8(v >> 16)
		img.Pix[j+1] = uint8(v >> 8)
		img.Pix[j+2] = uint8(v)
		img.Pix[j+3] = 0xff
	}
	return img
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.Image()); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot encode page")
	}
	return nil
}
