package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/npillmayer/folio/core/dimen"
	xdraw "golang.org/x/image/draw"
)

// Pixel sizes of bitmaps.
const (
	Gray = 1
	RGBA = 4
)

// Bitmap is a raw image. Pix holds Size.W × Size.H pixels, row by row,
// each pixel taking PixelSize bytes.
type Bitmap struct {
	Pix       []byte
	PixelSize int
	Size      dimen.Size
}

// FromImage converts an image to a bitmap. Grayscale images keep one byte
// per pixel, all other images are converted to non-premultiplied RGBA.
func FromImage(img image.Image) *Bitmap {
	b := img.Bounds()
	size := dimen.Size{W: b.Dx(), H: b.Dy()}
	if g, ok := img.(*image.Gray); ok {
		gray := image.NewGray(image.Rect(0, 0, size.W, size.H))
		xdraw.Copy(gray, image.Point{}, g, b, xdraw.Src, nil)
		return &Bitmap{Pix: gray.Pix, PixelSize: Gray, Size: size}
	}
	rgba := image.NewNRGBA(image.Rect(0, 0, size.W, size.H))
	xdraw.Copy(rgba, image.Point{}, img, b, xdraw.Src, nil)
	return &Bitmap{Pix: rgba.Pix, PixelSize: RGBA, Size: size}
}

// At returns the color of a pixel as 8-bit red, green and blue values.
// Alpha is ignored.
func (bm *Bitmap) At(x, y int) (r, g, b uint8) {
	i := (y*bm.Size.W + x) * bm.PixelSize
	if bm.PixelSize == Gray {
		v := bm.Pix[i]
		return v, v, v
	}
	return bm.Pix[i], bm.Pix[i+1], bm.Pix[i+2]
}

// Luminance returns the gray value of a pixel, using the weights of
// ITU-R BT.601.
func (bm *Bitmap) Luminance(x, y int) uint8 {
	r, g, b := bm.At(x, y)
	l := .299*float32(r) + .587*float32(g) + .114*float32(b)
	if l > 255 {
		l = 255
	}
	return uint8(l + 0.5)
}

// Image returns a view of the bitmap as an image.Image. The pixels are
// shared, not copied.
func (bm *Bitmap) Image() image.Image {
	r := image.Rect(0, 0, bm.Size.W, bm.Size.H)
	if bm.PixelSize == Gray {
		return &image.Gray{Pix: bm.Pix, Stride: bm.Size.W, Rect: r}
	}
	return &image.NRGBA{Pix: bm.Pix, Stride: bm.Size.W * 4, Rect: r}
}

// Rescale returns a copy of the bitmap, scaled by a factor. The result
// is at least 1×1 pixels. Scaling uses nearest neighbour sampling.
func (bm *Bitmap) Rescale(scale float32) *Bitmap {
	w := int(math.Max(1, math.Round(float64(float32(bm.Size.W)*scale))))
	h := int(math.Max(1, math.Round(float64(float32(bm.Size.H)*scale))))
	tracer().Debugf("rescaling bitmap %s by %.3f to %dx%d", bm.Size, scale, w, h)
	src := bm.Image()
	r := image.Rect(0, 0, w, h)
	if bm.PixelSize == Gray {
		dst := image.NewGray(r)
		xdraw.NearestNeighbor.Scale(dst, r, src, src.Bounds(), xdraw.Src, nil)
		return &Bitmap{Pix: dst.Pix, PixelSize: Gray, Size: dimen.Size{W: w, H: h}}
	}
	dst := image.NewNRGBA(r)
	xdraw.NearestNeighbor.Scale(dst, r, src, src.Bounds(), xdraw.Src, nil)
	return &Bitmap{Pix: dst.Pix, PixelSize: RGBA, Size: dimen.Size{W: w, H: h}}
}

// Uniform creates a bitmap of a single color, e.g. as a placeholder.
func Uniform(w, h int, c color.Color) *Bitmap {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, xdraw.Src)
	return FromImage(img)
}
