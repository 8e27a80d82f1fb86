package font

import (
	"os"

	"github.com/npillmayer/folio/core"
	"golang.org/x/image/font/sfnt"
)

// Face is one concrete font of a family. It owns the font binary and a few
// values derived from it at construction time. A face is never mutated
// after creation.
type Face struct {
	Family     string // family name, as read from the font or given by the client
	Filepath   string // file path, if loaded from a file
	binary     []byte
	style      Style
	unitsPerEm float32
}

// NewFace creates a face from a font binary. The binary is parsed once for
// validation and to read the font's units per em. Parsing errors are
// wrapped as ErrFontFormat with code core.EFORMAT.
func NewFace(family string, style Style, fontdata []byte) (*Face, error) {
	sf, err := sfnt.Parse(fontdata)
	if err != nil {
		tracer().Errorf("cannot parse font %s %s: %v", family, style, err)
		return nil, core.WrapError(ErrFontFormat, core.EFORMAT,
			"font %s (%s) cannot be parsed: %v", family, style, err)
	}
	upem := sf.UnitsPerEm()
	if upem == 0 {
		return nil, core.WrapError(ErrFontFormat, core.EFORMAT,
			"font %s (%s) has units-per-em of 0", family, style)
	}
	return &Face{
		Family:     family,
		binary:     fontdata,
		style:      style,
		unitsPerEm: float32(upem),
	}, nil
}

// LoadFace reads a font file and creates a face from it.
func LoadFace(fontfile string, family string, style Style) (*Face, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "font file %s cannot be read", fontfile)
	}
	f, err := NewFace(family, style, bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// Style returns the style tag of a face.
func (f *Face) Style() Style {
	return f.style
}

// UnitsPerEm returns the design units per em of the font.
func (f *Face) UnitsPerEm() float32 {
	return f.unitsPerEm
}

// Binary returns the raw font data. Clients must not modify it.
func (f *Face) Binary() []byte {
	return f.binary
}

// ScaleFactor returns the factor to convert font design units to pixels
// for a given point size, assuming 96 DPI.
func (f *Face) ScaleFactor(pointSize float32) float32 {
	pxPerEm := pointSize * (96.0 / 72.0)
	return pxPerEm / f.unitsPerEm
}

// ScaledHeight returns the line height (ascender − descender + line gap)
// in pixels for a given point size.
func (f *Face) ScaledHeight(pointSize float32) (float32, error) {
	otf, err := f.Open()
	if err != nil {
		return 0, err
	}
	m, err := otf.Metrics()
	if err != nil {
		return 0, err
	}
	return m.Height() * f.ScaleFactor(pointSize), nil
}

// SpaceWidth returns the advance of the space glyph in pixels for a given
// point size. If the font has no space glyph, a NoGlyphError is returned.
func (f *Face) SpaceWidth(pointSize float32) (float32, error) {
	otf, err := f.Open()
	if err != nil {
		return 0, err
	}
	gid, err := otf.GlyphIndex(' ')
	if err != nil {
		return 0, err
	}
	gm, err := otf.GlyphMetrics(gid)
	if err != nil {
		return 0, err
	}
	return gm.Advance * f.ScaleFactor(pointSize), nil
}

// Open parses the face's binary and returns a view for querying glyphs,
// metrics and outlines. The view is not safe for concurrent use and is
// intended to live for a single layout or rasterization pass.
func (f *Face) Open() (*Font, error) {
	sf, err := sfnt.Parse(f.binary)
	if err != nil {
		return nil, core.WrapError(ErrFontFormat, core.EFORMAT,
			"font %s (%s) cannot be parsed: %v", f.Family, f.style, err)
	}
	return &Font{face: f, sf: sf}, nil
}

func (f *Face) String() string {
	return f.Family + " " + f.style.String()
}
