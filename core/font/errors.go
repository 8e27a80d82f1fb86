package font

import (
	"errors"
	"fmt"
)

// ErrMissingFace is returned if a family has no face for a requested style.
// Faces are never synthesized (no faux-bold).
var ErrMissingFace = errors.New("family has no face for style")

// ErrFontFormat flags a font binary which cannot be parsed.
var ErrFontFormat = errors.New("malformed font data")

// NoGlyphError is returned for a character the font has no glyph for.
type NoGlyphError struct {
	Char rune
}

func (e NoGlyphError) Error() string {
	return fmt.Sprintf("no glyph for character %q (%U)", e.Char, e.Char)
}

// IsNoGlyph returns true if err signals a missing glyph.
func IsNoGlyph(err error) bool {
	var e NoGlyphError
	return errors.As(err, &e)
}
