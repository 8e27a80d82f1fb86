package font

import "strings"

// Style selects a face within a family.
type Style int8

// The closed set of styles a family may offer.
const (
	Regular Style = iota
	Bold
	Italic
	BoldItalic
	Mono
)

var styleNames = [...]string{"Regular", "Bold", "Italic", "Bold Italic", "Mono"}

func (s Style) String() string {
	if s < Regular || s > Mono {
		return "<unknown style>"
	}
	return styleNames[s]
}

// Styles lists all styles in canonical order.
func Styles() []Style {
	return []Style{Regular, Bold, Italic, BoldItalic, Mono}
}

// With composes two styles, as needed for nested emphasis. Bold within
// italic (or vice versa) yields BoldItalic. Mono always wins, as there
// are no bold or italic monospace variants in a family.
func (s Style) With(other Style) Style {
	if s == Mono || other == Mono {
		return Mono
	}
	bold := s == Bold || s == BoldItalic || other == Bold || other == BoldItalic
	italic := s == Italic || s == BoldItalic || other == Italic || other == BoldItalic
	switch {
	case bold && italic:
		return BoldItalic
	case bold:
		return Bold
	case italic:
		return Italic
	}
	return Regular
}

// StyleFromSubfamily classifies an OpenType subfamily name (name id 2).
// Unknown names are taken as Regular.
func StyleFromSubfamily(subfamily string) Style {
	switch strings.ToLower(strings.TrimSpace(subfamily)) {
	case "regular", "normal", "roman":
		return Regular
	case "bold":
		return Bold
	case "italic", "oblique":
		return Italic
	case "bold italic", "bolditalic", "bold oblique":
		return BoldItalic
	case "mono", "book":
		return Mono
	}
	return Regular
}
