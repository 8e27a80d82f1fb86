package paginate

import (
	"fmt"

	"github.com/npillmayer/folio/core/dimen"
	"github.com/npillmayer/folio/core/imaging"
	"github.com/npillmayer/folio/engine/typeset"
)

// Element is an item placed on a page. It is one of *TextElement,
// *RuleElement or *ImageElement.
type Element interface {
	isElement()
}

// TextElement is a typeset run of glyphs.
type TextElement struct {
	Run typeset.Run
}

// RuleElement is a horizontal rule, covering the rectangle between
// Start and End.
type RuleElement struct {
	Start, End dimen.Point
}

// ImageElement is a bitmap with its top left corner at At.
type ImageElement struct {
	At     dimen.Point
	Bitmap *imaging.Bitmap
}

func (*TextElement) isElement()  {}
func (*RuleElement) isElement()  {}
func (*ImageElement) isElement() {}

// Page is a sealed page of a chapter.
type Page struct {
	Elements []Element
}

// Empty is true for a page without elements.
func (p *Page) Empty() bool {
	return len(p.Elements) == 0
}

// GlyphCount returns the number of glyphs on a page.
func (p *Page) GlyphCount() int {
	n := 0
	for _, e := range p.Elements {
		if t, ok := e.(*TextElement); ok {
			n += len(t.Run.Glyphs)
		}
	}
	return n
}

func (p *Page) add(e Element) {
	p.Elements = append(p.Elements, e)
}

func (p *Page) String() string {
	var texts, rules, images int
	for _, e := range p.Elements {
		switch e.(type) {
		case *TextElement:
			texts++
		case *RuleElement:
			rules++
		case *ImageElement:
			images++
		}
	}
	return fmt.Sprintf("page[%d runs, %d rules, %d images]", texts, rules, images)
}
