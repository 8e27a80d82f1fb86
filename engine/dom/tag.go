package dom

import "strings"

// Tag classifies a node of the content tree.
type Tag uint8

const (
	Ignored Tag = iota
	Text        // text leaf
	Html
	Body
	H1
	H2
	H3
	P
	Div
	Span
	B
	I
	Br
	Hr
	Image
	TableRow
	A
	Blockquote
	Section
	Code
)

var tagNames = [...]string{
	"Ignored", "Text", "Html", "Body", "H1", "H2", "H3", "P", "Div", "Span", "B", "I",
	"Br", "Hr", "Image", "TableRow", "A", "Blockquote", "Section", "Code",
}

func (t Tag) String() string {
	if int(t) >= len(tagNames) {
		return "<unknown tag>"
	}
	return tagNames[t]
}

// TagFromName maps an element name to a tag. Matching is case-insensitive
// and ignores a namespace prefix. Unknown names yield Ignored.
func TagFromName(name string) Tag {
	if i := strings.LastIndexByte(name, ':'); i >= 0 {
		name = name[i+1:]
	}
	switch strings.ToLower(name) {
	case "html":
		return Html
	case "body":
		return Body
	case "h1":
		return H1
	case "h2":
		return H2
	case "h3", "h4", "h5", "h6":
		return H3
	case "p":
		return P
	case "div":
		return Div
	case "span":
		return Span
	case "b", "strong":
		return B
	case "i", "em", "cite", "var", "dfn":
		return I
	case "br":
		return Br
	case "hr":
		return Hr
	case "img", "image":
		return Image
	case "tr":
		return TableRow
	case "a":
		return A
	case "blockquote":
		return Blockquote
	case "section", "article":
		return Section
	case "pre", "code", "tt", "kbd", "samp":
		return Code
	}
	return Ignored
}

// IsBlock is true for tags which start a new block of text.
func (t Tag) IsBlock() bool {
	switch t {
	case H1, H2, H3, P, Div, TableRow, Blockquote:
		return true
	}
	return false
}
