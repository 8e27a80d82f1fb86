package dom

import (
	"fmt"
	"strings"
)

// Emphasis holds inline emphasis hints of an element, as derived from
// style attributes.
type Emphasis uint8

// Emphasis flags
const (
	Strong Emphasis = 1 << iota // font-weight: bold
	Emph                        // font-style: italic or oblique
)

// Node is a node of the content tree, either a text leaf or an element.
type Node struct {
	Tag      Tag
	Name     string            // element name as found in the markup
	Text     string            // content of text nodes
	Attrs    map[string]string // attributes, keyed by local name
	Emphasis Emphasis
	parent   *Node
	children []*Node
}

// NewElement creates an element node.
func NewElement(name string) *Node {
	return &Node{Tag: TagFromName(name), Name: name}
}

// NewText creates a text node.
func NewText(text string) *Node {
	return &Node{Tag: Text, Text: text}
}

// IsText is true for text leafs.
func (n *Node) IsText() bool {
	return n.Tag == Text
}

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child nodes. Clients must not modify the slice.
func (n *Node) Children() []*Node {
	return n.children
}

// AppendChild appends a node to the children of n and returns n.
func (n *Node) AppendChild(child *Node) *Node {
	if child == nil {
		return n
	}
	child.parent = n
	n.children = append(n.children, child)
	return n
}

// SetAttr sets an attribute.
func (n *Node) SetAttr(key, value string) {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
}

// Attr returns the value of an attribute and whether it is present.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.Attrs[key]
	return v, ok
}

// ImageRef returns the image reference of an image element, taken from
// attributes href (any namespace, e.g. xlink:href) or src.
func (n *Node) ImageRef() (string, bool) {
	if v, ok := n.Attrs["href"]; ok && v != "" {
		return v, true
	}
	if v, ok := n.Attrs["src"]; ok && v != "" {
		return v, true
	}
	return "", false
}

// IsWhitespace is true for text nodes consisting of whitespace only.
func (n *Node) IsWhitespace() bool {
	return n.IsText() && strings.TrimSpace(n.Text) == ""
}

// TextContent returns the concatenated text of all text nodes below n.
func (n *Node) TextContent() string {
	var b strings.Builder
	it := NewIterator(n)
	for node := it.Next(); node != nil; node = it.Next() {
		if node.IsText() {
			b.WriteString(node.Text)
		}
	}
	return b.String()
}

func (n *Node) String() string {
	if n.IsText() {
		s := n.Text
		if len(s) > 20 {
			s = s[:17] + "..."
		}
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("<%s>", n.Tag)
}
