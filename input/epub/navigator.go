package epub

import (
	"strings"

	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
)

// navigator implements xpath.NodeNavigator for trees of html.Node.
// Package documents of a book are parsed with the lenient HTML parser,
// which keeps namespace prefixes as part of element names. The navigator
// splits them off again, so that queries like //dc:title work.
type navigator struct {
	root, current *html.Node
	attr          int // attributes index, -1 if positioned on an element
}

func newNavigator(root *html.Node) *navigator {
	return &navigator{root: root, current: root, attr: -1}
}

var _ xpath.NodeNavigator = &navigator{}

func (nav *navigator) NodeType() xpath.NodeType {
	switch nav.current.Type {
	case html.CommentNode:
		return xpath.CommentNode
	case html.TextNode:
		return xpath.TextNode
	case html.ElementNode:
		if nav.attr != -1 {
			return xpath.AttributeNode
		}
		return xpath.ElementNode
	}
	// documents and <!DOCTYPE> declarations
	return xpath.RootNode
}

func splitName(name string) (prefix, local string) {
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}

func (nav *navigator) LocalName() string {
	if nav.attr != -1 {
		_, local := splitName(nav.current.Attr[nav.attr].Key)
		return local
	}
	_, local := splitName(nav.current.Data)
	return local
}

func (nav *navigator) Prefix() string {
	if nav.attr != -1 {
		a := nav.current.Attr[nav.attr]
		if a.Namespace != "" {
			return a.Namespace
		}
		prefix, _ := splitName(a.Key)
		return prefix
	}
	prefix, _ := splitName(nav.current.Data)
	return prefix
}

func (nav *navigator) Value() string {
	switch nav.current.Type {
	case html.CommentNode:
		return nav.current.Data
	case html.ElementNode:
		if nav.attr != -1 {
			return nav.current.Attr[nav.attr].Val
		}
		return innerText(nav.current)
	case html.TextNode:
		return nav.current.Data
	}
	return innerText(nav.current)
}

func (nav *navigator) Copy() xpath.NodeNavigator {
	n := *nav
	return &n
}

func (nav *navigator) MoveToRoot() {
	nav.current = nav.root
	nav.attr = -1
}

func (nav *navigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1
		return true
	}
	if nav.current == nav.root || nav.current.Parent == nil {
		return false
	}
	nav.current = nav.current.Parent
	return true
}

func (nav *navigator) MoveToNextAttribute() bool {
	if nav.attr >= len(nav.current.Attr)-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *navigator) MoveToChild() bool {
	if nav.attr != -1 || nav.current.FirstChild == nil {
		return false
	}
	nav.current = nav.current.FirstChild
	return true
}

func (nav *navigator) MoveToFirst() bool {
	if nav.attr != -1 || nav.current.PrevSibling == nil {
		return false
	}
	for nav.current.PrevSibling != nil {
		nav.current = nav.current.PrevSibling
	}
	return true
}

func (nav *navigator) MoveToNext() bool {
	if nav.attr != -1 || nav.current == nav.root || nav.current.NextSibling == nil {
		return false
	}
	nav.current = nav.current.NextSibling
	return true
}

func (nav *navigator) MoveToPrevious() bool {
	if nav.attr != -1 || nav.current == nav.root || nav.current.PrevSibling == nil {
		return false
	}
	nav.current = nav.current.PrevSibling
	return true
}

func (nav *navigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*navigator)
	if !ok || n.root != nav.root {
		return false
	}
	nav.current = n.current
	nav.attr = n.attr
	return true
}

func (nav *navigator) String() string {
	return nav.Value()
}

// innerText returns the text between the start and end tags of a node.
func innerText(n *html.Node) string {
	var b strings.Builder
	var output func(*html.Node)
	output = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.CommentNode:
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			output(child)
		}
	}
	output(n)
	return b.String()
}

// --- Queries ---------------------------------------------------------------

// query evaluates an XPath expression and returns the values of all
// selected nodes.
func query(root *html.Node, expr *xpath.Expr) []string {
	var values []string
	it := expr.Select(newNavigator(root))
	for it.MoveNext() {
		values = append(values, it.Current().Value())
	}
	return values
}

// queryElements evaluates an XPath expression and returns the selected
// element nodes.
func queryElements(root *html.Node, expr *xpath.Expr) []*html.Node {
	var nodes []*html.Node
	it := expr.Select(newNavigator(root))
	for it.MoveNext() {
		if nav, ok := it.Current().(*navigator); ok && nav.attr == -1 {
			nodes = append(nodes, nav.current)
		}
	}
	return nodes
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
