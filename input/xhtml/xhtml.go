package xhtml

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/folio/core"
	"github.com/npillmayer/folio/engine/dom"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

var bodySelector = cascadia.MustCompile("body")

// Parse reads an XHTML document and returns the dom tree of its body.
// A document without a body yields an empty body element.
func Parse(r io.Reader) (*dom.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, core.WrapError(err, core.EFORMAT, "cannot parse chapter document")
	}
	return FromHTML(doc), nil
}

// ParseString is a convenience variant of Parse.
func ParseString(s string) (*dom.Node, error) {
	return Parse(strings.NewReader(s))
}

// FromHTML converts the body of a parsed HTML document to a dom tree.
func FromHTML(doc *html.Node) *dom.Node {
	root := dom.NewElement("body")
	if doc == nil {
		return root
	}
	body := bodySelector.MatchFirst(doc)
	if body == nil {
		tracer().Infof("document has no body")
		return root
	}
	copyAttrs(root, body)
	convertChildren(root, body)
	tracer().Debugf("converted document body with %d top-level nodes", len(root.Children()))
	return root
}

func convertChildren(parent *dom.Node, h *html.Node) {
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		convert(parent, c)
	}
}

func convert(parent *dom.Node, h *html.Node) {
	switch h.Type {
	case html.TextNode:
		if t := collapse(norm.NFC.String(h.Data)); t != "" {
			parent.AppendChild(dom.NewText(t))
		}
	case html.ElementNode:
		name := h.Data
		if skipped(name) {
			return
		}
		if dom.TagFromName(name) == dom.Ignored {
			convertChildren(parent, h) // splice children of unknown elements
			return
		}
		n := dom.NewElement(name)
		copyAttrs(n, h)
		if style, ok := n.Attr("style"); ok {
			n.Emphasis = emphasis(style)
		}
		parent.AppendChild(n)
		convertChildren(n, h)
	}
}

func skipped(name string) bool {
	switch strings.ToLower(name) {
	case "script", "style", "head", "noscript", "template":
		return true
	}
	return false
}

// copyAttrs keys attributes by their local name, e.g. xlink:href is
// stored as href.
func copyAttrs(n *dom.Node, h *html.Node) {
	for _, a := range h.Attr {
		key := a.Key
		if i := strings.LastIndexByte(key, ':'); i >= 0 {
			key = key[i+1:]
		}
		n.SetAttr(strings.ToLower(key), a.Val)
	}
}

// collapse replaces runs of whitespace by a single space.
func collapse(s string) string {
	var b strings.Builder
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !space {
				b.WriteByte(' ')
			}
			space = true
			continue
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

// emphasis extracts bold and italic from an inline style attribute.
func emphasis(style string) dom.Emphasis {
	if strings.TrimSpace(style) == "" {
		return 0
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		tracer().Debugf("ignoring malformed style attribute %q: %v", style, err)
		return 0
	}
	var e dom.Emphasis
	for _, d := range decls {
		v := strings.ToLower(strings.TrimSpace(d.Value))
		switch strings.ToLower(d.Property) {
		case "font-weight":
			if isBold(v) {
				e |= dom.Strong
			} else {
				e &^= dom.Strong
			}
		case "font-style":
			if v == "italic" || strings.HasPrefix(v, "oblique") {
				e |= dom.Emph
			} else {
				e &^= dom.Emph
			}
		}
	}
	return e
}

func isBold(v string) bool {
	switch v {
	case "bold", "bolder":
		return true
	}
	w, err := strconv.Atoi(v)
	return err == nil && w >= 700
}
