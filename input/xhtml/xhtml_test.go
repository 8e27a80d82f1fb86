package xhtml

import (
	"testing"

	"github.com/npillmayer/folio/engine/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chapter = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:xlink="http://www.w3.org/1999/xlink">
<head><title>Chapter 1</title><style>p { color: red }</style></head>
<body class="chapter">
  <h1>Chapter   One</h1>
  <p>Café <b>bold</b> and <em>emphasis</em>.</p>
  <script>alert("no")</script>
  <ul><li>item</li></ul>
  <p><span style="font-weight: bold; font-style: italic">styled</span></p>
  <svg><image xlink:href="../images/cover.jpg" width="10" height="10"/></svg>
</body>
</html>`

func tags(n *dom.Node) []dom.Tag {
	var t []dom.Tag
	for _, ch := range n.Children() {
		if !ch.IsWhitespace() {
			t = append(t, ch.Tag)
		}
	}
	return t
}

func TestParseChapter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folio.layout")
	defer teardown()
	//
	root, err := ParseString(chapter)
	require.NoError(t, err)
	assert.Equal(t, dom.Body, root.Tag)
	class, _ := root.Attr("class")
	assert.Equal(t, "chapter", class)
	assert.Equal(t, []dom.Tag{dom.H1, dom.P, dom.Text, dom.P, dom.Image}, tags(root),
		"script is dropped, list is spliced, svg is spliced")
	//
	var h1, p *dom.Node
	for _, ch := range root.Children() {
		switch ch.Tag {
		case dom.H1:
			h1 = ch
		case dom.P:
			if p == nil {
				p = ch
			}
		}
	}
	require.NotNil(t, h1)
	assert.Equal(t, "Chapter One", h1.TextContent())
	require.NotNil(t, p)
	assert.Equal(t, "Café bold and emphasis.", p.TextContent(), "text is NFC normalized")
	assert.Equal(t, []dom.Tag{dom.Text, dom.B, dom.Text, dom.I, dom.Text}, tags(p))
}

func TestParseAttributesAndStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folio.layout")
	defer teardown()
	//
	root, err := ParseString(chapter)
	require.NoError(t, err)
	var span, img *dom.Node
	it := dom.NewIterator(root)
	for n := it.Next(); n != nil; n = it.Next() {
		switch n.Tag {
		case dom.Span:
			span = n
		case dom.Image:
			img = n
		}
	}
	require.NotNil(t, span)
	assert.Equal(t, dom.Strong|dom.Emph, span.Emphasis)
	require.NotNil(t, img)
	ref, ok := img.ImageRef()
	assert.True(t, ok)
	assert.Equal(t, "../images/cover.jpg", ref)
}

func TestEmphasis(t *testing.T) {
	assert.Equal(t, dom.Strong, emphasis("font-weight: 700"))
	assert.Equal(t, dom.Emphasis(0), emphasis("font-weight: 400"))
	assert.Equal(t, dom.Emph, emphasis("font-style: oblique 10deg"))
	assert.Equal(t, dom.Emphasis(0), emphasis("font-style: italic; font-style: normal"))
	assert.Equal(t, dom.Emphasis(0), emphasis(""))
}

func TestCollapse(t *testing.T) {
	assert.Equal(t, " a b ", collapse("\n  a \t b\n"))
	assert.Equal(t, " ", collapse("\n\n"))
}

func TestNoBody(t *testing.T) {
	root := FromHTML(nil)
	assert.Equal(t, dom.Body, root.Tag)
	assert.Empty(t, root.Children())
}
