package dom

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildTree() *Node {
	// <body><h1>Title</h1><p>a <b>b</b></p><hr/></body>
	h1 := NewElement("h1").AppendChild(NewText("Title"))
	p := NewElement("P").
		AppendChild(NewText("a ")).
		AppendChild(NewElement("strong").AppendChild(NewText("b")))
	return NewElement("body").AppendChild(h1).AppendChild(p).AppendChild(NewElement("hr"))
}

func TestTagFromName(t *testing.T) {
	assert.Equal(t, I, TagFromName("em"))
	assert.Equal(t, B, TagFromName("STRONG"))
	assert.Equal(t, Image, TagFromName("svg:image"))
	assert.Equal(t, Image, TagFromName("img"))
	assert.Equal(t, TableRow, TagFromName("tr"))
	assert.Equal(t, Code, TagFromName("pre"))
	assert.Equal(t, Ignored, TagFromName("table"))
	assert.True(t, P.IsBlock())
	assert.False(t, Span.IsBlock())
}

func TestIteratorPreOrder(t *testing.T) {
	root := buildTree()
	var tags []string
	it := NewIterator(root)
	for n := it.Next(); n != nil; n = it.Next() {
		tags = append(tags, n.String())
	}
	assert.Equal(t, []string{
		"<Body>", "<H1>", `"Title"`, "<P>", `"a "`, "<B>", `"b"`, "<Hr>",
	}, tags)
	assert.Equal(t, "Titlea b", root.TextContent())
}

type recorder struct {
	events []string
	stopAt Tag
}

func (r *recorder) Enter(n *Node) error {
	if n.Tag == r.stopAt {
		return errors.New("stop")
	}
	r.events = append(r.events, "+"+n.Tag.String())
	return nil
}

func (r *recorder) Leave(n *Node) error {
	r.events = append(r.events, "-"+n.Tag.String())
	return nil
}

func TestWalk(t *testing.T) {
	root := buildTree()
	r := &recorder{stopAt: Ignored}
	assert.NoError(t, Walk(root, r))
	assert.Equal(t, "+Body +H1 +Text -Text -H1 +P +Text -Text +B +Text -Text -B -P +Hr -Hr -Body",
		strings.Join(r.events, " "))
	//
	r = &recorder{stopAt: B}
	assert.Error(t, Walk(root, r))
	assert.Equal(t, "-Text", r.events[len(r.events)-1])
}

func TestImageRef(t *testing.T) {
	img := NewElement("image")
	_, ok := img.ImageRef()
	assert.False(t, ok)
	img.SetAttr("src", "a.png")
	ref, _ := img.ImageRef()
	assert.Equal(t, "a.png", ref)
	img.SetAttr("href", "b.png")
	ref, _ = img.ImageRef()
	assert.Equal(t, "b.png", ref)
	assert.Equal(t, img, NewElement("p").AppendChild(img).Children()[0])
	assert.NotNil(t, img.Parent())
}
