package epub

import (
	"archive/zip"
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/folio/core"
	"github.com/npillmayer/folio/core/dimen"
	"github.com/npillmayer/folio/engine/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const container = `<?xml version="1.0"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`

const opf = `<?xml version="1.0" encoding="UTF-8"?>
<package xmlns="http://www.idpf.org/2007/opf" version="3.0" unique-identifier="id">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
    <dc:title> A Small Book </dc:title>
    <meta name="cover" content="cover-image"/>
  </metadata>
  <manifest>
    <item id="c2" href="text/ch2.xhtml" media-type="application/xhtml+xml"/>
    <item id="c1" href="text/ch1.xhtml" media-type="application/xhtml+xml"/>
    <item id="cover-image" href="images/cover.png" media-type="image/png"/>
  </manifest>
  <spine toc="ncx">
    <itemref idref="c1"/>
    <itemref idref="cover-image"/>
    <itemref idref="unknown"/>
    <itemref idref="c2"/>
  </spine>
</package>`

func chapterDoc(title, body string) string {
	return `<?xml version="1.0" encoding="UTF-8"?><html xmlns="http://www.w3.org/1999/xhtml">` +
		`<head><title>` + title + `</title></head><body>` + body + `</body></html>`
}

func writeBook(t *testing.T, files map[string]string) string {
	name := filepath.Join(t.TempDir(), "book.epub")
	f, err := os.Create(name)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for p, content := range files {
		w, err := zw.Create(p)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return name
}

func coverPNG(t *testing.T) string {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 5, 7))))
	return buf.String()
}

func TestOpenBook(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folio.resources")
	defer teardown()
	//
	name := writeBook(t, map[string]string{
		"mimetype":               "application/epub+zip",
		"META-INF/container.xml": container,
		"OEBPS/content.opf":      opf,
		"OEBPS/text/ch1.xhtml":   chapterDoc("One", `<h1>One</h1><img src="../images/cover.png"/>`),
		"OEBPS/text/ch2.xhtml":   chapterDoc("Two", `<p>Second chapter</p>`),
		"OEBPS/images/cover.png": coverPNG(t),
	})
	book, err := Open(name)
	require.NoError(t, err)
	defer book.Close()
	assert.Equal(t, "A Small Book", book.Title)
	require.Equal(t, 2, book.ChapterCount(), "non-HTML and unknown spine items are skipped")
	p, err := book.ChapterPath(0)
	require.NoError(t, err)
	assert.Equal(t, "OEBPS/text/ch1.xhtml", p)
	//
	ch, err := book.Chapter(1)
	require.NoError(t, err)
	assert.Equal(t, "Second chapter", strings.TrimSpace(ch.TextContent()))
	//
	ch, err = book.Chapter(0)
	require.NoError(t, err)
	var img *dom.Node
	for _, n := range ch.Children() {
		if n.Tag == dom.Image {
			img = n
		}
	}
	require.NotNil(t, img)
	ref, _ := img.ImageRef()
	images, err := book.Images(0)
	require.NoError(t, err)
	bm, err := images.Image(ref)
	require.NoError(t, err)
	assert.Equal(t, dimen.Size{W: 5, H: 7}, bm.Size)
	//
	_, err = book.Chapter(2)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestOpenMalformedBook(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folio.resources")
	defer teardown()
	//
	_, err := Open(writeBook(t, map[string]string{"mimetype": "application/epub+zip"}))
	assert.Equal(t, core.EMISSING, core.Code(err), "container.xml is missing")
	//
	_, err = Open(writeBook(t, map[string]string{
		"META-INF/container.xml": `<container><rootfiles/></container>`,
	}))
	assert.Equal(t, core.EFORMAT, core.Code(err))
	//
	_, err = Open(writeBook(t, map[string]string{
		"META-INF/container.xml": container,
		"OEBPS/content.opf":      `<package><manifest/><spine/></package>`,
	}))
	assert.Equal(t, core.EFORMAT, core.Code(err), "empty spine")
}

func TestNavigatorQueries(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(opf))
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "cover-image", "unknown", "c2"}, query(doc, itemrefExpr))
	items := queryElements(doc, itemExpr)
	require.Len(t, items, 3)
	assert.Equal(t, "text/ch2.xhtml", attr(items[0], "href"))
	assert.Equal(t, []string{" A Small Book "}, query(doc, titleExpr))
	//
	nav := newNavigator(doc)
	require.True(t, nav.MoveToChild())
	for nav.current.Type != html.ElementNode {
		require.True(t, nav.MoveToNext())
	}
	assert.Equal(t, "html", nav.LocalName())
	c := nav.Copy()
	assert.True(t, c.MoveToParent())
	assert.False(t, c.MoveToParent(), "cannot move above the root")
	assert.True(t, nav.MoveTo(c))
	assert.Same(t, doc, nav.current)
}
