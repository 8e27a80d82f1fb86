package epub

import (
	"bytes"
	"path"
	"strings"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/folio/core"
	"github.com/npillmayer/folio/core/locate/resources"
	"github.com/npillmayer/folio/engine/dom"
	"github.com/npillmayer/folio/engine/paginate"
	"github.com/npillmayer/folio/input/xhtml"
	"golang.org/x/net/html"
)

const containerPath = "META-INF/container.xml"

var (
	rootfileExpr = xpath.MustCompile("//rootfile/@full-path")
	titleExpr    = xpath.MustCompile("//dc:title")
	itemExpr     = xpath.MustCompile("//item")
	itemrefExpr  = xpath.MustCompile("//itemref/@idref")
)

// Book is an opened EPUB container. Clients must close it after use.
type Book struct {
	Title   string
	archive *resources.Archive
	opf     string   // path of the package document
	spine   []string // archive paths of chapters, in reading order
}

// manifestItem is an entry of the package manifest.
type manifestItem struct {
	href, mediaType string
}

// Open opens an EPUB file and reads its package document.
func Open(filename string) (*Book, error) {
	a, err := resources.OpenArchive(filename)
	if err != nil {
		return nil, err
	}
	b := &Book{archive: a}
	if err = b.readPackage(); err != nil {
		a.Close()
		return nil, err
	}
	tracer().Infof("opened book %q with %d chapters", b.Title, len(b.spine))
	return b, nil
}

// Close closes the underlying archive.
func (b *Book) Close() error {
	return b.archive.Close()
}

func (b *Book) parse(name string) (*html.Node, error) {
	data, err := b.archive.ReadFile(name)
	if err != nil {
		return nil, err
	}
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, core.WrapError(err, core.EFORMAT, "cannot parse %s", name)
	}
	return doc, nil
}

func (b *Book) readPackage() error {
	container, err := b.parse(containerPath)
	if err != nil {
		return err
	}
	rootfiles := query(container, rootfileExpr)
	if len(rootfiles) == 0 || rootfiles[0] == "" {
		return core.Error(core.EFORMAT, "%s does not name a package document", containerPath)
	}
	if b.opf, err = resources.ResolvePath(".", rootfiles[0]); err != nil {
		return err
	}
	opf, err := b.parse(b.opf)
	if err != nil {
		return err
	}
	if titles := query(opf, titleExpr); len(titles) > 0 {
		b.Title = strings.TrimSpace(titles[0])
	}
	manifest := make(map[string]manifestItem)
	for _, item := range queryElements(opf, itemExpr) {
		manifest[attr(item, "id")] = manifestItem{
			href:      attr(item, "href"),
			mediaType: attr(item, "media-type"),
		}
	}
	base := path.Dir(b.opf)
	for _, idref := range query(opf, itemrefExpr) {
		item, ok := manifest[idref]
		if !ok {
			tracer().Errorf("spine references unknown manifest item %q", idref)
			continue
		}
		if item.mediaType != "" && !strings.Contains(item.mediaType, "html") {
			tracer().Infof("skipping spine item %q of type %s", idref, item.mediaType)
			continue
		}
		p, err := resources.ResolvePath(base, item.href)
		if err != nil {
			tracer().Errorf("spine item %q: %v", idref, err)
			continue
		}
		b.spine = append(b.spine, p)
	}
	if len(b.spine) == 0 {
		return core.Error(core.EFORMAT, "book %s has an empty spine", b.archive.Path)
	}
	return nil
}

// ChapterCount returns the number of chapters in reading order.
func (b *Book) ChapterCount() int {
	return len(b.spine)
}

// ChapterPath returns the archive path of chapter i.
func (b *Book) ChapterPath(i int) (string, error) {
	if i < 0 || i >= len(b.spine) {
		return "", core.Error(core.EINVALID, "no chapter %d in book of %d chapters", i, len(b.spine))
	}
	return b.spine[i], nil
}

// Chapter reads and parses chapter i.
func (b *Book) Chapter(i int) (*dom.Node, error) {
	p, err := b.ChapterPath(i)
	if err != nil {
		return nil, err
	}
	data, err := b.archive.ReadFile(p)
	if err != nil {
		return nil, err
	}
	return xhtml.Parse(bytes.NewReader(data))
}

// Images returns an image source resolving the references of chapter i.
func (b *Book) Images(i int) (paginate.ImageSource, error) {
	p, err := b.ChapterPath(i)
	if err != nil {
		return nil, err
	}
	return b.archive.Images(path.Dir(p)), nil
}
