/*
Package reader moves through the pages of a book, chapter by chapter.

A Reader paginates one chapter at a time. Turning past the last page of
a chapter paginates the next chapter, turning back before the first page
lands on the last page of the previous chapter. Resizing the viewport
re-paginates the current chapter and keeps the reader on a page at the
same relative position.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package reader

import (
	"context"
	"errors"

	"github.com/npillmayer/folio/core"
	"github.com/npillmayer/folio/core/parameters"
	"github.com/npillmayer/folio/engine/dom"
	"github.com/npillmayer/folio/engine/paginate"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'folio.layout'
func tracer() tracing.Trace {
	return tracing.Select("folio.layout")
}

// ErrNoChapter is returned when turning pages beyond the first or last
// chapter of a book.
var ErrNoChapter = errors.New("no further chapter")

// Source provides the chapters of a book in reading order.
// *epub.Book is a Source.
type Source interface {
	ChapterCount() int
	Chapter(i int) (*dom.Node, error)
	Images(i int) (paginate.ImageSource, error)
}

// Reader holds the reading position within a book.
type Reader struct {
	src     Source
	conf    parameters.TypesetConfig
	chapter int
	page    int
	pages   []*paginate.Page
}

// New creates a reader positioned on the first page of the first chapter.
func New(ctx context.Context, src Source, conf parameters.TypesetConfig) (*Reader, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if src == nil || src.ChapterCount() == 0 {
		return nil, core.WrapError(ErrNoChapter, core.EMISSING, "book has no chapters")
	}
	r := &Reader{src: src, conf: conf}
	if err := r.load(ctx, 0); err != nil {
		return nil, err
	}
	return r, nil
}

// load paginates chapter i and positions the reader on its first page.
func (r *Reader) load(ctx context.Context, i int) error {
	if i < 0 || i >= r.src.ChapterCount() {
		return core.WrapError(ErrNoChapter, core.EMISSING, "no chapter %d", i)
	}
	root, err := r.src.Chapter(i)
	if err != nil {
		return err
	}
	images, err := r.src.Images(i)
	if err != nil {
		tracer().Errorf("chapter %d: images cannot be resolved: %v", i, err)
		images = nil
	}
	pages, err := paginate.New(r.conf, images).PaginateContext(ctx, root)
	if err != nil {
		return err
	}
	tracer().Infof("chapter %d of %d has %d pages", i+1, r.src.ChapterCount(), len(pages))
	r.chapter, r.page, r.pages = i, 0, pages
	return nil
}

// Page returns the current page.
func (r *Reader) Page() *paginate.Page {
	if r.page < 0 || r.page >= len(r.pages) {
		return nil
	}
	return r.pages[r.page]
}

// Config returns the typesetting configuration in use.
func (r *Reader) Config() parameters.TypesetConfig {
	return r.conf
}

// Position returns the current chapter and page index, together with the
// number of pages of the current chapter.
func (r *Reader) Position() (chapter, page, pages int) {
	return r.chapter, r.page, len(r.pages)
}

// NextPage turns to the next page, moving on to the next chapter after the
// last page. At the end of the book ErrNoChapter is returned and the
// position is unchanged.
func (r *Reader) NextPage(ctx context.Context) error {
	if r.page < len(r.pages)-1 {
		r.page++
		return nil
	}
	if r.chapter+1 >= r.src.ChapterCount() {
		return core.WrapError(ErrNoChapter, core.EMISSING, "end of book")
	}
	return r.load(ctx, r.chapter+1)
}

// PrevPage turns to the previous page. Before the first page of a chapter
// it moves to the last page of the previous chapter. At the beginning of
// the book ErrNoChapter is returned and the position is unchanged.
func (r *Reader) PrevPage(ctx context.Context) error {
	if r.page > 0 {
		r.page--
		return nil
	}
	if r.chapter == 0 {
		return core.WrapError(ErrNoChapter, core.EMISSING, "beginning of book")
	}
	if err := r.load(ctx, r.chapter-1); err != nil {
		return err
	}
	r.page = len(r.pages) - 1
	return nil
}

// GoTo moves to the first page of chapter i.
func (r *Reader) GoTo(ctx context.Context, chapter int) error {
	return r.load(ctx, chapter)
}

// Resize re-paginates the current chapter for a new page size. The reader
// stays at the same relative position within the chapter. If the new size
// is invalid, the reader is left unchanged.
func (r *Reader) Resize(ctx context.Context, width, height int) error {
	conf := r.conf.Resized(width, height)
	if err := conf.Validate(); err != nil {
		return err
	}
	old, oldCount := r.page, len(r.pages)
	prev := r.conf
	r.conf = conf
	chapter := r.chapter
	if err := r.load(ctx, chapter); err != nil {
		r.conf = prev
		return err
	}
	if oldCount > 0 {
		r.page = old * len(r.pages) / oldCount
	}
	if r.page >= len(r.pages) {
		r.page = len(r.pages) - 1
	}
	tracer().Debugf("resized to %dx%d, now on page %d of %d", width, height, r.page+1, len(r.pages))
	return nil
}
