package paginate

import (
	"context"
	"errors"
	"math"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/folio/core"
	"github.com/npillmayer/folio/core/dimen"
	"github.com/npillmayer/folio/core/font"
	"github.com/npillmayer/folio/core/imaging"
	"github.com/npillmayer/folio/core/parameters"
	"github.com/npillmayer/folio/engine/caret"
	"github.com/npillmayer/folio/engine/dom"
	"github.com/npillmayer/folio/engine/typeset"
)

// ErrPageTooSmall is returned if a page cannot hold a single line of text.
var ErrPageTooSmall = errors.New("page too small to hold a line of text")

// ImageSource resolves image references found in a chapter.
type ImageSource interface {
	Image(ref string) (*imaging.Bitmap, error)
}

type breakKind int8

const (
	noBreak breakKind = iota
	lineBreak
	blockBreak
)

func (b breakKind) lines() float32 {
	if b == blockBreak {
		return caret.BlockBreak
	}
	return caret.LineBreak
}

// Paginator lays out content trees. A paginator may be used for more
// than one pass, but not concurrently.
type Paginator struct {
	conf    parameters.TypesetConfig
	images  ImageSource
	ctx     context.Context
	ts      *typeset.Typesetter
	caret   *caret.Caret
	styles  *arraystack.Stack
	pending breakKind
	page    *Page
	pages   []*Page
}

// New creates a paginator. images may be nil, in which case images are
// skipped.
func New(conf parameters.TypesetConfig, images ImageSource) *Paginator {
	return &Paginator{conf: conf, images: images}
}

// Paginate is a shortcut to paginate a content tree with a fresh paginator.
func Paginate(root *dom.Node, conf parameters.TypesetConfig, images ImageSource) ([]*Page, error) {
	return New(conf, images).Paginate(root)
}

// Paginate lays out a content tree and returns its pages. At least one
// page is returned, even for an empty tree.
func (p *Paginator) Paginate(root *dom.Node) ([]*Page, error) {
	return p.PaginateContext(context.Background(), root)
}

// PaginateContext is Paginate with a context, which is checked for
// cancellation between nodes.
func (p *Paginator) PaginateContext(ctx context.Context, root *dom.Node) ([]*Page, error) {
	if err := p.conf.Validate(); err != nil {
		return nil, err
	}
	c, err := caret.New(p.conf)
	if err != nil {
		return nil, err
	}
	p.ctx = ctx
	p.caret = c
	p.ts = typeset.New(p.conf)
	p.styles = arraystack.New()
	p.styles.Push(font.Regular)
	p.pending = noBreak
	p.page = &Page{}
	p.pages = nil
	if err := dom.Walk(root, p); err != nil {
		return nil, err
	}
	if !p.page.Empty() || len(p.pages) == 0 {
		p.seal()
	}
	tracer().Infof("paginator produced %d pages", len(p.pages))
	return p.pages, nil
}

// --- Tree walk -------------------------------------------------------------

// Enter is called by the tree walker when entering a node.
func (p *Paginator) Enter(n *dom.Node) error {
	if err := p.ctx.Err(); err != nil {
		return err
	}
	if n.IsText() {
		return p.text(n)
	}
	p.styles.Push(p.styleFor(n))
	switch n.Tag {
	case dom.H1, dom.H2, dom.H3, dom.P, dom.Div, dom.TableRow, dom.Blockquote:
		p.pending = blockBreak
	case dom.Span:
		if !p.caret.AtLineStart() {
			p.caret.Space()
		}
	case dom.Br:
		p.pending = lineBreak
	case dom.Hr:
		p.rule()
	case dom.Image:
		p.image(n)
	}
	return nil
}

// Leave is called by the tree walker when leaving a node.
func (p *Paginator) Leave(n *dom.Node) error {
	if n.IsText() {
		return nil
	}
	p.styles.Pop()
	if n.Tag.IsBlock() && p.pending == noBreak {
		p.pending = blockBreak
	}
	return nil
}

func (p *Paginator) style() font.Style {
	s, ok := p.styles.Peek()
	if !ok {
		return font.Regular
	}
	return s.(font.Style)
}

func (p *Paginator) styleFor(n *dom.Node) font.Style {
	s := p.style()
	switch n.Tag {
	case dom.H1, dom.H2, dom.H3:
		s = s.With(font.Bold)
	case dom.P, dom.Div, dom.TableRow, dom.Blockquote:
		s = font.Regular
	case dom.B:
		s = s.With(font.Bold)
	case dom.I:
		s = s.With(font.Italic)
	case dom.Code:
		s = font.Mono
	}
	if n.Emphasis&dom.Strong != 0 {
		s = s.With(font.Bold)
	}
	if n.Emphasis&dom.Emph != 0 {
		s = s.With(font.Italic)
	}
	return s
}

// --- Layout ----------------------------------------------------------------

func (p *Paginator) seal() {
	tracer().Debugf("sealing %s", p.page)
	p.pages = append(p.pages, p.page)
	p.page = &Page{}
	p.pending = noBreak
	if p.caret != nil {
		p.caret.ResetLocation()
	}
}

// breakLines moves the caret down by a number of lines, or to a fresh page
// if the current page has no room left. On an empty page, nothing happens.
func (p *Paginator) breakLines(lines float32) {
	if p.page.Empty() {
		return
	}
	if p.caret.OverflowsVertically(lines) {
		p.seal()
		return
	}
	p.caret.Newline(lines)
}

func (p *Paginator) resolveBreak() {
	if p.pending == noBreak {
		return
	}
	lines := p.pending.lines()
	p.pending = noBreak
	p.breakLines(lines)
}

func (p *Paginator) text(n *dom.Node) error {
	if n.IsWhitespace() && (p.pending != noBreak || p.caret.AtLineStart()) {
		return nil
	}
	style := p.style()
	if _, err := p.conf.Family.Face(style); err != nil {
		tracer().Errorf("skipping text: %v", err)
		return nil
	}
	p.resolveBreak()
	text := []rune(n.Text)
	from := 0
	for {
		fresh := p.page.Empty()
		res, err := p.ts.Typeset(p.caret, text, from, style)
		if err != nil {
			return err
		}
		if len(res.Run.Glyphs) > 0 {
			p.page.add(&TextElement{Run: res.Run})
		}
		if res.Outcome == typeset.Complete {
			return nil
		}
		if fresh && len(res.Run.Glyphs) == 0 {
			return core.WrapError(ErrPageTooSmall, core.EINVALID,
				"page of %dx%d cannot hold a line of text at %.1fpt",
				p.conf.PageWidth, p.conf.PageHeight, p.conf.PointSize)
		}
		tracer().Debugf("text overflows page %d at rune #%d", len(p.pages)+1, res.ResumeAt)
		p.seal()
		from = res.ResumeAt
	}
}

func (p *Paginator) rule() {
	lines := caret.LineBreak
	if p.pending != noBreak {
		lines = p.pending.lines()
		p.pending = noBreak
	}
	p.breakLines(lines)
	y := p.caret.Point().Y + p.caret.ScaledHeight()/2
	top, bottom := float32(math.Floor(float64(y))), float32(math.Ceil(float64(y)))
	if bottom == top {
		bottom++
	}
	hm := float32(p.conf.HorizontalMargin)
	p.page.add(&RuleElement{
		Start: dimen.Pt(hm, top),
		End:   dimen.Pt(float32(p.conf.PageWidth)-hm, bottom),
	})
	if p.pending == noBreak {
		p.pending = lineBreak
	}
}

func (p *Paginator) image(n *dom.Node) {
	ref, ok := n.ImageRef()
	if !ok {
		tracer().Infof("image element without reference")
		return
	}
	if p.images == nil {
		tracer().Infof("no image source, skipping image %s", ref)
		return
	}
	bm, err := p.images.Image(ref)
	if err != nil {
		tracer().Errorf("skipping image: %v", err)
		return
	}
	if bm == nil || bm.Size.W <= 0 || bm.Size.H <= 0 {
		tracer().Errorf("skipping empty image %s", ref)
		return
	}
	p.resolveBreak()
	if !p.caret.AtLineStart() {
		p.breakLines(caret.LineBreak)
	}
	if !p.page.Empty() && p.caret.RemainingHeight() < 2*p.caret.ScaledHeight() {
		p.seal()
	}
	cw := float32(p.conf.ContentWidth())
	scale := dimen.Min(p.caret.RemainingHeight()/float32(bm.Size.H), cw/float32(bm.Size.W))
	if scale != 1 {
		bm = bm.Rescale(scale)
	}
	x := float32(p.conf.HorizontalMargin) + (cw-float32(bm.Size.W))/2
	p.page.add(&ImageElement{
		At:     dimen.Pt(float32(math.Floor(float64(x))), p.caret.Point().Y),
		Bitmap: bm,
	})
	tracer().Debugf("placed image %s (%s) on page %d", ref, bm.Size, len(p.pages)+1)
	p.seal()
}

var _ dom.Visitor = &Paginator{}
