package typeset

import (
	"fmt"
	"unicode"

	"github.com/npillmayer/folio/core/dimen"
	"github.com/npillmayer/folio/core/font"
	"github.com/npillmayer/folio/core/parameters"
	"github.com/npillmayer/folio/engine/caret"
)

// Glyph is a positioned glyph. Pos is the pen position at the top of the
// line, in pixels. Bearing, Advance and Descender are in font units.
type Glyph struct {
	ID        font.GlyphIndex
	Pos       dimen.Point
	Bearing   float32
	Advance   float32
	Descender float32
}

// Run is a sequence of glyphs typeset in a single style and size.
type Run struct {
	Glyphs    []Glyph
	PointSize float32
	Style     font.Style
}

func (r Run) String() string {
	return fmt.Sprintf("run[%s %.1fpt, %d glyphs]", r.Style, r.PointSize, len(r.Glyphs))
}

// Outcome tells if a text has been typeset completely.
type Outcome int8

// Outcomes of Typeset
const (
	Complete Outcome = iota
	Overflowed
)

func (o Outcome) String() string {
	if o == Overflowed {
		return "overflowed"
	}
	return "complete"
}

// Result is returned by Typeset. For an overflowed text, ResumeAt is the
// index of the first rune which has not been placed. Skipped counts runes
// dropped because the font has no glyph for them.
type Result struct {
	Outcome  Outcome
	Run      Run
	ResumeAt int
	Skipped  int
}

// Typesetter typesets text runs for one pagination pass. It keeps the
// parsed fonts of the styles it has seen.
type Typesetter struct {
	conf  parameters.TypesetConfig
	fonts map[font.Style]*parsedFont
}

type parsedFont struct {
	otf     *font.Font
	metrics font.FontMetrics
	scale   float32
}

// New creates a typesetter for a config.
func New(conf parameters.TypesetConfig) *Typesetter {
	return &Typesetter{
		conf:  conf,
		fonts: make(map[font.Style]*parsedFont),
	}
}

// Typeset is a shortcut for typesetting a single text with a fresh
// typesetter.
func Typeset(conf parameters.TypesetConfig, c *caret.Caret, text []rune, from int,
	style font.Style) (Result, error) {
	//
	return New(conf).Typeset(c, text, from, style)
}

func (ts *Typesetter) font(style font.Style) (*parsedFont, error) {
	if pf, ok := ts.fonts[style]; ok {
		return pf, nil
	}
	face, err := ts.conf.Family.Face(style)
	if err != nil {
		return nil, err
	}
	otf, err := face.Open()
	if err != nil {
		return nil, err
	}
	m, err := otf.Metrics()
	if err != nil {
		return nil, err
	}
	pf := &parsedFont{otf: otf, metrics: m, scale: face.ScaleFactor(ts.conf.PointSize)}
	ts.fonts[style] = pf
	return pf, nil
}

// Typeset places text[from:] at the caret, advancing the caret. It fails
// if the family has no face for style.
func (ts *Typesetter) Typeset(c *caret.Caret, text []rune, from int, style font.Style) (Result, error) {
	pf, err := ts.font(style)
	if err != nil {
		return Result{}, err
	}
	res := Result{Run: Run{PointSize: ts.conf.PointSize, Style: style}}
	origin := float32(ts.conf.HorizontalMargin)
	var word []Glyph // glyphs of the word in progress
	wordStart := from
	skipped := 0 // runes without a glyph in the word in progress
	flush := func() {
		res.Run.Glyphs = append(res.Run.Glyphs, word...)
		res.Skipped += skipped
		word, skipped = word[:0], 0
	}
	overflow := func() (Result, error) {
		tracer().Debugf("typesetter: page full at rune #%d", wordStart)
		res.Outcome = Overflowed
		res.ResumeAt = wordStart
		return res, nil
	}
	for i := from; i < len(text); i++ {
		r := text[i]
		if unicode.IsSpace(r) {
			space := len(word) > 0 || !c.AtLineStart()
			flush()
			if space {
				c.Space()
			}
			wordStart = i + 1
			continue
		}
		gid, err := pf.otf.GlyphIndex(r)
		if err != nil {
			if font.IsNoGlyph(err) {
				tracer().Infof("typesetter skips %v", err)
				skipped++
				continue
			}
			return res, err
		}
		gm, err := pf.otf.GlyphMetrics(gid)
		if err != nil {
			return res, err
		}
		adv := gm.Advance * pf.scale
		if c.OverflowsHorizontally(adv) {
			if c.OverflowsVertically(1.0) {
				return overflow()
			}
			switch {
			case len(word) > 0 && word[0].Pos.X <= origin:
				// word is wider than a line: break it here
				flush()
				c.Newline(caret.LineBreak)
				wordStart = i
			case len(word) == 0 && c.AtLineStart():
				// single glyph wider than a line
			default:
				c.Newline(caret.LineBreak)
				for k := range word {
					word[k].Pos = c.Point()
					c.Advance(word[k].Advance * pf.scale)
				}
				if len(word) > 0 && c.OverflowsHorizontally(adv) {
					// re-homed word still does not fit: break it at the line origin
					if c.OverflowsVertically(1.0) {
						return overflow()
					}
					flush()
					c.Newline(caret.LineBreak)
					wordStart = i
				}
			}
		}
		word = append(word, Glyph{
			ID:        gid,
			Pos:       c.Point(),
			Bearing:   gm.LSB,
			Advance:   gm.Advance,
			Descender: pf.metrics.Descender,
		})
		c.Advance(adv)
	}
	flush()
	res.Outcome = Complete
	res.ResumeAt = len(text)
	return res, nil
}
