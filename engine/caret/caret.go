/*
Package caret implements the layout cursor of a pagination pass.

A caret knows the current position on the page, plus two values derived
from the configured font: the height of a line and the width of a space.
Both are computed from the Regular face of the family, at the configured
point size. Positions are in pixels, with the origin at the top left corner
of the page and y growing downwards. The y coordinate is the top of the
current line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package caret

import (
	"fmt"

	"github.com/npillmayer/folio/core/dimen"
	"github.com/npillmayer/folio/core/font"
	"github.com/npillmayer/folio/core/parameters"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'folio.layout'
func tracer() tracing.Trace {
	return tracing.Select("folio.layout")
}

// Line multipliers for Newline.
const (
	LineBreak  float32 = 1.0
	BlockBreak float32 = 1.3
)

// Caret is the layout cursor. A caret lives for one pagination pass.
type Caret struct {
	pos          dimen.Point
	scaledHeight float32
	spaceWidth   float32
	hmargin      float32
	vmargin      float32
	pageWidth    float32
	pageHeight   float32
}

// New creates a caret for a config, positioned at the top left margin.
// It fails if the family has no Regular face or the face has no space
// glyph.
func New(conf parameters.TypesetConfig) (*Caret, error) {
	face, err := conf.Family.Face(font.Regular)
	if err != nil {
		return nil, err
	}
	sh, err := face.ScaledHeight(conf.PointSize)
	if err != nil {
		return nil, err
	}
	sw, err := face.SpaceWidth(conf.PointSize)
	if err != nil {
		return nil, err
	}
	c := &Caret{
		scaledHeight: sh,
		spaceWidth:   sw,
		hmargin:      float32(conf.HorizontalMargin),
		vmargin:      float32(conf.VerticalMargin),
		pageWidth:    float32(conf.PageWidth),
		pageHeight:   float32(conf.PageHeight),
	}
	c.ResetLocation()
	tracer().Debugf("caret: line height = %.2f, space = %.2f", sh, sw)
	return c, nil
}

// Point returns the current position.
func (c *Caret) Point() dimen.Point {
	return c.pos
}

// ScaledHeight returns the height of a line in pixels.
func (c *Caret) ScaledHeight() float32 {
	return c.scaledHeight
}

// SpaceWidth returns the width of a space in pixels.
func (c *Caret) SpaceWidth() float32 {
	return c.spaceWidth
}

// Advance moves the caret horizontally. There is no bounds check.
func (c *Caret) Advance(dx float32) {
	c.pos.X += dx
}

// Space advances the caret by the width of a space.
func (c *Caret) Space() {
	c.pos.X += c.spaceWidth
}

// Newline moves the caret to the left margin and down by a multiple of
// the line height.
func (c *Caret) Newline(lines float32) {
	c.pos.X = c.hmargin
	c.pos.Y += lines * c.scaledHeight
}

// ResetLocation moves the caret to the top left margin of a page.
func (c *Caret) ResetLocation() {
	c.pos = dimen.Pt(c.hmargin, c.vmargin)
}

// AtLineStart is true if the caret is at the left margin.
func (c *Caret) AtLineStart() bool {
	return c.pos.X <= c.hmargin
}

// OverflowsHorizontally is true if advancing by hadv would cross the
// right margin.
func (c *Caret) OverflowsHorizontally(hadv float32) bool {
	return c.pos.X+hadv+c.hmargin > c.pageWidth
}

// OverflowsVertically is true if a line (plus extra lines) below the
// current one would reach the bottom margin.
func (c *Caret) OverflowsVertically(extra float32) bool {
	return c.pos.Y+c.scaledHeight*(1+extra) >= c.pageHeight-c.vmargin
}

// RemainingHeight returns the vertical space between the caret and the
// bottom margin.
func (c *Caret) RemainingHeight() float32 {
	return c.pageHeight - c.vmargin - c.pos.Y
}

func (c *Caret) String() string {
	return fmt.Sprintf("caret@%s", c.pos)
}
