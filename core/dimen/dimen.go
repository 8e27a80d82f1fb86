/*
Package dimen implements page geometry: points, rectangles and sizes in
device pixels, and parsing of CSS-like dimensions.

Layout works in floating point pixels at 96 DPI. Fonts report their
metrics in design units, which are scaled to pixels by the font package.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package dimen

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// DPI is the device resolution the layout assumes.
const DPI = 96

// Pixels per unit, for use with ParseDimen.
const (
	PX float32 = 1
	PT float32 = DPI / 72.0      // printer's (big) point, 1/72 inch
	IN float32 = DPI             // inch
	CM float32 = DPI / 2.54      // centimeter
	MM float32 = DPI / 25.4      // millimeter
	PC float32 = 12 * DPI / 72.0 // pica
)

// Point is a point on a page. The origin is the top left corner of the
// page, y grows downwards.
type Point struct {
	X, Y float32
}

// Origin is origin
var Origin = Point{0, 0}

// Pt is a shortcut to create a point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns p shifted by vector q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Scale returns p with both coordinates multiplied by s.
func (p Point) Scale(s float32) Point {
	return Point{p.X * s, p.Y * s}
}

// AddX returns p shifted horizontally.
func (p Point) AddX(x float32) Point {
	p.X += x
	return p
}

// AddY returns p shifted vertically.
func (p Point) AddY(y float32) Point {
	p.Y += y
	return p
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", p.X, p.Y)
}

// Rect is a bounding box, given by its minimum and maximum corner.
type Rect struct {
	Min, Max Point
}

// Dx returns the width of a rectangle.
func (r Rect) Dx() float32 {
	return r.Max.X - r.Min.X
}

// Dy returns the height of a rectangle.
func (r Rect) Dy() float32 {
	return r.Max.Y - r.Min.Y
}

// Empty is true for rectangles without area.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Contains reports whether p is inside r, borders included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Size is a width/height pair in whole pixels, used for pages and bitmaps.
type Size struct {
	W, H int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]+(?:\.[0-9]+)?)(px|pt|pc|mm|cm|in|PX|PT|PC|MM|CM|IN)?$`)

// ParseDimen parses a string to return a dimension in pixels. Syntax is a
// subset of CSS units (px, pt, pc, mm, cm, in). A number without unit is
// taken as pixels.
func ParseDimen(s string) (float32, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return 0, errors.New("format error parsing dimension: " + s)
	}
	scale := PX
	switch d[2] {
	case "pt", "PT":
		scale = PT
	case "pc", "PC":
		scale = PC
	case "mm", "MM":
		scale = MM
	case "cm", "CM":
		scale = CM
	case "in", "IN":
		scale = IN
	}
	n, err := strconv.ParseFloat(d[1], 32)
	if err != nil {
		return 0, errors.New("format error parsing dimension: " + s)
	}
	return float32(n) * scale, nil
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
