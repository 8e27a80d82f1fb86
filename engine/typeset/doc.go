/*
Package typeset places the glyphs of a text run onto a page.

Typesetting is left-aligned word wrapping. Words are separated by
whitespace; the glyphs of a word are buffered until the word is complete,
so that a word overflowing the right margin moves to the next line as a
whole. Only a word which is wider than a line on its own will be split.

When a line break would cross the bottom margin, typesetting stops and
reports the index of the first rune which has not been placed, which is
always the beginning of a word. The caller then starts a new page and
resumes from there.

Glyph metrics are kept in font design units; positions are in pixels.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package typeset

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'folio.layout'
func tracer() tracing.Trace {
	return tracing.Select("folio.layout")
}
