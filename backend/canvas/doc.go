/*
Package canvas is a pixel buffer for rendering paginated pages.

A canvas holds packed 0x00RRGGBB values, initialized to white. Pages are
drawn onto it element by element: glyph runs go through the rasterizer,
rules are filled black and images are converted to grey. Ink never
lightens a pixel, overlapping glyphs keep the darker value.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package canvas

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'folio.raster'
func tracer() tracing.Trace {
	return tracing.Select("folio.raster")
}
