/*
Package raster converts typeset glyph runs into grayscale pixels.

Every glyph is rasterized into a cell of its own: the glyph outline is
scaled to the run's point size and replayed into a coverage accumulator
(golang.org/x/image/vector), which computes anti-aliased coverage for each
pixel of the cell. Covered pixels are then clipped to the glyph's bounding
box as reported by the font, and handed to a callback in destination
coordinates, together with an ink value where 0 is black and 255 is white.

A Rasterizer is not safe for concurrent use. Each goroutine drawing pages
should use its own.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package raster

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'folio.raster'
func tracer() tracing.Trace {
	return tracing.Select("folio.raster")
}
