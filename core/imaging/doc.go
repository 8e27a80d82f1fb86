/*
Package imaging holds decoded raster images as they are placed on pages.

A Bitmap is a plain block of pixels, either 8-bit gray or 8-bit RGBA,
together with its dimensions. Bitmaps are produced from any image.Image
and may be rescaled to fit a layout area.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package imaging

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'folio.resources'
func tracer() tracing.Trace {
	return tracing.Select("folio.resources")
}
