/*
Package font is for typeface and font handling.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

▪︎ A "family" is a set of fonts sharing a name, differentiated by style.
An example is "Vollkorn".

▪︎ A "face" is one concrete font of a family, i.e. a variant with a
certain style. An example is "Vollkorn Bold Italic". A face owns the raw
font binary.

▪︎ A "parsed font" (type Font) is a short-lived view on a face's binary,
created for a single layout or rasterization pass. Faces do not cache
parsed outline data; every pass opens its own view, which keeps faces
immutable and shareable between goroutines.

Metrics are reported in font design units (y-up, as in the font tables)
and scaled to device pixels at a fixed resolution of 96 DPI:

	scale = pointsize · 96/72 / unitsPerEm

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

# Links

OpenType explained:
https://docs.microsoft.com/en-us/typography/opentype/

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package font

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'folio.font'
func tracer() tracing.Trace {
	return tracing.Select("folio.font")
}
