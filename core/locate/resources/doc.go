/*
Package resources resolves external resources for a book: images referenced
from chapters, font files installed on the system, and the contents of
EPUB containers.

Images are resolved relative to a base path within an fs.FS. This covers
plain directories (via os.DirFS) as well as EPUB files, which are zip
archives and are opened with OpenArchive. Decoders for PNG, JPEG, GIF, BMP,
TIFF and WebP are registered by this package.

Missing resources are reported with error code core.EMISSING; see NotFound.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'folio.resources'.
func tracer() tracing.Trace {
	return tracing.Select("folio.resources")
}
