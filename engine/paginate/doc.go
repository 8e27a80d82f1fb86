/*
Package paginate breaks the content tree of a chapter into pages.

The paginator walks the tree depth-first. Entering an element may push a
style, set a pending break or place a rule or an image; text nodes are
handed to the typesetter. Whenever content does not fit onto the current
page, the page is sealed and layout continues on a fresh one.

Styles are kept on an explicit stack, so nested emphasis composes:

	<b>bold <i>bold italic</i> bold</b>

Pagination of a chapter is a single, synchronous pass over an immutable
configuration. If the configuration changes, e.g. because the page area has
been resized, a new pass has to be started. PaginateAsync runs a pass on a
separate goroutine and returns a promise for its result.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package paginate

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'folio.layout'
func tracer() tracing.Trace {
	return tracing.Select("folio.layout")
}
