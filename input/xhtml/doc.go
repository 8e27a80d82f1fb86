/*
Package xhtml reads chapter documents into a dom tree.

Chapters of e-books are XHTML documents. They are parsed with the HTML5
parser of golang.org/x/net/html, which is lenient enough for the markup
found in real-world books. The body of the document is located with a CSS
selector and converted to a tree of dom.Node: known elements are kept,
unknown ones are replaced by their children, script and style content is
dropped. Text is normalized to NFC and runs of whitespace collapse to a
single space.

Inline style attributes are inspected for font weight and font style only.
Everything else in CSS is ignored.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package xhtml

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'folio.layout'
func tracer() tracing.Trace {
	return tracing.Select("folio.layout")
}
