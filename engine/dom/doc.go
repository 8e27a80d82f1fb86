/*
Package dom implements the content tree of a chapter.

The tree is a simplified view on an XHTML document: element nodes carry a
tag from a small, closed set, plus attributes and emphasis hints; text nodes
carry normalized text. Elements which are of no interest for layout are
either dropped or spliced by the markup adapter, so consumers of the tree
never have to deal with unknown markup.

Trees are built once per chapter and are read-only afterwards. They may be
traversed either with an Iterator (pre-order, parents before children) or
with Walk, which reports entering and leaving of nodes to a Visitor.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package dom

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'folio.layout'
func tracer() tracing.Trace {
	return tracing.Select("folio.layout")
}
