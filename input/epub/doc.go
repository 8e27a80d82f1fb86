/*
Package epub opens EPUB containers and reads their chapters.

An EPUB file is a zip archive. META-INF/container.xml names the package
document (OPF), which lists the book's resources in its manifest and the
reading order in its spine. Both documents are parsed with the lenient
HTML parser and queried with XPath (github.com/antchfx/xpath), using a
navigator over html.Node trees.

Chapters are converted to dom trees by package xhtml. Image references of
a chapter are resolved relative to the chapter's directory within the
archive.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package epub

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'folio.resources'
func tracer() tracing.Trace {
	return tracing.Select("folio.resources")
}
