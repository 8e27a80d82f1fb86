/*
Package fontregistry indexes font files and manages a registry of font
families.

An Indexer scans directories (or the system's font locations) for TrueType
and OpenType files and records family and style of each file, as read from
the font's name table. From an index, families are assembled on demand,
with at most one face per style. A Registry caches assembled families for
an application and falls back to the built-in Go family if a family cannot
be found.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'folio.font'
func tracer() tracing.Trace {
	return tracing.Select("folio.font")
}
