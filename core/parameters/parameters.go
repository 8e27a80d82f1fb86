/*
Package parameters holds the configuration of a typesetting pass and the
settings of a reader application.

A TypesetConfig is an immutable snapshot, handed to a single pagination
pass. Changing a parameter, e.g. after a resize of the page area, means
creating a new config and starting a new pass.

Settings are what a user configures, usually in a YAML file:

	library: ~/Books
	fonts: /usr/share/fonts/truetype
	family: Vollkorn
	font_size: 18
	page:
	  width: 640
	  height: 480
	margins:
	  horizontal: 16px
	  vertical: 5mm

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package parameters

import (
	"github.com/npillmayer/folio/core"
	"github.com/npillmayer/folio/core/font"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'folio.core'
func tracer() tracing.Trace {
	return tracing.Select("folio.core")
}

// TypesetConfig is the set of parameters for one typesetting pass.
// Page dimensions and margins are in pixels.
type TypesetConfig struct {
	Family           *font.Family
	PointSize        float32
	PageWidth        int
	PageHeight       int
	HorizontalMargin int
	VerticalMargin   int
}

// Validate checks a config for usability. It does not guarantee that a
// line of text fits onto a page; that is detected during pagination.
func (conf TypesetConfig) Validate() error {
	switch {
	case conf.Family == nil:
		return core.Error(core.EINVALID, "typesetting config has no font family")
	case conf.PointSize <= 0:
		return core.Error(core.EINVALID, "font size must be positive, is %g", conf.PointSize)
	case conf.PageWidth <= 0 || conf.PageHeight <= 0:
		return core.Error(core.EINVALID, "page size must be positive, is %dx%d",
			conf.PageWidth, conf.PageHeight)
	case conf.HorizontalMargin < 0 || conf.VerticalMargin < 0:
		return core.Error(core.EINVALID, "margins must not be negative")
	case 2*conf.HorizontalMargin >= conf.PageWidth || 2*conf.VerticalMargin >= conf.PageHeight:
		return core.Error(core.EINVALID, "margins leave no room for content on a %dx%d page",
			conf.PageWidth, conf.PageHeight)
	}
	return nil
}

// ContentWidth is the page width minus the margins on both sides.
func (conf TypesetConfig) ContentWidth() int {
	return conf.PageWidth - 2*conf.HorizontalMargin
}

// Resized returns a copy of conf for a new page size.
func (conf TypesetConfig) Resized(width, height int) TypesetConfig {
	conf.PageWidth, conf.PageHeight = width, height
	return conf
}
