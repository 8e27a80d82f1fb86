package fontregistry

import (
	"path"
	"strings"
	"sync"

	"github.com/npillmayer/folio/core"
	"github.com/npillmayer/folio/core/font"
	"github.com/npillmayer/schuko/tracing"
)

// Registry is a type for holding information about loaded font families
// for a reader application.
type Registry struct {
	sync.Mutex
	index    *Indexer
	families map[string]*font.Family
}

// NewRegistry creates a registry which loads families from an index.
// index may be nil, in which case only stored families are known.
func NewRegistry(index *Indexer) *Registry {
	if index == nil {
		index = NewIndexer()
	}
	return &Registry{
		index:    index,
		families: make(map[string]*font.Family),
	}
}

// StoreFamily pushes a family into the registry if it isn't contained yet.
//
// The family will be stored using the normalized family name as a key. If
// this key is already associated with a family, that family will not be
// overridden.
func (fr *Registry) StoreFamily(fam *font.Family) {
	if fam == nil {
		tracer().Errorf("registry cannot store null family")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	key := NormalizeFontname(fam.Name)
	if _, ok := fr.families[key]; !ok {
		tracer().Debugf("registry stores family %s as %s", fam.Name, key)
		fr.families[key] = fam
	}
}

// Family returns a font family by name. Families are loaded from the index
// on first request and cached afterwards.
//
// If the family can be found neither in the cache nor in the index, Family
// returns the fallback family, together with an error with code
// core.EMISSING.
func (fr *Registry) Family(name string) (*font.Family, error) {
	key := NormalizeFontname(name)
	tracer().Debugf("registry searches for family %s", key)
	fr.Lock()
	defer fr.Unlock()
	if fam, ok := fr.families[key]; ok {
		return fam, nil
	}
	if key == NormalizeFontname(font.FallbackFamily().Name) {
		return font.FallbackFamily(), nil
	}
	fam, err := fr.index.Family(name)
	if err == nil {
		tracer().Infof("font registry loaded family %s with styles %v", fam.Name, fam.Styles())
		fr.families[key] = fam
		return fam, nil
	}
	tracer().Infof("registry does not contain family %s", name)
	return font.FallbackFamily(), core.WrapError(err, core.EMISSING,
		"font family %s not found, using fallback", name)
}

// LogFontList is a helper function to dump the list of known families in
// a registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	defer tracer().SetTraceLevel(level)
	fr.Lock()
	defer fr.Unlock()
	tracer().Infof("--- registered families ---")
	for k, v := range fr.families {
		tracer().Infof("family [%s] = %v", k, v.Styles())
	}
	for _, name := range fr.index.Families() {
		tracer().Infof("indexed [%s]", name)
	}
	tracer().Infof("---------------------------")
}

// NormalizeFontname creates a lookup key from a family name or font file
// name: lower case, blanks replaced by underscores, file extension removed.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.Join(strings.Fields(fname), "_")
	switch strings.ToLower(path.Ext(fname)) {
	case ".ttf", ".otf":
		fname = fname[:len(fname)-4]
	}
	return strings.ToLower(fname)
}

// GuessStyle tries to guess a font's style from the font's file name.
func GuessStyle(fontfilename string) font.Style {
	fontfilename = path.Base(fontfilename)
	ext := path.Ext(fontfilename)
	fontfilename = strings.ToLower(fontfilename[:len(fontfilename)-len(ext)])
	s := strings.Split(fontfilename, "-")
	if len(s) > 1 {
		switch s[len(s)-1] {
		case "normal", "medium", "regular", "r":
			return font.Regular
		case "bold", "b":
			return font.Bold
		case "italic", "i", "oblique":
			return font.Italic
		case "bolditalic", "bi", "boldoblique":
			return font.BoldItalic
		case "mono":
			return font.Mono
		}
	}
	italic := strings.Contains(fontfilename, "italic") || strings.Contains(fontfilename, "oblique")
	bold := strings.Contains(fontfilename, "bold")
	switch {
	case bold && italic:
		return font.BoldItalic
	case bold:
		return font.Bold
	case italic:
		return font.Italic
	case strings.Contains(fontfilename, "mono"):
		return font.Mono
	}
	return font.Regular
}
