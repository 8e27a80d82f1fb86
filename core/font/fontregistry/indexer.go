package fontregistry

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/derekparker/trie"
	"github.com/flopp/go-findfont"
	"github.com/npillmayer/folio/core"
	"github.com/npillmayer/folio/core/font"
	"golang.org/x/image/font/sfnt"
)

// Entry describes a font file found by the indexer.
type Entry struct {
	Path   string
	Family string // family name as found in the font
	Style  font.Style
}

// Indexer keeps an index of font files, organized by family.
// An Indexer is not safe for concurrent use; wrap it into a Registry
// for that.
type Indexer struct {
	entries map[string][]Entry // normalized family name -> files
	names   *trie.Trie         // normalized family names, with display name as meta
}

// NewIndexer creates an empty index.
func NewIndexer() *Indexer {
	return &Indexer{
		entries: make(map[string][]Entry),
		names:   trie.New(),
	}
}

// Scan walks the given directory trees and indexes every font file with
// extension .ttf or .otf. Files which cannot be parsed are traced and
// skipped. Scan returns the number of fonts added to the index.
func (ix *Indexer) Scan(dirs ...string) (int, error) {
	count := 0
	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				tracer().Errorf("font scanner cannot enter %s: %v", p, err)
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !isFontFile(p) {
				return nil
			}
			if ix.IndexFile(p) {
				count++
			}
			return nil
		})
		if err != nil {
			return count, core.WrapError(err, core.EMISSING, "cannot scan font directory %s", dir)
		}
	}
	tracer().Infof("font scanner indexed %d fonts", count)
	return count, nil
}

// ScanSystemFonts indexes the fonts installed on the system, as found by
// go-findfont.
func (ix *Indexer) ScanSystemFonts() int {
	count := 0
	for _, p := range findfont.List() {
		if isFontFile(p) && ix.IndexFile(p) {
			count++
		}
	}
	tracer().Infof("font scanner indexed %d system fonts", count)
	return count
}

// IndexFile reads the name table of a single font file and adds the font
// to the index. It returns false if the file is not a usable font.
func (ix *Indexer) IndexFile(fontfile string) bool {
	data, err := os.ReadFile(fontfile)
	if err != nil {
		tracer().Errorf("cannot read font file %s: %v", fontfile, err)
		return false
	}
	family, subfamily, err := fontNames(data)
	if err != nil {
		tracer().Debugf("skipping font file %s: %v", fontfile, err)
		return false
	}
	if family == "" {
		family = strings.TrimSuffix(path.Base(filepath.ToSlash(fontfile)), path.Ext(fontfile))
		if dash := strings.Index(family, "-"); dash > 0 {
			family = family[:dash]
		}
	}
	var style font.Style
	if subfamily != "" {
		style = font.StyleFromSubfamily(subfamily)
	} else {
		style = GuessStyle(fontfile)
	}
	// monospace cuts often come as a family of their own, e.g. "Go Mono"
	if base, ok := cutMonoSuffix(family); ok && style == font.Regular {
		family, style = base, font.Mono
	}
	ix.add(Entry{Path: fontfile, Family: family, Style: style})
	return true
}

func (ix *Indexer) add(e Entry) {
	key := NormalizeFontname(e.Family)
	if _, ok := ix.entries[key]; !ok {
		ix.names.Add(key, e.Family)
	}
	tracer().Debugf("indexing %s as %s/%s", e.Path, key, e.Style)
	ix.entries[key] = append(ix.entries[key], e)
}

// Entries returns the index entries for a family, in the order they have
// been found.
func (ix *Indexer) Entries(name string) []Entry {
	return ix.entries[NormalizeFontname(name)]
}

// Families returns the display names of all indexed families, sorted.
func (ix *Indexer) Families() []string {
	names := make([]string, 0, len(ix.entries))
	for _, entries := range ix.entries {
		names = append(names, entries[0].Family)
	}
	sort.Strings(names)
	return names
}

// FamiliesWithPrefix returns the display names of all indexed families
// whose normalized name starts with prefix.
func (ix *Indexer) FamiliesWithPrefix(prefix string) []string {
	keys := ix.names.PrefixSearch(NormalizeFontname(prefix))
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		if n, ok := ix.names.Find(k); ok {
			names = append(names, n.Meta().(string))
		}
	}
	sort.Strings(names)
	return names
}

// Family loads the faces of an indexed family. For every style the first
// loadable font file wins. If no file of the family can be loaded, an
// error with code core.EMISSING is returned.
func (ix *Indexer) Family(name string) (*font.Family, error) {
	entries := ix.Entries(name)
	if len(entries) == 0 {
		return nil, core.Error(core.EMISSING, "font family %s not found", name)
	}
	fam := font.NewFamily(entries[0].Family)
	loaded := 0
	for _, e := range entries {
		if containsStyle(fam.Styles(), e.Style) {
			continue
		}
		f, err := font.LoadFace(e.Path, e.Family, e.Style)
		if err != nil {
			tracer().Errorf("cannot load font %s: %v", e.Path, err)
			continue
		}
		fam.AddFace(f)
		loaded++
	}
	if loaded == 0 {
		return nil, core.Error(core.EMISSING, "no font of family %s can be loaded", name)
	}
	return fam, nil
}

// ---------------------------------------------------------------------------

func fontNames(data []byte) (family string, subfamily string, err error) {
	sf, err := sfnt.Parse(data)
	if err != nil {
		return "", "", err
	}
	var buf sfnt.Buffer
	if family, err = sf.Name(&buf, sfnt.NameIDFamily); err != nil && err != sfnt.ErrNotFound {
		return "", "", err
	}
	if subfamily, err = sf.Name(&buf, sfnt.NameIDSubfamily); err != nil && err != sfnt.ErrNotFound {
		return "", "", err
	}
	return strings.TrimSpace(family), strings.TrimSpace(subfamily), nil
}

func isFontFile(p string) bool {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}

func cutMonoSuffix(family string) (string, bool) {
	if len(family) > 5 && strings.EqualFold(family[len(family)-5:], " mono") {
		return strings.TrimSpace(family[:len(family)-5]), true
	}
	return family, false
}

func containsStyle(styles []font.Style, s font.Style) bool {
	for _, x := range styles {
		if x == s {
			return true
		}
	}
	return false
}
