package fontregistry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/folio/core"
	"github.com/npillmayer/folio/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func writeFonts(t *testing.T) string {
	dir := t.TempDir()
	sub := filepath.Join(dir, "go")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	files := map[string][]byte{
		filepath.Join(sub, "Go-Regular.ttf"): goregular.TTF,
		filepath.Join(sub, "Go-Bold.ttf"):    gobold.TTF,
		filepath.Join(dir, "Go-Mono.ttf"):    gomono.TTF,
		filepath.Join(dir, "README.txt"):     []byte("not a font"),
		filepath.Join(dir, "Broken.ttf"):     []byte("not a font either"),
	}
	for name, data := range files {
		require.NoError(t, os.WriteFile(name, data, 0o644))
	}
	return dir
}

func TestScan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folio.font")
	defer teardown()
	//
	ix := NewIndexer()
	n, err := ix.Scan(writeFonts(t))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"Go"}, ix.Families())
	assert.Equal(t, []string{"Go"}, ix.FamiliesWithPrefix("g"))
	assert.Empty(t, ix.FamiliesWithPrefix("vollkorn"))
	//
	fam, err := ix.Family("go")
	require.NoError(t, err)
	assert.Equal(t, []font.Style{font.Regular, font.Bold, font.Mono}, fam.Styles())
	_, err = fam.Face(font.Italic)
	assert.Error(t, err)
}

func TestRegistryFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folio.font")
	defer teardown()
	//
	reg := NewRegistry(nil)
	fam, err := reg.Family("Vollkorn")
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.Same(t, font.FallbackFamily(), fam)
	//
	fam, err = reg.Family("Go")
	require.NoError(t, err)
	assert.Same(t, font.FallbackFamily(), fam)
}

func TestRegistryCaches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folio.font")
	defer teardown()
	//
	ix := NewIndexer()
	require.True(t, ix.IndexFile(writeFontAs(t, "Custom-Bold.ttf", gobold.TTF)))
	// Go fonts are named "Go" internally, so re-key the entry to test caching
	ix.entries["custom"] = ix.entries["go"]
	reg := NewRegistry(ix)
	fam1, err := reg.Family("Custom")
	require.NoError(t, err)
	fam2, err := reg.Family("custom")
	require.NoError(t, err)
	assert.Same(t, fam1, fam2)
	reg.LogFontList()
	//
	stored := font.NewFamily("Stored")
	reg.StoreFamily(stored)
	fam, err := reg.Family("stored")
	require.NoError(t, err)
	assert.Same(t, stored, fam)
}

func writeFontAs(t *testing.T, name string, data []byte) string {
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func TestGuessStyle(t *testing.T) {
	assert.Equal(t, font.Bold, GuessStyle("/fonts/Vollkorn-Bold.ttf"))
	assert.Equal(t, font.BoldItalic, GuessStyle("Vollkorn-BoldItalic.otf"))
	assert.Equal(t, font.Italic, GuessStyle("Vollkorn_Italic.ttf"))
	assert.Equal(t, font.Regular, GuessStyle("Vollkorn.ttf"))
	assert.Equal(t, font.Mono, GuessStyle("DejaVuSansMono.ttf"))
	assert.Equal(t, "go_mono", NormalizeFontname(" Go  Mono.ttf"))
}
