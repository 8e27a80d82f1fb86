package resources

import (
	"archive/zip"
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/folio/core"
	"github.com/npillmayer/folio/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDirImages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folio.resources")
	defer teardown()
	//
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "images", "cover.png"), pngBytes(t, 8, 4), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "images", "bad.png"), []byte("garbage"), 0o644))
	src := DirImages(dir)
	//
	bm, err := src.Image("images/cover.png")
	require.NoError(t, err)
	assert.Equal(t, dimen.Size{W: 8, H: 4}, bm.Size)
	//
	_, err = src.Image("images/missing.png")
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
	//
	_, err = src.Image("images/bad.png")
	require.Error(t, err)
	assert.Equal(t, core.EFORMAT, core.Code(err))
}

func TestResolvePath(t *testing.T) {
	for _, tc := range []struct {
		base, ref, expected string
	}{
		{"OEBPS/text", "../images/a.png", "OEBPS/images/a.png"},
		{"OEBPS", "images/a%20b.png", "OEBPS/images/a b.png"},
		{"OEBPS", "/cover.jpg", "cover.jpg"},
		{".", "x.png#frag", "x.png"},
	} {
		name, err := ResolvePath(tc.base, tc.ref)
		if assert.NoError(t, err, tc.ref) {
			assert.Equal(t, tc.expected, name)
		}
	}
	_, err := ResolvePath("OEBPS", "../../etc/passwd")
	assert.Error(t, err)
	_, err = ResolvePath("OEBPS", "https://example.com/a.png")
	assert.Error(t, err)
}

func TestArchive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folio.resources")
	defer teardown()
	//
	zipname := filepath.Join(t.TempDir(), "book.epub")
	f, err := os.Create(zipname)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("OEBPS/images/pic.png")
	require.NoError(t, err)
	_, err = w.Write(pngBytes(t, 3, 3))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	//
	a, err := OpenArchive(zipname)
	require.NoError(t, err)
	defer a.Close()
	bm, err := a.Images("OEBPS/text").Image("../images/pic.png")
	require.NoError(t, err)
	assert.Equal(t, dimen.Size{W: 3, H: 3}, bm.Size)
	_, err = a.ReadFile("OEBPS/nothing.xhtml")
	assert.Equal(t, core.EMISSING, core.Code(err))
	//
	_, err = OpenArchive(filepath.Join(t.TempDir(), "none.epub"))
	assert.Equal(t, core.EMISSING, core.Code(err))
}
