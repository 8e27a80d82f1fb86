package resources

import (
	"archive/zip"
	"fmt"
	"image"
	_ "image/gif" // register decoders
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/folio/core"
	"github.com/npillmayer/folio/core/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type resourceType int

// resource types
const (
	unknownResourceType resourceType = iota
	fontResourceType
	imageResourceType
	documentResourceType
)

// NotFound returns an application error for a missing resource.
func NotFound(res string, rtype resourceType) error {
	e := fmt.Errorf("resource missing: %v", res)
	var s string
	switch rtype {
	case imageResourceType:
		s = fmt.Sprintf("image not found: %s", res)
	case fontResourceType:
		s = fmt.Sprintf("font not found: %s", res)
	case documentResourceType:
		s = fmt.Sprintf("document not found: %s", res)
	default:
		s = fmt.Sprintf("resource not found: %s", res)
	}
	return core.WrapError(e, core.EMISSING, s)
}

// --- Images ---------------------------------------------------------------

// FSImages resolves image references within a file system. References are
// interpreted relative to Base, which usually is the directory of the
// chapter containing the reference.
type FSImages struct {
	FS   fs.FS
	Base string
}

// DirImages creates an image source for a directory of the local file system.
func DirImages(dir string) FSImages {
	return FSImages{FS: os.DirFS(dir), Base: "."}
}

// Image loads and decodes an image. Absolute URLs are not supported and
// reported as missing.
func (src FSImages) Image(ref string) (*imaging.Bitmap, error) {
	name, err := ResolvePath(src.Base, ref)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("resolving image %s as %s", ref, name)
	f, err := src.FS.Open(name)
	if err != nil {
		return nil, NotFound(ref, imageResourceType)
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, core.WrapError(err, core.EFORMAT, "cannot decode image %s", ref)
	}
	tracer().Debugf("decoded %s image %s, size %v", format, name, img.Bounds().Size())
	return imaging.FromImage(img), nil
}

// ResolvePath resolves a reference relative to a base path, both given in
// slash-separated fs.FS notation. Fragments are cut and escapes decoded.
// References leaving the file system root are reported as missing.
func ResolvePath(base, ref string) (string, error) {
	if i := strings.IndexByte(ref, '#'); i >= 0 {
		ref = ref[:i]
	}
	if u, err := url.Parse(ref); err == nil && u.Scheme != "" {
		return "", NotFound(ref, unknownResourceType)
	}
	if unescaped, err := url.PathUnescape(ref); err == nil {
		ref = unescaped
	}
	var name string
	if strings.HasPrefix(ref, "/") {
		name = path.Clean(strings.TrimLeft(ref, "/"))
	} else {
		name = path.Join(base, ref)
	}
	if name == "" || !fs.ValidPath(name) {
		return "", NotFound(ref, unknownResourceType)
	}
	return name, nil
}

// --- Archives --------------------------------------------------------------

// Archive is a zip container, such as an EPUB file, opened as a file system.
type Archive struct {
	*zip.ReadCloser
	Path string
}

// OpenArchive opens a zip container. Clients must close it after use.
func OpenArchive(filename string) (*Archive, error) {
	z, err := zip.OpenReader(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NotFound(filename, documentResourceType)
		}
		return nil, core.WrapError(err, core.EFORMAT, "cannot open archive %s", filename)
	}
	tracer().Infof("opened archive %s with %d entries", filename, len(z.File))
	return &Archive{ReadCloser: z, Path: filename}, nil
}

// ReadFile reads a file from the archive.
func (a *Archive) ReadFile(name string) ([]byte, error) {
	data, err := fs.ReadFile(a, name)
	if err != nil {
		return nil, NotFound(name, documentResourceType)
	}
	return data, nil
}

// Images returns an image source for references relative to base.
func (a *Archive) Images(base string) FSImages {
	return FSImages{FS: a, Base: base}
}

// --- Fonts -----------------------------------------------------------------

// FindSystemFont locates a font file installed on the system, by file name
// (with or without extension).
func FindSystemFont(name string) (string, error) {
	fpath, err := findfont.Find(name)
	if err != nil || fpath == "" {
		return "", NotFound(name, fontResourceType)
	}
	tracer().Debugf("%s is a system font at %s", name, fpath)
	return fpath, nil
}
