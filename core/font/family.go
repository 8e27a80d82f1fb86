package font

import (
	"sync"

	"github.com/npillmayer/folio/core"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Family is a named set of faces, at most one per style.
type Family struct {
	Name  string
	faces map[Style]*Face
}

// NewFamily creates a family from a set of faces. If more than one face
// is given for a style, the first one wins.
func NewFamily(name string, faces ...*Face) *Family {
	fam := &Family{Name: name, faces: make(map[Style]*Face, len(faces))}
	for _, f := range faces {
		fam.AddFace(f)
	}
	return fam
}

// AddFace adds a face to a family, if its style is not yet taken.
// It returns false if the face has been ignored.
func (fam *Family) AddFace(f *Face) bool {
	if f == nil {
		return false
	}
	if _, ok := fam.faces[f.style]; ok {
		tracer().Debugf("family %s already has a %s face, ignoring %s", fam.Name, f.style, f.Filepath)
		return false
	}
	fam.faces[f.style] = f
	return true
}

// Face returns the face for a style. Styles are matched exactly, there is
// no fallback to another style.
func (fam *Family) Face(style Style) (*Face, error) {
	if f, ok := fam.faces[style]; ok {
		return f, nil
	}
	return nil, core.WrapError(ErrMissingFace, core.EMISSING,
		"font family %s has no %s face", fam.Name, style)
}

// Styles returns the styles present in a family, in canonical order.
func (fam *Family) Styles() []Style {
	var styles []Style
	for _, s := range Styles() {
		if _, ok := fam.faces[s]; ok {
			styles = append(styles, s)
		}
	}
	return styles
}

func (fam *Family) String() string {
	return fam.Name
}

// ---------------------------------------------------------------------------

var fallback struct {
	once   sync.Once
	family *Family
}

// FallbackFamily returns the Go fonts as a family with all five styles.
// They are compiled into the binary and therefore always available.
func FallbackFamily() *Family {
	fallback.once.Do(func() {
		fam := NewFamily("Go")
		for _, s := range []struct {
			style Style
			ttf   []byte
		}{
			{Regular, goregular.TTF},
			{Bold, gobold.TTF},
			{Italic, goitalic.TTF},
			{BoldItalic, gobolditalic.TTF},
			{Mono, gomono.TTF},
		} {
			f, err := NewFace("Go", s.style, s.ttf)
			if err != nil {
				panic("cannot parse packaged Go fonts: " + err.Error())
			}
			fam.AddFace(f)
		}
		fallback.family = fam
	})
	return fallback.family
}
