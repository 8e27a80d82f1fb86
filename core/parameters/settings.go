package parameters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/folio/core"
	"github.com/npillmayer/folio/core/dimen"
	"github.com/npillmayer/folio/core/font"
	"gopkg.in/yaml.v3"
)

// Settings are the user settings of a reader.
type Settings struct {
	Library  string  `yaml:"library"`
	Fonts    string  `yaml:"fonts"`
	Family   string  `yaml:"family"`
	FontSize float32 `yaml:"font_size"`
	Page     struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"page"`
	Margins struct {
		Horizontal string `yaml:"horizontal"`
		Vertical   string `yaml:"vertical"`
	} `yaml:"margins"`
}

// DefaultSettings returns the settings used if nothing is configured.
func DefaultSettings() Settings {
	s := Settings{
		Family:   "Go",
		FontSize: 18,
	}
	s.Page.Width, s.Page.Height = 640, 480
	s.Margins.Horizontal, s.Margins.Vertical = "16px", "16px"
	return s
}

// LoadSettings reads settings from a YAML file. Values missing from the
// file are taken from DefaultSettings.
func LoadSettings(filename string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(filename)
	if err != nil {
		return s, core.WrapError(err, core.EMISSING, "cannot read settings file %s", filename)
	}
	if err = yaml.Unmarshal(data, &s); err != nil {
		return s, core.WrapError(err, core.EFORMAT, "settings file %s is malformed", filename)
	}
	s.Library = expandHome(s.Library)
	s.Fonts = expandHome(s.Fonts)
	tracer().Infof("loaded settings from %s", filename)
	return s, nil
}

// Save writes settings as YAML.
func (s Settings) Save(filename string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot serialize settings")
	}
	return os.WriteFile(filename, data, 0o644)
}

// FamilyResolver finds a font family by name. It is implemented by the
// font registry.
type FamilyResolver interface {
	Family(name string) (*font.Family, error)
}

// TypesetConfig creates a typesetting config from settings. If the
// resolver cannot find the configured family but returns a substitute,
// the substitute is used and the error is traced.
func (s Settings) TypesetConfig(families FamilyResolver) (TypesetConfig, error) {
	conf := TypesetConfig{
		PointSize:  s.FontSize,
		PageWidth:  s.Page.Width,
		PageHeight: s.Page.Height,
	}
	hm, err := dimen.ParseDimen(s.Margins.Horizontal)
	if err != nil {
		return conf, core.WrapError(err, core.EINVALID, "horizontal margin: %v", err)
	}
	vm, err := dimen.ParseDimen(s.Margins.Vertical)
	if err != nil {
		return conf, core.WrapError(err, core.EINVALID, "vertical margin: %v", err)
	}
	conf.HorizontalMargin, conf.VerticalMargin = int(hm+0.5), int(vm+0.5)
	if families == nil {
		conf.Family = font.FallbackFamily()
	} else {
		fam, err := families.Family(s.Family)
		if fam == nil {
			return conf, err
		}
		if err != nil {
			tracer().Infof("using font family %s: %v", fam.Name, err)
		}
		conf.Family = fam
	}
	return conf, conf.Validate()
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[1:])
		}
	}
	return p
}
