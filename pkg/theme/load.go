package theme

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/go-drift/paper/pkg/errors"
	"github.com/go-drift/paper/pkg/graphics"
	"gopkg.in/yaml.v3"
)

// overrideFile is the YAML form of an Override.
//
//	schema: v3
//	dark: true
//	animationScale: 0.5
//	colors:
//	  primary: "#00796b"
//	  brand: rgba(0, 0, 0, .54)
//	spacing:
//	  x2: 10
//	fonts:
//	  medium: {family: Inter, weight: 500}
type overrideFile struct {
	Schema         *string             `yaml:"schema,omitempty"`
	Dark           *bool               `yaml:"dark,omitempty"`
	Roundness      *float64            `yaml:"roundness,omitempty"`
	AnimationScale *float64            `yaml:"animationScale,omitempty"`
	Colors         map[string]string   `yaml:"colors,omitempty"`
	Spacing        map[string]float64  `yaml:"spacing,omitempty"`
	Fonts          map[string]fontFile `yaml:"fonts,omitempty"`
}

type fontFile struct {
	Family string `yaml:"family"`
	Weight string `yaml:"weight"`
}

// LoadOverride reads an Override from a YAML file.
func LoadOverride(path string) (Override, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			err = fmt.Errorf("theme file not found: %w", err)
		}
		return Override{}, &errors.PaperError{Op: "theme.LoadOverride", Kind: errors.KindConfig, Path: path, Err: err}
	}
	o, err := ParseOverride(data)
	if err != nil {
		var pe *errors.PaperError
		if stderrors.As(err, &pe) {
			pe.Path = path
		}
		return Override{}, err
	}
	return o, nil
}

// ParseOverride decodes an Override from YAML. Every color, version and
// weight is checked here, so a successful parse always resolves cleanly.
func ParseOverride(data []byte) (Override, error) {
	var f overrideFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Override{}, parseError(err)
	}

	o := Override{
		Dark:           f.Dark,
		Roundness:      f.Roundness,
		AnimationScale: f.AnimationScale,
	}
	if f.Schema != nil {
		v, err := ParseSchemaVersion(*f.Schema)
		if err != nil {
			return Override{}, parseError(err)
		}
		o.Schema = &v
	}
	if f.Colors != nil {
		o.Colors = make(Palette, len(f.Colors))
		for role, s := range f.Colors {
			c, err := graphics.ParseColor(s)
			if err != nil {
				return Override{}, parseError(fmt.Errorf("colors.%s: %w", role, err))
			}
			o.Colors[role] = c
		}
	}
	if f.Spacing != nil {
		o.Spacing = make(SpacingScale, len(f.Spacing))
		for k, v := range f.Spacing {
			o.Spacing[k] = v
		}
	}
	if f.Fonts != nil {
		o.Fonts = make(FontVariants, len(f.Fonts))
		for name, ff := range f.Fonts {
			d := graphics.FontDescriptor{Family: ff.Family, Weight: graphics.FontWeightNormal}
			if ff.Weight != "" {
				w, err := graphics.ParseFontWeight(ff.Weight)
				if err != nil {
					return Override{}, parseError(fmt.Errorf("fonts.%s: %w", name, err))
				}
				d.Weight = w
			}
			o.Fonts[FontVariant(name)] = d
		}
	}
	return o, nil
}

func parseError(err error) error {
	return &errors.PaperError{Op: "theme.ParseOverride", Kind: errors.KindParsing, Err: err}
}

// resolvedFile is the YAML form of a Resolved theme.
type resolvedFile struct {
	Schema          string              `yaml:"schema"`
	IsCurrentSchema bool                `yaml:"isCurrentSchema"`
	Dark            bool                `yaml:"dark"`
	Roundness       float64             `yaml:"roundness"`
	AnimationScale  float64             `yaml:"animationScale"`
	Colors          map[string]string   `yaml:"colors"`
	Spacing         map[string]float64  `yaml:"spacing"`
	Fonts           map[string]fontFile `yaml:"fonts"`
}

// MarshalYAML renders colors as strings and font weights as numbers, so the
// output can be fed back through [ParseOverride].
func (r *Resolved) MarshalYAML() (any, error) {
	f := resolvedFile{
		Schema:          r.Schema.String(),
		IsCurrentSchema: r.IsCurrentSchema,
		Dark:            r.Dark,
		Roundness:       r.Roundness,
		AnimationScale:  r.AnimationScale,
		Colors:          make(map[string]string, len(r.Colors)),
		Spacing:         r.Spacing,
		Fonts:           make(map[string]fontFile, len(r.Fonts)),
	}
	for role, c := range r.Colors {
		f.Colors[role] = c.String()
	}
	for v, d := range r.Fonts {
		f.Fonts[string(v)] = fontFile{Family: d.Family, Weight: fmt.Sprint(int(d.Weight))}
	}
	return f, nil
}
