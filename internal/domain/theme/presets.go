package theme

import (
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/folio/internal/domain/content"
)

// Palette is the color part of a theme, without the style tag.
type Palette struct {
	Primary    string
	Secondary  string
	Accent     string
	Background string
	Surface    string
}

// On returns cfg with its colors replaced by the palette; the style tag of
// cfg is kept.
func (p Palette) On(cfg content.ThemeConfig) content.ThemeConfig {
	cfg.Primary = p.Primary
	cfg.Secondary = p.Secondary
	cfg.Accent = p.Accent
	cfg.Background = p.Background
	cfg.Surface = p.Surface
	return cfg
}

var presets = map[string]Palette{
	"cyberpunk": {
		Primary:    "#A855F7",
		Secondary:  "#EC4899",
		Accent:     "#06B6D4",
		Background: "#030014",
		Surface:    "#0F172A",
	},
	"matrix": {
		Primary:    "#00FF41",
		Secondary:  "#008F11",
		Accent:     "#D4FF00",
		Background: "#0D0208",
		Surface:    "#003B00",
	},
	"ocean": {
		Primary:    "#0EA5E9",
		Secondary:  "#3B82F6",
		Accent:     "#2DD4BF",
		Background: "#020617",
		Surface:    "#0B1120",
	},
	"sunset": {
		Primary:    "#F97316",
		Secondary:  "#E11D48",
		Accent:     "#FBBF24",
		Background: "#1c0505",
		Surface:    "#2d0a0a",
	},
	"monochrome": {
		Primary:    "#FFFFFF",
		Secondary:  "#9CA3AF",
		Accent:     "#D1D5DB",
		Background: "#000000",
		Surface:    "#111111",
	},
}

// presetOrder is the display order of the settings panel.
var presetOrder = []string{"cyberpunk", "matrix", "ocean", "sunset", "monochrome"}

// PresetNames returns the built-in preset names in display order.
func PresetNames() []string {
	return append([]string(nil), presetOrder...)
}

// Preset looks up a built-in palette by name, case-insensitively.
func Preset(name string) (Palette, error) {
	palette, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		known := make([]string, 0, len(presets))
		for k := range presets {
			known = append(known, k)
		}
		sort.Strings(known)
		return Palette{}, content.NewNotFoundError("preset", name).WithContext(map[string]interface{}{
			"known": known,
		})
	}
	return palette, nil
}
