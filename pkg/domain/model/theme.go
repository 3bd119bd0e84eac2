package model

import (
	"fmt"

	"github.com/colet-sistemas/solicita/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Color is an RGB triple used for document accents and badges
type Color struct {
	R, G, B uint8
}

// RGB returns the channels as ints, the form the PDF layer consumes
func (c Color) RGB() (int, int, int) {
	return int(c.R), int(c.G), int(c.B)
}

// Hex returns the #rrggbb representation
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses a #rrggbb hex string
func ParseColor(s string) (Color, error) {
	var c Color
	if len(s) != 7 || s[0] != '#' {
		return c, goerr.New("color must be #rrggbb", goerr.V("value", s))
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, goerr.Wrap(err, "invalid hex color", goerr.V("value", s))
	}
	return c, nil
}

// UnmarshalYAML parses a color from its hex form in catalog files
func (c *Color) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Theme holds category-specific presentation parameters for the document
type Theme struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Accent      Color  `yaml:"accent"`
}

// Validate validates the theme
func (t *Theme) Validate() error {
	if t.Title == "" {
		return goerr.New("theme title is required")
	}
	return nil
}

// DefaultThemes returns the built-in per-category presentation themes
func DefaultThemes() map[types.Category]Theme {
	return map[types.Category]Theme{
		types.CategoryBug: {
			Title:       "Reportar Bug",
			Description: "Reporte problemas e falhas técnicas nos sistemas",
			Accent:      Color{0x09, 0xa0, 0x8d},
		},
		types.CategoryImprovement: {
			Title:       "Sugerir Melhoria",
			Description: "Proponha aprimoramentos e novas funcionalidades",
			Accent:      Color{0x3c, 0x78, 0x7a},
		},
	}
}
