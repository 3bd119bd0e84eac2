package model_test

import (
	"testing"

	"github.com/colet-sistemas/solicita/pkg/domain/model"
	"github.com/colet-sistemas/solicita/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestParseColor(t *testing.T) {
	t.Run("parses hex colors", func(t *testing.T) {
		c, err := model.ParseColor("#09a08d")
		gt.NoError(t, err)
		r, g, b := c.RGB()
		gt.Equal(t, r, 0x09)
		gt.Equal(t, g, 0xa0)
		gt.Equal(t, b, 0x8d)
		gt.Equal(t, c.Hex(), "#09a08d")
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		_, err := model.ParseColor("09a08d")
		gt.Error(t, err)
		_, err = model.ParseColor("#09a")
		gt.Error(t, err)
		_, err = model.ParseColor("#zzzzzz")
		gt.Error(t, err)
	})
}

func TestDefaultThemes(t *testing.T) {
	themes := model.DefaultThemes()

	t.Run("bug theme", func(t *testing.T) {
		theme, ok := themes[types.CategoryBug]
		gt.True(t, ok)
		gt.Equal(t, theme.Title, "Reportar Bug")
		gt.Equal(t, theme.Accent.Hex(), "#09a08d")
	})

	t.Run("improvement theme", func(t *testing.T) {
		theme, ok := themes[types.CategoryImprovement]
		gt.True(t, ok)
		gt.Equal(t, theme.Title, "Sugerir Melhoria")
		gt.Equal(t, theme.Accent.Hex(), "#3c787a")
	})
}

func TestThemeValidate(t *testing.T) {
	t.Run("requires a title", func(t *testing.T) {
		theme := model.Theme{Description: "sem título"}
		gt.Error(t, theme.Validate())
	})
}
