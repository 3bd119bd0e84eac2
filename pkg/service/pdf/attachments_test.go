package pdf

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
)

func TestPlaceholderLabel(t *testing.T) {
	t.Run("known mime type passes through", func(t *testing.T) {
		gt.Equal(t, placeholderLabel("application/zip"), "application/zip")
	})

	t.Run("missing mime type falls back to formato desconhecido", func(t *testing.T) {
		gt.Equal(t, placeholderLabel(""), "formato desconhecido")
	})
}

func TestTruncateName(t *testing.T) {
	t.Run("short name is untouched", func(t *testing.T) {
		gt.Equal(t, truncateName("captura.png"), "captura.png")
	})

	t.Run("long name is cut with ellipsis", func(t *testing.T) {
		long := strings.Repeat("a", 60)
		got := truncateName(long)
		gt.Equal(t, got, strings.Repeat("a", 47)+"...")
	})

	t.Run("name at the limit keeps its tail", func(t *testing.T) {
		name := strings.Repeat("b", 50)
		gt.Equal(t, truncateName(name), name)
	})
}
