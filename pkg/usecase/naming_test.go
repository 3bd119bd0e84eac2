package usecase_test

import (
	"testing"
	"time"

	"github.com/colet-sistemas/solicita/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestArtifactName(t *testing.T) {
	date := time.Date(2024, 3, 5, 11, 30, 0, 0, time.UTC)

	t.Run("accented title with punctuation", func(t *testing.T) {
		name := usecase.ArtifactName("Reportar Bug", "Erro no módulo financeiro!!", date)
		gt.Equal(t, name, "Reportar_Bug_20240305_Erro_no_m_dulo_fina.pdf")
	})

	t.Run("category whitespace collapses to underscores", func(t *testing.T) {
		name := usecase.ArtifactName("  Sugerir   Melhoria ", "Atalho", date)
		gt.Equal(t, name, "Sugerir_Melhoria_20240305_Atalho.pdf")
	})

	t.Run("short title is kept whole", func(t *testing.T) {
		name := usecase.ArtifactName("Reportar Bug", "Tela trava", date)
		gt.Equal(t, name, "Reportar_Bug_20240305_Tela_trava.pdf")
	})

	t.Run("truncation never splits a rune", func(t *testing.T) {
		// 19 ASCII bytes followed by a two-byte rune straddling the
		// 20-byte cutoff; the whole rune must be dropped
		name := usecase.ArtifactName("Reportar Bug", "aaaaaaaaaaaaaaaaaaaçz", date)
		gt.Equal(t, name, "Reportar_Bug_20240305_aaaaaaaaaaaaaaaaaaa.pdf")
	})

	t.Run("same input yields same name", func(t *testing.T) {
		a := usecase.ArtifactName("Reportar Bug", "Erro recorrente", date)
		b := usecase.ArtifactName("Reportar Bug", "Erro recorrente", date)
		gt.Equal(t, a, b)
	})

	t.Run("date comes from the given time", func(t *testing.T) {
		name := usecase.ArtifactName("Reportar Bug", "Virada", time.Date(2024, 1, 1, 1, 30, 0, 0, time.UTC))
		gt.Equal(t, name, "Reportar_Bug_20240101_Virada.pdf")
	})
}
