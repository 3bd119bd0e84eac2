package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/colet-sistemas/solicita/pkg/domain/model"
	"github.com/colet-sistemas/solicita/pkg/domain/types"
	"github.com/colet-sistemas/solicita/pkg/service/layout"
	"github.com/colet-sistemas/solicita/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func bugRecord() *model.RequestRecord {
	return &model.RequestRecord{
		Title:       "Erro no módulo financeiro!!",
		Description: "O relatório de contas a pagar não abre",
		Category:    types.CategoryBug,
		Severity:    4,
		Urgency:     4,
		Trend:       3,
		OccurredAt:  time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC),
		ClientName:  "Natur (7)",
	}
}

// failingRenderer always fails, standing in for a broken font setup
type failingRenderer struct{}

func (r *failingRenderer) Render(ctx context.Context, in *model.SummaryInput) (image.Image, error) {
	return nil, errors.New("render broke")
}

func TestCompose(t *testing.T) {
	renderer, err := layout.NewRenderer()
	gt.NoError(t, err)
	ctx := context.Background()
	theme := model.DefaultThemes()[types.CategoryBug]

	t.Run("bug record composes a named artifact", func(t *testing.T) {
		uc := usecase.NewCompose(renderer)
		artifact, err := uc.Compose(ctx, bugRecord(), "Cristiane", "Equipe de Suporte", theme)
		gt.NoError(t, err)
		gt.Equal(t, artifact.Filename, "Reportar_Bug_20240305_Erro_no_m_dulo_fina.pdf")
		gt.True(t, artifact.PageCount >= 1)
		gt.True(t, bytes.HasPrefix(artifact.Data, []byte("%PDF-")))
	})

	t.Run("display offset shifts the filename date", func(t *testing.T) {
		// 01:30 UTC with the default -3h display offset lands on the
		// previous day
		rec := bugRecord()
		rec.OccurredAt = time.Date(2024, 3, 5, 1, 30, 0, 0, time.UTC)

		uc := usecase.NewCompose(renderer)
		artifact, err := uc.Compose(ctx, rec, "Cristiane", "Equipe de Suporte", theme)
		gt.NoError(t, err)
		gt.Equal(t, artifact.Filename, "Reportar_Bug_20240304_Erro_no_m_dulo_fina.pdf")
	})

	t.Run("zero offset keeps the date as given", func(t *testing.T) {
		rec := bugRecord()
		rec.OccurredAt = time.Date(2024, 3, 5, 1, 30, 0, 0, time.UTC)

		uc := usecase.NewCompose(renderer, usecase.WithDisplayOffset(0))
		artifact, err := uc.Compose(ctx, rec, "Cristiane", "Equipe de Suporte", theme)
		gt.NoError(t, err)
		gt.Equal(t, artifact.Filename, "Reportar_Bug_20240305_Erro_no_m_dulo_fina.pdf")
	})

	t.Run("composition is repeatable", func(t *testing.T) {
		uc := usecase.NewCompose(renderer)
		a, err := uc.Compose(ctx, bugRecord(), "Cristiane", "Equipe de Suporte", theme)
		gt.NoError(t, err)
		b, err := uc.Compose(ctx, bugRecord(), "Cristiane", "Equipe de Suporte", theme)
		gt.NoError(t, err)
		gt.Equal(t, a.Filename, b.Filename)
		gt.Equal(t, a.PageCount, b.PageCount)
	})

	t.Run("broken attachment does not abort composition", func(t *testing.T) {
		rec := bugRecord()
		rec.Attachments = []model.Attachment{
			{Filename: "quebrada.png", MimeType: "image/png", Size: 3, Data: []byte{1, 2, 3}},
		}
		uc := usecase.NewCompose(renderer)
		artifact, err := uc.Compose(ctx, rec, "Cristiane", "Equipe de Suporte", theme)
		gt.NoError(t, err)
		gt.True(t, artifact.PageCount >= 2)
	})

	t.Run("invalid record is rejected before rendering", func(t *testing.T) {
		rec := bugRecord()
		rec.Title = ""
		uc := usecase.NewCompose(renderer)
		_, err := uc.Compose(ctx, rec, "Cristiane", "Equipe de Suporte", theme)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrInvalidRecord))
	})

	t.Run("renderer failure is fatal", func(t *testing.T) {
		uc := usecase.NewCompose(&failingRenderer{})
		_, err := uc.Compose(ctx, bugRecord(), "Cristiane", "Equipe de Suporte", theme)
		gt.Error(t, err)
	})
}

func TestIntake(t *testing.T) {
	renderer, err := layout.NewRenderer()
	gt.NoError(t, err)
	ctx := context.Background()
	catalog := model.DefaultCatalog()
	intake := usecase.NewIntake(catalog, usecase.NewCompose(renderer))

	t.Run("option lists come from the catalog", func(t *testing.T) {
		gt.Equal(t, len(intake.Users()), len(catalog.Users))
		gt.Equal(t, intake.Clients(), catalog.ClientNames())
		gt.True(t, len(intake.ERPModules()) > 0)
		gt.True(t, len(intake.OperatingSystems()) > 0)
	})

	t.Run("databases for unknown client error", func(t *testing.T) {
		_, err := intake.Databases("Cliente Fantasma")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrClientNotFound))
	})

	t.Run("categories carry their themes", func(t *testing.T) {
		cats := intake.Categories()
		gt.Equal(t, len(cats), 2)
		gt.Equal(t, cats[0].ID, types.CategoryBug)
		gt.Equal(t, cats[0].Title, "Reportar Bug")
		gt.Equal(t, cats[0].Accent, "#09a08d")
		gt.Equal(t, cats[1].ID, types.CategoryImprovement)
	})

	t.Run("submission flows end to end", func(t *testing.T) {
		artifact, err := intake.Submit(ctx, &model.Submission{
			User:        "cristiane",
			Category:    types.CategoryBug,
			Title:       "Tela de pedidos trava",
			Description: "Ao salvar um pedido grande a tela congela",
			OccurredAt:  "2024-03-05T14:30",
			Severity:    "3",
			Urgency:     "3",
			Trend:       "2",
		})
		gt.NoError(t, err)
		gt.Equal(t, artifact.Filename, "Reportar_Bug_20240305_Tela_de_pedidos_trav.pdf")
		gt.True(t, len(artifact.Data) > 0)
	})

	t.Run("unknown user is rejected", func(t *testing.T) {
		_, err := intake.Submit(ctx, &model.Submission{
			User:       "nobody",
			Category:   types.CategoryBug,
			Title:      "Qualquer",
			OccurredAt: "2024-03-05T14:30",
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrUserNotFound))
	})
}
