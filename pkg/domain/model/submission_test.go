package model_test

import (
	"testing"
	"time"

	"github.com/colet-sistemas/solicita/pkg/domain/model"
	"github.com/colet-sistemas/solicita/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func bugSubmission() *model.Submission {
	return &model.Submission{
		User:        "cristiane",
		Category:    types.CategoryBug,
		Title:       "Erro no faturamento",
		Description: "Ao emitir a nota o sistema trava",
		OccurredAt:  "2024-03-05T14:30",
		Severity:    "4",
		Urgency:     "3",
		Trend:       "2",
	}
}

func TestSubmissionRecord(t *testing.T) {
	t.Run("bug submission converts", func(t *testing.T) {
		rec, err := bugSubmission().Record()
		gt.NoError(t, err)
		gt.Equal(t, rec.Title, "Erro no faturamento")
		gt.Equal(t, rec.Category, types.CategoryBug)
		gt.Equal(t, rec.Severity, 4)
		gt.Equal(t, rec.Urgency, 3)
		gt.Equal(t, rec.Trend, 2)
		gt.Equal(t, rec.OccurredAt, time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC))
		gt.Nil(t, rec.Improvement)
	})

	t.Run("ratings fail soft to 1", func(t *testing.T) {
		sub := bugSubmission()
		sub.Severity = "abc"
		sub.Urgency = "0"
		sub.Trend = ""
		rec, err := sub.Record()
		gt.NoError(t, err)
		gt.Equal(t, rec.Severity, 1)
		gt.Equal(t, rec.Urgency, 1)
		gt.Equal(t, rec.Trend, 1)
	})

	t.Run("affectsOthers maps only yes", func(t *testing.T) {
		sub := bugSubmission()
		sub.AffectsOthers = "yes"
		rec, err := sub.Record()
		gt.NoError(t, err)
		gt.True(t, rec.AffectsOthers)

		sub.AffectsOthers = "no"
		rec, err = sub.Record()
		gt.NoError(t, err)
		gt.False(t, rec.AffectsOthers)

		sub.AffectsOthers = "sim"
		rec, err = sub.Record()
		gt.NoError(t, err)
		gt.False(t, rec.AffectsOthers)
	})

	t.Run("improvement fields only for improvement", func(t *testing.T) {
		sub := bugSubmission()
		sub.Category = types.CategoryImprovement
		sub.CurrentProcess = "Processo manual"
		sub.FutureProcess = "Processo automatizado"
		sub.OperationalImpact = "Ganho de 2h por dia"

		rec, err := sub.Record()
		gt.NoError(t, err)
		gt.NotNil(t, rec.Improvement)
		gt.Equal(t, rec.Improvement.CurrentProcess, "Processo manual")
		gt.Equal(t, rec.Improvement.FutureProcess, "Processo automatizado")
		gt.Equal(t, rec.Improvement.OperationalImpact, "Ganho de 2h por dia")
	})

	t.Run("improvement fields ignored for bug", func(t *testing.T) {
		sub := bugSubmission()
		sub.CurrentProcess = "leftover from a previous form state"
		rec, err := sub.Record()
		gt.NoError(t, err)
		gt.Nil(t, rec.Improvement)
	})

	t.Run("accepts multiple timestamp layouts", func(t *testing.T) {
		layouts := map[string]time.Time{
			"2024-03-05T14:30:45Z":      time.Date(2024, 3, 5, 14, 30, 45, 0, time.UTC),
			"2024-03-05T14:30:45":       time.Date(2024, 3, 5, 14, 30, 45, 0, time.UTC),
			"2024-03-05T14:30":          time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC),
			"2024-03-05T14:30:45-03:00": time.Date(2024, 3, 5, 14, 30, 45, 0, time.FixedZone("", -3*60*60)),
		}
		for input, want := range layouts {
			sub := bugSubmission()
			sub.OccurredAt = input
			rec, err := sub.Record()
			gt.NoError(t, err)
			gt.True(t, rec.OccurredAt.Equal(want))
		}
	})

	t.Run("unparseable date errors", func(t *testing.T) {
		sub := bugSubmission()
		sub.OccurredAt = "05/03/2024"
		_, err := sub.Record()
		gt.Error(t, err)
	})

	t.Run("invalid record is rejected", func(t *testing.T) {
		sub := bugSubmission()
		sub.Title = ""
		_, err := sub.Record()
		gt.Error(t, err)
	})
}
