package layout

import (
	"fmt"

	"github.com/colet-sistemas/solicita/pkg/domain/model"
	"github.com/colet-sistemas/solicita/pkg/domain/types"
)

const displayTimeLayout = "02/01/2006 15:04:05"

func orElse(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// buildSummary assembles the layout tree for one request. Improvement
// requests get three extra sections between the description and the
// technical grid.
func buildSummary(in *model.SummaryInput) Box {
	rec := in.Record

	children := []Box{
		&headerBand{
			theme: in.Theme,
			date:  in.DisplayTime.Format("02/01/2006"),
		},
		&summaryRow{
			title:      rec.Title,
			reporter:   fmt.Sprintf("%s (%s)", in.UserName, in.UserRole),
			date:       in.DisplayTime.Format(displayTimeLayout),
			client:     orElse(rec.ClientName, "Não especificado"),
			accent:     in.Theme.Accent,
			assessment: in.Assessment,
		},
		&section{
			title:     descriptionTitle(rec.Category),
			body:      rec.Description,
			minHeight: descriptionMinHeight(rec.Description),
		},
	}

	if rec.Category == types.CategoryImprovement && rec.Improvement != nil {
		imp := rec.Improvement
		children = append(children,
			&section{
				title:     "PROCESSO ATUAL",
				body:      orElse(imp.CurrentProcess, "Não especificado"),
				minHeight: descriptionMinHeight(imp.CurrentProcess),
			},
			&section{
				title:     "PROCESSO FUTURO",
				body:      orElse(imp.FutureProcess, "Não especificado"),
				minHeight: descriptionMinHeight(imp.FutureProcess),
			},
			&section{
				title:     "IMPACTO OPERACIONAL",
				body:      orElse(imp.OperationalImpact, "Não especificado"),
				minHeight: descriptionMinHeight(imp.OperationalImpact),
			},
		)
	}

	affects := "Não"
	if rec.AffectsOthers {
		affects = "Sim"
	}

	children = append(children, &techGrid{
		title: "INFORMAÇÕES TÉCNICAS",
		fields: []gridField{
			{label: "Módulo ERP", value: orElse(rec.ERPModule, "Não especificado")},
			{label: "Versão", value: orElse(rec.ModuleVersion, "Não especificada")},
			{label: "Tela", value: orElse(rec.ScreenName, "Não especificada")},
			{label: "Código/Programa", value: orElse(rec.ProgramCodes, "Não especificado")},
			{label: "Sistema Operacional", value: orElse(rec.OperatingSystem, "Não especificado")},
			{label: "Afeta outros usuários", value: affects},
			{label: "Banco de Dados", value: orElse(rec.DatabaseID, "Não especificado"), span: true},
		},
	})

	return &vstack{padding: 16, gap: 20, children: children}
}

func descriptionTitle(cat types.Category) string {
	if cat == types.CategoryImprovement {
		return "DESCRIÇÃO DA MELHORIA"
	}
	return "DESCRIÇÃO DO PROBLEMA"
}
