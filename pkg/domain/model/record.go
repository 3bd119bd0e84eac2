package model

import (
	"time"

	"github.com/colet-sistemas/solicita/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ImprovementFields holds the sections that exist only for improvement
// proposals
type ImprovementFields struct {
	CurrentProcess    string
	FutureProcess     string
	OperationalImpact string
}

// RequestRecord is a fully validated intake submission, ready for
// document composition. Optional fields left empty render as a
// "not specified" placeholder; they never fail validation.
type RequestRecord struct {
	Title       string
	Description string
	Category    types.Category

	Severity int
	Urgency  int
	Trend    int

	OccurredAt    time.Time
	AffectsOthers bool

	ClientName      string
	DatabaseID      string
	ERPModule       string
	ModuleVersion   string
	ProgramCodes    string
	ScreenName      string
	OperatingSystem string

	Improvement *ImprovementFields

	Attachments []Attachment
}

// Validate checks the record invariants. Ratings are not range-checked
// here; the scorer substitutes out-of-range values on its own.
func (r *RequestRecord) Validate() error {
	if r.Title == "" {
		return goerr.Wrap(ErrInvalidRecord, "title is required")
	}
	if !r.Category.IsValid() {
		return goerr.Wrap(ErrUnknownCategory, "unsupported category",
			goerr.V("category", r.Category))
	}
	if r.OccurredAt.IsZero() {
		return goerr.Wrap(ErrInvalidRecord, "occurrence date is required")
	}

	// Improvement fields are present iff the category is improvement
	if r.Category == types.CategoryImprovement && r.Improvement == nil {
		return goerr.Wrap(ErrInvalidRecord, "improvement fields are required for improvement requests")
	}
	if r.Category != types.CategoryImprovement && r.Improvement != nil {
		return goerr.Wrap(ErrInvalidRecord, "improvement fields are only valid for improvement requests",
			goerr.V("category", r.Category))
	}

	return nil
}

// Assess computes the criticality assessment for this record
func (r *RequestRecord) Assess() Assessment {
	return NewAssessment(r.Severity, r.Urgency, r.Trend)
}

// SummaryInput bundles everything the layout renderer needs to draw the
// summary block of one document
type SummaryInput struct {
	Record      *RequestRecord
	UserName    string
	UserRole    string
	Theme       Theme
	Assessment  Assessment
	DisplayTime time.Time
}

// Artifact is the generated downloadable document. It is handed to the
// caller and discarded; the core keeps no document state.
type Artifact struct {
	Filename  string
	PageCount int
	Data      []byte
}
