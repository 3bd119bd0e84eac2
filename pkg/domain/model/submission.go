package model

import (
	"time"

	"github.com/colet-sistemas/solicita/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Submission carries the raw, string-typed fields exactly as the intake
// form posts them. Converting to a RequestRecord is where fail-soft rating
// parsing happens; everything else was already validated by the form.
type Submission struct {
	User        types.UserID   `yaml:"user" json:"user"`
	Category    types.Category `yaml:"category" json:"category"`
	Title       string         `yaml:"title" json:"title"`
	Description string         `yaml:"description" json:"description"`
	OccurredAt  string         `yaml:"occurredAt" json:"occurredAt"`

	Severity string `yaml:"severity" json:"severity"`
	Urgency  string `yaml:"urgency" json:"urgency"`
	Trend    string `yaml:"trend" json:"trend"`

	AffectsOthers string `yaml:"affectsOthers" json:"affectsOthers"`

	ClientName      string `yaml:"client" json:"client"`
	DatabaseID      string `yaml:"database" json:"database"`
	ERPModule       string `yaml:"erpModule" json:"erpModule"`
	ModuleVersion   string `yaml:"moduleVersion" json:"moduleVersion"`
	ProgramCodes    string `yaml:"programCodes" json:"programCodes"`
	ScreenName      string `yaml:"screenName" json:"screenName"`
	OperatingSystem string `yaml:"operatingSystem" json:"operatingSystem"`

	CurrentProcess    string `yaml:"currentProcess" json:"currentProcess"`
	FutureProcess     string `yaml:"futureProcess" json:"futureProcess"`
	OperationalImpact string `yaml:"operationalImpact" json:"operationalImpact"`

	Attachments []Attachment `yaml:"-" json:"-"`
}

// Timestamp layouts accepted from the form and from request files
var occurredAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Record converts the submission into a validated RequestRecord
func (s *Submission) Record() (*RequestRecord, error) {
	occurredAt, err := s.parseOccurredAt()
	if err != nil {
		return nil, err
	}

	rec := &RequestRecord{
		Title:           s.Title,
		Description:     s.Description,
		Category:        s.Category,
		Severity:        ParseRating(s.Severity),
		Urgency:         ParseRating(s.Urgency),
		Trend:           ParseRating(s.Trend),
		OccurredAt:      occurredAt,
		AffectsOthers:   s.AffectsOthers == "yes",
		ClientName:      s.ClientName,
		DatabaseID:      s.DatabaseID,
		ERPModule:       s.ERPModule,
		ModuleVersion:   s.ModuleVersion,
		ProgramCodes:    s.ProgramCodes,
		ScreenName:      s.ScreenName,
		OperatingSystem: s.OperatingSystem,
		Attachments:     s.Attachments,
	}

	if s.Category == types.CategoryImprovement {
		rec.Improvement = &ImprovementFields{
			CurrentProcess:    s.CurrentProcess,
			FutureProcess:     s.FutureProcess,
			OperationalImpact: s.OperationalImpact,
		}
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Submission) parseOccurredAt() (time.Time, error) {
	for _, layout := range occurredAtLayouts {
		if t, err := time.Parse(layout, s.OccurredAt); err == nil {
			return t, nil
		}
	}
	return time.Time{}, goerr.Wrap(ErrInvalidRecord, "unparseable occurrence date",
		goerr.V("occurredAt", s.OccurredAt))
}
