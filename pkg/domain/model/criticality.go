package model

import "strconv"

// Band represents a named priority range derived from the criticality score
type Band int

const (
	BandLow Band = iota
	BandModerate
	BandMedium
	BandHigh
	BandCritical
)

// String returns the band name
func (b Band) String() string {
	switch b {
	case BandLow:
		return "Low"
	case BandModerate:
		return "Moderate"
	case BandMedium:
		return "Medium"
	case BandHigh:
		return "High"
	case BandCritical:
		return "Critical"
	}
	return "Unknown"
}

// Label returns the pt-BR display label printed in the document
func (b Band) Label() string {
	switch b {
	case BandLow:
		return "Baixa"
	case BandModerate:
		return "Moderada"
	case BandMedium:
		return "Média"
	case BandHigh:
		return "Alta"
	case BandCritical:
		return "Crítica"
	}
	return "Desconhecida"
}

// Color returns the badge color associated with the band
func (b Band) Color() Color {
	switch b {
	case BandLow:
		return Color{0x34, 0x98, 0xdb}
	case BandModerate:
		return Color{0x2e, 0xcc, 0x71}
	case BandMedium:
		return Color{0xf1, 0xc4, 0x0f}
	case BandHigh:
		return Color{0xe6, 0x7e, 0x22}
	}
	return Color{0xe7, 0x4c, 0x3c}
}

// BandForScore maps a criticality score to its band. Upper bounds are
// inclusive: exactly 25 is Low, exactly 26 is Moderate, and so on.
func BandForScore(score int) Band {
	switch {
	case score <= 25:
		return BandLow
	case score <= 50:
		return BandModerate
	case score <= 75:
		return BandMedium
	case score <= 100:
		return BandHigh
	}
	return BandCritical
}

// Assessment is the GUT matrix result (Gravidade, Urgência, Tendência).
// Computed fresh per composition, never stored.
type Assessment struct {
	Severity int
	Urgency  int
	Trend    int
	Score    int
	Band     Band
}

// NewAssessment computes the criticality score from three ordinal ratings.
// Out-of-range ratings are substituted with the minimum valid value so a
// malformed input can never break the render pipeline.
func NewAssessment(severity, urgency, trend int) Assessment {
	s := normalizeRating(severity)
	u := normalizeRating(urgency)
	t := normalizeRating(trend)
	score := s * u * t

	return Assessment{
		Severity: s,
		Urgency:  u,
		Trend:    t,
		Score:    score,
		Band:     BandForScore(score),
	}
}

// ParseRating converts a form-submitted rating string to an integer rating.
// Non-numeric or out-of-range values fall back to 1; intake-form validation
// is expected to have rejected them already.
func ParseRating(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return normalizeRating(v)
}

func normalizeRating(v int) int {
	if v < 1 || v > 5 {
		return 1
	}
	return v
}
