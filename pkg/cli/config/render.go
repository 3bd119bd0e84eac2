package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Render holds document rendering configuration
type Render struct {
	DisplayOffset string
}

// Flags returns CLI flags for Render configuration
func (r *Render) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "display-utc-offset",
			Usage:       "UTC offset (±HH:MM) applied to incident timestamps before formatting",
			Category:    "Rendering",
			Value:       "-03:00",
			Sources:     cli.EnvVars("SOLICITA_DISPLAY_UTC_OFFSET"),
			Destination: &r.DisplayOffset,
		},
	}
}

// Offset parses the configured display offset into a duration
func (r *Render) Offset() (time.Duration, error) {
	var sign rune
	var hours, minutes int
	if _, err := fmt.Sscanf(r.DisplayOffset, "%c%02d:%02d", &sign, &hours, &minutes); err != nil {
		return 0, goerr.Wrap(err, "offset must be ±HH:MM",
			goerr.V("offset", r.DisplayOffset))
	}

	d := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	switch sign {
	case '-':
		return -d, nil
	case '+':
		return d, nil
	}
	return 0, goerr.New("offset must start with + or -",
		goerr.V("offset", r.DisplayOffset))
}

// LogValue returns structured log value
func (r Render) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("displayOffset", r.DisplayOffset),
	)
}
