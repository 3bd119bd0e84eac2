package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/colet-sistemas/solicita/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdScore() *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:      "score",
		Usage:     "Compute the GUT criticality assessment for three ratings",
		ArgsUsage: "<severity> <urgency> <trend>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "Emit the assessment as JSON",
				Destination: &asJSON,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			args := c.Args()
			if args.Len() != 3 {
				return goerr.New("expected three ratings (severity urgency trend)",
					goerr.V("got", args.Len()))
			}

			a := model.NewAssessment(
				model.ParseRating(args.Get(0)),
				model.ParseRating(args.Get(1)),
				model.ParseRating(args.Get(2)),
			)

			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(map[string]any{
					"severity": a.Severity,
					"urgency":  a.Urgency,
					"trend":    a.Trend,
					"score":    a.Score,
					"band":     a.Band.String(),
					"label":    a.Band.Label(),
					"color":    a.Band.Color().Hex(),
				})
			}

			fmt.Printf("G:%d U:%d T:%d  score=%d  %s (%s)  %s\n",
				a.Severity, a.Urgency, a.Trend,
				a.Score, a.Band.String(), a.Band.Label(), a.Band.Color().Hex())
			return nil
		},
	}
}
