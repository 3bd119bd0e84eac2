package cli

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/colet-sistemas/solicita/pkg/cli/config"
	"github.com/colet-sistemas/solicita/pkg/domain/model"
	"github.com/colet-sistemas/solicita/pkg/service/layout"
	"github.com/colet-sistemas/solicita/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// requestFile is the on-disk shape of a solicitation: the form fields
// plus attachment paths resolved relative to the file itself
type requestFile struct {
	model.Submission `yaml:",inline"`
	Attachments      []string `yaml:"attachments"`
}

func cmdGenerate() *cli.Command {
	var (
		catalogCfg config.Catalog
		renderCfg  config.Render
		input      string
		output     string
	)

	flags := joinFlags(
		catalogCfg.Flags(),
		renderCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "Request YAML file",
				Required:    true,
				Destination: &input,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output directory for the generated PDF",
				Value:       ".",
				Destination: &output,
			},
		},
	)

	return &cli.Command{
		Name:  "generate",
		Usage: "Compose a solicitation PDF from a request file",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			catalog, err := catalogCfg.Configure()
			if err != nil {
				return err
			}
			offset, err := renderCfg.Offset()
			if err != nil {
				return err
			}

			sub, err := loadRequestFile(input)
			if err != nil {
				return err
			}

			renderer, err := layout.NewRenderer()
			if err != nil {
				return err
			}

			composeUC := usecase.NewCompose(renderer, usecase.WithDisplayOffset(offset))
			intakeUC := usecase.NewIntake(catalog, composeUC)

			artifact, err := intakeUC.Submit(ctx, sub)
			if err != nil {
				return err
			}

			path := filepath.Join(output, artifact.Filename)
			if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
				return goerr.Wrap(err, "failed to write artifact",
					goerr.V("path", path))
			}

			logger.Info("artifact written",
				"path", path,
				"pages", artifact.PageCount,
			)
			return nil
		},
	}
}

// loadRequestFile parses the request YAML and pulls in its attachments
func loadRequestFile(path string) (*model.Submission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read request file",
			goerr.V("path", path))
	}

	var req requestFile
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, goerr.Wrap(err, "failed to parse request YAML",
			goerr.V("path", path))
	}

	baseDir := filepath.Dir(path)
	for _, attPath := range req.Attachments {
		if !filepath.IsAbs(attPath) {
			attPath = filepath.Join(baseDir, attPath)
		}
		att, err := loadAttachment(attPath)
		if err != nil {
			return nil, err
		}
		req.Submission.Attachments = append(req.Submission.Attachments, att)
	}

	return &req.Submission, nil
}

func loadAttachment(path string) (model.Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Attachment{}, goerr.Wrap(err, "failed to read attachment",
			goerr.V("path", path))
	}

	return model.Attachment{
		Filename: filepath.Base(path),
		MimeType: http.DetectContentType(data),
		Size:     int64(len(data)),
		Data:     data,
	}, nil
}
