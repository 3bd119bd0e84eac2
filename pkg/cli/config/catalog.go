package config

import (
	"log/slog"
	"os"

	"github.com/colet-sistemas/solicita/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Catalog holds the static-table configuration source
type Catalog struct {
	Path string
}

// Flags returns CLI flags for Catalog configuration
func (c *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog",
			Usage:       "Catalog YAML file (users, clients, modules); built-in tables when omitted",
			Category:    "Catalog",
			Sources:     cli.EnvVars("SOLICITA_CATALOG"),
			Destination: &c.Path,
		},
	}
}

// Configure loads the catalog: the built-in tables, or the YAML file when
// a path is given
func (c *Catalog) Configure() (*model.Catalog, error) {
	if c.Path == "" {
		return model.DefaultCatalog(), nil
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "catalog file not found",
				goerr.V("path", c.Path))
		}
		return nil, goerr.Wrap(err, "failed to read catalog file",
			goerr.V("path", c.Path))
	}

	var catalog model.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, goerr.Wrap(err, "failed to parse catalog YAML",
			goerr.V("path", c.Path))
	}

	if err := catalog.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid catalog",
			goerr.V("path", c.Path))
	}

	return &catalog, nil
}

// LogValue returns structured log value
func (c Catalog) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", c.Path),
	)
}
