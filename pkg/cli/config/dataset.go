package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/cloudbridge-lab/minwon/pkg/service/guidance"
)

// Dataset loads an optional TOML file layered over the bundled guidance
// dataset.
type Dataset struct {
	path string
}

func (x *Dataset) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dataset",
			Usage:       "Path to a TOML dataset override file",
			Category:    "Dataset",
			Sources:     cli.EnvVars("MINWON_DATASET"),
			Destination: &x.path,
		},
	}
}

// Configure parses and validates the override file. A missing flag yields a
// nil override.
func (x *Dataset) Configure() (*guidance.Override, error) {
	if x.path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(x.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read dataset file", goerr.V("path", x.path))
	}

	var ov guidance.Override
	if err := toml.Unmarshal(data, &ov); err != nil {
		return nil, goerr.Wrap(err, "failed to parse dataset file", goerr.V("path", x.path))
	}
	if err := ov.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid dataset file", goerr.V("path", x.path))
	}
	return &ov, nil
}
