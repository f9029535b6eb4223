package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/cloudbridge-lab/minwon/pkg/domain/interfaces"
	"github.com/cloudbridge-lab/minwon/pkg/service/backend"
)

// Backend selects between the remote HTTP backend and the in-memory one.
type Backend struct {
	baseURL string
	offline bool
}

func (x *Backend) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "backend-url",
			Usage:       "Base URL of the civil-petition backend",
			Category:    "Backend",
			Value:       "http://127.0.0.1:8081",
			Sources:     cli.EnvVars("MINWON_BACKEND_URL"),
			Destination: &x.baseURL,
		},
		&cli.BoolFlag{
			Name:        "offline",
			Usage:       "Use the bundled in-memory backend instead of the remote one",
			Category:    "Backend",
			Sources:     cli.EnvVars("MINWON_OFFLINE"),
			Destination: &x.offline,
		},
	}
}

// Configure builds the backend selected by the flags. The memory options
// seed the in-memory backend and are ignored in remote mode.
func (x *Backend) Configure(memOpts ...backend.MemoryOption) (interfaces.Backend, error) {
	if x.offline {
		return backend.NewMemory(memOpts...), nil
	}
	return backend.New(x.baseURL)
}

func (x Backend) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("baseURL", x.baseURL),
		slog.Bool("offline", x.offline),
	)
}
