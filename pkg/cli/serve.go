package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/cloudbridge-lab/minwon/pkg/cli/config"
	httpctrl "github.com/cloudbridge-lab/minwon/pkg/controller/http"
	"github.com/cloudbridge-lab/minwon/pkg/service/backend"
	"github.com/cloudbridge-lab/minwon/pkg/service/casestore"
	"github.com/cloudbridge-lab/minwon/pkg/service/checklist"
	"github.com/cloudbridge-lab/minwon/pkg/service/guidance"
	"github.com/cloudbridge-lab/minwon/pkg/service/offices"
	"github.com/cloudbridge-lab/minwon/pkg/usecase"
	"github.com/cloudbridge-lab/minwon/pkg/utils/async"
	"github.com/cloudbridge-lab/minwon/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var stateDir string
	var sentryDSN string
	var backendCfg config.Backend
	var datasetCfg config.Dataset

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("MINWON_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "state-dir",
			Usage:       "Directory for locally persisted state (document checklists)",
			Sources:     cli.EnvVars("MINWON_STATE_DIR"),
			Destination: &stateDir,
		},
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for error reporting",
			Category:    "Monitoring",
			Sources:     cli.EnvVars("MINWON_SENTRY_DSN"),
			Destination: &sentryDSN,
		},
	}
	flags = append(flags, backendCfg.Flags()...)
	flags = append(flags, datasetCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the local guidance gateway",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if sentryDSN != "" {
				if err := sentry.Init(sentry.ClientOptions{Dsn: sentryDSN}); err != nil {
					return goerr.Wrap(err, "failed to initialize sentry")
				}
				defer sentry.Flush(2 * time.Second)
				logging.Default().Info("Sentry error reporting enabled")
			}

			override, err := datasetCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load dataset override")
			}
			guidanceSvc := guidance.New(guidance.WithOverride(override))

			be, err := backendCfg.Configure(
				backend.WithPetitions(guidanceSvc.Petitions()),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to configure backend")
			}
			logging.Default().Info("Backend configured", "backend", backendCfg)

			if stateDir == "" {
				cacheDir, err := os.UserCacheDir()
				if err != nil {
					return goerr.Wrap(err, "failed to resolve state directory, set --state-dir")
				}
				stateDir = filepath.Join(cacheDir, "minwon")
			}
			checklists, err := checklist.New(stateDir)
			if err != nil {
				return goerr.Wrap(err, "failed to open checklist store")
			}

			resolver := usecase.NewSequenceResolver(guidanceSvc)
			cases := casestore.New(be, guidanceSvc)
			officeCache := offices.NewCache(be)

			// Warm the office cache; failure is retried on first request
			async.Dispatch(ctx, func(ctx context.Context) error {
				if _, err := officeCache.List(ctx); err != nil {
					return goerr.Wrap(err, "office cache warm-up failed")
				}
				return nil
			})

			handler := httpctrl.New(httpctrl.Deps{
				Guidance:   guidanceSvc,
				Resolver:   resolver,
				Cases:      cases,
				Checklists: checklists,
				Offices:    officeCache,
				Backend:    be,
			})

			server := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
