package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/colet-sistemas/solicita/pkg/cli/config"
	controller "github.com/colet-sistemas/solicita/pkg/controller/http"
	"github.com/colet-sistemas/solicita/pkg/service/layout"
	"github.com/colet-sistemas/solicita/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		catalogCfg config.Catalog
		renderCfg  config.Render
	)

	flags := joinFlags(
		serverCfg.Flags(),
		catalogCfg.Flags(),
		renderCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start the local intake portal",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting solicita portal",
				slog.String("addr", serverCfg.Addr),
				slog.Any("catalog", catalogCfg),
				slog.Any("render", renderCfg),
			)

			catalog, err := catalogCfg.Configure()
			if err != nil {
				return err
			}
			offset, err := renderCfg.Offset()
			if err != nil {
				return err
			}

			renderer, err := layout.NewRenderer()
			if err != nil {
				return err
			}

			composeUC := usecase.NewCompose(renderer, usecase.WithDisplayOffset(offset))
			intakeUC := usecase.NewIntake(catalog, composeUC)
			server := controller.NewServer(ctx, serverCfg.Addr, intakeUC)

			errCh := make(chan error, 1)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- goerr.Wrap(err, "server failed")
				}
			}()

			sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			select {
			case err := <-errCh:
				return err
			case <-sigCtx.Done():
				logger.Info("Shutting down")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "graceful shutdown failed")
			}

			return nil
		},
	}
}
