package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	apphttp "pft/internal/http"
	applog "pft/internal/log"
	"pft/internal/seed"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.cfg.SeedDemo {
		now := time.Now()
		if err := seed.DemoIfEmpty(ctx, a.directory, a.ledger, now.Year(), int(now.Month())); err != nil {
			return err
		}
	}

	srv := apphttp.NewServer(":"+a.cfg.Port, a.directory, a.sessions, a.ledger)

	logger := a.logger.WithComponent(applog.ComponentHTTP)
	logger.Info("Starting server", "port", a.cfg.Port, "backend", a.cfg.DataBackend)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		return err
	}
	logger.Info("Server stopped gracefully")
	return nil
}
