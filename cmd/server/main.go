package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anonto42/inko/backend/internal/logging"
	"github.com/anonto42/inko/backend/internal/metrics"
	"github.com/anonto42/inko/backend/internal/router"
	"github.com/anonto42/inko/backend/pkg/config"
)

func main() {
	// Load configuration
	cfg := config.Load()
	slog.SetDefault(logging.New(os.Stdout, cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("INKO API stopped", "error", err)
		stop()
		os.Exit(1)
	}
}

// run serves the API and metrics until ctx is cancelled or a server fails.
// Every startup or serving failure is returned so main can exit non-zero.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when run returns

	m := metrics.New()

	// Create Echo instance with global middleware
	e := router.NewEcho(cfg, m)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db.Postgres, cfg, m, router.Options{}); err != nil {
		return fmt.Errorf("configure routes: %w", err)
	}

	metricsSrv := &http.Server{
		Addr:              ":" + cfg.MetricsPort,
		Handler:           m.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 2)
	go func() {
		slog.Info("metrics listening", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("metrics server: %w", err)
		}
	}()

	go func() {
		slog.Info("INKO API listening", "port", cfg.Port, "env", cfg.Env)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("http server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info("shutting down...")
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("metrics shutdown", "error", err)
	}
	return runErr
}
