package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ZanzyTHEbar/ai-adoption-score/internal/config"
	"github.com/ZanzyTHEbar/ai-adoption-score/internal/monitoring"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "1.0.0"

// @title AI Adoption Score API
// @version 1.0
// @description Scores AI adoption survey answers and aggregates verified results.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := monitoring.NewLoggerWithWriter(os.Stdout, monitoring.ParseLevel(cfg.Log.Level))
	slog.SetDefault(logger.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.close()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           a.setupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Starting server", "addr", srv.Addr, "version", version, "questions", len(a.questions))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		a.results.Cache().WarmCache(gctx, a.results)
		a.results.Cache().AutoRefresh(gctx, a.results, cfg.Stats.RefreshInterval)
		return nil
	})

	g.Go(func() error {
		return a.privacy.RunCleanup(gctx, cfg.Storage.CleanupInterval)
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server forced to shutdown", "error", err)
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("Server exited")
	return nil
}
