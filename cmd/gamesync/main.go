package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/calyptra/gamesync/internal/catalog"
	"github.com/calyptra/gamesync/internal/config"
	"github.com/calyptra/gamesync/internal/denylist"
	"github.com/calyptra/gamesync/internal/pipeline"
	"github.com/calyptra/gamesync/internal/sink"
	"github.com/calyptra/gamesync/internal/storage/sqlite"
	"github.com/calyptra/gamesync/internal/telemetry"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize OpenTelemetry
	shutdown, err := telemetry.InitTracer("gamesync", logger)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown tracer", slog.String("error", err.Error()))
		}
	}()

	// Both fetch clients share one instrumented transport.
	httpClient := &http.Client{Transport: telemetry.Transport(nil)}

	runner := &pipeline.Runner{
		Catalog: catalog.NewClient(
			catalog.WithURL(cfg.Catalog.URL),
			catalog.WithHTTPClient(httpClient),
		),
		Sink:   &sink.File{Path: cfg.Output.Path},
		Logger: logger,
	}

	if cfg.Denylist.Enabled {
		runner.Denylist = denylist.NewClient(
			denylist.WithURL(cfg.Denylist.URL),
			denylist.WithHTTPClient(httpClient),
		)
	}

	if cfg.History.Path != "" {
		store, err := sqlite.New(cfg.History.Path)
		if err != nil {
			log.Fatalf("Failed to open run history store: %v", err)
		}
		defer store.Close()
		runner.Store = store
	}

	report, err := runner.Run(context.Background())
	if err != nil {
		logger.Error("sync failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("sync complete",
		slog.Int("total", report.Total),
		slog.Int("written", report.Written),
		slog.Int("filtered", report.Filtered),
		slog.Int("skipped", report.Skipped),
		slog.Duration("duration", report.Duration),
		slog.String("output", cfg.Output.Path),
	)
}
