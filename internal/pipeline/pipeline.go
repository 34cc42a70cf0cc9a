// Package pipeline orchestrates a single sync run: fetch the denylist (when
// filtering is enabled), fetch the catalog, filter and project each record,
// and commit the result to the sink. Every stage sits behind a small port so
// tests can substitute deterministic fakes for the network and filesystem.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/calyptra/gamesync/internal/catalog"
	"github.com/calyptra/gamesync/internal/denylist"
)

// CatalogSource fetches the detectable-applications catalog.
type CatalogSource interface {
	Detectable(ctx context.Context) ([]catalog.Application, error)
}

// DenylistSource fetches the offensive-term list.
type DenylistSource interface {
	Fetch(ctx context.Context) (denylist.Denylist, error)
}

// Sink commits the projected catalog to storage.
type Sink interface {
	Write(games []catalog.Game) error
}

// RunStore persists per-run history. Recording is best-effort; a store
// failure never fails a run that already produced output.
type RunStore interface {
	RecordRun(ctx context.Context, report Report) error
}

// Report summarizes a completed sync run.
type Report struct {
	// Total is the number of records in the fetched catalog.
	Total int
	// Filtered counts records excluded by a denylist match.
	Filtered int
	// Skipped counts records with no win32 executable, plus the defensive
	// no-selectable-executable case.
	Skipped int
	// Written is the number of projected games committed to the sink.
	Written  int
	Duration time.Duration
}

// Runner wires the stages of one sync run. Denylist may be nil to disable
// filtering entirely; Store may be nil to disable run history.
type Runner struct {
	Catalog  CatalogSource
	Denylist DenylistSource
	Sink     Sink
	Store    RunStore
	Logger   *slog.Logger
}

var tracer = otel.Tracer("github.com/calyptra/gamesync/internal/pipeline")

// Run executes the pipeline once. Any fetch, decode, or write failure aborts
// the run before (or instead of) touching the output file; the only
// record-level recovery is the defensive skip inside Project.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	start := time.Now()
	ctx, span := tracer.Start(ctx, "gamesync.run")
	defer span.End()

	var terms denylist.Denylist
	if r.Denylist != nil {
		fetchCtx, fetchSpan := tracer.Start(ctx, "gamesync.fetch_denylist")
		var err error
		terms, err = r.Denylist.Fetch(fetchCtx)
		fetchSpan.End()
		if err != nil {
			return Report{}, fmt.Errorf("denylist stage: %w", err)
		}
		logger.Info("denylist loaded", slog.Int("terms", len(terms)))
	}

	fetchCtx, fetchSpan := tracer.Start(ctx, "gamesync.fetch_catalog")
	apps, err := r.Catalog.Detectable(fetchCtx)
	fetchSpan.End()
	if err != nil {
		return Report{}, fmt.Errorf("catalog stage: %w", err)
	}

	games, report := Project(apps, terms, logger)

	_, writeSpan := tracer.Start(ctx, "gamesync.write")
	err = r.Sink.Write(games)
	writeSpan.End()
	if err != nil {
		return Report{}, fmt.Errorf("sink stage: %w", err)
	}

	report.Duration = time.Since(start)
	span.SetAttributes(
		attribute.Int("gamesync.total", report.Total),
		attribute.Int("gamesync.filtered", report.Filtered),
		attribute.Int("gamesync.written", report.Written),
	)

	if r.Denylist != nil {
		logger.Info("filtered games via denylist", slog.Int("filtered", report.Filtered))
	}

	if r.Store != nil {
		if err := r.Store.RecordRun(ctx, report); err != nil {
			logger.Error("failed to record run history", slog.String("error", err.Error()))
		}
	}

	return report, nil
}

// Project applies the denylist and executable-selection rules to the catalog
// in order, producing at most one Game per Application:
//
//  1. Records whose lowercased name contains any denylist term are excluded
//     and counted.
//  2. Records with no win32 executable are skipped silently.
//  3. The first win32 non-launcher executable is selected, falling back to
//     the first win32 executable of any kind. A record that passes step 2 but
//     yields no selection is contradictory; it is logged and skipped rather
//     than failing the run.
//
// Output order equals input order restricted to emitted records.
func Project(apps []catalog.Application, terms denylist.Denylist, logger *slog.Logger) ([]catalog.Game, Report) {
	if logger == nil {
		logger = slog.Default()
	}

	games := make([]catalog.Game, 0, len(apps))
	report := Report{Total: len(apps)}

	for _, app := range apps {
		if terms.Matches(app.Name) {
			report.Filtered++
			continue
		}

		if !app.HasWindowsExecutable() {
			report.Skipped++
			continue
		}

		exe, ok := app.WindowsExecutable()
		if !ok {
			// Unreachable while HasWindowsExecutable and WindowsExecutable
			// agree on what counts as win32; kept so a future divergence
			// degrades to a skipped record instead of a bad projection.
			logger.Warn("no selectable executable for game", slog.String("name", app.Name))
			report.Skipped++
			continue
		}

		games = append(games, catalog.Game{Name: app.Name, Exe: exe.Name})
		report.Written++
	}

	return games, report
}
