// Package sqlite persists one row per completed sync run, so downstream
// tooling can see when the catalog last changed size and how aggressive the
// denylist has been over time.
package sqlite

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/calyptra/gamesync/internal/pipeline"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Store is the sqlite-backed run-history store.
type Store struct {
	db *sqlx.DB
}

var _ pipeline.RunStore = (*Store)(nil)

// New opens (or creates) the sqlite database at path and applies all pending
// migrations.
func New(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", fmt.Sprintf("%s?_journal=WAL&_timeout=5000", path))
	if err != nil {
		return nil, fmt.Errorf("connecting to db: %w", err)
	}

	db.SetMaxOpenConns(1)

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting dialect for migrations: %w", err)
	}

	if err := goose.Up(db.DB, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close terminates the database connection.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing store: %w", err)
	}
	return nil
}

// Run is a single sync run as stored in the database.
type Run struct {
	ID         uuid.UUID `db:"id"`
	RanAt      time.Time `db:"ran_at"`
	Total      int       `db:"total"`
	Filtered   int       `db:"filtered"`
	Skipped    int       `db:"skipped"`
	Written    int       `db:"written"`
	DurationNS int64     `db:"duration_ns"`
}

// RecordRun saves the report of a completed run.
func (s *Store) RecordRun(ctx context.Context, report pipeline.Report) error {
	run := &Run{
		ID:         uuid.New(),
		RanAt:      time.Now().UTC(),
		Total:      report.Total,
		Filtered:   report.Filtered,
		Skipped:    report.Skipped,
		Written:    report.Written,
		DurationNS: report.Duration.Nanoseconds(),
	}

	query := `INSERT INTO runs (id, ran_at, total, filtered, skipped, written, duration_ns)
	          VALUES (:id, :ran_at, :total, :filtered, :skipped, :written, :duration_ns)`

	if _, err := s.db.NamedExecContext(ctx, query, run); err != nil {
		return fmt.Errorf("inserting run %s: %w", run.ID, err)
	}
	return nil
}

// Runs retrieves run history, most recent first.
func (s *Store) Runs(ctx context.Context) ([]*Run, error) {
	var runs []*Run
	query := `SELECT * FROM runs ORDER BY ran_at DESC`

	if err := s.db.SelectContext(ctx, &runs, query); err != nil {
		return nil, fmt.Errorf("fetching runs: %w", err)
	}
	return runs, nil
}
