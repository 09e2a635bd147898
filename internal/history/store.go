// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records conversion runs in a local SQLite database so past
// invocations can be listed, exported, and cleared from the CLI.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pdfpages/pkg/types"
)

// Run statuses.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Run is one recorded conversion invocation.
type Run struct {
	ID         int64     `json:"id" yaml:"id"`
	Source     string    `json:"source" yaml:"source"`
	DestDir    string    `json:"dest_dir" yaml:"dest_dir"`
	DPI        int       `json:"dpi" yaml:"dpi"`
	Format     string    `json:"format" yaml:"format"`
	Backend    string    `json:"backend" yaml:"backend"`
	Pages      int       `json:"pages" yaml:"pages"`
	Status     string    `json:"status" yaml:"status"`
	ErrorKind  string    `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
	Error      string    `json:"error,omitempty" yaml:"error,omitempty"`
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	DurationMS int64     `json:"duration_ms" yaml:"duration_ms"`
}

// NewRun builds a record for a finished conversion. A nil runErr marks the
// run ok; otherwise the record carries the error text and its kind.
func NewRun(req types.Request, pages int, started time.Time, runErr error) Run {
	run := Run{
		Source:     req.Source,
		DestDir:    req.DestDir,
		DPI:        req.DPI,
		Format:     req.Format,
		Backend:    string(req.Backend),
		Pages:      pages,
		Status:     StatusOK,
		StartedAt:  started.UTC(),
		DurationMS: time.Since(started).Milliseconds(),
	}
	if runErr != nil {
		run.Status = StatusFailed
		run.ErrorKind = string(types.KindOf(runErr))
		run.Error = runErr.Error()
	}
	return run
}

const dbFile = "history.db"

// DefaultPath returns the database location under the user's config
// directory, ~/.config/pdfpages/history.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "pdfpages", dbFile), nil
}

// Store manages the run history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			dest_dir TEXT NOT NULL,
			dpi INTEGER NOT NULL,
			format TEXT NOT NULL,
			backend TEXT NOT NULL,
			pages INTEGER NOT NULL,
			status TEXT NOT NULL,
			error_kind TEXT NOT NULL DEFAULT '',
			error TEXT NOT NULL DEFAULT '',
			started_at TEXT NOT NULL,
			duration_ms INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts a run and returns its assigned ID.
func (s *Store) Record(ctx context.Context, run Run) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (source, dest_dir, dpi, format, backend, pages, status, error_kind, error, started_at, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Source, run.DestDir, run.DPI, run.Format, run.Backend,
		run.Pages, run.Status, run.ErrorKind, run.Error,
		run.StartedAt.UTC().Format(time.RFC3339Nano), run.DurationMS,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}
	return id, nil
}

// List returns runs newest first. A limit of zero or less returns all runs.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, source, dest_dir, dpi, format, backend, pages, status, error_kind, error, started_at, duration_ms
		 FROM runs ORDER BY id DESC`

	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.db.QueryContext(ctx, query+` LIMIT ?`, limit)
	} else {
		rows, err = s.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run     Run
			started string
		)
		if err := rows.Scan(
			&run.ID, &run.Source, &run.DestDir, &run.DPI, &run.Format,
			&run.Backend, &run.Pages, &run.Status, &run.ErrorKind, &run.Error,
			&started, &run.DurationMS,
		); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		run.StartedAt, err = time.Parse(time.RFC3339Nano, started)
		if err != nil {
			return nil, fmt.Errorf("parsing run timestamp: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

// Clear removes all recorded runs and returns how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs`)
	if err != nil {
		return 0, fmt.Errorf("clearing runs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting cleared runs: %w", err)
	}
	return n, nil
}
