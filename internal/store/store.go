// Package store keeps a history of complexity reports in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/algolab/complexity"
)

// timeLayout is fixed-width so started_at sorts chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrRunNotFound indicates no report with the requested ID is stored.
var ErrRunNotFound = errors.New("store: run not found")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id      TEXT PRIMARY KEY,
	started_at  TEXT NOT NULL,
	finished_at TEXT NOT NULL,
	size_count  INTEGER NOT NULL,
	fib_max     INTEGER NOT NULL,
	report      TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_started_at ON runs(started_at);
`

// Store is a SQLite-backed report history. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// RunSummary is one row of ListRuns.
type RunSummary struct {
	RunID      uuid.UUID
	StartedAt  time.Time
	FinishedAt time.Time
	SizeCount  int
	FibMax     int
}

// Open opens (creating if needed) the database at path and applies the
// schema. Use ":memory:" for a throwaway store.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// one connection keeps ":memory:" databases alive and serialises writers
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveReport inserts rep; saving the same RunID twice replaces the row.
func (s *Store) SaveReport(ctx context.Context, rep *complexity.Report) error {
	body, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("store: encode report: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO runs (run_id, started_at, finished_at, size_count, fib_max, report)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rep.RunID.String(),
		rep.StartedAt.UTC().Format(timeLayout),
		rep.FinishedAt.UTC().Format(timeLayout),
		len(rep.Search),
		rep.Config.FibMax,
		string(body),
	)
	if err != nil {
		return fmt.Errorf("store: insert %s: %w", rep.RunID, err)
	}

	return nil
}

// ListRuns returns up to limit summaries, newest first. limit <= 0 means all.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, started_at, finished_at, size_count, fib_max
		 FROM runs ORDER BY started_at DESC, run_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var (
			id, started, finished string
			sum                   RunSummary
		)
		if err := rows.Scan(&id, &started, &finished, &sum.SizeCount, &sum.FibMax); err != nil {
			return nil, fmt.Errorf("store: scan run: %w", err)
		}
		if sum.RunID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("store: run id %q: %w", id, err)
		}
		if sum.StartedAt, err = time.Parse(timeLayout, started); err != nil {
			return nil, fmt.Errorf("store: started_at of %s: %w", id, err)
		}
		if sum.FinishedAt, err = time.Parse(timeLayout, finished); err != nil {
			return nil, fmt.Errorf("store: finished_at of %s: %w", id, err)
		}
		out = append(out, sum)
	}

	return out, rows.Err()
}

// LoadReport returns the stored report for id.
func (s *Store) LoadReport(ctx context.Context, id uuid.UUID) (*complexity.Report, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT report FROM runs WHERE run_id = ?`, id.String()).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", id, err)
	}
	rep := &complexity.Report{}
	if err := json.Unmarshal([]byte(body), rep); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", id, err)
	}

	return rep, nil
}
