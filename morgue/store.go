// Package morgue keeps a SQLite ledger of finished runs
// Nothing here is ever loaded back into a simulation
package morgue

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS runs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	seed       INTEGER NOT NULL,
	depth      INTEGER NOT NULL,
	outcome    TEXT    NOT NULL,
	turns      INTEGER NOT NULL,
	ended_at   INTEGER NOT NULL
)`

// Run is one ledger row
type Run struct {
	Seed    int64
	Depth   int
	Outcome string
	Turns   int
	EndedAt time.Time
}

// Store persists runs in SQLite
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger at path
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("morgue path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database handle
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends one finished run
func (s *Store) Record(ctx context.Context, r Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.Outcome == "" {
		return fmt.Errorf("outcome is required")
	}
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (seed, depth, outcome, turns, ended_at) VALUES (?, ?, ?, ?, ?)`,
		r.Seed, r.Depth, r.Outcome, r.Turns, r.EndedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT seed, depth, outcome, turns, ended_at FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var ended int64
		if err := rows.Scan(&r.Seed, &r.Depth, &r.Outcome, &r.Turns, &ended); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.EndedAt = time.UnixMilli(ended).UTC()
		out = append(out, r)
	}
	return out, rows.Err()
}

// Deepest returns the greatest depth recorded, zero for an empty ledger
func (s *Store) Deepest(ctx context.Context) (int, error) {
	var depth sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(depth) FROM runs`).Scan(&depth); err != nil {
		return 0, fmt.Errorf("query depth: %w", err)
	}
	return int(depth.Int64), nil
}
