// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists an audit log of tool calls in a SQLite
// database. The registry clients themselves hold no state; the log
// lives entirely outside them and records what was asked, whether it
// succeeded, and how long it took.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one recorded tool call.
type Entry struct {
	ID       int64
	Tool     string
	Params   map[string]any
	OK       bool
	Error    string
	Duration time.Duration
	CalledAt time.Time
}

// Store manages the call log SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the call log database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
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
		`CREATE TABLE IF NOT EXISTS calls (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tool TEXT NOT NULL,
			params TEXT,
			ok INTEGER NOT NULL,
			error TEXT,
			duration_ms INTEGER NOT NULL,
			called_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_calls_tool ON calls(tool)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends one call to the log. The entry's CalledAt defaults to
// now when unset.
func (s *Store) Record(ctx context.Context, e Entry) error {
	calledAt := e.CalledAt
	if calledAt.IsZero() {
		calledAt = time.Now()
	}

	params := "{}"
	if len(e.Params) > 0 {
		data, err := json.Marshal(e.Params)
		if err != nil {
			return fmt.Errorf("encoding params: %w", err)
		}
		params = string(data)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO calls (tool, params, ok, error, duration_ms, called_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Tool, params, e.OK, e.Error, e.Duration.Milliseconds(),
		calledAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording call: %w", err)
	}
	return nil
}

// Recent returns the most recent calls, newest first. A non-positive
// limit defaults to 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, tool, params, ok, error, duration_ms, called_at
		 FROM calls ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying call log: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			params     string
			durationMS int64
			calledAt   string
		)
		if err := rows.Scan(&e.ID, &e.Tool, &params, &e.OK, &e.Error, &durationMS, &calledAt); err != nil {
			return nil, fmt.Errorf("scanning call log row: %w", err)
		}
		if params != "" && params != "{}" {
			if err := json.Unmarshal([]byte(params), &e.Params); err != nil {
				return nil, fmt.Errorf("decoding params for call %d: %w", e.ID, err)
			}
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		if t, err := time.Parse(time.RFC3339Nano, calledAt); err == nil {
			e.CalledAt = t
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading call log rows: %w", err)
	}
	return entries, nil
}
