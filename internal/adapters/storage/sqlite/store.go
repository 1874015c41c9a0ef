// Package sqlite persists the application state in an embedded SQLite
// database. State is kept as a small key/value table with JSON values so
// that fields can be added without schema migrations.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jsamuelsen11/pio-home/internal/domain/state"
	"github.com/jsamuelsen11/pio-home/internal/ports"
)

// Name identifies the store in health results.
const Name = "state-db"

const schema = `
CREATE TABLE IF NOT EXISTS app_state (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`

const (
	keyRecentProjects = "recent_projects"
	keyProjectsDir    = "projects_dir"
	keyCoreCaller     = "core_caller"
)

// Compile-time interface checks.
var (
	_ ports.StateStore    = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store is a ports.StateStore backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists. Use ":memory:" for an ephemeral store.
func Open(ctx context.Context, path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases shared and serializes
	// writers.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the stored state. A fresh database yields a zero AppState.
func (s *Store) Load(ctx context.Context) (*state.AppState, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM app_state`)
	if err != nil {
		return nil, fmt.Errorf("failed to query state: %w", err)
	}
	defer rows.Close()

	st := &state.AppState{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan state: %w", err)
		}
		if err := decodeField(st, key, value); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read state: %w", err)
	}
	return st, nil
}

// Save replaces the stored state in a single transaction.
func (s *Store) Save(ctx context.Context, st *state.AppState) error {
	values := map[string]any{
		keyRecentProjects: nonNil(st.RecentProjects),
		keyProjectsDir:    st.ProjectsDir,
		keyCoreCaller:     st.CoreCaller,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for key, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", key, err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
			key, string(raw)); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit state: %w", err)
	}
	return nil
}

// Name returns the identifier used with a [ports.HealthRegistry].
func (s *Store) Name() string {
	return Name
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", Name, err)
	}
	return nil
}

func decodeField(st *state.AppState, key, value string) error {
	var target any
	switch key {
	case keyRecentProjects:
		target = &st.RecentProjects
	case keyProjectsDir:
		target = &st.ProjectsDir
	case keyCoreCaller:
		target = &st.CoreCaller
	default:
		return nil
	}
	if err := json.Unmarshal([]byte(value), target); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
