// Package sqlite persists the conversation snapshot and the theme flag in an
// embedded database, the server-side stand-in for the browser's localStorage
// keys in the original front end. The snapshot is an opaque JSON blob under
// a fixed key; the schema is a plain key/value table.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cityhospital/assistant/internal/domain"
	_ "modernc.org/sqlite"
)

const (
	stateKey = "hospitalState"
	themeKey = "darkMode"
)

type Store struct {
	db *sql.DB
}

// New opens (and creates if needed) the database at dbPath.
func New(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) put(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := s.db.ExecContext(ctx, query, key, value, time.Now().Unix()); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *Store) SaveState(ctx context.Context, state *domain.ConversationState) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	return s.put(ctx, stateKey, string(blob))
}

// LoadState returns domain.ErrNoSavedState when no snapshot exists. A
// snapshot that fails to decode is reported as an error too; the caller
// falls back to the default state either way.
func (s *Store) LoadState(ctx context.Context) (*domain.ConversationState, error) {
	blob, err := s.get(ctx, stateKey)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNoSavedState
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	var state domain.ConversationState
	if err := json.Unmarshal([]byte(blob), &state); err != nil {
		return nil, fmt.Errorf("decode saved state: %w", err)
	}
	return &state, nil
}

func (s *Store) SaveTheme(ctx context.Context, dark bool) error {
	value := "false"
	if dark {
		value = "true"
	}
	return s.put(ctx, themeKey, value)
}

func (s *Store) LoadTheme(ctx context.Context) (bool, error) {
	value, err := s.get(ctx, themeKey)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load theme: %w", err)
	}
	return value == "true", nil
}
