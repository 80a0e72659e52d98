// Package store provides the SQLite-backed snapshot cache used for offline
// browsing. Each successful fetch of a collection replaces its snapshot; when
// the backend is unreachable, reads fall back to the last snapshot.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNoSnapshot indicates no snapshot exists for the requested collection.
var ErrNoSnapshot = errors.New("no snapshot for collection")

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
	collection TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	fetched_at TEXT NOT NULL
);
`

// SnapshotStore persists one JSON payload per collection.
type SnapshotStore struct {
	db *sql.DB
}

// Open creates or opens the snapshot database at dbPath.
func Open(dbPath string) (*SnapshotStore, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("snapshot store: db path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("snapshot store: create db directory: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("snapshot store: open db: %w", err)
	}
	store := &SnapshotStore{db: db}
	if err := store.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying connection.
func (s *SnapshotStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SnapshotStore) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("snapshot store: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("snapshot store: create schema: %w", err)
	}
	return nil
}

// Put replaces the snapshot of a collection with the given payload.
func (s *SnapshotStore) Put(ctx context.Context, collection string, payload []byte) error {
	fetchedAt := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (collection, payload, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(collection) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`,
		collection, string(payload), fetchedAt)
	if err != nil {
		return fmt.Errorf("snapshot store: put %s: %w", collection, err)
	}
	return nil
}

// Get returns the stored payload and fetch time for a collection.
func (s *SnapshotStore) Get(ctx context.Context, collection string) ([]byte, time.Time, error) {
	var payload, fetchedAt string
	row := s.db.QueryRowContext(ctx,
		"SELECT payload, fetched_at FROM snapshots WHERE collection = ?", collection)
	if err := row.Scan(&payload, &fetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, time.Time{}, ErrNoSnapshot
		}
		return nil, time.Time{}, fmt.Errorf("snapshot store: get %s: %w", collection, err)
	}
	at, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		at = time.Time{}
	}
	return []byte(payload), at, nil
}

// Delete removes the snapshot of a collection. Missing snapshots are ignored.
func (s *SnapshotStore) Delete(ctx context.Context, collection string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE collection = ?", collection); err != nil {
		return fmt.Errorf("snapshot store: delete %s: %w", collection, err)
	}
	return nil
}

// SaveItems marshals and stores a collection snapshot.
func SaveItems[T any](ctx context.Context, s *SnapshotStore, collection string, items []T) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("snapshot store: encode %s: %w", collection, err)
	}
	return s.Put(ctx, collection, payload)
}

// LoadItems reads and unmarshals a collection snapshot.
func LoadItems[T any](ctx context.Context, s *SnapshotStore, collection string) ([]T, time.Time, error) {
	payload, at, err := s.Get(ctx, collection)
	if err != nil {
		return nil, time.Time{}, err
	}
	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, time.Time{}, fmt.Errorf("snapshot store: decode %s: %w", collection, err)
	}
	return items, at, nil
}
