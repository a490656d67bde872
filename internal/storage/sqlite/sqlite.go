// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"furnitrack/internal/models"
	"furnitrack/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// marshalItems serializes a record's items into the blob stored in the
// items column. A nil slice serializes as an empty list so the blob
// always deserializes back into a list.
func marshalItems(items []models.AssemblyItem) (string, error) {
	if items == nil {
		items = []models.AssemblyItem{}
	}
	blob, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to serialize items: %w", err)
	}
	return string(blob), nil
}

// unmarshalItems deserializes the stored blob back into a list.
// NULL and empty blobs both come back as an empty list.
func unmarshalItems(blob sql.NullString) ([]models.AssemblyItem, error) {
	if !blob.Valid || blob.String == "" {
		return []models.AssemblyItem{}, nil
	}
	var items []models.AssemblyItem
	if err := json.Unmarshal([]byte(blob.String), &items); err != nil {
		return nil, fmt.Errorf("failed to deserialize items: %w", err)
	}
	if items == nil {
		items = []models.AssemblyItem{}
	}
	return items, nil
}
