// Package cache is the local fallback tier: a single keyed slot holding the
// last successfully saved content snapshot as serialized JSON, backed by an
// embedded SQLite file so it survives restarts.
package cache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3"

	"orgportal/backend/models"
)

const snapshotKey = "site_content"

// ErrMiss means the slot is empty or unreadable; callers fall through to
// the next tier, they never surface this to the user.
var ErrMiss = errors.New("cache miss")

type Cache struct {
	db *sql.DB
}

func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Load returns the cached snapshot, or ErrMiss when the slot is empty or
// holds JSON that no longer parses. A corrupted slot is logged and treated
// as absent.
func (c *Cache) Load() (*models.ContentSnapshot, error) {
	var raw string
	err := c.db.QueryRow(`SELECT value FROM snapshots WHERE key = ?`, snapshotKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("read cache: %w", err)
	}

	var snap models.ContentSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		log.Printf("cache: corrupted snapshot, ignoring: %v", err)
		return nil, ErrMiss
	}
	return &snap, nil
}

// Store overwrites the slot with the given snapshot.
func (c *Cache) Store(snap models.ContentSnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	_, err = c.db.Exec(`
		INSERT INTO snapshots (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, snapshotKey, string(raw))
	if err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	return nil
}
