// Package memory is a small SQLite translation memory. Suggestions accepted
// in one run are stored per target language and reused by later runs, so
// the same source string is never sent to a translation backend twice.
package memory

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DB is an open translation memory
type DB struct {
	db *sql.DB
}

// Open opens the memory at path, creating the file, its parent directory
// and the schema when missing.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create memory directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open translation memory: %w", err)
	}

	m := &DB{db: db}
	if err := m.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return m, nil
}

func (m *DB) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS entries (
			lang text NOT NULL,
			source text NOT NULL,
			target text NOT NULL,
			updated_at integer NOT NULL,
			PRIMARY KEY (lang, source)
		)`,
		`CREATE INDEX IF NOT EXISTS ix_entries_lang ON entries (lang)`,
	}

	for _, query := range queries {
		if _, err := m.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}

// Lookup returns the stored translation of source into lang
func (m *DB) Lookup(lang, source string) (string, bool, error) {
	var target string
	err := m.db.QueryRow(
		`SELECT target FROM entries WHERE lang = ? AND source = ?`,
		lang, source,
	).Scan(&target)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to look up %q: %w", source, err)
	}

	return target, true, nil
}

// Save stores or replaces the translation of source into lang
func (m *DB) Save(lang, source, target string) error {
	_, err := m.db.Exec(
		`INSERT INTO entries (lang, source, target, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (lang, source) DO UPDATE SET target = excluded.target, updated_at = excluded.updated_at`,
		lang, source, target, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save %q: %w", source, err)
	}
	return nil
}

// Count returns the number of entries stored for lang
func (m *DB) Count(lang string) (int, error) {
	var n int
	if err := m.db.QueryRow(`SELECT COUNT(*) FROM entries WHERE lang = ?`, lang).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return n, nil
}

// Close releases the database
func (m *DB) Close() error {
	return m.db.Close()
}
