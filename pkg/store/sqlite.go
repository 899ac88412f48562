// Package store keeps parsed MITAB records in SQLite, so one can ask
// what an interactor binds to without reading the file again.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store is a SQLite database of interactions.
type Store struct {
	db *sql.DB
}

// Open opens or creates a database at the given path.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

// The list columns that are plain strings go in field_values, keyed
// by their column number in the file.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS interactions (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		line             INTEGER NOT NULL,
		a_ns             TEXT NOT NULL,
		a_value          TEXT NOT NULL,
		b_ns             TEXT NOT NULL,
		b_value          TEXT NOT NULL,
		detection_method TEXT NOT NULL,
		first_author     TEXT NOT NULL,
		taxid_a          TEXT NOT NULL,
		taxid_b          TEXT NOT NULL,
		source_db        TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_interactions_a ON interactions(a_ns, a_value);
	CREATE INDEX IF NOT EXISTS idx_interactions_b ON interactions(b_ns, b_value);

	CREATE TABLE IF NOT EXISTS interaction_types (
		interaction_id INTEGER NOT NULL REFERENCES interactions(id),
		ns             TEXT NOT NULL,
		value          TEXT NOT NULL,
		free_text      TEXT NOT NULL,
		relation       TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_types_interaction ON interaction_types(interaction_id);

	CREATE TABLE IF NOT EXISTS interaction_ids (
		interaction_id INTEGER NOT NULL REFERENCES interactions(id),
		ns             TEXT NOT NULL,
		value          TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_ids_value ON interaction_ids(ns, value);

	CREATE TABLE IF NOT EXISTS field_values (
		interaction_id INTEGER NOT NULL REFERENCES interactions(id),
		col            INTEGER NOT NULL,
		value          TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_field_values ON field_values(interaction_id, col);
	`
	_, err := s.db.Exec(schema)
	return err
}
