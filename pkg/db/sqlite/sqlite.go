// Package sqlite opens the local database file backing the logbook.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Open opens (and creates if necessary) the sqlite database at path.
// Use ":memory:" for a throwaway in-memory database.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	// single user application; a second writer should fail fast instead of
	// corrupting the file
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("pragma journal_mode = wal; pragma busy_timeout = 5000;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	return db, nil
}
