package testdb

import (
	"database/sql"
	"testing"

	"github.com/pkoehlmann/pitbook-go/pkg/db/migrate"
	"github.com/pkoehlmann/pitbook-go/pkg/db/sqlite"
)

// Setup returns a migrated in-memory database that is torn down with the
// test.
func Setup(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := migrate.Up(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}
