package db

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
)

// TestConnection returns a SQLite DSN inside dir with the pragmas used in production.
func TestConnection(dir string) string {
	return filepath.Join(dir, "aura.db") + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
}

// NewTestDB opens a migrated SQLite database in a temp dir, closed on cleanup.
func NewTestDB(t testing.TB) *sqlx.DB {
	t.Helper()
	database, err := Open("sqlite", TestConnection(t.TempDir()))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}
