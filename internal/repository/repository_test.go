package repository

import (
	"testing"

	"github.com/maatcore/backend/internal/database"
)

// newTestDB opens an in-memory database and applies the given migration set.
// NewSQLiteDB pins the pool to one connection, which also keeps the in-memory
// database from splitting across connections.
func newTestDB(t *testing.T, migrations []database.Migration) *database.DB {
	t.Helper()

	db, err := database.NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.RunMigrations(db.DB, migrations); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
