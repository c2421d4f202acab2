// Package testing holds helpers shared by parkour's package tests.
package testing

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/teranos/parkour/db"
)

// CreateTestDB opens a migrated SQLite database in a temp directory.
// Automatically registers cleanup via t.Cleanup().
func CreateTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.OpenWithMigrations(filepath.Join(t.TempDir(), "parkour.db"), nil)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		conn.Close()
	})
	return conn
}

// Owner returns a stable owner id for n, so test tables read naturally
// (Owner(1), Owner(2), ...).
func Owner(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", n))
}
