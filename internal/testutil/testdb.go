package testutil

import (
	"database/sql"
	"testing"

	"github.com/dancinggoatstudios/shopcal/internal/db"
)

// NewTestDB opens a fresh in-memory calendar database with the full schema
// applied. It is torn down when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}
