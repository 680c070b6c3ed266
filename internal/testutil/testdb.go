package testutil

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mumpitzstuff/goodTimes/internal/archive"
)

// NewTestDB opens an in-memory archive database with migrations applied.
// The connection is closed automatically when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := archive.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})
	return db
}
