//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guttosm/move-labels/internal/testutil"
)

// TestMain starts one MongoDB container for every integration test in the
// package; each test gets its own database.
func TestMain(m *testing.M) {
	os.Exit(testutil.RunWithMongoDB(m))
}

// setupTestDBFromSharedContainer connects to a fresh database named after
// the test and drops it when the test ends.
func setupTestDBFromSharedContainer(t *testing.T) *MongoDB {
	t.Helper()
	db, err := NewMongoDB(testutil.MongoURI(t), testutil.DatabaseName(t))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Database.Drop(context.Background())
	})
	return db
}
