//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/guttosm/allocation-service/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestMain sets up a shared MongoDB container for all integration tests in
// this package. Reusing one container keeps the suite fast.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

// setupTestDBFromSharedContainer creates a MongoDB connection using the
// shared container with a unique database name for test isolation.
func setupTestDBFromSharedContainer(t *testing.T) *MongoDB {
	dbName := testutil.SanitizeDBName(t.Name())
	uri := testutil.GetSharedContainerURI()
	db, err := NewMongoDB(uri, dbName)
	require.NoError(t, err)
	return db
}
