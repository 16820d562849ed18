package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/forgeworks/forge/pkg/database"
	"github.com/forgeworks/forge/test/util"
	"github.com/stretchr/testify/require"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL + pgvector.
// The container/connection is automatically cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	// Use shared test database setup
	entClient, db := util.SetupTestDatabase(t)

	// Get the driver for catch-up index creation
	drv := entsql.OpenDB(dialect.Postgres, db)

	// Create the indexes ent's migrator cannot express
	err := database.CreateCatchupIndexes(ctx, drv)
	require.NoError(t, err)

	// Wrap in our client type
	// Note: cleanup (schema drop and connection close) is handled by SetupTestDatabase
	client := database.NewClientFromEnt(entClient, db)

	return client
}
