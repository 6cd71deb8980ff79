//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func indexNames(t *testing.T, db *MongoDB) map[string]bson.M {
	t.Helper()

	cursor, err := db.Logs.Indexes().List(context.Background())
	require.NoError(t, err)

	var specs []bson.M
	require.NoError(t, cursor.All(context.Background(), &specs))

	byName := make(map[string]bson.M, len(specs))
	for _, spec := range specs {
		byName[spec["name"].(string)] = spec
	}
	return byName
}

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newAuditDB(t)

	t.Run("binds the audit collection", func(t *testing.T) {
		assert.Equal(t, AuditCollection, db.Logs.Name())
		assert.NoError(t, db.HealthCheck(ctx))
	})

	t.Run("activity feed indexes", func(t *testing.T) {
		names := indexNames(t, db)
		for _, name := range []string{
			"request_id_1",
			"session_id_1_timestamp_-1",
			"action_type_1_timestamp_-1",
			"actor_1_timestamp_-1",
		} {
			assert.Contains(t, names, name)
		}
	})

	t.Run("ttl index is replaced", func(t *testing.T) {
		require.NoError(t, db.SetLogsTTL(ctx, 30*24*time.Hour))
		require.NoError(t, db.SetLogsTTL(ctx, 7*24*time.Hour))

		ttl, ok := indexNames(t, db)[ttlIndexName]
		require.True(t, ok)
		assert.EqualValues(t, 7*24*3600, ttl["expireAfterSeconds"])
	})

	t.Run("zero ttl is a no-op", func(t *testing.T) {
		assert.NoError(t, db.SetLogsTTL(ctx, 0))
	})
}

func TestMongoDB_UnreachableServer(t *testing.T) {
	cfg := DefaultMongoConfig()
	cfg.ConnectTimeout = 500 * time.Millisecond
	cfg.ServerSelectionTimeout = 500 * time.Millisecond

	_, err := NewMongoDBWithConfig("mongodb://127.0.0.1:1", "pizzeria", cfg)
	assert.Error(t, err)
}
