//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/pizzeria-service/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardedLogStore_AgainstMongo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Hour,
		Name:             "mongodb-logs-it",
	})
	store := NewGuardedLogStore(NewLogsRepository(newAuditDB(t)), cb)

	t.Run("writes and reads through a closed breaker", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, &LogEntryDocument{Level: "info", Message: "Login do administrador", Actor: "admin", ActionType: "admin_login"}))
		require.NoError(t, store.CreateMany(ctx, []*LogEntryDocument{
			{Level: "info", Message: "Item adicionado", Actor: "admin", ActionType: "catalog_add"},
			{Level: "info", Message: "Pedido enviado", SessionID: "mesa-2", ActionType: "checkout_submit"},
		}))

		entries, err := store.Query(ctx, LogQueryOptions{Actor: "admin"})
		require.NoError(t, err)
		assert.Len(t, entries, 2)

		count, err := store.Count(ctx, LogQueryOptions{ActionType: "checkout_submit"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		assert.Equal(t, circuitbreaker.StateClosed, store.CircuitBreaker().State())
		assert.Zero(t, store.Dropped())
	})

	t.Run("cancelled callers do not trip the breaker", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		for range 3 {
			_, err := store.Query(cancelled, LogQueryOptions{})
			assert.ErrorIs(t, err, context.Canceled)
		}
		assert.False(t, cb.IsOpen())
	})
}
