//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewLogsRepository(newAuditDB(t))

	base := time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC)
	at := func(minutes int) time.Time { return base.Add(time.Duration(minutes) * time.Minute) }

	order := &LogEntryDocument{
		Timestamp:  at(0),
		Level:      "info",
		Message:    "Pedido enviado",
		RequestID:  "req-submit",
		Method:     "POST",
		Path:       "/api/checkout/submit",
		SessionID:  "mesa-7",
		StatusCode: 202,
		ActionType: "checkout_submit",
		Fields:     map[string]interface{}{"total": 89.9},
	}
	require.NoError(t, repo.Create(ctx, order))
	assert.False(t, order.ID.IsZero())

	require.NoError(t, repo.CreateMany(ctx, []*LogEntryDocument{
		{Timestamp: at(1), Level: "info", Message: "Pedido despachado", SessionID: "mesa-7", ActionType: "order_dispatched"},
		{Timestamp: at(2), Level: "info", Message: "Item desativado", Actor: "admin", ActionType: "catalog_toggle"},
		{Timestamp: at(3), Level: "warn", Message: "Item removido", Actor: "admin", ActionType: "catalog_remove"},
		{Level: "error", Message: "Falha no broker"},
	}))
	require.NoError(t, repo.CreateMany(ctx, nil))

	since := at(2)
	tests := []struct {
		name     string
		opts     LogQueryOptions
		messages []string
	}{
		{
			name:     "session newest first",
			opts:     LogQueryOptions{SessionID: "mesa-7"},
			messages: []string{"Pedido despachado", "Pedido enviado"},
		},
		{
			name:     "actor",
			opts:     LogQueryOptions{Actor: "admin"},
			messages: []string{"Item removido", "Item desativado"},
		},
		{
			name:     "action type",
			opts:     LogQueryOptions{ActionType: "catalog_toggle"},
			messages: []string{"Item desativado"},
		},
		{
			name:     "request id",
			opts:     LogQueryOptions{RequestID: "req-submit"},
			messages: []string{"Pedido enviado"},
		},
		{
			name:     "since",
			opts:     LogQueryOptions{Actor: "admin", StartTime: &since},
			messages: []string{"Item removido", "Item desativado"},
		},
		{
			name:     "paged",
			opts:     LogQueryOptions{Actor: "admin", Limit: 1, Skip: 1},
			messages: []string{"Item desativado"},
		},
		{
			name:     "no match",
			opts:     LogQueryOptions{Actor: "gerente"},
			messages: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := repo.Query(ctx, tt.opts)
			require.NoError(t, err)

			messages := make([]string, 0, len(entries))
			for _, e := range entries {
				messages = append(messages, e.Message)
			}
			assert.Equal(t, tt.messages, messages)
		})
	}

	t.Run("stamped by the repository", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{Level: "error"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.False(t, entries[0].ID.IsZero())
		assert.WithinDuration(t, time.Now(), entries[0].Timestamp, time.Minute)
	})

	t.Run("fields round trip", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{ActionType: "checkout_submit"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 89.9, entries[0].Fields["total"])
	})

	t.Run("count ignores paging", func(t *testing.T) {
		count, err := repo.Count(ctx, LogQueryOptions{Actor: "admin", Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		total, err := repo.Count(ctx, LogQueryOptions{})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
	})
}
