//go:build !integration

package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIdempotencyCache_Get(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(*idempotencyCache)
		key           string
		expectedFound bool
	}{
		{
			name: "returns cached response when exists",
			setup: func(cache *idempotencyCache) {
				cache.Set("abc", &cachedResponse{
					StatusCode: 200,
					Headers:    map[string]string{"Content-Type": "application/json"},
					Body:       []byte(`{"data": "test"}`),
				})
			},
			key:           "abc",
			expectedFound: true,
		},
		{
			name:          "returns false when key not found",
			setup:         func(*idempotencyCache) {},
			key:           "missing",
			expectedFound: false,
		},
		{
			name: "returns false when expired",
			setup: func(cache *idempotencyCache) {
				cache.mu.Lock()
				cache.items["old"] = &cachedResponse{
					StatusCode: 200,
					Body:       []byte(`{}`),
					Timestamp:  time.Now().Add(-2 * time.Minute),
				}
				cache.mu.Unlock()
			},
			key:           "old",
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := newIdempotencyCache(50 * time.Millisecond)
			defer cache.Stop()
			tt.setup(cache)

			resp, found := cache.Get(tt.key)

			assert.Equal(t, tt.expectedFound, found)
			if tt.expectedFound {
				assert.Equal(t, 200, resp.StatusCode)
			}
		})
	}
}

func TestIdempotencyCache_Set(t *testing.T) {
	cache := newIdempotencyCache(time.Minute)
	defer cache.Stop()

	resp := &cachedResponse{
		StatusCode: 201,
		Headers:    map[string]string{"X-Test": "value"},
		Body:       []byte(`{"test": "data"}`),
	}
	cache.Set("key", resp)

	retrieved, found := cache.Get("key")
	assert.True(t, found)
	assert.Equal(t, resp.StatusCode, retrieved.StatusCode)
	assert.Equal(t, resp.Headers, retrieved.Headers)
	assert.False(t, retrieved.Timestamp.IsZero())
}

func TestIdempotencyCache_Cleanup(t *testing.T) {
	cache := newIdempotencyCache(time.Minute)
	defer cache.Stop()

	cache.mu.Lock()
	cache.items["expired"] = &cachedResponse{Timestamp: time.Now().Add(-2 * time.Hour)}
	cache.items["valid"] = &cachedResponse{Timestamp: time.Now()}
	cache.mu.Unlock()

	cache.cleanup()

	cache.mu.RLock()
	defer cache.mu.RUnlock()
	assert.NotContains(t, cache.items, "expired")
	assert.Contains(t, cache.items, "valid")
}

func TestIdempotencyCache_StopIsIdempotent(t *testing.T) {
	cache := newIdempotencyCache(time.Minute)
	cache.Stop()
	assert.NotPanics(t, cache.Stop)
}
