package middleware

import (
	"sync"
	"time"

	"github.com/guttosm/pizzeria-service/internal/metrics"
)

const idempotencyCacheName = "idempotency"

// idempotencyCache stores replayable responses keyed by a request fingerprint.
type idempotencyCache struct {
	mu       sync.RWMutex
	items    map[string]*cachedResponse
	ttl      time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

func newIdempotencyCache(ttl time.Duration) *idempotencyCache {
	c := &idempotencyCache{
		items:  make(map[string]*cachedResponse),
		ttl:    ttl,
		stopCh: make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

// Get retrieves a cached response that is still within its TTL.
func (c *idempotencyCache) Get(key string) (*cachedResponse, bool) {
	c.mu.RLock()
	resp, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		metrics.RecordCacheOperation(idempotencyCacheName, "get", "miss")
		return nil, false
	}
	if time.Since(resp.Timestamp) > c.ttl {
		metrics.RecordCacheOperation(idempotencyCacheName, "get", "expired")
		return nil, false
	}

	metrics.RecordCacheOperation(idempotencyCacheName, "get", "hit")
	return resp, true
}

// Set stores a response, stamping it with the current time.
func (c *idempotencyCache) Set(key string, resp *cachedResponse) {
	c.mu.Lock()
	resp.Timestamp = time.Now()
	c.items[key] = resp
	size := len(c.items)
	c.mu.Unlock()

	metrics.RecordCacheOperation(idempotencyCacheName, "set", "success")
	metrics.UpdateCacheSize(idempotencyCacheName, size)
}

// Stop ends the cleanup loop.
func (c *idempotencyCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

func (c *idempotencyCache) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

func (c *idempotencyCache) cleanup() {
	c.mu.Lock()
	now := time.Now()
	for key, resp := range c.items {
		if now.Sub(resp.Timestamp) > c.ttl {
			delete(c.items, key)
			metrics.RecordCacheOperation(idempotencyCacheName, "evict", "expired")
		}
	}
	size := len(c.items)
	c.mu.Unlock()

	metrics.UpdateCacheSize(idempotencyCacheName, size)
}
