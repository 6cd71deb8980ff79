package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/guttosm/pizzeria-service/config"
)

const (
	sessionsCacheName   = "sessions"
	sessionsCacheShards = 32
)

// Session is one customer's cart and checkout form.
type Session struct {
	ID       string
	Cart     *CartStore
	Checkout *CheckoutFlow
}

// SessionRegistry keeps customer sessions in memory. Idle sessions expire
// after the configured TTL.
type SessionRegistry struct {
	mu         sync.Mutex
	sessions   *ShardedCache[*Session]
	catalog    CatalogService
	dispatcher OrderDispatcher
}

// NewSessionRegistry creates a registry whose checkouts dispatch through
// dispatcher.
func NewSessionRegistry(catalog CatalogService, dispatcher OrderDispatcher, cfg config.SessionConfig) *SessionRegistry {
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = 10000
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &SessionRegistry{
		sessions:   NewShardedCache[*Session](sessionsCacheName, capacity, ttl, sessionsCacheShards),
		catalog:    catalog,
		dispatcher: dispatcher,
	}
}

// GetOrCreate returns the session for id, creating it when id is unknown.
// Ids that are not UUIDs are replaced by a fresh one. The boolean reports
// whether a new session was created.
func (r *SessionRegistry) GetOrCreate(id string) (*Session, bool) {
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions.Get(id); ok {
		return s, false
	}

	cart := NewCartStore()
	s := &Session{
		ID:       id,
		Cart:     cart,
		Checkout: NewCheckoutFlow(cart, r.catalog, r.dispatcher),
	}
	r.sessions.Set(id, s)
	return s, true
}

// Get returns an existing session.
func (r *SessionRegistry) Get(id string) (*Session, bool) {
	return r.sessions.Get(id)
}

// Stop releases the session cache.
func (r *SessionRegistry) Stop() {
	r.sessions.Stop()
}
