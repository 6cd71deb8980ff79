package repository

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/guttosm/pizzeria-service/internal/circuitbreaker"
)

// GuardedLogStore routes LogStore calls through a circuit breaker so a
// MongoDB outage never blocks the request path. While the breaker is open,
// writes are counted and dropped and reads fail with ErrCircuitOpen.
type GuardedLogStore struct {
	store   LogStore
	breaker *circuitbreaker.CircuitBreaker
	dropped atomic.Int64
}

// NewGuardedLogStore wraps store with breaker.
func NewGuardedLogStore(store LogStore, breaker *circuitbreaker.CircuitBreaker) *GuardedLogStore {
	return &GuardedLogStore{store: store, breaker: breaker}
}

func (s *GuardedLogStore) Create(ctx context.Context, entry *LogEntryDocument) error {
	return s.write(ctx, 1, func() error { return s.store.Create(ctx, entry) })
}

func (s *GuardedLogStore) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	return s.write(ctx, len(entries), func() error { return s.store.CreateMany(ctx, entries) })
}

func (s *GuardedLogStore) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	return guardedRead(ctx, s.breaker, func() ([]*LogEntryDocument, error) { return s.store.Query(ctx, opts) })
}

func (s *GuardedLogStore) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	return guardedRead(ctx, s.breaker, func() (int64, error) { return s.store.Count(ctx, opts) })
}

// Dropped returns how many entries were discarded while the breaker was open.
func (s *GuardedLogStore) Dropped() int64 {
	return s.dropped.Load()
}

// CircuitBreaker exposes the breaker to the readiness probe.
func (s *GuardedLogStore) CircuitBreaker() *circuitbreaker.CircuitBreaker {
	return s.breaker
}

func (s *GuardedLogStore) write(ctx context.Context, n int, fn func() error) error {
	err := s.breaker.Execute(ctx, fn)
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		s.dropped.Add(int64(n))
		return nil
	}
	return err
}

func guardedRead[T any](ctx context.Context, breaker *circuitbreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var out T
	err := breaker.Execute(ctx, func() error {
		var err error
		out, err = fn()
		return err
	})
	return out, err
}
