package service

import "sync"

// subscribers is a set of observer callbacks.
type subscribers[E any] struct {
	mu     sync.RWMutex
	nextID int
	fns    map[int]func(E)
}

// add registers fn and returns a func that removes it.
func (s *subscribers[E]) add(fn func(E)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fns == nil {
		s.fns = make(map[int]func(E))
	}
	id := s.nextID
	s.nextID++
	s.fns[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.fns, id)
			s.mu.Unlock()
		})
	}
}

// notify calls every subscriber. Callers must not hold store locks.
func (s *subscribers[E]) notify(event E) {
	s.mu.RLock()
	fns := make([]func(E), 0, len(s.fns))
	for _, fn := range s.fns {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(event)
	}
}
