package store

import (
	"sync"
	"time"
)

// KeyedSlice caches several independently-fetched datasets of the same shape
// under sub-keys (e.g. fee payments per academic year). Each key gets its own
// loading/error/freshness bookkeeping and sequence guard.
type KeyedSlice[T any] struct {
	mu     sync.RWMutex
	window time.Duration
	notify func()

	entries map[string]*keyEntry[T]
}

type keyEntry[T any] struct {
	data        T
	hasData     bool
	err         string
	lastFetched time.Time
	seq         uint64
	applied     uint64
}

func NewKeyedSlice[T any](window time.Duration) *KeyedSlice[T] {
	return &KeyedSlice[T]{window: window, entries: make(map[string]*keyEntry[T])}
}

func (s *KeyedSlice[T]) entry(key string) *keyEntry[T] {
	e, ok := s.entries[key]
	if !ok {
		e = &keyEntry[T]{}
		s.entries[key] = e
	}
	return e
}

func (s *KeyedSlice[T]) Begin(key string) uint64 {
	s.mu.Lock()
	e := s.entry(key)
	e.seq++
	seq := e.seq
	s.mu.Unlock()
	s.changed()
	return seq
}

func (s *KeyedSlice[T]) Resolve(key string, seq uint64, data T) bool {
	s.mu.Lock()
	e := s.entry(key)
	if seq <= e.applied {
		s.mu.Unlock()
		return false
	}
	e.applied = seq
	e.data = data
	e.hasData = true
	e.err = ""
	e.lastFetched = nowFunc()
	s.mu.Unlock()
	s.changed()
	return true
}

func (s *KeyedSlice[T]) Reject(key string, seq uint64, msg string) bool {
	s.mu.Lock()
	e := s.entry(key)
	if seq <= e.applied {
		s.mu.Unlock()
		return false
	}
	e.applied = seq
	e.err = msg
	s.mu.Unlock()
	s.changed()
	return true
}

func (s *KeyedSlice[T]) IsStale(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok || e.lastFetched.IsZero() {
		return true
	}
	return nowFunc().Sub(e.lastFetched) > s.window
}

// Invalidate clears one key's freshness, keeping its data displayed.
func (s *KeyedSlice[T]) Invalidate(key string) {
	s.mu.Lock()
	if e, ok := s.entries[key]; ok {
		e.lastFetched = time.Time{}
	}
	s.mu.Unlock()
	s.changed()
}

// InvalidateAll clears freshness on every key.
func (s *KeyedSlice[T]) InvalidateAll() {
	s.mu.Lock()
	for _, e := range s.entries {
		e.lastFetched = time.Time{}
	}
	s.mu.Unlock()
	s.changed()
}

// Reset clears every key's data, error and freshness together. Entries are
// kept (with their sequence counters) so in-flight fetches begun before the
// reset are discarded on arrival.
func (s *KeyedSlice[T]) Reset() {
	s.mu.Lock()
	for _, e := range s.entries {
		var zero T
		e.data = zero
		e.hasData = false
		e.err = ""
		e.lastFetched = time.Time{}
		e.applied = e.seq
	}
	s.mu.Unlock()
	s.changed()
}

func (s *KeyedSlice[T]) Snapshot(key string) View[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok {
		return View[T]{}
	}
	return View[T]{
		Data:        e.data,
		HasData:     e.hasData,
		Loading:     e.seq > e.applied,
		Err:         e.err,
		LastFetched: e.lastFetched,
	}
}

// Keys returns the sub-keys currently tracked, in no particular order.
func (s *KeyedSlice[T]) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys
}

func (s *KeyedSlice[T]) changed() {
	if s.notify != nil {
		s.notify()
	}
}
