// Package store holds the canonical client-side copy of server-derived state.
// Each domain collection lives in its own slice with loading/error/freshness
// bookkeeping; all writes go through the slice's methods and all reads return
// snapshots, so screens never share mutable internals.
package store

import (
	"sync"
	"time"
)

// nowFunc is swapped out in tests to drive the freshness window.
var nowFunc = time.Now

// View is a read-only snapshot of a slice at one point in time.
type View[T any] struct {
	Data        T
	HasData     bool
	Loading     bool
	Err         string // normalized message, empty when none
	LastFetched time.Time
}

// Slice caches one domain collection. Every fetch goes through
// Begin -> Resolve|Reject; Begin hands out a monotonic sequence number and a
// resolution whose sequence is below the last applied one is discarded, so a
// slow superseded request can never overwrite a newer response.
type Slice[T any] struct {
	mu     sync.RWMutex
	window time.Duration
	notify func()

	data        T
	hasData     bool
	err         string
	lastFetched time.Time

	seq     uint64 // last issued
	applied uint64 // last applied (resolved or rejected)
}

func NewSlice[T any](window time.Duration) *Slice[T] {
	return &Slice[T]{window: window}
}

// Begin marks a fetch as pending and returns its sequence number, to be
// passed back to Resolve or Reject.
func (s *Slice[T]) Begin() uint64 {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.mu.Unlock()
	s.changed()
	return seq
}

// Resolve commits a successful response. It reports false when the response
// was superseded by a newer applied one and therefore discarded.
// lastFetched is only ever set here: an error never marks data fresh.
func (s *Slice[T]) Resolve(seq uint64, data T) bool {
	s.mu.Lock()
	if seq <= s.applied {
		s.mu.Unlock()
		return false
	}
	s.applied = seq
	s.data = data
	s.hasData = true
	s.err = ""
	s.lastFetched = nowFunc()
	s.mu.Unlock()
	s.changed()
	return true
}

// Reject records a failed fetch: the error message is set, previously
// displayed data stays untouched and freshness is not advanced.
func (s *Slice[T]) Reject(seq uint64, msg string) bool {
	s.mu.Lock()
	if seq <= s.applied {
		s.mu.Unlock()
		return false
	}
	s.applied = seq
	s.err = msg
	s.mu.Unlock()
	s.changed()
	return true
}

// Patch applies a narrow in-place transformation to cached data, used for
// small interim updates after a mutation (the next real fetch reconciles).
// No-op when nothing has been fetched yet.
func (s *Slice[T]) Patch(fn func(T) T) {
	s.mu.Lock()
	if !s.hasData {
		s.mu.Unlock()
		return
	}
	s.data = fn(s.data)
	s.mu.Unlock()
	s.changed()
}

// IsStale reports whether the cached data is older than the freshness window
// (or was never fetched). The store never auto-refetches on read; the
// orchestrators consult this before dispatching.
func (s *Slice[T]) IsStale() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastFetched.IsZero() {
		return true
	}
	return nowFunc().Sub(s.lastFetched) > s.window
}

// Invalidate clears freshness without clearing data, so the previous data
// stays on screen while a background refetch is pending.
func (s *Slice[T]) Invalidate() {
	s.mu.Lock()
	s.lastFetched = time.Time{}
	s.mu.Unlock()
	s.changed()
}

// Reset clears data, error and freshness together. In-flight fetches begun
// before the reset are treated as superseded and will be discarded.
func (s *Slice[T]) Reset() {
	s.mu.Lock()
	var zero T
	s.data = zero
	s.hasData = false
	s.err = ""
	s.lastFetched = time.Time{}
	s.applied = s.seq
	s.mu.Unlock()
	s.changed()
}

// Snapshot returns the current view. Loading is true while any begun fetch
// has not yet been applied.
func (s *Slice[T]) Snapshot() View[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return View[T]{
		Data:        s.data,
		HasData:     s.hasData,
		Loading:     s.seq > s.applied,
		Err:         s.err,
		LastFetched: s.lastFetched,
	}
}

func (s *Slice[T]) changed() {
	if s.notify != nil {
		s.notify()
	}
}
