// Package memory provides the in-process SessionStore implementation. The
// session table is the only shared mutable state in the service; this adapter
// owns its synchronization so the application core stays lock-free.
package memory

import (
	"context"
	"sync"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// sessionEntry pairs one session's order with its own mutex. Holding the
// entry mutex outside the table lock lets mutators for different sessions run
// in parallel while same-key mutators serialize.
type sessionEntry struct {
	mu      sync.Mutex
	order   *order.InProgressOrder
	touched time.Time
}

// SessionStore is a concurrency-safe, process-local table of in-progress
// orders keyed by session. Entries live until the order completes, the entry
// idles out, or the process exits.
type SessionStore struct {
	mu      sync.RWMutex
	entries map[kernel.SessionKey]*sessionEntry

	// now is swappable for eviction tests.
	now func() time.Time
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		entries: make(map[kernel.SessionKey]*sessionEntry),
		now:     time.Now,
	}
}

// Update implements ports.SessionStore. fn runs under the session's exclusive
// lock; its result replaces the entry, with nil meaning absent. A fresh entry
// is created on demand so first-touch and update follow the same path.
func (s *SessionStore) Update(_ context.Context, key kernel.SessionKey, fn ports.SessionMutator) error {
	entry := s.lockEntry(key)
	defer entry.mu.Unlock()

	updated, err := fn(entry.order)
	if err != nil {
		return err
	}

	entry.order = updated
	entry.touched = s.now()

	if updated == nil {
		s.drop(key, entry)
	}
	return nil
}

// lockEntry returns the session's entry with its mutex held. An entry that
// was evicted or completed between lookup and lock is detached from the
// table, so re-check membership and retry rather than mutate an orphan.
func (s *SessionStore) lockEntry(key kernel.SessionKey) *sessionEntry {
	for {
		entry := s.entry(key)
		entry.mu.Lock()

		s.mu.RLock()
		current := s.entries[key]
		s.mu.RUnlock()

		if current == entry {
			return entry
		}
		entry.mu.Unlock()
	}
}

// EvictIdle implements ports.SessionStore. It removes sessions whose last
// update is older than idleFor and returns the number removed. Entries whose
// mutator is mid-flight keep their lock and are skipped rather than waited on.
func (s *SessionStore) EvictIdle(_ context.Context, idleFor time.Duration) int {
	deadline := s.now().Add(-idleFor)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for key, entry := range s.entries {
		if !entry.mu.TryLock() {
			continue
		}
		if entry.touched.Before(deadline) {
			delete(s.entries, key)
			evicted++
		}
		entry.mu.Unlock()
	}
	return evicted
}

// SetClock overrides the store's time source. Tests use it to drive the idle
// eviction deadline without sleeping.
func (s *SessionStore) SetClock(now func() time.Time) {
	s.now = now
}

// Len returns the number of live sessions, for logging and tests.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// entry returns the session's entry, creating a placeholder when absent.
func (s *SessionStore) entry(key kernel.SessionKey) *sessionEntry {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		return entry
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok = s.entries[key]; ok {
		return entry
	}

	entry = &sessionEntry{touched: s.now()}
	s.entries[key] = entry
	return entry
}

// drop removes an entry whose order was cleared. The caller holds the entry
// mutex; re-check under the table lock that the map still points at the same
// entry before deleting, so a concurrent re-create is not lost.
func (s *SessionStore) drop(key kernel.SessionKey, entry *sessionEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.entries[key]; ok && current == entry {
		delete(s.entries, key)
	}
}
