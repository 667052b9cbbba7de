package history

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"termfolio/pkg/consoletypes"
)

// Store is the ordered list of rendered history entries.
// It assigns each appended entry an ID and timestamp. Entries are never edited in
// place; the only removal is Clear.
type Store struct {
	mu      sync.RWMutex
	entries []consoletypes.HistoryEntry
	newID   func() string
	now     func() time.Time
}

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithIDGenerator replaces the random UUID generator used for entry IDs.
func WithIDGenerator(fn func() string) StoreOption {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithClock replaces the time source used for entry timestamps.
func WithClock(fn func() time.Time) StoreOption {
	return func(s *Store) {
		if fn != nil {
			s.now = fn
		}
	}
}

// NewStore creates an empty history store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		newID: func() string { return uuid.New().String() },
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append stamps the entry with an ID (unless one is set) and the current time, stores it
// and returns the stored copy.
func (s *Store) Append(entry consoletypes.HistoryEntry) consoletypes.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = s.newID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now()
	}
	s.entries = append(s.entries, entry)
	return entry
}

// Entries returns a copy of all entries in append order.
func (s *Store) Entries() []consoletypes.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]consoletypes.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Last returns the most recent entry.
func (s *Store) Last() (consoletypes.HistoryEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.entries) == 0 {
		return consoletypes.HistoryEntry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Clear removes every entry.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
