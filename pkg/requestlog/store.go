package requestlog

import "sync"

// DefaultCapacity bounds the request history when no capacity is configured.
const DefaultCapacity = 1000

// Logger is the minimal interface for recording request entries. The engine
// handler accepts this interface so tests can substitute their own sink.
type Logger interface {
	Log(entry *Entry)
}

// Store is a thread-safe in-memory request history with a fixed capacity.
// Once full it evicts the oldest entry per append (FIFO), so memory use is
// bounded no matter how long the server runs.
type Store struct {
	mu       sync.RWMutex
	entries  []*Entry
	capacity int
}

// NewStore creates a Store holding at most capacity entries.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		entries:  make([]*Entry, 0, capacity),
		capacity: capacity,
	}
}

// Log records a request log entry, evicting the oldest entry at capacity.
func (s *Store) Log(entry *Entry) {
	if entry == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) >= s.capacity {
		s.entries = s.entries[1:]
	}
	s.entries = append(s.entries, entry)
}

// Recent returns up to n entries in arrival order, oldest first.
func (s *Store) Recent(n int) []*Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n > len(s.entries) {
		n = len(s.entries)
	}
	result := make([]*Entry, n)
	copy(result, s.entries[len(s.entries)-n:])
	return result
}

// Count returns the number of retained log entries.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Clear removes all log entries.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make([]*Entry, 0, s.capacity)
}

var _ Logger = (*Store)(nil)
