package cache

import "sync"

// MemoryStore is an in-memory Store guarded by a mutex.
// It is the default result cache: unbounded, process lifetime.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string]string)}
}

// Get returns the cached value for key, if present.
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	v, ok := s.m[key]
	s.mu.RUnlock()
	return v, ok
}

// Set stores value under key, overwriting any prior entry.
func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	s.m[key] = value
	s.mu.Unlock()
}

// Clear removes all entries.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	s.m = make(map[string]string)
	s.mu.Unlock()
}

// Len returns the number of cached entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
