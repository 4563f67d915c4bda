package cache

// NullStore is a no-op Store that never retains anything.
// Useful for testing or when memoization should be disabled.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() *NullStore { return &NullStore{} }

// Get always returns a miss.
func (s *NullStore) Get(key string) (string, bool) { return "", false }

// Set does nothing.
func (s *NullStore) Set(key, value string) {}

// Clear does nothing.
func (s *NullStore) Clear() {}

// Len always returns zero.
func (s *NullStore) Len() int { return 0 }

// Ensure NullStore implements Store.
var _ Store = (*NullStore)(nil)
