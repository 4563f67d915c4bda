// Package cache provides the size-result cache shared by annotation passes.
//
// Resolved sizes are memoized for the lifetime of the process: package
// sizes rarely change within an editing session, so responsiveness is
// favored over freshness. There is no eviction policy, no expiry, and no
// size bound; [Store.Clear] is the only reset path.
//
// Stores are constructed once at startup and threaded explicitly through
// every component that needs them, so tests can supply isolated instances.
package cache

// Store memoizes resolved size display strings by lookup key.
//
// Keys are either "name@version" for registry lookups or a normalized
// absolute installation path for directory-size lookups. Implementations
// must be safe under concurrent resolution of distinct keys; concurrent
// resolution of the same key may issue duplicate underlying lookups,
// which is acceptable since results are idempotent and convergent.
type Store interface {
	// Get returns the cached display string for key, if present.
	Get(key string) (string, bool)
	// Set stores the display string for key, overwriting any prior value.
	Set(key, value string)
	// Clear removes all entries.
	Clear()
	// Len returns the number of cached entries.
	Len() int
}
