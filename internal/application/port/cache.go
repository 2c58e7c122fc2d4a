// Package port defines the boundaries between use cases and infrastructure.
package port

// Cache is a generic bounded cache for storing key-value pairs.
// Implementations must be safe for concurrent use; entries may be evicted
// at any time.
type Cache[K comparable, V any] interface {
	// Get retrieves a value by key. Returns the value and true if found,
	// or the zero value and false if not found.
	Get(key K) (V, bool)

	// Set stores a value for the given key, possibly evicting older entries.
	Set(key K, value V)

	// Remove deletes a key from the cache.
	Remove(key K)

	// Len returns the number of items currently in the cache.
	Len() int
}
