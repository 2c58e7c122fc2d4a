// Package cache provides the volatile in-memory tier for resolved favicons.
package cache

import (
	"container/list"
	"sync"
)

// DefaultCapacity bounds the memory tier when no capacity is configured.
const DefaultCapacity = 256

// LRU is a thread-safe least recently used cache. It implements port.Cache[K, V].
//
// Capacity is a soft upper bound: Set evicts the coldest entry once it is
// reached, and Shrink lets the host drop entries early under memory pressure.
type LRU[K comparable, V any] struct {
	capacity  int
	onEvict   func(K, V)
	mu        sync.Mutex
	items     map[K]*list.Element
	order     *list.List // Front = most recent, Back = least recent
	evictions uint64
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Option configures an LRU.
type Option[K comparable, V any] func(*LRU[K, V])

// WithEvictCallback registers fn to run (under the cache lock) for every
// entry dropped by capacity or Shrink. Remove and Purge do not call it.
func WithEvictCallback[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *LRU[K, V]) {
		c.onEvict = fn
	}
}

// NewLRU creates a cache holding at most capacity entries.
// A zero or negative capacity uses DefaultCapacity.
func NewLRU[K comparable, V any](capacity int, opts ...Option[K, V]) *LRU[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element),
		order:    list.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get retrieves a value by key and marks it as recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Set adds or replaces a value and marks it as recently used.
func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*entry[K, V]).value = value
		return
	}

	for c.order.Len() >= c.capacity {
		c.evictOldest()
	}

	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
}

// Remove deletes a key from the cache. Missing keys are a no-op.
func (c *LRU[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.Remove(elem)
		delete(c.items, key)
	}
}

// Len returns the number of items currently in the cache.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Shrink evicts least recently used entries until at most keep remain and
// returns how many were dropped.
func (c *LRU[K, V]) Shrink(keep int) int {
	if keep < 0 {
		keep = 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	dropped := 0
	for c.order.Len() > keep {
		c.evictOldest()
		dropped++
	}
	return dropped
}

// Purge drops every entry.
func (c *LRU[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*list.Element)
	c.order.Init()
}

// Evictions returns the number of entries dropped by capacity or Shrink.
func (c *LRU[K, V]) Evictions() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictions
}

// evictOldest must be called with mu held.
func (c *LRU[K, V]) evictOldest() {
	oldest := c.order.Back()
	if oldest == nil {
		return
	}
	c.order.Remove(oldest)
	e := oldest.Value.(*entry[K, V])
	delete(c.items, e.key)
	c.evictions++
	if c.onEvict != nil {
		c.onEvict(e.key, e.value)
	}
}
