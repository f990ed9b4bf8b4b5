package cache

import "sync"

// Cache is a thread-safe LRU cache holding at most Capacity entries.
// Inserting into a full cache evicts the least recently used entry.
//
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*node[K, V]
	order    list[K, V]
	capacity int
	onEvict  func(K, V)

	hits      uint64
	misses    uint64
	evictions uint64
}

// New creates a cache for up to capacity entries. A capacity below one
// is treated as one.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:  make(map[K]*node[K, V]),
		capacity: max(capacity, 1),
	}
}

// OnEvict registers fn to be called, under the cache lock, for every
// entry removed by eviction or Clear.
func (c *Cache[K, V]) OnEvict(fn func(K, V)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}

// GetOrCreate returns the cached value or stores the result of create.
// create runs under the lock, so concurrent callers never create the
// same key twice.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		c.hits++
		c.order.moveToFront(n)
		return n.value
	}
	c.misses++
	value := create()
	c.insert(key, value)
	return value
}

// insert adds a new entry and evicts down to capacity. Caller must hold
// c.mu and key must not be present.
func (c *Cache[K, V]) insert(key K, value V) {
	n := &node[K, V]{key: key, value: value}
	c.entries[key] = n
	c.order.pushFront(n)
	for c.order.len > c.capacity {
		old := c.order.removeOldest()
		delete(c.entries, old.key)
		c.evictions++
		if c.onEvict != nil {
			c.onEvict(old.key, old.value)
		}
	}
}

// Clear removes all entries. Statistics are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for n := c.order.removeOldest(); n != nil; n = c.order.removeOldest() {
		if c.onEvict != nil {
			c.onEvict(n.key, n.value)
		}
	}
	clear(c.entries)
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the maximum number of entries.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Len:       len(c.entries),
		Capacity:  c.capacity,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the maximum number of entries.
	Capacity int
	// Hits and Misses count lookups through GetOrCreate.
	Hits   uint64
	Misses uint64
	// HitRate is Hits / (Hits + Misses), or 0 before the first lookup.
	HitRate float64
	// Evictions counts entries dropped to stay within Capacity.
	Evictions uint64
}
