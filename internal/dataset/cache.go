package dataset

import (
	"sync"
)

type cacheKey struct {
	n    int
	seed int64
}

// Cache memoizes generated datasets per (n, seed). Generation is deterministic,
// so a hit returns a value-equal dataset to what a fresh Generate call would
// produce. Reads take the read lock; a miss recomputes under the write lock
// with a double check so concurrent callers generate at most once.
type Cache struct {
	mu   sync.RWMutex
	data map[cacheKey]Dataset
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[cacheKey]Dataset),
	}
}

// Get returns the memoized dataset for (n, seed), generating and storing it on
// a miss. Callers must treat the returned dataset as read-only.
func (c *Cache) Get(n int, seed int64) (Dataset, error) {
	key := cacheKey{n: n, seed: seed}

	c.mu.RLock()
	ds, ok := c.data[key]
	c.mu.RUnlock()
	if ok {
		return ds, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if ds, ok := c.data[key]; ok {
		return ds, nil
	}

	ds, err := Generate(n, seed)
	if err != nil {
		return Dataset{}, err
	}
	c.data[key] = ds
	return ds, nil
}

// Invalidate drops the memoized dataset for (n, seed), if present.
func (c *Cache) Invalidate(n int, seed int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, cacheKey{n: n, seed: seed})
}

// Purge drops every memoized dataset.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[cacheKey]Dataset)
}
