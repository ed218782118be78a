// Package cache provides a keyed value cache with a time to live and a
// non blocking in-flight guard per key.
package cache

import (
	"context"
	"sync"
	"time"
)

// entry is the cached state of one key.
type entry[T any] struct {
	value    T
	loadedAt time.Time
	loaded   bool
	loading  bool
	gen      uint64
}

// Cache keeps one value per key. A value is fresh when a load for its key
// completed less than ttl ago and no invalidation happened since.
//
// Only one load per key runs at a time. A Get issued while a load of the
// same key is running does not wait and does not start another load: it
// returns whatever is currently held for that key, possibly the zero value.
// Loads of different keys are independent.
type Cache[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*entry[T]
}

// New returns an empty cache. A nil now uses time.Now.
func New[T any](ttl time.Duration, now func() time.Time) *Cache[T] {
	if now == nil {
		now = time.Now
	}
	return &Cache[T]{ttl: ttl, now: now, entries: make(map[string]*entry[T])}
}

// Loader fetches the value for a key from the source of truth.
type Loader[T any] func(ctx context.Context) (T, error)

// Get returns the value for key, calling load when the cached value is
// missing or stale. A failed load returns the error together with the
// previously cached value and leaves the entry unchanged.
func (c *Cache[T]) Get(ctx context.Context, key string, load Loader[T]) (T, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry[T]{}
		c.entries[key] = e
	}
	if c.fresh(e) {
		v := e.value
		c.mu.Unlock()
		return v, nil
	}
	if e.loading {
		v := e.value
		c.mu.Unlock()
		return v, nil
	}
	e.loading = true
	gen := e.gen
	c.mu.Unlock()

	v, err := load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	e.loading = false
	if err != nil {
		return e.value, err
	}
	e.value = v
	// An invalidation during the load means v may predate the write that
	// caused it. Keep v as the current value but force the next Get to
	// load again.
	if gen == e.gen {
		e.loaded = true
		e.loadedAt = c.now()
	} else {
		e.loaded = false
		e.loadedAt = time.Time{}
	}
	return v, nil
}

// Invalidate marks every key stale so the next Get of each loads again.
// Entries with a load in flight keep their value for Gets that overlap
// that load; the others are dropped.
func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		if !e.loading {
			delete(c.entries, key)
			continue
		}
		e.loaded = false
		e.loadedAt = time.Time{}
		e.gen++
	}
}

// peek returns the cached value for key and whether it is fresh.
func (c *Cache[T]) peek(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		var zero T
		return zero, false
	}
	return e.value, c.fresh(e)
}

// loading reports whether a load of key is running.
func (c *Cache[T]) loading(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	return ok && e.loading
}

func (c *Cache[T]) fresh(e *entry[T]) bool {
	return e.loaded && c.now().Sub(e.loadedAt) < c.ttl
}
