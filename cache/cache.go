// Package cache implements the single-record cache sitting above the coordinator: a
// mutex-guarded expiration map with a background GC goroutine, generic over the cached value
// type. The coordinator caches read results, not on-disk blobs.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/polyglotdb/coordinator/commonerrors"
	"github.com/polyglotdb/coordinator/parallelisation"
)

const (
	defaultGCPeriod = 10 * time.Minute
	defaultTTL      = 2 * time.Minute
)

type entry[V any] struct {
	value      V
	expiration time.Time
}

// Cache is a generic TTL cache with sliding-window expiration on read, matching
// simplecache.Cache.Restore's "frequently used items stay cached" behaviour.
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]*entry[V]
	ttl     time.Duration
	stopGC  context.CancelFunc
	closed  bool
}

// New constructs a Cache with the given ttl/gcPeriod (zero values fall back to the documented
// defaults) and starts its background GC goroutine via parallelisation.SafeSchedule, exactly as
// simplecache.NewSimpleCache does.
func New[V any](ctx context.Context, ttl, gcPeriod time.Duration) *Cache[V] {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if gcPeriod <= 0 {
		gcPeriod = defaultGCPeriod
	}
	gcCtx, stop := context.WithCancel(ctx)
	c := &Cache[V]{
		entries: make(map[string]*entry[V]),
		ttl:     ttl,
		stopGC:  stop,
	}
	parallelisation.SafeSchedule(gcCtx, gcPeriod, 0, c.gc)
	return c
}

func (c *Cache[V]) gc(_ context.Context, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, e := range c.entries {
		if now.After(e.expiration) {
			delete(c.entries, id)
		}
	}
}

func (c *Cache[V]) isClosed() error {
	if c.closed {
		return commonerrors.New(commonerrors.ErrForbidden, "cache is closed")
	}
	return nil
}

// Get returns the cached value for id, refreshing its expiration on hit (sliding window).
func (c *Cache[V]) Get(id string) (V, bool) {
	var zero V
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isClosed() != nil {
		return zero, false
	}
	e, ok := c.entries[id]
	if !ok {
		return zero, false
	}
	e.expiration = time.Now().Add(c.ttl)
	return e.value, true
}

// Put stores or overwrites the cached value for id.
func (c *Cache[V]) Put(id string, value V) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.isClosed(); err != nil {
		return err
	}
	c.entries[id] = &entry[V]{value: value, expiration: time.Now().Add(c.ttl)}
	return nil
}

// Invalidate evicts id if present; a miss is not an error.
func (c *Cache[V]) Invalidate(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
}

// Close stops the background GC goroutine and drops every entry.
func (c *Cache[V]) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.isClosed(); err != nil {
		return err
	}
	c.stopGC()
	c.entries = make(map[string]*entry[V])
	c.closed = true
	return nil
}
