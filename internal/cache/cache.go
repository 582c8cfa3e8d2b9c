// internal/cache/cache.go
// Result cache wrapped around the pure scorers

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	DefaultTTL     = 24 * time.Hour
	DefaultTimeout = 200 * time.Millisecond
)

type Config struct {
	TTL     time.Duration
	Timeout time.Duration
	Enabled bool
}

type Stats struct {
	Backend   string `json:"backend"`
	Enabled   bool   `json:"enabled"`
	Hits      int64  `json:"hits"`
	Misses    int64  `json:"misses"`
	Sets      int64  `json:"sets"`
	Errors    int64  `json:"errors"`
	Evictions int64  `json:"evictions"`
	Entries   int    `json:"entries,omitempty"`
}

// Cache never surfaces backend failures: a failed read is a miss, a failed write is dropped
type Cache struct {
	backend Backend
	ttl     time.Duration
	timeout time.Duration

	disabled atomic.Bool
	hits     atomic.Int64
	misses   atomic.Int64
	sets     atomic.Int64
	failures atomic.Int64

	group singleflight.Group
}

func New(backend Backend, cfg Config) *Cache {
	if backend == nil {
		backend = NoopBackend{}
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	c := &Cache{backend: backend, ttl: cfg.TTL, timeout: cfg.Timeout}
	c.disabled.Store(!cfg.Enabled)
	return c
}

// Get returns the stored bytes for key. Disabled mode and backend errors report a miss.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, ok := c.get(ctx, key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return data, ok
}

func (c *Cache) get(ctx context.Context, key string) ([]byte, bool) {
	if c.disabled.Load() {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	data, err := c.backend.Get(ctx, key)
	switch {
	case err == nil:
		recordOperation(c.backend.Name(), "get", "hit", time.Since(start))
		return data, true
	case errors.Is(err, ErrNotFound):
		recordOperation(c.backend.Name(), "get", "miss", time.Since(start))
	default:
		c.fail("get", err, start)
	}
	return nil, false
}

// Set stores value under key. A ttl of zero uses the configured default.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if c.disabled.Load() {
		return
	}
	if ttl <= 0 {
		ttl = c.ttl
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	if err := c.backend.Set(ctx, key, value, ttl); err != nil {
		c.fail("set", err, start)
		return
	}
	c.sets.Add(1)
	recordOperation(c.backend.Name(), "set", "ok", time.Since(start))
}

// Delete drops the entry stored under key
func (c *Cache) Delete(ctx context.Context, key string) {
	if c.disabled.Load() {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	if err := c.backend.Delete(ctx, key); err != nil {
		c.fail("delete", err, start)
		return
	}
	recordOperation(c.backend.Name(), "delete", "ok", time.Since(start))
}

// Clear drops every entry. The error is informational; the cache stays usable.
func (c *Cache) Clear(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*c.timeout)
	defer cancel()

	start := time.Now()
	if err := c.backend.Clear(ctx); err != nil {
		c.fail("clear", err, start)
		return err
	}
	recordOperation(c.backend.Name(), "clear", "ok", time.Since(start))
	return nil
}

func (c *Cache) Disable() { c.disabled.Store(true) }

func (c *Cache) Enable() { c.disabled.Store(false) }

func (c *Cache) Enabled() bool { return !c.disabled.Load() }

func (c *Cache) Stats() Stats {
	s := Stats{
		Backend: c.backend.Name(),
		Enabled: c.Enabled(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Sets:    c.sets.Load(),
		Errors:  c.failures.Load(),
	}
	if sz, ok := c.backend.(sizer); ok {
		s.Entries = sz.Len()
		s.Evictions = sz.Evictions()
	}
	return s
}

// Reset zeroes the counters
func (c *Cache) Reset() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.sets.Store(0)
	c.failures.Store(0)
}

func (c *Cache) fail(op string, err error, start time.Time) {
	c.failures.Add(1)
	recordOperation(c.backend.Name(), op, "error", time.Since(start))
	log.Printf("⚠️  cache %s %s failed, continuing without cache: %v", c.backend.Name(), op, err)
}

// Memoize returns the cached value for key or computes, stores and returns it.
// Concurrent misses on one key share a single computation. Compute errors are not cached.
func Memoize[T any](ctx context.Context, c *Cache, key string, compute func() (T, error)) (T, error) {
	if c == nil || !c.Enabled() {
		return compute()
	}
	if v, ok := lookup[T](ctx, c, key, c.Get); ok {
		return v, nil
	}

	res, err, _ := c.group.Do(key, func() (interface{}, error) {
		// a flight that finished just before this one joined has already stored the value.
		// This caller was counted as a miss above.
		if v, ok := lookup[T](ctx, c, key, c.get); ok {
			return v, nil
		}
		v, err := compute()
		if err != nil {
			return v, err
		}
		if data, err := json.Marshal(v); err == nil {
			c.Set(ctx, key, data, 0)
		} else {
			log.Printf("⚠️  cache encode %s failed: %v", key, err)
		}
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	v, _ := res.(T)
	return v, nil
}

func lookup[T any](ctx context.Context, c *Cache, key string, get func(context.Context, string) ([]byte, bool)) (T, bool) {
	var v T
	data, ok := get(ctx, key)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(data, &v); err != nil {
		log.Printf("⚠️  cache decode %s failed, recomputing: %v", key, err)
		c.Delete(ctx, key)
		var zero T
		return zero, false
	}
	return v, true
}
