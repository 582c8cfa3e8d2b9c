// internal/cache/backend.go
// Storage backends behind the result cache

package cache

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("cache entry not found")

// Backend stores opaque values by key. A ttl of zero keeps the entry until evicted.
// Get returns ErrNotFound for a missing or expired entry.
type Backend interface {
	Name() string
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// sizer is implemented by backends that can report their occupancy
type sizer interface {
	Len() int
	Evictions() int64
}

// NoopBackend never stores anything
type NoopBackend struct{}

func (NoopBackend) Name() string { return "none" }

func (NoopBackend) Get(context.Context, string) ([]byte, error) { return nil, ErrNotFound }

func (NoopBackend) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NoopBackend) Delete(context.Context, string) error { return nil }

func (NoopBackend) Clear(context.Context) error { return nil }
