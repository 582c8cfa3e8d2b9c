package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingBackend errors on every call
type failingBackend struct{ calls atomic.Int64 }

func (f *failingBackend) Name() string { return "failing" }

func (f *failingBackend) Get(context.Context, string) ([]byte, error) {
	f.calls.Add(1)
	return nil, errors.New("connection refused")
}

func (f *failingBackend) Set(context.Context, string, []byte, time.Duration) error {
	f.calls.Add(1)
	return errors.New("quota exceeded")
}

func (f *failingBackend) Delete(context.Context, string) error { return errors.New("down") }

func (f *failingBackend) Clear(context.Context) error { return errors.New("down") }

// slowBackend blocks until the caller's deadline
type slowBackend struct{ NoopBackend }

func (slowBackend) Get(ctx context.Context, _ string) ([]byte, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// lateBackend misses its first read while a concurrent flight stores the value
type lateBackend struct {
	*MemoryBackend
	value []byte
	reads atomic.Int64
}

func (l *lateBackend) Get(ctx context.Context, key string) ([]byte, error) {
	if l.reads.Add(1) == 1 {
		_ = l.MemoryBackend.Set(ctx, key, l.value, 0)
		return nil, ErrNotFound
	}
	return l.MemoryBackend.Get(ctx, key)
}

func newCache(t *testing.T, size int) *Cache {
	t.Helper()
	return New(newMemory(t, size), Config{Enabled: true, TTL: time.Hour})
}

func TestCacheRoundTripAndStats(t *testing.T) {
	ctx := context.Background()
	c := newCache(t, 8)

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	c.Set(ctx, "k", []byte("v"), 0)
	got, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	s := c.Stats()
	assert.Equal(t, "memory", s.Backend)
	assert.True(t, s.Enabled)
	assert.Equal(t, int64(1), s.Hits)
	assert.Equal(t, int64(1), s.Misses)
	assert.Equal(t, int64(1), s.Sets)
	assert.Equal(t, 1, s.Entries)

	require.NoError(t, c.Clear(ctx))
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok)

	c.Reset()
	assert.Zero(t, c.Stats().Hits)
}

func TestCacheDisabled(t *testing.T) {
	ctx := context.Background()
	c := newCache(t, 8)
	c.Set(ctx, "k", []byte("v"), 0)

	c.Disable()
	assert.False(t, c.Enabled())
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	c.Set(ctx, "other", []byte("v"), 0)

	c.Enable()
	_, ok = c.Get(ctx, "k")
	assert.True(t, ok)
	_, ok = c.Get(ctx, "other")
	assert.False(t, ok, "writes while disabled are dropped")
}

func TestCacheBackendFailureIsAMiss(t *testing.T) {
	ctx := context.Background()
	b := &failingBackend{}
	c := New(b, Config{Enabled: true})

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	c.Set(ctx, "k", []byte("v"), 0)
	assert.Error(t, c.Clear(ctx))

	s := c.Stats()
	assert.Equal(t, int64(3), s.Errors)
	assert.Equal(t, int64(1), s.Misses)
	assert.Equal(t, int64(2), b.calls.Load())
}

func TestCacheTimeout(t *testing.T) {
	c := New(slowBackend{}, Config{Enabled: true, Timeout: 20 * time.Millisecond})
	start := time.Now()
	_, ok := c.Get(context.Background(), "k")
	assert.False(t, ok)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, int64(1), c.Stats().Errors)
}

func TestCacheUnreachableRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	c := New(NewRedisBackend(client, ""), Config{Enabled: true, Timeout: 100 * time.Millisecond})
	ctx := context.Background()

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	c.Set(ctx, "k", []byte("v"), 0)

	got, err := Memoize(ctx, c, "k", func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Equal(t, "redis", c.Stats().Backend)
}

type payload struct {
	Score int      `json:"score"`
	Tags  []string `json:"tags"`
}

func TestMemoizeCachesValue(t *testing.T) {
	ctx := context.Background()
	c := newCache(t, 8)
	calls := 0
	compute := func() (*payload, error) {
		calls++
		return &payload{Score: 88, Tags: []string{"a"}}, nil
	}

	first, err := Memoize(ctx, c, "p", compute)
	require.NoError(t, err)
	second, err := Memoize(ctx, c, "p", compute)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), c.Stats().Hits)
}

func TestMemoizeDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	c := newCache(t, 8)
	boom := errors.New("boom")

	_, err := Memoize(ctx, c, "e", func() (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)

	v, err := Memoize(ctx, c, "e", func() (int, error) { return 3, nil })
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestMemoizeDisabledAlwaysComputes(t *testing.T) {
	ctx := context.Background()
	c := newCache(t, 8)
	c.Disable()
	calls := 0
	for i := 0; i < 3; i++ {
		_, err := Memoize(ctx, c, "x", func() (int, error) { calls++; return calls, nil })
		require.NoError(t, err)
	}
	assert.Equal(t, 3, calls)

	v, err := Memoize(ctx, nil, "x", func() (int, error) { return 9, nil })
	require.NoError(t, err)
	assert.Equal(t, 9, v)
}

func TestMemoizeSharesConcurrentMisses(t *testing.T) {
	ctx := context.Background()
	c := newCache(t, 8)
	var calls atomic.Int64
	release := make(chan struct{})

	var wg sync.WaitGroup
	results := make([]int, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := Memoize(ctx, c, "shared", func() (int, error) {
				calls.Add(1)
				<-release
				return 42, nil
			})
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int64(1), calls.Load())
	for _, v := range results {
		assert.Equal(t, 42, v)
	}
}

func TestMemoizeCountsJoinedFlightOnce(t *testing.T) {
	ctx := context.Background()
	b := &lateBackend{MemoryBackend: newMemory(t, 8), value: []byte("7")}
	c := New(b, Config{Enabled: true})

	calls := 0
	compute := func() (int, error) { calls++; return 0, nil }

	v, err := Memoize(ctx, c, "k", compute)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Zero(t, calls)
	s := c.Stats()
	assert.Equal(t, int64(0), s.Hits)
	assert.Equal(t, int64(1), s.Misses)

	_, err = Memoize(ctx, c, "k", compute)
	require.NoError(t, err)
	s = c.Stats()
	assert.Equal(t, int64(1), s.Hits)
	assert.Equal(t, int64(1), s.Misses)
}

func TestMemoizeDropsUndecodableEntry(t *testing.T) {
	ctx := context.Background()
	m := newMemory(t, 8)
	c := New(m, Config{Enabled: true})
	c.Set(ctx, "p", []byte("not json"), 0)

	boom := errors.New("boom")
	_, err := Memoize(ctx, c, "p", func() (*payload, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	_, err = m.Get(ctx, "p")
	assert.ErrorIs(t, err, ErrNotFound)

	c.Set(ctx, "p", []byte("not json"), 0)
	v, err := Memoize(ctx, c, "p", func() (*payload, error) { return &payload{Score: 5}, nil })
	require.NoError(t, err)
	assert.Equal(t, 5, v.Score)
	got, err := m.Get(ctx, "p")
	require.NoError(t, err)
	assert.JSONEq(t, `{"score": 5, "tags": null}`, string(got))
}

func TestCacheDelete(t *testing.T) {
	ctx := context.Background()
	c := newCache(t, 8)
	c.Set(ctx, "k", []byte("v"), 0)
	c.Delete(ctx, "k")
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)

	f := New(&failingBackend{}, Config{Enabled: true})
	f.Delete(ctx, "k")
	assert.Equal(t, int64(1), f.Stats().Errors)
}
