package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemory(t *testing.T, size int) *MemoryBackend {
	t.Helper()
	m, err := NewMemoryBackend(size)
	require.NoError(t, err)
	return m
}

func TestMemoryBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := newMemory(t, 4)

	require.NoError(t, m.Set(ctx, "k", []byte("v"), 0))
	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	_, err = m.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Delete(ctx, "k"))
	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryBackendCopiesValue(t *testing.T) {
	ctx := context.Background()
	m := newMemory(t, 4)
	buf := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", buf, 0))
	buf[0] = 'z'

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}

func TestMemoryBackendExpiry(t *testing.T) {
	ctx := context.Background()
	m := newMemory(t, 4)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "k", []byte("v"), time.Minute))
	now = now.Add(59 * time.Second)
	_, err := m.Get(ctx, "k")
	require.NoError(t, err)

	now = now.Add(time.Second)
	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, m.Len())
}

func TestMemoryBackendExpiryKeepsRewrittenEntry(t *testing.T) {
	ctx := context.Background()
	m := newMemory(t, 4)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	require.NoError(t, m.Set(ctx, "k", []byte("old"), time.Minute))

	// the entry is rewritten while Get is deciding that the old one expired
	now = now.Add(time.Hour)
	rewritten := false
	m.now = func() time.Time {
		if !rewritten {
			rewritten = true
			require.NoError(t, m.Set(ctx, "k", []byte("new"), 0))
		}
		return now
	}

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}

func TestMemoryBackendEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	m := newMemory(t, 2)

	require.NoError(t, m.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, m.Set(ctx, "b", []byte("2"), 0))
	_, err := m.Get(ctx, "a")
	require.NoError(t, err)
	require.NoError(t, m.Set(ctx, "c", []byte("3"), 0))

	_, err = m.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.Get(ctx, "a")
	assert.NoError(t, err)
	_, err = m.Get(ctx, "c")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), m.Evictions())

	require.NoError(t, m.Clear(ctx))
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, int64(1), m.Evictions())
}
