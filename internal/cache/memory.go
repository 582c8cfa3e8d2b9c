// internal/cache/memory.go
package cache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultMaxEntries = 1024

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
	gen       uint64
}

// MemoryBackend is a size-bounded in-process LRU with per-entry expiry
type MemoryBackend struct {
	entries   *lru.Cache[string, memoryEntry]
	evictions atomic.Int64
	now       func() time.Time

	// mu orders writes against expiry removal; gen tells a rewritten entry from the one that expired
	mu  sync.Mutex
	gen uint64
}

func NewMemoryBackend(maxEntries int) (*MemoryBackend, error) {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	entries, err := lru.New[string, memoryEntry](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to create LRU: %w", err)
	}
	return &MemoryBackend{entries: entries, now: time.Now}, nil
}

func (m *MemoryBackend) Name() string { return "memory" }

func (m *MemoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	entry, ok := m.entries.Get(key)
	if !ok {
		return nil, ErrNotFound
	}
	if !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt) {
		m.mu.Lock()
		if cur, ok := m.entries.Peek(key); ok && cur.gen == entry.gen {
			m.entries.Remove(key)
		}
		m.mu.Unlock()
		return nil, ErrNotFound
	}
	return entry.value, nil
}

func (m *MemoryBackend) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	entry := memoryEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gen++
	entry.gen = m.gen
	if evicted := m.entries.Add(key, entry); evicted {
		m.evictions.Add(1)
	}
	return nil
}

func (m *MemoryBackend) Delete(_ context.Context, key string) error {
	m.entries.Remove(key)
	return nil
}

func (m *MemoryBackend) Clear(context.Context) error {
	m.entries.Purge()
	return nil
}

func (m *MemoryBackend) Len() int { return m.entries.Len() }

// Evictions counts entries dropped for capacity
func (m *MemoryBackend) Evictions() int64 { return m.evictions.Load() }
