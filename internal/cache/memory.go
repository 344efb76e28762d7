package cache

import (
	"context"
	"sync"
	"time"

	"github.com/qarenlabs/travelsearch/internal/models"
)

// Clock supplies the current time so staleness can be tested without
// sleeping.
type Clock func() time.Time

type entry[V any] struct {
	value      V
	insertedAt time.Time
}

// Memory is an in-process TTL store with lazy expiry: a stale entry reads
// as a miss but stays in the map until overwritten or swept. Writers to
// the same key race last-writer-wins, which is fine for derived,
// re-fetchable data. Growth is unbounded; run Sweep periodically if that
// ever matters.
type Memory[V any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     Clock
	entries map[string]entry[V]
}

func NewMemory[V any](ttl time.Duration) *Memory[V] {
	return NewMemoryWithClock[V](ttl, time.Now)
}

func NewMemoryWithClock[V any](ttl time.Duration, now Clock) *Memory[V] {
	return &Memory[V]{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]entry[V]),
	}
}

func (m *Memory[V]) Get(key string) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero V
	e, ok := m.entries[key]
	if !ok {
		return zero, false
	}
	if m.now().Sub(e.insertedAt) >= m.ttl {
		return zero, false
	}
	return e.value, true
}

func (m *Memory[V]) Set(key string, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry[V]{value: value, insertedAt: m.now()}
}

func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Sweep drops every stale entry and reports how many were removed.
func (m *Memory[V]) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for key, e := range m.entries {
		if now.Sub(e.insertedAt) >= m.ttl {
			delete(m.entries, key)
			removed++
		}
	}
	return removed
}

// MemoryResultCache adapts Memory to the ResultCache interface.
type MemoryResultCache struct {
	store *Memory[*models.SearchResult]
}

func NewMemoryResultCache(ttl time.Duration) *MemoryResultCache {
	return &MemoryResultCache{store: NewMemory[*models.SearchResult](ttl)}
}

func NewMemoryResultCacheWithClock(ttl time.Duration, now Clock) *MemoryResultCache {
	return &MemoryResultCache{store: NewMemoryWithClock[*models.SearchResult](ttl, now)}
}

func (c *MemoryResultCache) Get(ctx context.Context, key string) (*models.SearchResult, bool) {
	return c.store.Get(key)
}

func (c *MemoryResultCache) Set(ctx context.Context, key string, result *models.SearchResult) error {
	c.store.Set(key, result)
	return nil
}

func (c *MemoryResultCache) Close() error {
	return nil
}
