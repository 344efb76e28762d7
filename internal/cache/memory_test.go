package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/qarenlabs/travelsearch/internal/cache"
	"github.com/qarenlabs/travelsearch/internal/models"
)

// fakeClock advances only when told to.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestMemoryGetSet(t *testing.T) {
	clock := newFakeClock()
	store := cache.NewMemoryWithClock[string](5*time.Minute, clock.Now)

	_, found := store.Get("missing")
	require.False(t, found)

	store.Set("k", "v")
	got, found := store.Get("k")
	require.True(t, found)
	require.Equal(t, "v", got)
}

func TestMemoryLazyExpiry(t *testing.T) {
	clock := newFakeClock()
	store := cache.NewMemoryWithClock[string](5*time.Minute, clock.Now)

	store.Set("k", "v")

	clock.Advance(4 * time.Minute)
	_, found := store.Get("k")
	require.True(t, found)

	// Exactly at the TTL boundary the entry is already stale.
	clock.Advance(time.Minute)
	_, found = store.Get("k")
	require.False(t, found)

	// Stale entries stay in the map until overwritten or swept.
	require.Equal(t, 1, store.Len())

	store.Set("k", "v2")
	got, found := store.Get("k")
	require.True(t, found)
	require.Equal(t, "v2", got)
}

func TestMemorySweep(t *testing.T) {
	clock := newFakeClock()
	store := cache.NewMemoryWithClock[int](5*time.Minute, clock.Now)

	store.Set("old", 1)
	clock.Advance(3 * time.Minute)
	store.Set("fresh", 2)
	clock.Advance(2 * time.Minute)

	require.Equal(t, 1, store.Sweep())
	require.Equal(t, 1, store.Len())

	_, found := store.Get("fresh")
	require.True(t, found)
}

func TestMemoryResultCache(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	c := cache.NewMemoryResultCacheWithClock(5*time.Minute, clock.Now)

	result := &models.SearchResult{
		Type:    models.TripOneWay,
		Flights: []models.FlightLeg{{Airline: "XY", Price: 350}},
	}

	require.NoError(t, c.Set(ctx, "search:abc", result))

	got, found := c.Get(ctx, "search:abc")
	require.True(t, found)
	require.Equal(t, result, got)

	clock.Advance(5 * time.Minute)
	_, found = c.Get(ctx, "search:abc")
	require.False(t, found)
}
