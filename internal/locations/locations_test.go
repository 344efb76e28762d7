package locations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/qarenlabs/travelsearch/internal/cache"
	"github.com/qarenlabs/travelsearch/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *atomic.Int64) {
	t.Helper()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(cache.NewMemory[[]models.Location](24 * time.Hour))
	c.baseURL = srv.URL
	return c, &calls
}

const placesBody = `[
	{"code": "RUH", "name": "Riyadh", "country_name": "Saudi Arabia"},
	{"code": "", "name": "Nowhere", "country_name": "Nowhere"},
	{"code": "JED", "name": "Jeddah", "country_name": "Saudi Arabia"},
	{"code": "XYZ", "name": "", "country_name": "Saudi Arabia"}
]`

func TestSuggestShortQueryShortCircuits(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(placesBody))
	})

	require.Empty(t, c.Suggest(context.Background(), "r"))
	require.Empty(t, c.Suggest(context.Background(), "  "))
	require.Zero(t, calls.Load())
}

func TestSuggestMapsAndSkipsIncompleteEntries(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "riy", r.URL.Query().Get("term"))
		require.Equal(t, "en", r.URL.Query().Get("locale"))
		w.Write([]byte(placesBody))
	})

	results := c.Suggest(context.Background(), "riy")
	require.Equal(t, []models.Location{
		{City: "Riyadh", IATA: "RUH", Slug: "riyadh-saudi-arabia"},
		{City: "Jeddah", IATA: "JED", Slug: "jeddah-saudi-arabia"},
	}, results)
}

func TestSuggestSecondCallServedFromCache(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(placesBody))
	})

	first := c.Suggest(context.Background(), "Riy")
	second := c.Suggest(context.Background(), "riy") // case differs, same key
	require.Equal(t, first, second)
	require.EqualValues(t, 1, calls.Load())
}

func TestSuggestUpstreamFailureYieldsEmptyList(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	results := c.Suggest(context.Background(), "riy")
	require.NotNil(t, results)
	require.Empty(t, results)
}

func TestSlugify(t *testing.T) {
	require.Equal(t, "riyadh", Slugify("Riyadh"))
	require.Equal(t, "saudi-arabia", Slugify("Saudi Arabia"))
	require.Equal(t, "sao-paulo", Slugify("Sao  Paulo!"))
}
