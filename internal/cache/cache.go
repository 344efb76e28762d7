package cache

import (
	"context"

	"github.com/qarenlabs/travelsearch/internal/models"
)

// ResultCache stores finished search results keyed by request fingerprint.
// A Get miss means absent or stale; callers refetch and overwrite via Set.
type ResultCache interface {
	Get(ctx context.Context, key string) (*models.SearchResult, bool)
	Set(ctx context.Context, key string, result *models.SearchResult) error
	Close() error
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, key string) (*models.SearchResult, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, key string, result *models.SearchResult) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}
