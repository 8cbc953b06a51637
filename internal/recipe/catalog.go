package recipe

import (
	"context"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/RecipeBook_Go/internal/domain"
	"github.com/osse101/RecipeBook_Go/internal/event"
	"github.com/osse101/RecipeBook_Go/internal/logger"
	"github.com/osse101/RecipeBook_Go/internal/metrics"
)

type catalogEntry struct {
	recipes []domain.Recipe
	ids     []string
}

// catalogCache holds anonymous catalog reads until a recipe mutation purges it
type catalogCache struct {
	lru *expirable.LRU[string, catalogEntry]
}

func newCatalogCache(size int, ttl time.Duration) *catalogCache {
	if size <= 0 {
		size = DefaultCatalogCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCatalogCacheTTL
	}
	return &catalogCache{lru: expirable.NewLRU[string, catalogEntry](size, nil, ttl)}
}

func (c *catalogCache) get(key string) (catalogEntry, bool) {
	entry, ok := c.lru.Get(key)
	if ok {
		metrics.CatalogCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
	} else {
		metrics.CatalogCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()
	}
	return entry, ok
}

func (c *catalogCache) add(key string, entry catalogEntry) {
	c.lru.Add(key, entry)
}

func (c *catalogCache) purge() {
	c.lru.Purge()
}

// register purges the cache on recipe events. Creating a private recipe
// cannot change the catalog and is skipped.
func (c *catalogCache) register(bus event.Bus) {
	purge := func(ctx context.Context, evt event.Event) error {
		if evt.Type == event.RecipeCreated {
			if p, err := evt.Record(); err == nil && !p.IsPublic {
				return nil
			}
		}
		c.purge()
		logger.FromContext(ctx).Debug(LogMsgCatalogPurged, "event_type", evt.Type)
		return nil
	}
	bus.Subscribe(event.RecipeCreated, purge)
	bus.Subscribe(event.RecipeUpdated, purge)
	bus.Subscribe(event.RecipeDeleted, purge)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultPublicLimit
	}
	if limit > MaxPublicLimit {
		return MaxPublicLimit
	}
	return limit
}

func limitKey(prefix string, limit int) string {
	return prefix + strconv.Itoa(limit)
}
