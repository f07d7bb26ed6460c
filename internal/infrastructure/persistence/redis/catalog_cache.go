package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avolkov/storefront-service/internal/domain/catalog"
	"github.com/avolkov/storefront-service/internal/infrastructure/monitoring"
	"github.com/avolkov/storefront-service/internal/pkg/logger"
)

const catalogKey = "catalog:items"

// CatalogCache holds the wholesale item list under a short TTL, invalidated
// whenever an item is created.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

func NewCatalogCache(conn *Connection, ttl time.Duration, log *logger.Logger) *CatalogCache {
	return &CatalogCache{
		client: conn.GetClient(),
		ttl:    ttl,
		log:    log,
	}
}

func (c *CatalogCache) GetItems(ctx context.Context) ([]catalog.Item, bool, error) {
	data, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			monitoring.RecordCatalogCacheMiss()
			return nil, false, nil
		}
		return nil, false, err
	}

	var items []catalog.Item
	if err := json.Unmarshal(data, &items); err != nil {
		c.log.Warn("Dropping undecodable catalog cache entry", "error", err.Error())
		monitoring.RecordCatalogCacheMiss()
		return nil, false, c.client.Del(ctx, catalogKey).Err()
	}

	monitoring.RecordCatalogCacheHit()
	return items, true, nil
}

func (c *CatalogCache) SetItems(ctx context.Context, items []catalog.Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, catalogKey, data, c.ttl).Err()
}

func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey).Err()
}
