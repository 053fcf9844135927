// Package redissvc keeps the most recent product list in redis so
// repeated list requests skip the store. Every mutation invalidates the
// cached list.
package redissvc

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tarunbommali/ekart/internal/models"
)

const listKey = "products:list"

// ListCache caches the full product list under a single key with a TTL.
// A nil *ListCache is valid and disables caching entirely.
type ListCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewListCache(rdb *redis.Client, ttl time.Duration) *ListCache {
	return &ListCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached list, or ok=false on a miss or any redis error.
func (c *ListCache) Get(ctx context.Context) ([]models.Product, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, listKey).Bytes()
	if err != nil {
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, false
	}
	return products, true
}

// Set stores the list; marshal or redis errors are swallowed, the cache
// is best-effort.
func (c *ListCache) Set(ctx context.Context, products []models.Product) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, listKey, raw, c.ttl)
}

// Invalidate drops the cached list.
func (c *ListCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, listKey)
}
