// README: Optional Redis read-through cache for resolved image URLs.
package images

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "images:url:"

// Cache stores query→URL mappings in Redis. A nil Cache is a no-op, so the
// resolver works unchanged without Redis configured. Cache errors are never
// surfaced; a broken cache degrades to uncached lookups.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, query string) (string, bool) {
	if c == nil || c.rdb == nil {
		return "", false
	}
	v, err := c.rdb.Get(ctx, cacheKeyPrefix+query).Result()
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

func (c *Cache) Put(ctx context.Context, query, url string) {
	if c == nil || c.rdb == nil {
		return
	}
	_ = c.rdb.Set(ctx, cacheKeyPrefix+query, url, c.ttl).Err()
}
