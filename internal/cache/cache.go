package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache is a best-effort TTL'd JSON cache on redis. A zero-value or
// unconfigured Cache silently misses, so callers never branch on
// whether redis is wired.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(addr, password string, db int, ttl time.Duration) *Cache {
	if addr == "" || ttl <= 0 {
		return &Cache{}
	}

	return &Cache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		ttl: ttl,
	}
}

func (c *Cache) Enabled() bool {
	return c.rdb != nil
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if !c.Enabled() {
		return nil, false
	}

	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *Cache) Set(ctx context.Context, key string, value any) {
	if !c.Enabled() {
		return
	}

	b, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key, b, c.ttl)
}
