package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

const lookupTTL = 5 * time.Minute

// Keys for the booking-form reference listings.
const (
	KeyServices = "lookup:servicos"
	KeyBarbers  = "lookup:barbeiros"
)

// Cache is a small read-through cache for reference-data lookups. It is
// optional: a nil client turns every operation into a no-op so the service
// runs without redis.
type Cache struct {
	rdb *redis.Client
	log zerolog.Logger
}

func New(addr string, log zerolog.Logger) *Cache {
	if addr == "" {
		return &Cache{log: log}
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", addr).Msg("redis unreachable, lookup cache disabled")
		return &Cache{log: log}
	}

	return &Cache{rdb: rdb, log: log}
}

func (c *Cache) Enabled() bool { return c != nil && c.rdb != nil }

// Get returns the cached payload for key, or nil on miss or error.
func (c *Cache) Get(ctx context.Context, key string) []byte {
	if !c.Enabled() {
		return nil
	}
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return nil
	}
	return b
}

func (c *Cache) Set(ctx context.Context, key string, payload []byte) {
	if !c.Enabled() {
		return
	}
	if err := c.rdb.Set(ctx, key, payload, lookupTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// Invalidate drops keys after a write to the underlying table.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}
