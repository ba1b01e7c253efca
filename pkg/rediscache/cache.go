// Package rediscache is an optional Redis cache holding raw resolved lyrics
// text keyed by the normalized title|artist composite. It is best-effort:
// every failure degrades to a miss and resolution proceeds live.
package rediscache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"vietsong-backend/pkg/vnstring"
)

var logger = log.With().Str("component", "rediscache").Logger()

const keyPrefix = "vietsong:lyrics:"

// Cache wraps a Redis client with the lyrics-specific key scheme and TTL.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to Redis and verifies the connection with a ping.
func New(addr, password string, db int, ttl time.Duration) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, err
	}

	logger.Info().Str("addr", addr).Dur("ttl", ttl).Msg("Redis lyrics cache connected")
	return &Cache{rdb: rdb, ttl: ttl}, nil
}

// Get returns the cached lyrics text for (title, artist), or "" on miss.
// Errors are logged and reported as misses.
func (c *Cache) Get(ctx context.Context, title, artist string) string {
	key := keyPrefix + vnstring.Key(title, artist)
	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return ""
	}
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Redis get failed, treating as miss")
		return ""
	}
	return val
}

// Store caches lyrics text for (title, artist) with the configured TTL.
func (c *Cache) Store(ctx context.Context, title, artist, text string) {
	if text == "" {
		return
	}
	key := keyPrefix + vnstring.Key(title, artist)
	if err := c.rdb.Set(ctx, key, text, c.ttl).Err(); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Redis set failed")
	}
}

// Close releases the underlying connection pool.
func (c *Cache) Close() error {
	return c.rdb.Close()
}
