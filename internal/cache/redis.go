// Package cache holds the Redis-backed profile cache.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	poolSize      = 10
	minIdleConns  = 2
	poolTimeout   = 4 * time.Second
	connIdleLimit = 5 * time.Minute
	dialTimeout   = 5 * time.Second
)

// Cache wraps a Redis client. Profile reads go through it; a nil Cache
// is never constructed, callers that want caching off pass nil at the
// service layer instead.
type Cache struct {
	client *redis.Client
}

// New connects to Redis at redisURL and verifies the connection before
// returning.
func New(ctx context.Context, redisURL string) (*Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opt.PoolSize = poolSize
	opt.MinIdleConns = minIdleConns
	opt.PoolTimeout = poolTimeout
	opt.ConnMaxIdleTime = connIdleLimit
	opt.DialTimeout = dialTimeout

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Cache{client: client}, nil
}

// Ping checks connectivity, feeding the readiness probe.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the client's connection pool.
func (c *Cache) Close() error {
	return c.client.Close()
}

// Client exposes the raw client for test helpers.
func (c *Cache) Client() *redis.Client {
	return c.client
}
