package directory

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const existenceKeyPrefix = "dir:cpf:"

// CachedClient decorates a registry client with a Redis-backed existence
// cache. Only positive lookups are cached: a missing key means "ask the
// registry", never "the customer does not exist". The cache is purely an
// optimization; every failure degrades to the wrapped client.
type CachedClient struct {
	inner  *Client
	redis  *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedClient wraps a registry client with an existence cache.
func NewCachedClient(inner *Client, rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedClient {
	return &CachedClient{inner: inner, redis: rdb, ttl: ttl, logger: logger}
}

// Lookup answers from the cache when it can and falls through to the
// registry otherwise. Found answers are written back with a TTL.
func (c *CachedClient) Lookup(ctx context.Context, cpf string) (LookupStatus, error) {
	key := existenceKeyPrefix + cpf
	_, err := c.redis.Get(ctx, key).Result()
	if err == nil {
		return StatusFound, nil
	}
	if !errors.Is(err, redis.Nil) {
		c.logger.WarnContext(ctx, "existence cache read failed", "error", err)
	}

	status, err := c.inner.Lookup(ctx, cpf)
	if err == nil && status == StatusFound {
		c.remember(ctx, key)
	}
	return status, err
}

// Create registers the customer and, on success, records its existence so
// the immediately following requests skip the registry round trip.
func (c *CachedClient) Create(ctx context.Context, customer Customer) error {
	if err := c.inner.Create(ctx, customer); err != nil {
		return err
	}
	c.remember(ctx, existenceKeyPrefix+customer.CPF)
	return nil
}

func (c *CachedClient) remember(ctx context.Context, key string) {
	// Key existence is the whole payload.
	if err := c.redis.Set(ctx, key, "1", c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "existence cache write failed", "error", err)
	}
}
