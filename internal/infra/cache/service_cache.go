package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"grooming-salon/internal/pkg/errs"
	"grooming-salon/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const serviceListKey = "salon:services"

// ServiceCache keeps the whole service list under one key. Catalog writes
// delete the key; the TTL bounds staleness when a delete fails.
type ServiceCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

func NewServiceCache(client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *ServiceCache {
	return &ServiceCache{client: client, ttl: ttl, logger: logger}
}

func (c *ServiceCache) Get(ctx context.Context) ([]queries.ServiceView, bool, error) {
	raw, err := c.client.Get(ctx, serviceListKey).Result()
	if errs.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrap(err, "failed to read service cache")
	}

	var services []queries.ServiceView
	if err := json.Unmarshal([]byte(raw), &services); err != nil {
		// a corrupt entry is treated as a miss and overwritten by the next Set
		c.logger.WarnContext(ctx, "discarding unreadable service cache entry", slog.Any("error", err))
		return nil, false, nil
	}
	return services, true, nil
}

func (c *ServiceCache) Set(ctx context.Context, services []queries.ServiceView) error {
	raw, err := json.Marshal(services)
	if err != nil {
		return errs.Wrap(err, "failed to encode service cache")
	}
	if err := c.client.Set(ctx, serviceListKey, string(raw), c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write service cache")
	}
	return nil
}

func (c *ServiceCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, serviceListKey).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate service cache")
	}
	return nil
}

// NoopServiceCache is used when no redis address is configured.
type NoopServiceCache struct{}

func (NoopServiceCache) Get(context.Context) ([]queries.ServiceView, bool, error) {
	return nil, false, nil
}

func (NoopServiceCache) Set(context.Context, []queries.ServiceView) error { return nil }

func (NoopServiceCache) Invalidate(context.Context) error { return nil }
