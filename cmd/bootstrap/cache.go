package bootstrap

import (
	"context"

	"hotel-frontdesk/internal/infra/cache"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/config"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
		NewBookingCache,
	),
	fx.Invoke(bindCacheInvalidation),
)

// NewRedisClient returns nil unless CACHE_DRIVER=redis. The rate limiter
// shares the client when there is one.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (redis.UniversalClient, error) {
	if cfg.Cache.Driver != config.CacheDriverRedis {
		return nil, nil
	}
	client, err := cache.NewRedisClient(context.Background(), cfg.Cache.RedisURL)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

// NewBookingCache returns one guarded cache shared by queries, commands and
// the change feed binding.
func NewBookingCache(cfg config.Config, client redis.UniversalClient, clk clock.Clock) queries.BookingCache {
	switch cfg.Cache.Driver {
	case config.CacheDriverRedis:
		return queries.NewGuardedCache(cache.NewRedisBookingCache(client, cfg.Cache.Prefix, cfg.Cache.TTL))
	case config.CacheDriverMemory:
		return queries.NewGuardedCache(cache.NewMemoryBookingCache(cfg.Cache.TTL, clk))
	default:
		return cache.Noop{}
	}
}

func bindCacheInvalidation(lc fx.Lifecycle, feed shared.ChangeFeed, c queries.BookingCache) {
	unsubscribe := queries.BindCacheInvalidation(feed, c)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			unsubscribe()
			return nil
		},
	})
}
