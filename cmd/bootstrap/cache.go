package bootstrap

import (
	"context"
	"log/slog"

	"temple-booking/internal/infra/cache"
	"temple-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis returns a nil client when CACHE_ENABLED is false.
func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, err := cache.NewRedisClient(cfg.Cache)
	if err != nil {
		return nil, err
	}
	if client == nil {
		slog.Info("Catalog cache disabled")
		return nil, nil
	}

	slog.Info("Catalog cache enabled", "addr", cfg.Cache.Addr, "ttl", cfg.Cache.TTL)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}
