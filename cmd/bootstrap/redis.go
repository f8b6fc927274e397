package bootstrap

import (
	"context"
	"log/slog"

	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis returns a nil client when REDIS_URL is empty.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (redis.UniversalClient, error) {
	if cfg.Redis.URL == "" {
		logger.Info("redis disabled, using in-process fallbacks")
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse redis url")
	}
	opts.PoolSize = cfg.Redis.PoolSize
	opts.MinIdleConns = cfg.Redis.MinIdleConns
	opts.MaxRetries = cfg.Redis.MaxRetries

	client := redis.NewClient(opts)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errs.Wrap(err, "failed to ping redis")
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
