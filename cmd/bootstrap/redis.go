package bootstrap

import (
	"context"
	"log/slog"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra/db"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis returns nil when no Redis URL is configured or Redis is unreachable;
// the option cache is then skipped.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	if !cfg.Cache.Enabled() {
		logger.Info("option cache disabled: REDIS_URL not set")
		return nil
	}

	client, err := db.NewRedis(context.Background(), cfg.Cache.RedisURL)
	if err != nil {
		logger.Warn("option cache disabled: redis unavailable", "error", err)
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
