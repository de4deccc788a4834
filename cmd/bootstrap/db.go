package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra/db"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the booking database; the pool is closed when the app stops.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("postgres %s:%s/%s: %w", cfg.DB.Host, cfg.DB.Port, cfg.DB.DBName, err)
	}

	logger.Info("connected to postgres",
		"host", cfg.DB.Host,
		"database", cfg.DB.DBName,
		"max_conns", pool.Config().MaxConns,
		"timezone", cfg.DB.TimeZone)

	lc.Append(fx.StopHook(cleanup))
	return pool, nil
}
