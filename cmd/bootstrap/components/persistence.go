package components

import (
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra/cache"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra/query"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra/readstore"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/infra/uow"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/config"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Option
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OptionViewQueries)),
		),
		readstore.NewOptionReadStore,
		NewOptionStore,
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}

// NewOptionStore puts the Redis cache in front of the option read store when a client is available.
func NewOptionStore(store *readstore.OptionReadStore, client *redis.Client, cfg config.Config) queries.OptionReadStore {
	if client == nil {
		return store
	}
	return cache.NewOptionCache(store, client, cfg.Cache.KeyPrefix, cfg.Cache.OptionsTTL)
}
