package components

import (
	"temple-booking/internal/infra/cache"
	"temple-booking/internal/infra/readstore"
	sqlc "temple-booking/internal/infra/sqlc/generated"
	"temple-booking/internal/infra/uow"
	"temple-booking/internal/pkg/config"
	"temple-booking/internal/usecase/queries"
	"temple-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Resource
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ResourceReadQueries)),
		),
		fx.Annotate(
			readstore.NewResourceReadStore,
			fx.As(new(queries.ResourceReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationReadQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Calendar
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CalendarReadQueries)),
		),
		fx.Annotate(
			readstore.NewCalendarReadStore,
			fx.As(new(queries.CalendarReadStore)),
		),
		// Seva catalog, optionally behind redis
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SevaReadQueries)),
		),
		readstore.NewSevaReadStore,
		NewSevaReadStore,
		// Seva booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SevaBookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewSevaBookingReadStore,
			fx.As(new(queries.SevaBookingReadStore)),
		),
		// Aggregation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AggregationReadQueries)),
		),
		fx.Annotate(
			readstore.NewAggregationReadStore,
			fx.As(new(queries.AggregationReadStore)),
		),
	),
)

// Write repositories and snapshot read stores are created per transaction by the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork), new(queries.ReadOnlyUnit)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewSevaReadStore(store *readstore.SevaReadStore, client *redis.Client, cfg config.Config) queries.SevaReadStore {
	if client == nil {
		return store
	}
	return cache.NewCatalogCache(store, client, cfg.Cache.Prefix, cfg.Cache.TTL)
}
