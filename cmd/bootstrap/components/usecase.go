package components

import (
	"temple-booking/internal/pkg/clock"
	"temple-booking/internal/usecase/commands"
	"temple-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewResourceUseCase,
		commands.NewReservationUseCase,
		commands.NewSevaBookingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewResourceQueries,
		queries.NewReservationQueries,
		queries.NewCalendarQueries,
		queries.NewSevaQueries,
		queries.NewSevaBookingQueries,
		queries.NewAggregationQueries,
	),
)
