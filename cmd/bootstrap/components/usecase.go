package components

import (
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/domain/booking"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/clock"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/usecase/commands"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewSumPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	booking.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewOptionQueries,
		queries.NewCalendarQueries,
	),
)
