package components

import (
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/handler"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewOptionHandler,
		api.NewCalendarHandler,
	),
	fx.Invoke(handler.NewRouter),
)
