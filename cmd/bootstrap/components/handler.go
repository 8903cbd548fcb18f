package components

import (
	"temple-booking/internal/handler"
	"temple-booking/internal/handler/api"
	"temple-booking/internal/handler/validation"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewResourceHandler,
		api.NewReservationHandler,
		api.NewCalendarHandler,
		api.NewSevaHandler,
		api.NewSevaBookingHandler,
		api.NewAggregationHandler,
		NewHandlers,
	),
	fx.Invoke(
		validation.Register,
		handler.NewRouter,
	),
)

type handlerParams struct {
	fx.In

	Resource    *api.ResourceHandler
	Reservation *api.ReservationHandler
	Calendar    *api.CalendarHandler
	Seva        *api.SevaHandler
	SevaBooking *api.SevaBookingHandler
	Aggregation *api.AggregationHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Resource:    p.Resource,
		Reservation: p.Reservation,
		Calendar:    p.Calendar,
		Seva:        p.Seva,
		SevaBooking: p.SevaBooking,
		Aggregation: p.Aggregation,
	}
}
