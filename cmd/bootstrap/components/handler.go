package components

import (
	"hotel-availability/internal/handler"
	"hotel-availability/internal/handler/api"
	"hotel-availability/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomTypeHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, roomTypes *api.RoomTypeHandler, avail *api.AvailabilityHandler, bookings *api.BookingHandler) handler.Handlers {
			return handler.Handlers{
				Auth:         auth,
				RoomType:     roomTypes,
				Availability: avail,
				Booking:      bookings,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
