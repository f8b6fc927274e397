package components

import (
	"travel-booking/internal/handler"
	"travel-booking/internal/handler/api"
	"travel-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewListingHandler,
		api.NewReviewHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	users *api.UserHandler,
	listings *api.ListingHandler,
	reviews *api.ReviewHandler,
	bookings *api.BookingHandler,
	payments *api.PaymentHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		User:    users,
		Listing: listings,
		Review:  reviews,
		Booking: bookings,
		Payment: payments,
	}
}
