package components

import (
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/password"
	"travel-booking/internal/usecase"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config, clk clock.Clock) *booking.Services {
		return booking.NewServices(clk, cfg.Booking.Location())
	},
	fx.Annotate(
		func() *password.Hasher { return password.NewHasher(password.DefaultCost) },
		fx.As(new(commands.PasswordHasher)),
	),
	func(cfg config.Config) commands.PaymentSettings {
		return commands.PaymentSettings{
			Currency:        cfg.Chapa.Currency,
			CallbackBaseURL: cfg.Chapa.CallbackBaseURL,
			ReturnURL:       cfg.Chapa.ReturnURL,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewListingCommands,
		commands.NewReviewCommands,
		commands.NewBookingCommands,
		commands.NewPaymentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewListingQueries,
		queries.NewReviewQueries,
		queries.NewBookingQueries,
		queries.NewPaymentQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
