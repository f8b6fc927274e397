package components

import (
	"travel-booking/internal/infra/db"
	"travel-booking/internal/infra/readstore"
	"travel-booking/internal/infra/uow"
	"travel-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are created per transaction by the unit of work.
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
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Listing
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ListingReadQueries)),
		),
		fx.Annotate(
			readstore.NewListingReadStore,
			fx.As(new(queries.ListingReadStore)),
		),
		// Review
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReviewReadQueries)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Payment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PaymentReadQueries)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *db.Queries {
	return db.New()
}

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
