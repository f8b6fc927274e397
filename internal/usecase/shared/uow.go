package shared

import (
	"context"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/listing"
	"travel-booking/internal/domain/payment"
	"travel-booking/internal/domain/review"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Listings() ListingRepository
	Bookings() BookingRepository
	Payments() PaymentRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	ListingSlugExists(ctx context.Context, slug string) (bool, error)
	ListingHasConfirmedBookings(ctx context.Context, listingID uuid.UUID) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID, at time.Time) error
}

type ListingRepository interface {
	Create(ctx context.Context, tx db.DBTX, l *listing.Listing) error
	Update(ctx context.Context, tx db.DBTX, l *listing.Listing) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	FindBySlug(ctx context.Context, tx db.DBTX, slug listing.Slug) (*listing.Listing, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*listing.Listing, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	UpdateStatus(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	// HoldingStays returns pending and confirmed bookings of the listing overlapping stay.
	HoldingStays(ctx context.Context, tx db.DBTX, listingID uuid.UUID, stay booking.DateRange) ([]booking.ExistingStay, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *payment.Payment) error
	UpdateStatus(ctx context.Context, tx db.DBTX, p *payment.Payment) error
	FindByTxRefForUpdate(ctx context.Context, tx db.DBTX, txRef payment.TxRef) (*payment.Payment, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) error
	Update(ctx context.Context, tx db.DBTX, rev *review.Review) error
	Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) (*review.Review, error)
}

type RatingStatsRepository interface {
	RecalcListingRatingStats(ctx context.Context, tx db.DBTX, listingID uuid.UUID) error
}
