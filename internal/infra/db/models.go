package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID           uuid.UUID
	Email        string
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLogin    pgtype.Timestamptz
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type Listings struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	Slug          string
	Description   string
	Location      string
	PricePerNight pgtype.Numeric
	IsAvailable   bool
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type Bookings struct {
	ID             uuid.UUID
	ListingID      uuid.UUID
	GuestID        uuid.UUID
	StartDate      pgtype.Date
	EndDate        pgtype.Date
	NumberOfGuests int32
	TotalPrice     pgtype.Numeric
	Status         string
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

type Payments struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	TxRef     string
	Amount    pgtype.Numeric
	Currency  string
	Email     string
	Status    string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type Reviews struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	AuthorID  uuid.UUID
	Rating    int16
	Comment   string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type ListingRatingStats struct {
	ListingID     uuid.UUID
	TotalReviews  int32
	RatingSum     int32
	AverageRating pgtype.Numeric
	Rating1Count  int32
	Rating2Count  int32
	Rating3Count  int32
	Rating4Count  int32
	Rating5Count  int32
	UpdatedAt     pgtype.Timestamptz
}
