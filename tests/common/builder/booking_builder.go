//go:build unit || e2e

package builder

import (
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/money"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/queries"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID             uuid.UUID
	ListingID      uuid.UUID
	ListingOwnerID uuid.UUID
	ListingName    string
	GuestID        uuid.UUID
	GuestEmail     string
	StartDate      string
	EndDate        string
	NumberOfGuests int
	TotalPrice     string
	Status         booking.Status
	CreatedAt      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:             uuid.New(),
		ListingID:      uuid.New(),
		ListingOwnerID: uuid.New(),
		ListingName:    "Lakeside Cabin",
		GuestID:        uuid.New(),
		GuestEmail:     "guest@example.com",
		StartDate:      "2024-06-01",
		EndDate:        "2024-06-04",
		NumberOfGuests: 2,
		TotalPrice:     "300.00",
		Status:         booking.StatusPending,
		CreatedAt:      time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) stay() booking.DateRange {
	stay, err := booking.ParseDateRange(b.StartDate, b.EndDate)
	if err != nil {
		panic(err)
	}
	return stay
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID, b.ListingID, b.GuestID,
		b.stay(), b.NumberOfGuests,
		money.MustParse(b.TotalPrice),
		b.Status,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildInfra() db.Bookings {
	stay := b.stay()
	return db.Bookings{
		ID:             b.ID,
		ListingID:      b.ListingID,
		GuestID:        b.GuestID,
		StartDate:      pgconv.DateToPgtype(stay.Start()),
		EndDate:        pgconv.DateToPgtype(stay.End()),
		NumberOfGuests: int32(b.NumberOfGuests),
		TotalPrice:     pgconv.DecimalToNumeric(decimal.RequireFromString(b.TotalPrice)),
		Status:         b.Status.String(),
		CreatedAt:      pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:      pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *BookingBuilder) BuildDetailRow() db.BookingDetailRow {
	return db.BookingDetailRow{
		Bookings:             b.BuildInfra(),
		ListingName:          b.ListingName,
		ListingSlug:          "lakeside-cabin",
		ListingLocation:      "Bishoftu",
		ListingPricePerNight: pgconv.DecimalToNumeric(decimal.RequireFromString("100.00")),
		ListingOwnerID:       b.ListingOwnerID,
		GuestUsername:        "guest",
		GuestEmail:           b.GuestEmail,
		GuestFirstName:       "Guest",
		GuestLastName:        "User",
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:             b.ID,
		ListingID:      b.ListingID,
		ListingName:    b.ListingName,
		ListingOwnerID: b.ListingOwnerID,
		GuestID:        b.GuestID,
		GuestEmail:     b.GuestEmail,
		GuestFirstName: "Guest",
		Stay:           b.stay(),
		TotalPrice:     money.MustParse(b.TotalPrice),
		Status:         b.Status,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	stay := b.stay()
	return &queries.BookingView{
		ID: b.ID,
		Listing: queries.BookingListingView{
			ID:            b.ListingID,
			Name:          b.ListingName,
			Slug:          "lakeside-cabin",
			Location:      "Bishoftu",
			PricePerNight: decimal.RequireFromString("100.00"),
			OwnerID:       b.ListingOwnerID,
		},
		Guest: queries.UserSummary{
			ID:        b.GuestID,
			Username:  "guest",
			FirstName: "Guest",
			LastName:  "User",
		},
		StartDate:      stay.Start(),
		EndDate:        stay.End(),
		NumberOfNights: stay.Nights(),
		NumberOfGuests: int32(b.NumberOfGuests),
		TotalPrice:     decimal.RequireFromString(b.TotalPrice),
		Status:         b.Status.String(),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithListingID(id uuid.UUID) *BookingBuilder {
	b.ListingID = id
	return b
}

func (b *BookingBuilder) WithGuestID(id uuid.UUID) *BookingBuilder {
	b.GuestID = id
	return b
}

func (b *BookingBuilder) WithStay(start, end string) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}
