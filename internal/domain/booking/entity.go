package booking

import (
	"time"

	"travel-booking/internal/domain/money"
	"travel-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type Services struct {
	Clock           clock.Clock
	Validator       *Validator
	PriceCalculator PriceCalculator
}

func NewServices(clk clock.Clock, loc *time.Location) *Services {
	return &Services{
		Clock:           clk,
		Validator:       NewValidator(clk, loc),
		PriceCalculator: NewNightlyRateCalculator(),
	}
}

type Booking struct {
	id             uuid.UUID
	listingID      uuid.UUID
	guestID        uuid.UUID
	stay           DateRange
	numberOfGuests int
	totalPrice     money.Money
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

// NewBooking validates the stay against the listing and existing bookings,
// prices it, and returns a pending booking.
func NewBooking(
	services *Services,
	listing ListingSpec,
	guestID uuid.UUID,
	stay DateRange,
	numberOfGuests int,
	existing []ExistingStay,
) (*Booking, error) {
	if err := services.Validator.CheckDates(stay); err != nil {
		return nil, err
	}
	if numberOfGuests < 1 {
		return nil, ErrInvalidGuests
	}
	if err := services.Validator.Validate(listing, stay, existing); err != nil {
		return nil, err
	}

	total, err := services.PriceCalculator.Total(listing.PricePerNight, stay)
	if err != nil {
		return nil, err
	}

	now := services.Clock.Now()
	return &Booking{
		id:             uuid.New(),
		listingID:      listing.ID,
		guestID:        guestID,
		stay:           stay,
		numberOfGuests: numberOfGuests,
		totalPrice:     total,
		status:         StatusPending,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructBooking(
	id, listingID, guestID uuid.UUID,
	stay DateRange,
	numberOfGuests int,
	totalPrice money.Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		listingID:      listingID,
		guestID:        guestID,
		stay:           stay,
		numberOfGuests: numberOfGuests,
		totalPrice:     totalPrice,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Confirm moves pending to confirmed. Any other source state is rejected.
func (b *Booking) Confirm(now time.Time) error {
	if b.status != StatusPending {
		return ErrInvalidTransition
	}
	b.status = StatusConfirmed
	b.updatedAt = now
	return nil
}

// Cancel moves pending or confirmed to cancelled.
func (b *Booking) Cancel(now time.Time) error {
	if !b.status.HoldsDates() {
		return ErrInvalidTransition
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

func (b *Booking) Principal() uuid.UUID { return b.guestID }

func (b *Booking) NumberOfNights() int { return b.stay.Nights() }

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) ListingID() uuid.UUID    { return b.listingID }
func (b *Booking) GuestID() uuid.UUID      { return b.guestID }
func (b *Booking) Stay() DateRange         { return b.stay }
func (b *Booking) NumberOfGuests() int     { return b.numberOfGuests }
func (b *Booking) TotalPrice() money.Money { return b.totalPrice }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
