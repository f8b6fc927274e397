package booking

import (
	"time"

	"travel-booking/internal/domain/money"
	"travel-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

// ListingSpec is what the validator and calculator need to know about a listing.
type ListingSpec struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	PricePerNight money.Money
	IsAvailable   bool
}

// ExistingStay is a booking already recorded against the same listing.
type ExistingStay struct {
	BookingID uuid.UUID
	Stay      DateRange
	Status    Status
}

type Validator struct {
	clock    clock.Clock
	location *time.Location
}

func NewValidator(clk clock.Clock, loc *time.Location) *Validator {
	if loc == nil {
		loc = time.UTC
	}
	return &Validator{clock: clk, location: loc}
}

// CheckDates rejects a past start before an empty or inverted range.
func (v *Validator) CheckDates(stay DateRange) error {
	if stay.Start().Before(clock.Today(v.clock, v.location)) {
		return ErrPastDate
	}
	return stay.Validate()
}

// Validate checks past date, then availability, then overlap. The first failure wins.
func (v *Validator) Validate(listing ListingSpec, stay DateRange, existing []ExistingStay) error {
	if stay.Start().Before(clock.Today(v.clock, v.location)) {
		return ErrPastDate
	}
	if !listing.IsAvailable {
		return ErrListingUnavailable
	}
	for _, e := range existing {
		if e.Status.HoldsDates() && e.Stay.Overlaps(stay) {
			return ErrDateConflict
		}
	}
	return nil
}
