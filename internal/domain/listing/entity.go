package listing

import (
	"errors"
	"time"

	"travel-booking/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidName     = errors.New("name must be 1-255 characters")
	ErrInvalidLocation = errors.New("location must be 1-255 characters")
	ErrInvalidPrice    = errors.New("price per night must be greater than zero")
	ErrInvalidSlug     = errors.New("invalid slug")
	ErrListingLocked   = errors.New("listing cannot change while it has confirmed bookings")
)

type Listing struct {
	id            uuid.UUID
	ownerID       uuid.UUID
	slug          Slug
	details       Details
	pricePerNight money.Money
	isAvailable   bool
	createdAt     time.Time
	updatedAt     time.Time
}

func NewListing(ownerID uuid.UUID, slug Slug, details Details, pricePerNight money.Money, now time.Time) (*Listing, error) {
	if !pricePerNight.IsPositive() {
		return nil, ErrInvalidPrice
	}
	return &Listing{
		id:            uuid.New(),
		ownerID:       ownerID,
		slug:          slug,
		details:       details,
		pricePerNight: pricePerNight,
		isAvailable:   true,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructListing(
	id, ownerID uuid.UUID,
	slug Slug,
	details Details,
	pricePerNight money.Money,
	isAvailable bool,
	createdAt, updatedAt time.Time,
) *Listing {
	return &Listing{
		id:            id,
		ownerID:       ownerID,
		slug:          slug,
		details:       details,
		pricePerNight: pricePerNight,
		isAvailable:   isAvailable,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Revise replaces details and price. A locked listing only accepts a revision that changes nothing;
// availability is toggled separately and never locked.
func (l *Listing) Revise(details Details, pricePerNight money.Money, locked bool, now time.Time) error {
	if !pricePerNight.IsPositive() {
		return ErrInvalidPrice
	}
	if locked && (details != l.details || !pricePerNight.Equal(l.pricePerNight)) {
		return ErrListingLocked
	}
	l.details = details
	l.pricePerNight = pricePerNight
	l.updatedAt = now
	return nil
}

func (l *Listing) SetAvailability(available bool, now time.Time) {
	if l.isAvailable == available {
		return
	}
	l.isAvailable = available
	l.updatedAt = now
}

func (l *Listing) Principal() uuid.UUID { return l.ownerID }

func (l *Listing) ID() uuid.UUID              { return l.id }
func (l *Listing) OwnerID() uuid.UUID         { return l.ownerID }
func (l *Listing) Slug() Slug                 { return l.slug }
func (l *Listing) Details() Details           { return l.details }
func (l *Listing) PricePerNight() money.Money { return l.pricePerNight }
func (l *Listing) IsAvailable() bool          { return l.isAvailable }
func (l *Listing) CreatedAt() time.Time       { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time       { return l.updatedAt }
