package shared

import (
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/money"
	"travel-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of read-side views.

type BookingSnapshot struct {
	ID             uuid.UUID
	ListingID      uuid.UUID
	ListingName    string
	ListingOwnerID uuid.UUID
	GuestID        uuid.UUID
	GuestEmail     string
	GuestFirstName string
	Stay           booking.DateRange
	TotalPrice     money.Money
	Status         booking.Status
}

func (s *BookingSnapshot) Principal() uuid.UUID { return s.GuestID }

type UserSnapshot struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Role      user.Role
	IsActive  bool
}
