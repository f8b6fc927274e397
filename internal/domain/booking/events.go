package booking

import (
	"time"

	"github.com/google/uuid"
)

type EventHeader struct {
	ID          string    `json:"id"`
	PublishedAt time.Time `json:"published_at"`
}

func NewEventHeader(now time.Time) EventHeader {
	return EventHeader{ID: uuid.NewString(), PublishedAt: now}
}

// BookingCreated carries what the confirmation email needs so consumers
// do not read the database.
type BookingCreated struct {
	Header         EventHeader `json:"header"`
	BookingID      uuid.UUID   `json:"booking_id"`
	ListingID      uuid.UUID   `json:"listing_id"`
	ListingName    string      `json:"listing_name"`
	GuestID        uuid.UUID   `json:"guest_id"`
	GuestEmail     string      `json:"guest_email"`
	GuestFirstName string      `json:"guest_first_name"`
	StartDate      string      `json:"start_date"`
	EndDate        string      `json:"end_date"`
	TotalPrice     string      `json:"total_price"`
}

func (BookingCreated) EventName() string { return "BookingCreated" }

type BookingConfirmed struct {
	Header         EventHeader `json:"header"`
	BookingID      uuid.UUID   `json:"booking_id"`
	TxRef          string      `json:"tx_ref"`
	Amount         string      `json:"amount"`
	ListingName    string      `json:"listing_name"`
	GuestEmail     string      `json:"guest_email"`
	GuestFirstName string      `json:"guest_first_name"`
	StartDate      string      `json:"start_date"`
	EndDate        string      `json:"end_date"`
}

func (BookingConfirmed) EventName() string { return "BookingConfirmed" }

type BookingCancelled struct {
	Header    EventHeader `json:"header"`
	BookingID uuid.UUID   `json:"booking_id"`
	ListingID uuid.UUID   `json:"listing_id"`
	GuestID   uuid.UUID   `json:"guest_id"`
}

func (BookingCancelled) EventName() string { return "BookingCancelled" }
