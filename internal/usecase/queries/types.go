package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthorizedUserView carries what authentication needs about a user.
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// UserSummary is the public face of a user embedded in other views.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type ListingView struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug"`
	Description   string           `json:"description"`
	Location      string           `json:"location"`
	PricePerNight decimal.Decimal  `json:"price_per_night"`
	IsAvailable   bool             `json:"is_available"`
	Owner         UserSummary      `json:"owner"`
	AverageRating *decimal.Decimal `json:"average_rating"`
	TotalReviews  int32            `json:"total_reviews"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type ListingDetailView struct {
	ListingView
	Reviews    []*ReviewView `json:"reviews"`
	NextReview *Cursor       `json:"next_review,omitempty"`
}

type BookingListingView struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Location      string          `json:"location"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	OwnerID       uuid.UUID       `json:"owner_id"`
}

type BookingView struct {
	ID             uuid.UUID          `json:"id"`
	Listing        BookingListingView `json:"listing"`
	Guest          UserSummary        `json:"guest"`
	StartDate      time.Time          `json:"start_date"`
	EndDate        time.Time          `json:"end_date"`
	NumberOfNights int                `json:"number_of_nights"`
	NumberOfGuests int32              `json:"number_of_guests"`
	TotalPrice     decimal.Decimal    `json:"total_price"`
	Status         string             `json:"status"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func (b *BookingView) Principal() uuid.UUID { return b.Guest.ID }

type PaymentView struct {
	ID        uuid.UUID       `json:"id"`
	BookingID uuid.UUID       `json:"booking_id"`
	TxRef     string          `json:"tx_ref"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Email     string          `json:"email"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

type ReviewView struct {
	ID        uuid.UUID   `json:"id"`
	ListingID uuid.UUID   `json:"listing_id"`
	Rating    int         `json:"rating"`
	Comment   string      `json:"comment"`
	Author    UserSummary `json:"author"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
