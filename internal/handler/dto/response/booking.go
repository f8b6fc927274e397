package response

import (
	"time"

	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingListingResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Location      string    `json:"location"`
	PricePerNight string    `json:"price_per_night"`
}

// StartDate and EndDate are calendar dates (YYYY-MM-DD).
type BookingResponse struct {
	ID             uuid.UUID              `json:"id"`
	Listing        BookingListingResponse `json:"listing" copier:"-"`
	Guest          queries.UserSummary    `json:"guest"`
	StartDate      string                 `json:"start_date"`
	EndDate        string                 `json:"end_date"`
	NumberOfNights int                    `json:"number_of_nights"`
	NumberOfGuests int32                  `json:"number_of_guests"`
	TotalPrice     string                 `json:"total_price"`
	Status         string                 `json:"status"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) BookingResponse {
	var resp BookingResponse
	mustCopy(&resp, v)
	mustCopy(&resp.Listing, &v.Listing)
	return resp
}

func FromBookingViews(vs []*queries.BookingView) []BookingResponse {
	return mapAll(vs, FromBookingView)
}
