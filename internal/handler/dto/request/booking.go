package request

import (
	"travel-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ListingID      uuid.UUID `json:"listing_id" binding:"required"`
	StartDate      string    `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate        string    `json:"end_date" binding:"required,datetime=2006-01-02"`
	NumberOfGuests int       `json:"number_of_guests" binding:"required,min=1,max=50"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ListingID:      r.ListingID,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		NumberOfGuests: r.NumberOfGuests,
	}
}
