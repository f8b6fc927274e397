package request

import (
	"encoding/json"

	"travel-booking/internal/usecase/commands"
)

// Prices accept both JSON numbers and numeric strings ("120.50").
type CreateListingRequest struct {
	Name          string      `json:"name" binding:"required,max=255"`
	Description   string      `json:"description" binding:"max=5000"`
	Location      string      `json:"location" binding:"required,max=255"`
	PricePerNight json.Number `json:"price_per_night" binding:"required,numeric"`
}

func (r CreateListingRequest) ToInput() commands.CreateListingInput {
	return commands.CreateListingInput{
		Name:          r.Name,
		Description:   r.Description,
		Location:      r.Location,
		PricePerNight: r.PricePerNight.String(),
	}
}

type UpdateListingRequest struct {
	Name          *string      `json:"name" binding:"omitempty,min=1,max=255"`
	Description   *string      `json:"description" binding:"omitempty,max=5000"`
	Location      *string      `json:"location" binding:"omitempty,min=1,max=255"`
	PricePerNight *json.Number `json:"price_per_night" binding:"omitempty,numeric"`
}

func (r UpdateListingRequest) ToInput() commands.UpdateListingInput {
	in := commands.UpdateListingInput{
		Name:        r.Name,
		Description: r.Description,
		Location:    r.Location,
	}
	if r.PricePerNight != nil {
		price := r.PricePerNight.String()
		in.PricePerNight = &price
	}
	return in
}

type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}
