package request

import (
	"travel-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type InitializePaymentRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
	FirstName string    `json:"first_name" binding:"max=150"`
	LastName  string    `json:"last_name" binding:"max=150"`
}

func (r InitializePaymentRequest) ToInput() commands.InitializePaymentInput {
	return commands.InitializePaymentInput{
		BookingID: r.BookingID,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}
