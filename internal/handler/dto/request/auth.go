package request

import "travel-booking/internal/usecase/commands"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r LoginRequest) ToInput() commands.LoginInput {
	return commands.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// RefreshRequest is optional; the refresh_token cookie wins when both are present.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
