package request

import "travel-booking/internal/usecase/commands"

type RegisterUserRequest struct {
	Email     string `json:"email" binding:"required,email,max=254"`
	Username  string `json:"username" binding:"required,min=3,max=150"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	FirstName string `json:"first_name" binding:"max=150"`
	LastName  string `json:"last_name" binding:"max=150"`
	Role      string `json:"role" binding:"omitempty,oneof=guest host"`
}

func (r RegisterUserRequest) ToInput() commands.RegisterUserInput {
	return commands.RegisterUserInput{
		Email:     r.Email,
		Username:  r.Username,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Role:      r.Role,
	}
}
