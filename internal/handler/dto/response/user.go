package response

import (
	"time"

	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// UserResponse is what other users may see about an account.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUserView(v *queries.UserView) UserResponse {
	var resp UserResponse
	mustCopy(&resp, v)
	return resp
}

func FromUserViews(vs []*queries.UserView) []UserResponse {
	return mapAll(vs, FromUserView)
}

type RegisterResponse struct {
	ID uuid.UUID `json:"id"`
}
