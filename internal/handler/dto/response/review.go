package response

import (
	"time"

	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID        uuid.UUID           `json:"id"`
	Rating    int                 `json:"rating"`
	Comment   string              `json:"comment"`
	Author    queries.UserSummary `json:"author"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func FromReviewView(v *queries.ReviewView) ReviewResponse {
	var resp ReviewResponse
	mustCopy(&resp, v)
	return resp
}

func FromReviewViews(vs []*queries.ReviewView) []ReviewResponse {
	return mapAll(vs, FromReviewView)
}

type ReviewCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
