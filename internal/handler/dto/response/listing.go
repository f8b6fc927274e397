package response

import (
	"time"

	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingResponse struct {
	ID            uuid.UUID           `json:"id"`
	Name          string              `json:"name"`
	Slug          string              `json:"slug"`
	Description   string              `json:"description"`
	Location      string              `json:"location"`
	PricePerNight string              `json:"price_per_night"`
	IsAvailable   bool                `json:"is_available"`
	Owner         queries.UserSummary `json:"owner"`
	AverageRating *string             `json:"average_rating" copier:"-"`
	TotalReviews  int32               `json:"total_reviews"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func FromListingView(v *queries.ListingView) ListingResponse {
	var resp ListingResponse
	mustCopy(&resp, v)
	resp.AverageRating = formatRating(v.AverageRating)
	return resp
}

func FromListingViews(vs []*queries.ListingView) []ListingResponse {
	return mapAll(vs, FromListingView)
}

type ListingDetailResponse struct {
	ListingResponse
	Reviews          []ReviewResponse `json:"reviews"`
	NextReviewCursor string           `json:"next_review_cursor,omitempty"`
}

func FromListingDetailView(v *queries.ListingDetailView) ListingDetailResponse {
	resp := ListingDetailResponse{
		ListingResponse: FromListingView(&v.ListingView),
		Reviews:         FromReviewViews(v.Reviews),
	}
	if v.NextReview != nil {
		resp.NextReviewCursor = v.NextReview.After
	}
	return resp
}

type ListingCreatedResponse struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
}
