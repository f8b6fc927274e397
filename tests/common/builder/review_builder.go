//go:build unit || e2e

package builder

import (
	"time"

	"travel-booking/internal/domain/review"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	AuthorID  uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now()
	return &ReviewBuilder{
		ID:        uuid.New(),
		ListingID: uuid.New(),
		AuthorID:  uuid.New(),
		Rating:    5,
		Comment:   "Excellent stay!",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*review.Review, error) {
	rating, err := review.NewRating(r.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := review.NewComment(r.Comment)
	if err != nil {
		return nil, err
	}
	return review.ReconstructReview(r.ID, r.ListingID, r.AuthorID, rating, comment, r.CreatedAt, r.UpdatedAt), nil
}

func (r *ReviewBuilder) BuildInfra() db.Reviews {
	return db.Reviews{
		ID:        r.ID,
		ListingID: r.ListingID,
		AuthorID:  r.AuthorID,
		Rating:    int16(r.Rating),
		Comment:   r.Comment,
		CreatedAt: pgconv.TimeToPgtype(r.CreatedAt),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt),
	}
}

func (r *ReviewBuilder) BuildRow() db.ReviewWithAuthorRow {
	return db.ReviewWithAuthorRow{
		Reviews:         r.BuildInfra(),
		AuthorUsername:  "reviewer",
		AuthorFirstName: "Review",
		AuthorLastName:  "Er",
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:        r.ID,
		ListingID: r.ListingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Author: queries.UserSummary{
			ID:        r.AuthorID,
			Username:  "reviewer",
			FirstName: "Review",
			LastName:  "Er",
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithListingID(listingID uuid.UUID) *ReviewBuilder {
	r.ListingID = listingID
	return r
}

func (r *ReviewBuilder) WithAuthorID(authorID uuid.UUID) *ReviewBuilder {
	r.AuthorID = authorID
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}
