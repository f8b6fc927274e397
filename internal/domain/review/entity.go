package review

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	id        uuid.UUID
	listingID uuid.UUID
	authorID  uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
	updatedAt time.Time
}

func NewReview(listingID, authorID uuid.UUID, rating Rating, comment Comment, now time.Time) *Review {
	return &Review{
		id:        uuid.New(),
		listingID: listingID,
		authorID:  authorID,
		rating:    rating,
		comment:   comment,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructReview(id, listingID, authorID uuid.UUID, rating Rating, comment Comment, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:        id,
		listingID: listingID,
		authorID:  authorID,
		rating:    rating,
		comment:   comment,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Review) Update(rating Rating, comment Comment, now time.Time) {
	r.rating = rating
	r.comment = comment
	r.updatedAt = now
}

func (r *Review) Principal() uuid.UUID { return r.authorID }

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) ListingID() uuid.UUID { return r.listingID }
func (r *Review) AuthorID() uuid.UUID  { return r.authorID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
