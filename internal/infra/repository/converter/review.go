package converter

import (
	"travel-booking/internal/domain/review"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/pgconv"
)

func ReviewFromRow(row db.Reviews) (*review.Review, error) {
	rating, err := review.NewRating(int(row.Rating))
	if err != nil {
		return nil, errs.Wrapf(err, "review %s", row.ID)
	}
	comment, err := review.NewComment(row.Comment)
	if err != nil {
		return nil, errs.Wrapf(err, "review %s", row.ID)
	}
	return review.ReconstructReview(
		row.ID,
		row.ListingID,
		row.AuthorID,
		rating,
		comment,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ReviewToCreateParams(r *review.Review) db.CreateReviewParams {
	return db.CreateReviewParams{
		ID:        r.ID(),
		ListingID: r.ListingID(),
		AuthorID:  r.AuthorID(),
		Rating:    int16(r.Rating().Value()),
		Comment:   r.Comment().String(),
		CreatedAt: pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReviewToUpdateParams(r *review.Review) db.UpdateReviewParams {
	return db.UpdateReviewParams{
		ID:        r.ID(),
		Rating:    int16(r.Rating().Value()),
		Comment:   r.Comment().String(),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}
