package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reviewColumns = `r.id, r.listing_id, r.author_id, r.rating, r.comment, r.created_at, r.updated_at`

func reviewDest(i *Reviews) []any {
	return []any{
		&i.ID,
		&i.ListingID,
		&i.AuthorID,
		&i.Rating,
		&i.Comment,
		&i.CreatedAt,
		&i.UpdatedAt,
	}
}

func scanReview(row pgx.Row) (Reviews, error) {
	var i Reviews
	err := row.Scan(reviewDest(&i)...)
	return i, err
}

// ReviewWithAuthorRow is a review joined with its author.
type ReviewWithAuthorRow struct {
	Reviews
	AuthorUsername  string
	AuthorFirstName string
	AuthorLastName  string
}

const createReview = `INSERT INTO reviews (id, listing_id, author_id, rating, comment, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

type CreateReviewParams struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	AuthorID  uuid.UUID
	Rating    int16
	Comment   string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) CreateReview(ctx context.Context, db DBTX, arg CreateReviewParams) error {
	_, err := db.Exec(ctx, createReview,
		arg.ID,
		arg.ListingID,
		arg.AuthorID,
		arg.Rating,
		arg.Comment,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateReview = `UPDATE reviews SET rating = $2, comment = $3, updated_at = $4 WHERE id = $1`

type UpdateReviewParams struct {
	ID        uuid.UUID
	Rating    int16
	Comment   string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateReview(ctx context.Context, db DBTX, arg UpdateReviewParams) (int64, error) {
	tag, err := db.Exec(ctx, updateReview, arg.ID, arg.Rating, arg.Comment, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteReview = `DELETE FROM reviews WHERE id = $1`

func (q *Queries) DeleteReview(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteReview, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const findReviewByIDForUpdate = `SELECT ` + reviewColumns + ` FROM reviews r WHERE r.id = $1 FOR UPDATE`

func (q *Queries) FindReviewByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Reviews, error) {
	return scanReview(db.QueryRow(ctx, findReviewByIDForUpdate, id))
}

const listReviewsByListingSlug = `SELECT ` + reviewColumns + `, u.username, u.first_name, u.last_name
FROM reviews r
JOIN listings l ON l.id = r.listing_id
JOIN users u ON u.id = r.author_id
WHERE l.slug = $1
  AND ($2::timestamptz IS NULL OR (r.created_at, r.id) < ($2::timestamptz, $3::uuid))
ORDER BY r.created_at DESC, r.id DESC
LIMIT $4`

type ListReviewsByListingSlugParams struct {
	Slug           string
	AfterCreatedAt pgtype.Timestamptz
	AfterID        uuid.UUID
	Limit          int32
}

func (q *Queries) ListReviewsByListingSlug(ctx context.Context, db DBTX, arg ListReviewsByListingSlugParams) ([]ReviewWithAuthorRow, error) {
	rows, err := db.Query(ctx, listReviewsByListingSlug, arg.Slug, arg.AfterCreatedAt, arg.AfterID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ReviewWithAuthorRow
	for rows.Next() {
		var i ReviewWithAuthorRow
		dest := append(reviewDest(&i.Reviews), &i.AuthorUsername, &i.AuthorFirstName, &i.AuthorLastName)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const recalcListingRatingStats = `INSERT INTO listing_rating_stats (
    listing_id, total_reviews, rating_sum, average_rating,
    rating_1_count, rating_2_count, rating_3_count, rating_4_count, rating_5_count, updated_at
)
SELECT $1::uuid,
       COUNT(*)::int4,
       COALESCE(SUM(rating), 0)::int4,
       ROUND(AVG(rating)::numeric, 2),
       COUNT(*) FILTER (WHERE rating = 1)::int4,
       COUNT(*) FILTER (WHERE rating = 2)::int4,
       COUNT(*) FILTER (WHERE rating = 3)::int4,
       COUNT(*) FILTER (WHERE rating = 4)::int4,
       COUNT(*) FILTER (WHERE rating = 5)::int4,
       now()
FROM reviews
WHERE listing_id = $1
ON CONFLICT (listing_id) DO UPDATE SET
    total_reviews  = EXCLUDED.total_reviews,
    rating_sum     = EXCLUDED.rating_sum,
    average_rating = EXCLUDED.average_rating,
    rating_1_count = EXCLUDED.rating_1_count,
    rating_2_count = EXCLUDED.rating_2_count,
    rating_3_count = EXCLUDED.rating_3_count,
    rating_4_count = EXCLUDED.rating_4_count,
    rating_5_count = EXCLUDED.rating_5_count,
    updated_at     = EXCLUDED.updated_at`

func (q *Queries) RecalcListingRatingStats(ctx context.Context, db DBTX, listingID uuid.UUID) error {
	_, err := db.Exec(ctx, recalcListingRatingStats, listingID)
	return err
}

const findListingRatingStats = `SELECT listing_id, total_reviews, rating_sum, average_rating,
       rating_1_count, rating_2_count, rating_3_count, rating_4_count, rating_5_count, updated_at
FROM listing_rating_stats
WHERE listing_id = $1`

func (q *Queries) FindListingRatingStats(ctx context.Context, db DBTX, listingID uuid.UUID) (ListingRatingStats, error) {
	var i ListingRatingStats
	err := db.QueryRow(ctx, findListingRatingStats, listingID).Scan(
		&i.ListingID,
		&i.TotalReviews,
		&i.RatingSum,
		&i.AverageRating,
		&i.Rating1Count,
		&i.Rating2Count,
		&i.Rating3Count,
		&i.Rating4Count,
		&i.Rating5Count,
		&i.UpdatedAt,
	)
	return i, err
}
