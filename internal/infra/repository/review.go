package repository

import (
	"context"

	"travel-booking/internal/domain/review"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db db.DBTX, arg db.CreateReviewParams) error
	UpdateReview(ctx context.Context, db db.DBTX, arg db.UpdateReviewParams) (int64, error)
	DeleteReview(ctx context.Context, db db.DBTX, id uuid.UUID) (int64, error)
	FindReviewByIDForUpdate(ctx context.Context, db db.DBTX, id uuid.UUID) (db.Reviews, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
	db      db.DBTX
}

func NewReviewRepository(queries ReviewWriteQueries, db db.DBTX) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) error {
	if err := r.queries.CreateReview(ctx, tx, converter.ReviewToCreateParams(rev)); err != nil {
		return infra.WrapRepoErr("failed to create review", err)
	}
	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, tx db.DBTX, rev *review.Review) error {
	n, err := r.queries.UpdateReview(ctx, tx, converter.ReviewToUpdateParams(rev))
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error {
	n, err := r.queries.DeleteReview(ctx, tx, reviewID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) (*review.Review, error) {
	row, err := r.queries.FindReviewByIDForUpdate(ctx, tx, reviewID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock review", err)
	}
	rev, err := converter.ReviewFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt review row", err)
	}
	return rev, nil
}
