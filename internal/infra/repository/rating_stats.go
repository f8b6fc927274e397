package repository

import (
	"context"

	"travel-booking/internal/infra"
	"travel-booking/internal/infra/db"

	"github.com/google/uuid"
)

type RatingStatsQueries interface {
	RecalcListingRatingStats(ctx context.Context, db db.DBTX, listingID uuid.UUID) error
}

type RatingStatsRepository struct {
	q  RatingStatsQueries
	db db.DBTX
}

func NewRatingStatsRepository(q RatingStatsQueries, db db.DBTX) *RatingStatsRepository {
	return &RatingStatsRepository{q: q, db: db}
}

func (r *RatingStatsRepository) RecalcListingRatingStats(ctx context.Context, tx db.DBTX, listingID uuid.UUID) error {
	if err := r.q.RecalcListingRatingStats(ctx, tx, listingID); err != nil {
		return infra.WrapRepoErr("failed to recalc listing rating stats", err)
	}
	return nil
}
