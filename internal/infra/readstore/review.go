package readstore

import (
	"context"

	"travel-booking/internal/infra"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/queries"
)

type ReviewReadQueries interface {
	ListReviewsByListingSlug(ctx context.Context, db db.DBTX, arg db.ListReviewsByListingSlugParams) ([]db.ReviewWithAuthorRow, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      db.DBTX
}

func NewReviewReadStore(queries ReviewReadQueries, db db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) ListByListingSlug(ctx context.Context, slug string, after *queries.Keyset, limit int32) ([]*queries.ReviewView, error) {
	afterAt, afterID := keysetParams(after)
	rows, err := r.queries.ListReviewsByListingSlug(ctx, r.db, db.ListReviewsByListingSlugParams{
		Slug:           slug,
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by listing", err)
	}

	views := make([]*queries.ReviewView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.ReviewView{
			ID:        row.ID,
			ListingID: row.ListingID,
			Rating:    int(row.Rating),
			Comment:   row.Comment,
			Author: queries.UserSummary{
				ID:        row.AuthorID,
				Username:  row.AuthorUsername,
				FirstName: row.AuthorFirstName,
				LastName:  row.AuthorLastName,
			},
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return views, nil
}
