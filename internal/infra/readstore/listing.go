package readstore

import (
	"context"

	"travel-booking/internal/infra"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ListingReadQueries interface {
	FindListingDetailBySlug(ctx context.Context, db db.DBTX, slug string) (db.ListingDetailRow, error)
	ListListings(ctx context.Context, db db.DBTX, arg db.ListListingsParams) ([]db.ListingDetailRow, error)
}

type ListingReadStore struct {
	queries ListingReadQueries
	db      db.DBTX
}

func NewListingReadStore(queries ListingReadQueries, db db.DBTX) *ListingReadStore {
	return &ListingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ListingReadStore) FindBySlug(ctx context.Context, slug string) (*queries.ListingView, error) {
	row, err := r.queries.FindListingDetailBySlug(ctx, r.db, slug)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find listing by slug", err)
	}
	return toListingView(row)
}

func (r *ListingReadStore) List(ctx context.Context, filter queries.ListingFilter, after *queries.Keyset, limit int32) ([]*queries.ListingView, error) {
	afterAt, afterID := keysetParams(after)
	params := db.ListListingsParams{
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		AvailableOnly:  filter.AvailableOnly,
		Limit:          limit,
	}
	if filter.Location != "" {
		params.Location = pgtype.Text{String: filter.Location, Valid: true}
	}

	rows, err := r.queries.ListListings(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list listings", err)
	}

	views := make([]*queries.ListingView, 0, len(rows))
	for _, row := range rows {
		v, err := toListingView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func toListingView(row db.ListingDetailRow) (*queries.ListingView, error) {
	price, err := pgconv.DecimalFromNumeric(row.PricePerNight)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt listing price", err)
	}
	avg, err := pgconv.DecimalPtrFromNumeric(row.AverageRating)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt listing rating", err)
	}

	return &queries.ListingView{
		ID:            row.ID,
		Name:          row.Name,
		Slug:          row.Slug,
		Description:   row.Description,
		Location:      row.Location,
		PricePerNight: price,
		IsAvailable:   row.IsAvailable,
		Owner: queries.UserSummary{
			ID:        row.OwnerID,
			Username:  row.OwnerUsername,
			FirstName: row.OwnerFirstName,
			LastName:  row.OwnerLastName,
		},
		AverageRating: avg,
		TotalReviews:  row.TotalReviews,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
