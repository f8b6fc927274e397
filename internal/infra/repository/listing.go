package repository

import (
	"context"

	"travel-booking/internal/domain/listing"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type ListingWriteQueries interface {
	CreateListing(ctx context.Context, db db.DBTX, arg db.CreateListingParams) error
	UpdateListing(ctx context.Context, db db.DBTX, arg db.UpdateListingParams) (int64, error)
	DeleteListing(ctx context.Context, db db.DBTX, id uuid.UUID) (int64, error)
	FindListingBySlug(ctx context.Context, db db.DBTX, slug string) (db.Listings, error)
	FindListingByIDForUpdate(ctx context.Context, db db.DBTX, id uuid.UUID) (db.Listings, error)
}

type ListingRepository struct {
	queries ListingWriteQueries
	db      db.DBTX
}

func NewListingRepository(queries ListingWriteQueries, db db.DBTX) *ListingRepository {
	return &ListingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ListingRepository) Create(ctx context.Context, tx db.DBTX, l *listing.Listing) error {
	if err := r.queries.CreateListing(ctx, tx, converter.ListingToCreateParams(l)); err != nil {
		return infra.WrapRepoErr("failed to create listing", err)
	}
	return nil
}

func (r *ListingRepository) Update(ctx context.Context, tx db.DBTX, l *listing.Listing) error {
	n, err := r.queries.UpdateListing(ctx, tx, converter.ListingToUpdateParams(l))
	if err != nil {
		return infra.WrapRepoErr("failed to update listing", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete fails with FOREIGN_KEY_VIOLATED while bookings reference the listing.
func (r *ListingRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteListing(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete listing", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ListingRepository) FindBySlug(ctx context.Context, tx db.DBTX, slug listing.Slug) (*listing.Listing, error) {
	row, err := r.queries.FindListingBySlug(ctx, tx, slug.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find listing by slug", err)
	}
	return r.toDomain(row)
}

func (r *ListingRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*listing.Listing, error) {
	row, err := r.queries.FindListingByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock listing", err)
	}
	return r.toDomain(row)
}

func (r *ListingRepository) toDomain(row db.Listings) (*listing.Listing, error) {
	l, err := converter.ListingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt listing row", err)
	}
	return l, nil
}
