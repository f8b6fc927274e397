package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const listingColumns = `l.id, l.owner_id, l.name, l.slug, l.description, l.location, l.price_per_night, l.is_available, l.created_at, l.updated_at`

func listingDest(i *Listings) []any {
	return []any{
		&i.ID,
		&i.OwnerID,
		&i.Name,
		&i.Slug,
		&i.Description,
		&i.Location,
		&i.PricePerNight,
		&i.IsAvailable,
		&i.CreatedAt,
		&i.UpdatedAt,
	}
}

func scanListing(row pgx.Row) (Listings, error) {
	var i Listings
	err := row.Scan(listingDest(&i)...)
	return i, err
}

// ListingDetailRow is a listing joined with its owner and rating stats.
type ListingDetailRow struct {
	Listings
	OwnerUsername  string
	OwnerFirstName string
	OwnerLastName  string
	AverageRating  pgtype.Numeric
	TotalReviews   int32
}

const listingDetailSelect = `SELECT ` + listingColumns + `,
       u.username, u.first_name, u.last_name,
       s.average_rating, COALESCE(s.total_reviews, 0)::int4
FROM listings l
JOIN users u ON u.id = l.owner_id
LEFT JOIN listing_rating_stats s ON s.listing_id = l.id`

func scanListingDetail(row pgx.Row) (ListingDetailRow, error) {
	var i ListingDetailRow
	dest := append(listingDest(&i.Listings),
		&i.OwnerUsername,
		&i.OwnerFirstName,
		&i.OwnerLastName,
		&i.AverageRating,
		&i.TotalReviews,
	)
	err := row.Scan(dest...)
	return i, err
}

const createListing = `INSERT INTO listings (id, owner_id, name, slug, description, location, price_per_night, is_available, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

type CreateListingParams struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	Slug          string
	Description   string
	Location      string
	PricePerNight pgtype.Numeric
	IsAvailable   bool
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

func (q *Queries) CreateListing(ctx context.Context, db DBTX, arg CreateListingParams) error {
	_, err := db.Exec(ctx, createListing,
		arg.ID,
		arg.OwnerID,
		arg.Name,
		arg.Slug,
		arg.Description,
		arg.Location,
		arg.PricePerNight,
		arg.IsAvailable,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateListing = `UPDATE listings
SET name = $2, description = $3, location = $4, price_per_night = $5, is_available = $6, updated_at = $7
WHERE id = $1`

type UpdateListingParams struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Location      string
	PricePerNight pgtype.Numeric
	IsAvailable   bool
	UpdatedAt     pgtype.Timestamptz
}

func (q *Queries) UpdateListing(ctx context.Context, db DBTX, arg UpdateListingParams) (int64, error) {
	tag, err := db.Exec(ctx, updateListing,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.Location,
		arg.PricePerNight,
		arg.IsAvailable,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteListing = `DELETE FROM listings WHERE id = $1`

func (q *Queries) DeleteListing(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteListing, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const findListingBySlug = `SELECT ` + listingColumns + ` FROM listings l WHERE l.slug = $1`

func (q *Queries) FindListingBySlug(ctx context.Context, db DBTX, slug string) (Listings, error) {
	return scanListing(db.QueryRow(ctx, findListingBySlug, slug))
}

// Row lock serializes concurrent bookings on the same listing.
const findListingByIDForUpdate = `SELECT ` + listingColumns + ` FROM listings l WHERE l.id = $1 FOR UPDATE`

func (q *Queries) FindListingByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Listings, error) {
	return scanListing(db.QueryRow(ctx, findListingByIDForUpdate, id))
}

const listingSlugExists = `SELECT EXISTS (SELECT 1 FROM listings WHERE slug = $1)`

func (q *Queries) ListingSlugExists(ctx context.Context, db DBTX, slug string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, listingSlugExists, slug).Scan(&exists)
	return exists, err
}

const findListingDetailBySlug = listingDetailSelect + ` WHERE l.slug = $1`

func (q *Queries) FindListingDetailBySlug(ctx context.Context, db DBTX, slug string) (ListingDetailRow, error) {
	return scanListingDetail(db.QueryRow(ctx, findListingDetailBySlug, slug))
}

const listListings = listingDetailSelect + `
WHERE ($1::timestamptz IS NULL OR (l.created_at, l.id) < ($1::timestamptz, $2::uuid))
  AND ($3::text IS NULL OR l.location ILIKE '%' || $3::text || '%')
  AND (NOT $4::bool OR l.is_available)
ORDER BY l.created_at DESC, l.id DESC
LIMIT $5`

type ListListingsParams struct {
	AfterCreatedAt pgtype.Timestamptz
	AfterID        uuid.UUID
	Location       pgtype.Text
	AvailableOnly  bool
	Limit          int32
}

func (q *Queries) ListListings(ctx context.Context, db DBTX, arg ListListingsParams) ([]ListingDetailRow, error) {
	rows, err := db.Query(ctx, listListings,
		arg.AfterCreatedAt,
		arg.AfterID,
		arg.Location,
		arg.AvailableOnly,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListingDetailRow
	for rows.Next() {
		i, err := scanListingDetail(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
