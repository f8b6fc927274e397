package readstore

import (
	"context"

	"travel-booking/internal/infra"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/infra/repository/converter"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReadQueries back the write side's pre-checks.
type CommandReadQueries interface {
	FindBookingDetailByID(ctx context.Context, db db.DBTX, id uuid.UUID) (db.BookingDetailRow, error)
	FindUserByID(ctx context.Context, db db.DBTX, id uuid.UUID) (db.Users, error)
	ListingSlugExists(ctx context.Context, db db.DBTX, slug string) (bool, error)
	HasConfirmedBookings(ctx context.Context, db db.DBTX, listingID uuid.UUID) (bool, error)
}

type CommandReadStore struct {
	queries CommandReadQueries
	db      db.DBTX
}

func NewCommandReadStore(queries CommandReadQueries, db db.DBTX) *CommandReadStore {
	return &CommandReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CommandReadStore) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	row, err := r.queries.FindBookingDetailByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	snap, err := converter.BookingSnapshotFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err)
	}
	return snap, nil
}

func (r *CommandReadStore) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	snap, err := converter.UserSnapshotFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt user row", err)
	}
	return snap, nil
}

func (r *CommandReadStore) ListingSlugExists(ctx context.Context, slug string) (bool, error) {
	ok, err := r.queries.ListingSlugExists(ctx, r.db, slug)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check listing slug", err)
	}
	return ok, nil
}

func (r *CommandReadStore) ListingHasConfirmedBookings(ctx context.Context, listingID uuid.UUID) (bool, error) {
	ok, err := r.queries.HasConfirmedBookings(ctx, r.db, listingID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check confirmed bookings", err)
	}
	return ok, nil
}
