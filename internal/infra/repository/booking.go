package repository

import (
	"context"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/infra/repository/converter"
	"travel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db db.DBTX, arg db.CreateBookingParams) error
	UpdateBookingStatus(ctx context.Context, db db.DBTX, arg db.UpdateBookingStatusParams) (int64, error)
	FindBookingByIDForUpdate(ctx context.Context, db db.DBTX, id uuid.UUID) (db.Bookings, error)
	ListHoldingBookingsInRange(ctx context.Context, db db.DBTX, arg db.ListHoldingBookingsInRangeParams) ([]db.Bookings, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      db.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db db.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Create reports an exclusion-constraint violation as KindConflict.
func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	n, err := r.queries.UpdateBookingStatus(ctx, tx, db.UpdateBookingStatusParams{
		ID:        b.ID(),
		Status:    b.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.FindBookingByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err)
	}
	return b, nil
}

func (r *BookingRepository) HoldingStays(ctx context.Context, tx db.DBTX, listingID uuid.UUID, stay booking.DateRange) ([]booking.ExistingStay, error) {
	rows, err := r.queries.ListHoldingBookingsInRange(ctx, tx, db.ListHoldingBookingsInRangeParams{
		ListingID: listingID,
		StartDate: pgconv.DateToPgtype(stay.Start()),
		EndDate:   pgconv.DateToPgtype(stay.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping bookings", err)
	}

	stays := make([]booking.ExistingStay, 0, len(rows))
	for _, row := range rows {
		s, err := converter.ExistingStayFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt booking row", err)
		}
		stays = append(stays, s)
	}
	return stays, nil
}
