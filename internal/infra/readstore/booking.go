package readstore

import (
	"context"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	FindBookingDetailByID(ctx context.Context, db db.DBTX, id uuid.UUID) (db.BookingDetailRow, error)
	ListBookingsByGuest(ctx context.Context, db db.DBTX, arg db.ListBookingsByGuestParams) ([]db.BookingDetailRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      db.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db db.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.FindBookingDetailByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return toBookingView(row)
}

func (r *BookingReadStore) ListByGuest(ctx context.Context, guestID uuid.UUID, status *string, after *queries.Keyset, limit int32) ([]*queries.BookingView, error) {
	afterAt, afterID := keysetParams(after)
	rows, err := r.queries.ListBookingsByGuest(ctx, r.db, db.ListBookingsByGuestParams{
		GuestID:        guestID,
		Status:         pgconv.StringPtrToPgtype(status),
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by guest", err)
	}

	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		v, err := toBookingView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func toBookingView(row db.BookingDetailRow) (*queries.BookingView, error) {
	total, err := pgconv.DecimalFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking total", err)
	}
	price, err := pgconv.DecimalFromNumeric(row.ListingPricePerNight)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt listing price", err)
	}

	start := pgconv.DateFromPgtype(row.StartDate)
	end := pgconv.DateFromPgtype(row.EndDate)
	return &queries.BookingView{
		ID: row.ID,
		Listing: queries.BookingListingView{
			ID:            row.ListingID,
			Name:          row.ListingName,
			Slug:          row.ListingSlug,
			Location:      row.ListingLocation,
			PricePerNight: price,
			OwnerID:       row.ListingOwnerID,
		},
		Guest: queries.UserSummary{
			ID:        row.GuestID,
			Username:  row.GuestUsername,
			FirstName: row.GuestFirstName,
			LastName:  row.GuestLastName,
		},
		StartDate:      start,
		EndDate:        end,
		NumberOfNights: booking.NightsBetween(start, end),
		NumberOfGuests: row.NumberOfGuests,
		TotalPrice:     total,
		Status:         row.Status,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
