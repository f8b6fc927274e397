package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `b.id, b.listing_id, b.guest_id, b.start_date, b.end_date, b.number_of_guests, b.total_price, b.status, b.created_at, b.updated_at`

func bookingDest(i *Bookings) []any {
	return []any{
		&i.ID,
		&i.ListingID,
		&i.GuestID,
		&i.StartDate,
		&i.EndDate,
		&i.NumberOfGuests,
		&i.TotalPrice,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	}
}

func scanBooking(row pgx.Row) (Bookings, error) {
	var i Bookings
	err := row.Scan(bookingDest(&i)...)
	return i, err
}

func collectBookings(rows pgx.Rows, err error) ([]Bookings, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Bookings
	for rows.Next() {
		i, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

// BookingDetailRow is a booking joined with its listing and guest.
type BookingDetailRow struct {
	Bookings
	ListingName          string
	ListingSlug          string
	ListingLocation      string
	ListingPricePerNight pgtype.Numeric
	ListingOwnerID       uuid.UUID
	GuestUsername        string
	GuestEmail           string
	GuestFirstName       string
	GuestLastName        string
}

const bookingDetailSelect = `SELECT ` + bookingColumns + `,
       l.name, l.slug, l.location, l.price_per_night, l.owner_id,
       u.username, u.email, u.first_name, u.last_name
FROM bookings b
JOIN listings l ON l.id = b.listing_id
JOIN users u ON u.id = b.guest_id`

func scanBookingDetail(row pgx.Row) (BookingDetailRow, error) {
	var i BookingDetailRow
	dest := append(bookingDest(&i.Bookings),
		&i.ListingName,
		&i.ListingSlug,
		&i.ListingLocation,
		&i.ListingPricePerNight,
		&i.ListingOwnerID,
		&i.GuestUsername,
		&i.GuestEmail,
		&i.GuestFirstName,
		&i.GuestLastName,
	)
	err := row.Scan(dest...)
	return i, err
}

const createBooking = `INSERT INTO bookings (id, listing_id, guest_id, start_date, end_date, number_of_guests, total_price, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

type CreateBookingParams struct {
	ID             uuid.UUID
	ListingID      uuid.UUID
	GuestID        uuid.UUID
	StartDate      pgtype.Date
	EndDate        pgtype.Date
	NumberOfGuests int32
	TotalPrice     pgtype.Numeric
	Status         string
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) error {
	_, err := db.Exec(ctx, createBooking,
		arg.ID,
		arg.ListingID,
		arg.GuestID,
		arg.StartDate,
		arg.EndDate,
		arg.NumberOfGuests,
		arg.TotalPrice,
		arg.Status,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateBookingStatus = `UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`

type UpdateBookingStatusParams struct {
	ID        uuid.UUID
	Status    string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateBookingStatus, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const findBookingByIDForUpdate = `SELECT ` + bookingColumns + ` FROM bookings b WHERE b.id = $1 FOR UPDATE`

func (q *Queries) FindBookingByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, findBookingByIDForUpdate, id))
}

const listHoldingBookingsInRange = `SELECT ` + bookingColumns + ` FROM bookings b
WHERE b.listing_id = $1
  AND b.status IN ('pending', 'confirmed')
  AND b.start_date < $3
  AND b.end_date > $2
ORDER BY b.start_date`

type ListHoldingBookingsInRangeParams struct {
	ListingID uuid.UUID
	StartDate pgtype.Date
	EndDate   pgtype.Date
}

func (q *Queries) ListHoldingBookingsInRange(ctx context.Context, db DBTX, arg ListHoldingBookingsInRangeParams) ([]Bookings, error) {
	return collectBookings(db.Query(ctx, listHoldingBookingsInRange, arg.ListingID, arg.StartDate, arg.EndDate))
}

const hasConfirmedBookings = `SELECT EXISTS (SELECT 1 FROM bookings WHERE listing_id = $1 AND status = 'confirmed')`

func (q *Queries) HasConfirmedBookings(ctx context.Context, db DBTX, listingID uuid.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, hasConfirmedBookings, listingID).Scan(&exists)
	return exists, err
}

const findBookingDetailByID = bookingDetailSelect + ` WHERE b.id = $1`

func (q *Queries) FindBookingDetailByID(ctx context.Context, db DBTX, id uuid.UUID) (BookingDetailRow, error) {
	return scanBookingDetail(db.QueryRow(ctx, findBookingDetailByID, id))
}

const listBookingsByGuest = bookingDetailSelect + `
WHERE b.guest_id = $1
  AND ($2::text IS NULL OR b.status = $2::text)
  AND ($3::timestamptz IS NULL OR (b.created_at, b.id) < ($3::timestamptz, $4::uuid))
ORDER BY b.created_at DESC, b.id DESC
LIMIT $5`

type ListBookingsByGuestParams struct {
	GuestID        uuid.UUID
	Status         pgtype.Text
	AfterCreatedAt pgtype.Timestamptz
	AfterID        uuid.UUID
	Limit          int32
}

func (q *Queries) ListBookingsByGuest(ctx context.Context, db DBTX, arg ListBookingsByGuestParams) ([]BookingDetailRow, error) {
	rows, err := db.Query(ctx, listBookingsByGuest,
		arg.GuestID,
		arg.Status,
		arg.AfterCreatedAt,
		arg.AfterID,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BookingDetailRow
	for rows.Next() {
		i, err := scanBookingDetail(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
