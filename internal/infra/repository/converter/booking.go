package converter

import (
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/shared"
)

func stayFromRow(row db.Bookings) booking.DateRange {
	return booking.NewDateRange(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate))
}

func BookingFromRow(row db.Bookings) (*booking.Booking, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	total, err := MoneyFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s total", row.ID)
	}

	return booking.ReconstructBooking(
		row.ID,
		row.ListingID,
		row.GuestID,
		stayFromRow(row),
		int(row.NumberOfGuests),
		total,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ExistingStayFromRow(row db.Bookings) (booking.ExistingStay, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return booking.ExistingStay{}, errs.Wrapf(err, "booking %s", row.ID)
	}
	return booking.ExistingStay{BookingID: row.ID, Stay: stayFromRow(row), Status: status}, nil
}

func BookingToCreateParams(b *booking.Booking) db.CreateBookingParams {
	return db.CreateBookingParams{
		ID:             b.ID(),
		ListingID:      b.ListingID(),
		GuestID:        b.GuestID(),
		StartDate:      pgconv.DateToPgtype(b.Stay().Start()),
		EndDate:        pgconv.DateToPgtype(b.Stay().End()),
		NumberOfGuests: int32(b.NumberOfGuests()),
		TotalPrice:     MoneyToNumeric(b.TotalPrice()),
		Status:         b.Status().String(),
		CreatedAt:      pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingSnapshotFromRow(row db.BookingDetailRow) (*shared.BookingSnapshot, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	total, err := MoneyFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s total", row.ID)
	}

	return &shared.BookingSnapshot{
		ID:             row.ID,
		ListingID:      row.ListingID,
		ListingName:    row.ListingName,
		ListingOwnerID: row.ListingOwnerID,
		GuestID:        row.GuestID,
		GuestEmail:     row.GuestEmail,
		GuestFirstName: row.GuestFirstName,
		Stay:           stayFromRow(row.Bookings),
		TotalPrice:     total,
		Status:         status,
	}, nil
}
