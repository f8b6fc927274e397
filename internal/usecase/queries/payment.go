package queries

import (
	"context"

	"github.com/google/uuid"

	"travel-booking/internal/domain/access"
	"travel-booking/internal/infra"
)

type PaymentQueries interface {
	ListByBooking(ctx context.Context, actor access.Actor, bookingID uuid.UUID) ([]*PaymentView, error)
}

type PaymentReadStore interface {
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*PaymentView, error)
}

type paymentQueriesImpl struct {
	bookings BookingReadStore
	payments PaymentReadStore
}

func NewPaymentQueries(bookings BookingReadStore, payments PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{bookings: bookings, payments: payments}
}

// ListByBooking returns every payment attempt of a booking, newest first. Only the guest and admins may see them.
func (q *paymentQueriesImpl) ListByBooking(ctx context.Context, actor access.Actor, bookingID uuid.UUID) ([]*PaymentView, error) {
	b, err := q.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if !access.CanModify(actor, b) {
		return nil, access.ErrForbidden
	}
	return q.payments.ListByBooking(ctx, bookingID)
}
