package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"travel-booking/internal/domain/access"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra"
)

type BookingFilter struct {
	Status string
}

type BookingQueries interface {
	ListMine(ctx context.Context, actor access.Actor, filter BookingFilter, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	GetByID(ctx context.Context, actor access.Actor, id uuid.UUID) (*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID, status *string, after *Keyset, limit int32) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, actor access.Actor, filter BookingFilter, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	var status *string
	if filter.Status != "" {
		s, err := booking.ParseStatus(filter.Status)
		if err != nil {
			return nil, nil, ErrInvalidStatus
		}
		str := s.String()
		status = &str
	}

	limit = ValidateLimit(limit)
	after, err := ParseCursor(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.repo.ListByGuest(ctx, actor.ID, status, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	bookings, next := page(rows, limit, func(b *BookingView) (time.Time, uuid.UUID) { return b.CreatedAt, b.ID })
	return bookings, next, nil
}

// GetByID is visible to the guest, the listing owner and admins.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor access.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if !canSeeBooking(actor, view) {
		return nil, access.ErrForbidden
	}
	return view, nil
}

func canSeeBooking(actor access.Actor, view *BookingView) bool {
	return access.CanModify(actor, view) || access.CanModify(actor, access.Principal(view.Listing.OwnerID))
}
