package commands

import (
	"context"
	"log/slog"
	"time"

	"travel-booking/internal/domain/access"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/listing"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	ListingID      uuid.UUID
	StartDate      string
	EndDate        string
	NumberOfGuests int
}

type BookingResult struct {
	BookingID uuid.UUID
	Status    booking.Status
}

type BookingCommands interface {
	Create(ctx context.Context, guestID uuid.UUID, in CreateBookingInput) (*BookingResult, error)
	Cancel(ctx context.Context, actor access.Actor, bookingID uuid.UUID) (*BookingResult, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	services *booking.Services
	events   shared.EventPublisher
	clock    clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, services *booking.Services, events shared.EventPublisher, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		services: services,
		events:   events,
		clock:    clk,
	}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, guestID uuid.UUID, in CreateBookingInput) (*BookingResult, error) {
	stay, err := booking.ParseDateRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	if err := uc.services.Validator.CheckDates(stay); err != nil {
		return nil, err
	}

	var event booking.BookingCreated
	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		guest, err := tx.Reads().UserByID(ctx, guestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		l, err := tx.Listings().FindByIDForUpdate(ctx, tx.DB(), in.ListingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrListingNotFound
			}
			return err
		}

		existing, err := tx.Bookings().HoldingStays(ctx, tx.DB(), l.ID(), stay)
		if err != nil {
			return err
		}

		b, err := booking.NewBooking(uc.services, listingSpec(l), guestID, stay, in.NumberOfGuests, existing)
		if err != nil {
			return err
		}

		if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return booking.ErrDateConflict
			}
			return err
		}

		created = b
		event = booking.BookingCreated{
			Header:         booking.NewEventHeader(uc.clock.Now()),
			BookingID:      b.ID(),
			ListingID:      l.ID(),
			ListingName:    l.Details().Name(),
			GuestID:        guestID,
			GuestEmail:     guest.Email,
			GuestFirstName: guest.FirstName,
			StartDate:      stay.Start().Format(booking.DateLayout),
			EndDate:        stay.End().Format(booking.DateLayout),
			TotalPrice:     b.TotalPrice().String(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, &event)
	return &BookingResult{BookingID: created.ID(), Status: created.Status()}, nil
}

func (uc *bookingCommandsImpl) Cancel(ctx context.Context, actor access.Actor, bookingID uuid.UUID) (*BookingResult, error) {
	var cancelled *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if !access.CanModify(actor, b) {
			return access.ErrForbidden
		}
		if err := b.Cancel(uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b); err != nil {
			return err
		}
		cancelled = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, &booking.BookingCancelled{
		Header:    booking.NewEventHeader(uc.clock.Now()),
		BookingID: cancelled.ID(),
		ListingID: cancelled.ListingID(),
		GuestID:   cancelled.GuestID(),
	})
	return &BookingResult{BookingID: cancelled.ID(), Status: cancelled.Status()}, nil
}

// Delivery failures are logged only; the booking is already committed.
func (uc *bookingCommandsImpl) publish(ctx context.Context, event any) {
	publishAfterCommit(ctx, uc.events, event)
}

func publishAfterCommit(ctx context.Context, events shared.EventPublisher, event any) {
	if events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := events.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish event", "event", eventName(event), "error", err.Error())
	}
}

const publishTimeout = 5 * time.Second

type named interface{ EventName() string }

func eventName(event any) string {
	if n, ok := event.(named); ok {
		return n.EventName()
	}
	return "unknown"
}

func listingSpec(l *listing.Listing) booking.ListingSpec {
	return booking.ListingSpec{
		ID:            l.ID(),
		OwnerID:       l.OwnerID(),
		Name:          l.Details().Name(),
		PricePerNight: l.PricePerNight(),
		IsAvailable:   l.IsAvailable(),
	}
}
