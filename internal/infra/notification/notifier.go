package notification

import (
	"context"
	"fmt"
	"log/slog"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/pkg/errs"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"
)

const (
	OutcomeSent      = "sent"
	OutcomeDuplicate = "duplicate"
	OutcomeFailed    = "failed"
	OutcomeSkipped   = "skipped"
)

type Recorder interface {
	NotificationOutcome(event, outcome string)
}

// Notifier turns booking events into guest emails, at most once per booking
// and event kind.
type Notifier struct {
	mailer  Mailer
	dedupe  Deduper
	metrics Recorder
}

func NewNotifier(mailer Mailer, dedupe Deduper, metrics Recorder) *Notifier {
	return &Notifier{mailer: mailer, dedupe: dedupe, metrics: metrics}
}

// Handlers returns the event handlers to register on the event processor.
func (n *Notifier) Handlers() []cqrs.EventHandler {
	return []cqrs.EventHandler{
		cqrs.NewEventHandler("notifier.on_booking_created", n.OnBookingCreated),
		cqrs.NewEventHandler("notifier.on_booking_confirmed", n.OnBookingConfirmed),
	}
}

func (n *Notifier) OnBookingCreated(ctx context.Context, event *booking.BookingCreated) error {
	return n.deliver(ctx, event.EventName(), event.BookingID.String(), Email{
		To:      event.GuestEmail,
		Subject: "Booking Confirmation",
		Body: fmt.Sprintf(
			"Dear %s,\n\nYour booking for %q from %s to %s has been confirmed.\n\nThank you for choosing us!",
			event.GuestFirstName, event.ListingName, event.StartDate, event.EndDate,
		),
	})
}

func (n *Notifier) OnBookingConfirmed(ctx context.Context, event *booking.BookingConfirmed) error {
	return n.deliver(ctx, event.EventName(), event.BookingID.String(), Email{
		To:      event.GuestEmail,
		Subject: "Payment received",
		Body: fmt.Sprintf(
			"Dear %s,\n\nWe received your payment of %s for %q (%s to %s). Reference: %s.\n\nSee you soon!",
			event.GuestFirstName, event.Amount, event.ListingName, event.StartDate, event.EndDate, event.TxRef,
		),
	})
}

func (n *Notifier) deliver(ctx context.Context, eventName, bookingID string, email Email) error {
	if email.To == "" {
		slog.WarnContext(ctx, "no recipient for notification", "event", eventName, "booking_id", bookingID)
		n.record(eventName, OutcomeSkipped)
		return nil
	}

	key := eventName + ":" + bookingID
	claimed, err := n.dedupe.Claim(ctx, key)
	if err != nil {
		n.record(eventName, OutcomeFailed)
		return err
	}
	if !claimed {
		slog.InfoContext(ctx, "notification already delivered", "event", eventName, "booking_id", bookingID)
		n.record(eventName, OutcomeDuplicate)
		return nil
	}

	if err := n.mailer.Send(ctx, email); err != nil {
		// let a retry claim it again
		if relErr := n.dedupe.Release(ctx, key); relErr != nil {
			slog.WarnContext(ctx, "failed to release notification claim", "key", key, "error", relErr.Error())
		}
		n.record(eventName, OutcomeFailed)
		return errs.Wrapf(err, "failed to send %s email", eventName)
	}

	n.record(eventName, OutcomeSent)
	return nil
}

func (n *Notifier) record(eventName, outcome string) {
	if n.metrics != nil {
		n.metrics.NotificationOutcome(eventName, outcome)
	}
}
