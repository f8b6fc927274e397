package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/payment"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrVerificationRejected = errs.New("payment gateway rejected the verification request")

// PaymentSettings are the deployment values handed to the gateway on initialize.
type PaymentSettings struct {
	Currency        string
	CallbackBaseURL string
	ReturnURL       string
}

// CallbackURL is where the gateway sends the payer back to trigger verification.
func (s PaymentSettings) CallbackURL(txRef payment.TxRef) string {
	return strings.TrimRight(s.CallbackBaseURL, "/") + "/payments/verify-payment/" + txRef.String() + "/"
}

type InitializePaymentInput struct {
	BookingID uuid.UUID
	Email     string
	FirstName string
	LastName  string
}

type InitializePaymentResult struct {
	CheckoutURL string
	TxRef       string
	PaymentID   uuid.UUID
}

type VerifyPaymentResult struct {
	TxRef         string
	PaymentStatus payment.Status
	BookingID     uuid.UUID
	BookingStatus booking.Status
	// Changed is false when the call only re-observed an already reconciled state.
	Changed bool
}

type PaymentCommands interface {
	Initialize(ctx context.Context, in InitializePaymentInput) (*InitializePaymentResult, error)
	Verify(ctx context.Context, txRef string) (*VerifyPaymentResult, error)
}

type paymentCommandsImpl struct {
	uow      shared.UnitOfWork
	gateway  shared.PaymentGateway
	events   shared.EventPublisher
	settings PaymentSettings
	clock    clock.Clock
}

func NewPaymentCommands(
	uow shared.UnitOfWork,
	gateway shared.PaymentGateway,
	events shared.EventPublisher,
	settings PaymentSettings,
	clk clock.Clock,
) PaymentCommands {
	return &paymentCommandsImpl{
		uow:      uow,
		gateway:  gateway,
		events:   events,
		settings: settings,
		clock:    clk,
	}
}

// Initialize opens a checkout session and records the attempt only after the
// gateway accepted it, so a rejected call leaves no payment row behind.
func (uc *paymentCommandsImpl) Initialize(ctx context.Context, in InitializePaymentInput) (*InitializePaymentResult, error) {
	txRef := payment.NewTxRef()

	snap, err := uc.uow.CommandReads().BookingByID(ctx, in.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	payer, err := payment.NewPayer(in.Email, in.FirstName, in.LastName)
	if err != nil {
		return nil, err
	}
	if snap.Status != booking.StatusPending {
		return nil, booking.ErrInvalidTransition
	}

	session, err := uc.gateway.Initialize(ctx, shared.InitializeRequest{
		Amount:      snap.TotalPrice,
		Currency:    uc.settings.Currency,
		Email:       payer.Email(),
		FirstName:   payer.FirstName(),
		LastName:    payer.LastName(),
		TxRef:       txRef.String(),
		CallbackURL: uc.settings.CallbackURL(txRef),
		ReturnURL:   uc.settings.ReturnURL,
	})
	if err != nil {
		return nil, asGatewayError(err)
	}

	p, err := payment.NewPayment(snap.ID, txRef, snap.TotalPrice, uc.settings.Currency, payer.Email(), uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Payments().Create(ctx, tx.DB(), p)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "payment initialized",
		"booking_id", snap.ID,
		"tx_ref", txRef.String(),
		"amount", snap.TotalPrice.String())

	return &InitializePaymentResult{
		CheckoutURL: session.CheckoutURL,
		TxRef:       txRef.String(),
		PaymentID:   p.ID(),
	}, nil
}

// Verify reconciles the gateway's view of txRef into the payment and its booking.
// It is safe to call repeatedly: a completed payment is left untouched.
func (uc *paymentCommandsImpl) Verify(ctx context.Context, rawTxRef string) (*VerifyPaymentResult, error) {
	txRef, err := payment.ParseTxRef(rawTxRef)
	if err != nil {
		return nil, err
	}

	outcome, err := uc.gateway.Verify(ctx, txRef.String())
	if err != nil {
		return nil, asGatewayError(err)
	}
	if !outcome.Succeeded() {
		return nil, &shared.GatewayRequestError{
			StatusCode: http.StatusOK,
			Payload:    outcome.Payload,
			Err:        ErrVerificationRejected,
		}
	}

	var (
		result    *VerifyPaymentResult
		confirmed *booking.BookingConfirmed
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result, confirmed = nil, nil

		p, err := tx.Payments().FindByTxRefForUpdate(ctx, tx.DB(), txRef)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}

		if outcome.Paid() {
			result, confirmed, err = uc.complete(ctx, tx, p)
			return err
		}
		result, err = uc.fail(ctx, tx, p)
		return err
	})
	if err != nil {
		return nil, err
	}

	if confirmed != nil {
		publishAfterCommit(ctx, uc.events, confirmed)
	}
	return result, nil
}

func (uc *paymentCommandsImpl) complete(ctx context.Context, tx shared.Tx, p *payment.Payment) (*VerifyPaymentResult, *booking.BookingConfirmed, error) {
	now := uc.clock.Now()

	b, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), p.BookingID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrBookingNotFound
		}
		return nil, nil, err
	}

	result := &VerifyPaymentResult{
		TxRef:     p.TxRef().String(),
		BookingID: b.ID(),
	}

	if err := p.Complete(now); err != nil {
		if errors.Is(err, payment.ErrAlreadyCompleted) {
			result.PaymentStatus = p.Status()
			result.BookingStatus = b.Status()
			return result, nil, nil
		}
		return nil, nil, err
	}

	var event *booking.BookingConfirmed
	switch b.Status() {
	case booking.StatusPending:
		if err := b.Confirm(now); err != nil {
			return nil, nil, err
		}
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b); err != nil {
			return nil, nil, err
		}
		snap, err := tx.Reads().BookingByID(ctx, b.ID())
		if err != nil {
			return nil, nil, err
		}
		event = &booking.BookingConfirmed{
			Header:         booking.NewEventHeader(now),
			BookingID:      b.ID(),
			TxRef:          p.TxRef().String(),
			Amount:         p.Amount().String(),
			ListingName:    snap.ListingName,
			GuestEmail:     snap.GuestEmail,
			GuestFirstName: snap.GuestFirstName,
			StartDate:      snap.Stay.Start().Format(booking.DateLayout),
			EndDate:        snap.Stay.End().Format(booking.DateLayout),
		}
	case booking.StatusConfirmed:
		// Another attempt already confirmed the booking; record this payment only.
	default:
		slog.WarnContext(ctx, "payment succeeded for a cancelled booking",
			"booking_id", b.ID(), "tx_ref", p.TxRef().String())
		return nil, nil, booking.ErrInvalidTransition
	}

	if err := tx.Payments().UpdateStatus(ctx, tx.DB(), p); err != nil {
		return nil, nil, err
	}

	result.PaymentStatus = p.Status()
	result.BookingStatus = b.Status()
	result.Changed = true
	return result, event, nil
}

func (uc *paymentCommandsImpl) fail(ctx context.Context, tx shared.Tx, p *payment.Payment) (*VerifyPaymentResult, error) {
	changed, err := p.Fail(uc.clock.Now())
	if err != nil && !errors.Is(err, payment.ErrInvalidTransition) {
		return nil, err
	}
	if err != nil {
		slog.WarnContext(ctx, "gateway reported failure for a completed payment; keeping it completed",
			"tx_ref", p.TxRef().String())
	}
	if changed {
		if err := tx.Payments().UpdateStatus(ctx, tx.DB(), p); err != nil {
			return nil, err
		}
	}

	snap, err := tx.Reads().BookingByID(ctx, p.BookingID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return &VerifyPaymentResult{
		TxRef:         p.TxRef().String(),
		PaymentStatus: p.Status(),
		BookingID:     snap.ID,
		BookingStatus: snap.Status,
		Changed:       changed,
	}, nil
}

func asGatewayError(err error) error {
	var gwErr *shared.GatewayRequestError
	if errors.As(err, &gwErr) {
		return gwErr
	}
	return &shared.GatewayRequestError{Err: err}
}
