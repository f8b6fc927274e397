package payment

import (
	"time"

	"travel-booking/internal/domain/money"
	"travel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidTxRef      = errs.New("invalid transaction reference")
	ErrInvalidEmail      = errs.New("invalid payer email")
	ErrInvalidAmount     = errs.New("payment amount must be greater than zero")
	ErrUnknownStatus     = errs.New("unknown payment status")
	ErrAlreadyCompleted  = errs.New("payment is already completed")
	ErrInvalidTransition = errs.New("invalid payment status transition")
)

type Payment struct {
	id        uuid.UUID
	bookingID uuid.UUID
	txRef     TxRef
	amount    money.Money
	currency  string
	email     string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewPayment records an attempt the gateway has accepted. Amount is the booking total.
func NewPayment(bookingID uuid.UUID, txRef TxRef, amount money.Money, currency, email string, now time.Time) (*Payment, error) {
	if txRef.IsZero() {
		return nil, ErrInvalidTxRef
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	return &Payment{
		id:        uuid.New(),
		bookingID: bookingID,
		txRef:     txRef,
		amount:    amount,
		currency:  currency,
		email:     email,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructPayment(
	id, bookingID uuid.UUID,
	txRef TxRef,
	amount money.Money,
	currency, email string,
	status Status,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:        id,
		bookingID: bookingID,
		txRef:     txRef,
		amount:    amount,
		currency:  currency,
		email:     email,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Complete marks the attempt paid. A failed attempt may still complete when the
// gateway later reports success; a completed one returns ErrAlreadyCompleted.
func (p *Payment) Complete(now time.Time) error {
	if p.status == StatusCompleted {
		return ErrAlreadyCompleted
	}
	p.status = StatusCompleted
	p.updatedAt = now
	return nil
}

// Fail records a declined attempt. Completed payments are never downgraded.
// Returns false when nothing changed.
func (p *Payment) Fail(now time.Time) (bool, error) {
	switch p.status {
	case StatusCompleted:
		return false, ErrInvalidTransition
	case StatusFailed:
		return false, nil
	}
	p.status = StatusFailed
	p.updatedAt = now
	return true, nil
}

func (p *Payment) ID() uuid.UUID        { return p.id }
func (p *Payment) BookingID() uuid.UUID { return p.bookingID }
func (p *Payment) TxRef() TxRef         { return p.txRef }
func (p *Payment) Amount() money.Money  { return p.amount }
func (p *Payment) Currency() string     { return p.currency }
func (p *Payment) Email() string        { return p.email }
func (p *Payment) Status() Status       { return p.status }
func (p *Payment) CreatedAt() time.Time { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time { return p.updatedAt }
