//go:build unit || e2e

package builder

import (
	"time"

	"travel-booking/internal/domain/money"
	"travel-booking/internal/domain/payment"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentBuilder struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	TxRef     string
	Amount    string
	Currency  string
	Email     string
	Status    payment.Status
	CreatedAt time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		ID:        uuid.New(),
		BookingID: uuid.New(),
		TxRef:     "5f0c8e1e-3a52-4a8e-9d3b-2f6f7a1c9b10",
		Amount:    "300.00",
		Currency:  "ETB",
		Email:     "guest@example.com",
		Status:    payment.StatusPending,
		CreatedAt: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
	}
}

func (p *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *PaymentBuilder) BuildDomain() *payment.Payment {
	txRef, err := payment.ParseTxRef(p.TxRef)
	if err != nil {
		panic(err)
	}
	return payment.ReconstructPayment(
		p.ID, p.BookingID, txRef,
		money.MustParse(p.Amount),
		p.Currency, p.Email,
		p.Status,
		p.CreatedAt, p.CreatedAt,
	)
}

func (p *PaymentBuilder) BuildInfra() db.Payments {
	return db.Payments{
		ID:        p.ID,
		BookingID: p.BookingID,
		TxRef:     p.TxRef,
		Amount:    pgconv.DecimalToNumeric(decimal.RequireFromString(p.Amount)),
		Currency:  p.Currency,
		Email:     p.Email,
		Status:    p.Status.String(),
		CreatedAt: pgconv.TimeToPgtype(p.CreatedAt),
		UpdatedAt: pgconv.TimeToPgtype(p.CreatedAt),
	}
}

func (p *PaymentBuilder) BuildView() *queries.PaymentView {
	return &queries.PaymentView{
		ID:        p.ID,
		BookingID: p.BookingID,
		TxRef:     p.TxRef,
		Amount:    decimal.RequireFromString(p.Amount),
		Currency:  p.Currency,
		Email:     p.Email,
		Status:    p.Status.String(),
		CreatedAt: p.CreatedAt,
	}
}

// Fluent builder methods
func (p *PaymentBuilder) WithBookingID(id uuid.UUID) *PaymentBuilder {
	p.BookingID = id
	return p
}

func (p *PaymentBuilder) WithTxRef(txRef string) *PaymentBuilder {
	p.TxRef = txRef
	return p
}

func (p *PaymentBuilder) WithStatus(status payment.Status) *PaymentBuilder {
	p.Status = status
	return p
}
