package repository

import (
	"context"

	"travel-booking/internal/domain/payment"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/infra/repository/converter"
	"travel-booking/internal/pkg/pgconv"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db db.DBTX, arg db.CreatePaymentParams) error
	UpdatePaymentStatus(ctx context.Context, db db.DBTX, arg db.UpdatePaymentStatusParams) (int64, error)
	FindPaymentByTxRefForUpdate(ctx context.Context, db db.DBTX, txRef string) (db.Payments, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      db.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db db.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, tx db.DBTX, p *payment.Payment) error {
	if err := r.queries.CreatePayment(ctx, tx, converter.PaymentToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, tx db.DBTX, p *payment.Payment) error {
	n, err := r.queries.UpdatePaymentStatus(ctx, tx, db.UpdatePaymentStatusParams{
		ID:        p.ID(),
		Status:    p.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(p.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}

// FindByTxRefForUpdate locks the row so concurrent verifications serialize.
func (r *PaymentRepository) FindByTxRefForUpdate(ctx context.Context, tx db.DBTX, txRef payment.TxRef) (*payment.Payment, error) {
	row, err := r.queries.FindPaymentByTxRefForUpdate(ctx, tx, txRef.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock payment", err)
	}
	p, err := converter.PaymentFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt payment row", err)
	}
	return p, nil
}
