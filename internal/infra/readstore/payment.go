package readstore

import (
	"context"

	"travel-booking/internal/infra"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentReadQueries interface {
	ListPaymentsByBooking(ctx context.Context, db db.DBTX, bookingID uuid.UUID) ([]db.Payments, error)
}

type PaymentReadStore struct {
	queries PaymentReadQueries
	db      db.DBTX
}

func NewPaymentReadStore(queries PaymentReadQueries, db db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListPaymentsByBooking(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments by booking", err)
	}

	views := make([]*queries.PaymentView, 0, len(rows))
	for _, row := range rows {
		amount, err := pgconv.DecimalFromNumeric(row.Amount)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt payment amount", err)
		}
		views = append(views, &queries.PaymentView{
			ID:        row.ID,
			BookingID: row.BookingID,
			TxRef:     row.TxRef,
			Amount:    amount,
			Currency:  row.Currency,
			Email:     row.Email,
			Status:    row.Status,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}
