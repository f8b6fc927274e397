package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const paymentColumns = `id, booking_id, tx_ref, amount, currency, email, status, created_at, updated_at`

func scanPayment(row pgx.Row) (Payments, error) {
	var i Payments
	err := row.Scan(
		&i.ID,
		&i.BookingID,
		&i.TxRef,
		&i.Amount,
		&i.Currency,
		&i.Email,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createPayment = `INSERT INTO payments (id, booking_id, tx_ref, amount, currency, email, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

type CreatePaymentParams struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	TxRef     string
	Amount    pgtype.Numeric
	Currency  string
	Email     string
	Status    string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) CreatePayment(ctx context.Context, db DBTX, arg CreatePaymentParams) error {
	_, err := db.Exec(ctx, createPayment,
		arg.ID,
		arg.BookingID,
		arg.TxRef,
		arg.Amount,
		arg.Currency,
		arg.Email,
		arg.Status,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updatePaymentStatus = `UPDATE payments SET status = $2, updated_at = $3 WHERE id = $1`

type UpdatePaymentStatusParams struct {
	ID        uuid.UUID
	Status    string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdatePaymentStatus(ctx context.Context, db DBTX, arg UpdatePaymentStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updatePaymentStatus, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const findPaymentByTxRefForUpdate = `SELECT ` + paymentColumns + ` FROM payments WHERE tx_ref = $1 FOR UPDATE`

func (q *Queries) FindPaymentByTxRefForUpdate(ctx context.Context, db DBTX, txRef string) (Payments, error) {
	return scanPayment(db.QueryRow(ctx, findPaymentByTxRefForUpdate, txRef))
}

const findPaymentByTxRef = `SELECT ` + paymentColumns + ` FROM payments WHERE tx_ref = $1`

func (q *Queries) FindPaymentByTxRef(ctx context.Context, db DBTX, txRef string) (Payments, error) {
	return scanPayment(db.QueryRow(ctx, findPaymentByTxRef, txRef))
}

const listPaymentsByBooking = `SELECT ` + paymentColumns + ` FROM payments
WHERE booking_id = $1
ORDER BY created_at DESC, id DESC`

func (q *Queries) ListPaymentsByBooking(ctx context.Context, db DBTX, bookingID uuid.UUID) ([]Payments, error) {
	rows, err := db.Query(ctx, listPaymentsByBooking, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Payments
	for rows.Next() {
		i, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
