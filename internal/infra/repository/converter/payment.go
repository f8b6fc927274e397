package converter

import (
	"travel-booking/internal/domain/payment"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/pgconv"
)

func PaymentFromRow(row db.Payments) (*payment.Payment, error) {
	txRef, err := payment.ParseTxRef(row.TxRef)
	if err != nil {
		return nil, errs.Wrapf(err, "payment %s", row.ID)
	}
	status, err := payment.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "payment %s", row.ID)
	}
	amount, err := MoneyFromNumeric(row.Amount)
	if err != nil {
		return nil, errs.Wrapf(err, "payment %s amount", row.ID)
	}

	return payment.ReconstructPayment(
		row.ID,
		row.BookingID,
		txRef,
		amount,
		row.Currency,
		row.Email,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func PaymentToCreateParams(p *payment.Payment) db.CreatePaymentParams {
	return db.CreatePaymentParams{
		ID:        p.ID(),
		BookingID: p.BookingID(),
		TxRef:     p.TxRef().String(),
		Amount:    MoneyToNumeric(p.Amount()),
		Currency:  p.Currency(),
		Email:     p.Email(),
		Status:    p.Status().String(),
		CreatedAt: pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}
