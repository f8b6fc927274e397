package converter

import (
	"travel-booking/internal/domain/money"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func MoneyFromNumeric(n pgtype.Numeric) (money.Money, error) {
	d, err := pgconv.DecimalFromNumeric(n)
	if err != nil {
		return money.Money{}, err
	}
	m, err := money.New(d)
	if err != nil {
		return money.Money{}, errs.Wrap(err, "stored amount")
	}
	return m, nil
}

func MoneyToNumeric(m money.Money) pgtype.Numeric {
	return pgconv.DecimalToNumeric(m.Decimal())
}
