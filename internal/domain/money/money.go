package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits kept for amounts.
const Scale = 2

var (
	ErrNegativeAmount = errors.New("amount cannot be negative")
	ErrInvalidAmount  = errors.New("invalid amount")
)

// Money is a non-negative decimal amount in the deployment currency.
type Money struct {
	amount decimal.Decimal
}

func New(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount.Round(Scale)}, nil
}

func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return New(d)
}

// MustParse is for literals in tests and fixtures.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

func Zero() Money { return Money{amount: decimal.Zero} }

func (m Money) Decimal() decimal.Decimal { return m.amount }

func (m Money) IsZero() bool     { return m.amount.IsZero() }
func (m Money) IsPositive() bool { return m.amount.IsPositive() }

func (m Money) Times(n int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(n))}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders with two fractional digits, e.g. "300.00".
func (m Money) String() string {
	return m.amount.StringFixed(Scale)
}
