//go:build unit

package booking_test

import (
	"math/rand"
	"testing"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNightlyRateCalculator_Total(t *testing.T) {
	calc := booking.NewNightlyRateCalculator()

	testCases := []struct {
		name     string
		price    string
		stay     booking.DateRange
		expected string
		errIs    error
	}{
		{name: "three nights at 100", price: "100", stay: stay("2024-06-01", "2024-06-04"), expected: "300.00"},
		{name: "single night", price: "85.50", stay: stay("2024-06-01", "2024-06-02"), expected: "85.50"},
		{name: "across month end", price: "49.99", stay: stay("2024-01-30", "2024-02-02"), expected: "149.97"},
		{name: "leap day", price: "10", stay: stay("2024-02-28", "2024-03-01"), expected: "20.00"},
		{name: "end far in the future", price: "1", stay: stay("2024-01-01", "9999-12-31"), expected: "2913173.00"},
		{name: "zero nights", price: "100", stay: stay("2024-06-01", "2024-06-01"), errIs: booking.ErrInvalidRange},
		{name: "negative nights", price: "100", stay: stay("2024-06-04", "2024-06-01"), errIs: booking.ErrInvalidRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			total, err := calc.Total(money.MustParse(tc.price), tc.stay)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, total.String())
		})
	}
}

func TestNightlyRateCalculator_TotalIsNightsTimesRate(t *testing.T) {
	calc := booking.NewNightlyRateCalculator()
	rng := rand.New(rand.NewSource(42))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 500; i++ {
		start := base.AddDate(0, 0, rng.Intn(700))
		nights := 1 + rng.Intn(60)
		cents := 1 + rng.Int63n(10_000_000)
		price := money.MustParse(decimal.New(cents, -2).String())

		total, err := calc.Total(price, booking.NewDateRange(start, start.AddDate(0, 0, nights)))
		require.NoError(t, err)

		expected := decimal.New(cents, -2).Mul(decimal.NewFromInt(int64(nights)))
		assert.True(t, expected.Equal(total.Decimal()), "price=%s nights=%d total=%s", price, nights, total)
	}
}
