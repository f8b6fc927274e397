//go:build unit

package money_test

import (
	"testing"

	"travel-booking/internal/domain/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("parse and render", func(t *testing.T) {
		m, err := money.Parse("100")
		require.NoError(t, err)
		assert.Equal(t, "100.00", m.String())
		assert.True(t, m.IsPositive())
	})

	t.Run("times nights", func(t *testing.T) {
		total := money.MustParse("100.00").Times(3)
		assert.Equal(t, "300.00", total.String())
		assert.True(t, total.Equal(money.MustParse("300")))
	})

	t.Run("decimal precision is exact", func(t *testing.T) {
		total := money.MustParse("0.10").Times(3)
		assert.Equal(t, "0.30", total.String())
	})

	t.Run("negative rejected", func(t *testing.T) {
		_, err := money.New(decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, money.ErrNegativeAmount)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := money.Parse("ten")
		assert.ErrorIs(t, err, money.ErrInvalidAmount)
	})

	t.Run("zero", func(t *testing.T) {
		assert.True(t, money.Zero().IsZero())
		assert.Equal(t, "5.50", money.Zero().Add(money.MustParse("5.5")).String())
	})
}
