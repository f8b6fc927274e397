//go:build unit

package pgconv_test

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"travel-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumeric(t *testing.T) {
	t.Run("keeps scale", func(t *testing.T) {
		in := decimal.RequireFromString("150.25")
		out, err := pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(in))
		require.NoError(t, err)
		assert.True(t, in.Equal(out))
		assert.Equal(t, "150.25", out.StringFixed(2))
	})

	t.Run("numeric from database", func(t *testing.T) {
		n := pgtype.Numeric{Int: big.NewInt(30000), Exp: -2, Valid: true}
		out, err := pgconv.DecimalFromNumeric(n)
		require.NoError(t, err)
		assert.Equal(t, "300.00", out.StringFixed(2))
	})

	t.Run("null and NaN", func(t *testing.T) {
		_, err := pgconv.DecimalFromNumeric(pgtype.Numeric{})
		assert.ErrorIs(t, err, pgconv.ErrInvalidNumeric)

		_, err = pgconv.DecimalFromNumeric(pgtype.Numeric{NaN: true, Valid: true})
		assert.ErrorIs(t, err, pgconv.ErrInvalidNumeric)

		ptr, err := pgconv.DecimalPtrFromNumeric(pgtype.Numeric{})
		assert.NoError(t, err)
		assert.Nil(t, ptr)
	})
}

func TestDates(t *testing.T) {
	local := time.Date(2024, 6, 3, 23, 30, 0, 0, time.FixedZone("EAT", 3*3600))
	pd := pgconv.DateToPgtype(local)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), pd.Time)
	assert.Equal(t, pd.Time, pgconv.DateFromPgtype(pd))
	assert.True(t, pgconv.DateFromPgtype(pgtype.Date{}).IsZero())
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.False(t, pgconv.IsNoRows(errors.New("boom")))
}
