//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: pgErrCodeSerializationFailure}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: pgErrCodeDeadlockDetected}, want: true},
		{name: "wrapped by repository", err: infra.WrapRepoErr("failed to create booking", &pgconn.PgError{Code: "40001"}), want: true},
		{name: "wrapped twice", err: errs.Wrap(errs.Wrap(&pgconn.PgError{Code: "40P01"}, "inner"), "outer"), want: true},
		{name: "exclusion violation is final", err: &pgconn.PgError{Code: "23P01"}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestShouldRetry_StopsAtMax(t *testing.T) {
	retryable := &pgconn.PgError{Code: pgErrCodeSerializationFailure}

	assert.True(t, shouldRetry(retryable, 0, 3))
	assert.True(t, shouldRetry(retryable, 2, 3))
	assert.False(t, shouldRetry(retryable, 3, 3))
	assert.False(t, shouldRetry(errors.New("boom"), 0, 3))
}

func TestCalculateBackoff_GrowsWithJitterBound(t *testing.T) {
	base := 100 * time.Millisecond

	for attempt := 0; attempt < 4; attempt++ {
		want := time.Duration(1<<attempt) * base
		for i := 0; i < 50; i++ {
			got := calculateBackoff(attempt, base)
			assert.GreaterOrEqual(t, got, want)
			assert.Less(t, got, want+want/5)
		}
	}
}

func TestCryptoRandInt63n(t *testing.T) {
	assert.Equal(t, int64(0), cryptoRandInt63n(0))
	assert.Equal(t, int64(0), cryptoRandInt63n(-5))
	for i := 0; i < 100; i++ {
		v := cryptoRandInt63n(10)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(10))
	}
}
