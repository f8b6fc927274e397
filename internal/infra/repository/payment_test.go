//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"travel-booking/internal/domain/payment"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/infra/repository"
	"travel-booking/tests/common/builder"
	repositorymock "travel-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Payment Tests
// =============================================================================

func TestPaymentRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: payment created"},
		{
			name:       "error: tx_ref already used",
			dbErr:      &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindDuplicateKey,
		},
		{name: "error: database error occurs", dbErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPaymentRepository(mockQueries, mockDB)
			p := builder.NewPaymentBuilder().BuildDomain()

			mockQueries.EXPECT().CreatePayment(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ db.DBTX, arg db.CreatePaymentParams) error {
					assert.Equal(t, p.TxRef().String(), arg.TxRef)
					assert.Equal(t, "pending", arg.Status)
					assert.Equal(t, "ETB", arg.Currency)
					return tc.dbErr
				})

			err := repo.Create(ctx, mockDB, p)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// =============================================================================
// UpdateStatus Tests
// =============================================================================

func TestPaymentRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		rows       int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: status updated", rows: 1},
		{name: "error: payment not found", rows: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", dbErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPaymentRepository(mockQueries, mockDB)
			p := builder.NewPaymentBuilder().WithStatus(payment.StatusCompleted).BuildDomain()

			mockQueries.EXPECT().UpdatePaymentStatus(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ db.DBTX, arg db.UpdatePaymentStatusParams) (int64, error) {
					assert.Equal(t, p.ID(), arg.ID)
					assert.Equal(t, "completed", arg.Status)
					return tc.rows, tc.dbErr
				})

			err := repo.UpdateStatus(ctx, mockDB, p)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// =============================================================================
// FindByTxRefForUpdate Tests
// =============================================================================

func TestPaymentRepository_FindByTxRefForUpdate(t *testing.T) {
	ctx := context.Background()
	pb := builder.NewPaymentBuilder()
	txRef, err := payment.ParseTxRef(pb.TxRef)
	require.NoError(t, err)

	t.Run("success: row converted to domain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPaymentRepository(mockQueries, mockDB)

		mockQueries.EXPECT().FindPaymentByTxRefForUpdate(ctx, mockDB, pb.TxRef).Return(pb.BuildInfra(), nil)

		p, err := repo.FindByTxRefForUpdate(ctx, mockDB, txRef)

		require.NoError(t, err)
		assert.Equal(t, pb.BookingID, p.BookingID())
		assert.Equal(t, payment.StatusPending, p.Status())
		assert.Equal(t, "300.00", p.Amount().String())
	})

	t.Run("error: payment not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewPaymentRepository(mockQueries, mockDB)

		mockQueries.EXPECT().FindPaymentByTxRefForUpdate(ctx, mockDB, pb.TxRef).Return(db.Payments{}, pgx.ErrNoRows)

		_, err := repo.FindByTxRefForUpdate(ctx, mockDB, txRef)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
