//go:build unit

package commands_test

import (
	"context"
	"time"

	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/usecase/shared"
	sharedmock "travel-booking/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// fakeUoW runs every transactional closure against the same mocked Tx.
type fakeUoW struct {
	tx    shared.Tx
	reads shared.CommandReads
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.reads
}

type txMocks struct {
	uow      *fakeUoW
	reads    *sharedmock.MockCommandReads
	users    *sharedmock.MockUserRepository
	listings *sharedmock.MockListingRepository
	bookings *sharedmock.MockBookingRepository
	payments *sharedmock.MockPaymentRepository
	reviews  *sharedmock.MockReviewRepository
	stats    *sharedmock.MockRatingStatsRepository
	events   *sharedmock.MockEventPublisher
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		reads:    sharedmock.NewMockCommandReads(ctrl),
		users:    sharedmock.NewMockUserRepository(ctrl),
		listings: sharedmock.NewMockListingRepository(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		payments: sharedmock.NewMockPaymentRepository(ctrl),
		reviews:  sharedmock.NewMockReviewRepository(ctrl),
		stats:    sharedmock.NewMockRatingStatsRepository(ctrl),
		events:   sharedmock.NewMockEventPublisher(ctrl),
	}

	tx := sharedmock.NewMockTx(ctrl)
	tx.EXPECT().Users().Return(m.users).AnyTimes()
	tx.EXPECT().Listings().Return(m.listings).AnyTimes()
	tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	tx.EXPECT().Payments().Return(m.payments).AnyTimes()
	tx.EXPECT().Reviews().Return(m.reviews).AnyTimes()
	tx.EXPECT().RatingStats().Return(m.stats).AnyTimes()
	tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	tx.EXPECT().DB().Return(nil).AnyTimes()

	m.uow = &fakeUoW{tx: tx, reads: m.reads}
	return m
}

// 2024-05-20 noon UTC; every stay in these tests starts after it.
func fixedClock() *clock.MockClock {
	return clock.NewMockClock(time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC))
}

func strPtr(s string) *string { return &s }
