//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"travel-booking/internal/domain/access"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/listing"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/usecase/commands"
	"travel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newBookingCommands(m *txMocks, clk clock.Clock) commands.BookingCommands {
	return commands.NewBookingCommands(m.uow, booking.NewServices(clk, time.UTC), m.events, clk)
}

func mustListing(t *testing.T, lb *builder.ListingBuilder) *listing.Listing {
	t.Helper()
	l, err := lb.BuildDomain()
	require.NoError(t, err)
	return l
}

// =============================================================================
// Create
// =============================================================================

func TestBookingCommands_Create(t *testing.T) {
	ctx := context.Background()
	guest := builder.NewUserBuilder()

	t.Run("success: 3 nights at 100 is 300 and a BookingCreated event goes out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		l := mustListing(t, builder.NewListingBuilder().WithPrice("100.00"))

		m.reads.EXPECT().UserByID(gomock.Any(), guest.ID).Return(guest.BuildSnapshot(), nil)
		m.listings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), l.ID()).Return(l, nil)
		m.bookings.EXPECT().HoldingStays(gomock.Any(), gomock.Any(), l.ID(), gomock.Any()).Return(nil, nil)

		var saved *booking.Booking
		m.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, b *booking.Booking) error {
				saved = b
				return nil
			})
		m.events.EXPECT().Publish(gomock.Any(), gomock.AssignableToTypeOf(&booking.BookingCreated{})).
			DoAndReturn(func(_ context.Context, event any) error {
				created := event.(*booking.BookingCreated)
				assert.Equal(t, guest.Email, created.GuestEmail)
				assert.Equal(t, "Lakeside Cabin", created.ListingName)
				assert.Equal(t, "2024-06-01", created.StartDate)
				assert.Equal(t, "2024-06-04", created.EndDate)
				assert.Equal(t, "300.00", created.TotalPrice)
				return nil
			})

		res, err := newBookingCommands(m, fixedClock()).Create(ctx, guest.ID, commands.CreateBookingInput{
			ListingID:      l.ID(),
			StartDate:      "2024-06-01",
			EndDate:        "2024-06-04",
			NumberOfGuests: 2,
		})

		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, res.Status)
		require.NotNil(t, saved)
		assert.Equal(t, res.BookingID, saved.ID())
		assert.Equal(t, "300.00", saved.TotalPrice().String())
		assert.Equal(t, 3, saved.NumberOfNights())
		assert.Equal(t, guest.ID, saved.GuestID())
	})

	t.Run("publish failure does not fail the booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		l := mustListing(t, builder.NewListingBuilder())

		m.reads.EXPECT().UserByID(gomock.Any(), guest.ID).Return(guest.BuildSnapshot(), nil)
		m.listings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), l.ID()).Return(l, nil)
		m.bookings.EXPECT().HoldingStays(gomock.Any(), gomock.Any(), l.ID(), gomock.Any()).Return(nil, nil)
		m.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(assert.AnError)

		res, err := newBookingCommands(m, fixedClock()).Create(ctx, guest.ID, commands.CreateBookingInput{
			ListingID: l.ID(), StartDate: "2024-06-01", EndDate: "2024-06-04", NumberOfGuests: 1,
		})

		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, res.Status)
	})

	t.Run("error: overlapping pending booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		l := mustListing(t, builder.NewListingBuilder())

		held, err := booking.ParseDateRange("2024-06-01", "2024-06-05")
		require.NoError(t, err)

		m.reads.EXPECT().UserByID(gomock.Any(), guest.ID).Return(guest.BuildSnapshot(), nil)
		m.listings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), l.ID()).Return(l, nil)
		m.bookings.EXPECT().HoldingStays(gomock.Any(), gomock.Any(), l.ID(), gomock.Any()).
			Return([]booking.ExistingStay{{BookingID: uuid.New(), Stay: held, Status: booking.StatusPending}}, nil)

		_, err = newBookingCommands(m, fixedClock()).Create(ctx, guest.ID, commands.CreateBookingInput{
			ListingID: l.ID(), StartDate: "2024-06-04", EndDate: "2024-06-06", NumberOfGuests: 1,
		})

		assert.ErrorIs(t, err, booking.ErrDateConflict)
	})

	t.Run("error: exclusion constraint hit on insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		l := mustListing(t, builder.NewListingBuilder())

		m.reads.EXPECT().UserByID(gomock.Any(), guest.ID).Return(guest.BuildSnapshot(), nil)
		m.listings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), l.ID()).Return(l, nil)
		m.bookings.EXPECT().HoldingStays(gomock.Any(), gomock.Any(), l.ID(), gomock.Any()).Return(nil, nil)
		m.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("overlap", nil, infra.KindConflict))

		_, err := newBookingCommands(m, fixedClock()).Create(ctx, guest.ID, commands.CreateBookingInput{
			ListingID: l.ID(), StartDate: "2024-06-01", EndDate: "2024-06-04", NumberOfGuests: 1,
		})

		assert.ErrorIs(t, err, booking.ErrDateConflict)
	})

	t.Run("error: unavailable listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		l := mustListing(t, builder.NewListingBuilder().AsUnavailable())

		m.reads.EXPECT().UserByID(gomock.Any(), guest.ID).Return(guest.BuildSnapshot(), nil)
		m.listings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), l.ID()).Return(l, nil)
		m.bookings.EXPECT().HoldingStays(gomock.Any(), gomock.Any(), l.ID(), gomock.Any()).Return(nil, nil)

		_, err := newBookingCommands(m, fixedClock()).Create(ctx, guest.ID, commands.CreateBookingInput{
			ListingID: l.ID(), StartDate: "2024-06-01", EndDate: "2024-06-04", NumberOfGuests: 1,
		})

		assert.ErrorIs(t, err, booking.ErrListingUnavailable)
	})

	t.Run("error: start date in the past never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		clk := clock.NewMockClock(time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC))

		_, err := newBookingCommands(m, clk).Create(ctx, guest.ID, commands.CreateBookingInput{
			ListingID: uuid.New(), StartDate: "2024-06-01", EndDate: "2024-06-04", NumberOfGuests: 1,
		})

		assert.ErrorIs(t, err, booking.ErrPastDate)
	})

	t.Run("error: end before start never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)

		_, err := newBookingCommands(m, fixedClock()).Create(ctx, guest.ID, commands.CreateBookingInput{
			ListingID: uuid.New(), StartDate: "2024-06-04", EndDate: "2024-06-01", NumberOfGuests: 1,
		})

		assert.ErrorIs(t, err, booking.ErrInvalidRange)
	})

	t.Run("error: past start wins over an inverted range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)

		_, err := newBookingCommands(m, fixedClock()).Create(ctx, guest.ID, commands.CreateBookingInput{
			ListingID: uuid.New(), StartDate: "2024-05-10", EndDate: "2024-05-01", NumberOfGuests: 1,
		})

		assert.ErrorIs(t, err, booking.ErrPastDate)
		assert.NotErrorIs(t, err, booking.ErrInvalidRange)
	})

	t.Run("error: unknown listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		id := uuid.New()

		m.reads.EXPECT().UserByID(gomock.Any(), guest.ID).Return(guest.BuildSnapshot(), nil)
		m.listings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("missing", nil, infra.KindNotFound))

		_, err := newBookingCommands(m, fixedClock()).Create(ctx, guest.ID, commands.CreateBookingInput{
			ListingID: id, StartDate: "2024-06-01", EndDate: "2024-06-04", NumberOfGuests: 1,
		})

		assert.ErrorIs(t, err, commands.ErrListingNotFound)
	})
}

// =============================================================================
// Cancel
// =============================================================================

func TestBookingCommands_Cancel(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		status     booking.Status
		actor      func(b *builder.BookingBuilder) access.Actor
		wantErr    error
		wantUpdate bool
	}{
		{
			name:       "guest cancels pending booking",
			status:     booking.StatusPending,
			actor:      func(b *builder.BookingBuilder) access.Actor { return access.NewActor(b.GuestID, user.RoleGuest) },
			wantUpdate: true,
		},
		{
			name:       "guest cancels confirmed booking",
			status:     booking.StatusConfirmed,
			actor:      func(b *builder.BookingBuilder) access.Actor { return access.NewActor(b.GuestID, user.RoleGuest) },
			wantUpdate: true,
		},
		{
			name:       "admin cancels on behalf of guest",
			status:     booking.StatusPending,
			actor:      func(*builder.BookingBuilder) access.Actor { return access.NewActor(uuid.New(), user.RoleAdmin) },
			wantUpdate: true,
		},
		{
			name:    "cancelling twice is an invalid transition",
			status:  booking.StatusCancelled,
			actor:   func(b *builder.BookingBuilder) access.Actor { return access.NewActor(b.GuestID, user.RoleGuest) },
			wantErr: booking.ErrInvalidTransition,
		},
		{
			name:    "listing owner cannot cancel a guest's booking",
			status:  booking.StatusPending,
			actor:   func(b *builder.BookingBuilder) access.Actor { return access.NewActor(b.ListingOwnerID, user.RoleHost) },
			wantErr: access.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newTxMocks(ctrl)
			bb := builder.NewBookingBuilder().WithStatus(tt.status)
			b := bb.BuildDomain()

			m.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), bb.ID).Return(b, nil)
			if tt.wantUpdate {
				m.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), b).Return(nil)
				m.events.EXPECT().Publish(gomock.Any(), gomock.AssignableToTypeOf(&booking.BookingCancelled{})).Return(nil)
			}

			res, err := newBookingCommands(m, fixedClock()).Cancel(ctx, tt.actor(bb), bb.ID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.status, b.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, booking.StatusCancelled, res.Status)
		})
	}
}

func TestBookingCommands_Cancel_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)
	id := uuid.New()

	m.bookings.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("missing", nil, infra.KindNotFound))

	_, err := newBookingCommands(m, fixedClock()).Cancel(context.Background(), access.NewActor(uuid.New(), user.RoleAdmin), id)

	assert.ErrorIs(t, err, commands.ErrBookingNotFound)
}
