//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/infra/readstore"
	"travel-booking/tests/common/builder"
	readstoremock "travel-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCommandReadStore_BookingByID(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockCommandReadQueries(ctrl)
	store := readstore.NewCommandReadStore(mockQueries, nil)

	bb := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed)
	mockQueries.EXPECT().FindBookingDetailByID(ctx, gomock.Any(), bb.ID).Return(bb.BuildDetailRow(), nil)

	snap, err := store.BookingByID(ctx, bb.ID)

	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, snap.Status)
	assert.Equal(t, "300.00", snap.TotalPrice.String())
	assert.Equal(t, "guest@example.com", snap.GuestEmail)
	assert.Equal(t, bb.ListingOwnerID, snap.ListingOwnerID)
	assert.Equal(t, 3, snap.Stay.Nights())
}

func TestCommandReadStore_UserByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCommandReadQueries(ctrl)
		store := readstore.NewCommandReadStore(mockQueries, nil)

		row := builder.NewUserBuilder().WithRole("host").BuildInfra()
		mockQueries.EXPECT().FindUserByID(ctx, gomock.Any(), row.ID).Return(row, nil)

		snap, err := store.UserByID(ctx, row.ID)

		require.NoError(t, err)
		assert.Equal(t, user.RoleHost, snap.Role)
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCommandReadQueries(ctrl)
		store := readstore.NewCommandReadStore(mockQueries, nil)

		id := uuid.New()
		mockQueries.EXPECT().FindUserByID(ctx, gomock.Any(), id).Return(db.Users{}, pgx.ErrNoRows)

		_, err := store.UserByID(ctx, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestCommandReadStore_ListingChecks(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockCommandReadQueries(ctrl)
	store := readstore.NewCommandReadStore(mockQueries, nil)

	listingID := uuid.New()
	mockQueries.EXPECT().ListingSlugExists(ctx, gomock.Any(), "lakeside-cabin").Return(true, nil)
	mockQueries.EXPECT().HasConfirmedBookings(ctx, gomock.Any(), listingID).Return(false, assert.AnError)

	exists, err := store.ListingSlugExists(ctx, "lakeside-cabin")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = store.ListingHasConfirmedBookings(ctx, listingID)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
