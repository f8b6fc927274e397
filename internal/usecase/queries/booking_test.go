//go:build unit

package queries_test

import (
	"context"
	"testing"

	"travel-booking/internal/domain/access"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra"
	"travel-booking/internal/usecase/queries"
	"travel-booking/tests/common/builder"
	queriesmock "travel-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetByID_Visibility(t *testing.T) {
	bb := builder.NewBookingBuilder()
	view := bb.BuildView()

	tests := []struct {
		name    string
		actor   access.Actor
		wantErr error
	}{
		{name: "guest sees own booking", actor: access.NewActor(bb.GuestID, user.RoleGuest)},
		{name: "listing owner sees booking", actor: access.NewActor(bb.ListingOwnerID, user.RoleHost)},
		{name: "admin sees any booking", actor: access.NewActor(uuid.New(), user.RoleAdmin)},
		{name: "stranger is forbidden", actor: access.NewActor(uuid.New(), user.RoleGuest), wantErr: access.ErrForbidden},
		{name: "anonymous is forbidden", actor: access.Actor{}, wantErr: access.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			store.EXPECT().FindByID(gomock.Any(), bb.ID).Return(view, nil)

			got, err := queries.NewBookingQueries(store).GetByID(context.Background(), tt.actor, bb.ID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, bb.ID, got.ID)
		})
	}
}

func TestBookingQueries_GetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBookingReadStore(ctrl)
	id := uuid.New()
	store.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("missing", nil, infra.KindNotFound))

	_, err := queries.NewBookingQueries(store).GetByID(context.Background(), access.NewActor(uuid.New(), user.RoleAdmin), id)

	assert.ErrorIs(t, err, queries.ErrBookingNotFound)
}

func TestBookingQueries_ListMine(t *testing.T) {
	guestID := uuid.New()
	actor := access.NewActor(guestID, user.RoleGuest)

	t.Run("status filter is normalized and a next cursor is built", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)

		rows := []*queries.BookingView{
			builder.NewBookingBuilder().WithGuestID(guestID).BuildView(),
			builder.NewBookingBuilder().WithGuestID(guestID).BuildView(),
			builder.NewBookingBuilder().WithGuestID(guestID).BuildView(),
		}
		store.EXPECT().ListByGuest(gomock.Any(), guestID, gomock.Any(), gomock.Nil(), int32(3)).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, status *string, _ *queries.Keyset, _ int32) ([]*queries.BookingView, error) {
				require.NotNil(t, status)
				assert.Equal(t, booking.StatusConfirmed.String(), *status)
				return rows, nil
			})

		got, next, err := queries.NewBookingQueries(store).ListMine(context.Background(), actor, queries.BookingFilter{Status: "confirmed"}, nil, 2)

		require.NoError(t, err)
		assert.Len(t, got, 2)
		require.NotNil(t, next)

		after, err := queries.ParseCursor(next)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, after.ID)
	})

	t.Run("unknown status is rejected before hitting the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)

		_, _, err := queries.NewBookingQueries(store).ListMine(context.Background(), actor, queries.BookingFilter{Status: "archived"}, nil, 10)

		assert.ErrorIs(t, err, queries.ErrInvalidStatus)
	})

	t.Run("malformed cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)

		_, _, err := queries.NewBookingQueries(store).ListMine(context.Background(), actor, queries.BookingFilter{}, &queries.Cursor{After: "%%%"}, 10)

		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}
