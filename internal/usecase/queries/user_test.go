//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"travel-booking/internal/infra"
	"travel-booking/internal/usecase/queries"
	"travel-booking/tests/common/builder"
	queriesmock "travel-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserQueries_GetCurrentUser(t *testing.T) {
	active := builder.NewUserBuilder()
	inactive := builder.NewUserBuilder().AsInactive()

	tests := []struct {
		name     string
		id       uuid.UUID
		setup    func(store *queriesmock.MockUserReadStore)
		wantErr  error
		wantUser bool
	}{
		{
			name: "active user",
			id:   active.ID,
			setup: func(store *queriesmock.MockUserReadStore) {
				store.EXPECT().FindByID(gomock.Any(), active.ID).Return(active.BuildReadModel(), nil)
			},
			wantUser: true,
		},
		{
			name: "inactive user",
			id:   inactive.ID,
			setup: func(store *queriesmock.MockUserReadStore) {
				store.EXPECT().FindByID(gomock.Any(), inactive.ID).Return(inactive.BuildReadModel(), nil)
			},
			wantErr: queries.ErrUserInactive,
		},
		{
			name: "unknown user",
			id:   active.ID,
			setup: func(store *queriesmock.MockUserReadStore) {
				store.EXPECT().FindByID(gomock.Any(), active.ID).Return(nil, infra.WrapRepoErr("missing", nil, infra.KindNotFound))
			},
			wantErr: queries.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockUserReadStore(ctrl)
			tt.setup(store)

			got, err := queries.NewUserQueries(store).GetCurrentUser(context.Background(), tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, got.ID)
		})
	}
}

func TestUserQueries_List_Paging(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockUserReadStore(ctrl)

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	first := builder.NewUserBuilder().BuildView()
	first.CreatedAt = base
	second := builder.NewUserBuilder().BuildView()
	second.CreatedAt = base.Add(-time.Minute)

	cursor := &queries.Cursor{After: queries.EncodeAfterCursor(base.Add(time.Hour), uuid.New())}
	store.EXPECT().List(gomock.Any(), gomock.Not(gomock.Nil()), int32(2)).Return([]*queries.UserView{first, second}, nil)

	got, next, err := queries.NewUserQueries(store).List(context.Background(), cursor, 1)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, first.ID, got[0].ID)
	require.NotNil(t, next)

	ts, id, err := queries.DecodeAfterCursor(next.After)
	require.NoError(t, err)
	assert.Equal(t, first.ID, id)
	assert.True(t, ts.Equal(base))
}

func TestCursor_RoundTripKeepsMicroseconds(t *testing.T) {
	ts := time.Date(2024, 6, 1, 10, 30, 0, 123456789, time.UTC)
	id := uuid.New()

	gotTS, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(ts, id))

	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.True(t, gotTS.Equal(ts.Truncate(time.Microsecond)))
}
