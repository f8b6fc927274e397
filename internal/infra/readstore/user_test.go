//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"travel-booking/internal/infra"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/usecase/queries"
	"travel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) FindUserByEmail(ctx context.Context, tx db.DBTX, email string) (db.Users, error) {
	args := m.Called(ctx, tx, email)
	return args.Get(0).(db.Users), args.Error(1)
}

func (m *MockUserReadQueries) FindUserByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (db.Users, error) {
	args := m.Called(ctx, tx, id)
	return args.Get(0).(db.Users), args.Error(1)
}

func (m *MockUserReadQueries) ListUsers(ctx context.Context, tx db.DBTX, arg db.ListUsersParams) ([]db.Users, error) {
	args := m.Called(ctx, tx, arg)
	return args.Get(0).([]db.Users), args.Error(1)
}

func TestFindByEmail(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()
	inactiveUser := builder.NewUserBuilder().AsInactive().BuildInfra()

	tests := []struct {
		name       string
		email      string
		mockReturn db.Users
		mockError  error
		wantUser   bool
		wantHash   string
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - active user",
			email:      testUser.Email,
			mockReturn: testUser,
			wantUser:   true,
			wantHash:   testUser.PasswordHash,
		},
		{
			name:       "success - inactive user (for validation)",
			email:      inactiveUser.Email,
			mockReturn: inactiveUser,
			wantUser:   true,
			wantHash:   inactiveUser.PasswordHash,
		},
		{
			name:       "user not found",
			email:      "notfound@example.com",
			mockReturn: db.Users{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			email:      testUser.Email,
			mockReturn: db.Users{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, tt.email).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)
			user, hash, err := readStore.FindByEmail(context.Background(), tt.email)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, user)
				assert.Empty(t, hash)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn.ID, user.ID)
				assert.Equal(t, tt.mockReturn.IsActive, user.IsActive)
				assert.Equal(t, tt.wantHash, hash)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindProfile(t *testing.T) {
	row := builder.NewUserBuilder().WithUsername("abebe").BuildInfra()
	row.LastLogin.Time = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	row.LastLogin.Valid = true

	mockQueries := new(MockUserReadQueries)
	mockQueries.On("FindUserByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)

	view, err := NewUserReadStore(mockQueries, nil).FindProfile(context.Background(), row.ID)

	require.NoError(t, err)
	assert.Equal(t, "abebe", view.Username)
	require.NotNil(t, view.LastLogin)
	assert.True(t, view.LastLogin.Equal(row.LastLogin.Time))
	mockQueries.AssertExpectations(t)
}

func TestList(t *testing.T) {
	first := builder.NewUserBuilder().BuildInfra()
	second := builder.NewUserBuilder().WithEmail("second@example.com").BuildInfra()
	after := &queries.Keyset{CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), ID: uuid.New()}

	mockQueries := new(MockUserReadQueries)
	mockQueries.On("ListUsers", mock.Anything, mock.Anything, mock.MatchedBy(func(arg db.ListUsersParams) bool {
		return arg.Limit == 3 && arg.AfterID == after.ID && arg.AfterCreatedAt.Valid
	})).Return([]db.Users{first, second}, nil)

	views, err := NewUserReadStore(mockQueries, nil).List(context.Background(), after, 3)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "second@example.com", views[1].Email)
	mockQueries.AssertExpectations(t)
}

func TestList_FirstPageHasNoKeyset(t *testing.T) {
	mockQueries := new(MockUserReadQueries)
	mockQueries.On("ListUsers", mock.Anything, mock.Anything, mock.MatchedBy(func(arg db.ListUsersParams) bool {
		return !arg.AfterCreatedAt.Valid && arg.AfterID == uuid.Nil
	})).Return([]db.Users{}, nil)

	views, err := NewUserReadStore(mockQueries, nil).List(context.Background(), nil, 20)

	require.NoError(t, err)
	assert.Empty(t, views)
	mockQueries.AssertExpectations(t)
}
