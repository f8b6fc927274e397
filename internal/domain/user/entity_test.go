//go:build unit

package user_test

import (
	"testing"
	"time"

	"travel-booking/internal/domain/user"
	"travel-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("guest@example.com")
		username, _ := user.NewUsername("guest")
		name, _ := user.NewFullName("Abebe", "Kebede")
		expected := user.NewUser(email, username, name, "hashed_password", user.RoleGuest, time.Now())

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, actual.ID(), actual.Principal())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
		assert.Equal(t, "Abebe", actual.Name().First())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "upper case is normalized",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("Mixed@Example.COM") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing domain",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("username validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "allowed punctuation",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("abebe.k+travel") },
			},
			{
				name:   "too short",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("ab") },
				errIs:  user.ErrInvalidUsername,
			},
			{
				name:   "spaces not allowed",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("abebe kebede") },
				errIs:  user.ErrInvalidUsername,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "guest role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("guest") },
			},
			{
				name:   "host role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("host") },
			},
			{
				name:   "admin role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "empty role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("state", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "active user",
				mutate: func(b *builder.UserBuilder) {},
			},
			{
				name:   "inactive user",
				mutate: func(b *builder.UserBuilder) { b.AsInactive() },
			},
		})
	})
}

func TestCredentials(t *testing.T) {
	creds, err := user.NewCredentials(" guest@example.com ", "password123")
	require.NoError(t, err)
	assert.Equal(t, "guest@example.com", creds.Email().Value())
	assert.Equal(t, "password123", creds.Password().Value())

	_, err = user.NewCredentials("guest@example.com", "short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	_, err = user.NewCredentials("nope", "password123")
	assert.ErrorIs(t, err, user.ErrInvalidEmail)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
