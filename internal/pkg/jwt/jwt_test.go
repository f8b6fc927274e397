//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	svc := jwt.NewService("secret", 15*time.Minute, time.Hour, clk)
	userID := uuid.New()

	access, err := svc.GenerateAccessToken(userID, user.RoleHost)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "host", claims.Role)
	assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)

	refresh, err := svc.GenerateRefreshToken(userID, user.RoleHost)
	require.NoError(t, err)
	claims, err = svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, jwt.TokenTypeRefresh, claims.TokenType)
}

func TestService_Expired(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	svc := jwt.NewService("secret", time.Minute, time.Hour, clk)

	token, err := svc.GenerateAccessToken(uuid.New(), user.RoleGuest)
	require.NoError(t, err)

	clk.Add(2 * time.Minute)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestService_WrongSecret(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	issuer := jwt.NewService("secret-a", time.Minute, time.Hour, clk)
	verifier := jwt.NewService("secret-b", time.Minute, time.Hour, clk)

	token, err := issuer.GenerateAccessToken(uuid.New(), user.RoleGuest)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = verifier.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
