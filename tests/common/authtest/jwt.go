//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.AccessDuration, h.cfg.RefreshDuration, clock.NewRealClock())
	token, err := service.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token whose expiry is already an hour in the past.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-h.cfg.AccessDuration - time.Hour))
	service := jwt.NewService(h.cfg.Secret, h.cfg.AccessDuration, h.cfg.RefreshDuration, past)
	token, err := service.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}
