package bootstrap

import (
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessDuration, cfg.JWT.RefreshDuration, clk)
}
