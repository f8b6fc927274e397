package bootstrap

import (
	"travel-booking/internal/infra/gateway/chapa"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewChapaClient,
			fx.As(new(shared.PaymentGateway)),
		),
	),
)

func NewChapaClient(cfg config.Config, recorder chapa.Recorder) *chapa.Client {
	return chapa.NewClient(cfg.Chapa, recorder)
}
