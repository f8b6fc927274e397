package bootstrap

import (
	"travel-booking/internal/handler/api"
	"travel-booking/internal/infra/gateway/chapa"
	"travel-booking/internal/infra/metrics"
	"travel-booking/internal/infra/notification"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(api.BookingMetrics)),
			fx.As(new(api.PaymentMetrics)),
			fx.As(new(chapa.Recorder)),
			fx.As(new(notification.Recorder)),
		),
	),
)
