package bootstrap

import (
	"context"
	"log/slog"

	"travel-booking/internal/infra/messaging"
	"travel-booking/internal/infra/notification"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase/shared"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewWatermillLogger,
		NewTransport,
		fx.Annotate(
			NewEventBus,
			fx.As(new(shared.EventPublisher)),
		),
		NewDeduper,
		NewNotifier,
		NewEventRouter,
	),
	fx.Invoke(runEventRouter),
)

func NewWatermillLogger(logger *slog.Logger) watermill.LoggerAdapter {
	return messaging.NewSlogAdapter(logger)
}

func NewTransport(lc fx.Lifecycle, cfg config.Config, rdb redis.UniversalClient, logger watermill.LoggerAdapter) (*messaging.Transport, error) {
	transport, err := messaging.NewTransport(cfg.Events, rdb, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return transport.Publisher.Close()
		},
	})
	return transport, nil
}

func NewEventBus(transport *messaging.Transport, logger watermill.LoggerAdapter) (*messaging.EventBus, error) {
	return messaging.NewEventBus(transport.Publisher, logger)
}

// NewDeduper keeps notification claims in redis when it is configured.
func NewDeduper(cfg config.Config, rdb redis.UniversalClient, clk clock.Clock) notification.Deduper {
	if rdb == nil {
		return notification.NewMemoryDeduper(cfg.Events.DedupeTTL, clk)
	}
	return notification.NewRedisDeduper(rdb, cfg.Events.DedupeTTL)
}

func NewNotifier(logger *slog.Logger, dedupe notification.Deduper, recorder notification.Recorder) *notification.Notifier {
	return notification.NewNotifier(notification.NewLogMailer(logger), dedupe, recorder)
}

func NewEventRouter(cfg config.Config, transport *messaging.Transport, logger watermill.LoggerAdapter, notifier *notification.Notifier) (*message.Router, error) {
	return messaging.NewRouter(cfg.Events, transport, logger, notifier.Handlers()...)
}

func runEventRouter(lc fx.Lifecycle, router *message.Router, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			go func() {
				if err := router.Run(ctx); err != nil {
					logger.Error("event router stopped", "error", err)
				}
			}()
			select {
			case <-router.Running():
				return nil
			case <-startCtx.Done():
				return startCtx.Err()
			}
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return router.Close()
		},
	})
}
