package messaging

import (
	"log/slog"
	"time"

	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// NewRouter builds the watermill router with the event processor for handlers
// already attached. The caller runs and closes it.
func NewRouter(
	cfg config.EventsConfig,
	transport *Transport,
	logger watermill.LoggerAdapter,
	handlers ...cqrs.EventHandler,
) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create router")
	}

	router.AddMiddleware(middleware.Recoverer)
	router.AddMiddleware(middleware.CorrelationID)
	router.AddMiddleware(LoggingMiddleware)
	router.AddMiddleware(middleware.Retry{
		MaxRetries:      cfg.MaxRetries,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      2,
		Logger:          logger,
	}.Middleware)

	processor, err := cqrs.NewEventProcessorWithConfig(router, cqrs.EventProcessorConfig{
		GenerateSubscribeTopic: func(params cqrs.EventProcessorGenerateSubscribeTopicParams) (string, error) {
			return topic(params.EventName), nil
		},
		SubscriberConstructor: transport.Subscribe,
		Marshaler:             marshaler,
		Logger:                logger,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create event processor")
	}

	if err := processor.AddHandlers(handlers...); err != nil {
		return nil, errs.Wrap(err, "failed to add event handlers")
	}
	return router, nil
}

func LoggingMiddleware(next message.HandlerFunc) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		start := time.Now()
		name := marshaler.NameFromMessage(msg)
		corrID := middleware.MessageCorrelationID(msg)

		msgs, err := next(msg)

		attrs := []any{
			"event", name,
			"message_uuid", msg.UUID,
			"correlation_id", corrID,
			"latency", time.Since(start).String(),
		}
		if err != nil {
			slog.ErrorContext(msg.Context(), "event handler failed", append(attrs, "error", err.Error())...)
		} else {
			slog.DebugContext(msg.Context(), "event handled", attrs...)
		}
		return msgs, err
	}
}
