package messaging

import (
	"context"

	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

var marshaler = cqrs.JSONMarshaler{
	GenerateName: cqrs.StructName,
}

type correlationIDKey struct{}

// WithCorrelationID stores id so that events published under ctx carry it.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

func correlationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok && id != "" {
		return id
	}
	return watermill.NewUUID()
}

// EventBus publishes domain events, one topic per event name.
type EventBus struct {
	bus *cqrs.EventBus
}

var _ shared.EventPublisher = (*EventBus)(nil)

func NewEventBus(pub message.Publisher, logger watermill.LoggerAdapter) (*EventBus, error) {
	bus, err := cqrs.NewEventBusWithConfig(pub, cqrs.EventBusConfig{
		GeneratePublishTopic: func(params cqrs.GenerateEventPublishTopicParams) (string, error) {
			return topic(params.EventName), nil
		},
		OnPublish: func(params cqrs.OnEventSendParams) error {
			middleware.SetCorrelationID(correlationID(params.Message.Context()), params.Message)
			return nil
		},
		Marshaler: marshaler,
		Logger:    logger,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create event bus")
	}
	return &EventBus{bus: bus}, nil
}

func (b *EventBus) Publish(ctx context.Context, event any) error {
	return b.bus.Publish(ctx, event)
}
