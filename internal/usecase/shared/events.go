package shared

import "context"

// EventPublisher delivers domain events after the transaction that produced them commits.
type EventPublisher interface {
	Publish(ctx context.Context, event any) error
}
