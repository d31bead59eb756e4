package interfaces

import (
	"context"

	"academy_payments/internal/domain/entities"
)

// IEventBus publishes payment status changes to interested subscribers.
// The returned cancel func must be called to release the subscription.
type IEventBus interface {
	Publish(ctx context.Context, ev entities.PaymentEvent) error
	Subscribe(ctx context.Context, transactionID string) (<-chan entities.PaymentEvent, func(), error)
}
