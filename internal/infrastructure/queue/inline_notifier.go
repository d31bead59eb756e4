package queue

import (
	"context"
	"time"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/infrastructure/logger"
	"academy_payments/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// InlineNotifier delivers in a detached goroutine when no queue is
// available. Nothing is retried.
type InlineNotifier struct {
	deliver DeliverFunc
	timeout time.Duration
}

var _ interfaces.INotifier = (*InlineNotifier)(nil)

func NewInlineNotifier(deliver DeliverFunc) *InlineNotifier {
	return &InlineNotifier{deliver: deliver, timeout: 30 * time.Second}
}

func (n *InlineNotifier) Notify(ctx context.Context, t entities.EmailType, data map[string]any) error {
	go func() {
		// The request context ends with the response; delivery must not.
		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
		defer cancel()
		if err := n.deliver(dctx, t, data); err != nil {
			logger.Warn("[email][inline] delivery failed", zap.String("type", string(t)), zap.Error(err))
		}
	}()
	return nil
}
