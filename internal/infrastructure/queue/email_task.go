package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/infrastructure/logger"
	"academy_payments/internal/usecase/interfaces"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TaskSendEmail = "email:send"

type EmailPayload struct {
	Type entities.EmailType `json:"type"`
	Data map[string]any     `json:"data"`
}

// DeliverFunc renders and sends one email.
type DeliverFunc func(ctx context.Context, t entities.EmailType, data map[string]any) error

func NewEmailTask(t entities.EmailType, data map[string]any) (*asynq.Task, error) {
	payload, err := json.Marshal(EmailPayload{Type: t, Data: data})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskSendEmail, payload), nil
}

// HandleEmailTask returns the asynq handler for TaskSendEmail. Returning an
// error makes asynq retry the task unless it wraps asynq.SkipRetry.
func HandleEmailTask(deliver DeliverFunc) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p EmailPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			logger.Error("[email][worker] invalid payload", zap.Error(err))
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}
		if err := deliver(ctx, p.Type, p.Data); err != nil {
			logger.Error("[email][worker] delivery failed", zap.String("type", string(p.Type)), zap.Error(err))
			if errors.Is(err, interfaces.ErrUndeliverable) {
				return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
			}
			return err
		}
		return nil
	}
}
