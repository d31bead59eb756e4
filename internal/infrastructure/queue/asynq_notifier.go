package queue

import (
	"context"
	"time"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/infrastructure/logger"
	"academy_payments/internal/usecase/interfaces"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// Payment emails go ahead of marketing ones.
var emailQueues = map[entities.EmailType]string{
	entities.EmailPaymentConfirmation: QueueCritical,
	entities.EmailPaybillInstructions: QueueCritical,
	entities.EmailPaymentNotification: QueueDefault,
	entities.EmailEnrollment:          QueueDefault,
	entities.EmailContact:             QueueLow,
	entities.EmailRegistration:        QueueLow,
}

// AsynqNotifier queues emails on Redis for the background worker.
type AsynqNotifier struct {
	client *asynq.Client
}

var _ interfaces.INotifier = (*AsynqNotifier)(nil)

func NewAsynqNotifier(client *asynq.Client) *AsynqNotifier {
	return &AsynqNotifier{client: client}
}

func (n *AsynqNotifier) Notify(ctx context.Context, t entities.EmailType, data map[string]any) error {
	task, err := NewEmailTask(t, data)
	if err != nil {
		return err
	}
	q, ok := emailQueues[t]
	if !ok {
		q = QueueDefault
	}
	info, err := n.client.EnqueueContext(ctx, task,
		asynq.Queue(q),
		asynq.MaxRetry(10),
		asynq.Timeout(60*time.Second),
	)
	if err != nil {
		return err
	}
	logger.Debug("[email][queue] enqueued", zap.String("type", string(t)), zap.String("task_id", info.ID), zap.String("queue", q))
	return nil
}

// NewEmailWorker builds the asynq server that drains the email queues.
func NewEmailWorker(opt asynq.RedisClientOpt, concurrency int, deliver DeliverFunc) (*asynq.Server, *asynq.ServeMux) {
	if concurrency <= 0 {
		concurrency = 10
	}
	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			QueueCritical: 6,
			QueueDefault:  3,
			QueueLow:      1,
		},
	})
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskSendEmail, HandleEmailTask(deliver))
	return srv, mux
}
