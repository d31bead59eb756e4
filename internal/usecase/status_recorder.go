package usecase

import (
	"context"
	"time"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/infrastructure/logger"
	"academy_payments/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// StatusRecorder is the single write path for terminal statuses. The poller,
// the status lookup and both webhooks go through it so the downstream
// effects run exactly once, for the writer that won the transition.
type StatusRecorder struct {
	repo        interfaces.IPaymentRepository
	enrollments interfaces.IEnrollmentRepository
	notifier    interfaces.INotifier
	events      interfaces.IEventBus
	now         func() time.Time
}

func NewStatusRecorder(repo interfaces.IPaymentRepository, enrollments interfaces.IEnrollmentRepository, notifier interfaces.INotifier, events interfaces.IEventBus) *StatusRecorder {
	return &StatusRecorder{repo: repo, enrollments: enrollments, notifier: notifier, events: events, now: time.Now}
}

// Apply records update for p. It returns applied=false when another writer
// already moved the payment to a terminal status.
func (r *StatusRecorder) Apply(ctx context.Context, p entities.PaymentRecord, update entities.StatusUpdate) (bool, error) {
	applied, err := r.repo.ApplyStatus(ctx, p.TransactionID, p.Method, update)
	if err != nil {
		logger.Error("[payment][recorder] apply status failed",
			zap.String("tracking_id", p.TransactionID), zap.String("status", string(update.Status)), zap.Error(err))
		return false, &PersistenceError{Op: "apply_status", Err: err}
	}
	if !applied {
		logger.Info("[payment][recorder] transition ignored, payment already terminal",
			zap.String("tracking_id", p.TransactionID), zap.String("status", string(update.Status)))
		return false, nil
	}
	logger.Info("[payment][recorder] status applied",
		zap.String("tracking_id", p.TransactionID), zap.String("status", string(update.Status)))

	r.publish(ctx, p, update.Status)
	if update.Status == entities.PaymentStatusCompleted {
		r.activateEnrollment(ctx, p)
		r.notify(ctx, entities.EmailPaymentConfirmation, confirmationData(p, update))
	}
	return true, nil
}

func (r *StatusRecorder) publish(ctx context.Context, p entities.PaymentRecord, status entities.PaymentStatus) {
	if r.events == nil {
		return
	}
	ev := entities.PaymentEvent{
		Type:          entities.EventPaymentStatusChanged,
		TransactionID: p.TransactionID,
		Method:        string(p.Method),
		Status:        status,
		OccurredAt:    r.now().UTC(),
	}
	if err := r.events.Publish(ctx, ev); err != nil {
		logger.Warn("[payment][recorder] publish event failed", zap.String("tracking_id", p.TransactionID), zap.Error(err))
	}
}

func (r *StatusRecorder) activateEnrollment(ctx context.Context, p entities.PaymentRecord) {
	if r.enrollments == nil || p.UserID == "" || p.CourseID == "" {
		return
	}
	created, err := r.enrollments.Activate(ctx, entities.Enrollment{
		UserID:        p.UserID,
		CourseID:      p.CourseID,
		TransactionID: p.TransactionID,
		Status:        "active",
		ActivatedAt:   r.now().UTC(),
	})
	if err != nil {
		logger.Error("[payment][recorder] enrollment activation failed",
			zap.String("tracking_id", p.TransactionID), zap.String("course_id", p.CourseID), zap.Error(err))
		return
	}
	logger.Info("[payment][recorder] enrollment activated",
		zap.String("tracking_id", p.TransactionID), zap.String("course_id", p.CourseID), zap.Bool("created", created))
	if created {
		r.notify(ctx, entities.EmailEnrollment, map[string]any{
			"email":  p.CustomerEmail,
			"name":   p.CustomerName,
			"course": p.CourseID,
		})
	}
}

func (r *StatusRecorder) notify(ctx context.Context, t entities.EmailType, data map[string]any) {
	notifyBestEffort(ctx, r.notifier, t, data)
}

func confirmationData(p entities.PaymentRecord, update entities.StatusUpdate) map[string]any {
	return map[string]any{
		"email":          p.CustomerEmail,
		"name":           p.CustomerName,
		"amount":         p.Amount.StringFixed(2),
		"currency":       p.Currency,
		"reference":      p.TransactionID,
		"receipt_number": update.ReceiptNumber,
		"course_id":      p.CourseID,
		"payment_method": string(p.Method),
	}
}

// notifyBestEffort queues an email; failures are logged and never returned.
func notifyBestEffort(ctx context.Context, n interfaces.INotifier, t entities.EmailType, data map[string]any) {
	if n == nil {
		return
	}
	if err := n.Notify(ctx, t, data); err != nil {
		logger.Warn("[notification] queue email failed", zap.String("type", string(t)), zap.Error(err))
	}
}
