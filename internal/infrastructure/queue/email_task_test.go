package queue

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/usecase/interfaces"

	"github.com/hibiken/asynq"
)

func TestHandleEmailTask(t *testing.T) {
	t.Run("delivers the decoded payload", func(t *testing.T) {
		task, err := NewEmailTask(entities.EmailPaymentConfirmation, map[string]any{"email": "jane@gmail.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var got entities.EmailType
		h := HandleEmailTask(func(_ context.Context, et entities.EmailType, data map[string]any) error {
			got = et
			if data["email"] != "jane@gmail.com" {
				t.Fatalf("unexpected data: %v", data)
			}
			return nil
		})
		if err := h.ProcessTask(context.Background(), task); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != entities.EmailPaymentConfirmation {
			t.Fatalf("unexpected type %s", got)
		}
	})

	t.Run("malformed payload is not retried", func(t *testing.T) {
		h := HandleEmailTask(func(context.Context, entities.EmailType, map[string]any) error { return nil })
		err := h.ProcessTask(context.Background(), asynq.NewTask(TaskSendEmail, []byte("{")))
		if !errors.Is(err, asynq.SkipRetry) {
			t.Fatalf("expected SkipRetry, got %v", err)
		}
	})

	t.Run("undeliverable email is not retried", func(t *testing.T) {
		task, _ := NewEmailTask(entities.EmailPaymentNotification, nil)
		h := HandleEmailTask(func(context.Context, entities.EmailType, map[string]any) error {
			return fmt.Errorf("invalid email recipient: %w", interfaces.ErrUndeliverable)
		})
		if err := h.ProcessTask(context.Background(), task); !errors.Is(err, asynq.SkipRetry) {
			t.Fatalf("expected SkipRetry, got %v", err)
		}
	})

	t.Run("delivery failure is retried", func(t *testing.T) {
		task, _ := NewEmailTask(entities.EmailContact, nil)
		h := HandleEmailTask(func(context.Context, entities.EmailType, map[string]any) error { return errors.New("429") })
		if err := h.ProcessTask(context.Background(), task); err == nil || errors.Is(err, asynq.SkipRetry) {
			t.Fatalf("expected retryable error, got %v", err)
		}
	})
}

func TestInlineNotifier_DetachesFromRequestContext(t *testing.T) {
	done := make(chan error, 1)
	n := NewInlineNotifier(func(ctx context.Context, _ entities.EmailType, _ map[string]any) error {
		done <- ctx.Err()
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	if err := n.Notify(ctx, entities.EmailContact, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("delivery context must survive the request: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("delivery did not run")
	}
}
