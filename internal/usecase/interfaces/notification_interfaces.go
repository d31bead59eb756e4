package interfaces

import (
	"context"
	"errors"

	"academy_payments/internal/domain/entities"
)

// ErrUndeliverable marks email failures that retrying cannot fix.
var ErrUndeliverable = errors.New("email undeliverable")

// INotifier queues an email for background delivery.
type INotifier interface {
	Notify(ctx context.Context, emailType entities.EmailType, data map[string]any) error
}

// IEmailSender delivers a rendered email.
type IEmailSender interface {
	Send(ctx context.Context, msg entities.EmailMessage) error
}
