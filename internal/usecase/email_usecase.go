package usecase

import (
	"context"
	"fmt"
	"strings"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/domain/validation"
	"academy_payments/internal/infrastructure/logger"
	"academy_payments/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IEmailUseCase renders and delivers transactional emails.
type IEmailUseCase interface {
	// Queue validates and renders the email, then hands it to the notifier.
	// Queue failures are logged, never returned.
	Queue(ctx context.Context, t entities.EmailType, data map[string]any) (EmailDelivery, error)
	// Send renders and delivers synchronously; used by the queue worker.
	Send(ctx context.Context, t entities.EmailType, data map[string]any) (EmailDelivery, error)
}

type EmailDelivery struct {
	Type      entities.EmailType
	Recipient string
	Message   string
}

type EmailUseCase struct {
	sender   interfaces.IEmailSender
	notifier interfaces.INotifier
	opsEmail string
}

var _ IEmailUseCase = (*EmailUseCase)(nil)

func NewEmailUseCase(sender interfaces.IEmailSender, notifier interfaces.INotifier, opsEmail string) *EmailUseCase {
	return &EmailUseCase{sender: sender, notifier: notifier, opsEmail: opsEmail}
}

func (u *EmailUseCase) Queue(ctx context.Context, t entities.EmailType, data map[string]any) (EmailDelivery, error) {
	msg, err := u.render(t, data)
	if err != nil {
		return EmailDelivery{}, err
	}
	notifyBestEffort(ctx, u.notifier, t, data)
	return EmailDelivery{Type: t, Recipient: msg.To, Message: "Email queued successfully"}, nil
}

func (u *EmailUseCase) Send(ctx context.Context, t entities.EmailType, data map[string]any) (EmailDelivery, error) {
	msg, err := u.render(t, data)
	if err != nil {
		return EmailDelivery{}, err
	}
	if u.sender == nil {
		logger.Warn("[email][usecase] sender not configured, dropping", zap.String("type", string(t)), zap.String("to", msg.To))
		return EmailDelivery{}, ErrEmailDeliveryFailed
	}
	if err := u.sender.Send(ctx, msg); err != nil {
		logger.Error("[email][usecase] delivery failed", zap.String("type", string(t)), zap.String("to", msg.To), zap.Error(err))
		return EmailDelivery{}, fmt.Errorf("%w: %v", ErrEmailDeliveryFailed, err)
	}
	logger.Info("[email][usecase] sent", zap.String("type", string(t)), zap.String("to", msg.To))
	return EmailDelivery{Type: t, Recipient: msg.To, Message: "Email sent successfully"}, nil
}

func (u *EmailUseCase) render(t entities.EmailType, data map[string]any) (entities.EmailMessage, error) {
	if !t.Valid() {
		return entities.EmailMessage{}, ErrUnsupportedEmailType
	}
	to, err := u.recipient(t, data)
	if err != nil {
		return entities.EmailMessage{}, err
	}
	html, err := renderEmailBody(t, data)
	if err != nil {
		return entities.EmailMessage{}, err
	}
	msg := entities.EmailMessage{To: to, Subject: emailSubject(t, data), HTML: html}
	if t == entities.EmailContact {
		msg.ReplyTo = stringField(data, "email")
	}
	return msg, nil
}

// Contact and ops notifications go to the operations inbox; everything else
// goes to the address in data.email.
func (u *EmailUseCase) recipient(t entities.EmailType, data map[string]any) (string, error) {
	switch t {
	case entities.EmailContact, entities.EmailPaymentNotification:
		if u.opsEmail == "" {
			return "", ErrInvalidRecipient
		}
		return u.opsEmail, nil
	}
	to := stringField(data, "email")
	if !validation.ValidateEmail(to).IsValid {
		return "", ErrInvalidRecipient
	}
	return to, nil
}

func stringField(data map[string]any, key string) string {
	if data == nil {
		return ""
	}
	v, ok := data[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}
