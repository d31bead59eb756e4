package messaging

import (
	"context"
	"errors"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/infrastructure/logger"
	"academy_payments/internal/usecase/interfaces"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

var ErrMissingResendAPIKey = errors.New("missing RESEND_API_KEY")

// ResendSender delivers rendered emails through Resend.
type ResendSender struct {
	client *resend.Client
	from   string
}

var _ interfaces.IEmailSender = (*ResendSender)(nil)

func NewResendSender(apiKey, from string) (*ResendSender, error) {
	if apiKey == "" {
		return nil, ErrMissingResendAPIKey
	}
	if from == "" {
		from = "Academy <onboarding@resend.dev>"
	}
	return &ResendSender{client: resend.NewClient(apiKey), from: from}, nil
}

func (s *ResendSender) Send(ctx context.Context, msg entities.EmailMessage) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if msg.ReplyTo != "" {
		params.ReplyTo = msg.ReplyTo
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return err
	}
	logger.Info("[email][resend] sent", zap.String("to", msg.To), zap.String("id", sent.Id))
	return nil
}

// LogSender only logs; used when no provider is configured.
type LogSender struct{}

var _ interfaces.IEmailSender = LogSender{}

func (LogSender) Send(_ context.Context, msg entities.EmailMessage) error {
	logger.Info("[email][log] provider not configured, email not sent",
		zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}
