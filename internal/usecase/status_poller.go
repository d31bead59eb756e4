package usecase

import (
	"context"
	"errors"
	"time"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/infrastructure/logger"

	"go.uber.org/zap"
)

const (
	DefaultPollInterval    = 3 * time.Second
	DefaultPollMaxAttempts = 40
)

// StatusLookup returns the current status of a tracking id.
type StatusLookup interface {
	Lookup(ctx context.Context, trackingID string) (entities.PaymentStatus, error)
}

// IStatusPoller drives a bounded status poll for one payment.
type IStatusPoller interface {
	Poll(ctx context.Context, trackingID string) (PollResult, error)
}

// PollResult is the outcome of a poll loop.
type PollResult struct {
	TrackingID string                 `json:"tracking_id"`
	Status     entities.PaymentStatus `json:"status"`
	Attempts   int                    `json:"attempts"`
}

// StatusPoller queries a tracking id on a fixed interval until the lookup
// reports a terminal status or the attempt budget runs out.
type StatusPoller struct {
	lookup      StatusLookup
	interval    time.Duration
	maxAttempts int
	sleep       func(ctx context.Context, d time.Duration) error
}

var _ IStatusPoller = (*StatusPoller)(nil)

func NewStatusPoller(lookup StatusLookup, interval time.Duration, maxAttempts int) *StatusPoller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultPollMaxAttempts
	}
	return &StatusPoller{lookup: lookup, interval: interval, maxAttempts: maxAttempts, sleep: sleepContext}
}

// Poll never performs more than maxAttempts lookups. Lookup errors count as
// a spent attempt; only an unknown tracking id or a cancelled ctx stop early.
// Exhausting the budget yields PaymentStatusTimedOut.
func (p *StatusPoller) Poll(ctx context.Context, trackingID string) (PollResult, error) {
	res := PollResult{TrackingID: trackingID, Status: entities.PaymentStatusPending}

	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		res.Attempts = attempt

		status, err := p.lookup.Lookup(ctx, trackingID)
		switch {
		case errors.Is(err, ErrPaymentNotFound), errors.Is(err, ErrInvalidTrackingID):
			return res, err
		case err != nil:
			logger.Warn("[payment][poller] lookup failed",
				zap.String("tracking_id", trackingID), zap.Int("attempt", attempt), zap.Error(err))
		case status.IsTerminal():
			res.Status = status
			logger.Info("[payment][poller] terminal status",
				zap.String("tracking_id", trackingID), zap.Int("attempt", attempt), zap.String("status", string(status)))
			return res, nil
		}

		if attempt == p.maxAttempts {
			break
		}
		if err := p.sleep(ctx, p.interval); err != nil {
			return res, err
		}
	}

	res.Status = entities.PaymentStatusTimedOut
	logger.Warn("[payment][poller] attempts exhausted",
		zap.String("tracking_id", trackingID), zap.Int("attempts", res.Attempts))
	return res, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
