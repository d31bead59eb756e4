package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"academy_payments/internal/domain/entities"
)

type scriptedLookup struct {
	steps []lookupStep
	calls int
}

type lookupStep struct {
	status entities.PaymentStatus
	err    error
}

func (s *scriptedLookup) Lookup(_ context.Context, _ string) (entities.PaymentStatus, error) {
	i := s.calls
	s.calls++
	if i >= len(s.steps) {
		return entities.PaymentStatusPending, nil
	}
	return s.steps[i].status, s.steps[i].err
}

func newTestPoller(l StatusLookup, maxAttempts int) (*StatusPoller, *int) {
	p := NewStatusPoller(l, time.Second, maxAttempts)
	sleeps := 0
	p.sleep = func(context.Context, time.Duration) error {
		sleeps++
		return nil
	}
	return p, &sleeps
}

func TestStatusPoller_CompletesOnTerminalStatus(t *testing.T) {
	lookup := &scriptedLookup{steps: []lookupStep{
		{status: entities.PaymentStatusPending},
		{status: entities.PaymentStatusPending},
		{status: entities.PaymentStatusCompleted},
	}}
	p, sleeps := newTestPoller(lookup, 40)

	res, err := p.Poll(context.Background(), "MPESA_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != entities.PaymentStatusCompleted || res.Attempts != 3 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if lookup.calls != 3 || *sleeps != 2 {
		t.Fatalf("expected 3 lookups and 2 sleeps, got %d/%d", lookup.calls, *sleeps)
	}
}

func TestStatusPoller_TimesOutAfterBudget(t *testing.T) {
	lookup := &scriptedLookup{}
	p, sleeps := newTestPoller(lookup, 40)

	res, err := p.Poll(context.Background(), "MPESA_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != entities.PaymentStatusTimedOut {
		t.Fatalf("expected timed_out, got %s", res.Status)
	}
	if lookup.calls != 40 || res.Attempts != 40 {
		t.Fatalf("expected exactly 40 lookups, got %d", lookup.calls)
	}
	if *sleeps != 39 {
		t.Fatalf("expected no sleep after the last attempt, got %d sleeps", *sleeps)
	}
}

func TestStatusPoller_TransientErrorsSpendAttempts(t *testing.T) {
	transient := errors.New("connection reset")
	lookup := &scriptedLookup{steps: []lookupStep{
		{err: transient},
		{err: transient},
		{status: entities.PaymentStatusFailed},
	}}
	p, _ := newTestPoller(lookup, 5)

	res, err := p.Poll(context.Background(), "MPESA_1")
	if err != nil {
		t.Fatalf("transient errors must not abort the loop, got %v", err)
	}
	if res.Status != entities.PaymentStatusFailed || res.Attempts != 3 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestStatusPoller_ErrorsOnlyExhaustBudget(t *testing.T) {
	lookup := &scriptedLookup{steps: []lookupStep{
		{err: errors.New("x")}, {err: errors.New("x")}, {err: errors.New("x")},
	}}
	p, _ := newTestPoller(lookup, 3)

	res, err := p.Poll(context.Background(), "MPESA_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != entities.PaymentStatusTimedOut || lookup.calls != 3 {
		t.Fatalf("unexpected result: %+v calls=%d", res, lookup.calls)
	}
}

func TestStatusPoller_UnknownPaymentStopsImmediately(t *testing.T) {
	lookup := &scriptedLookup{steps: []lookupStep{{err: ErrPaymentNotFound}}}
	p, _ := newTestPoller(lookup, 40)

	_, err := p.Poll(context.Background(), "MPESA_404")
	if !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
	if lookup.calls != 1 {
		t.Fatalf("expected a single lookup, got %d", lookup.calls)
	}
}

func TestStatusPoller_ContextCancelled(t *testing.T) {
	lookup := &scriptedLookup{}
	p := NewStatusPoller(lookup, time.Hour, 40)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Poll(ctx, "MPESA_1")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if lookup.calls != 1 {
		t.Fatalf("expected one lookup before the cancelled sleep, got %d", lookup.calls)
	}
}

func TestNewStatusPoller_Defaults(t *testing.T) {
	p := NewStatusPoller(&scriptedLookup{}, 0, 0)
	if p.interval != DefaultPollInterval || p.maxAttempts != DefaultPollMaxAttempts {
		t.Fatalf("unexpected defaults: %v %d", p.interval, p.maxAttempts)
	}
}
