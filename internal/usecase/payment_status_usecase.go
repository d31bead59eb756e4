package usecase

import (
	"context"
	"strings"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/infrastructure/logger"
	"academy_payments/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IPaymentStatusUseCase answers "where is my payment" for push-based payments.
type IPaymentStatusUseCase interface {
	// GetMobileMoneyStatus returns the stored transaction, refreshed from the
	// gateway once when it is still pending.
	GetMobileMoneyStatus(ctx context.Context, trackingID string) (entities.MobileMoneyTransaction, error)
	// Lookup is one poll tick: it returns the current status of trackingID.
	Lookup(ctx context.Context, trackingID string) (entities.PaymentStatus, error)
	Subscribe(ctx context.Context, trackingID string) (<-chan entities.PaymentEvent, func(), error)
}

type PaymentStatusUseCase struct {
	repo     interfaces.IPaymentRepository
	mobile   interfaces.IMobileMoneyGateway
	events   interfaces.IEventBus
	recorder *StatusRecorder
}

var _ IPaymentStatusUseCase = (*PaymentStatusUseCase)(nil)

func NewPaymentStatusUseCase(repo interfaces.IPaymentRepository, mobile interfaces.IMobileMoneyGateway, events interfaces.IEventBus, recorder *StatusRecorder) *PaymentStatusUseCase {
	return &PaymentStatusUseCase{repo: repo, mobile: mobile, events: events, recorder: recorder}
}

func (u *PaymentStatusUseCase) GetMobileMoneyStatus(ctx context.Context, trackingID string) (entities.MobileMoneyTransaction, error) {
	tx, err := u.load(ctx, trackingID)
	if err != nil {
		return entities.MobileMoneyTransaction{}, err
	}
	if tx.Status.IsTerminal() {
		return tx, nil
	}

	if _, err := u.refresh(ctx, tx); err != nil {
		logger.Warn("[mpesa][status] gateway refresh failed, returning stored status",
			zap.String("tracking_id", tx.TrackingID), zap.Error(err))
		return tx, nil
	}
	return u.load(ctx, tx.TrackingID)
}

// Lookup only consults the gateway for pending mobile money payments; other
// methods are settled by their webhook or by reconciliation.
func (u *PaymentStatusUseCase) Lookup(ctx context.Context, trackingID string) (entities.PaymentStatus, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return "", ErrInvalidTrackingID
	}
	p, err := u.repo.GetByTransactionID(ctx, trackingID)
	if err != nil {
		return "", err
	}
	if p.TransactionID == "" {
		return "", ErrPaymentNotFound
	}
	if p.Status.IsTerminal() || p.Method != entities.MethodMobileMoney {
		return p.Status, nil
	}

	tx, err := u.load(ctx, trackingID)
	if err != nil {
		return "", err
	}
	if tx.Status.IsTerminal() {
		return tx.Status, nil
	}
	return u.refresh(ctx, tx)
}

func (u *PaymentStatusUseCase) Subscribe(ctx context.Context, trackingID string) (<-chan entities.PaymentEvent, func(), error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return nil, nil, ErrInvalidTrackingID
	}
	if u.events == nil {
		return nil, nil, ErrEventsUnavailable
	}
	return u.events.Subscribe(ctx, trackingID)
}

func (u *PaymentStatusUseCase) load(ctx context.Context, trackingID string) (entities.MobileMoneyTransaction, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return entities.MobileMoneyTransaction{}, ErrInvalidTrackingID
	}
	tx, err := u.repo.GetMobileMoneyTransaction(ctx, trackingID)
	if err != nil {
		return entities.MobileMoneyTransaction{}, err
	}
	if tx.TrackingID == "" {
		return entities.MobileMoneyTransaction{}, ErrPaymentNotFound
	}
	return tx, nil
}

// refresh asks the gateway once and records a terminal answer. When another
// writer got there first the stored status is returned instead.
func (u *PaymentStatusUseCase) refresh(ctx context.Context, tx entities.MobileMoneyTransaction) (entities.PaymentStatus, error) {
	if u.mobile == nil || tx.CheckoutRequestID == "" {
		return tx.Status, nil
	}

	res, err := u.mobile.QuerySTKStatus(ctx, tx.CheckoutRequestID)
	if err != nil {
		return tx.Status, err
	}
	if !res.Status.IsTerminal() {
		return entities.PaymentStatusPending, nil
	}

	p, err := u.repo.GetByTransactionID(ctx, tx.TrackingID)
	if err != nil {
		return tx.Status, err
	}
	if p.TransactionID == "" {
		return tx.Status, ErrPaymentNotFound
	}

	update := MpesaResultToStatusUpdate(res.ResultCode, res.ResultDesc)
	update.Status = res.Status
	applied, err := u.recorder.Apply(ctx, p, update)
	if err != nil {
		return tx.Status, err
	}
	if applied {
		return res.Status, nil
	}

	latest, err := u.repo.GetMobileMoneyTransaction(ctx, tx.TrackingID)
	if err != nil {
		return tx.Status, err
	}
	return latest.Status, nil
}
