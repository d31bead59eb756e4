package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/domain/errormapping"
	"academy_payments/internal/domain/validation"
	"academy_payments/internal/infrastructure/logger"
	"academy_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IPaymentUseCase starts payments and exposes their persisted state.
type IPaymentUseCase interface {
	Initiate(ctx context.Context, req entities.PaymentRequest) (entities.InitiationResult, error)
	GetByTransactionID(ctx context.Context, transactionID string) (entities.PaymentRecord, error)
}

// PaymentConfig holds the values shown to payers and operations.
type PaymentConfig struct {
	PaybillNumber      string
	PaybillAccountName string
	OpsEmail           string
}

type PaymentUseCase struct {
	repo     interfaces.IPaymentRepository
	mobile   interfaces.IMobileMoneyGateway
	redirect interfaces.IRedirectGateway
	notifier interfaces.INotifier
	recorder *StatusRecorder
	cfg      PaymentConfig
	now      func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	mobile interfaces.IMobileMoneyGateway,
	redirect interfaces.IRedirectGateway,
	notifier interfaces.INotifier,
	recorder *StatusRecorder,
	cfg PaymentConfig,
) *PaymentUseCase {
	return &PaymentUseCase{
		repo:     repo,
		mobile:   mobile,
		redirect: redirect,
		notifier: notifier,
		recorder: recorder,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Initiate validates req, persists the pending payment and hands it to the
// method specific flow. Invalid input never touches the datastore.
func (u *PaymentUseCase) Initiate(ctx context.Context, req entities.PaymentRequest) (entities.InitiationResult, error) {
	req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))
	if req.Currency == "" {
		req.Currency = validation.DefaultCurrency
	}

	res := validation.ValidatePaymentForm(req)
	if !res.IsValid {
		logger.Info("[payment][usecase] validation failed", zap.Strings("errors", res.Errors))
		return entities.InitiationResult{}, &ValidationError{Result: res}
	}
	if len(res.Warnings) > 0 {
		logger.Info("[payment][usecase] validation warnings", zap.Strings("warnings", res.Warnings))
	}

	now := u.now().UTC()
	kind := req.Method.Kind()
	record := entities.PaymentRecord{
		ID:            uuid.NewString(),
		TransactionID: newTransactionID(kind, now),
		Method:        kind,
		Amount:        req.Amount.Round(2),
		Currency:      req.Currency,
		Status:        entities.PaymentStatusPending,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		UserID:        strings.TrimSpace(req.UserID),
		CourseID:      strings.TrimSpace(req.CourseID),
		ServiceID:     strings.TrimSpace(req.ServiceID),
		Description:   strings.TrimSpace(req.Description),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	logger.Info("[payment][usecase] initiate start",
		zap.String("tracking_id", record.TransactionID), zap.String("method", string(kind)), zap.String("amount", record.Amount.String()))

	result, err := entities.Dispatch(req.Method, &initiation{u: u, ctx: ctx, record: record})
	if err != nil {
		logger.Error("[payment][usecase] initiate failed",
			zap.String("tracking_id", record.TransactionID), zap.String("method", string(kind)), zap.Error(err))
		return entities.InitiationResult{}, err
	}

	notifyBestEffort(ctx, u.notifier, entities.EmailPaymentNotification, map[string]any{
		"email":          u.cfg.OpsEmail,
		"name":           record.CustomerName,
		"customer_email": record.CustomerEmail,
		"amount":         record.Amount.StringFixed(2),
		"currency":       record.Currency,
		"reference":      record.TransactionID,
		"payment_method": string(kind),
		"course_id":      record.CourseID,
	})

	logger.Info("[payment][usecase] initiate success",
		zap.String("tracking_id", result.TransactionID), zap.String("status", string(result.Status)))
	return result, nil
}

func (u *PaymentUseCase) GetByTransactionID(ctx context.Context, transactionID string) (entities.PaymentRecord, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return entities.PaymentRecord{}, ErrInvalidTrackingID
	}
	p, err := u.repo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if p.TransactionID == "" {
		return entities.PaymentRecord{}, ErrPaymentNotFound
	}
	return p, nil
}

// initiation carries one Initiate call through entities.Dispatch.
type initiation struct {
	u      *PaymentUseCase
	ctx    context.Context
	record entities.PaymentRecord
}

var _ entities.MethodHandler = (*initiation)(nil)

func (in *initiation) MobileMoney(m entities.MobileMoney) (entities.InitiationResult, error) {
	u, ctx, p := in.u, in.ctx, in.record
	if u.mobile == nil {
		return entities.InitiationResult{}, ErrGatewayNotConfigured
	}

	phone := validation.NormalizePhone(m.Phone)
	tx := entities.MobileMoneyTransaction{
		TrackingID:  p.TransactionID,
		PhoneNumber: phone,
		Amount:      p.Amount,
		Status:      entities.PaymentStatusPending,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if err := u.repo.CreateMobileMoneyPayment(ctx, p, tx); err != nil {
		return entities.InitiationResult{}, &PersistenceError{Op: "create_mobile_money_payment", Err: err}
	}

	push, err := u.mobile.InitiateSTKPush(ctx, interfaces.STKPushRequest{
		TrackingID:       p.TransactionID,
		Phone:            phone,
		Amount:           p.Amount,
		AccountReference: accountReference(p),
		Description:      paymentTitle(p),
	})
	if err != nil {
		mapping := classifyGatewayError(err)
		if pushOutcomeUnknown(mapping) {
			// Daraja may already have prompted the payer; the callback or the
			// poller settles the payment.
			logger.Warn("[payment][usecase] stk push outcome unknown, left pending",
				zap.String("tracking_id", p.TransactionID), zap.String("category", string(mapping.Category)), zap.Error(err))
			return entities.InitiationResult{}, &GatewayError{Mapping: mapping, Cause: err}
		}
		return entities.InitiationResult{}, in.markFailed(mapping, err)
	}

	if err := u.repo.AttachCheckoutRequestID(ctx, p.TransactionID, push.CheckoutRequestID); err != nil {
		logger.Error("[payment][usecase] attach checkout request id failed",
			zap.String("tracking_id", p.TransactionID), zap.String("checkout_request_id", push.CheckoutRequestID), zap.Error(err))
	}

	msg := push.CustomerMessage
	if msg == "" {
		msg = "Check your phone and enter your M-Pesa PIN to complete the payment"
	}
	return entities.InitiationResult{
		PaymentID:     p.ID,
		TransactionID: p.TransactionID,
		Status:        entities.PaymentStatusPending,
		Message:       msg,
	}, nil
}

func (in *initiation) RedirectGateway(m entities.RedirectGateway) (entities.InitiationResult, error) {
	u, ctx, p := in.u, in.ctx, in.record
	if u.redirect == nil {
		return entities.InitiationResult{}, ErrGatewayNotConfigured
	}

	rt := entities.RedirectTransaction{
		TrackingID: p.TransactionID,
		Amount:     p.Amount,
		Currency:   p.Currency,
		Status:     entities.PaymentStatusPending,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if err := u.repo.CreateRedirectPayment(ctx, p, rt); err != nil {
		return entities.InitiationResult{}, &PersistenceError{Op: "create_redirect_payment", Err: err}
	}

	session, err := u.redirect.CreateCheckout(ctx, interfaces.CheckoutRequest{
		TrackingID:  p.TransactionID,
		Title:       paymentTitle(p),
		Description: p.Description,
		PayerName:   p.CustomerName,
		PayerEmail:  p.CustomerEmail,
		Amount:      p.Amount,
		Currency:    p.Currency,
		ReturnURL:   m.ReturnURL,
	})
	if err != nil {
		return entities.InitiationResult{}, in.markFailed(classifyGatewayError(err), err)
	}

	if err := u.repo.AttachRedirectCheckout(ctx, p.TransactionID, session.Reference, session.RedirectURL); err != nil {
		logger.Error("[payment][usecase] attach checkout session failed",
			zap.String("tracking_id", p.TransactionID), zap.Error(err))
	}

	return entities.InitiationResult{
		PaymentID:     p.ID,
		TransactionID: p.TransactionID,
		Status:        entities.PaymentStatusPending,
		RedirectURL:   session.RedirectURL,
		Message:       "Continue to the secure checkout page to complete the payment",
	}, nil
}

func (in *initiation) ManualTransfer(_ entities.ManualTransfer) (entities.InitiationResult, error) {
	u, ctx, p := in.u, in.ctx, in.record
	p.ReconciliationRequired = true
	if err := u.repo.CreateManualPayment(ctx, p); err != nil {
		return entities.InitiationResult{}, &PersistenceError{Op: "create_manual_payment", Err: err}
	}

	instructions := &entities.TransferInstructions{
		PaybillNumber: u.cfg.PaybillNumber,
		AccountName:   u.cfg.PaybillAccountName,
		Reference:     p.TransactionID,
		Amount:        p.Amount.StringFixed(2),
		Currency:      p.Currency,
	}
	notifyBestEffort(ctx, u.notifier, entities.EmailPaybillInstructions, map[string]any{
		"email":          p.CustomerEmail,
		"name":           p.CustomerName,
		"paybill_number": instructions.PaybillNumber,
		"account_name":   instructions.AccountName,
		"reference":      instructions.Reference,
		"amount":         instructions.Amount,
		"currency":       instructions.Currency,
	})

	return entities.InitiationResult{
		PaymentID:     p.ID,
		TransactionID: p.TransactionID,
		Status:        entities.PaymentStatusPending,
		Instructions:  instructions,
		Message:       "Payment instructions have been sent to your email",
	}, nil
}

// markFailed records a definitive gateway rejection so the payment does not
// stay pending forever.
func (in *initiation) markFailed(mapping entities.ErrorMapping, err error) error {
	if _, applyErr := in.u.recorder.Apply(in.ctx, in.record, entities.StatusUpdate{
		Status:     entities.PaymentStatusFailed,
		Reason:     mapping.UserMessage,
		ResultCode: mapping.Code,
	}); applyErr != nil {
		logger.Error("[payment][usecase] mark failed after gateway error failed",
			zap.String("tracking_id", in.record.TransactionID), zap.Error(applyErr))
	}
	return &GatewayError{Mapping: mapping, Cause: err}
}

// pushOutcomeUnknown reports whether the request may have reached the gateway
// even though no answer came back.
func pushOutcomeUnknown(m entities.ErrorMapping) bool {
	return m.Category == entities.ErrorCategoryTimeout || m.Category == entities.ErrorCategoryNetworkError
}

func classifyGatewayError(err error) entities.ErrorMapping {
	var gf *interfaces.GatewayFailure
	if errors.As(err, &gf) {
		return errormapping.Classify(gf.Code, gf.Message)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errormapping.Classify("TIMEOUT", err.Error())
	}
	return errormapping.Classify("", err.Error())
}

func paymentTitle(p entities.PaymentRecord) string {
	switch {
	case p.Description != "":
		return p.Description
	case p.CourseID != "":
		return fmt.Sprintf("Course %s", p.CourseID)
	case p.ServiceID != "":
		return fmt.Sprintf("Service %s", p.ServiceID)
	}
	return "Payment " + p.TransactionID
}

// accountReference is shown on the payer's phone; Daraja caps it at 12 chars.
func accountReference(p entities.PaymentRecord) string {
	ref := p.CourseID
	if ref == "" {
		ref = p.ServiceID
	}
	if ref == "" {
		ref = p.TransactionID[strings.LastIndex(p.TransactionID, "_")+1:]
	}
	if len(ref) > 12 {
		ref = ref[:12]
	}
	return ref
}
