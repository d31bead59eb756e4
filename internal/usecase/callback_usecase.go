package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/domain/errormapping"
	"academy_payments/internal/infrastructure/logger"
	"academy_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	mpesaResultSuccess   = "0"
	mpesaResultCancelled = "1032"
)

// ICallbackUseCase applies asynchronous gateway notifications.
type ICallbackUseCase interface {
	HandleMpesaCallback(ctx context.Context, trackingID string, body []byte, signature string) (CallbackOutcome, error)
	HandleCheckoutWebhook(ctx context.Context, n CheckoutNotification) (CallbackOutcome, error)
}

// CallbackOutcome tells the gateway whether the notification changed state.
// Applied=false with a nil error means the payment was already terminal.
type CallbackOutcome struct {
	TrackingID string                 `json:"tracking_id"`
	Status     entities.PaymentStatus `json:"status"`
	Applied    bool                   `json:"applied"`
}

// CheckoutNotification is a hosted checkout webhook: the provider payment id
// plus the headers needed to verify it.
type CheckoutNotification struct {
	Type      string
	DataID    string
	RequestID string
	Signature string
}

type CallbackSecrets struct {
	MpesaCallbackSecret   string
	CheckoutWebhookSecret string
}

type CallbackUseCase struct {
	repo       interfaces.IPaymentRepository
	redirect   interfaces.IRedirectGateway
	activities interfaces.IActivityRepository
	recorder   *StatusRecorder
	secrets    CallbackSecrets
	now        func() time.Time
}

var _ ICallbackUseCase = (*CallbackUseCase)(nil)

func NewCallbackUseCase(repo interfaces.IPaymentRepository, redirect interfaces.IRedirectGateway, activities interfaces.IActivityRepository, recorder *StatusRecorder, secrets CallbackSecrets) *CallbackUseCase {
	return &CallbackUseCase{repo: repo, redirect: redirect, activities: activities, recorder: recorder, secrets: secrets, now: time.Now}
}

type darajaCallback struct {
	Body struct {
		STKCallback struct {
			MerchantRequestID string      `json:"MerchantRequestID"`
			CheckoutRequestID string      `json:"CheckoutRequestID"`
			ResultCode        json.Number `json:"ResultCode"`
			ResultDesc        string      `json:"ResultDesc"`
			CallbackMetadata  struct {
				Item []struct {
					Name  string `json:"Name"`
					Value any    `json:"Value,omitempty"`
				} `json:"Item"`
			} `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

func (c darajaCallback) metadata(name string) string {
	for _, it := range c.Body.STKCallback.CallbackMetadata.Item {
		if it.Name == name && it.Value != nil {
			return fmt.Sprintf("%v", it.Value)
		}
	}
	return ""
}

// HandleMpesaCallback verifies the body signature before anything else;
// unsigned or forged callbacks never reach the datastore.
func (u *CallbackUseCase) HandleMpesaCallback(ctx context.Context, trackingID string, body []byte, signature string) (CallbackOutcome, error) {
	if !verifyHMACSHA256(body, u.secrets.MpesaCallbackSecret, signature) {
		logger.Warn("[mpesa][callback] signature rejected", zap.String("tracking_id", trackingID))
		return CallbackOutcome{}, ErrInvalidSignature
	}

	var cb darajaCallback
	dec := json.NewDecoder(strings.NewReader(string(body)))
	dec.UseNumber()
	if err := dec.Decode(&cb); err != nil || cb.Body.STKCallback.CheckoutRequestID == "" || cb.Body.STKCallback.ResultCode == "" {
		logger.Warn("[mpesa][callback] invalid payload", zap.String("tracking_id", trackingID), zap.Error(err))
		return CallbackOutcome{}, ErrInvalidCallbackPayload
	}
	stk := cb.Body.STKCallback

	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return CallbackOutcome{}, ErrInvalidTrackingID
	}
	tx, err := u.repo.GetMobileMoneyTransaction(ctx, trackingID)
	if err != nil {
		return CallbackOutcome{}, err
	}
	if tx.TrackingID == "" {
		return CallbackOutcome{}, ErrPaymentNotFound
	}
	if tx.CheckoutRequestID != "" && tx.CheckoutRequestID != stk.CheckoutRequestID {
		logger.Warn("[mpesa][callback] checkout request mismatch",
			zap.String("tracking_id", trackingID),
			zap.String("expected", tx.CheckoutRequestID), zap.String("got", stk.CheckoutRequestID))
		return CallbackOutcome{}, ErrCallbackMismatch
	}

	resultCode := stk.ResultCode.String()
	logger.Info("[mpesa][callback] received",
		zap.String("tracking_id", trackingID), zap.String("result_code", resultCode), zap.String("result_desc", stk.ResultDesc))
	u.record(ctx, entities.ActivityMpesaCallback, trackingID, map[string]string{
		"checkout_request_id": stk.CheckoutRequestID,
		"result_code":         resultCode,
		"result_desc":         stk.ResultDesc,
	})

	update := MpesaResultToStatusUpdate(resultCode, stk.ResultDesc)
	update.ReceiptNumber = cb.metadata("MpesaReceiptNumber")
	return u.apply(ctx, trackingID, update)
}

// MpesaResultToStatusUpdate maps a Daraja result code to a terminal status.
// Failures carry the classified user message, never the raw description.
func MpesaResultToStatusUpdate(resultCode, resultDesc string) entities.StatusUpdate {
	switch resultCode {
	case mpesaResultSuccess:
		return entities.StatusUpdate{Status: entities.PaymentStatusCompleted, ResultCode: resultCode, Reason: resultDesc}
	case mpesaResultCancelled:
		return entities.StatusUpdate{Status: entities.PaymentStatusCancelled, ResultCode: resultCode,
			Reason: errormapping.Classify(resultCode, resultDesc).UserMessage}
	}
	return entities.StatusUpdate{Status: entities.PaymentStatusFailed, ResultCode: resultCode,
		Reason: errormapping.Classify(resultCode, resultDesc).UserMessage}
}

func (u *CallbackUseCase) HandleCheckoutWebhook(ctx context.Context, n CheckoutNotification) (CallbackOutcome, error) {
	if !verifyCheckoutSignature(n, u.secrets.CheckoutWebhookSecret) {
		logger.Warn("[checkout][webhook] signature rejected", zap.String("data_id", n.DataID))
		return CallbackOutcome{}, ErrInvalidSignature
	}
	if u.redirect == nil {
		return CallbackOutcome{}, ErrGatewayNotConfigured
	}

	gp, err := u.redirect.GetPayment(ctx, n.DataID)
	if err != nil {
		logger.Error("[checkout][webhook] payment lookup failed", zap.String("data_id", n.DataID), zap.Error(err))
		return CallbackOutcome{}, &GatewayError{Mapping: classifyGatewayError(err), Cause: err}
	}
	if gp.Reference == "" {
		return CallbackOutcome{}, ErrInvalidCallbackPayload
	}

	u.record(ctx, entities.ActivityGatewayWebhook, gp.Reference, map[string]string{
		"gateway_payment_id": gp.ID,
		"status":             string(gp.Status),
		"status_detail":      gp.StatusDetail,
		"event":              n.Type,
	})

	if !gp.Status.IsTerminal() {
		return CallbackOutcome{TrackingID: gp.Reference, Status: entities.PaymentStatusPending}, nil
	}
	return u.apply(ctx, gp.Reference, entities.StatusUpdate{Status: gp.Status, Reason: gp.StatusDetail, ReceiptNumber: gp.ID})
}

func (u *CallbackUseCase) apply(ctx context.Context, trackingID string, update entities.StatusUpdate) (CallbackOutcome, error) {
	p, err := u.repo.GetByTransactionID(ctx, trackingID)
	if err != nil {
		return CallbackOutcome{}, err
	}
	if p.TransactionID == "" {
		return CallbackOutcome{}, ErrPaymentNotFound
	}

	applied, err := u.recorder.Apply(ctx, p, update)
	if err != nil {
		return CallbackOutcome{}, err
	}
	out := CallbackOutcome{TrackingID: trackingID, Status: update.Status, Applied: applied}
	if !applied {
		// Replays and late notifications keep whatever status won first.
		latest, err := u.repo.GetByTransactionID(ctx, trackingID)
		if err == nil && latest.TransactionID != "" {
			out.Status = latest.Status
		}
	}
	return out, nil
}

func (u *CallbackUseCase) record(ctx context.Context, t entities.ActivityType, trackingID string, meta map[string]string) {
	if u.activities == nil {
		return
	}
	meta["tracking_id"] = trackingID
	err := u.activities.CreateActivity(ctx, entities.Activity{
		ID:        uuid.NewString(),
		Type:      t,
		Action:    "callback_received",
		Metadata:  meta,
		CreatedAt: u.now().UTC(),
	})
	if err != nil {
		logger.Warn("[callback] record activity failed", zap.String("tracking_id", trackingID), zap.Error(err))
	}
}

// SignHMACSHA256 returns the hex signature expected in X-Callback-Signature.
func SignHMACSHA256(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// An empty secret rejects everything.
func verifyHMACSHA256(body []byte, secret, signature string) bool {
	signature = strings.TrimSpace(signature)
	if secret == "" || signature == "" {
		return false
	}
	expected := SignHMACSHA256(body, secret)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}

// verifyCheckoutSignature checks Mercado Pago's "ts=...,v1=..." header over
// the manifest "id:<data.id>;request-id:<x-request-id>;ts:<ts>;".
func verifyCheckoutSignature(n CheckoutNotification, secret string) bool {
	var ts, v1 string
	for _, part := range strings.Split(n.Signature, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "ts":
			ts = v
		case "v1":
			v1 = v
		}
	}
	if ts == "" || v1 == "" || n.DataID == "" {
		return false
	}
	manifest := CheckoutSignatureManifest(n.DataID, n.RequestID, ts)
	return verifyHMACSHA256([]byte(manifest), secret, v1)
}

func CheckoutSignatureManifest(dataID, requestID, ts string) string {
	return fmt.Sprintf("id:%s;request-id:%s;ts:%s;", strings.ToLower(dataID), requestID, ts)
}
