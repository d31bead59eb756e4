package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/infrastructure/logger"
	"academy_payments/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type MercadoPagoConfig struct {
	AccessToken     string
	NotificationURL string
	SuccessURL      string
	FailureURL      string
	PendingURL      string
	Sandbox         bool
}

// MercadoPagoGateway is the hosted checkout provider. Payments are created
// as preferences whose external_reference is our tracking id.
type MercadoPagoGateway struct {
	preferences preference.Client
	payments    payment.Client
	cfg         MercadoPagoConfig
	mockMode    bool
}

var _ interfaces.IRedirectGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg MercadoPagoConfig) (*MercadoPagoGateway, error) {
	if IsMockEnabled("MERCADOPAGO_MOCK") {
		logger.Info("[checkout][gateway] mock mode enabled")
		return &MercadoPagoGateway{cfg: cfg, mockMode: true}, nil
	}

	if cfg.AccessToken == "" {
		logger.Warn("[checkout][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		logger.Error("[checkout][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.Info("[checkout][gateway] Mercado Pago client initialized", zap.Bool("sandbox", cfg.Sandbox))

	return &MercadoPagoGateway{
		preferences: preference.NewClient(sdkCfg),
		payments:    payment.NewClient(sdkCfg),
		cfg:         cfg,
	}, nil
}

func (g *MercadoPagoGateway) CreateCheckout(ctx context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSession, error) {
	if g != nil && g.mockMode {
		ref := "mock-pref-" + req.TrackingID
		logger.Info("[checkout][gateway] mock checkout created", zap.String("tracking_id", req.TrackingID), zap.String("reference", ref))
		return interfaces.CheckoutSession{
			Reference:   ref,
			RedirectURL: "https://sandbox.mercadopago.test/checkout?pref_id=" + ref,
		}, nil
	}
	if g == nil || g.preferences == nil {
		return interfaces.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}

	back := g.backURLs(req.ReturnURL)
	unitPrice, _ := req.Amount.Float64()
	first, last := splitName(req.PayerName)

	pr := preference.Request{
		ExternalReference: req.TrackingID,
		NotificationURL:   g.cfg.NotificationURL,
		Items: []preference.ItemRequest{{
			ID:          req.TrackingID,
			Title:       req.Title,
			Description: req.Description,
			Quantity:    1,
			UnitPrice:   unitPrice,
			CurrencyID:  req.Currency,
		}},
		Payer: &preference.PayerRequest{
			Name:    first,
			Surname: last,
			Email:   req.PayerEmail,
		},
	}
	if back.Success != "" {
		pr.BackURLs = back
		pr.AutoReturn = "approved"
	}

	logger.Info("[checkout][gateway] create preference start", zap.String("tracking_id", req.TrackingID))
	resp, err := g.preferences.Create(ctx, pr)
	if err != nil {
		logger.Error("[checkout][gateway] sdk create preference failed", zap.String("tracking_id", req.TrackingID), zap.Error(err))
		return interfaces.CheckoutSession{}, &interfaces.GatewayFailure{Code: "SERVICE_UNAVAILABLE", Message: err.Error(), Err: err}
	}

	url := resp.InitPoint
	if g.cfg.Sandbox && resp.SandboxInitPoint != "" {
		url = resp.SandboxInitPoint
	}
	logger.Info("[checkout][gateway] create preference success", zap.String("tracking_id", req.TrackingID), zap.String("reference", resp.ID))
	return interfaces.CheckoutSession{Reference: resp.ID, RedirectURL: url}, nil
}

// GetPayment fetches a payment announced by a webhook. In mock mode the
// webhook data id is taken to be the tracking id itself.
func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (interfaces.GatewayPayment, error) {
	if g != nil && g.mockMode {
		return interfaces.GatewayPayment{
			ID:           paymentID,
			Reference:    paymentID,
			Status:       entities.PaymentStatusCompleted,
			StatusDetail: "accredited",
		}, nil
	}
	if g == nil || g.payments == nil {
		return interfaces.GatewayPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil {
		return interfaces.GatewayPayment{}, &interfaces.GatewayFailure{Code: "INVALID_PAYMENT_ID", Message: "invalid payment id", Err: err}
	}
	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		logger.Error("[checkout][gateway] sdk get payment failed", zap.Int("payment_id", id), zap.Error(err))
		return interfaces.GatewayPayment{}, &interfaces.GatewayFailure{Code: "SERVICE_UNAVAILABLE", Message: err.Error(), Err: err}
	}

	return interfaces.GatewayPayment{
		ID:           fmt.Sprintf("%d", resp.ID),
		Reference:    resp.ExternalReference,
		Status:       MapMercadoPagoStatus(resp.Status),
		StatusDetail: resp.StatusDetail,
	}, nil
}

// MapMercadoPagoStatus folds provider statuses into ours. Anything the
// provider may still settle stays pending.
func MapMercadoPagoStatus(status string) entities.PaymentStatus {
	switch strings.ToLower(status) {
	case "approved":
		return entities.PaymentStatusCompleted
	case "rejected":
		return entities.PaymentStatusFailed
	case "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusCancelled
	}
	return entities.PaymentStatusPending
}

// A payer supplied return URL replaces every configured back URL.
func (g *MercadoPagoGateway) backURLs(returnURL string) *preference.BackURLsRequest {
	if returnURL != "" {
		return &preference.BackURLsRequest{Success: returnURL, Pending: returnURL, Failure: returnURL}
	}
	return &preference.BackURLsRequest{Success: g.cfg.SuccessURL, Pending: g.cfg.PendingURL, Failure: g.cfg.FailureURL}
}

func splitName(full string) (string, string) {
	full = strings.TrimSpace(full)
	first, last, _ := strings.Cut(full, " ")
	return first, strings.TrimSpace(last)
}
