package interfaces

import (
	"context"

	"academy_payments/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CheckoutRequest struct {
	TrackingID  string
	Title       string
	Description string
	PayerName   string
	PayerEmail  string
	Amount      decimal.Decimal
	Currency    string
	ReturnURL   string
}

type CheckoutSession struct {
	Reference   string
	RedirectURL string
}

// GatewayPayment is the provider view of a payment made through checkout.
type GatewayPayment struct {
	ID           string
	Reference    string
	Status       entities.PaymentStatus
	StatusDetail string
}

// IRedirectGateway abstracts hosted checkout providers (e.g. Mercado Pago).
type IRedirectGateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (CheckoutSession, error)
	GetPayment(ctx context.Context, paymentID string) (GatewayPayment, error)
}
