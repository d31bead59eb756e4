package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// MobileMoneyTransaction is the STK-push sub-record of a PaymentRecord.
//
// Storage model (DynamoDB, mpesa_transactions):
//   - PK: tracking_id (same value as PaymentRecord.TransactionID)
type MobileMoneyTransaction struct {
	TrackingID        string          `json:"tracking_id"`
	PhoneNumber       string          `json:"phone_number"`
	Amount            decimal.Decimal `json:"amount"`
	Status            PaymentStatus   `json:"status"`
	CheckoutRequestID string          `json:"checkout_request_id,omitempty"`
	ResultCode        string          `json:"result_code,omitempty"`
	ResultDesc        string          `json:"result_desc,omitempty"`
	ReceiptNumber     string          `json:"receipt_number,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// RedirectTransaction is the hosted-checkout sub-record of a PaymentRecord.
//
// Storage model (DynamoDB, paypal_transactions by default):
//   - PK: tracking_id
type RedirectTransaction struct {
	TrackingID       string          `json:"tracking_id"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	Status           PaymentStatus   `json:"status"`
	GatewayReference string          `json:"gateway_reference,omitempty"`
	RedirectURL      string          `json:"redirect_url,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
