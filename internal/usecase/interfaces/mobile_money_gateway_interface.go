package interfaces

import (
	"context"
	"fmt"

	"academy_payments/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type STKPushRequest struct {
	TrackingID       string
	Phone            string
	Amount           decimal.Decimal
	AccountReference string
	Description      string
}

type STKPushResponse struct {
	MerchantRequestID string
	CheckoutRequestID string
	ResponseCode      string
	CustomerMessage   string
}

type STKQueryResult struct {
	Status     entities.PaymentStatus
	ResultCode string
	ResultDesc string
}

// IMobileMoneyGateway abstracts the STK push provider (M-Pesa Daraja).
//
// Failures reported by the provider are returned as *GatewayFailure so the
// caller can classify them; transport failures are returned as-is.
type IMobileMoneyGateway interface {
	InitiateSTKPush(ctx context.Context, req STKPushRequest) (STKPushResponse, error)
	QuerySTKStatus(ctx context.Context, checkoutRequestID string) (STKQueryResult, error)
}

// GatewayFailure is a provider-reported error with its raw code and message.
type GatewayFailure struct {
	Code    string
	Message string
	Err     error
}

func (e *GatewayFailure) Error() string {
	return fmt.Sprintf("gateway failure code=%s message=%s", e.Code, e.Message)
}

func (e *GatewayFailure) Unwrap() error { return e.Err }
