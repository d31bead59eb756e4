package entities

import (
	"errors"
	"strings"
)

type PaymentMethodKind string

const (
	MethodMobileMoney     PaymentMethodKind = "mobile_money"
	MethodRedirectGateway PaymentMethodKind = "redirect_gateway"
	MethodManualTransfer  PaymentMethodKind = "manual_transfer"
)

// PaymentMethod is a closed set of variants. Only types in this package
// implement it; behavior per variant is selected through MethodHandler.
type PaymentMethod interface {
	Kind() PaymentMethodKind
	dispatch(h MethodHandler) (InitiationResult, error)
}

// MethodHandler has one method per PaymentMethod variant. Adding a variant
// adds a method here, which breaks every handler that does not implement it.
type MethodHandler interface {
	MobileMoney(m MobileMoney) (InitiationResult, error)
	RedirectGateway(m RedirectGateway) (InitiationResult, error)
	ManualTransfer(m ManualTransfer) (InitiationResult, error)
}

// Dispatch routes m to the handler method of its variant.
func Dispatch(m PaymentMethod, h MethodHandler) (InitiationResult, error) {
	if m == nil {
		return InitiationResult{}, errors.New("payment method is required")
	}
	return m.dispatch(h)
}

// MobileMoney is an STK-push payment prompted on the payer's phone.
type MobileMoney struct {
	Phone string
}

func (MobileMoney) Kind() PaymentMethodKind { return MethodMobileMoney }

func (m MobileMoney) dispatch(h MethodHandler) (InitiationResult, error) { return h.MobileMoney(m) }

// RedirectGateway sends the payer to a hosted checkout page.
type RedirectGateway struct {
	ReturnURL string
}

func (RedirectGateway) Kind() PaymentMethodKind { return MethodRedirectGateway }

func (m RedirectGateway) dispatch(h MethodHandler) (InitiationResult, error) {
	return h.RedirectGateway(m)
}

// ManualTransfer is a bank/paybill transfer reconciled by operations.
type ManualTransfer struct{}

func (ManualTransfer) Kind() PaymentMethodKind { return MethodManualTransfer }

func (m ManualTransfer) dispatch(h MethodHandler) (InitiationResult, error) {
	return h.ManualTransfer(m)
}

// ParsePaymentMethodKind accepts canonical names and the provider aliases
// used by the storefront ("mpesa", "paypal", "paybill", ...).
func ParsePaymentMethodKind(raw string) (PaymentMethodKind, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "mobile_money", "mpesa", "m-pesa":
		return MethodMobileMoney, true
	case "redirect_gateway", "paypal", "mercadopago", "card":
		return MethodRedirectGateway, true
	case "manual_transfer", "paybill", "bank_transfer", "bank":
		return MethodManualTransfer, true
	}
	return "", false
}

// InitiationResult is what the caller needs after a payment is started.
type InitiationResult struct {
	PaymentID     string                `json:"payment_id"`
	TransactionID string                `json:"transaction_id"`
	Status        PaymentStatus         `json:"status"`
	RedirectURL   string                `json:"redirect_url,omitempty"`
	Instructions  *TransferInstructions `json:"instructions,omitempty"`
	Message       string                `json:"message,omitempty"`
}

// TransferInstructions tell the payer where to send a manual transfer.
type TransferInstructions struct {
	PaybillNumber string `json:"paybill_number"`
	AccountName   string `json:"account_name"`
	Reference     string `json:"reference"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
}
