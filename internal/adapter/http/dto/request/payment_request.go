package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"academy_payments/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")

// ProcessPaymentRequest is the checkout form submission.
//
// Field formats (phone, email, name, amount bounds) are checked by the
// payment usecase so the payer gets the detailed validation messages.
type ProcessPaymentRequest struct {
	PaymentMethod string          `json:"payment_method" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PhoneNumber   string          `json:"phone_number"`
	ReturnURL     string          `json:"return_url" binding:"omitempty,url"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	UserID        string          `json:"user_id"`
	CourseID      string          `json:"course_id"`
	ServiceID     string          `json:"service_id"`
	Description   string          `json:"description"`
}

// ToPaymentRequest resolves the method alias into its variant.
func (r ProcessPaymentRequest) ToPaymentRequest() (entities.PaymentRequest, error) {
	kind, ok := entities.ParsePaymentMethodKind(r.PaymentMethod)
	if !ok {
		return entities.PaymentRequest{}, ErrUnsupportedPaymentMethod
	}

	var method entities.PaymentMethod
	switch kind {
	case entities.MethodMobileMoney:
		method = entities.MobileMoney{Phone: strings.TrimSpace(r.PhoneNumber)}
	case entities.MethodRedirectGateway:
		method = entities.RedirectGateway{ReturnURL: strings.TrimSpace(r.ReturnURL)}
	case entities.MethodManualTransfer:
		method = entities.ManualTransfer{}
	}

	return entities.PaymentRequest{
		CustomerName:  strings.TrimSpace(r.CustomerName),
		CustomerEmail: strings.TrimSpace(r.CustomerEmail),
		Method:        method,
		Amount:        r.Amount,
		Currency:      r.Currency,
		UserID:        strings.TrimSpace(r.UserID),
		CourseID:      strings.TrimSpace(r.CourseID),
		ServiceID:     strings.TrimSpace(r.ServiceID),
		Description:   strings.TrimSpace(r.Description),
	}, nil
}

type MpesaStatusRequest struct {
	TrackingID string `json:"tracking_id" binding:"required"`
}

// MercadoPagoWebhookRequest is the notification body. data.id may also come
// as the "data.id" query parameter.
type MercadoPagoWebhookRequest struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID NotificationID `json:"id"`
	} `json:"data"`
}

// NotificationID accepts data.id as a JSON string or number.
type NotificationID string

func (id *NotificationID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = NotificationID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = NotificationID(n.String())
	return nil
}
