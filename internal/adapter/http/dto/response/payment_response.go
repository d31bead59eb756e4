package response

import (
	"time"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/usecase"
)

type ProcessPaymentResponse struct {
	Success       bool                           `json:"success"`
	PaymentID     string                         `json:"payment_id"`
	TransactionID string                         `json:"transaction_id"`
	Status        string                         `json:"status"`
	RedirectURL   string                         `json:"redirect_url,omitempty"`
	Instructions  *entities.TransferInstructions `json:"instructions,omitempty"`
	Message       string                         `json:"message,omitempty"`
}

func FromInitiation(r entities.InitiationResult) ProcessPaymentResponse {
	return ProcessPaymentResponse{
		Success:       true,
		PaymentID:     r.PaymentID,
		TransactionID: r.TransactionID,
		Status:        string(r.Status),
		RedirectURL:   r.RedirectURL,
		Instructions:  r.Instructions,
		Message:       r.Message,
	}
}

type PaymentResponse struct {
	ID                     string    `json:"id"`
	TransactionID          string    `json:"transaction_id"`
	PaymentMethod          string    `json:"payment_method"`
	Amount                 string    `json:"amount"`
	Currency               string    `json:"currency"`
	Status                 string    `json:"status"`
	CourseID               string    `json:"course_id,omitempty"`
	ServiceID              string    `json:"service_id,omitempty"`
	ReconciliationRequired bool      `json:"reconciliation_required"`
	StatusReason           string    `json:"status_reason,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// FromPaymentRecord leaves out customer contact details.
func FromPaymentRecord(p entities.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		ID:                     p.ID,
		TransactionID:          p.TransactionID,
		PaymentMethod:          string(p.Method),
		Amount:                 p.Amount.StringFixed(2),
		Currency:               p.Currency,
		Status:                 string(p.Status),
		CourseID:               p.CourseID,
		ServiceID:              p.ServiceID,
		ReconciliationRequired: p.ReconciliationRequired,
		StatusReason:           p.StatusReason,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}
}

type MpesaTransaction struct {
	TrackingID  string    `json:"tracking_id"`
	Status      string    `json:"status"`
	Amount      string    `json:"amount"`
	PhoneNumber string    `json:"phone_number"`
	ResultDesc  string    `json:"result_desc,omitempty"`
	Receipt     string    `json:"receipt_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type MpesaStatusResponse struct {
	Success     bool             `json:"success"`
	Transaction MpesaTransaction `json:"transaction"`
}

func FromMobileMoneyTransaction(tx entities.MobileMoneyTransaction) MpesaStatusResponse {
	return MpesaStatusResponse{
		Success: true,
		Transaction: MpesaTransaction{
			TrackingID:  tx.TrackingID,
			Status:      string(tx.Status),
			Amount:      tx.Amount.StringFixed(2),
			PhoneNumber: tx.PhoneNumber,
			ResultDesc:  tx.ResultDesc,
			Receipt:     tx.ReceiptNumber,
			CreatedAt:   tx.CreatedAt,
			UpdatedAt:   tx.UpdatedAt,
		},
	}
}

type PollResponse struct {
	Success    bool   `json:"success"`
	TrackingID string `json:"tracking_id"`
	Status     string `json:"status"`
	Attempts   int    `json:"attempts"`
	Message    string `json:"message,omitempty"`
}

func FromPollResult(r usecase.PollResult) PollResponse {
	resp := PollResponse{Success: true, TrackingID: r.TrackingID, Status: string(r.Status), Attempts: r.Attempts}
	if r.Status == entities.PaymentStatusTimedOut {
		resp.Message = "We could not confirm your payment yet. Please contact support with your tracking id."
	}
	return resp
}

// CallbackResponse is returned to gateways; "already_processed" tells them
// not to retry.
type CallbackResponse struct {
	Success    bool   `json:"success"`
	TrackingID string `json:"tracking_id"`
	Status     string `json:"status"`
	Result     string `json:"result"`
}

func FromCallbackOutcome(o usecase.CallbackOutcome) CallbackResponse {
	result := "applied"
	if !o.Applied {
		result = "already_processed"
	}
	return CallbackResponse{Success: true, TrackingID: o.TrackingID, Status: string(o.Status), Result: result}
}

type ErrorLookupResponse struct {
	Success          bool     `json:"success"`
	Code             string   `json:"code"`
	Category         string   `json:"category"`
	UserMessage      string   `json:"user_message"`
	Solutions        []string `json:"solutions"`
	Severity         string   `json:"severity"`
	Retryable        bool     `json:"retryable"`
	RetryAfterMillis int64    `json:"retry_after_ms,omitempty"`
}

// FromErrorMapping omits the technical message, which may echo raw gateway text.
func FromErrorMapping(m entities.ErrorMapping, retryAfter time.Duration) ErrorLookupResponse {
	resp := ErrorLookupResponse{
		Success:     true,
		Code:        m.Code,
		Category:    string(m.Category),
		UserMessage: m.UserMessage,
		Solutions:   m.Solutions,
		Severity:    string(m.Severity),
		Retryable:   m.Retryable,
	}
	if m.Retryable {
		resp.RetryAfterMillis = retryAfter.Milliseconds()
	}
	return resp
}
