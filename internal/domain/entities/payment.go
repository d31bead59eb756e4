package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the persisted lifecycle of a payment.
//
// Transitions only move forward: pending -> completed | failed | cancelled.
// TimedOut is reported by the poller when the gateway never answers; it is
// never persisted so that a late callback can still complete the payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusTimedOut  PaymentStatus = "timed_out"
)

// IsTerminal reports whether no further automatic transition happens from s.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusCancelled, PaymentStatusTimedOut:
		return true
	}
	return false
}

var allowedTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending: {
		PaymentStatusCompleted,
		PaymentStatusFailed,
		PaymentStatusCancelled,
	},
	PaymentStatusCompleted: {},
	PaymentStatusFailed:    {},
	PaymentStatusCancelled: {},
}

// CanTransition checks whether a persisted status may move from one state to another.
func CanTransition(from, to PaymentStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// PaymentRecord is the payment entity persisted in the payments table.
//
// Storage model (DynamoDB):
//   - PK: transaction_id (tracking id shared with the method sub-record)
//
// Amount and Currency never change after creation.
type PaymentRecord struct {
	ID                     string            `json:"id"`
	TransactionID          string            `json:"transaction_id"`
	Method                 PaymentMethodKind `json:"payment_method"`
	Amount                 decimal.Decimal   `json:"amount"`
	Currency               string            `json:"currency"`
	Status                 PaymentStatus     `json:"status"`
	CustomerName           string            `json:"customer_name"`
	CustomerEmail          string            `json:"customer_email"`
	UserID                 string            `json:"user_id,omitempty"`
	CourseID               string            `json:"course_id,omitempty"`
	ServiceID              string            `json:"service_id,omitempty"`
	Description            string            `json:"description,omitempty"`
	ReconciliationRequired bool              `json:"reconciliation_required"`
	StatusReason           string            `json:"status_reason,omitempty"`
	CreatedAt              time.Time         `json:"created_at"`
	UpdatedAt              time.Time         `json:"updated_at"`
}

// PaymentRequest is the submission coming from the checkout form. It is never
// persisted as-is; its fields are redistributed into PaymentRecord.
type PaymentRequest struct {
	CustomerName  string
	CustomerEmail string
	Method        PaymentMethod
	Amount        decimal.Decimal
	Currency      string
	UserID        string
	CourseID      string
	ServiceID     string
	Description   string
}

// StatusUpdate carries a terminal result reported by a gateway.
type StatusUpdate struct {
	Status        PaymentStatus
	Reason        string
	ResultCode    string
	ReceiptNumber string
}
