package entities

import "time"

const EventPaymentStatusChanged = "payment.status_changed"

// PaymentEvent is published whenever a payment reaches a new status.
type PaymentEvent struct {
	Type          string        `json:"type"`
	TransactionID string        `json:"transaction_id"`
	Method        string        `json:"payment_method"`
	Status        PaymentStatus `json:"status"`
	OccurredAt    time.Time     `json:"occurred_at"`
}
