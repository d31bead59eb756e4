package interfaces

import (
	"context"

	"academy_payments/internal/domain/entities"
)

// IPaymentRepository abstracts persistence of payments and their method
// sub-records (payments, mpesa_transactions, paypal_transactions tables).
//
// Every write is keyed by the tracking id:
//   - Create* writes the payment and its sub-record as one unit, or nothing.
//   - ApplyStatus only moves a pending payment forward; it reports applied=false
//     when the payment was already terminal, leaving storage untouched.
//
// Getters return a zero value (empty TransactionID/TrackingID) when absent.
type IPaymentRepository interface {
	CreateMobileMoneyPayment(ctx context.Context, p entities.PaymentRecord, tx entities.MobileMoneyTransaction) error
	CreateRedirectPayment(ctx context.Context, p entities.PaymentRecord, rt entities.RedirectTransaction) error
	CreateManualPayment(ctx context.Context, p entities.PaymentRecord) error
	GetByTransactionID(ctx context.Context, transactionID string) (entities.PaymentRecord, error)
	GetMobileMoneyTransaction(ctx context.Context, trackingID string) (entities.MobileMoneyTransaction, error)
	AttachCheckoutRequestID(ctx context.Context, trackingID, checkoutRequestID string) error
	AttachRedirectCheckout(ctx context.Context, trackingID, reference, redirectURL string) error
	ApplyStatus(ctx context.Context, trackingID string, method entities.PaymentMethodKind, update entities.StatusUpdate) (bool, error)
}
