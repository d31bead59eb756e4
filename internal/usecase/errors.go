package usecase

import (
	"errors"
	"fmt"
	"strings"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound        = errors.New("payment not found")
	ErrInvalidTrackingID      = errors.New("invalid tracking_id")
	ErrGatewayNotConfigured   = errors.New("payment gateway not configured")
	ErrInvalidSignature       = errors.New("invalid callback signature")
	ErrInvalidCallbackPayload = errors.New("invalid callback payload")
	ErrCallbackMismatch       = errors.New("callback does not match payment")
	ErrUnsupportedEmailType   = fmt.Errorf("unsupported email type: %w", interfaces.ErrUndeliverable)
	ErrInvalidRecipient       = fmt.Errorf("invalid email recipient: %w", interfaces.ErrUndeliverable)
	ErrEmailDeliveryFailed    = errors.New("email delivery failed")
	ErrMissingRequiredField   = errors.New("missing required field")
	ErrSessionNotFound        = errors.New("session not found")
	ErrEventsUnavailable      = errors.New("event bus not configured")
)

// ValidationError means the submitted input broke a format or range rule.
// It never reaches the network or the datastore.
type ValidationError struct {
	Result entities.ValidationResult
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Result.Errors, "; ")
}

// GatewayError is a classified payment gateway failure. Mapping is safe to
// show to the payer; Cause keeps the raw provider error for logs only.
type GatewayError struct {
	Mapping entities.ErrorMapping
	Cause   error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error category=%s code=%s: %v", e.Mapping.Category, e.Mapping.Code, e.Cause)
}

func (e *GatewayError) Unwrap() error { return e.Cause }

// PersistenceError is a failed datastore write on a primary record.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error op=%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func missingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingRequiredField, name)
}
