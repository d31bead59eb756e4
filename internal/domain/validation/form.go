package validation

import (
	"strings"

	"academy_payments/internal/domain/entities"
)

// ValidatePaymentForm runs every field validator that applies to req.
// Method specific fields are only checked for the selected method. Name and
// email are optional unless supplied, except that a manual transfer needs an
// email to send the instructions to.
func ValidatePaymentForm(req entities.PaymentRequest) entities.ValidationResult {
	res := entities.NewValidationResult()
	if strings.TrimSpace(req.CustomerName) != "" {
		res.Merge(ValidateName(req.CustomerName))
	}
	if strings.TrimSpace(req.CustomerEmail) != "" {
		res.Merge(ValidateEmail(req.CustomerEmail))
	}
	res.Merge(ValidateAmount(req.Amount, req.Currency))

	switch m := req.Method.(type) {
	case nil:
		res.AddError("Please select a payment method")
	case entities.MobileMoney:
		if strings.TrimSpace(m.Phone) == "" {
			res.AddError("Phone number is required for M-Pesa payments")
		} else {
			res.Merge(ValidateMpesaPhone(m.Phone))
		}
		if cur := strings.ToUpper(strings.TrimSpace(req.Currency)); cur != "" && cur != DefaultCurrency {
			res.AddError("M-Pesa payments must be made in " + DefaultCurrency)
		}
	case entities.ManualTransfer:
		if strings.TrimSpace(req.CustomerEmail) == "" {
			res.AddError("Email is required to receive the paybill instructions")
		}
	}
	return res
}
