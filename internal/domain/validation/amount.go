package validation

import (
	"fmt"
	"strings"

	"academy_payments/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "KES"

// AmountLimits are the per-currency bounds. Max is a hard gateway cap;
// VerifyAbove only produces a warning.
type AmountLimits struct {
	Min         decimal.Decimal
	Max         decimal.Decimal
	VerifyAbove decimal.Decimal
}

var currencyLimits = map[string]AmountLimits{
	"KES": {
		Min:         decimal.NewFromInt(1),
		Max:         decimal.NewFromInt(70000),
		VerifyAbove: decimal.NewFromInt(50000),
	},
	"USD": {
		Min:         decimal.NewFromInt(1),
		Max:         decimal.NewFromInt(10000),
		VerifyAbove: decimal.NewFromInt(5000),
	},
}

// LimitsFor returns the bounds of a currency, if any are configured.
func LimitsFor(currency string) (AmountLimits, bool) {
	l, ok := currencyLimits[strings.ToUpper(strings.TrimSpace(currency))]
	return l, ok
}

// ValidateAmount checks sign, currency bounds and precision.
func ValidateAmount(amount decimal.Decimal, currency string) entities.ValidationResult {
	res := entities.NewValidationResult()
	cur := strings.ToUpper(strings.TrimSpace(currency))
	if cur == "" {
		cur = DefaultCurrency
	}

	if !amount.IsPositive() {
		res.AddError("Amount must be greater than zero")
		return res
	}

	if limits, ok := currencyLimits[cur]; ok {
		if amount.LessThan(limits.Min) {
			res.AddError(fmt.Sprintf("Minimum amount is %s %s", cur, limits.Min.String()))
		}
		if amount.GreaterThan(limits.Max) {
			res.AddError(fmt.Sprintf("Maximum amount per transaction is %s %s", cur, limits.Max.String()))
		}
		if res.IsValid && amount.GreaterThan(limits.VerifyAbove) {
			res.AddWarning(fmt.Sprintf("Amounts above %s %s may require additional verification", cur, limits.VerifyAbove.String()))
		}
	}

	if !amount.Round(2).Equal(amount) {
		res.AddWarning("Amount will be rounded to 2 decimal places")
	}
	return res
}
