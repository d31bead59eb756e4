package validation

import (
	"strings"

	"academy_payments/internal/domain/entities"
)

const (
	mpesaCountryCode  = "254"
	mpesaPhoneDigits  = 12
	localPhonePattern = "07XXXXXXXX"
	intlPhonePattern  = "254XXXXXXXXX"
)

// Safaricom ranges after the 254 country code.
var mpesaNetworkPrefixes = []string{"70", "71", "72", "74", "75", "76", "79", "11"}

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// NormalizePhone strips spaces, hyphens and parentheses.
func NormalizePhone(phone string) string {
	return phoneSeparators.Replace(strings.TrimSpace(phone))
}

// ValidateMpesaPhone checks that phone is a 12 digit international number
// (3 digit country code followed by 9 digits) without '+' or a local leading 0.
func ValidateMpesaPhone(phone string) entities.ValidationResult {
	res := entities.NewValidationResult()
	p := NormalizePhone(phone)

	switch {
	case p == "":
		res.AddError("Phone number is required")
		return res
	case strings.HasPrefix(p, "+"):
		res.AddError("Remove the '+' prefix: enter the number as " + intlPhonePattern)
		return res
	case strings.HasPrefix(p, "0"):
		res.AddError("Use international format " + intlPhonePattern + " instead of local format " + localPhonePattern)
		return res
	case !isDigits(p):
		res.AddError("Phone number can only contain digits")
		return res
	case len(p) != mpesaPhoneDigits:
		res.AddError("Phone number must be exactly 12 digits (" + intlPhonePattern + ")")
		return res
	}

	if !strings.HasPrefix(p, mpesaCountryCode) {
		res.AddWarning("Phone number is not a Kenyan (254) number; M-Pesa prompts may not arrive")
		return res
	}
	if !hasKnownNetworkPrefix(p[len(mpesaCountryCode):]) {
		res.AddWarning("Phone number does not look like a Safaricom M-Pesa number")
	}
	return res
}

func hasKnownNetworkPrefix(subscriber string) bool {
	for _, prefix := range mpesaNetworkPrefixes {
		if strings.HasPrefix(subscriber, prefix) {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
