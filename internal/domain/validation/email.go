package validation

import (
	"regexp"
	"strings"

	"academy_payments/internal/domain/entities"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var commonEmailDomains = map[string]struct{}{
	"gmail.com":      {},
	"yahoo.com":      {},
	"outlook.com":    {},
	"hotmail.com":    {},
	"icloud.com":     {},
	"live.com":       {},
	"protonmail.com": {},
}

// ValidateEmail rejects malformed addresses. Uncommon domains only warn.
func ValidateEmail(email string) entities.ValidationResult {
	res := entities.NewValidationResult()
	e := strings.TrimSpace(email)
	if e == "" {
		res.AddError("Email is required")
		return res
	}
	if !emailPattern.MatchString(e) {
		res.AddError("Please enter a valid email address")
		return res
	}
	domain := strings.ToLower(e[strings.LastIndex(e, "@")+1:])
	if _, ok := commonEmailDomains[domain]; !ok {
		res.AddWarning("Please double-check the email domain " + domain)
	}
	return res
}
