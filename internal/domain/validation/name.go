package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"academy_payments/internal/domain/entities"
)

const (
	minNameLength = 2
	maxNameLength = 100
)

var namePattern = regexp.MustCompile(`^[\p{L}\s'.\-]+$`)

func ValidateName(name string) entities.ValidationResult {
	res := entities.NewValidationResult()
	n := strings.TrimSpace(name)
	length := utf8.RuneCountInString(n)

	switch {
	case n == "":
		res.AddError("Name is required")
		return res
	case length < minNameLength:
		res.AddError("Name must be at least 2 characters")
		return res
	case length > maxNameLength:
		res.AddError("Name must not exceed 100 characters")
		return res
	case !namePattern.MatchString(n):
		res.AddError("Name can only contain letters, spaces, hyphens, apostrophes and periods")
		return res
	}

	if !strings.ContainsAny(n, " \t") {
		res.AddWarning("Please provide your full name (first and last name)")
	}
	return res
}
