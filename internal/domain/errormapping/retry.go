package errormapping

import (
	"time"

	"academy_payments/internal/domain/entities"
)

const MaxRetryDelay = 30 * time.Second

var baseRetryDelay = map[entities.ErrorCategory]time.Duration{
	entities.ErrorCategoryServiceUnavailable: 5 * time.Second,
	entities.ErrorCategoryTimeout:            3 * time.Second,
	entities.ErrorCategoryNetworkError:       time.Second,
}

const defaultBaseRetryDelay = 2 * time.Second

// IsRetryableError reports whether a failure of this category may be retried
// without the payer correcting anything.
func IsRetryableError(category entities.ErrorCategory) bool {
	switch category {
	case entities.ErrorCategoryServiceUnavailable, entities.ErrorCategoryTimeout, entities.ErrorCategoryNetworkError:
		return true
	}
	return false
}

// GetRetryDelay returns min(base(category) * 2^attempt, MaxRetryDelay).
func GetRetryDelay(category entities.ErrorCategory, attempt int) time.Duration {
	base, ok := baseRetryDelay[category]
	if !ok {
		base = defaultBaseRetryDelay
	}
	if attempt < 0 {
		attempt = 0
	}
	// base * 2^5 already exceeds the cap for every category.
	if attempt > 5 {
		return MaxRetryDelay
	}
	d := base * time.Duration(1<<attempt)
	if d > MaxRetryDelay {
		return MaxRetryDelay
	}
	return d
}
