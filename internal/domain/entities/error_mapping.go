package entities

// ErrorCategory is the normalized class of a gateway failure.
type ErrorCategory string

const (
	ErrorCategoryInsufficientFunds  ErrorCategory = "insufficient_funds"
	ErrorCategoryInvalidPhone       ErrorCategory = "invalid_phone"
	ErrorCategoryServiceUnavailable ErrorCategory = "service_unavailable"
	ErrorCategoryTimeout            ErrorCategory = "timeout"
	ErrorCategoryNetworkError       ErrorCategory = "network_error"
	ErrorCategoryUnknown            ErrorCategory = "unknown"
)

type ErrorSeverity string

const (
	SeverityLow      ErrorSeverity = "low"
	SeverityMedium   ErrorSeverity = "medium"
	SeverityHigh     ErrorSeverity = "high"
	SeverityCritical ErrorSeverity = "critical"
)

// ErrorMapping is one row of the static gateway error table.
type ErrorMapping struct {
	Code             string        `json:"code"`
	Category         ErrorCategory `json:"category"`
	UserMessage      string        `json:"user_message"`
	TechnicalMessage string        `json:"technical_message"`
	Solutions        []string      `json:"solutions"`
	Severity         ErrorSeverity `json:"severity"`
	Retryable        bool          `json:"retryable"`
}
