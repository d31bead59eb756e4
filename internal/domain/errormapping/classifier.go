// Package errormapping turns raw gateway failures into the fixed set of
// user-facing messages the storefront is allowed to show.
package errormapping

import (
	"strings"

	"academy_payments/internal/domain/entities"
)

const UnknownCode = "UNKNOWN"

var (
	retrySolutions = []string{
		"Wait a moment and try the payment again",
		"Check that your phone has network coverage",
		"Contact support if the problem persists",
	}

	insufficientFunds = mapping(entities.ErrorCategoryInsufficientFunds, entities.SeverityMedium,
		"Your M-Pesa balance is not enough to complete this payment.",
		"The balance is insufficient for the transaction",
		"Top up your M-Pesa account and try again",
		"Use Fuliza if it is enabled on your line",
		"Choose a different payment method",
	)
	invalidPhone = mapping(entities.ErrorCategoryInvalidPhone, entities.SeverityMedium,
		"The phone number is not registered for M-Pesa.",
		"Invalid PhoneNumber",
		"Check the number is in the format 254XXXXXXXXX",
		"Make sure the number is registered for M-Pesa",
	)
	requestTimeout = mapping(entities.ErrorCategoryTimeout, entities.SeverityLow,
		"We did not get a response from your phone in time.",
		"DS timeout user cannot be reached",
		"Keep your phone unlocked and close to you",
		"Retry and enter your M-Pesa PIN when prompted",
	)
	userCancelled = mapping(entities.ErrorCategoryTimeout, entities.SeverityLow,
		"The payment request was cancelled on your phone.",
		"Request cancelled by user",
		"Retry and approve the prompt on your phone",
	)
	serviceUnavailable = mapping(entities.ErrorCategoryServiceUnavailable, entities.SeverityHigh,
		"M-Pesa is temporarily unavailable.",
		"Service is currently unavailable",
		"Wait a few minutes and try again",
		"Use a different payment method if it is urgent",
	)
	networkError = mapping(entities.ErrorCategoryNetworkError, entities.SeverityMedium,
		"We could not reach the payment service.",
		"Network error while calling the payment gateway",
		"Check your internet connection",
		"Try again in a moment",
	)
	unknown = mapping(entities.ErrorCategoryUnknown, entities.SeverityMedium,
		"Something went wrong while processing your payment.",
		"Unrecognized gateway error",
		retrySolutions...,
	)
)

// table is loaded once and never mutated; Classify hands out copies.
var table = map[string]entities.ErrorMapping{
	"1":                   withCode("1", insufficientFunds),
	"INSUFFICIENT_FUNDS":  withCode("INSUFFICIENT_FUNDS", insufficientFunds),
	"400.002.02":          withCode("400.002.02", invalidPhone),
	"INVALID_PHONE":       withCode("INVALID_PHONE", invalidPhone),
	"1037":                withCode("1037", requestTimeout),
	"1019":                withCode("1019", technical(requestTimeout, "Transaction has expired")),
	"TIMEOUT":             withCode("TIMEOUT", requestTimeout),
	"1032":                withCode("1032", userCancelled),
	"1001":                withCode("1001", technical(serviceUnavailable, "Unable to lock subscriber, a transaction is already in process")),
	"1025":                withCode("1025", technical(serviceUnavailable, "An error occurred while sending a push request")),
	"9999":                withCode("9999", technical(serviceUnavailable, "An error occurred while sending a push request")),
	"500.001.1001":        withCode("500.001.1001", serviceUnavailable),
	"503.001.01":          withCode("503.001.01", serviceUnavailable),
	"404.001.03":          withCode("404.001.03", severity(technical(serviceUnavailable, "Invalid access token"), entities.SeverityCritical)),
	"SERVICE_UNAVAILABLE": withCode("SERVICE_UNAVAILABLE", serviceUnavailable),
	"NETWORK_ERROR":       withCode("NETWORK_ERROR", networkError),
}

type keywordRule struct {
	keywords []string
	mapping  entities.ErrorMapping
}

// Checked in order; the first matching group wins.
var keywordRules = []keywordRule{
	{keywords: []string{"insufficient", "balance", "not enough funds"}, mapping: insufficientFunds},
	{keywords: []string{"invalid phone", "phonenumber", "phone number", "msisdn", "invalid number"}, mapping: invalidPhone},
	{keywords: []string{"timeout", "timed out", "expired", "cannot be reached"}, mapping: requestTimeout},
	{keywords: []string{"cancel"}, mapping: userCancelled},
	{keywords: []string{"unavailable", "system busy", "maintenance", "try again later", "503"}, mapping: serviceUnavailable},
	{keywords: []string{"network", "connection", "dns", "eof"}, mapping: networkError},
}

// Classify maps a gateway code and optional raw message to an ErrorMapping.
// Exact code matches win; otherwise the raw message is searched for known
// keywords, and anything else yields the generic unknown mapping.
func Classify(code, rawMessage string) entities.ErrorMapping {
	code = strings.TrimSpace(code)
	if m, ok := table[code]; ok {
		return clone(m)
	}

	msg := strings.ToLower(rawMessage)
	if msg != "" {
		for _, rule := range keywordRules {
			for _, kw := range rule.keywords {
				if strings.Contains(msg, kw) {
					m := clone(rule.mapping)
					m.Code = code
					m.TechnicalMessage = rawMessage
					return m
				}
			}
		}
	}

	m := clone(unknown)
	m.Code = code
	if m.Code == "" {
		m.Code = UnknownCode
	}
	if rawMessage != "" {
		m.TechnicalMessage = rawMessage
	}
	return m
}

// Codes lists the codes of the static table.
func Codes() []string {
	out := make([]string, 0, len(table))
	for code := range table {
		out = append(out, code)
	}
	return out
}

func mapping(category entities.ErrorCategory, sev entities.ErrorSeverity, userMsg, techMsg string, solutions ...string) entities.ErrorMapping {
	return entities.ErrorMapping{
		Category:         category,
		UserMessage:      userMsg,
		TechnicalMessage: techMsg,
		Solutions:        solutions,
		Severity:         sev,
		Retryable:        IsRetryableError(category),
	}
}

func withCode(code string, m entities.ErrorMapping) entities.ErrorMapping {
	m.Code = code
	return m
}

func technical(m entities.ErrorMapping, msg string) entities.ErrorMapping {
	m.TechnicalMessage = msg
	return m
}

func severity(m entities.ErrorMapping, s entities.ErrorSeverity) entities.ErrorMapping {
	m.Severity = s
	return m
}

func clone(m entities.ErrorMapping) entities.ErrorMapping {
	m.Solutions = append([]string(nil), m.Solutions...)
	return m
}
