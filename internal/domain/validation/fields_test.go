package validation

import (
	"strings"
	"testing"

	"academy_payments/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestValidateAmount_KES(t *testing.T) {
	cases := []struct {
		amount   string
		valid    bool
		warnings int
	}{
		{"-5", false, 0},
		{"0", false, 0},
		{"1", true, 0},
		{"1000", true, 0},
		{"50000", true, 0},
		{"50001", true, 1},
		{"70000", true, 1},
		{"70000.01", false, 0},
		{"100000", false, 0},
		{"10.125", true, 1},
	}
	for _, tc := range cases {
		t.Run(tc.amount, func(t *testing.T) {
			res := ValidateAmount(decimal.RequireFromString(tc.amount), "KES")
			if res.IsValid != tc.valid {
				t.Fatalf("amount %s: expected valid=%v, got %+v", tc.amount, tc.valid, res)
			}
			if len(res.Warnings) != tc.warnings {
				t.Fatalf("amount %s: expected %d warnings, got %v", tc.amount, tc.warnings, res.Warnings)
			}
		})
	}
}

func TestValidateAmount_MaximumMessage(t *testing.T) {
	res := ValidateAmount(decimal.NewFromInt(100000), "")
	if res.IsValid || !strings.Contains(res.Errors[0], "Maximum amount") {
		t.Fatalf("expected maximum amount error, got %+v", res)
	}
}

func TestValidateAmount_UnknownCurrencyOnlyChecksSign(t *testing.T) {
	if res := ValidateAmount(decimal.NewFromInt(1_000_000), "EUR"); !res.IsValid {
		t.Fatalf("expected valid, got %+v", res)
	}
	if res := ValidateAmount(decimal.Zero, "EUR"); res.IsValid {
		t.Fatalf("expected invalid zero amount")
	}
}

func TestValidateEmail(t *testing.T) {
	if res := ValidateEmail(""); res.IsValid {
		t.Fatalf("expected empty email to fail")
	}
	if res := ValidateEmail("not-an-email"); res.IsValid {
		t.Fatalf("expected malformed email to fail")
	}
	if res := ValidateEmail("jane@gmail.com"); !res.IsValid || len(res.Warnings) != 0 {
		t.Fatalf("expected clean pass, got %+v", res)
	}
	res := ValidateEmail("jane@academy.co.ke")
	if !res.IsValid || len(res.Warnings) != 1 {
		t.Fatalf("expected valid with domain warning, got %+v", res)
	}
}

func TestValidateName(t *testing.T) {
	cases := []struct {
		name     string
		valid    bool
		warnings int
	}{
		{"Jane Wanjiku", true, 0},
		{"O'Neil-Smith Jr.", true, 0},
		{"Jane", true, 1},
		{"J", false, 0},
		{"", false, 0},
		{strings.Repeat("a", 101), false, 0},
		{"Jane 2", false, 0},
	}
	for _, tc := range cases {
		res := ValidateName(tc.name)
		if res.IsValid != tc.valid || len(res.Warnings) != tc.warnings {
			t.Fatalf("name %q: expected valid=%v warnings=%d, got %+v", tc.name, tc.valid, tc.warnings, res)
		}
	}
}

func TestValidatePaymentForm(t *testing.T) {
	base := entities.PaymentRequest{
		CustomerName:  "Jane Wanjiku",
		CustomerEmail: "jane@gmail.com",
		Amount:        decimal.NewFromInt(1000),
		Currency:      "KES",
	}

	t.Run("mobile money valid", func(t *testing.T) {
		req := base
		req.Method = entities.MobileMoney{Phone: "254712345678"}
		if res := ValidatePaymentForm(req); !res.IsValid {
			t.Fatalf("expected valid, got %+v", res)
		}
	})

	t.Run("mobile money requires phone", func(t *testing.T) {
		req := base
		req.Method = entities.MobileMoney{}
		res := ValidatePaymentForm(req)
		if res.IsValid || !strings.Contains(strings.Join(res.Errors, ";"), "required for M-Pesa") {
			t.Fatalf("expected phone required error, got %+v", res)
		}
	})

	t.Run("phone ignored for manual transfer", func(t *testing.T) {
		req := base
		req.Method = entities.ManualTransfer{}
		if res := ValidatePaymentForm(req); !res.IsValid {
			t.Fatalf("expected valid, got %+v", res)
		}
	})

	t.Run("errors from all fields are concatenated", func(t *testing.T) {
		req := entities.PaymentRequest{
			CustomerName:  "J",
			CustomerEmail: "bad",
			Amount:        decimal.NewFromInt(100000),
			Currency:      "KES",
			Method:        entities.MobileMoney{Phone: "0712345678"},
		}
		res := ValidatePaymentForm(req)
		if res.IsValid || len(res.Errors) != 4 {
			t.Fatalf("expected 4 errors, got %+v", res)
		}
	})

	t.Run("name and email are optional for mobile money", func(t *testing.T) {
		req := entities.PaymentRequest{
			Method: entities.MobileMoney{Phone: "254712345678"},
			Amount: decimal.NewFromInt(1000),
		}
		if res := ValidatePaymentForm(req); !res.IsValid {
			t.Fatalf("expected valid, got %+v", res)
		}
	})

	t.Run("supplied email is still checked", func(t *testing.T) {
		req := entities.PaymentRequest{
			CustomerEmail: "not-an-email",
			Method:        entities.MobileMoney{Phone: "254712345678"},
			Amount:        decimal.NewFromInt(1000),
		}
		if res := ValidatePaymentForm(req); res.IsValid {
			t.Fatalf("expected invalid email to fail")
		}
	})

	t.Run("manual transfer requires email", func(t *testing.T) {
		req := base
		req.CustomerEmail = ""
		req.Method = entities.ManualTransfer{}
		res := ValidatePaymentForm(req)
		if res.IsValid || !strings.Contains(strings.Join(res.Errors, ";"), "paybill instructions") {
			t.Fatalf("expected email required error, got %+v", res)
		}
	})

	t.Run("missing method", func(t *testing.T) {
		if res := ValidatePaymentForm(base); res.IsValid {
			t.Fatalf("expected missing method error")
		}
	})
}
