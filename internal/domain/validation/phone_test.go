package validation

import (
	"strings"
	"testing"
)

func TestValidateMpesaPhone(t *testing.T) {
	cases := []struct {
		name      string
		phone     string
		valid     bool
		errSubstr string
		warnings  int
	}{
		{name: "international safaricom", phone: "254712345678", valid: true},
		{name: "with separators", phone: "254 (712) 345-678", valid: true},
		{name: "airtel range warns", phone: "254732345678", valid: true, warnings: 1},
		{name: "other country warns", phone: "255712345678", valid: true, warnings: 1},
		{name: "local format", phone: "0712345678", errSubstr: "instead of local format"},
		{name: "plus prefix", phone: "+254712345678", errSubstr: "'+'"},
		{name: "too short", phone: "25471234567", errSubstr: "exactly 12 digits"},
		{name: "too long", phone: "2547123456789", errSubstr: "exactly 12 digits"},
		{name: "letters", phone: "25471234567a", errSubstr: "digits"},
		{name: "empty", phone: "  ", errSubstr: "required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := ValidateMpesaPhone(tc.phone)
			if res.IsValid != tc.valid {
				t.Fatalf("expected valid=%v, got %+v", tc.valid, res)
			}
			if tc.errSubstr != "" {
				if len(res.Errors) != 1 || !strings.Contains(res.Errors[0], tc.errSubstr) {
					t.Fatalf("expected error containing %q, got %v", tc.errSubstr, res.Errors)
				}
			}
			if len(res.Warnings) != tc.warnings {
				t.Fatalf("expected %d warnings, got %v", tc.warnings, res.Warnings)
			}
		})
	}
}

func TestValidateMpesaPhone_DistinctMessages(t *testing.T) {
	local := ValidateMpesaPhone("0712345678").Errors[0]
	plus := ValidateMpesaPhone("+254712345678").Errors[0]
	length := ValidateMpesaPhone("2547123").Errors[0]
	if local == plus || plus == length || local == length {
		t.Fatalf("expected distinct messages, got %q %q %q", local, plus, length)
	}
}

func TestNormalizePhone(t *testing.T) {
	if got := NormalizePhone(" 254-712 (345) 678 "); got != "254712345678" {
		t.Fatalf("unexpected normalized phone %q", got)
	}
}
