package payments

import (
	"os"
	"strings"
)

// IsMockEnabled reports whether gateways should short-circuit provider calls.
// MPESA_MOCK and MERCADOPAGO_MOCK override the global PAYMENT_GATEWAY_MOCK
// for a single provider.
func IsMockEnabled(providerKey string) bool {
	for _, key := range []string{providerKey, "PAYMENT_GATEWAY_MOCK"} {
		if key == "" {
			continue
		}
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return false
}
