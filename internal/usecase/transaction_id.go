package usecase

import (
	"fmt"
	"strings"
	"time"

	"academy_payments/internal/domain/entities"

	"github.com/oklog/ulid/v2"
)

var transactionPrefixes = map[entities.PaymentMethodKind]string{
	entities.MethodMobileMoney:     "MPESA",
	entities.MethodRedirectGateway: "CHECKOUT",
	entities.MethodManualTransfer:  "PAYBILL",
}

// newTransactionID builds "<METHOD>_<unix millis>_<random>". The random part
// comes from the ULID entropy so ids do not need a central sequence.
func newTransactionID(kind entities.PaymentMethodKind, now time.Time) string {
	prefix, ok := transactionPrefixes[kind]
	if !ok {
		prefix = strings.ToUpper(string(kind))
	}
	entropy := ulid.Make().String()[10:]
	return fmt.Sprintf("%s_%d_%s", prefix, now.UnixMilli(), strings.ToLower(entropy))
}
