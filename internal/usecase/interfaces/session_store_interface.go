package interfaces

import (
	"context"
	"time"

	"academy_payments/internal/domain/entities"
)

// ISessionStore keeps SessionContext values between requests.
// Get returns a zero SessionContext when the session is unknown or expired.
type ISessionStore interface {
	Save(ctx context.Context, s entities.SessionContext, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (entities.SessionContext, error)
	Delete(ctx context.Context, sessionID string) error
}
