package interfaces

import (
	"context"

	"academy_payments/internal/domain/entities"
)

// IActivityRepository persists audit and analytics rows
// (activities, analytics_events and analytics tables).
type IActivityRepository interface {
	CreateActivity(ctx context.Context, a entities.Activity) error
	CreateAnalyticsEvent(ctx context.Context, e entities.AnalyticsEvent) error
	IncrementDailyCounter(ctx context.Context, eventType, day string) error
}

// IEnrollmentRepository activates course access. Activate is idempotent and
// reports created=false when the enrollment already existed.
type IEnrollmentRepository interface {
	Activate(ctx context.Context, e entities.Enrollment) (bool, error)
}
