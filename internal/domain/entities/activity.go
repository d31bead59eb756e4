package entities

import "time"

type ActivityType string

const (
	ActivityContactSubmission   ActivityType = "contact_submission"
	ActivityWebinarRegistration ActivityType = "webinar_registration"
	ActivityMpesaCallback       ActivityType = "mpesa_callback"
	ActivityGatewayWebhook      ActivityType = "gateway_webhook"
	ActivityUserAction          ActivityType = "user_action"
)

// Activity is an append-only audit row in the activities table.
type Activity struct {
	ID          string            `json:"id"`
	Type        ActivityType      `json:"type"`
	Action      string            `json:"action"`
	Description string            `json:"description,omitempty"`
	UserID      string            `json:"user_id,omitempty"`
	SessionID   string            `json:"session_id,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// AnalyticsEvent is one tracked storefront event (analytics_events table).
type AnalyticsEvent struct {
	ID        string            `json:"id"`
	EventType string            `json:"event_type"`
	Page      string            `json:"page,omitempty"`
	UserID    string            `json:"user_id,omitempty"`
	SessionID string            `json:"session_id,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// Enrollment grants a user access to a course once a payment completes.
type Enrollment struct {
	UserID        string    `json:"user_id"`
	CourseID      string    `json:"course_id"`
	TransactionID string    `json:"transaction_id"`
	Status        string    `json:"status"`
	ActivatedAt   time.Time `json:"activated_at"`
}
