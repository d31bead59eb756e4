package response

import (
	"time"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/usecase"
)

type EmailResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Recipient string `json:"recipient"`
}

func FromEmailDelivery(d usecase.EmailDelivery) EmailResponse {
	return EmailResponse{Success: true, Message: d.Message, Type: string(d.Type), Recipient: d.Recipient}
}

type ActivityResponse struct {
	Success    bool   `json:"success"`
	ActivityID string `json:"activity_id"`
	Message    string `json:"message"`
}

func FromActivity(a entities.Activity, message string) ActivityResponse {
	return ActivityResponse{Success: true, ActivityID: a.ID, Message: message}
}

type AnalyticsResponse struct {
	Success bool   `json:"success"`
	EventID string `json:"event_id"`
}

func FromAnalyticsEvent(e entities.AnalyticsEvent) AnalyticsResponse {
	return AnalyticsResponse{Success: true, EventID: e.ID}
}

type SessionResponse struct {
	Success   bool      `json:"success"`
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id,omitempty"`
	ChannelID string    `json:"channel_id,omitempty"`
	StartedAt time.Time `json:"started_at"`
}

func FromSession(s entities.SessionContext) SessionResponse {
	return SessionResponse{Success: true, SessionID: s.SessionID, UserID: s.UserID, ChannelID: s.ChannelID, StartedAt: s.StartedAt}
}
