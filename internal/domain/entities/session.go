package entities

import "time"

// SessionContext identifies the browsing session a request belongs to.
//
// Lifecycle: created when a visitor session starts (POST /sessions), passed
// explicitly to usecases that record activity, and removed on sign-out
// (DELETE /sessions/:id) or when its TTL expires.
type SessionContext struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id,omitempty"`
	ChannelID string    `json:"channel_id,omitempty"`
	StartedAt time.Time `json:"started_at"`
}

// Anonymous reports whether no session was resolved for the request.
func (s SessionContext) Anonymous() bool {
	return s.SessionID == ""
}
