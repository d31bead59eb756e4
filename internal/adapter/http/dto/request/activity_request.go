package request

import (
	"academy_payments/internal/domain/entities"
	"academy_payments/internal/usecase"
)

// Required fields are checked by the activity usecase so every endpoint
// answers with the same missing-field message.

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone" binding:"omitempty,phone12"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r ContactRequest) ToSubmission() usecase.ContactSubmission {
	return usecase.ContactSubmission{Name: r.Name, Email: r.Email, Phone: r.Phone, Subject: r.Subject, Message: r.Message}
}

type WebinarRegistrationRequest struct {
	WebinarID    string `json:"webinar_id"`
	WebinarTitle string `json:"webinar_title"`
	WebinarDate  string `json:"webinar_date"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone" binding:"omitempty,phone12"`
}

func (r WebinarRegistrationRequest) ToRegistration() usecase.WebinarRegistration {
	return usecase.WebinarRegistration{
		WebinarID:    r.WebinarID,
		WebinarTitle: r.WebinarTitle,
		WebinarDate:  r.WebinarDate,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
	}
}

type LogActivityRequest struct {
	Type        string            `json:"activity_type"`
	Action      string            `json:"action"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata"`
}

func (r LogActivityRequest) ToActivityLog() usecase.ActivityLog {
	return usecase.ActivityLog{Type: entities.ActivityType(r.Type), Action: r.Action, Description: r.Description, Metadata: r.Metadata}
}

type TrackAnalyticsRequest struct {
	EventType string            `json:"event_type"`
	Page      string            `json:"page"`
	Metadata  map[string]string `json:"metadata"`
}

func (r TrackAnalyticsRequest) ToAnalyticsTrack() usecase.AnalyticsTrack {
	return usecase.AnalyticsTrack{EventType: r.EventType, Page: r.Page, Metadata: r.Metadata}
}

type StartSessionRequest struct {
	UserID    string `json:"user_id"`
	ChannelID string `json:"channel_id"`
}
