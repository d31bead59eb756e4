package usecase

import (
	"context"
	"strings"
	"time"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/domain/validation"
	"academy_payments/internal/infrastructure/logger"
	"academy_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContactSubmission struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

type WebinarRegistration struct {
	WebinarID    string
	WebinarTitle string
	WebinarDate  string
	Name         string
	Email        string
	Phone        string
}

type ActivityLog struct {
	Type        entities.ActivityType
	Action      string
	Description string
	Metadata    map[string]string
}

type AnalyticsTrack struct {
	EventType string
	Page      string
	Metadata  map[string]string
}

// IActivityUseCase records storefront activity. Every call performs exactly
// one primary datastore write; emails and counters are best effort.
type IActivityUseCase interface {
	SubmitContact(ctx context.Context, sc entities.SessionContext, in ContactSubmission) (entities.Activity, error)
	RegisterWebinar(ctx context.Context, sc entities.SessionContext, in WebinarRegistration) (entities.Activity, error)
	LogActivity(ctx context.Context, sc entities.SessionContext, in ActivityLog) (entities.Activity, error)
	TrackAnalytics(ctx context.Context, sc entities.SessionContext, in AnalyticsTrack) (entities.AnalyticsEvent, error)
}

type ActivityUseCase struct {
	repo     interfaces.IActivityRepository
	notifier interfaces.INotifier
	now      func() time.Time
}

var _ IActivityUseCase = (*ActivityUseCase)(nil)

func NewActivityUseCase(repo interfaces.IActivityRepository, notifier interfaces.INotifier) *ActivityUseCase {
	return &ActivityUseCase{repo: repo, notifier: notifier, now: time.Now}
}

func (u *ActivityUseCase) SubmitContact(ctx context.Context, sc entities.SessionContext, in ContactSubmission) (entities.Activity, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)
	switch {
	case in.Name == "":
		return entities.Activity{}, missingField("name")
	case in.Email == "":
		return entities.Activity{}, missingField("email")
	case in.Message == "":
		return entities.Activity{}, missingField("message")
	}
	if res := validation.ValidateEmail(in.Email); !res.IsValid {
		return entities.Activity{}, &ValidationError{Result: res}
	}

	a := u.newActivity(sc, entities.ActivityContactSubmission, "contact_form_submitted", in.Subject, map[string]string{
		"name":    in.Name,
		"email":   in.Email,
		"phone":   in.Phone,
		"subject": in.Subject,
	})
	if err := u.repo.CreateActivity(ctx, a); err != nil {
		logger.Error("[activity][usecase] contact write failed", zap.Error(err))
		return entities.Activity{}, &PersistenceError{Op: "create_activity", Err: err}
	}

	notifyBestEffort(ctx, u.notifier, entities.EmailContact, map[string]any{
		"name":    in.Name,
		"email":   in.Email,
		"phone":   in.Phone,
		"subject": in.Subject,
		"message": in.Message,
	})
	return a, nil
}

func (u *ActivityUseCase) RegisterWebinar(ctx context.Context, sc entities.SessionContext, in WebinarRegistration) (entities.Activity, error) {
	in.WebinarID = strings.TrimSpace(in.WebinarID)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	switch {
	case in.WebinarID == "":
		return entities.Activity{}, missingField("webinar_id")
	case in.Name == "":
		return entities.Activity{}, missingField("name")
	case in.Email == "":
		return entities.Activity{}, missingField("email")
	}
	if res := validation.ValidateEmail(in.Email); !res.IsValid {
		return entities.Activity{}, &ValidationError{Result: res}
	}

	a := u.newActivity(sc, entities.ActivityWebinarRegistration, "webinar_registered", in.WebinarTitle, map[string]string{
		"webinar_id":    in.WebinarID,
		"webinar_title": in.WebinarTitle,
		"webinar_date":  in.WebinarDate,
		"name":          in.Name,
		"email":         in.Email,
		"phone":         in.Phone,
	})
	if err := u.repo.CreateActivity(ctx, a); err != nil {
		logger.Error("[activity][usecase] webinar registration write failed", zap.String("webinar_id", in.WebinarID), zap.Error(err))
		return entities.Activity{}, &PersistenceError{Op: "create_activity", Err: err}
	}

	notifyBestEffort(ctx, u.notifier, entities.EmailRegistration, map[string]any{
		"email": in.Email,
		"name":  in.Name,
		"title": in.WebinarTitle,
		"date":  in.WebinarDate,
	})
	return a, nil
}

func (u *ActivityUseCase) LogActivity(ctx context.Context, sc entities.SessionContext, in ActivityLog) (entities.Activity, error) {
	if strings.TrimSpace(in.Action) == "" {
		return entities.Activity{}, missingField("action")
	}
	if in.Type == "" {
		in.Type = entities.ActivityUserAction
	}
	a := u.newActivity(sc, in.Type, strings.TrimSpace(in.Action), in.Description, in.Metadata)
	if err := u.repo.CreateActivity(ctx, a); err != nil {
		logger.Error("[activity][usecase] log write failed", zap.String("action", a.Action), zap.Error(err))
		return entities.Activity{}, &PersistenceError{Op: "create_activity", Err: err}
	}
	return a, nil
}

func (u *ActivityUseCase) TrackAnalytics(ctx context.Context, sc entities.SessionContext, in AnalyticsTrack) (entities.AnalyticsEvent, error) {
	eventType := strings.TrimSpace(in.EventType)
	if eventType == "" {
		return entities.AnalyticsEvent{}, missingField("event_type")
	}
	now := u.now().UTC()
	e := entities.AnalyticsEvent{
		ID:        uuid.NewString(),
		EventType: eventType,
		Page:      in.Page,
		UserID:    sc.UserID,
		SessionID: sc.SessionID,
		Metadata:  in.Metadata,
		CreatedAt: now,
	}
	if err := u.repo.CreateAnalyticsEvent(ctx, e); err != nil {
		logger.Error("[analytics][usecase] event write failed", zap.String("event_type", eventType), zap.Error(err))
		return entities.AnalyticsEvent{}, &PersistenceError{Op: "create_analytics_event", Err: err}
	}
	if err := u.repo.IncrementDailyCounter(ctx, eventType, now.Format("2006-01-02")); err != nil {
		logger.Warn("[analytics][usecase] daily counter failed", zap.String("event_type", eventType), zap.Error(err))
	}
	return e, nil
}

func (u *ActivityUseCase) newActivity(sc entities.SessionContext, t entities.ActivityType, action, description string, meta map[string]string) entities.Activity {
	return entities.Activity{
		ID:          uuid.NewString(),
		Type:        t,
		Action:      action,
		Description: description,
		UserID:      sc.UserID,
		SessionID:   sc.SessionID,
		Metadata:    meta,
		CreatedAt:   u.now().UTC(),
	}
}
