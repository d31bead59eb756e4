package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"academy_payments/internal/domain/entities"
	mock_interfaces "academy_payments/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testSession = entities.SessionContext{SessionID: "sess-1", UserID: "user-1", ChannelID: "chan-1"}

func TestActivityUseCase_SubmitContact(t *testing.T) {
	t.Run("missing field", func(t *testing.T) {
		uc := NewActivityUseCase(nil, nil)
		_, err := uc.SubmitContact(context.Background(), testSession, ContactSubmission{Name: "Jane", Email: "jane@gmail.com"})
		if !errors.Is(err, ErrMissingRequiredField) {
			t.Fatalf("expected ErrMissingRequiredField, got %v", err)
		}
	})

	t.Run("write then best-effort email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIActivityRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)

		repo.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a entities.Activity) error {
			if a.Type != entities.ActivityContactSubmission || a.SessionID != "sess-1" || a.UserID != "user-1" {
				t.Fatalf("session context not propagated: %+v", a)
			}
			return nil
		})
		notifier.EXPECT().Notify(gomock.Any(), entities.EmailContact, gomock.Any()).Return(errors.New("queue down"))

		uc := NewActivityUseCase(repo, notifier)
		a, err := uc.SubmitContact(context.Background(), testSession, ContactSubmission{Name: "Jane", Email: "jane@gmail.com", Message: "Hi"})
		if err != nil || a.ID == "" {
			t.Fatalf("unexpected %+v %v", a, err)
		}
	})

	t.Run("write failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIActivityRepository(ctrl)
		repo.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

		uc := NewActivityUseCase(repo, nil)
		_, err := uc.SubmitContact(context.Background(), testSession, ContactSubmission{Name: "Jane", Email: "jane@gmail.com", Message: "Hi"})
		var pErr *PersistenceError
		if !errors.As(err, &pErr) {
			t.Fatalf("expected PersistenceError, got %v", err)
		}
	})
}

func TestActivityUseCase_RegisterWebinar(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIActivityRepository(ctrl)
	notifier := mock_interfaces.NewMockINotifier(ctrl)

	repo.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a entities.Activity) error {
		if a.Type != entities.ActivityWebinarRegistration || a.Metadata["webinar_id"] != "web-1" {
			t.Fatalf("unexpected activity: %+v", a)
		}
		return nil
	})
	notifier.EXPECT().Notify(gomock.Any(), entities.EmailRegistration, gomock.Any()).Return(nil)

	uc := NewActivityUseCase(repo, notifier)
	_, err := uc.RegisterWebinar(context.Background(), entities.SessionContext{}, WebinarRegistration{
		WebinarID: "web-1", WebinarTitle: "Intro to Go", Name: "Jane", Email: "jane@gmail.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestActivityUseCase_LogActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIActivityRepository(ctrl)
	repo.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a entities.Activity) error {
		if a.Type != entities.ActivityUserAction || a.Action != "download_brochure" {
			t.Fatalf("unexpected activity: %+v", a)
		}
		return nil
	})

	uc := NewActivityUseCase(repo, nil)
	if _, err := uc.LogActivity(context.Background(), testSession, ActivityLog{Action: " download_brochure "}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.LogActivity(context.Background(), testSession, ActivityLog{}); !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("expected ErrMissingRequiredField, got %v", err)
	}
}

func TestActivityUseCase_TrackAnalytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIActivityRepository(ctrl)
	repo.EXPECT().CreateAnalyticsEvent(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().IncrementDailyCounter(gomock.Any(), "page_view", "2025-03-01").Return(errors.New("throttled"))

	uc := NewActivityUseCase(repo, nil)
	uc.now = func() time.Time { return time.Date(2025, 3, 1, 23, 59, 0, 0, time.UTC) }

	e, err := uc.TrackAnalytics(context.Background(), testSession, AnalyticsTrack{EventType: "page_view", Page: "/courses"})
	if err != nil {
		t.Fatalf("counter failures must not fail tracking, got %v", err)
	}
	if e.SessionID != "sess-1" || e.Page != "/courses" {
		t.Fatalf("unexpected event: %+v", e)
	}
}
