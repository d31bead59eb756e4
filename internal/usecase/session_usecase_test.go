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

func TestSessionUseCase_Lifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_interfaces.NewMockISessionStore(ctrl)

	var saved entities.SessionContext
	store.EXPECT().Save(gomock.Any(), gomock.Any(), time.Hour).DoAndReturn(func(_ context.Context, s entities.SessionContext, _ time.Duration) error {
		saved = s
		return nil
	})

	uc := NewSessionUseCase(store, time.Hour)
	sc, err := uc.Start(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sc.SessionID == "" || sc.ChannelID == "" || sc != saved {
		t.Fatalf("unexpected session: %+v", sc)
	}

	store.EXPECT().Get(gomock.Any(), sc.SessionID).Return(saved, nil)
	got, err := uc.Resolve(context.Background(), sc.SessionID)
	if err != nil || got.UserID != "user-1" {
		t.Fatalf("unexpected %+v %v", got, err)
	}

	store.EXPECT().Delete(gomock.Any(), sc.SessionID).Return(nil)
	if err := uc.End(context.Background(), sc.SessionID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store.EXPECT().Get(gomock.Any(), sc.SessionID).Return(entities.SessionContext{}, nil)
	if _, err := uc.Resolve(context.Background(), sc.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after End, got %v", err)
	}
}

func TestSessionUseCase_DefaultTTL(t *testing.T) {
	uc := NewSessionUseCase(nil, 0)
	if uc.ttl != DefaultSessionTTL {
		t.Fatalf("expected default ttl, got %v", uc.ttl)
	}
}
