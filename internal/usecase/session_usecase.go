package usecase

import (
	"context"
	"strings"
	"time"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/infrastructure/logger"
	"academy_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultSessionTTL = 24 * time.Hour

type ISessionUseCase interface {
	Start(ctx context.Context, userID, channelID string) (entities.SessionContext, error)
	Resolve(ctx context.Context, sessionID string) (entities.SessionContext, error)
	End(ctx context.Context, sessionID string) error
}

type SessionUseCase struct {
	store interfaces.ISessionStore
	ttl   time.Duration
	now   func() time.Time
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(store interfaces.ISessionStore, ttl time.Duration) *SessionUseCase {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionUseCase{store: store, ttl: ttl, now: time.Now}
}

// Start creates a session. A missing channel id gets a fresh one so
// anonymous visitors can still be correlated across requests.
func (u *SessionUseCase) Start(ctx context.Context, userID, channelID string) (entities.SessionContext, error) {
	channelID = strings.TrimSpace(channelID)
	if channelID == "" {
		channelID = uuid.NewString()
	}
	sc := entities.SessionContext{
		SessionID: uuid.NewString(),
		UserID:    strings.TrimSpace(userID),
		ChannelID: channelID,
		StartedAt: u.now().UTC(),
	}
	if err := u.store.Save(ctx, sc, u.ttl); err != nil {
		logger.Error("[session][usecase] save failed", zap.Error(err))
		return entities.SessionContext{}, &PersistenceError{Op: "save_session", Err: err}
	}
	logger.Debug("[session][usecase] started", zap.String("session_id", sc.SessionID))
	return sc, nil
}

func (u *SessionUseCase) Resolve(ctx context.Context, sessionID string) (entities.SessionContext, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.SessionContext{}, ErrSessionNotFound
	}
	sc, err := u.store.Get(ctx, sessionID)
	if err != nil {
		return entities.SessionContext{}, err
	}
	if sc.Anonymous() {
		return entities.SessionContext{}, ErrSessionNotFound
	}
	return sc, nil
}

func (u *SessionUseCase) End(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrSessionNotFound
	}
	if err := u.store.Delete(ctx, sessionID); err != nil {
		return &PersistenceError{Op: "delete_session", Err: err}
	}
	return nil
}
