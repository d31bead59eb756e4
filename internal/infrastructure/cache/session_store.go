package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"academy_payments/internal/domain/entities"
	"academy_payments/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// RedisSessionStore keeps sessions as JSON values with a TTL.
type RedisSessionStore struct {
	rdb *redis.Client
}

var _ interfaces.ISessionStore = (*RedisSessionStore)(nil)

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

func (s *RedisSessionStore) Save(ctx context.Context, sc entities.SessionContext, ttl time.Duration) error {
	b, err := json.Marshal(sc)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKeyPrefix+sc.SessionID, b, ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (entities.SessionContext, error) {
	b, err := s.rdb.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.SessionContext{}, nil
	}
	if err != nil {
		return entities.SessionContext{}, err
	}
	var sc entities.SessionContext
	if err := json.Unmarshal(b, &sc); err != nil {
		return entities.SessionContext{}, err
	}
	return sc, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

// MemorySessionStore is the single-instance fallback when Redis is absent.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]memorySession
	now      func() time.Time
}

type memorySession struct {
	sc        entities.SessionContext
	expiresAt time.Time
}

var _ interfaces.ISessionStore = (*MemorySessionStore)(nil)

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: map[string]memorySession{}, now: time.Now}
}

func (s *MemorySessionStore) Save(_ context.Context, sc entities.SessionContext, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sc.SessionID] = memorySession{sc: sc, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (entities.SessionContext, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.sessions[sessionID]
	if !ok {
		return entities.SessionContext{}, nil
	}
	if !s.now().Before(m.expiresAt) {
		delete(s.sessions, sessionID)
		return entities.SessionContext{}, nil
	}
	return m.sc, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
