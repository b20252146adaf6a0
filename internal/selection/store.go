package selection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/floorplan-service/internal/domain/repository"
)

// ErrSessionNotFound - сессия выбора истекла или не существовала
var ErrSessionNotFound = errors.New("selection session not found")

const sessionKeyPrefix = "selection:"

// Session - сохранённое состояние выбора одного посетителя
type Session struct {
	ID        uuid.UUID `json:"id"`
	State     State     `json:"state"`
	Level     string    `json:"active_level"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store хранит сессии выбора в кеше
type Store struct {
	cache  repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewStore создает хранилище сессий
func NewStore(cache repository.CacheRepository, ttl time.Duration, logger *zap.Logger) *Store {
	return &Store{
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Create заводит пустую сессию
func (s *Store) Create(ctx context.Context) (*Session, error) {
	session := &Session{ID: uuid.New()}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Debug("Selection session created", zap.String("session_id", session.ID.String()))
	return session, nil
}

// Get читает сессию
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	data, err := s.cache.Get(ctx, sessionKey(id))
	if err != nil {
		return nil, fmt.Errorf("get selection session: %w", err)
	}
	if data == nil {
		return nil, ErrSessionNotFound
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		s.logger.Error("Failed to unmarshal selection session",
			zap.String("session_id", id.String()),
			zap.Error(err))
		return nil, fmt.Errorf("unmarshal selection session: %w", err)
	}
	return &session, nil
}

// Dispatch применяет переход к сессии и сохраняет результат
func (s *Store) Dispatch(ctx context.Context, id uuid.UUID, action Action) (*Session, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := Reduce(session.State, action)
	if err != nil {
		return nil, err
	}
	session.State = next

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Debug("Selection action applied",
		zap.String("session_id", id.String()),
		zap.String("action", string(action.Type)),
		zap.String("active_level", session.Level))
	return session, nil
}

func (s *Store) save(ctx context.Context, session *Session) error {
	session.Level = string(session.State.ActiveLevel())
	session.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal selection session: %w", err)
	}
	if err := s.cache.Set(ctx, sessionKey(session.ID), data, s.ttl); err != nil {
		return fmt.Errorf("save selection session: %w", err)
	}
	return nil
}

func sessionKey(id uuid.UUID) string {
	return sessionKeyPrefix + id.String()
}
