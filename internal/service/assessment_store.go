package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"mind-clone/internal/domain"
)

const assessmentSessionTTL = 24 * time.Hour

// AssessmentStore persiste el estado de sesiones de assessment en curso.
type AssessmentStore interface {
	Save(ctx context.Context, state *domain.AssessmentState) error
	Get(ctx context.Context, sessionID string) (*domain.AssessmentState, error)
	Delete(ctx context.Context, sessionID string) error
}

type memoryAssessmentStore struct {
	mu    sync.Mutex
	items map[string]*domain.AssessmentState
}

func NewMemoryAssessmentStore() AssessmentStore {
	return &memoryAssessmentStore{
		items: make(map[string]*domain.AssessmentState),
	}
}

func (s *memoryAssessmentStore) Save(_ context.Context, state *domain.AssessmentState) error {
	if state == nil || state.SessionID == "" {
		return errors.New("assessment state without session id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *state
	s.items[state.SessionID] = &cp
	return nil
}

func (s *memoryAssessmentStore) Get(_ context.Context, sessionID string) (*domain.AssessmentState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.items[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := *state
	return &cp, nil
}

func (s *memoryAssessmentStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, sessionID)
	return nil
}

type redisAssessmentStore struct {
	client *redis.Client
	prefix string
}

// NewRedisAssessmentStore serializa el estado como JSON bajo un TTL de
// 24h: una sesion abandonada expira sola.
func NewRedisAssessmentStore(client *redis.Client) AssessmentStore {
	if client == nil {
		return nil
	}
	return &redisAssessmentStore{
		client: client,
		prefix: "assessment:session:",
	}
}

func (s *redisAssessmentStore) Save(ctx context.Context, state *domain.AssessmentState) error {
	if state == nil || state.SessionID == "" {
		return errors.New("assessment state without session id")
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshaling assessment state: %w", err)
	}
	return s.client.Set(ctx, s.prefix+state.SessionID, payload, assessmentSessionTTL).Err()
}

func (s *redisAssessmentStore) Get(ctx context.Context, sessionID string) (*domain.AssessmentState, error) {
	payload, err := s.client.Get(ctx, s.prefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var state domain.AssessmentState
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, fmt.Errorf("unmarshaling assessment state: %w", err)
	}
	return &state, nil
}

func (s *redisAssessmentStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.prefix+sessionID).Err()
}
