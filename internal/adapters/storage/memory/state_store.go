// Package memory is the non-durable domain.StateStore, suitable for
// development and tests.
package memory

import (
	"context"
	"sync"

	"github.com/cityhospital/assistant/internal/domain"
)

type StateStore struct {
	mu    sync.RWMutex
	state *domain.ConversationState
	dark  bool
}

func NewStateStore() *StateStore {
	return &StateStore{}
}

func (s *StateStore) SaveState(ctx context.Context, state *domain.ConversationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state.Clone()
	return nil
}

func (s *StateStore) LoadState(ctx context.Context) (*domain.ConversationState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state == nil {
		return nil, domain.ErrNoSavedState
	}
	return s.state.Clone(), nil
}

func (s *StateStore) SaveTheme(ctx context.Context, dark bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dark = dark
	return nil
}

func (s *StateStore) LoadTheme(ctx context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.dark, nil
}
