// Package store owns the single conversation aggregate. It serializes
// dispatches through the pure reducer, persists the result fire-and-forget,
// and exposes side-effect-free reads (the pre-fill-on-update paths).
//
// The store is an explicit object handed to its consumers by the application
// root, not a process-wide singleton, so the reducer stays unit-testable.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cityhospital/assistant/internal/app/reducer"
	"github.com/cityhospital/assistant/internal/domain"
	"github.com/cityhospital/assistant/internal/observability"
)

type Store struct {
	mu      sync.RWMutex
	state   *domain.ConversationState
	persist domain.StateStore // may be nil (no durability, memory only)
	now     func() time.Time
}

// New rehydrates the aggregate from persist, falling back to the default
// state when nothing was saved or the snapshot does not deserialize. The
// fallback is silent by contract: a corrupt blob must not crash startup.
func New(ctx context.Context, persist domain.StateStore) *Store {
	s := &Store{persist: persist, now: time.Now}
	log := observability.Component("store")

	if persist != nil {
		saved, err := persist.LoadState(ctx)
		switch {
		case err == nil:
			s.state = saved
			log.Info("restored saved conversation state", "messages", len(saved.Messages))
		case errors.Is(err, domain.ErrNoSavedState):
			log.Info("no saved conversation state, starting fresh")
		default:
			log.Warn("discarding unreadable saved state", "error", err)
		}
	}
	if s.state == nil {
		s.state = domain.DefaultState(s.now())
	}
	return s
}

// WithClock overrides the time source. Tests use it to pin derived fields.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Dispatch applies one action and returns a snapshot of the new state.
// Persistence happens after reduction and is best-effort: the in-memory
// state is the source of truth for the session, storage only matters at the
// next startup.
func (s *Store) Dispatch(ctx context.Context, action reducer.Action) *domain.ConversationState {
	s.mu.Lock()
	s.state = reducer.Apply(s.state, action, s.now())
	snapshot := s.state.Clone()
	s.mu.Unlock()

	if s.persist != nil {
		if err := s.persist.SaveState(ctx, snapshot); err != nil {
			observability.LoggerFromContext(ctx).Warn("failed to persist state", "error", err)
		}
	}
	return snapshot
}

// State returns a snapshot of the current aggregate.
func (s *Store) State() *domain.ConversationState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

func (s *Store) FindReport(id string) (domain.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.state.Reports {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Report{}, false
}

func (s *Store) FindAppointment(id string) (domain.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.state.Appointments {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Appointment{}, false
}

func (s *Store) FindVital(id string) (domain.Vital, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.state.Vitals {
		if v.ID == id {
			return v, true
		}
	}
	return domain.Vital{}, false
}

// Pregnancy returns the singleton record, ok=false when none exists.
func (s *Store) Pregnancy() (domain.PregnancyRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Pregnancy == nil {
		return domain.PregnancyRecord{}, false
	}
	p := *s.state.Pregnancy
	p.Timeline = append([]domain.Milestone(nil), p.Timeline...)
	return p, true
}
