// Package drafts keeps the per-session RFQ drafts in memory. Drafts are
// never persisted: a restart discards them, matching the form's
// single-session lifecycle.
package drafts

import (
	"sync"

	"github.com/google/uuid"

	"rfqintake/services"
)

// Store maps session IDs to their current form snapshot. All transitions
// for a draft run under one lock, so every session sees a single, ordered
// event stream even though the HTTP server is concurrent.
type Store struct {
	mu     sync.Mutex
	drafts map[string]services.FormState
}

// NewStore returns an empty draft store.
func NewStore() *Store {
	return &Store{
		drafts: make(map[string]services.FormState),
	}
}

// NewSessionID mints an identifier for a fresh session cookie.
func (s *Store) NewSessionID() string {
	return uuid.NewString()
}

// Get returns a snapshot of the session's draft, creating a default draft
// for sessions seen for the first time. The returned value is a deep copy;
// holding it cannot observe later transitions.
func (s *Store) Get(sessionID string) services.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.drafts[sessionID]
	if !ok {
		state = services.NewFormState()
		s.drafts[sessionID] = state
	}
	return state.Clone()
}

// Dispatch applies one action to the session's draft and returns the new
// snapshot (a deep copy, like Get).
func (s *Store) Dispatch(sessionID string, action services.Action) services.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.drafts[sessionID]
	if !ok {
		prev = services.NewFormState()
	}
	next := services.Apply(prev, action)
	s.drafts[sessionID] = next
	return next.Clone()
}

// Drop removes a session's draft entirely (used when a session cookie is
// cleared, not for the user-facing reset action, which keeps the session
// and dispatches services.Reset).
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
}
