package services

import "sync"

// SessionStore owns every live ConversationState, keyed by session ID. No
// ambient globals: handlers receive the store at wiring time and pass states
// by reference into the orchestrator.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*ConversationState
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*ConversationState)}
}

// Get returns the state for a session, creating an empty one on first use.
func (s *SessionStore) Get(sessionID string) *ConversationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[sessionID]
	if !ok {
		state = &ConversationState{}
		s.sessions[sessionID] = state
	}
	return state
}

// Reset drops a session entirely; the next Get starts fresh.
func (s *SessionStore) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
