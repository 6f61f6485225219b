package memory

import (
	"sync"
	"time"

	"github.com/Mrvatsan/APTITUDE-AI/internal/app"
	"github.com/google/uuid"
)

// SessionStore is an in-memory implementation of app.SessionRepository.
type SessionStore struct {
	now   func() time.Time
	newID func() string

	mu       sync.RWMutex
	sessions map[string]*app.Session
}

func NewSessionStore() *SessionStore {
	return NewSessionStoreWithClock(time.Now)
}

// NewSessionStoreWithClock creates sessions whose timestamps come from now.
func NewSessionStoreWithClock(now func() time.Time) *SessionStore {
	return &SessionStore{
		now:      now,
		newID:    uuid.NewString,
		sessions: make(map[string]*app.Session),
	}
}

func (s *SessionStore) Create(params app.SessionParams) *app.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.newID()
	for {
		if _, taken := s.sessions[id]; !taken {
			break
		}
		id = s.newID()
	}
	session := app.NewSessionWithClock(id, params, s.now)
	s.sessions[id] = session
	return session
}

func (s *SessionStore) Get(sessionID string) (*app.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	return session, ok
}

// Sweep drops sessions whose last activity is before cutoff.
func (s *SessionStore) Sweep(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, session := range s.sessions {
		if session.LastActivity().Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
