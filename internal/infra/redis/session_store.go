package redis

import (
	"context"
	"sync"
	"time"

	"github.com/Mrvatsan/APTITUDE-AI/internal/app"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionStore is a Redis-aware implementation of app.SessionRepository.
// Notes:
//   - Session state lives in a local map; a session is served by the instance
//     that created it.
//   - Redis holds a liveness key per session, refreshed on access, so other
//     instances and operators can see which sessions are active.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time

	mu       sync.RWMutex
	sessions map[string]*app.Session
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client:   client,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*app.Session),
	}
}

func (s *SessionStore) Create(params app.SessionParams) *app.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	for {
		if _, taken := s.sessions[id]; !taken {
			break
		}
		id = uuid.NewString()
	}
	session := app.NewSessionWithClock(id, params, s.now)
	s.sessions[id] = session
	// best-effort liveness marker
	_ = s.client.Set(context.Background(), s.key(id), params.UserID, s.ttl).Err()
	return session
}

func (s *SessionStore) Get(sessionID string) (*app.Session, bool) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok && s.ttl > 0 {
		_ = s.client.Expire(context.Background(), s.key(sessionID), s.ttl).Err()
	}
	return session, ok
}

func (s *SessionStore) Sweep(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var stale []string
	for id, session := range s.sessions {
		if session.LastActivity().Before(cutoff) {
			delete(s.sessions, id)
			stale = append(stale, s.key(id))
		}
	}
	if len(stale) > 0 {
		_ = s.client.Del(context.Background(), stale...).Err()
	}
	return len(stale)
}

func (s *SessionStore) key(sessionID string) string {
	return "practice:session:" + sessionID
}
