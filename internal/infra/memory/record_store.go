package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Mrvatsan/APTITUDE-AI/internal/domain"
)

// RecordStore keeps profiles and completed sessions in process memory. It is
// the persistence gateway used when no database is configured.
type RecordStore struct {
	mu       sync.RWMutex
	profiles map[string]domain.UserProfile
	sessions map[string]domain.CompletedSession
}

func NewRecordStore() *RecordStore {
	return &RecordStore{
		profiles: make(map[string]domain.UserProfile),
		sessions: make(map[string]domain.CompletedSession),
	}
}

func (s *RecordStore) GetProfile(_ context.Context, userID string) (domain.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[userID]
	if !ok {
		return domain.UserProfile{}, domain.ErrProfileNotFound
	}
	if profile.LastActiveDate != nil {
		t := *profile.LastActiveDate
		profile.LastActiveDate = &t
	}
	return profile, nil
}

func (s *RecordStore) SaveProfile(_ context.Context, profile domain.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if profile.LastActiveDate != nil {
		t := *profile.LastActiveDate
		profile.LastActiveDate = &t
	}
	s.profiles[profile.UserID] = profile
	return nil
}

func (s *RecordStore) CreateSessionIfAbsent(_ context.Context, rec domain.CompletedSession) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.sessions[rec.ID]; exists {
		return false, nil
	}
	s.sessions[rec.ID] = rec
	return true, nil
}

func (s *RecordStore) GetSession(_ context.Context, id string) (domain.CompletedSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.sessions[id]
	if !ok {
		return domain.CompletedSession{}, domain.ErrCompletedSessionNotFound
	}
	return rec, nil
}

func (s *RecordStore) ListSessions(_ context.Context, userID string, limit int) ([]domain.CompletedSession, error) {
	s.mu.RLock()
	out := make([]domain.CompletedSession, 0)
	for _, rec := range s.sessions {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CompletedAt.Equal(out[j].CompletedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CompletedAt.After(out[j].CompletedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *RecordStore) CountSessions(_ context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, rec := range s.sessions {
		if rec.UserID == userID {
			n++
		}
	}
	return n, nil
}
