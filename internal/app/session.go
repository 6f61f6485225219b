package app

import (
	"sync"
	"time"

	"github.com/Mrvatsan/APTITUDE-AI/internal/domain"
)

// SessionParams are the immutable fields of a new practice session.
type SessionParams struct {
	UserID          string
	TopicID         int
	TopicName       string
	MilestoneName   string
	Difficulty      string
	Questions       []domain.Question
	DurationSeconds int
}

// Session is one in-progress attempt at a set of questions. All mutable state
// is guarded by mu, so concurrent requests for the same session serialize
// while different sessions never contend.
type Session struct {
	id        string
	params    SessionParams
	startTime time.Time
	now       func() time.Time

	mu           sync.Mutex
	answers      map[int]domain.Answer
	currentIndex int
	lastActivity time.Time
	completedAt  *time.Time
}

// NewSession is exported for infrastructure layers that allocate session ids.
func NewSession(id string, params SessionParams) *Session {
	return NewSessionWithClock(id, params, time.Now)
}

// NewSessionWithClock allows deterministic timestamps in tests.
func NewSessionWithClock(id string, params SessionParams, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	params.Questions = append([]domain.Question(nil), params.Questions...)
	start := now()
	return &Session{
		id:           id,
		params:       params,
		startTime:    start,
		now:          now,
		answers:      make(map[int]domain.Answer),
		lastActivity: start,
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) UserID() string { return s.params.UserID }

// TotalQuestions is fixed at creation.
func (s *Session) TotalQuestions() int { return len(s.params.Questions) }

// LastActivity returns the time of the most recent read or write.
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// Question returns the question at index.
func (s *Session) Question(index int) (domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.params.Questions) {
		return domain.Question{}, domain.ErrInvalidIndex
	}
	s.lastActivity = s.now()
	return s.params.Questions[index], nil
}

// RecordAnswer stores the selection for questionIndex and moves the cursor to
// questionIndex+1. The cursor is set unconditionally, so answering an earlier
// index moves it backward.
func (s *Session) RecordAnswer(questionIndex, selectedOption int) (domain.AnswerOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completedAt != nil {
		return domain.AnswerOutcome{}, domain.ErrSessionFinished
	}
	if questionIndex < 0 || questionIndex >= len(s.params.Questions) {
		return domain.AnswerOutcome{}, domain.ErrInvalidIndex
	}

	now := s.now()
	s.answers[questionIndex] = domain.Answer{SelectedOption: selectedOption, Timestamp: now}
	s.currentIndex = questionIndex + 1
	s.lastActivity = now

	q := s.params.Questions[questionIndex]
	return domain.AnswerOutcome{
		IsCorrect:          selectedOption == q.CorrectOptionIndex,
		CorrectOptionIndex: q.CorrectOptionIndex,
		Solution:           q.Solution,
		NextIndex:          s.currentIndex,
		IsComplete:         s.currentIndex >= len(s.params.Questions),
	}, nil
}

// Finish marks the session terminal and returns the completion instant. The
// first call fixes the instant; later calls return the same value.
func (s *Session) Finish() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.lastActivity = now
	if s.completedAt == nil {
		s.completedAt = &now
	}
	return *s.completedAt
}

// Snapshot copies the session state for scoring.
func (s *Session) Snapshot() domain.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	answers := make(map[int]domain.Answer, len(s.answers))
	for idx, ans := range s.answers {
		answers[idx] = ans
	}
	var completedAt *time.Time
	if s.completedAt != nil {
		t := *s.completedAt
		completedAt = &t
	}
	return domain.SessionSnapshot{
		ID:              s.id,
		UserID:          s.params.UserID,
		TopicID:         s.params.TopicID,
		TopicName:       s.params.TopicName,
		MilestoneName:   s.params.MilestoneName,
		Difficulty:      s.params.Difficulty,
		Questions:       s.params.Questions,
		Answers:         answers,
		CurrentIndex:    s.currentIndex,
		StartTime:       s.startTime,
		DurationSeconds: s.params.DurationSeconds,
		CompletedAt:     completedAt,
	}
}
