package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Mrvatsan/APTITUDE-AI/internal/catalog"
	"github.com/Mrvatsan/APTITUDE-AI/internal/domain"
	"github.com/Mrvatsan/APTITUDE-AI/internal/scoring"
	"github.com/Mrvatsan/APTITUDE-AI/internal/streak"
	"github.com/Mrvatsan/APTITUDE-AI/internal/weakarea"
)

const (
	// HistoryLimit caps the "get history" listing.
	HistoryLimit = 50

	defaultTopic      = "General Aptitude"
	defaultMilestone  = "Milestone 1"
	defaultDifficulty = "medium"
)

// SessionRepository owns in-progress sessions (in-memory, Redis-marked, etc).
// Sessions are never removed except by Sweep.
type SessionRepository interface {
	// Create stores a new session under a freshly generated id that does not
	// collide with any live session.
	Create(params SessionParams) *Session
	Get(sessionID string) (*Session, bool)
	// Sweep evicts sessions idle since before cutoff and returns how many were removed.
	Sweep(cutoff time.Time) int
}

// QuestionSource produces question content for a topic.
type QuestionSource interface {
	Generate(ctx context.Context, req domain.GenerateRequest) ([]domain.Question, error)
}

// FeedbackInput is what a feedback source sees of a finished session.
type FeedbackInput struct {
	Questions []domain.Question
	Answers   map[int]domain.Answer
	Accuracy  int
	Total     int
}

// FeedbackSource writes narrative feedback for a finished session.
type FeedbackSource interface {
	Feedback(ctx context.Context, in FeedbackInput) (string, error)
}

// PersistenceGateway is the durable store for profiles and completed sessions.
type PersistenceGateway interface {
	GetProfile(ctx context.Context, userID string) (domain.UserProfile, error)
	SaveProfile(ctx context.Context, profile domain.UserProfile) error
	// CreateSessionIfAbsent inserts rec unless a record with the same id
	// exists, and reports whether it inserted.
	CreateSessionIfAbsent(ctx context.Context, rec domain.CompletedSession) (bool, error)
	GetSession(ctx context.Context, id string) (domain.CompletedSession, error)
	// ListSessions returns the user's records newest first; limit <= 0 means all.
	ListSessions(ctx context.Context, userID string, limit int) ([]domain.CompletedSession, error)
	CountSessions(ctx context.Context, userID string) (int, error)
}

// PracticeService contains the practice-session use cases.
type PracticeService struct {
	sessions        SessionRepository
	questions       QuestionSource
	store           PersistenceGateway
	feedback        FeedbackSource
	now             func() time.Time
	location        *time.Location
	feedbackTimeout time.Duration
	profileLocks    *userLocks
}

// Option customizes a PracticeService.
type Option func(*PracticeService)

// WithClock sets the clock used for completion and streak timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *PracticeService) { s.now = now }
}

// WithLocation sets the timezone whose calendar days drive streaks.
func WithLocation(loc *time.Location) Option {
	return func(s *PracticeService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithFeedback enables narrative feedback on results.
func WithFeedback(source FeedbackSource, timeout time.Duration) Option {
	return func(s *PracticeService) {
		s.feedback = source
		s.feedbackTimeout = timeout
	}
}

func NewPracticeService(sessions SessionRepository, questions QuestionSource, store PersistenceGateway, opts ...Option) *PracticeService {
	s := &PracticeService{
		sessions:  sessions,
		questions: questions,
		store:     store,
		now:          time.Now,
		location:     time.Local,
		profileLocks: newUserLocks(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start generates questions and opens a new session. No session is created
// when generation fails.
func (s *PracticeService) Start(ctx context.Context, userID string, req domain.StartRequest) (domain.StartResponse, error) {
	topicName, milestoneName := resolveNames(req)
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = defaultDifficulty
	}

	count := int(req.NumQuestions)
	if count > domain.MaxQuestionCount {
		return domain.StartResponse{}, fmt.Errorf("%w: %d exceeds %d", domain.ErrInvalidQuestionCount, count, domain.MaxQuestionCount)
	}
	if req.NumQuestions.IsAuto() {
		prior, err := s.store.CountSessions(ctx, userID)
		if err != nil {
			log.Printf("[session] count sessions for user=%s failed, sizing as new user: %v", userID, err)
			prior = 0
		}
		count = AutoQuestionCount(prior)
	}

	log.Printf("[session] starting session user=%s topic=%q difficulty=%s questions=%d", userID, topicName, difficulty, count)
	questions, err := s.questions.Generate(ctx, domain.GenerateRequest{
		Topic:      topicName,
		Milestone:  milestoneName,
		Count:      count,
		Difficulty: difficulty,
	})
	if err != nil {
		return domain.StartResponse{}, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	if len(questions) == 0 {
		return domain.StartResponse{}, fmt.Errorf("%w: no questions for %q", domain.ErrGenerationFailed, topicName)
	}
	if len(questions) > count {
		questions = questions[:count]
	}

	duration := DurationFor(len(questions))
	session := s.sessions.Create(SessionParams{
		UserID:          userID,
		TopicID:         req.TopicID,
		TopicName:       topicName,
		MilestoneName:   milestoneName,
		Difficulty:      difficulty,
		Questions:       questions,
		DurationSeconds: duration,
	})

	return domain.StartResponse{
		SessionID:       session.ID(),
		TotalQuestions:  len(questions),
		CurrentQuestion: questionView(questions[0], 0, len(questions)),
		CurrentIndex:    0,
		DurationSeconds: duration,
	}, nil
}

// Question returns the question at index without its answer key.
func (s *PracticeService) Question(_ context.Context, userID, sessionID string, index int) (domain.QuestionView, error) {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return domain.QuestionView{}, err
	}
	q, err := session.Question(index)
	if err != nil {
		return domain.QuestionView{}, err
	}
	return questionView(q, index, session.TotalQuestions()), nil
}

// SubmitAnswer records an answer and returns immediate correctness feedback.
func (s *PracticeService) SubmitAnswer(_ context.Context, userID, sessionID string, questionIndex, selectedOption int) (domain.AnswerOutcome, error) {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return domain.AnswerOutcome{}, err
	}
	return session.RecordAnswer(questionIndex, selectedOption)
}

// Result scores the session, records it durably (once per session id), updates
// the user's profile and attaches best-effort feedback. Storage failures are
// logged and never block the scored result.
func (s *PracticeService) Result(ctx context.Context, userID, sessionID string) (domain.SessionResult, error) {
	session, err := s.session(userID, sessionID)
	if err != nil {
		return domain.SessionResult{}, err
	}

	completedAt := session.Finish().In(s.location)
	snapshot := session.Snapshot()
	score := scoring.Score(snapshot)
	elapsed := int(completedAt.Sub(snapshot.StartTime).Round(time.Second) / time.Second)

	record := domain.CompletedSession{
		ID:              snapshot.ID,
		UserID:          snapshot.UserID,
		TopicID:         snapshot.TopicID,
		TopicName:       snapshot.TopicName,
		MilestoneName:   snapshot.MilestoneName,
		Difficulty:      snapshot.Difficulty,
		TotalQuestions:  score.Total,
		CorrectAnswers:  score.Correct,
		Accuracy:        score.Accuracy,
		XPEarned:        score.XPEarned,
		DurationSeconds: elapsed,
		CompletedAt:     completedAt,
	}
	if err := s.persist(ctx, record); err != nil {
		log.Printf("[session] bookkeeping failed session=%s user=%s: %v", sessionID, userID, err)
	}

	result := domain.SessionResult{
		SessionID:       sessionID,
		Total:           score.Total,
		Correct:         score.Correct,
		Accuracy:        score.Accuracy,
		XPEarned:        score.XPEarned,
		ProgressPercent: score.ProgressPercent,
		Details:         score.Details,
		Feedback:        s.generateFeedback(ctx, snapshot, score),
		DurationSeconds: elapsed,
	}
	log.Printf("[session] session completed user=%s accuracy=%d%% xp=%d", userID, score.Accuracy, score.XPEarned)
	return result, nil
}

// History lists the user's most recent completed sessions, newest first.
func (s *PracticeService) History(ctx context.Context, userID string) ([]domain.CompletedSession, error) {
	records, err := s.store.ListSessions(ctx, userID, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return records, nil
}

// WeakAreas analyzes the user's history once enough sessions are completed.
func (s *PracticeService) WeakAreas(ctx context.Context, userID string) (domain.WeakAreaReport, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return domain.WeakAreaReport{}, err
	}
	if !weakarea.Eligible(profile.SessionsCompleted) {
		return weakarea.Ineligible(profile.SessionsCompleted), nil
	}
	records, err := s.store.ListSessions(ctx, userID, 0)
	if err != nil {
		return domain.WeakAreaReport{}, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return weakarea.Analyze(profile.SessionsCompleted, records), nil
}

// Profile returns the user's accumulators with badge progress.
func (s *PracticeService) Profile(ctx context.Context, userID string) (domain.ProfileSummary, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return domain.ProfileSummary{}, err
	}
	summary := domain.ProfileSummary{
		UserProfile:  profile,
		CurrentBadge: scoring.Badge(profile.TotalXP),
	}
	summary.NextBadge, summary.XPToNext = scoring.NextBadge(profile.TotalXP)
	if profile.SessionsCompleted > 0 {
		summary.AverageAccuracy = float64(profile.TotalAccuracySum) / float64(profile.SessionsCompleted)
	}
	return summary, nil
}

// Milestones exposes the curriculum catalog.
func (s *PracticeService) Milestones() []catalog.Milestone {
	return catalog.Milestones()
}

// SweepIdle evicts sessions with no activity for longer than idle.
func (s *PracticeService) SweepIdle(idle time.Duration) int {
	if idle <= 0 {
		return 0
	}
	return s.sessions.Sweep(s.now().Add(-idle))
}

func (s *PracticeService) session(userID, sessionID string) (*Session, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok || session.UserID() != userID {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *PracticeService) profile(ctx context.Context, userID string) (domain.UserProfile, error) {
	profile, err := s.store.GetProfile(ctx, userID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return domain.UserProfile{UserID: userID}, nil
	}
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return profile, nil
}

// persist writes the completed session once and, only when this call created
// it, folds the result into the user's profile. The two writes are not atomic.
// Profile updates for one user are serialized within this process.
func (s *PracticeService) persist(ctx context.Context, rec domain.CompletedSession) error {
	release := s.profileLocks.lock(rec.UserID)
	defer release()

	created, err := s.store.CreateSessionIfAbsent(ctx, rec)
	if err != nil {
		return fmt.Errorf("%w: create completed session: %v", domain.ErrPersistence, err)
	}
	if !created {
		return nil
	}

	profile, err := s.profile(ctx, rec.UserID)
	if err != nil {
		return err
	}
	profile.TotalXP += rec.XPEarned
	profile.SessionsCompleted++
	profile.TotalAccuracySum += rec.Accuracy

	var prev *streak.State
	if profile.LastActiveDate != nil {
		prev = &streak.State{Count: profile.StreakCount, LastActiveDate: *profile.LastActiveDate}
	}
	next, err := streak.Next(prev, rec.CompletedAt)
	if errors.Is(err, streak.ErrBackdated) {
		log.Printf("[session] streak left unchanged for user=%s: completion %s before last active %s",
			rec.UserID, rec.CompletedAt.Format(time.RFC3339), profile.LastActiveDate.Format(time.RFC3339))
	} else {
		profile.StreakCount = next.Count
		lastActive := next.LastActiveDate
		profile.LastActiveDate = &lastActive
	}

	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return fmt.Errorf("%w: save profile: %v", domain.ErrPersistence, err)
	}
	return nil
}

func (s *PracticeService) generateFeedback(ctx context.Context, snapshot domain.SessionSnapshot, score domain.Score) *string {
	if s.feedback == nil {
		return nil
	}
	if s.feedbackTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.feedbackTimeout)
		defer cancel()
	}
	text, err := s.feedback.Feedback(ctx, FeedbackInput{
		Questions: snapshot.Questions,
		Answers:   snapshot.Answers,
		Accuracy:  score.Accuracy,
		Total:     score.Total,
	})
	if err != nil {
		log.Printf("[session] feedback unavailable for session=%s: %v", snapshot.ID, err)
		return nil
	}
	if text == "" {
		return nil
	}
	return &text
}

func resolveNames(req domain.StartRequest) (string, string) {
	topicName, milestoneName := req.TopicName, req.MilestoneName
	if topicName == "" || milestoneName == "" {
		if topic, milestone, ok := catalog.FindTopic(req.TopicID); ok {
			if topicName == "" {
				topicName = topic.Name
			}
			if milestoneName == "" {
				milestoneName = milestone.Name
			}
		}
	}
	if topicName == "" {
		topicName = defaultTopic
	}
	if milestoneName == "" {
		milestoneName = defaultMilestone
	}
	return topicName, milestoneName
}

func questionView(q domain.Question, index, total int) domain.QuestionView {
	return domain.QuestionView{
		Question:       q.Text,
		Options:        append([]string(nil), q.Options...),
		CurrentIndex:   index,
		TotalQuestions: total,
		IsLast:         index == total-1,
	}
}
