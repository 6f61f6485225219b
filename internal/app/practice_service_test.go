package app_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Mrvatsan/APTITUDE-AI/internal/app"
	"github.com/Mrvatsan/APTITUDE-AI/internal/domain"
	"github.com/Mrvatsan/APTITUDE-AI/internal/infra/memory"
)

func TestStartAutoSizesNewUser(t *testing.T) {
	env := newTestEnv()

	resp, err := env.service.Start(context.Background(), "u1", domain.StartRequest{TopicID: 101})
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if resp.TotalQuestions != 5 || resp.DurationSeconds != 480 {
		t.Fatalf("expected 5 questions / 480s, got %d / %d", resp.TotalQuestions, resp.DurationSeconds)
	}
	if resp.CurrentIndex != 0 || resp.CurrentQuestion.CurrentIndex != 0 || resp.CurrentQuestion.IsLast {
		t.Fatalf("unexpected first question view: %+v", resp.CurrentQuestion)
	}
	if env.questions.last.Topic != "Number System" || env.questions.last.Milestone != "Milestone 1" {
		t.Fatalf("expected catalog names resolved, got %+v", env.questions.last)
	}
	if env.questions.last.Difficulty != "medium" {
		t.Fatalf("expected default difficulty, got %q", env.questions.last.Difficulty)
	}
}

func TestStartAutoSizesExperiencedUser(t *testing.T) {
	env := newTestEnv()
	for i := 0; i < 12; i++ {
		_, _ = env.store.CreateSessionIfAbsent(context.Background(), domain.CompletedSession{ID: fmt.Sprintf("old-%d", i), UserID: "u1"})
	}

	resp, err := env.service.Start(context.Background(), "u1", domain.StartRequest{TopicName: "Average"})
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if resp.TotalQuestions != 10 || resp.DurationSeconds != 900 {
		t.Fatalf("expected 10 questions / 900s, got %d / %d", resp.TotalQuestions, resp.DurationSeconds)
	}
}

func TestStartGenerationFailureCreatesNoSession(t *testing.T) {
	env := newTestEnv()
	env.questions.err = errors.New("model unavailable")

	_, err := env.service.Start(context.Background(), "u1", domain.StartRequest{NumQuestions: 5})
	if !errors.Is(err, domain.ErrGenerationFailed) {
		t.Fatalf("expected generation failure, got %v", err)
	}
	if env.sessions.Len() != 0 {
		t.Fatalf("expected no session, got %d", env.sessions.Len())
	}
}

func TestAnswerFlowAndScoring(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	resp, err := env.service.Start(ctx, "u1", domain.StartRequest{TopicName: "Average", NumQuestions: 10})
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	for i := 0; i < 10; i++ {
		option := 1 // correct
		if i >= 7 {
			option = 0
		}
		outcome, err := env.service.SubmitAnswer(ctx, "u1", resp.SessionID, i, option)
		if err != nil {
			t.Fatalf("answer %d failed: %v", i, err)
		}
		if outcome.IsCorrect != (i < 7) {
			t.Fatalf("answer %d: unexpected correctness %v", i, outcome.IsCorrect)
		}
		if outcome.NextIndex != i+1 {
			t.Fatalf("answer %d: expected next index %d, got %d", i, i+1, outcome.NextIndex)
		}
		if outcome.IsComplete != (i == 9) {
			t.Fatalf("answer %d: unexpected completion %v", i, outcome.IsComplete)
		}
	}

	result, err := env.service.Result(ctx, "u1", resp.SessionID)
	if err != nil {
		t.Fatalf("result failed: %v", err)
	}
	if result.Correct != 7 || result.Total != 10 || result.Accuracy != 70 || result.XPEarned != 70 {
		t.Fatalf("unexpected score: %+v", result)
	}
	if result.ProgressPercent != 70 {
		t.Fatalf("expected progress 70, got %v", result.ProgressPercent)
	}
	if len(result.Details) != 10 || *result.Details[9].UserAnswer != 0 || result.Details[9].IsCorrect {
		t.Fatalf("unexpected details: %+v", result.Details[9])
	}
}

func TestQuestionAndAnswerIndexBounds(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	resp, _ := env.service.Start(ctx, "u1", domain.StartRequest{NumQuestions: 5})

	if _, err := env.service.Question(ctx, "u1", resp.SessionID, 5); !errors.Is(err, domain.ErrInvalidIndex) {
		t.Fatalf("expected invalid index, got %v", err)
	}
	if _, err := env.service.SubmitAnswer(ctx, "u1", resp.SessionID, 5, 0); !errors.Is(err, domain.ErrInvalidIndex) {
		t.Fatalf("expected invalid index, got %v", err)
	}
	if _, err := env.service.SubmitAnswer(ctx, "u1", resp.SessionID, -1, 0); !errors.Is(err, domain.ErrInvalidIndex) {
		t.Fatalf("expected invalid index, got %v", err)
	}

	view, err := env.service.Question(ctx, "u1", resp.SessionID, 4)
	if err != nil {
		t.Fatalf("question failed: %v", err)
	}
	if !view.IsLast || view.TotalQuestions != 5 {
		t.Fatalf("unexpected last view: %+v", view)
	}
}

func TestUnknownOrForeignSession(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	resp, _ := env.service.Start(ctx, "u1", domain.StartRequest{NumQuestions: 5})

	if _, err := env.service.Result(ctx, "u1", "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := env.service.SubmitAnswer(ctx, "u2", resp.SessionID, 0, 1); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected not found for other user, got %v", err)
	}
}

func TestResultIsIdempotent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	resp, _ := env.service.Start(ctx, "u1", domain.StartRequest{NumQuestions: 5})
	_, _ = env.service.SubmitAnswer(ctx, "u1", resp.SessionID, 0, 1)

	env.advance(90 * time.Second)
	first, err := env.service.Result(ctx, "u1", resp.SessionID)
	if err != nil {
		t.Fatalf("first result: %v", err)
	}
	env.advance(time.Minute)
	second, err := env.service.Result(ctx, "u1", resp.SessionID)
	if err != nil {
		t.Fatalf("second result: %v", err)
	}
	if first.DurationSeconds != 90 || second.DurationSeconds != 90 {
		t.Fatalf("expected frozen duration 90, got %d and %d", first.DurationSeconds, second.DurationSeconds)
	}

	if n, _ := env.store.CountSessions(ctx, "u1"); n != 1 {
		t.Fatalf("expected one completed session, got %d", n)
	}
	profile, err := env.store.GetProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.SessionsCompleted != 1 || profile.TotalXP != 10 || profile.TotalAccuracySum != 20 {
		t.Fatalf("expected profile updated once, got %+v", profile)
	}
	if profile.StreakCount != 1 {
		t.Fatalf("expected streak 1, got %d", profile.StreakCount)
	}

	if _, err := env.service.SubmitAnswer(ctx, "u1", resp.SessionID, 1, 1); !errors.Is(err, domain.ErrSessionFinished) {
		t.Fatalf("expected finished session, got %v", err)
	}
}

func TestResultSwallowsPersistenceFailure(t *testing.T) {
	env := newTestEnv()
	failing := &failingGateway{RecordStore: env.store}
	svc := app.NewPracticeService(env.sessions, env.questions, failing, app.WithClock(env.clock))
	ctx := context.Background()

	resp, err := svc.Start(ctx, "u1", domain.StartRequest{NumQuestions: 5})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	_, _ = svc.SubmitAnswer(ctx, "u1", resp.SessionID, 0, 1)

	result, err := svc.Result(ctx, "u1", resp.SessionID)
	if err != nil {
		t.Fatalf("expected result despite storage failure, got %v", err)
	}
	if result.Correct != 1 || result.Accuracy != 20 {
		t.Fatalf("unexpected score: %+v", result)
	}
}

func TestResultFeedback(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	fb := &stubFeedback{text: "Focus on averages."}
	svc := app.NewPracticeService(env.sessions, env.questions, env.store, app.WithClock(env.clock), app.WithFeedback(fb, time.Second))
	resp, _ := svc.Start(ctx, "u1", domain.StartRequest{NumQuestions: 5})
	result, err := svc.Result(ctx, "u1", resp.SessionID)
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if result.Feedback == nil || *result.Feedback != "Focus on averages." {
		t.Fatalf("expected feedback, got %v", result.Feedback)
	}
	if fb.got.Total != 5 || fb.got.Accuracy != 0 {
		t.Fatalf("unexpected feedback input: %+v", fb.got)
	}

	fb.err = errors.New("quota exceeded")
	resp, _ = svc.Start(ctx, "u1", domain.StartRequest{NumQuestions: 5})
	result, err = svc.Result(ctx, "u1", resp.SessionID)
	if err != nil {
		t.Fatalf("result with failing feedback: %v", err)
	}
	if result.Feedback != nil {
		t.Fatalf("expected nil feedback, got %q", *result.Feedback)
	}
}

func TestStreakAcrossDays(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	complete := func() {
		resp, err := env.service.Start(ctx, "u1", domain.StartRequest{NumQuestions: 5})
		if err != nil {
			t.Fatalf("start: %v", err)
		}
		if _, err := env.service.Result(ctx, "u1", resp.SessionID); err != nil {
			t.Fatalf("result: %v", err)
		}
	}

	complete()
	env.advance(2 * time.Hour)
	complete()
	assertStreak(t, env, 1)

	env.advance(24 * time.Hour)
	complete()
	assertStreak(t, env, 2)

	env.advance(72 * time.Hour)
	complete()
	assertStreak(t, env, 1)
}

func TestWeakAreasEligibility(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	seed := func(n int) {
		for i := 0; i < n; i++ {
			_, _ = env.store.CreateSessionIfAbsent(ctx, domain.CompletedSession{
				ID: fmt.Sprintf("s-%d", i), UserID: "u1", TopicName: "Percentage", Accuracy: 40,
			})
		}
		_ = env.store.SaveProfile(ctx, domain.UserProfile{UserID: "u1", SessionsCompleted: n})
	}

	seed(9)
	report, err := env.service.WeakAreas(ctx, "u1")
	if err != nil {
		t.Fatalf("weak areas: %v", err)
	}
	if report.Eligible || report.Message != "Complete 1 more session to unlock weak area analysis." {
		t.Fatalf("unexpected ineligible report: %+v", report)
	}

	seed(10)
	report, err = env.service.WeakAreas(ctx, "u1")
	if err != nil {
		t.Fatalf("weak areas: %v", err)
	}
	if !report.Eligible || len(report.WeakAreas) != 1 || report.WeakAreas[0].Name != "Percentage" || report.WeakAreas[0].Count != 10 {
		t.Fatalf("unexpected eligible report: %+v", report)
	}
}

func TestProfileSummaryForNewUser(t *testing.T) {
	env := newTestEnv()
	summary, err := env.service.Profile(context.Background(), "new-user")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if summary.UserID != "new-user" || summary.CurrentBadge != "Iron" || summary.AverageAccuracy != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestSweepIdle(t *testing.T) {
	env := newTestEnv()
	resp, _ := env.service.Start(context.Background(), "u1", domain.StartRequest{NumQuestions: 5})

	env.advance(3 * time.Hour)
	if removed := env.service.SweepIdle(2 * time.Hour); removed != 1 {
		t.Fatalf("expected 1 eviction, got %d", removed)
	}
	if _, err := env.service.Question(context.Background(), "u1", resp.SessionID, 0); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected evicted session, got %v", err)
	}
}

type testEnv struct {
	now       time.Time
	sessions  *memory.SessionStore
	store     *memory.RecordStore
	questions *stubQuestions
	service   *app.PracticeService
}

func newTestEnv() *testEnv {
	env := &testEnv{now: time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)}
	env.sessions = memory.NewSessionStoreWithClock(env.clock)
	env.store = memory.NewRecordStore()
	env.questions = &stubQuestions{}
	env.service = app.NewPracticeService(env.sessions, env.questions, env.store,
		app.WithClock(env.clock), app.WithLocation(time.UTC))
	return env
}

func (e *testEnv) clock() time.Time { return e.now }

func (e *testEnv) advance(d time.Duration) { e.now = e.now.Add(d) }

func assertStreak(t *testing.T, env *testEnv, want int) {
	t.Helper()
	profile, err := env.store.GetProfile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.StreakCount != want {
		t.Fatalf("expected streak %d, got %d", want, profile.StreakCount)
	}
}

type stubQuestions struct {
	err  error
	last domain.GenerateRequest
}

func (s *stubQuestions) Generate(_ context.Context, req domain.GenerateRequest) ([]domain.Question, error) {
	s.last = req
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.Question, req.Count)
	for i := range out {
		out[i] = domain.Question{
			Text:               fmt.Sprintf("Question %d", i+1),
			Options:            []string{"wrong", "right", "also wrong", "nope"},
			CorrectOptionIndex: 1,
			Solution:           "pick right",
			Difficulty:         req.Difficulty,
			Category:           req.Topic,
		}
	}
	return out, nil
}

type stubFeedback struct {
	text string
	err  error
	got  app.FeedbackInput
}

func (s *stubFeedback) Feedback(_ context.Context, in app.FeedbackInput) (string, error) {
	s.got = in
	return s.text, s.err
}

type failingGateway struct {
	*memory.RecordStore
}

func (f *failingGateway) CreateSessionIfAbsent(context.Context, domain.CompletedSession) (bool, error) {
	return false, errors.New("connection refused")
}
