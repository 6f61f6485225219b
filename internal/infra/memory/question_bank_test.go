package memory

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/Mrvatsan/APTITUDE-AI/internal/domain"
)

func TestQuestionBankCaches(t *testing.T) {
	loader := &countingLoader{QuestionLoader: NewStaticQuestionLoader(DefaultQuestionBank())}
	bank := NewQuestionBank(loader, time.Minute)

	for i := 0; i < 2; i++ {
		qs, err := bank.Generate(context.Background(), domain.GenerateRequest{Topic: "Average", Milestone: "Milestone 1", Count: 5})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(qs) != 5 {
			t.Fatalf("expected 5 questions, got %d", len(qs))
		}
		if qs[0].Milestone != "Milestone 1" {
			t.Fatalf("expected milestone stamped, got %q", qs[0].Milestone)
		}
	}
	if loader.callCount() != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.callCount())
	}
}

func TestQuestionBankFallsBackToDefaultTopic(t *testing.T) {
	bank := NewQuestionBank(NewStaticQuestionLoader(DefaultQuestionBank()), time.Minute)

	qs, err := bank.Generate(context.Background(), domain.GenerateRequest{Topic: "Blood Relations", Count: 10})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(qs) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(qs))
	}
	for _, q := range qs {
		if q.Category != DefaultTopic {
			t.Fatalf("expected default topic questions, got %q", q.Category)
		}
	}
}

func TestQuestionBankUnknownTopicWithoutDefault(t *testing.T) {
	bank := NewQuestionBank(NewStaticQuestionLoader(map[string][]domain.Question{}), time.Minute)
	if _, err := bank.Generate(context.Background(), domain.GenerateRequest{Topic: "Nope", Count: 5}); err == nil {
		t.Fatalf("expected error for empty bank")
	}
}

func TestSelectQuestionsDifficulty(t *testing.T) {
	pool := []domain.Question{
		{Text: "a", Difficulty: "easy"},
		{Text: "b", Difficulty: "hard"},
		{Text: "c", Difficulty: "hard"},
		{Text: "d", Difficulty: "medium"},
	}
	rnd := rand.New(rand.NewSource(1))

	hard := SelectQuestions(pool, 2, "hard", rnd)
	for _, q := range hard {
		if q.Difficulty != "hard" {
			t.Fatalf("expected only hard questions, got %+v", hard)
		}
	}

	// not enough hard questions for 3, so the whole pool is used
	mixed := SelectQuestions(pool, 3, "hard", rnd)
	if len(mixed) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(mixed))
	}

	all := SelectQuestions(pool, 10, "mixed", rnd)
	if len(all) != len(pool) {
		t.Fatalf("expected whole pool, got %d", len(all))
	}
	if pool[0].Text != "a" || pool[3].Text != "d" {
		t.Fatalf("pool mutated by shuffle")
	}
}

type countingLoader struct {
	QuestionLoader
	mu    sync.Mutex
	calls int
}

func (l *countingLoader) LoadQuestions(ctx context.Context, topic string) ([]domain.Question, error) {
	l.mu.Lock()
	l.calls++
	l.mu.Unlock()
	return l.QuestionLoader.LoadQuestions(ctx, topic)
}

func (l *countingLoader) callCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

type brokenLoader struct{ err error }

func (b brokenLoader) LoadQuestions(context.Context, string) ([]domain.Question, error) {
	return nil, b.err
}

func TestLayeredLoader(t *testing.T) {
	primary := NewStaticQuestionLoader(map[string][]domain.Question{
		"Average": {{Text: "custom", Options: []string{"a", "b"}, CorrectOptionIndex: 0}},
	})
	loader := NewLayeredLoader(primary, NewStaticQuestionLoader(DefaultQuestionBank()))

	qs, err := loader.LoadQuestions(context.Background(), "Average")
	if err != nil || len(qs) != 1 || qs[0].Text != "custom" {
		t.Fatalf("expected primary pool, got %v (%v)", qs, err)
	}

	qs, err = loader.LoadQuestions(context.Background(), "Percentage")
	if err != nil || len(qs) == 0 || qs[0].Category != "Percentage" {
		t.Fatalf("expected fallback pool, got %d questions (%v)", len(qs), err)
	}

	down := NewLayeredLoader(brokenLoader{err: context.DeadlineExceeded}, NewStaticQuestionLoader(DefaultQuestionBank()))
	if _, err := down.LoadQuestions(context.Background(), "Average"); err != context.DeadlineExceeded {
		t.Fatalf("expected primary failure to surface, got %v", err)
	}
}
