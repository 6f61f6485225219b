package memory

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/Mrvatsan/APTITUDE-AI/internal/domain"
	"golang.org/x/sync/singleflight"
)

// QuestionLoader fetches a topic's question pool from a backing store (e.g., Postgres).
type QuestionLoader interface {
	LoadQuestions(ctx context.Context, topic string) ([]domain.Question, error)
}

// QuestionBank serves questions from per-topic pools cached with a TTL. It is
// the offline question source used when no LLM is configured or the LLM fails.
type QuestionBank struct {
	loader QuestionLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group

	rndMu sync.Mutex
	rnd   *rand.Rand

	mu    sync.RWMutex
	cache map[string]cachedPool
}

type cachedPool struct {
	questions []domain.Question
	expiresAt time.Time
}

func NewQuestionBank(loader QuestionLoader, ttl time.Duration) *QuestionBank {
	return &QuestionBank{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedPool),
	}
}

// Generate picks req.Count questions for the topic. Topics without a pool fall
// back to DefaultTopic.
func (b *QuestionBank) Generate(ctx context.Context, req domain.GenerateRequest) ([]domain.Question, error) {
	pool, err := b.pool(ctx, req.Topic)
	if errors.Is(err, domain.ErrTopicNotFound) && req.Topic != DefaultTopic {
		pool, err = b.pool(ctx, DefaultTopic)
	}
	if err != nil {
		return nil, err
	}

	b.rndMu.Lock()
	selected := SelectQuestions(pool, req.Count, req.Difficulty, b.rnd)
	b.rndMu.Unlock()

	for i := range selected {
		selected[i].Milestone = req.Milestone
	}
	return selected, nil
}

func (b *QuestionBank) pool(ctx context.Context, topic string) ([]domain.Question, error) {
	now := b.clock()

	b.mu.RLock()
	if entry, ok := b.cache[topic]; ok && entry.expiresAt.After(now) {
		b.mu.RUnlock()
		return entry.questions, nil
	}
	b.mu.RUnlock()

	result, err, _ := b.sf.Do(topic, func() (interface{}, error) {
		now := b.clock()
		b.mu.RLock()
		if entry, ok := b.cache[topic]; ok && entry.expiresAt.After(now) {
			b.mu.RUnlock()
			return entry.questions, nil
		}
		b.mu.RUnlock()

		questions, err := b.loader.LoadQuestions(ctx, topic)
		if err != nil {
			return nil, err
		}
		if len(questions) == 0 {
			return nil, domain.ErrTopicNotFound
		}

		b.mu.Lock()
		b.cache[topic] = cachedPool{
			questions: questions,
			expiresAt: now.Add(b.ttlWithJitter()),
		}
		b.mu.Unlock()
		return questions, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

// SelectQuestions shuffles a copy of pool and returns up to n questions. When
// difficulty is set (and not "mixed") the pool is narrowed to that difficulty,
// but only if enough questions match.
func SelectQuestions(pool []domain.Question, n int, difficulty string, rnd *rand.Rand) []domain.Question {
	candidates := pool
	if difficulty != "" && difficulty != "mixed" {
		filtered := make([]domain.Question, 0, len(pool))
		for _, q := range pool {
			if q.Difficulty == difficulty {
				filtered = append(filtered, q)
			}
		}
		if len(filtered) >= n {
			candidates = filtered
		}
	}

	out := make([]domain.Question, len(candidates))
	copy(out, candidates)
	rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// StaticQuestionLoader is a loader backed by an in-memory map (built-in bank, tests).
type StaticQuestionLoader struct {
	pools map[string][]domain.Question
}

func NewStaticQuestionLoader(pools map[string][]domain.Question) *StaticQuestionLoader {
	return &StaticQuestionLoader{pools: pools}
}

func (l *StaticQuestionLoader) LoadQuestions(_ context.Context, topic string) ([]domain.Question, error) {
	if pool, ok := l.pools[topic]; ok {
		return pool, nil
	}
	return nil, domain.ErrTopicNotFound
}

func (b *QuestionBank) ttlWithJitter() time.Duration {
	if b.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(b.ttl) / 10
	b.rndMu.Lock()
	defer b.rndMu.Unlock()
	return b.ttl + time.Duration(b.rnd.Int63n(jitterMax+1))
}

// LayeredLoader consults primary first and fills topics it does not know
// about from fallback.
type LayeredLoader struct {
	primary  QuestionLoader
	fallback QuestionLoader
}

func NewLayeredLoader(primary, fallback QuestionLoader) *LayeredLoader {
	return &LayeredLoader{primary: primary, fallback: fallback}
}

func (l *LayeredLoader) LoadQuestions(ctx context.Context, topic string) ([]domain.Question, error) {
	questions, err := l.primary.LoadQuestions(ctx, topic)
	if err == nil && len(questions) > 0 {
		return questions, nil
	}
	if err != nil && !errors.Is(err, domain.ErrTopicNotFound) {
		return nil, err
	}
	return l.fallback.LoadQuestions(ctx, topic)
}
