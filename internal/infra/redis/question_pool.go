package redis

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Mrvatsan/APTITUDE-AI/internal/app"
	"github.com/Mrvatsan/APTITUDE-AI/internal/domain"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// QuestionPool caches generated questions in Redis and serves from the cache
// once it holds enough of them, so repeated starts on a popular topic skip the
// upstream generator.
// Pools are stored as: RPUSH practice:questions:{topic}:{milestone}:{difficulty} {json}
type QuestionPool struct {
	client   *redis.Client
	source   app.QuestionSource
	ttl      time.Duration
	poolSize int64
	sf       singleflight.Group

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func NewQuestionPool(client *redis.Client, source app.QuestionSource, ttl time.Duration, poolSize int) *QuestionPool {
	if poolSize <= 0 {
		poolSize = 100
	}
	return &QuestionPool{
		client:   client,
		source:   source,
		ttl:      ttl,
		poolSize: int64(poolSize),
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (p *QuestionPool) Generate(ctx context.Context, req domain.GenerateRequest) ([]domain.Question, error) {
	key := p.key(req)
	if qs, ok := p.cached(ctx, key, req.Count); ok {
		return qs, nil
	}

	result, err, _ := p.sf.Do(key+":"+strconv.Itoa(req.Count), func() (interface{}, error) {
		if qs, ok := p.cached(ctx, key, req.Count); ok {
			return qs, nil
		}
		qs, err := p.source.Generate(ctx, req)
		if err != nil {
			return nil, err
		}
		p.store(ctx, key, qs)
		return qs, nil
	})
	if err != nil {
		return nil, err
	}
	return cloneQuestions(result.([]domain.Question)), nil
}

func (p *QuestionPool) cached(ctx context.Context, key string, count int) ([]domain.Question, bool) {
	if count <= 0 {
		return nil, false
	}
	raw, err := p.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[session] question pool read %s failed: %v", key, err)
		}
		return nil, false
	}
	if len(raw) < count {
		return nil, false
	}

	p.rndMu.Lock()
	p.rnd.Shuffle(len(raw), func(i, j int) { raw[i], raw[j] = raw[j], raw[i] })
	p.rndMu.Unlock()

	out := make([]domain.Question, 0, count)
	for _, item := range raw {
		var q domain.Question
		if err := json.Unmarshal([]byte(item), &q); err != nil {
			continue
		}
		out = append(out, q)
		if len(out) == count {
			return out, true
		}
	}
	return nil, false
}

func (p *QuestionPool) store(ctx context.Context, key string, qs []domain.Question) {
	if len(qs) == 0 {
		return
	}
	values := make([]interface{}, 0, len(qs))
	for _, q := range qs {
		data, err := json.Marshal(q)
		if err != nil {
			continue
		}
		values = append(values, data)
	}

	pipe := p.client.Pipeline()
	pipe.RPush(ctx, key, values...)
	pipe.LTrim(ctx, key, -p.poolSize, -1)
	if ttl := p.ttlWithJitter(); ttl > 0 {
		pipe.Expire(ctx, key, ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("[session] question pool write %s failed: %v", key, err)
	}
}

func (p *QuestionPool) key(req domain.GenerateRequest) string {
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "any"
	}
	parts := []string{"practice", "questions", normalize(req.Topic), normalize(req.Milestone), difficulty}
	return strings.Join(parts, ":")
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}

func cloneQuestions(qs []domain.Question) []domain.Question {
	out := make([]domain.Question, len(qs))
	copy(out, qs)
	return out
}

func (p *QuestionPool) ttlWithJitter() time.Duration {
	if p.ttl <= 0 {
		return 0
	}
	jitterMax := int64(p.ttl) / 10
	p.rndMu.Lock()
	defer p.rndMu.Unlock()
	return p.ttl + time.Duration(p.rnd.Int63n(jitterMax+1))
}
