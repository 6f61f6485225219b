package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Mrvatsan/APTITUDE-AI/internal/domain"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// QuestionLoader loads a topic's question pool (JSONB array) from Postgres.
type QuestionLoader struct {
	pool *pgxpool.Pool
}

func NewQuestionLoader(pool *pgxpool.Pool) *QuestionLoader {
	return &QuestionLoader{pool: pool}
}

func (l *QuestionLoader) LoadQuestions(ctx context.Context, topic string) ([]domain.Question, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM question_bank WHERE topic=$1`, topic).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTopicNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}
	var questions []domain.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("unmarshal question bank: %w", err)
	}
	return questions, nil
}

// SeedQuestions upserts topic pools into the question_bank table.
func SeedQuestions(ctx context.Context, pool *pgxpool.Pool, pools map[string][]domain.Question) error {
	for topic, questions := range pools {
		data, err := json.Marshal(questions)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", topic, err)
		}
		_, err = pool.Exec(ctx,
			`INSERT INTO question_bank (topic, data) VALUES ($1, $2::jsonb)
			 ON CONFLICT (topic) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
			topic, string(data))
		if err != nil {
			return fmt.Errorf("seed %s: %w", topic, err)
		}
	}
	return nil
}
