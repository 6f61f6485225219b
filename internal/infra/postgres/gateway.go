package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Mrvatsan/APTITUDE-AI/internal/domain"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

type profileModel struct {
	bun.BaseModel `bun:"table:user_profiles"`

	UserID            string     `bun:"user_id,pk"`
	TotalXP           int        `bun:"total_xp,notnull"`
	SessionsCompleted int        `bun:"sessions_completed,notnull"`
	TotalAccuracySum  int        `bun:"total_accuracy_sum,notnull"`
	StreakCount       int        `bun:"streak_count,notnull"`
	LastActiveDate    *time.Time `bun:"last_active_date"`
}

type completedSessionModel struct {
	bun.BaseModel `bun:"table:completed_sessions"`

	ID              string    `bun:"id,pk"`
	UserID          string    `bun:"user_id,notnull"`
	TopicID         int       `bun:"topic_id,notnull"`
	TopicName       string    `bun:"topic_name,notnull"`
	MilestoneName   string    `bun:"milestone_name,notnull"`
	Difficulty      string    `bun:"difficulty,notnull"`
	TotalQuestions  int       `bun:"total_questions,notnull"`
	CorrectAnswers  int       `bun:"correct_answers,notnull"`
	Accuracy        int       `bun:"accuracy,notnull"`
	XPEarned        int       `bun:"xp_earned,notnull"`
	DurationSeconds int       `bun:"duration_seconds,notnull"`
	CompletedAt     time.Time `bun:"completed_at,notnull"`
}

// Gateway persists profiles and completed sessions in Postgres through bun.
type Gateway struct {
	db *bun.DB
}

// Open connects a bun DB to the Postgres DSN.
func Open(dsn string) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New())
}

func NewGateway(db *bun.DB) *Gateway {
	return &Gateway{db: db}
}

func (g *Gateway) GetProfile(ctx context.Context, userID string) (domain.UserProfile, error) {
	var m profileModel
	err := g.db.NewSelect().Model(&m).Where("user_id = ?", userID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.UserProfile{}, domain.ErrProfileNotFound
	}
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("select profile: %w", err)
	}
	return domain.UserProfile{
		UserID:            m.UserID,
		TotalXP:           m.TotalXP,
		SessionsCompleted: m.SessionsCompleted,
		TotalAccuracySum:  m.TotalAccuracySum,
		StreakCount:       m.StreakCount,
		LastActiveDate:    m.LastActiveDate,
	}, nil
}

func (g *Gateway) SaveProfile(ctx context.Context, p domain.UserProfile) error {
	m := profileModel{
		UserID:            p.UserID,
		TotalXP:           p.TotalXP,
		SessionsCompleted: p.SessionsCompleted,
		TotalAccuracySum:  p.TotalAccuracySum,
		StreakCount:       p.StreakCount,
		LastActiveDate:    p.LastActiveDate,
	}
	_, err := g.db.NewInsert().Model(&m).
		On("CONFLICT (user_id) DO UPDATE").
		Set("total_xp = EXCLUDED.total_xp").
		Set("sessions_completed = EXCLUDED.sessions_completed").
		Set("total_accuracy_sum = EXCLUDED.total_accuracy_sum").
		Set("streak_count = EXCLUDED.streak_count").
		Set("last_active_date = EXCLUDED.last_active_date").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

func (g *Gateway) CreateSessionIfAbsent(ctx context.Context, rec domain.CompletedSession) (bool, error) {
	m := toSessionModel(rec)
	res, err := g.db.NewInsert().Model(&m).On("CONFLICT (id) DO NOTHING").Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("insert completed session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n == 1, nil
}

func (g *Gateway) GetSession(ctx context.Context, id string) (domain.CompletedSession, error) {
	var m completedSessionModel
	err := g.db.NewSelect().Model(&m).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CompletedSession{}, domain.ErrCompletedSessionNotFound
	}
	if err != nil {
		return domain.CompletedSession{}, fmt.Errorf("select completed session: %w", err)
	}
	return fromSessionModel(m), nil
}

func (g *Gateway) ListSessions(ctx context.Context, userID string, limit int) ([]domain.CompletedSession, error) {
	var models []completedSessionModel
	q := g.db.NewSelect().Model(&models).
		Where("user_id = ?", userID).
		Order("completed_at DESC", "id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("list completed sessions: %w", err)
	}
	out := make([]domain.CompletedSession, 0, len(models))
	for _, m := range models {
		out = append(out, fromSessionModel(m))
	}
	return out, nil
}

func (g *Gateway) CountSessions(ctx context.Context, userID string) (int, error) {
	n, err := g.db.NewSelect().Model((*completedSessionModel)(nil)).Where("user_id = ?", userID).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count completed sessions: %w", err)
	}
	return n, nil
}

func toSessionModel(rec domain.CompletedSession) completedSessionModel {
	return completedSessionModel{
		ID:              rec.ID,
		UserID:          rec.UserID,
		TopicID:         rec.TopicID,
		TopicName:       rec.TopicName,
		MilestoneName:   rec.MilestoneName,
		Difficulty:      rec.Difficulty,
		TotalQuestions:  rec.TotalQuestions,
		CorrectAnswers:  rec.CorrectAnswers,
		Accuracy:        rec.Accuracy,
		XPEarned:        rec.XPEarned,
		DurationSeconds: rec.DurationSeconds,
		CompletedAt:     rec.CompletedAt,
	}
}

func fromSessionModel(m completedSessionModel) domain.CompletedSession {
	return domain.CompletedSession{
		ID:              m.ID,
		UserID:          m.UserID,
		TopicID:         m.TopicID,
		TopicName:       m.TopicName,
		MilestoneName:   m.MilestoneName,
		Difficulty:      m.Difficulty,
		TotalQuestions:  m.TotalQuestions,
		CorrectAnswers:  m.CorrectAnswers,
		Accuracy:        m.Accuracy,
		XPEarned:        m.XPEarned,
		DurationSeconds: m.DurationSeconds,
		CompletedAt:     m.CompletedAt,
	}
}
