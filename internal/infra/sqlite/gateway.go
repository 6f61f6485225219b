// Package sqlite is a single-node persistence gateway on a SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Mrvatsan/APTITUDE-AI/internal/domain"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS user_profiles (
	user_id            TEXT PRIMARY KEY,
	total_xp           INTEGER NOT NULL DEFAULT 0,
	sessions_completed INTEGER NOT NULL DEFAULT 0,
	total_accuracy_sum INTEGER NOT NULL DEFAULT 0,
	streak_count       INTEGER NOT NULL DEFAULT 0,
	last_active_ms     INTEGER
);

CREATE TABLE IF NOT EXISTS completed_sessions (
	id               TEXT PRIMARY KEY,
	user_id          TEXT NOT NULL,
	topic_id         INTEGER NOT NULL DEFAULT 0,
	topic_name       TEXT NOT NULL,
	milestone_name   TEXT NOT NULL,
	difficulty       TEXT NOT NULL,
	total_questions  INTEGER NOT NULL,
	correct_answers  INTEGER NOT NULL,
	accuracy         INTEGER NOT NULL,
	xp_earned        INTEGER NOT NULL,
	duration_seconds INTEGER NOT NULL,
	completed_ms     INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_completed_sessions_user ON completed_sessions(user_id, completed_ms DESC);
`

// Gateway implements app.PersistenceGateway on SQLite. Timestamps are stored
// as unix milliseconds in UTC.
type Gateway struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Gateway, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// a single writer avoids SQLITE_BUSY between the insert and profile upsert
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Gateway{db: db}, nil
}

func (g *Gateway) Close() error {
	return g.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func (g *Gateway) GetProfile(ctx context.Context, userID string) (domain.UserProfile, error) {
	var (
		p          domain.UserProfile
		lastActive sql.NullInt64
	)
	err := g.db.QueryRowContext(ctx, `
		SELECT user_id, total_xp, sessions_completed, total_accuracy_sum, streak_count, last_active_ms
		FROM user_profiles WHERE user_id = ?`, userID).
		Scan(&p.UserID, &p.TotalXP, &p.SessionsCompleted, &p.TotalAccuracySum, &p.StreakCount, &lastActive)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.UserProfile{}, domain.ErrProfileNotFound
	}
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("select profile: %w", err)
	}
	if lastActive.Valid {
		t := time.UnixMilli(lastActive.Int64).UTC()
		p.LastActiveDate = &t
	}
	return p, nil
}

func (g *Gateway) SaveProfile(ctx context.Context, p domain.UserProfile) error {
	var lastActive sql.NullInt64
	if p.LastActiveDate != nil {
		lastActive = sql.NullInt64{Int64: p.LastActiveDate.UnixMilli(), Valid: true}
	}
	_, err := g.db.ExecContext(ctx, `
		INSERT INTO user_profiles (user_id, total_xp, sessions_completed, total_accuracy_sum, streak_count, last_active_ms)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			total_xp = excluded.total_xp,
			sessions_completed = excluded.sessions_completed,
			total_accuracy_sum = excluded.total_accuracy_sum,
			streak_count = excluded.streak_count,
			last_active_ms = excluded.last_active_ms`,
		p.UserID, p.TotalXP, p.SessionsCompleted, p.TotalAccuracySum, p.StreakCount, lastActive)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

func (g *Gateway) CreateSessionIfAbsent(ctx context.Context, rec domain.CompletedSession) (bool, error) {
	res, err := g.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO completed_sessions
			(id, user_id, topic_id, topic_name, milestone_name, difficulty, total_questions,
			 correct_answers, accuracy, xp_earned, duration_seconds, completed_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.UserID, rec.TopicID, rec.TopicName, rec.MilestoneName, rec.Difficulty,
		rec.TotalQuestions, rec.CorrectAnswers, rec.Accuracy, rec.XPEarned, rec.DurationSeconds,
		rec.CompletedAt.UnixMilli())
	if err != nil {
		return false, fmt.Errorf("insert completed session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n == 1, nil
}

const sessionColumns = `id, user_id, topic_id, topic_name, milestone_name, difficulty, total_questions,
	correct_answers, accuracy, xp_earned, duration_seconds, completed_ms`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (domain.CompletedSession, error) {
	var (
		rec         domain.CompletedSession
		completedMs int64
	)
	err := row.Scan(&rec.ID, &rec.UserID, &rec.TopicID, &rec.TopicName, &rec.MilestoneName, &rec.Difficulty,
		&rec.TotalQuestions, &rec.CorrectAnswers, &rec.Accuracy, &rec.XPEarned, &rec.DurationSeconds, &completedMs)
	if err != nil {
		return domain.CompletedSession{}, err
	}
	rec.CompletedAt = time.UnixMilli(completedMs).UTC()
	return rec, nil
}

func (g *Gateway) GetSession(ctx context.Context, id string) (domain.CompletedSession, error) {
	row := g.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM completed_sessions WHERE id = ?`, id)
	rec, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CompletedSession{}, domain.ErrCompletedSessionNotFound
	}
	if err != nil {
		return domain.CompletedSession{}, fmt.Errorf("select completed session: %w", err)
	}
	return rec, nil
}

func (g *Gateway) ListSessions(ctx context.Context, userID string, limit int) ([]domain.CompletedSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM completed_sessions WHERE user_id = ? ORDER BY completed_ms DESC, id DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := g.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list completed sessions: %w", err)
	}
	defer rows.Close()

	out := make([]domain.CompletedSession, 0)
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan completed session: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (g *Gateway) CountSessions(ctx context.Context, userID string) (int, error) {
	var n int
	if err := g.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM completed_sessions WHERE user_id = ?`, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count completed sessions: %w", err)
	}
	return n, nil
}
