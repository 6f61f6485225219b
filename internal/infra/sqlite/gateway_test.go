package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Mrvatsan/APTITUDE-AI/internal/domain"
)

func openTestGateway(t *testing.T) *Gateway {
	t.Helper()
	g, err := Open(filepath.Join(t.TempDir(), "practice.db"))
	if err != nil {
		t.Fatalf("open test gateway: %v", err)
	}
	t.Cleanup(func() { g.Close() })
	return g
}

func TestCreateSessionIfAbsent(t *testing.T) {
	g := openTestGateway(t)
	ctx := context.Background()
	rec := domain.CompletedSession{
		ID: "s1", UserID: "u1", TopicID: 101, TopicName: "Number System", MilestoneName: "Milestone 1",
		Difficulty: "medium", TotalQuestions: 10, CorrectAnswers: 7, Accuracy: 70, XPEarned: 70,
		DurationSeconds: 300, CompletedAt: time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC),
	}

	created, err := g.CreateSessionIfAbsent(ctx, rec)
	if err != nil || !created {
		t.Fatalf("expected insert, created=%v err=%v", created, err)
	}
	created, err = g.CreateSessionIfAbsent(ctx, rec)
	if err != nil || created {
		t.Fatalf("expected duplicate ignored, created=%v err=%v", created, err)
	}

	got, err := g.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if !got.CompletedAt.Equal(rec.CompletedAt) {
		t.Fatalf("completed_at mismatch: got %v want %v", got.CompletedAt, rec.CompletedAt)
	}
	got.CompletedAt = rec.CompletedAt
	if got != rec {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, rec)
	}
	if _, err := g.GetSession(ctx, "nope"); !errors.Is(err, domain.ErrCompletedSessionNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListAndCountSessions(t *testing.T) {
	g := openTestGateway(t)
	ctx := context.Background()
	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		rec := domain.CompletedSession{ID: id, UserID: "u1", TopicName: "Average", MilestoneName: "Milestone 1",
			Difficulty: "easy", CompletedAt: base.Add(time.Duration(i) * time.Hour)}
		if _, err := g.CreateSessionIfAbsent(ctx, rec); err != nil {
			t.Fatalf("insert %s: %v", id, err)
		}
	}

	all, err := g.ListSessions(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 || all[0].ID != "c" || all[2].ID != "a" {
		t.Fatalf("expected newest first, got %+v", all)
	}
	limited, _ := g.ListSessions(ctx, "u1", 1)
	if len(limited) != 1 || limited[0].ID != "c" {
		t.Fatalf("unexpected limited list: %+v", limited)
	}
	if n, _ := g.CountSessions(ctx, "u1"); n != 3 {
		t.Fatalf("expected 3, got %d", n)
	}
	if n, _ := g.CountSessions(ctx, "u2"); n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}
}

func TestProfileUpsert(t *testing.T) {
	g := openTestGateway(t)
	ctx := context.Background()

	if _, err := g.GetProfile(ctx, "u1"); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected missing profile, got %v", err)
	}
	if err := g.SaveProfile(ctx, domain.UserProfile{UserID: "u1", TotalXP: 10, SessionsCompleted: 1}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := g.GetProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.LastActiveDate != nil {
		t.Fatalf("expected nil last active date, got %v", got.LastActiveDate)
	}

	day := time.Date(2026, 4, 2, 18, 0, 0, 0, time.UTC)
	if err := g.SaveProfile(ctx, domain.UserProfile{UserID: "u1", TotalXP: 80, SessionsCompleted: 2,
		TotalAccuracySum: 90, StreakCount: 2, LastActiveDate: &day}); err != nil {
		t.Fatalf("save 2: %v", err)
	}
	got, _ = g.GetProfile(ctx, "u1")
	if got.TotalXP != 80 || got.SessionsCompleted != 2 || got.TotalAccuracySum != 90 || got.StreakCount != 2 {
		t.Fatalf("unexpected profile: %+v", got)
	}
	if got.LastActiveDate == nil || !got.LastActiveDate.Equal(day) {
		t.Fatalf("expected last active %v, got %v", day, got.LastActiveDate)
	}
}
