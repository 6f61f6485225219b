package weakarea

import (
	"strings"
	"testing"

	"github.com/Mrvatsan/APTITUDE-AI/internal/domain"
)

func TestIneligibleBelowTenSessions(t *testing.T) {
	report := Analyze(9, records(map[string][]int{"Average": {10, 20}}))
	if report.Eligible {
		t.Fatalf("expected ineligible report")
	}
	if !strings.Contains(report.Message, "1 more session") {
		t.Fatalf("unexpected message: %q", report.Message)
	}
	if len(report.WeakAreas) != 0 {
		t.Fatalf("expected no weak areas, got %+v", report.WeakAreas)
	}

	if msg := Ineligible(0).Message; !strings.Contains(msg, "10 more sessions") {
		t.Fatalf("unexpected message for new user: %q", msg)
	}
}

func TestAnalyzeRanksWeakTopics(t *testing.T) {
	report := Analyze(12, records(map[string][]int{
		"Percentage":     {40, 50},     // 45
		"Average":        {90, 80, 70}, // 80
		"Probability":    {20},         // 20
		"Time & Work":    {60, 60},     // 60, not strictly below
		"Blood Relation": {55, 60, 62}, // 59
	}))
	if !report.Eligible {
		t.Fatalf("expected eligible report")
	}

	want := []domain.WeakArea{
		{Name: "Probability", Accuracy: 20, Count: 1},
		{Name: "Percentage", Accuracy: 45, Count: 2},
		{Name: "Blood Relation", Accuracy: 59, Count: 3},
	}
	if len(report.WeakAreas) != len(want) {
		t.Fatalf("expected %d weak areas, got %+v", len(want), report.WeakAreas)
	}
	for i := range want {
		if report.WeakAreas[i] != want[i] {
			t.Fatalf("weak area %d: expected %+v, got %+v", i, want[i], report.WeakAreas[i])
		}
	}
}

func TestAnalyzeNoWeakTopics(t *testing.T) {
	report := Analyze(10, records(map[string][]int{"Average": {100}}))
	if !report.Eligible || len(report.WeakAreas) != 0 {
		t.Fatalf("expected eligible with no weak areas, got %+v", report)
	}
}

func records(byTopic map[string][]int) []domain.CompletedSession {
	var out []domain.CompletedSession
	for topic, accuracies := range byTopic {
		for _, acc := range accuracies {
			out = append(out, domain.CompletedSession{TopicName: topic, Accuracy: acc})
		}
	}
	return out
}
