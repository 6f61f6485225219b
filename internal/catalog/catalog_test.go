package catalog

import "testing"

func TestFindTopic(t *testing.T) {
	topic, milestone, ok := FindTopic(403)
	if !ok {
		t.Fatalf("expected topic 403")
	}
	if topic.Name != "Data Interpretation" || topic.Weight != 1.5 || topic.DifficultyTag != "hard" {
		t.Fatalf("unexpected topic: %+v", topic)
	}
	if milestone.ID != 4 || milestone.Name != "Milestone 4" {
		t.Fatalf("unexpected milestone: %+v", milestone)
	}

	if _, _, ok := FindTopic(999); ok {
		t.Fatalf("expected unknown topic")
	}
}

func TestMilestonesAreCopies(t *testing.T) {
	all := Milestones()
	if len(all) != 6 {
		t.Fatalf("expected 6 milestones, got %d", len(all))
	}
	all[0].Topics[0].Name = "changed"

	m, ok := FindMilestone(1)
	if !ok {
		t.Fatalf("expected milestone 1")
	}
	if m.Topics[0].Name != "Number System" {
		t.Fatalf("catalog mutated through returned slice: %+v", m.Topics[0])
	}
}
