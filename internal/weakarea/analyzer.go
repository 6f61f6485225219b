// Package weakarea surfaces topics where a user's historical accuracy is low.
package weakarea

import (
	"fmt"
	"sort"

	"github.com/Mrvatsan/APTITUDE-AI/internal/domain"
)

const (
	// MinSessions is the number of completed sessions needed before analysis.
	MinSessions = 10
	// AccuracyThreshold is the mean accuracy (percent) below which a topic is weak.
	AccuracyThreshold = 60.0
)

// Eligible reports whether a user has completed enough sessions.
func Eligible(sessionsCompleted int) bool {
	return sessionsCompleted >= MinSessions
}

// Ineligible builds the report for a user below MinSessions.
func Ineligible(sessionsCompleted int) domain.WeakAreaReport {
	remaining := MinSessions - sessionsCompleted
	noun := "sessions"
	if remaining == 1 {
		noun = "session"
	}
	return domain.WeakAreaReport{
		Eligible: false,
		Message:  fmt.Sprintf("Complete %d more %s to unlock weak area analysis.", remaining, noun),
	}
}

// Analyze groups records by topic name and returns topics with mean accuracy
// strictly below AccuracyThreshold, weakest first.
func Analyze(sessionsCompleted int, records []domain.CompletedSession) domain.WeakAreaReport {
	if !Eligible(sessionsCompleted) {
		return Ineligible(sessionsCompleted)
	}

	type bucket struct {
		sum   int
		count int
	}
	byTopic := make(map[string]*bucket)
	for _, rec := range records {
		b, ok := byTopic[rec.TopicName]
		if !ok {
			b = &bucket{}
			byTopic[rec.TopicName] = b
		}
		b.sum += rec.Accuracy
		b.count++
	}

	weak := make([]domain.WeakArea, 0)
	for name, b := range byTopic {
		mean := float64(b.sum) / float64(b.count)
		if mean < AccuracyThreshold {
			weak = append(weak, domain.WeakArea{Name: name, Accuracy: mean, Count: b.count})
		}
	}
	sort.Slice(weak, func(i, j int) bool {
		if weak[i].Accuracy != weak[j].Accuracy {
			return weak[i].Accuracy < weak[j].Accuracy
		}
		return weak[i].Name < weak[j].Name
	})

	return domain.WeakAreaReport{Eligible: true, WeakAreas: weak}
}
