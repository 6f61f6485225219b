// Package scoring computes session results and XP badges. Everything here is
// pure: the same snapshot always produces the same score.
package scoring

import (
	"math"

	"github.com/Mrvatsan/APTITUDE-AI/internal/domain"
)

const (
	// BaseXP is awarded per correct answer before weighting.
	BaseXP = 10
	// CategoryWeight scales XP and progress. Per-topic weights from the
	// catalog are not applied yet.
	CategoryWeight = 1.0
)

// Score computes correctness, accuracy, XP and the per-question breakdown.
// Unanswered questions count as incorrect.
func Score(session domain.SessionSnapshot) domain.Score {
	total := len(session.Questions)
	correct := 0
	details := make([]domain.QuestionDetail, 0, total)

	for idx, q := range session.Questions {
		detail := domain.QuestionDetail{
			Question:           q.Text,
			Options:            append([]string(nil), q.Options...),
			CorrectOptionIndex: q.CorrectOptionIndex,
			Solution:           q.Solution,
		}
		if ans, ok := session.Answers[idx]; ok {
			selected := ans.SelectedOption
			detail.UserAnswer = &selected
			detail.IsCorrect = selected == q.CorrectOptionIndex
		}
		if detail.IsCorrect {
			correct++
		}
		details = append(details, detail)
	}

	accuracy := Accuracy(correct, total)
	return domain.Score{
		Correct:         correct,
		Total:           total,
		Accuracy:        accuracy,
		XPEarned:        XP(correct),
		ProgressPercent: math.Min(float64(accuracy)*CategoryWeight, 100),
		Details:         details,
	}
}

// Accuracy returns correct/total as a rounded integer percentage.
func Accuracy(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// XP returns the experience points for a number of correct answers.
func XP(correct int) int {
	return int(math.Round(float64(correct) * BaseXP * CategoryWeight))
}
