package app

// AutoQuestionCount picks a session size from the number of sessions the user
// has already completed.
func AutoQuestionCount(priorSessions int) int {
	switch {
	case priorSessions < 10:
		return 5
	case priorSessions < 25:
		return 10
	default:
		return 15
	}
}

var durationBudgets = map[int]int{
	5:  8 * 60,
	10: 15 * 60,
	15: 23 * 60,
	20: 30 * 60,
}

// DurationFor returns the expected time budget in seconds for count questions.
// Sizes without a fixed budget get 90 seconds per question.
func DurationFor(count int) int {
	if d, ok := durationBudgets[count]; ok {
		return d
	}
	return count * 90
}
