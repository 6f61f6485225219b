package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Question is a multiple-choice question as produced by a question source.
type Question struct {
	Text               string   `json:"question"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
	Solution           string   `json:"solution"`
	Difficulty         string   `json:"difficulty,omitempty"`
	Category           string   `json:"category,omitempty"`
	Milestone          string   `json:"milestone,omitempty"`
}

// Answer is a recorded selection for one question index.
type Answer struct {
	SelectedOption int       `json:"selectedOption"`
	Timestamp      time.Time `json:"timestamp"`
}

// GenerateRequest asks a question source for a set of questions.
type GenerateRequest struct {
	Topic      string
	Milestone  string
	Count      int
	Difficulty string
}

// MaxQuestionCount is the largest session size a caller may request.
const MaxQuestionCount = 20

// QuestionCount is the requested number of questions. Zero means "auto".
type QuestionCount int

// UnmarshalJSON accepts a number up to MaxQuestionCount, a numeric string,
// "auto", or null.
func (c *QuestionCount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == `""` {
		*c = 0
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
		if raw == "" || strings.EqualFold(raw, "auto") {
			*c = 0
			return nil
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > MaxQuestionCount {
		return fmt.Errorf("%w: %s", ErrInvalidQuestionCount, raw)
	}
	*c = QuestionCount(n)
	return nil
}

// MarshalJSON renders zero as "auto".
func (c QuestionCount) MarshalJSON() ([]byte, error) {
	if c == 0 {
		return json.Marshal("auto")
	}
	return json.Marshal(int(c))
}

// IsAuto reports whether the count should be chosen from the user's history.
func (c QuestionCount) IsAuto() bool {
	return c <= 0
}

// StartRequest carries the "start session" inputs.
type StartRequest struct {
	TopicID       int           `json:"topicId"`
	TopicName     string        `json:"topicName"`
	MilestoneName string        `json:"milestoneName"`
	NumQuestions  QuestionCount `json:"numQuestions"`
	Difficulty    string        `json:"difficulty"`
}

// QuestionView is a question as shown to the learner, without the answer key.
type QuestionView struct {
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	CurrentIndex   int      `json:"currentIndex"`
	TotalQuestions int      `json:"totalQuestions"`
	IsLast         bool     `json:"isLast"`
}

// StartResponse is returned when a session is created.
type StartResponse struct {
	SessionID       string       `json:"sessionId"`
	TotalQuestions  int          `json:"totalQuestions"`
	CurrentQuestion QuestionView `json:"currentQuestion"`
	CurrentIndex    int          `json:"currentIndex"`
	DurationSeconds int          `json:"durationSeconds"`
}

// AnswerOutcome is the immediate feedback for a submitted answer.
type AnswerOutcome struct {
	IsCorrect          bool   `json:"isCorrect"`
	CorrectOptionIndex int    `json:"correctOptionIndex"`
	Solution           string `json:"solution"`
	NextIndex          int    `json:"nextIndex"`
	IsComplete         bool   `json:"isComplete"`
}

// SessionSnapshot is a point-in-time copy of an in-progress session.
type SessionSnapshot struct {
	ID              string
	UserID          string
	TopicID         int
	TopicName       string
	MilestoneName   string
	Difficulty      string
	Questions       []Question
	Answers         map[int]Answer
	CurrentIndex    int
	StartTime       time.Time
	DurationSeconds int
	CompletedAt     *time.Time
}

// QuestionDetail is the per-question breakdown shown on the result view.
type QuestionDetail struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
	UserAnswer         *int     `json:"userAnswer"`
	IsCorrect          bool     `json:"isCorrect"`
	Solution           string   `json:"solution"`
}

// Score is the output of the scoring engine.
type Score struct {
	Correct         int              `json:"correct"`
	Total           int              `json:"total"`
	Accuracy        int              `json:"accuracy"`
	XPEarned        int              `json:"xpEarned"`
	ProgressPercent float64          `json:"progressPercent"`
	Details         []QuestionDetail `json:"details"`
}

// SessionResult is the composed "get result" payload.
type SessionResult struct {
	SessionID       string           `json:"sessionId"`
	Total           int              `json:"total"`
	Correct         int              `json:"correct"`
	Accuracy        int              `json:"accuracy"`
	XPEarned        int              `json:"xpEarned"`
	ProgressPercent float64          `json:"progressPercent"`
	Details         []QuestionDetail `json:"details"`
	Feedback        *string          `json:"feedback"`
	DurationSeconds int              `json:"duration"`
}

// UserProfile holds the durable per-user accumulators.
type UserProfile struct {
	UserID            string     `json:"userId"`
	TotalXP           int        `json:"totalXP"`
	SessionsCompleted int        `json:"sessionsCompleted"`
	TotalAccuracySum  int        `json:"totalAccuracySum"`
	StreakCount       int        `json:"streakCount"`
	LastActiveDate    *time.Time `json:"lastActiveDate"`
}

// CompletedSession is the durable record of a finished session. ID is the
// in-memory session id and doubles as the idempotency key.
type CompletedSession struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	TopicID         int       `json:"topicId"`
	TopicName       string    `json:"topicName"`
	MilestoneName   string    `json:"milestoneName"`
	Difficulty      string    `json:"difficulty"`
	TotalQuestions  int       `json:"totalQuestions"`
	CorrectAnswers  int       `json:"correctAnswers"`
	Accuracy        int       `json:"accuracy"`
	XPEarned        int       `json:"xpEarned"`
	DurationSeconds int       `json:"durationSeconds"`
	CompletedAt     time.Time `json:"completedAt"`
}

// WeakArea is one topic whose mean accuracy is below the threshold.
type WeakArea struct {
	Name     string  `json:"name"`
	Accuracy float64 `json:"accuracy"`
	Count    int     `json:"count"`
}

// WeakAreaReport is the weak-area analysis result.
type WeakAreaReport struct {
	Eligible  bool       `json:"eligible"`
	Message   string     `json:"message,omitempty"`
	WeakAreas []WeakArea `json:"weakAreas"`
}

// ProfileSummary is the profile view with badge progress.
type ProfileSummary struct {
	UserProfile
	AverageAccuracy float64 `json:"averageAccuracy"`
	CurrentBadge    string  `json:"currentBadge"`
	NextBadge       string  `json:"nextBadge"`
	XPToNext        int     `json:"xpToNext"`
}
