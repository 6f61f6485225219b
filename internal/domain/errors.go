package domain

import "errors"

var (
	// ErrSessionNotFound is returned for an unknown (or foreign) session id.
	ErrSessionNotFound = errors.New("session not found")
	// ErrInvalidIndex is returned when a question index is out of bounds.
	ErrInvalidIndex = errors.New("invalid question index")
	// ErrSessionFinished is returned when answering a session whose result was already read.
	ErrSessionFinished = errors.New("session already finished")
	// ErrInvalidQuestionCount indicates a malformed numQuestions value.
	ErrInvalidQuestionCount = errors.New("invalid question count")
	// ErrGenerationFailed indicates the question or feedback source failed.
	ErrGenerationFailed = errors.New("question generation failed")
	// ErrPersistence wraps durable store read/write failures.
	ErrPersistence = errors.New("persistence failure")
	// ErrProfileNotFound is returned by stores when a user has no profile yet.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrCompletedSessionNotFound is returned by stores for an unknown completed session id.
	ErrCompletedSessionNotFound = errors.New("completed session not found")
	// ErrTopicNotFound indicates a question bank has no pool for a topic.
	ErrTopicNotFound = errors.New("topic not found")
)
