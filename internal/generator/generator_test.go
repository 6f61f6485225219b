package generator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Mrvatsan/APTITUDE-AI/internal/app"
	"github.com/Mrvatsan/APTITUDE-AI/internal/domain"
	"github.com/Mrvatsan/APTITUDE-AI/internal/infra/memory"
	"github.com/Mrvatsan/APTITUDE-AI/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeQuestions = `{"questions":[
 {"question":"10% of 200?","options":["10","20","30","40"],"correctOptionIndex":1,"solution":"200*0.1","difficulty":"easy"},
 {"question":"Broken","options":["only one"],"correctOptionIndex":0,"solution":"","difficulty":"easy"},
 {"question":"25% of 80?","options":["15","20","25","30"],"correctOptionIndex":1,"solution":"80/4","difficulty":"medium"},
 {"question":"Out of range","options":["a","b"],"correctOptionIndex":5,"solution":"","difficulty":"hard"},
 {"question":"50% of 50?","options":["25","50"],"correctOptionIndex":0,"solution":"half","difficulty":""}
]}`

func TestLLMQuestionsFiltersAndTruncates(t *testing.T) {
	mock := llm.NewMockProvider(llm.Scripted{Content: threeQuestions})
	src := NewLLMQuestions(mock)

	qs, err := src.Generate(context.Background(), domain.GenerateRequest{Topic: "Percentage", Milestone: "Milestone 1", Count: 2, Difficulty: "easy"})
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "10% of 200?", qs[0].Text)
	assert.Equal(t, "25% of 80?", qs[1].Text)
	assert.Equal(t, "Percentage", qs[1].Category)
	assert.Equal(t, "Milestone 1", qs[1].Milestone)

	prompts := mock.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0].User, `Generate 2 aptitude MCQs on "Percentage"`)
	assert.NotNil(t, prompts[0].Schema)
}

func TestLLMQuestionsDefaultsDifficulty(t *testing.T) {
	mock := llm.NewMockProvider(llm.Scripted{Content: threeQuestions})
	qs, err := NewLLMQuestions(mock).Generate(context.Background(), domain.GenerateRequest{Topic: "Percentage", Count: 10})
	require.NoError(t, err)
	require.Len(t, qs, 3)
	assert.Equal(t, "mixed", qs[2].Difficulty)
}

func TestLLMQuestionsRejectsEmptySet(t *testing.T) {
	mock := llm.NewMockProvider(llm.Scripted{Content: `{"questions":[]}`})
	_, err := NewLLMQuestions(mock).Generate(context.Background(), domain.GenerateRequest{Topic: "Average", Count: 5})
	var inv *llm.InvalidOutputError
	assert.ErrorAs(t, err, &inv)
}

func TestLLMQuestionsRejectsSchemaViolation(t *testing.T) {
	mock := llm.NewMockProvider(llm.Scripted{Content: `{"items":[]}`})
	_, err := NewLLMQuestions(mock).Generate(context.Background(), domain.GenerateRequest{Topic: "Average", Count: 5})
	var inv *llm.InvalidOutputError
	assert.ErrorAs(t, err, &inv)
}

func TestWithFallback(t *testing.T) {
	bank := memory.NewQuestionBank(memory.NewStaticQuestionLoader(memory.DefaultQuestionBank()), time.Minute)
	failing := NewLLMQuestions(llm.NewMockProvider(llm.Scripted{Err: &llm.UnavailableError{Err: errors.New("down")}}))

	qs, err := WithFallback(failing, bank).Generate(context.Background(), domain.GenerateRequest{Topic: "Average", Count: 5})
	require.NoError(t, err)
	assert.Len(t, qs, 5)
	for _, q := range qs {
		assert.Equal(t, "Average", q.Category)
	}

	working := NewLLMQuestions(llm.NewMockProvider(llm.Scripted{Content: threeQuestions}))
	qs, err = WithFallback(working, bank).Generate(context.Background(), domain.GenerateRequest{Topic: "Percentage", Count: 3})
	require.NoError(t, err)
	assert.Equal(t, "10% of 200?", qs[0].Text)
}

func TestWithFallbackBothFail(t *testing.T) {
	empty := memory.NewQuestionBank(memory.NewStaticQuestionLoader(map[string][]domain.Question{}), time.Minute)
	failing := NewLLMQuestions(llm.NewMockProvider())

	_, err := WithFallback(failing, empty).Generate(context.Background(), domain.GenerateRequest{Topic: "Average", Count: 5})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTopicNotFound)
}

func TestLLMFeedback(t *testing.T) {
	mock := llm.NewMockProvider(llm.Scripted{Content: "  Good work on percentages. Revisit ratios.  "})
	fb := NewLLMFeedback(mock)

	text, err := fb.Feedback(context.Background(), app.FeedbackInput{
		Questions: []domain.Question{
			{Text: "Q1", CorrectOptionIndex: 1},
			{Text: "Q2", CorrectOptionIndex: 0},
			{Text: "Q3", CorrectOptionIndex: 2},
		},
		Answers:  map[int]domain.Answer{0: {SelectedOption: 1}, 1: {SelectedOption: 3}},
		Accuracy: 33,
		Total:    3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Good work on percentages. Revisit ratios.", text)

	user := mock.Prompts()[0].User
	assert.Contains(t, user, "Score: 33% over 3 questions.")
	assert.Contains(t, user, "1. [correct] Q1")
	assert.Contains(t, user, "2. [wrong] Q2")
	assert.Contains(t, user, "3. [skipped] Q3")
}
