package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/Mrvatsan/APTITUDE-AI/internal/app"
	"github.com/Mrvatsan/APTITUDE-AI/internal/llm"
)

const feedbackSystemPrompt = `You are a supportive aptitude coach. In at most four sentences, tell the learner
what went well, which concepts to revisit and one concrete next step. Plain text only.`

// LLMFeedback writes a short coaching note for a finished session.
type LLMFeedback struct {
	provider llm.Provider
}

func NewLLMFeedback(p llm.Provider) *LLMFeedback {
	return &LLMFeedback{provider: p}
}

func (f *LLMFeedback) Feedback(ctx context.Context, in app.FeedbackInput) (string, error) {
	ctx = llm.WithPurpose(ctx, "feedback")
	c, err := f.provider.Complete(ctx, llm.Prompt{
		System:      feedbackSystemPrompt,
		User:        feedbackPrompt(in),
		MaxTokens:   300,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(c.Text()), nil
}

func feedbackPrompt(in app.FeedbackInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Score: %d%% over %d questions.\n", in.Accuracy, in.Total)
	for i, q := range in.Questions {
		status := "skipped"
		if ans, ok := in.Answers[i]; ok {
			status = "wrong"
			if ans.SelectedOption == q.CorrectOptionIndex {
				status = "correct"
			}
		}
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, status, q.Text)
	}
	return b.String()
}
