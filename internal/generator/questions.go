// Package generator produces practice content with a language model.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Mrvatsan/APTITUDE-AI/internal/domain"
	"github.com/Mrvatsan/APTITUDE-AI/internal/llm"
)

var questionSetSchema = &llm.Schema{
	Name:        "aptitude-question-set",
	Description: "A set of multiple-choice aptitude questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question":           map[string]any{"type": "string"},
						"options":            map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"correctOptionIndex": map[string]any{"type": "integer"},
						"solution":           map[string]any{"type": "string"},
						"difficulty":         map[string]any{"type": "string"},
					},
					"required":             []any{"question", "options", "correctOptionIndex", "solution", "difficulty"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

const questionSystemPrompt = `You are an expert aptitude trainer writing multiple-choice practice questions.
Rules:
1. Every question has exactly 4 options and one correct option; correctOptionIndex is 0-3.
2. Include a short worked solution for each question.
3. Vary the scenarios and use metric units.
4. Every question must be about the requested topic only.`

// LLMQuestions generates questions with a language model.
type LLMQuestions struct {
	provider  llm.Provider
	maxTokens int
}

func NewLLMQuestions(p llm.Provider) *LLMQuestions {
	return &LLMQuestions{provider: p, maxTokens: 6000}
}

type questionSet struct {
	Questions []struct {
		Question           string   `json:"question"`
		Options            []string `json:"options"`
		CorrectOptionIndex int      `json:"correctOptionIndex"`
		Solution           string   `json:"solution"`
		Difficulty         string   `json:"difficulty"`
	} `json:"questions"`
}

// Generate asks for req.Count questions. Malformed questions are dropped and
// extras are truncated; an empty result is an error.
func (g *LLMQuestions) Generate(ctx context.Context, req domain.GenerateRequest) ([]domain.Question, error) {
	ctx = llm.WithPurpose(ctx, "questions")
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "mixed"
	}
	user := fmt.Sprintf("Generate %d aptitude MCQs on %q for %s, difficulty: %s.", req.Count, req.Topic, req.Milestone, difficulty)

	c, err := g.provider.Complete(ctx, llm.Prompt{
		System:      questionSystemPrompt,
		User:        user,
		Schema:      questionSetSchema,
		MaxTokens:   g.maxTokens,
		Temperature: 0.9,
	})
	if err != nil {
		return nil, err
	}

	var set questionSet
	if err := json.Unmarshal(c.Content, &set); err != nil {
		return nil, &llm.InvalidOutputError{Content: c.Content, Err: err}
	}

	out := make([]domain.Question, 0, len(set.Questions))
	for _, q := range set.Questions {
		if strings.TrimSpace(q.Question) == "" || len(q.Options) < 2 {
			continue
		}
		if q.CorrectOptionIndex < 0 || q.CorrectOptionIndex >= len(q.Options) {
			continue
		}
		d := q.Difficulty
		if d == "" {
			d = difficulty
		}
		out = append(out, domain.Question{
			Text:               q.Question,
			Options:            q.Options,
			CorrectOptionIndex: q.CorrectOptionIndex,
			Solution:           q.Solution,
			Difficulty:         d,
			Category:           req.Topic,
			Milestone:          req.Milestone,
		})
		if req.Count > 0 && len(out) == req.Count {
			break
		}
	}
	if len(out) == 0 {
		return nil, &llm.InvalidOutputError{Content: c.Content, Err: fmt.Errorf("no usable questions for %q", req.Topic)}
	}
	return out, nil
}
