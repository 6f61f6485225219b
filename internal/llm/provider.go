// Package llm talks to hosted language models. Callers describe a single-turn
// prompt and, optionally, the JSON shape they expect back.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates a completion for a prompt.
type Provider interface {
	// Complete returns the model output. When p.Schema is set the output is
	// JSON that has already been validated against it.
	Complete(ctx context.Context, p Prompt) (*Completion, error)
	Model() string
}

type Prompt struct {
	System string
	User   string
	// Schema requests structured output; nil means free text.
	Schema      *Schema
	MaxTokens   int
	Temperature float64
}

// Schema is a named JSON Schema document.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

type Completion struct {
	// Content is JSON when the prompt carried a schema, raw text otherwise.
	Content      json.RawMessage
	Model        string
	InputTokens  int
	OutputTokens int
	// Truncated is set when generation stopped at MaxTokens.
	Truncated bool
}

// Text returns the content as a plain string.
func (c *Completion) Text() string {
	return string(c.Content)
}
