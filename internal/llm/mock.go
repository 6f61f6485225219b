package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// Scripted is one canned reply of a MockProvider.
type Scripted struct {
	Content string
	Err     error
}

// MockProvider replays canned replies in order and records the prompts it got.
// It is used by tests and by the "mock" provider setting for offline runs.
type MockProvider struct {
	mu      sync.Mutex
	replies []Scripted
	// Repeat keeps serving the last reply once the script runs out.
	Repeat  bool
	prompts []Prompt
}

func NewMockProvider(replies ...Scripted) *MockProvider {
	return &MockProvider{replies: replies}
}

func (m *MockProvider) Model() string { return "mock" }

func (m *MockProvider) Complete(_ context.Context, p Prompt) (*Completion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, p)

	if len(m.replies) == 0 {
		return nil, &UnavailableError{}
	}
	r := m.replies[0]
	if len(m.replies) > 1 || !m.Repeat {
		m.replies = m.replies[1:]
	}
	if r.Err != nil {
		return nil, r.Err
	}
	out := json.RawMessage(r.Content)
	if err := checkOutput(p.Schema, out); err != nil {
		return nil, err
	}
	return &Completion{Content: out, Model: "mock"}, nil
}

// Prompts returns the prompts received so far.
func (m *MockProvider) Prompts() []Prompt {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Prompt(nil), m.prompts...)
}
