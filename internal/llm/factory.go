package llm

import (
	"context"
	"fmt"
	"time"
)

// Settings selects and configures a provider.
type Settings struct {
	// Provider is one of "gemini", "openai", "anthropic", "mock" or "" (disabled).
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	MaxAttempts int
	Timeout     time.Duration
}

// Enabled reports whether an LLM provider is configured.
func (s Settings) Enabled() bool {
	return s.Provider != ""
}

// New builds the configured provider wrapped as caller -> retry -> timeout -> logging -> provider.
func New(ctx context.Context, s Settings) (Provider, error) {
	var (
		base Provider
		err  error
	)
	switch s.Provider {
	case "gemini":
		base, err = NewGemini(ctx, s.APIKey, s.Model)
	case "openai":
		base, err = NewOpenAI(s.APIKey, s.Model, s.BaseURL)
	case "anthropic":
		base, err = NewAnthropic(s.APIKey, s.Model, s.BaseURL)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown llm provider %q", s.Provider)
	}
	if err != nil {
		return nil, err
	}

	b := DefaultBackoff()
	if s.MaxAttempts > 0 {
		b.MaxAttempts = s.MaxAttempts
	}
	var p Provider = WithLogging(base, s.Provider)
	if s.Timeout > 0 {
		p = &timeboxed{next: p, timeout: s.Timeout}
	}
	return WithRetry(p, b), nil
}

// timeboxed bounds each attempt; retries get a fresh budget.
type timeboxed struct {
	next    Provider
	timeout time.Duration
}

func (t *timeboxed) Model() string { return t.next.Model() }

func (t *timeboxed) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	c, err := t.next.Complete(ctx, p)
	if err != nil && ctx.Err() == context.DeadlineExceeded {
		return nil, &UnavailableError{Err: err}
	}
	return c, err
}
