package llm

import (
	"context"
	"log"
	"time"
)

type logged struct {
	next  Provider
	label string
}

// WithLogging logs every call with its purpose, latency and token usage.
func WithLogging(p Provider, label string) Provider {
	return &logged{next: p, label: label}
}

func (l *logged) Model() string { return l.next.Model() }

func (l *logged) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	start := time.Now()
	c, err := l.next.Complete(ctx, p)
	elapsed := time.Since(start).Round(time.Millisecond)
	if err != nil {
		log.Printf("[llm] %s model=%s purpose=%s failed after %s: %v", l.label, l.next.Model(), purposeFrom(ctx), elapsed, err)
		return nil, err
	}
	log.Printf("[llm] %s model=%s purpose=%s latency=%s tokens=%d/%d truncated=%v",
		l.label, c.Model, purposeFrom(ctx), elapsed, c.InputTokens, c.OutputTokens, c.Truncated)
	return c, nil
}
