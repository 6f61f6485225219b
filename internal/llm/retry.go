package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// Backoff configures retries of transient provider failures.
type Backoff struct {
	MaxAttempts int
	Initial     time.Duration
	Max         time.Duration
	Factor      float64
}

func DefaultBackoff() Backoff {
	return Backoff{MaxAttempts: 3, Initial: time.Second, Max: 8 * time.Second, Factor: 2}
}

type retrying struct {
	next    Provider
	backoff Backoff
}

// WithRetry retries rate limits and unavailability with jittered exponential
// backoff. Invalid output is retried once; other errors are returned as is.
func WithRetry(p Provider, b Backoff) Provider {
	if b.MaxAttempts < 1 {
		b.MaxAttempts = 1
	}
	return &retrying{next: p, backoff: b}
}

func (r *retrying) Model() string { return r.next.Model() }

func (r *retrying) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	var (
		lastErr      error
		invalidSeen  bool
		attemptsLeft = r.backoff.MaxAttempts
	)
	for attempt := 0; attemptsLeft > 0; attempt++ {
		attemptsLeft--
		c, err := r.next.Complete(ctx, p)
		if err == nil {
			return c, nil
		}
		lastErr = err

		var invalid *InvalidOutputError
		switch {
		case errors.As(err, &invalid):
			if invalidSeen {
				return nil, err
			}
			invalidSeen = true
		case !retryable(err):
			return nil, err
		}
		if attemptsLeft == 0 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}
	return nil, lastErr
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var rl *RateLimitError
	var un *UnavailableError
	return errors.As(err, &rl) || errors.As(err, &un)
}

func (r *retrying) wait(attempt int, err error) time.Duration {
	var rl *RateLimitError
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}
	d := float64(r.backoff.Initial)
	for i := 0; i < attempt; i++ {
		d *= r.backoff.Factor
	}
	if ceiling := float64(r.backoff.Max); ceiling > 0 && d > ceiling {
		d = ceiling
	}
	// +/-20% jitter
	d += d * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(d)
}
