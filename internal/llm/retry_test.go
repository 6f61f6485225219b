package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastBackoff() Backoff {
	return Backoff{MaxAttempts: 3, Initial: time.Millisecond, Max: 5 * time.Millisecond, Factor: 2}
}

func TestRetryRecoversFromUnavailable(t *testing.T) {
	mock := NewMockProvider(
		Scripted{Err: &UnavailableError{Err: errors.New("503")}},
		Scripted{Content: `{"ok":true}`},
	)
	c, err := WithRetry(mock, fastBackoff()).Complete(context.Background(), Prompt{User: "hi"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, c.Text())
	assert.Len(t, mock.Prompts(), 2)
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider(
		Scripted{Err: &RateLimitError{Err: errors.New("429")}},
		Scripted{Err: &RateLimitError{Err: errors.New("429")}},
		Scripted{Err: &RateLimitError{Err: errors.New("429")}},
		Scripted{Content: `{}`},
	)
	_, err := WithRetry(mock, fastBackoff()).Complete(context.Background(), Prompt{})
	var rl *RateLimitError
	require.ErrorAs(t, err, &rl)
	assert.Len(t, mock.Prompts(), 3)
}

func TestRetryInvalidOutputOnce(t *testing.T) {
	mock := NewMockProvider(
		Scripted{Err: &InvalidOutputError{Err: errors.New("bad")}},
		Scripted{Err: &InvalidOutputError{Err: errors.New("bad again")}},
		Scripted{Content: `{}`},
	)
	_, err := WithRetry(mock, fastBackoff()).Complete(context.Background(), Prompt{})
	var inv *InvalidOutputError
	require.ErrorAs(t, err, &inv)
	assert.Len(t, mock.Prompts(), 2)
}

func TestRetryDoesNotRetryRejectedRequests(t *testing.T) {
	mock := NewMockProvider(Scripted{Err: errors.New("400 bad request")}, Scripted{Content: `{}`})
	_, err := WithRetry(mock, fastBackoff()).Complete(context.Background(), Prompt{})
	require.Error(t, err)
	assert.Len(t, mock.Prompts(), 1)
}

func TestRetryStopsOnCanceledContext(t *testing.T) {
	mock := NewMockProvider(
		Scripted{Err: &UnavailableError{}},
		Scripted{Content: `{}`},
	)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b := fastBackoff()
	b.Initial = time.Second
	_, err := WithRetry(mock, b).Complete(ctx, Prompt{})
	assert.ErrorIs(t, err, context.Canceled)
}
