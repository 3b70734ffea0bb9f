package resilience

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy(attempts int) Policy {
	return Policy{Attempts: attempts, Initial: time.Millisecond, Max: 2 * time.Millisecond}
}

func TestDo_SucceedsFirstTry(t *testing.T) {
	calls := 0
	val, err := Do(context.Background(), fastPolicy(3), "test", func(context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", val)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesTransient(t *testing.T) {
	calls := 0
	val, err := Do(context.Background(), fastPolicy(3), "test", func(context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, &StatusError{Service: "mistral", Code: http.StatusServiceUnavailable}
		}
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, val)
	assert.Equal(t, 3, calls)
}

func TestDo_StopsOnPermanentError(t *testing.T) {
	calls := 0
	_, err := Do(context.Background(), fastPolicy(5), "test", func(context.Context) (int, error) {
		calls++
		return 0, &StatusError{Service: "mistral", Code: http.StatusUnauthorized, Body: "bad key"}
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Contains(t, err.Error(), "mistral API returned 401: bad key")
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	calls := 0
	_, err := Do(context.Background(), fastPolicy(2), "test", func(context.Context) (int, error) {
		calls++
		return 0, syscall.ECONNRESET
	})
	require.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestDo_StopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	_, err := Do(ctx, Policy{Attempts: 5, Initial: time.Hour, Max: time.Hour}, "test", func(context.Context) (int, error) {
		calls++
		cancel()
		return 0, &StatusError{Code: http.StatusTooManyRequests}
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"429", &StatusError{Code: 429}, true},
		{"503 wrapped", fmt.Errorf("ocr: call: %w", &StatusError{Code: 503}), true},
		{"400", &StatusError{Code: 400}, false},
		{"conn reset", syscall.ECONNRESET, true},
		{"plain", errors.New("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}

func TestPolicy_BackoffCapped(t *testing.T) {
	p := Policy{Attempts: 10, Initial: 100 * time.Millisecond, Max: 300 * time.Millisecond}
	assert.Equal(t, 100*time.Millisecond, p.backoff(1))
	assert.Equal(t, 200*time.Millisecond, p.backoff(2))
	assert.Equal(t, 300*time.Millisecond, p.backoff(3))
	assert.Equal(t, 300*time.Millisecond, p.backoff(8))
}

func TestPolicy_NormalizedDefaults(t *testing.T) {
	p := Policy{}.normalized()
	assert.Equal(t, 1, p.Attempts)
	assert.Zero(t, p.Max)
}
