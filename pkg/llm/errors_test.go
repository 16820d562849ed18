package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"google 429", errors.New("googleapi: Error 429: quota exceeded"), KindQuotaExhausted},
		{"grpc resource exhausted", errors.New("rpc error: code = RESOURCE_EXHAUSTED desc = quota"), KindQuotaExhausted},
		{"quota wins over transient markers", errors.New("429 RESOURCE_EXHAUSTED, retry after INTERNAL delay"), KindQuotaExhausted},
		{"server error", errors.New("503 Service Unavailable"), KindNetworkTransient},
		{"bad gateway", errors.New("502 Bad Gateway"), KindNetworkTransient},
		{"grpc unavailable", errors.New("rpc error: code = UNAVAILABLE desc = connection closed"), KindNetworkTransient},
		{"deadline exceeded sentinel", context.DeadlineExceeded, KindNetworkTransient},
		{"wrapped deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), KindNetworkTransient},
		{"connection refused", errors.New("dial tcp: connection refused"), KindNetworkTransient},
		{"unexpected EOF", errors.New("unexpected EOF"), KindNetworkTransient},
		{"bad request", errors.New("400 invalid argument"), KindTerminal},
		{"unauthorized", errors.New("401 unauthorized"), KindTerminal},
		{"opaque failure", errors.New("something odd happened"), KindTerminal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify("gemini-2.0-flash", tt.err)
			assert.Equal(t, tt.want, got.Kind)
			assert.Equal(t, "gemini-2.0-flash", got.Model)
			assert.True(t, errors.Is(got, tt.err))
		})
	}
}

func TestCallError(t *testing.T) {
	base := errors.New("quota exceeded")
	err := NewCallError(KindQuotaExhausted, "gemini-2.0-flash", base)

	t.Run("message carries model and kind", func(t *testing.T) {
		assert.Equal(t, "[gemini-2.0-flash] quota_exhausted: quota exceeded", err.Error())
	})

	t.Run("matches the kind sentinel", func(t *testing.T) {
		assert.True(t, errors.Is(err, ErrQuotaExhausted))
		assert.False(t, errors.Is(err, ErrNetworkTransient))
		assert.False(t, errors.Is(err, ErrTerminal))
	})

	t.Run("unwraps to the cause", func(t *testing.T) {
		assert.True(t, errors.Is(err, base))
	})

	t.Run("kind survives wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("pipeline stage: %w", err)
		assert.Equal(t, KindQuotaExhausted, KindOf(wrapped))
		assert.True(t, errors.Is(wrapped, ErrQuotaExhausted))
	})
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNetworkTransient, KindOf(NewCallError(KindNetworkTransient, "m", errors.New("503"))))
	assert.Equal(t, KindSchemaInvalid, KindOf(NewCallError(KindSchemaInvalid, "m", errors.New("bad json"))))

	// Errors that never passed through a provider default to terminal.
	assert.Equal(t, KindTerminal, KindOf(errors.New("plain")))
}
