package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGroqTestProvider(t *testing.T, handler http.HandlerFunc) *GroqProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	provider, err := NewGroqProvider("test-key")
	require.NoError(t, err)
	provider.baseURL = server.URL
	return provider
}

func TestGroqProviderGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("sends an OpenAI-compatible chat request", func(t *testing.T) {
		var captured groqChatRequest
		provider := newGroqTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"fixed\":true}"}}]}`))
		})

		text, err := provider.Generate(ctx, "llama-3.3-70b-versatile", Request{
			System:      "You repair code.",
			User:        "fix main.py",
			JSONMode:    true,
			Temperature: 0.2,
			MaxTokens:   8192,
		})
		require.NoError(t, err)
		assert.Equal(t, `{"fixed":true}`, text)

		assert.Equal(t, "llama-3.3-70b-versatile", captured.Model)
		require.Len(t, captured.Messages, 2)
		assert.Equal(t, "system", captured.Messages[0].Role)
		assert.Equal(t, "You repair code.", captured.Messages[0].Content)
		assert.Equal(t, "user", captured.Messages[1].Role)
		require.NotNil(t, captured.ResponseFormat)
		assert.Equal(t, "json_object", captured.ResponseFormat.Type)
		assert.Equal(t, 8192, captured.MaxTokens)
		assert.InDelta(t, 0.2, captured.Temperature, 0.001)
	})

	t.Run("omits the system message when empty", func(t *testing.T) {
		var captured groqChatRequest
		provider := newGroqTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"hi"}}]}`))
		})

		_, err := provider.Generate(ctx, "llama-3.3-70b-versatile", Request{User: "hello"})
		require.NoError(t, err)
		require.Len(t, captured.Messages, 1)
		assert.Equal(t, "user", captured.Messages[0].Role)
		assert.Nil(t, captured.ResponseFormat)
	})

	t.Run("429 is quota exhaustion", func(t *testing.T) {
		provider := newGroqTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"message":"rate limit reached"}}`, http.StatusTooManyRequests)
		})

		_, err := provider.Generate(ctx, "llama-3.3-70b-versatile", Request{User: "hello"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrQuotaExhausted))
	})

	t.Run("5xx is transient", func(t *testing.T) {
		provider := newGroqTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream broke", http.StatusBadGateway)
		})

		_, err := provider.Generate(ctx, "llama-3.3-70b-versatile", Request{User: "hello"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNetworkTransient))
	})

	t.Run("4xx is terminal", func(t *testing.T) {
		provider := newGroqTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"message":"unknown model"}}`, http.StatusBadRequest)
		})

		_, err := provider.Generate(ctx, "no-such-model", Request{User: "hello"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTerminal))
		assert.Contains(t, err.Error(), "unknown model")
	})

	t.Run("missing choices is schema invalid", func(t *testing.T) {
		provider := newGroqTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		})

		_, err := provider.Generate(ctx, "llama-3.3-70b-versatile", Request{User: "hello"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrSchemaInvalid))
	})

	t.Run("api error body is terminal", func(t *testing.T) {
		provider := newGroqTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":{"message":"organization disabled","type":"invalid_request_error"}}`))
		})

		_, err := provider.Generate(ctx, "llama-3.3-70b-versatile", Request{User: "hello"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTerminal))
		assert.Contains(t, err.Error(), "organization disabled")
	})
}

func TestKindForStatus(t *testing.T) {
	assert.Equal(t, KindQuotaExhausted, kindForStatus(http.StatusTooManyRequests))
	assert.Equal(t, KindNetworkTransient, kindForStatus(http.StatusInternalServerError))
	assert.Equal(t, KindNetworkTransient, kindForStatus(http.StatusServiceUnavailable))
	assert.Equal(t, KindTerminal, kindForStatus(http.StatusBadRequest))
	assert.Equal(t, KindTerminal, kindForStatus(http.StatusUnauthorized))
}

func TestTruncateBody(t *testing.T) {
	assert.Equal(t, "short", truncateBody([]byte("short")))

	long := strings.Repeat("x", 600)
	got := truncateBody([]byte(long))
	assert.Len(t, got, 512+len("..."))
	assert.True(t, strings.HasSuffix(got, "..."))
}
