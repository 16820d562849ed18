package llm

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/pkg/config"
)

type stubCall struct {
	model string
	req   Request
}

type stubResult struct {
	text string
	err  error
}

// stubProvider replays scripted results per model and records every call.
type stubProvider struct {
	mu      sync.Mutex
	results map[string][]stubResult
	calls   []stubCall
}

func newStubProvider() *stubProvider {
	return &stubProvider{results: make(map[string][]stubResult)}
}

func (s *stubProvider) script(model string, results ...stubResult) {
	s.results[model] = append(s.results[model], results...)
}

func (s *stubProvider) Generate(_ context.Context, model string, req Request) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, stubCall{model: model, req: req})
	queue := s.results[model]
	if len(queue) == 0 {
		return "", NewCallError(KindTerminal, model, errors.New("no scripted result"))
	}
	next := queue[0]
	s.results[model] = queue[1:]
	return next.text, next.err
}

func (s *stubProvider) models() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.calls))
	for i, c := range s.calls {
		out[i] = c.model
	}
	return out
}

func testRegistry() *config.ModelRegistry {
	return config.NewModelRegistry(map[string]*config.ModelConfig{
		"gemini-2.0-flash": {
			Provider:        config.ProviderGoogle,
			Tier:            config.TierPrimary,
			Fallback:        "gemini-2.5-flash",
			MaxOutputTokens: 16384,
		},
		"gemini-2.5-flash": {
			Provider:        config.ProviderGoogle,
			Tier:            config.TierPrimary,
			Fallback:        "gemini-2.5-pro",
			MaxOutputTokens: 16384,
		},
		"gemini-2.5-pro": {
			Provider:        config.ProviderGoogle,
			Tier:            config.TierPrimary,
			MaxOutputTokens: 16384,
		},
		"llama-3.3-70b-versatile": {
			Provider:        config.ProviderGroq,
			Tier:            config.TierFallback,
			MaxOutputTokens: 8192,
		},
	}, "gemini-2.0-flash")
}

// newTestRouter routes every catalog provider to the same stub and
// captures backoff sleeps instead of performing them.
func newTestRouter(stub *stubProvider) (*Router, *[]time.Duration) {
	router := NewRouter(testRegistry(), map[string]Provider{
		config.ProviderGoogle: stub,
		config.ProviderGroq:   stub,
	})
	var slept []time.Duration
	router.sleep = func(d time.Duration) { slept = append(slept, d) }
	return router, &slept
}

func transientErr(model string) error {
	return NewCallError(KindNetworkTransient, model, errors.New("503 service unavailable"))
}

func quotaErr(model string) error {
	return NewCallError(KindQuotaExhausted, model, errors.New("429 RESOURCE_EXHAUSTED"))
}

func TestRouterGenerateWithModel(t *testing.T) {
	ctx := context.Background()
	req := Request{System: "be terse", User: "hello", Temperature: 0.1}

	t.Run("first attempt succeeds", func(t *testing.T) {
		stub := newStubProvider()
		stub.script("gemini-2.0-flash", stubResult{text: `{"ok":true}`})
		router, slept := newTestRouter(stub)

		text, err := router.GenerateWithModel(ctx, "gemini-2.0-flash", req)
		require.NoError(t, err)
		assert.Equal(t, `{"ok":true}`, text)
		assert.Len(t, stub.calls, 1)
		assert.Empty(t, *slept)
	})

	t.Run("transient failures retry with exponential backoff", func(t *testing.T) {
		stub := newStubProvider()
		stub.script("gemini-2.0-flash",
			stubResult{err: transientErr("gemini-2.0-flash")},
			stubResult{err: transientErr("gemini-2.0-flash")},
			stubResult{text: "recovered"},
		)
		router, slept := newTestRouter(stub)

		text, err := router.GenerateWithModel(ctx, "gemini-2.0-flash", req)
		require.NoError(t, err)
		assert.Equal(t, "recovered", text)
		assert.Len(t, stub.calls, 3)
		assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second}, *slept)
	})

	t.Run("attempts are exhausted after three transient failures", func(t *testing.T) {
		stub := newStubProvider()
		stub.script("gemini-2.0-flash",
			stubResult{err: transientErr("gemini-2.0-flash")},
			stubResult{err: transientErr("gemini-2.0-flash")},
			stubResult{err: transientErr("gemini-2.0-flash")},
		)
		router, _ := newTestRouter(stub)

		_, err := router.GenerateWithModel(ctx, "gemini-2.0-flash", req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api call failed after 3 attempts")
		assert.True(t, errors.Is(err, ErrNetworkTransient))
		assert.Len(t, stub.calls, 3)
	})

	t.Run("quota exhaustion returns without retrying", func(t *testing.T) {
		stub := newStubProvider()
		stub.script("gemini-2.0-flash", stubResult{err: quotaErr("gemini-2.0-flash")})
		router, slept := newTestRouter(stub)

		_, err := router.GenerateWithModel(ctx, "gemini-2.0-flash", req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrQuotaExhausted))
		assert.Len(t, stub.calls, 1)
		assert.Empty(t, *slept)
	})

	t.Run("terminal errors return without retrying", func(t *testing.T) {
		stub := newStubProvider()
		stub.script("gemini-2.0-flash", stubResult{
			err: NewCallError(KindTerminal, "gemini-2.0-flash", errors.New("400 invalid request")),
		})
		router, _ := newTestRouter(stub)

		_, err := router.GenerateWithModel(ctx, "gemini-2.0-flash", req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTerminal))
		assert.Len(t, stub.calls, 1)
	})

	t.Run("empty completion is schema invalid", func(t *testing.T) {
		stub := newStubProvider()
		stub.script("gemini-2.0-flash", stubResult{text: "  \n"})
		router, _ := newTestRouter(stub)

		_, err := router.GenerateWithModel(ctx, "gemini-2.0-flash", req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrSchemaInvalid))
		assert.Len(t, stub.calls, 1)
	})

	t.Run("unknown model is terminal", func(t *testing.T) {
		router, _ := newTestRouter(newStubProvider())

		_, err := router.GenerateWithModel(ctx, "gpt-99", req)
		require.Error(t, err)
		assert.Equal(t, KindTerminal, KindOf(err))
	})

	t.Run("max tokens default from the catalog", func(t *testing.T) {
		stub := newStubProvider()
		stub.script("gemini-2.0-flash", stubResult{text: "ok"})
		router, _ := newTestRouter(stub)

		_, err := router.GenerateWithModel(ctx, "gemini-2.0-flash", req)
		require.NoError(t, err)
		assert.Equal(t, 16384, stub.calls[0].req.MaxTokens)
	})

	t.Run("explicit max tokens are preserved", func(t *testing.T) {
		stub := newStubProvider()
		stub.script("gemini-2.0-flash", stubResult{text: "ok"})
		router, _ := newTestRouter(stub)

		custom := req
		custom.MaxTokens = 512
		_, err := router.GenerateWithModel(ctx, "gemini-2.0-flash", custom)
		require.NoError(t, err)
		assert.Equal(t, 512, stub.calls[0].req.MaxTokens)
	})
}

func TestRouterComplete(t *testing.T) {
	ctx := context.Background()
	req := Request{User: "hello", Temperature: 0.2, JSONMode: true}

	t.Run("first model serves", func(t *testing.T) {
		stub := newStubProvider()
		stub.script("gemini-2.0-flash", stubResult{text: "answer"})
		router, _ := newTestRouter(stub)

		text, model, err := router.Complete(ctx, "", req)
		require.NoError(t, err)
		assert.Equal(t, "answer", text)
		assert.Equal(t, "gemini-2.0-flash", model)
	})

	t.Run("quota walks the chain in catalog order", func(t *testing.T) {
		stub := newStubProvider()
		stub.script("gemini-2.0-flash", stubResult{err: quotaErr("gemini-2.0-flash")})
		stub.script("gemini-2.5-flash", stubResult{err: quotaErr("gemini-2.5-flash")})
		stub.script("gemini-2.5-pro", stubResult{text: "served by pro"})
		router, _ := newTestRouter(stub)

		text, model, err := router.Complete(ctx, "", req)
		require.NoError(t, err)
		assert.Equal(t, "served by pro", text)
		assert.Equal(t, "gemini-2.5-pro", model)
		assert.Equal(t, []string{"gemini-2.0-flash", "gemini-2.5-flash", "gemini-2.5-pro"}, stub.models())
	})

	t.Run("non-quota failures also advance the chain", func(t *testing.T) {
		stub := newStubProvider()
		stub.script("gemini-2.0-flash", stubResult{
			err: NewCallError(KindTerminal, "gemini-2.0-flash", errors.New("400 invalid request")),
		})
		stub.script("gemini-2.5-flash", stubResult{text: "served by flash"})
		router, _ := newTestRouter(stub)

		text, model, err := router.Complete(ctx, "", req)
		require.NoError(t, err)
		assert.Equal(t, "served by flash", text)
		assert.Equal(t, "gemini-2.5-flash", model)
	})

	t.Run("exhausted chain surfaces the last error", func(t *testing.T) {
		stub := newStubProvider()
		stub.script("gemini-2.0-flash", stubResult{err: quotaErr("gemini-2.0-flash")})
		stub.script("gemini-2.5-flash", stubResult{err: quotaErr("gemini-2.5-flash")})
		stub.script("gemini-2.5-pro", stubResult{err: quotaErr("gemini-2.5-pro")})
		router, _ := newTestRouter(stub)

		_, _, err := router.Complete(ctx, "", req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrAllModelsExhausted))
		assert.True(t, errors.Is(err, ErrQuotaExhausted))
		assert.Contains(t, err.Error(), "gemini-2.5-pro")
	})

	t.Run("chain can start mid-catalog", func(t *testing.T) {
		stub := newStubProvider()
		stub.script("gemini-2.5-flash", stubResult{err: quotaErr("gemini-2.5-flash")})
		stub.script("gemini-2.5-pro", stubResult{text: "ok"})
		router, _ := newTestRouter(stub)

		_, model, err := router.Complete(ctx, "gemini-2.5-flash", req)
		require.NoError(t, err)
		assert.Equal(t, "gemini-2.5-pro", model)
		assert.Equal(t, []string{"gemini-2.5-flash", "gemini-2.5-pro"}, stub.models())
	})

	t.Run("unknown start model fails fast", func(t *testing.T) {
		router, _ := newTestRouter(newStubProvider())

		_, _, err := router.Complete(ctx, "gpt-99", req)
		require.Error(t, err)
	})

	t.Run("groq models route to the groq provider", func(t *testing.T) {
		stub := newStubProvider()
		stub.script("llama-3.3-70b-versatile", stubResult{text: "fixed"})
		router, _ := newTestRouter(stub)

		text, model, err := router.Complete(ctx, "llama-3.3-70b-versatile", req)
		require.NoError(t, err)
		assert.Equal(t, "fixed", text)
		assert.Equal(t, "llama-3.3-70b-versatile", model)
		assert.Equal(t, 8192, stub.calls[0].req.MaxTokens)
	})
}
