package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/forgeworks/forge/pkg/config"
)

// maxAPIAttempts bounds retries of a single model on transient failures.
const maxAPIAttempts = 3

var errEmptyCompletion = errors.New("model returned empty response")

// Router resolves catalog model IDs to concrete providers and applies
// the retry and fallback policy: retries stay on one model, fallbacks
// move along the catalog's chain.
type Router struct {
	registry  *config.ModelRegistry
	providers map[string]Provider

	// sleep is swapped out in tests to observe backoff without waiting.
	sleep func(time.Duration)
}

// NewRouter wires the catalog to providers keyed by catalog provider
// name ("google", "groq").
func NewRouter(registry *config.ModelRegistry, providers map[string]Provider) *Router {
	return &Router{
		registry:  registry,
		providers: providers,
		sleep:     time.Sleep,
	}
}

// Chain returns the fallback chain starting at the given model, or at
// the catalog default when start is empty.
func (r *Router) Chain(start string) ([]string, error) {
	if start == "" {
		start = r.registry.Default()
	}
	return r.registry.FallbackChain(start)
}

// GenerateWithModel calls one model with up to maxAPIAttempts attempts.
// Transient failures back off exponentially (1s, 2s); quota and terminal
// failures return immediately so the caller can decide whether to move
// down the chain. An empty completion is reported as schema-invalid
// because a re-prompt, not a retry, is the fix for it.
func (r *Router) GenerateWithModel(ctx context.Context, model string, req Request) (string, error) {
	mc, err := r.registry.Get(model)
	if err != nil {
		return "", NewCallError(KindTerminal, model, err)
	}
	provider, ok := r.providers[mc.Provider]
	if !ok {
		return "", NewCallError(KindTerminal, model, fmt.Errorf("no provider registered for %q", mc.Provider))
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = mc.MaxOutputTokens
	}

	var lastErr error
	for attempt := 0; attempt < maxAPIAttempts; attempt++ {
		if attempt > 0 {
			r.sleep(time.Duration(1<<uint(attempt-1)) * time.Second)
		}

		text, err := provider.Generate(ctx, model, req)
		if err == nil {
			if strings.TrimSpace(text) == "" {
				return "", NewCallError(KindSchemaInvalid, model, errEmptyCompletion)
			}
			return text, nil
		}
		lastErr = err

		switch KindOf(err) {
		case KindQuotaExhausted:
			slog.Warn("model quota exhausted", "model", model)
			return "", err
		case KindNetworkTransient:
			if ctx.Err() != nil {
				return "", err
			}
			slog.Warn("model call failed, retrying", "model", model, "attempt", attempt+1, "error", err)
		default:
			return "", err
		}
	}
	return "", fmt.Errorf("model %s: api call failed after %d attempts: %w", model, maxAPIAttempts, lastErr)
}

// Complete walks the fallback chain from startModel until one model
// returns text, and reports which model served the completion. Any
// per-model failure advances the chain; when the chain runs out the
// last error is surfaced wrapped in ErrAllModelsExhausted.
func (r *Router) Complete(ctx context.Context, startModel string, req Request) (text string, modelUsed string, err error) {
	chain, err := r.Chain(startModel)
	if err != nil {
		return "", "", err
	}

	var lastErr error
	for _, model := range chain {
		text, err := r.GenerateWithModel(ctx, model, req)
		if err == nil {
			return text, model, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return "", "", lastErr
		}
		if KindOf(err) == KindQuotaExhausted {
			slog.Warn("falling back to next model", "model", model, "reason", "quota")
		} else {
			slog.Warn("falling back to next model", "model", model, "error", err)
		}
	}
	return "", "", fmt.Errorf("%w: chain %v: %w", ErrAllModelsExhausted, chain, lastErr)
}
