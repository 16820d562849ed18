// Package llm presents a uniform completion interface over heterogeneous
// LLM backends and hides quota exhaustion by walking a fallback chain.
// Providers return raw text; schema parsing belongs to the agents that
// know what they asked for.
package llm

import "context"

// Request carries one completion call. JSONMode asks the provider to
// constrain output to a single JSON object where the backend supports it.
type Request struct {
	System      string
	User        string
	JSONMode    bool
	Temperature float32
	MaxTokens   int
}

// Provider is one LLM backend. A provider typically serves several
// models; the model ID selects among them.
type Provider interface {
	Generate(ctx context.Context, model string, req Request) (string, error)
}
