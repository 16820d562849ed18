// Package agent hosts the LLM-backed collaborators of the generation
// pipeline: prompt-to-spec conversion, automated code repair, and code
// review. Agents are stateless; every call carries its full context, so
// a single instance can serve concurrent pipeline runs.
package agent

import (
	"context"

	"github.com/forgeworks/forge/pkg/llm"
)

// ModelRouter is the slice of the LLM layer the agents depend on.
// *llm.Router satisfies it; tests substitute scripted fakes.
type ModelRouter interface {
	// Chain resolves the fallback chain starting at the given model id.
	// An empty id starts at the registry default.
	Chain(start string) ([]string, error)

	// GenerateWithModel runs one completion against a single model,
	// with provider-level retries but no fallback to other models.
	GenerateWithModel(ctx context.Context, model string, req llm.Request) (string, error)

	// Complete walks the fallback chain until a model produces text.
	// Returns the text and the model that produced it.
	Complete(ctx context.Context, startModel string, req llm.Request) (string, string, error)
}

// Turn is one prior message of a conversation thread, replayed to the
// spec agent so refinements can reference earlier requests.
type Turn struct {
	Role    string
	Content string
}

// PatchRequest names a generated file that needs to change and why.
// The sandbox verifier and the code reviewer both emit patch requests;
// the fix agent consumes them.
type PatchRequest struct {
	File         string `json:"file"`
	Reason       string `json:"reason"`
	Instructions string `json:"instructions,omitempty"`
}
