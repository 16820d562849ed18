package e2e

import (
	"context"
	"fmt"
	"sync"

	"github.com/forgeworks/forge/pkg/llm"
)

// ScriptEntry is one pre-programmed provider response: either text or
// an error.
type ScriptEntry struct {
	Response string
	Err      error
}

// ProviderCall records one Generate invocation for assertions.
type ProviderCall struct {
	Model   string
	Request llm.Request
}

// ScriptedProvider implements llm.Provider with canned responses.
// Entries routed to a specific model ID take precedence; the sequential
// queue serves everything else. An exhausted script fails the call with
// a terminal error so tests surface missing entries instead of hanging.
type ScriptedProvider struct {
	mu      sync.Mutex
	byModel map[string][]ScriptEntry
	queue   []ScriptEntry
	calls   []ProviderCall
}

// NewScriptedProvider creates an empty scripted provider.
func NewScriptedProvider() *ScriptedProvider {
	return &ScriptedProvider{byModel: make(map[string][]ScriptEntry)}
}

// AddSequential appends an entry served to the next unrouted call.
func (p *ScriptedProvider) AddSequential(entry ScriptEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queue = append(p.queue, entry)
}

// AddForModel appends an entry served only to calls against model.
func (p *ScriptedProvider) AddForModel(model string, entry ScriptEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.byModel[model] = append(p.byModel[model], entry)
}

// Generate implements llm.Provider.
func (p *ScriptedProvider) Generate(_ context.Context, model string, req llm.Request) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, ProviderCall{Model: model, Request: req})

	if entries := p.byModel[model]; len(entries) > 0 {
		entry := entries[0]
		p.byModel[model] = entries[1:]
		return entry.Response, entry.Err
	}
	if len(p.queue) > 0 {
		entry := p.queue[0]
		p.queue = p.queue[1:]
		return entry.Response, entry.Err
	}
	return "", llm.NewCallError(llm.KindTerminal, model,
		fmt.Errorf("llm script exhausted (call %d)", len(p.calls)))
}

// Calls returns a snapshot of every recorded invocation.
func (p *ScriptedProvider) Calls() []ProviderCall {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]ProviderCall, len(p.calls))
	copy(out, p.calls)
	return out
}

// CallCount reports how many calls the provider has served in total.
func (p *ScriptedProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

// CallsForModel reports how many calls named the given model.
func (p *ScriptedProvider) CallsForModel(model string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, c := range p.calls {
		if c.Model == model {
			n++
		}
	}
	return n
}

// QuotaError builds the classified error a provider returns when a
// model is out of quota.
func QuotaError(model string) error {
	return llm.NewCallError(llm.KindQuotaExhausted, model, fmt.Errorf("resource exhausted"))
}
