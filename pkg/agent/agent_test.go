package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgeworks/forge/pkg/llm"
)

// fakeRouter scripts per-model responses and records every call so
// tests can assert on prompts, parameters, and fallback order.
type fakeRouter struct {
	chain   []string
	results map[string][]scripted
	calls   []routerCall
}

type scripted struct {
	text string
	err  error
}

type routerCall struct {
	Model string
	Req   llm.Request
}

func newFakeRouter(chain ...string) *fakeRouter {
	return &fakeRouter{chain: chain, results: make(map[string][]scripted)}
}

func (f *fakeRouter) script(model, text string, err error) {
	f.results[model] = append(f.results[model], scripted{text: text, err: err})
}

func (f *fakeRouter) Chain(start string) ([]string, error) {
	if start == "" {
		return f.chain, nil
	}
	for i, id := range f.chain {
		if id == start {
			return f.chain[i:], nil
		}
	}
	return nil, fmt.Errorf("model %q not in catalog", start)
}

func (f *fakeRouter) GenerateWithModel(_ context.Context, model string, req llm.Request) (string, error) {
	f.calls = append(f.calls, routerCall{Model: model, Req: req})
	queue := f.results[model]
	if len(queue) == 0 {
		return "", llm.NewCallError(llm.KindTerminal, model, errors.New("no scripted result"))
	}
	next := queue[0]
	f.results[model] = queue[1:]
	return next.text, next.err
}

func (f *fakeRouter) Complete(ctx context.Context, start string, req llm.Request) (string, string, error) {
	chain, err := f.Chain(start)
	if err != nil {
		return "", "", err
	}
	var lastErr error
	for _, model := range chain {
		text, err := f.GenerateWithModel(ctx, model, req)
		if err == nil {
			return text, model, nil
		}
		lastErr = err
	}
	return "", "", lastErr
}

// models returns the model ids in call order.
func (f *fakeRouter) models() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.Model
	}
	return out
}

func quotaErr(model string) error {
	return llm.NewCallError(llm.KindQuotaExhausted, model, errors.New("429 too many requests"))
}

func terminalErr(model string) error {
	return llm.NewCallError(llm.KindTerminal, model, errors.New("401 invalid api key"))
}

func emptyErr(model string) error {
	return llm.NewCallError(llm.KindSchemaInvalid, model, errors.New("model returned empty response"))
}
