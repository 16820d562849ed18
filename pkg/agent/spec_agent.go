package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/forgeworks/forge/pkg/llm"
	"github.com/forgeworks/forge/pkg/spec"
)

const (
	specTemperature = 0.1

	// specMaxRetries is how many times a model gets re-prompted with its
	// own validation error before the chain advances to the next model.
	specMaxRetries = 2
)

// SpecAgent converts natural-language backend descriptions into
// validated specs. Invalid output is re-prompted on the same model;
// quota exhaustion and persistent failures walk the fallback chain.
type SpecAgent struct {
	router     ModelRouter
	maxRetries int
}

func NewSpecAgent(router ModelRouter) *SpecAgent {
	if router == nil {
		panic("router cannot be nil")
	}
	return &SpecAgent{router: router, maxRetries: specMaxRetries}
}

// GenerateSpecParams carries one spec-generation request. Model selects
// the chain start (empty means the registry default). Context is
// retrieved document text; History replays the thread so refinements
// can build on earlier turns.
type GenerateSpecParams struct {
	Prompt  string
	Model   string
	Context string
	History []Turn
}

// GenerateSpec returns the parsed, normalized, validated spec and the
// id of the model that produced it.
func (a *SpecAgent) GenerateSpec(ctx context.Context, params GenerateSpecParams) (*spec.Spec, string, error) {
	chain, err := a.router.Chain(params.Model)
	if err != nil {
		return nil, "", err
	}

	var lastErr error
	for _, model := range chain {
		sp, err := a.tryModel(ctx, model, params)
		if err == nil {
			return sp, model, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, "", lastErr
		}
		slog.Warn("spec generation failed, advancing chain", "model", model, "error", err)
	}
	return nil, "", fmt.Errorf("%w: chain %v: %w", llm.ErrAllModelsExhausted, chain, lastErr)
}

// tryModel runs the prompt-validate-reprompt loop against one model.
func (a *SpecAgent) tryModel(ctx context.Context, model string, params GenerateSpecParams) (*spec.Spec, error) {
	userMsg := buildSpecUserMessage(params)

	var lastErr error
	for attempt := 1; attempt <= 1+a.maxRetries; attempt++ {
		if attempt > 1 {
			userMsg = fmt.Sprintf("Your previous response was invalid JSON or did not match the schema.\nError: %v\n\nPlease try again. Original request: %s",
				lastErr, params.Prompt)
		}

		raw, err := a.router.GenerateWithModel(ctx, model, llm.Request{
			System:      specSystemInstruction,
			User:        userMsg,
			JSONMode:    true,
			Temperature: specTemperature,
		})
		if err != nil {
			// An empty completion is re-prompted like any other
			// invalid output; real call failures end this model.
			if errors.Is(err, llm.ErrSchemaInvalid) {
				lastErr = err
				continue
			}
			return nil, err
		}

		sp, err := parseSpec(raw)
		if err != nil {
			lastErr = err
			slog.Warn("model returned invalid spec", "model", model, "attempt", attempt, "error", err)
			continue
		}

		slog.Info("spec generated", "model", model, "attempt", attempt, "project", sp.ProjectName)
		return sp, nil
	}
	return nil, fmt.Errorf("model %s: no valid spec after %d attempts: %w", model, 1+a.maxRetries, lastErr)
}

func parseSpec(raw string) (*spec.Spec, error) {
	sp, err := spec.Parse(raw)
	if err != nil {
		return nil, err
	}
	sp.Normalize()
	if err := sp.Validate(); err != nil {
		return nil, err
	}
	return sp, nil
}

func buildSpecUserMessage(params GenerateSpecParams) string {
	var b strings.Builder
	if params.Context != "" {
		fmt.Fprintf(&b, "CONTEXT FROM UPLOADED DOCUMENTS:\n%s\n\n", params.Context)
	}
	if len(params.History) > 0 {
		b.WriteString("PREVIOUS CONVERSATION HISTORY (FOR CONTEXT):\n")
		for _, turn := range params.History {
			fmt.Fprintf(&b, "[%s]: %s\n\n", strings.ToUpper(turn.Role), turn.Content)
		}
	}
	fmt.Fprintf(&b, "USER REQUEST:\n%s", params.Prompt)
	return b.String()
}
