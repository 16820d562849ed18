package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/llm"
	"github.com/forgeworks/forge/pkg/spec"
)

const (
	fixTemperature = 0.2
	fixMaxTokens   = 8192

	// fixFallbackModel serves repairs when the primary provider's quota
	// is exhausted. It lives on a different provider, so a burned Gemini
	// quota does not take the repair loop down with it.
	fixFallbackModel = "llama-3.3-70b-versatile"

	// Prompt budget: at most fixMaxFiles files, each truncated to
	// fixMaxFileChars. The patch requests carry the failure evidence;
	// the file bodies only orient the model.
	fixMaxFiles     = 5
	fixMaxFileChars = 1000
)

// FixAgent turns patch requests from a failed verification run into
// complete replacement file contents.
type FixAgent struct {
	router ModelRouter
	model  string
}

// NewFixAgent panics on a nil router. An empty model id selects the
// registry default.
func NewFixAgent(router ModelRouter, model string) *FixAgent {
	if router == nil {
		panic("router cannot be nil")
	}
	if model == "" {
		model = config.DefaultModel
	}
	return &FixAgent{router: router, model: model}
}

// FixResult is the fix agent's verdict: a short root-cause analysis and
// the files to overwrite.
type FixResult struct {
	Analysis string      `json:"analysis"`
	Fixes    []FilePatch `json:"fixes"`
}

// FilePatch replaces one generated file wholesale. Changes holds the
// complete new content, not a diff.
type FilePatch struct {
	File    string `json:"file"`
	Reason  string `json:"reason"`
	Changes string `json:"changes"`
}

// ProposeFixes asks the model for repairs to the files named by the
// patch requests. It never applies anything; the caller decides what to
// write back.
func (a *FixAgent) ProposeFixes(ctx context.Context, sp *spec.Spec, files map[string]string, requests []PatchRequest) (*FixResult, error) {
	if len(requests) == 0 {
		return nil, errors.New("no patch requests to fix")
	}

	userMsg, err := buildFixUserMessage(sp, files, requests)
	if err != nil {
		return nil, err
	}
	req := llm.Request{
		System:      fixSystemInstruction,
		User:        userMsg,
		JSONMode:    true,
		Temperature: fixTemperature,
		MaxTokens:   fixMaxTokens,
	}

	raw, err := a.router.GenerateWithModel(ctx, a.model, req)
	if err != nil {
		if !errors.Is(err, llm.ErrQuotaExhausted) {
			return nil, err
		}
		slog.Warn("fix model quota exhausted, switching provider", "model", a.model, "fallback", fixFallbackModel)
		if raw, err = a.router.GenerateWithModel(ctx, fixFallbackModel, req); err != nil {
			return nil, err
		}
	}

	var result FixResult
	if err := json.Unmarshal([]byte(spec.StripFences(raw)), &result); err != nil {
		return nil, fmt.Errorf("fix agent returned invalid JSON: %w", err)
	}
	slog.Info("fixes proposed", "count", len(result.Fixes))
	return &result, nil
}

func buildFixUserMessage(sp *spec.Spec, files map[string]string, requests []PatchRequest) (string, error) {
	specJSON, err := json.MarshalIndent(sp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode spec: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "BACKEND SPECIFICATION:\n%s\n\n", specJSON)

	b.WriteString("PATCH REQUESTS:\n")
	for _, r := range requests {
		fmt.Fprintf(&b, "- %s: %s\n", r.File, r.Reason)
		if r.Instructions != "" {
			fmt.Fprintf(&b, "  %s\n", r.Instructions)
		}
	}

	b.WriteString("\nCURRENT CODE FILES:\n")
	for _, name := range relevantFiles(files, requests) {
		content := files[name]
		if len(content) > fixMaxFileChars {
			content = content[:fixMaxFileChars] + "..."
		}
		fmt.Fprintf(&b, "FILE: %s\n```python\n%s\n```\n\n", name, content)
	}

	b.WriteString("Please analyze these failures and provide fixes.")
	return b.String(), nil
}

// relevantFiles picks which file bodies the model sees: files named by
// patch requests first, then the remaining application modules, capped
// at fixMaxFiles. Test files are evidence, not repair targets, so they
// are only included when a request names one explicitly.
func relevantFiles(files map[string]string, requests []PatchRequest) []string {
	seen := make(map[string]bool)
	var picked []string
	add := func(name string) {
		if len(picked) >= fixMaxFiles || seen[name] || files[name] == "" {
			return
		}
		seen[name] = true
		picked = append(picked, name)
	}

	for _, r := range requests {
		add(r.File)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		if strings.HasSuffix(name, ".py") && !strings.HasPrefix(name, "tests/") {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		add(name)
	}
	return picked
}
