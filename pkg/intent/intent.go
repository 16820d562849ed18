// Package intent classifies a chat turn so the pipeline knows whether to
// hand back the existing artifact, start a fresh generation, or refine
// the current spec. Classification is a deterministic pattern cascade; a
// model round-trip would cost more than the decision is worth.
package intent

import (
	"log/slog"
	"regexp"
	"strings"
)

// Intent is the classified purpose of a user turn.
type Intent string

const (
	// Retrieve means the user wants access to their existing project.
	Retrieve Intent = "retrieve"
	// Generate means the user wants a brand-new backend built.
	Generate Intent = "generate"
	// Refine means the user wants modifications to an existing project.
	Refine Intent = "refine"
)

var (
	retrievePatterns = regexp.MustCompile(
		`(?i)\b(` +
			`where\s+is|give\s+me|send\s+me|show\s+me|get\s+me|download|` +
			`my\s+project|my\s+api|my\s+app|my\s+backend|` +
			`i\s+already|you\s+built|you\s+made|we\s+built|we\s+made|` +
			`link\s+to|zip|artifact|re-?download|resend` +
			`)\b`)

	generatePatterns = regexp.MustCompile(
		`(?i)\b(` +
			`build|create|generate|make|scaffold|set\s+up|implement|write|` +
			`new\s+(api|backend|project|app|service)` +
			`)\b`)

	refinePatterns = regexp.MustCompile(
		`(?i)\b(` +
			`add|remove|update|change|fix|modify|extend|rename|` +
			`also|additionally|now\s+also|i\s+also\s+want|` +
			`and\s+(add|remove|include)|` +
			`include|exclude|make\s+it|turn\s+it` +
			`)\b`)
)

// Classify decides the intent of a prompt given prior state.
//
// Rules, in priority order:
//  1. No existing artifact: always Generate.
//  2. Prompt matches retrieve patterns: Retrieve.
//  3. Prior messages exist and prompt matches refine patterns: Refine.
//  4. Prompt matches generate patterns: Generate.
//  5. Default: Refine when history exists, Generate otherwise.
func Classify(prompt string, hasExistingArtifact bool, priorMessages int) Intent {
	promptLower := strings.ToLower(strings.TrimSpace(prompt))

	if !hasExistingArtifact {
		slog.Debug("Intent: no existing artifact", "intent", Generate)
		return Generate
	}

	if retrievePatterns.MatchString(promptLower) {
		slog.Debug("Intent: matched retrieve pattern", "intent", Retrieve)
		return Retrieve
	}

	hasHistory := priorMessages > 0

	if hasHistory && refinePatterns.MatchString(promptLower) {
		slog.Debug("Intent: history plus refine pattern", "intent", Refine)
		return Refine
	}

	if generatePatterns.MatchString(promptLower) {
		slog.Debug("Intent: matched generate pattern", "intent", Generate)
		return Generate
	}

	if hasHistory {
		slog.Debug("Intent: defaulting with history", "intent", Refine)
		return Refine
	}

	slog.Debug("Intent: no pattern matched", "intent", Generate)
	return Generate
}
