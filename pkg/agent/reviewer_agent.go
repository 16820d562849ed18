package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/llm"
	"github.com/forgeworks/forge/pkg/spec"
)

const (
	reviewTemperature = 0.2

	// Evidence budget for the review prompt.
	reviewMaxFailures    = 10
	reviewMaxOutputChars = 1000

	// reviewReasonTag marks patch requests that originate from the
	// reviewer rather than from sandbox failure evidence.
	reviewReasonTag = "reviewer flagged"
)

// CodeReviewer judges generated code for security and correctness and
// emits patch requests for anything blocking approval. Re-reviews are
// delta reviews: the score never drops below the previous one.
type CodeReviewer struct {
	router ModelRouter
	model  string
}

// NewCodeReviewer panics on a nil router. An empty model id selects the
// registry default.
func NewCodeReviewer(router ModelRouter, model string) *CodeReviewer {
	if router == nil {
		panic("router cannot be nil")
	}
	if model == "" {
		model = config.DefaultModel
	}
	return &CodeReviewer{router: router, model: model}
}

// Issue is one problem the reviewer found.
type Issue struct {
	Severity    string `json:"severity"`
	FilePath    string `json:"file_path"`
	Description string `json:"description"`
}

// ReviewReport is the reviewer's structured verdict.
type ReviewReport struct {
	Issues        []Issue        `json:"issues"`
	Suggestions   []string       `json:"suggestions"`
	SecurityScore int            `json:"security_score"`
	Approved      bool           `json:"approved"`
	AffectedFiles []string       `json:"affected_files"`
	PatchRequests []PatchRequest `json:"patch_requests"`
}

// SandboxEvidence summarizes a verification run for the reviewer. Nil
// evidence means the code has not been deployed yet.
type SandboxEvidence struct {
	Deployed    bool
	HealthOK    bool
	TestsTotal  int
	TestsPassed int
	TestsFailed int
	Failures    []string
	TestOutput  string
}

// Review scores the given files. prev, when non-nil, turns the call
// into a delta review of the previous report.
func (r *CodeReviewer) Review(ctx context.Context, files map[string]string, evidence *SandboxEvidence, prev *ReviewReport) (*ReviewReport, error) {
	raw, model, err := r.router.Complete(ctx, r.model, llm.Request{
		System:      reviewerSystemInstruction,
		User:        buildReviewUserMessage(files, evidence, prev),
		JSONMode:    true,
		Temperature: reviewTemperature,
	})
	if err != nil {
		return nil, err
	}

	var report ReviewReport
	if err := json.Unmarshal([]byte(spec.StripFences(raw)), &report); err != nil {
		return nil, fmt.Errorf("reviewer returned invalid JSON: %w", err)
	}

	// The monotone floor is enforced here, not trusted to the model.
	if prev != nil && report.SecurityScore < prev.SecurityScore {
		slog.Warn("reviewer lowered score on re-review, keeping previous",
			"previous", prev.SecurityScore, "returned", report.SecurityScore)
		report.SecurityScore = prev.SecurityScore
	}

	for i := range report.PatchRequests {
		if report.PatchRequests[i].Reason == "" {
			report.PatchRequests[i].Reason = reviewReasonTag
		} else {
			report.PatchRequests[i].Reason = reviewReasonTag + ": " + report.PatchRequests[i].Reason
		}
	}

	slog.Info("code reviewed", "model", model, "score", report.SecurityScore,
		"approved", report.Approved, "issues", len(report.Issues))
	return &report, nil
}

func buildReviewUserMessage(files map[string]string, evidence *SandboxEvidence, prev *ReviewReport) string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Files to Review:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "\n--- %s ---\n%s\n", name, files[name])
	}

	if evidence != nil {
		b.WriteString("\n\n---\n## Sandbox Test Results\n")
		fmt.Fprintf(&b, "- Deployed: %s\n", mark(evidence.Deployed))
		fmt.Fprintf(&b, "- Health check: %s\n", mark(evidence.HealthOK))
		fmt.Fprintf(&b, "- Tests: %d/%d passed, %d failed\n",
			evidence.TestsPassed, evidence.TestsTotal, evidence.TestsFailed)
		if len(evidence.Failures) > 0 {
			b.WriteString("\nFailed tests:\n")
			for i, f := range evidence.Failures {
				if i == reviewMaxFailures {
					break
				}
				fmt.Fprintf(&b, "  - %s\n", f)
			}
		}
		if evidence.TestOutput != "" {
			out := evidence.TestOutput
			if len(out) > reviewMaxOutputChars {
				out = out[:reviewMaxOutputChars]
			}
			fmt.Fprintf(&b, "\nPytest output (truncated):\n```\n%s\n```\n", out)
		}
		b.WriteString("\nWeight these real test results heavily in your security_score.\n")
		b.WriteString("If all tests pass and no critical security issues exist, approve with score >= 8.\n")
	}

	if prev != nil {
		b.WriteString("\n\n---\nThis is a RE-REVIEW after targeted fixes.\n")
		fmt.Fprintf(&b, "Previous security score: %d/10.\n", prev.SecurityScore)
		b.WriteString("Your new score MUST be >= the previous score (scores only improve on retry).\n")
		var flagged []string
		for _, issue := range prev.Issues {
			if issue.FilePath != "" && issue.Description != "" {
				flagged = append(flagged, fmt.Sprintf("- [%s] %s: %s", issue.Severity, issue.FilePath, issue.Description))
			}
		}
		if len(flagged) > 0 {
			fmt.Fprintf(&b, "\nIssues that were flagged previously (only re-flag if still present and unresolved):\n%s\n",
				strings.Join(flagged, "\n"))
		}
	}
	return b.String()
}

func mark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}
