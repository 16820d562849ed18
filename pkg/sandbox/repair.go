package sandbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"

	"github.com/forgeworks/forge/pkg/agent"
	"github.com/forgeworks/forge/pkg/archive"
	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/spec"
)

// ArchiveVerifier runs one verification attempt against an assembled
// archive.
type ArchiveVerifier interface {
	Verify(ctx context.Context, sp *spec.Spec, zipPath string) (*Report, error)
}

// Fixer proposes replacement file contents for the named patch requests.
type Fixer interface {
	ProposeFixes(ctx context.Context, sp *spec.Spec, files map[string]string, requests []agent.PatchRequest) (*agent.FixResult, error)
}

// Reviewer scores code and emits its own patch requests. prev turns the
// call into a delta review whose score never drops below prev's.
type Reviewer interface {
	Review(ctx context.Context, files map[string]string, evidence *agent.SandboxEvidence, prev *agent.ReviewReport) (*agent.ReviewReport, error)
}

// Outcome is the terminal state of a repair loop.
type Outcome struct {
	// Report is the last verification attempt, nil only when assembly
	// failed before the first attempt.
	Report *Report
	// Review is the last review verdict, nil when review is disabled or
	// never completed.
	Review *agent.ReviewReport
	// Files is the final file map, including any applied fixes.
	Files map[string]string
	// ZipPath is the archive matching Files.
	ZipPath string
	// Attempts counts verification attempts actually executed.
	Attempts int
	// Repaired reports whether any fix changed a file.
	Repaired bool
}

// Loop drives verify → extract failures → patch → reassemble → redeploy
// until the project passes, attempts run out, or a repair makes no
// progress. A review loop runs before the sandbox, after it, or both,
// per configuration.
type Loop struct {
	verifier ArchiveVerifier
	fixer    Fixer
	reviewer Reviewer
	cfg      *config.SandboxConfig
	staging  string

	// OnAttempt, when set, observes each verification attempt. The
	// queue executor publishes progress events from it.
	OnAttempt func(attempt int, report *Report)
	// OnReview observes each completed review iteration.
	OnReview func(iteration int, review *agent.ReviewReport)
}

// NewLoop panics on missing collaborators. A nil reviewer disables the
// review loop regardless of the configured position.
func NewLoop(verifier ArchiveVerifier, fixer Fixer, reviewer Reviewer, cfg *config.SandboxConfig, staging string) *Loop {
	if verifier == nil {
		panic("verifier cannot be nil")
	}
	if fixer == nil {
		panic("fixer cannot be nil")
	}
	if cfg == nil {
		panic("sandbox config cannot be nil")
	}
	if staging == "" {
		panic("staging directory required")
	}
	return &Loop{
		verifier: verifier,
		fixer:    fixer,
		reviewer: reviewer,
		cfg:      cfg,
		staging:  staging,
	}
}

// Run executes the repair loop over the given files. The input map is
// not mutated. On error the returned Outcome still carries whatever
// evidence was gathered, so callers can persist partial reports.
func (l *Loop) Run(ctx context.Context, sp *spec.Spec, files map[string]string) (*Outcome, error) {
	out := &Outcome{Files: maps.Clone(files)}
	files = out.Files

	pos := l.cfg.ReviewPosition
	reviewEnabled := l.reviewer != nil && pos != config.ReviewDisabled
	preReview := reviewEnabled && (pos == config.ReviewPreSandbox || pos == config.ReviewBoth)
	postReview := reviewEnabled && (pos == config.ReviewPostSandbox || pos == config.ReviewBoth)

	var review *agent.ReviewReport
	if preReview {
		rev, changed, err := l.reviewLoop(ctx, sp, files, nil, nil)
		review = rev
		out.Review = review
		out.Repaired = out.Repaired || changed
		if err != nil {
			return out, err
		}
	}

	attempts := l.cfg.MaxRepairAttempts
	if attempts < 1 {
		attempts = 1
	}

	// dirty tracks whether files changed since the last assembled
	// archive; the archive is only rebuilt when they did.
	dirty := true
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		if dirty {
			zipPath, err := archive.Assemble(l.staging, sp.ProjectName, files)
			if err != nil {
				return out, fmt.Errorf("assembling archive for attempt %d: %w", attempt, err)
			}
			out.ZipPath = zipPath
			dirty = false
		}

		report, err := l.verifier.Verify(ctx, sp, out.ZipPath)
		if err != nil {
			return out, err
		}
		out.Report = report
		out.Attempts = attempt
		if l.OnAttempt != nil {
			l.OnAttempt(attempt, report)
		}

		if report.Skipped || report.Passed() {
			break
		}
		if attempt == attempts {
			slog.Warn("sandbox attempts exhausted", "attempts", attempts)
			break
		}

		requests := BuildPatchRequests(report)
		slog.Info("sandbox attempt failed, patching",
			"attempt", attempt, "patch_requests", len(requests))
		fix, err := l.fixer.ProposeFixes(ctx, sp, files, requests)
		if err != nil {
			return out, fmt.Errorf("proposing fixes after attempt %d: %w", attempt, err)
		}
		if ApplyFixes(files, fix.Fixes) == 0 {
			slog.Warn("repair changed nothing, stopping", "attempt", attempt)
			break
		}
		out.Repaired = true
		dirty = true
	}

	if postReview && out.Report != nil && !out.Report.Skipped {
		rev, changed, err := l.reviewLoop(ctx, sp, files, out.Report.Evidence(), review)
		if rev != nil {
			review = rev
		}
		out.Review = review
		if err != nil {
			return out, err
		}
		if changed {
			out.Repaired = true
			dirty = true
		}
	}
	out.Review = review

	if dirty {
		zipPath, err := archive.Assemble(l.staging, sp.ProjectName, files)
		if err != nil {
			return out, fmt.Errorf("assembling final archive: %w", err)
		}
		out.ZipPath = zipPath
	}
	return out, nil
}

// reviewLoop runs review → patch → re-review until the reviewer approves
// with a score at or above the trust threshold, iterations run out, or a
// pass makes no progress. prev seeds the score floor when an earlier
// phase already reviewed this code. Review failures are non-fatal: the
// loop keeps the best verdict it has.
func (l *Loop) reviewLoop(ctx context.Context, sp *spec.Spec, files map[string]string, evidence *agent.SandboxEvidence, prev *agent.ReviewReport) (*agent.ReviewReport, bool, error) {
	changed := false
	for iteration := 1; iteration <= l.cfg.MaxReviewIterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return prev, changed, err
		}

		report, err := l.reviewer.Review(ctx, files, evidence, prev)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return prev, changed, err
			}
			slog.Warn("code review failed, keeping previous verdict",
				"iteration", iteration, "error", err)
			return prev, changed, nil
		}
		if l.OnReview != nil {
			l.OnReview(iteration, report)
		}

		if report.Approved && report.SecurityScore >= l.cfg.TrustScoreThreshold {
			slog.Info("review approved", "iteration", iteration, "score", report.SecurityScore)
			return report, changed, nil
		}
		prev = report
		if iteration == l.cfg.MaxReviewIterations || len(report.PatchRequests) == 0 {
			return report, changed, nil
		}

		fix, err := l.fixer.ProposeFixes(ctx, sp, files, report.PatchRequests)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return report, changed, err
			}
			slog.Warn("review fixes failed, stopping review loop",
				"iteration", iteration, "error", err)
			return report, changed, nil
		}
		if ApplyFixes(files, fix.Fixes) == 0 {
			slog.Info("review fixes changed nothing, stopping review loop", "iteration", iteration)
			return report, changed, nil
		}
		changed = true
	}
	return prev, changed, nil
}

// ApplyFixes overwrites files with the proposed replacements and reports
// how many actually changed. A proposal matching the current content is
// not progress.
func ApplyFixes(files map[string]string, fixes []agent.FilePatch) int {
	applied := 0
	for _, f := range fixes {
		if f.File == "" || f.Changes == "" {
			continue
		}
		if files[f.File] == f.Changes {
			continue
		}
		files[f.File] = f.Changes
		applied++
	}
	return applied
}
