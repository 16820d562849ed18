package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/project"
	"github.com/forgeworks/forge/ent/verificationrun"
	"github.com/forgeworks/forge/pkg/agent"
	"github.com/forgeworks/forge/pkg/archive"
	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/events"
	"github.com/forgeworks/forge/pkg/models"
	"github.com/forgeworks/forge/pkg/sandbox"
	"github.com/forgeworks/forge/pkg/spec"
)

// publishTimeout bounds event publishing so a slow events table never
// stalls a run.
const publishTimeout = 3 * time.Second

// ProjectFinisher is the slice of the project service the executor
// drives: loading the row under verification and landing its verdict.
type ProjectFinisher interface {
	Get(ctx context.Context, userID, projectID string) (*ent.Project, error)
	MarkGenerating(ctx context.Context, projectID string) error
	SaveArchive(ctx context.Context, projectID, zipPath string) error
	FinishVerification(ctx context.Context, projectID string, passed bool, verificationJSON string) error
	Fail(ctx context.Context, projectID, errorMessage string) error
}

// ArchiveStore resolves and replaces stored project archives.
// *storage.Store satisfies it.
type ArchiveStore interface {
	Path(userID, projectID string) (string, bool)
	Save(userID, projectID, srcPath string) (string, error)
}

// ProgressPublisher emits run progress events. *events.EventPublisher
// satisfies it.
type ProgressPublisher interface {
	PublishProjectStatus(ctx context.Context, projectID string, payload events.ProjectStatusPayload) error
	PublishStageStatus(ctx context.Context, projectID string, payload events.StageStatusPayload) error
	PublishRunStatus(ctx context.Context, projectID string, payload events.RunStatusPayload) error
}

// Executor turns claimed verification runs into sandbox loops and
// project verdicts. A verify run checks the stored archive as-is; a
// repair run first folds the caller's reported failures into a fix
// pass, then lets the loop repair until the archive passes or attempts
// run out.
type Executor struct {
	projects  ProjectFinisher
	store     ArchiveStore
	verifier  sandbox.ArchiveVerifier
	fixer     sandbox.Fixer
	reviewer  sandbox.Reviewer
	cfg       *config.SandboxConfig
	staging   string
	publisher ProgressPublisher
}

// NewExecutor creates a run executor. reviewer may be nil (review loop
// disabled); publisher may be nil (progress events disabled).
func NewExecutor(projects ProjectFinisher, store ArchiveStore, verifier sandbox.ArchiveVerifier, fixer sandbox.Fixer, reviewer sandbox.Reviewer, cfg *config.SandboxConfig, staging string, publisher ProgressPublisher) *Executor {
	if projects == nil {
		panic("project service cannot be nil")
	}
	if store == nil {
		panic("archive store cannot be nil")
	}
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
	return &Executor{
		projects:  projects,
		store:     store,
		verifier:  verifier,
		fixer:     fixer,
		reviewer:  reviewer,
		cfg:       cfg,
		staging:   staging,
		publisher: publisher,
	}
}

// runReport is what lands in the run's report_json column.
type runReport struct {
	Passed   bool                `json:"passed"`
	Attempts int                 `json:"attempts"`
	Repaired bool                `json:"repaired"`
	Sandbox  *sandbox.Report     `json:"sandbox,omitempty"`
	Review   *agent.ReviewReport `json:"review,omitempty"`
	Error    string              `json:"error,omitempty"`
}

// Execute deploys the project's stored archive, runs the endpoint
// tests, and lands the verdict on the project row.
//
// The run completes whenever the sandbox delivered a verdict, passing
// or not; the run itself fails only when no verdict could be reached
// (missing artifacts, sandbox unavailable, loop error). A failed verify
// run leaves the project in awaiting_verification so it can be retried.
func (e *Executor) Execute(ctx context.Context, run *ent.VerificationRun) *ExecutionResult {
	log := slog.With("run_id", run.ID, "project_id", run.ProjectID, "kind", run.Kind)

	proj, err := e.projects.Get(ctx, run.UserID, run.ProjectID)
	if err != nil {
		return failedResult(fmt.Errorf("loading project: %w", err))
	}
	if proj.SpecJSON == nil || *proj.SpecJSON == "" {
		return failedResult(errors.New("project has no stored spec"))
	}
	var sp spec.Spec
	if err := json.Unmarshal([]byte(*proj.SpecJSON), &sp); err != nil {
		return failedResult(fmt.Errorf("parsing stored spec: %w", err))
	}

	zipPath, ok := e.store.Path(run.UserID, run.ProjectID)
	if !ok {
		return failedResult(errors.New("project has no stored archive"))
	}
	files, err := archive.Files(zipPath)
	if err != nil {
		return failedResult(fmt.Errorf("reading stored archive: %w", err))
	}

	isRepair := run.Kind == verificationrun.KindRepair
	stage := events.StageVerify
	if isRepair {
		stage = events.StageRepair
		if err := e.projects.MarkGenerating(ctx, run.ProjectID); err != nil {
			return failedResult(fmt.Errorf("marking project generating: %w", err))
		}
		e.publishProjectStatus(ctx, run.ProjectID, project.StatusGenerating, "")
		e.seedRepair(ctx, run, &sp, files, log)
	}

	// The loop's hooks are per-run state, so the loop itself must be.
	loop := sandbox.NewLoop(e.verifier, e.fixer, e.reviewer, e.cfg, e.staging)
	loop.OnAttempt = func(attempt int, _ *sandbox.Report) {
		e.publishRunAttempt(ctx, run, attempt)
	}
	loop.OnReview = func(iteration int, review *agent.ReviewReport) {
		e.publishStage(ctx, run.ProjectID, events.StageReview, events.StageStatusCompleted,
			fmt.Sprintf("iteration %d, score %d", iteration, review.SecurityScore))
	}

	e.publishStage(ctx, run.ProjectID, stage, events.StageStatusStarted, "")

	out, runErr := loop.Run(ctx, &sp, files)
	reportJSON := marshalRunReport(out, runErr)

	if runErr != nil {
		if isRepair {
			e.restoreFailed(run.ProjectID, fmt.Sprintf("Repair did not finish: %v", runErr), log)
		}
		if errors.Is(runErr, context.Canceled) {
			e.publishStage(ctx, run.ProjectID, stage, events.StageStatusFailed, "cancelled")
			return &ExecutionResult{Status: verificationrun.StatusCancelled, ReportJSON: reportJSON, Error: runErr}
		}
		e.publishStage(ctx, run.ProjectID, stage, events.StageStatusFailed, runErr.Error())
		return &ExecutionResult{Status: verificationrun.StatusFailed, ReportJSON: reportJSON, Error: runErr}
	}

	report := out.Report
	if report == nil {
		return failedResult(errors.New("sandbox produced no report"))
	}
	if report.Skipped {
		skipErr := fmt.Errorf("sandbox unavailable: %s", report.SkipReason)
		if isRepair {
			e.restoreFailed(run.ProjectID, skipErr.Error(), log)
		}
		e.publishStage(ctx, run.ProjectID, stage, events.StageStatusSkipped, report.SkipReason)
		return &ExecutionResult{Status: verificationrun.StatusFailed, ReportJSON: reportJSON, Error: skipErr}
	}

	passed := report.Passed()

	// A repair re-stores even an unchanged archive so the stored slot
	// always matches what the sandbox last saw.
	if out.Repaired || isRepair {
		if _, err := e.store.Save(run.UserID, run.ProjectID, out.ZipPath); err != nil {
			if isRepair {
				e.restoreFailed(run.ProjectID, fmt.Sprintf("Storing repaired archive failed: %v", err), log)
			}
			return failedResult(fmt.Errorf("storing repaired archive: %w", err))
		}
	}
	if isRepair {
		stored, _ := e.store.Path(run.UserID, run.ProjectID)
		if err := e.projects.SaveArchive(ctx, run.ProjectID, stored); err != nil {
			return failedResult(fmt.Errorf("saving archive path: %w", err))
		}
		e.publishProjectStatus(ctx, run.ProjectID, project.StatusAwaitingVerification, "")
	}

	verification, err := json.MarshalIndent(report.VerificationReport(), "", "  ")
	if err != nil {
		return failedResult(fmt.Errorf("encoding verification report: %w", err))
	}
	if err := e.projects.FinishVerification(ctx, run.ProjectID, passed, string(verification)); err != nil {
		return failedResult(fmt.Errorf("finishing verification: %w", err))
	}

	summary := fmt.Sprintf("%d/%d endpoint tests passed", report.TestsPassed, report.TestsTotal)
	if passed {
		e.publishStage(ctx, run.ProjectID, stage, events.StageStatusCompleted, summary)
		e.publishProjectStatus(ctx, run.ProjectID, project.StatusCompleted, "")
	} else {
		e.publishStage(ctx, run.ProjectID, stage, events.StageStatusFailed, summary)
		e.publishProjectStatus(ctx, run.ProjectID, project.StatusFailed, summary)
	}

	log.Info("Run verdict", "passed", passed, "attempts", out.Attempts, "repaired", out.Repaired)
	return &ExecutionResult{Status: verificationrun.StatusCompleted, ReportJSON: reportJSON}
}

// seedRepair folds the client-reported failures into one fix pass
// before the sandbox sees the archive. A fixer fault or an empty
// changeset is not fatal: the loop's own evidence takes over from
// there.
func (e *Executor) seedRepair(ctx context.Context, run *ent.VerificationRun, sp *spec.Spec, files map[string]string, log *slog.Logger) {
	if run.Payload == nil || *run.Payload == "" {
		return
	}
	var req models.AutoFixRequest
	if err := json.Unmarshal([]byte(*run.Payload), &req); err != nil {
		log.Warn("Unparseable repair payload, relying on sandbox evidence", "error", err)
		return
	}
	requests := patchRequestsFromFailures(req.FailedTests)
	if len(requests) == 0 {
		return
	}

	fix, err := e.fixer.ProposeFixes(ctx, sp, files, requests)
	if err != nil {
		log.Warn("Seed fix pass failed, relying on sandbox evidence", "error", err)
		return
	}
	applied := sandbox.ApplyFixes(files, fix.Fixes)
	log.Info("Seed fix pass applied", "reported_failures", len(req.FailedTests), "files_changed", applied)
}

// patchRequestsFromFailures converts client-reported endpoint failures
// into patch requests targeting the router that serves each endpoint.
func patchRequestsFromFailures(failures []models.FailedTest) []agent.PatchRequest {
	requests := make([]agent.PatchRequest, 0, len(failures))
	for _, f := range failures {
		if f.Endpoint == "" {
			continue
		}
		requests = append(requests, agent.PatchRequest{
			File:   routerFileForEndpoint(f.Endpoint),
			Reason: fmt.Sprintf("Client-reported failure: %s %s", f.Method, f.Endpoint),
			Instructions: strings.Join([]string{
				fmt.Sprintf("The caller reports %s %s failing with: %s", f.Method, f.Endpoint, f.ErrorMessage),
				"Fix the handler so the endpoint matches the spec.",
			}, "\n"),
		})
	}
	return requests
}

// routerFileForEndpoint maps an endpoint path to the generated file
// that implements it. Rendered projects keep one router per top-level
// resource under app/routers/.
func routerFileForEndpoint(endpoint string) string {
	seg := strings.Trim(endpoint, "/")
	if i := strings.IndexByte(seg, '/'); i >= 0 {
		seg = seg[:i]
	}
	switch seg {
	case "", "health", "docs", "openapi.json":
		return "app/main.py"
	case "auth":
		return "app/auth.py"
	}
	return "app/routers/" + seg + ".py"
}

// restoreFailed returns a repair-run project to failed so it does not
// sit in generating forever. The service detaches its own write
// context, so a cancelled run context is fine here.
func (e *Executor) restoreFailed(projectID, reason string, log *slog.Logger) {
	if err := e.projects.Fail(context.Background(), projectID, reason); err != nil {
		log.Error("Failed to restore project to failed after repair fault", "error", err)
		return
	}
	e.publishProjectStatus(context.Background(), projectID, project.StatusFailed, reason)
}

func marshalRunReport(out *sandbox.Outcome, runErr error) string {
	if out == nil {
		return ""
	}
	r := runReport{
		Attempts: out.Attempts,
		Repaired: out.Repaired,
		Sandbox:  out.Report,
		Review:   out.Review,
	}
	if out.Report != nil {
		r.Passed = out.Report.Passed()
	}
	if runErr != nil {
		r.Error = runErr.Error()
	}
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}

func failedResult(err error) *ExecutionResult {
	return &ExecutionResult{Status: verificationrun.StatusFailed, Error: err}
}

func (e *Executor) publishRunAttempt(ctx context.Context, run *ent.VerificationRun, attempt int) {
	if e.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := e.publisher.PublishRunStatus(ctx, run.ProjectID, events.RunStatusPayload{
		Type:      events.EventTypeRunStatus,
		ProjectID: run.ProjectID,
		RunID:     run.ID,
		Status:    verificationrun.StatusRunning,
		Attempt:   attempt,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}); err != nil {
		slog.Warn("Failed to publish run attempt", "run_id", run.ID, "attempt", attempt, "error", err)
	}
}

func (e *Executor) publishStage(ctx context.Context, projectID, stage, status, message string) {
	if e.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := e.publisher.PublishStageStatus(ctx, projectID, events.StageStatusPayload{
		Type:      events.EventTypeStageStatus,
		ProjectID: projectID,
		Stage:     stage,
		Status:    status,
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}); err != nil {
		slog.Warn("Failed to publish stage status", "project_id", projectID, "stage", stage, "error", err)
	}
}

func (e *Executor) publishProjectStatus(ctx context.Context, projectID string, status project.Status, errMsg string) {
	if e.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := e.publisher.PublishProjectStatus(ctx, projectID, events.ProjectStatusPayload{
		Type:      events.EventTypeProjectStatus,
		ProjectID: projectID,
		Status:    status,
		Error:     errMsg,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}); err != nil {
		slog.Warn("Failed to publish project status", "project_id", projectID, "status", status, "error", err)
	}
}
