// Package pipeline drives a project from prompt to stored archive: spec
// generation, review, rendering, and packaging, with every stage boundary
// recorded as a single update to the project row. Sandbox verification is
// not part of the pipeline; a finished project parks in
// awaiting_verification until a verification run picks it up.
package pipeline

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
	"github.com/forgeworks/forge/pkg/agent"
	"github.com/forgeworks/forge/pkg/archive"
	"github.com/forgeworks/forge/pkg/events"
	"github.com/forgeworks/forge/pkg/models"
	"github.com/forgeworks/forge/pkg/render"
	"github.com/forgeworks/forge/pkg/report"
	"github.com/forgeworks/forge/pkg/spec"
	"github.com/forgeworks/forge/pkg/storage"
)

// placeholderName fills project_name until the generated spec supplies the
// real one.
const placeholderName = "pending"

// CancelledMarker prefixes error_message when a run was cut short by
// context cancellation rather than a stage fault.
const CancelledMarker = "cancelled"

// eventPublishTimeout bounds each best-effort event publish so a slow
// database never stalls the pipeline.
const eventPublishTimeout = 3 * time.Second

// ErrSpecRejected is wrapped into the Failure returned when review rejects
// a generated or submitted spec.
var ErrSpecRejected = errors.New("pipeline: spec rejected by review")

// SpecGenerator produces a spec from a prompt. *agent.SpecAgent implements it.
type SpecGenerator interface {
	GenerateSpec(ctx context.Context, params agent.GenerateSpecParams) (*spec.Spec, string, error)
}

// ContextRetriever supplies document context for spec generation.
// *rag.Service implements it.
type ContextRetriever interface {
	RetrieveContext(ctx context.Context, userID, query string, topK int) (string, error)
}

// Publisher emits progress events. *events.EventPublisher implements it.
type Publisher interface {
	PublishProjectStatus(ctx context.Context, projectID string, payload events.ProjectStatusPayload) error
	PublishStageStatus(ctx context.Context, projectID string, payload events.StageStatusPayload) error
}

// ProjectStore is the slice of the project service the pipeline drives.
type ProjectStore interface {
	Create(ctx context.Context, params models.CreateProjectParams) (*ent.Project, error)
	UpdatePromptForRefine(ctx context.Context, projectID, prompt string) (*ent.Project, error)
	MarkGenerating(ctx context.Context, projectID string) error
	SaveSpec(ctx context.Context, projectID, projectName, specJSON, modelUsed string) error
	SaveValidation(ctx context.Context, projectID, validationJSON string) error
	SaveArchive(ctx context.Context, projectID, zipPath string) error
	Fail(ctx context.Context, projectID, errorMessage string) error
}

// Pipeline wires the generation stages together. Construct with New.
type Pipeline struct {
	projects  ProjectStore
	specs     SpecGenerator
	retriever ContextRetriever // optional
	publisher Publisher        // optional
	store     *storage.Store
	staging   string
}

// New panics on missing required collaborators so miswiring surfaces at
// startup. retriever and publisher may be nil: runs then proceed without
// document context and without progress events.
func New(projects ProjectStore, specs SpecGenerator, retriever ContextRetriever, publisher Publisher, store *storage.Store, stagingDir string) *Pipeline {
	if projects == nil {
		panic("pipeline: nil project store")
	}
	if specs == nil {
		panic("pipeline: nil spec generator")
	}
	if store == nil {
		panic("pipeline: nil archive store")
	}
	if stagingDir == "" {
		panic("pipeline: empty staging dir")
	}
	return &Pipeline{
		projects:  projects,
		specs:     specs,
		retriever: retriever,
		publisher: publisher,
		store:     store,
		staging:   stagingDir,
	}
}

// Params describes one prompt-driven generation request.
type Params struct {
	UserID string

	// ProjectID resumes an existing project (a refinement): the prompt
	// overwrites the stored one and the status machine resets to pending.
	// Empty creates a new project. Ownership checks are the caller's.
	ProjectID string

	Prompt string

	// Model selects the head of the fallback chain; empty uses the default.
	Model string

	History []agent.Turn

	// TopK bounds document context retrieval; 0 uses the retriever default.
	TopK int
}

// Result reports a finished run. The archive is stored and the project row
// sits in awaiting_verification.
type Result struct {
	ProjectID string
	Spec      *spec.Spec
	ModelUsed string
	ZipPath   string
	Warnings  []string
}

// Failure is returned when a stage fails after the project row exists.
// The row is already marked failed by the time it surfaces.
type Failure struct {
	ProjectID string
	Stage     string
	Errors    []string
	Warnings  []string
	Err       error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("pipeline stage %s: %s", f.Stage, strings.Join(f.Errors, "; "))
}

// Unwrap exposes the underlying cause for errors.Is and errors.As.
func (f *Failure) Unwrap() error { return f.Err }

// Run executes the full pipeline: create or resume the project, generate a
// spec from the prompt with document context and conversation history,
// review it, render the project files, and package the stored archive.
func (p *Pipeline) Run(ctx context.Context, params Params) (*Result, error) {
	proj, err := p.prepare(ctx, params)
	if err != nil {
		return nil, err
	}
	projectID := proj.ID
	p.publishStatus(ctx, projectID, project.StatusPending, "")

	if err := p.projects.MarkGenerating(ctx, projectID); err != nil {
		return nil, fmt.Errorf("marking project generating: %w", err)
	}
	p.publishStatus(ctx, projectID, project.StatusGenerating, "")

	p.publishStage(ctx, projectID, events.StageSpec, events.StageStatusStarted, "")
	docContext, warnings := p.retrieve(ctx, params)
	generated, modelUsed, err := p.specs.GenerateSpec(ctx, agent.GenerateSpecParams{
		Prompt:  params.Prompt,
		Model:   params.Model,
		Context: docContext,
		History: params.History,
	})
	if err != nil {
		return nil, p.fail(ctx, &Failure{
			ProjectID: projectID,
			Stage:     events.StageSpec,
			Errors:    []string{fmt.Sprintf("Spec generation failed: %v", err)},
			Warnings:  warnings,
			Err:       err,
		})
	}
	if err := p.persistSpec(ctx, projectID, generated, modelUsed); err != nil {
		return nil, p.fail(ctx, &Failure{
			ProjectID: projectID,
			Stage:     events.StageSpec,
			Errors:    []string{fmt.Sprintf("Persisting spec failed: %v", err)},
			Warnings:  warnings,
			Err:       err,
		})
	}
	p.publishStage(ctx, projectID, events.StageSpec, events.StageStatusCompleted, "model "+modelUsed)

	return p.validateAndPackage(ctx, params.UserID, projectID, params.Prompt, generated, modelUsed, warnings)
}

// RunFromSpec executes the pipeline for a caller-supplied spec: no agent,
// no document context. The spec still goes through review, and rejection
// marks the project failed exactly as in Run. The stored prompt falls back
// to the spec's description since no natural-language request exists.
func (p *Pipeline) RunFromSpec(ctx context.Context, userID string, s *spec.Spec) (*Result, error) {
	if s == nil {
		return nil, errors.New("pipeline: nil spec")
	}
	prompt := strings.TrimSpace(s.Description)
	if prompt == "" {
		prompt = "Submitted as a complete specification"
	}
	proj, err := p.projects.Create(ctx, models.CreateProjectParams{
		UserID:      userID,
		ProjectName: s.ProjectName,
		Prompt:      prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	projectID := proj.ID
	p.publishStatus(ctx, projectID, project.StatusPending, "")

	if err := p.projects.MarkGenerating(ctx, projectID); err != nil {
		return nil, fmt.Errorf("marking project generating: %w", err)
	}
	p.publishStatus(ctx, projectID, project.StatusGenerating, "")

	if err := p.persistSpec(ctx, projectID, s, ""); err != nil {
		return nil, p.fail(ctx, &Failure{
			ProjectID: projectID,
			Stage:     events.StageSpec,
			Errors:    []string{fmt.Sprintf("Persisting spec failed: %v", err)},
			Err:       err,
		})
	}

	// The report gets no prompt line: nothing was asked in prose.
	return p.validateAndPackage(ctx, userID, projectID, "", s, "", nil)
}

// prepare creates the project row, or on a refinement overwrites the prompt
// and resets the status machine to pending.
func (p *Pipeline) prepare(ctx context.Context, params Params) (*ent.Project, error) {
	if params.ProjectID != "" {
		proj, err := p.projects.UpdatePromptForRefine(ctx, params.ProjectID, params.Prompt)
		if err != nil {
			return nil, fmt.Errorf("resuming project %s: %w", params.ProjectID, err)
		}
		return proj, nil
	}
	proj, err := p.projects.Create(ctx, models.CreateProjectParams{
		UserID:      params.UserID,
		ProjectName: placeholderName,
		Prompt:      params.Prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	return proj, nil
}

// retrieve fetches document context for the prompt. Retrieval faults do not
// stop generation; the run proceeds without context and carries a warning.
func (p *Pipeline) retrieve(ctx context.Context, params Params) (string, []string) {
	if p.retriever == nil {
		return "", nil
	}
	docContext, err := p.retriever.RetrieveContext(ctx, params.UserID, params.Prompt, params.TopK)
	if err != nil {
		slog.Warn("document context retrieval failed",
			"user_id", params.UserID, "error", err)
		return "", []string{fmt.Sprintf("Document context unavailable: %v", err)}
	}
	return docContext, nil
}

func (p *Pipeline) persistSpec(ctx context.Context, projectID string, s *spec.Spec, modelUsed string) error {
	specJSON, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing spec: %w", err)
	}
	return p.projects.SaveSpec(ctx, projectID, s.ProjectName, string(specJSON), modelUsed)
}

// validateAndPackage runs the tail shared by both entry points: review the
// spec, persist the verdict, render the files, and package the archive.
func (p *Pipeline) validateAndPackage(ctx context.Context, userID, projectID, prompt string, s *spec.Spec, modelUsed string, warnings []string) (*Result, error) {
	p.publishStage(ctx, projectID, events.StageValidate, events.StageStatusStarted, "")
	validation := spec.Review(s)
	validationJSON, err := json.MarshalIndent(validation, "", "  ")
	if err != nil {
		return nil, p.fail(ctx, &Failure{
			ProjectID: projectID,
			Stage:     events.StageValidate,
			Errors:    []string{fmt.Sprintf("Serializing review verdict failed: %v", err)},
			Warnings:  warnings,
			Err:       err,
		})
	}
	if err := p.projects.SaveValidation(ctx, projectID, string(validationJSON)); err != nil {
		return nil, p.fail(ctx, &Failure{
			ProjectID: projectID,
			Stage:     events.StageValidate,
			Errors:    []string{fmt.Sprintf("Persisting review verdict failed: %v", err)},
			Warnings:  warnings,
			Err:       err,
		})
	}
	warnings = append(warnings, validation.Warnings...)
	if !validation.Valid {
		return nil, p.fail(ctx, &Failure{
			ProjectID: projectID,
			Stage:     events.StageValidate,
			Errors:    append([]string{}, validation.Errors...),
			Warnings:  warnings,
			Err:       ErrSpecRejected,
		})
	}
	p.publishStage(ctx, projectID, events.StageValidate, events.StageStatusCompleted,
		strings.Join(validation.Warnings, "; "))

	p.publishStage(ctx, projectID, events.StageRender, events.StageStatusStarted, "")
	files, err := render.Render(s)
	if err != nil {
		return nil, p.fail(ctx, &Failure{
			ProjectID: projectID,
			Stage:     events.StageRender,
			Errors:    []string{fmt.Sprintf("Rendering project files failed: %v", err)},
			Warnings:  warnings,
			Err:       err,
		})
	}
	p.publishStage(ctx, projectID, events.StageRender, events.StageStatusCompleted,
		fmt.Sprintf("%d files", len(files)))

	p.publishStage(ctx, projectID, events.StagePackage, events.StageStatusStarted, "")
	stored, err := p.packageArchive(ctx, userID, projectID, prompt, s, &validation, modelUsed, files)
	if err != nil {
		return nil, p.fail(ctx, &Failure{
			ProjectID: projectID,
			Stage:     events.StagePackage,
			Errors:    []string{fmt.Sprintf("Packaging failed: %v", err)},
			Warnings:  warnings,
			Err:       err,
		})
	}
	p.publishStage(ctx, projectID, events.StagePackage, events.StageStatusCompleted, "")
	p.publishStatus(ctx, projectID, project.StatusAwaitingVerification, "")

	slog.Info("generation pipeline finished",
		"project_id", projectID, "project_name", s.ProjectName,
		"model", modelUsed, "warnings", len(warnings))

	return &Result{
		ProjectID: projectID,
		Spec:      s,
		ModelUsed: modelUsed,
		ZipPath:   stored,
		Warnings:  warnings,
	}, nil
}

// packageArchive assembles the archive, regenerates it with
// PROJECT_REPORT.md inside, and moves the final zip into user storage.
// The superseded staging zip is left for the cleanup sweeper.
func (p *Pipeline) packageArchive(ctx context.Context, userID, projectID, prompt string, s *spec.Spec, validation *spec.ReviewResult, modelUsed string, files map[string]string) (string, error) {
	if _, err := archive.Assemble(p.staging, s.ProjectName, files); err != nil {
		return "", fmt.Errorf("assembling archive: %w", err)
	}
	files["PROJECT_REPORT.md"] = report.Generate(report.Params{
		Prompt:     prompt,
		Spec:       s,
		Validation: validation,
		ModelUsed:  modelUsed,
	})
	zipPath, err := archive.Assemble(p.staging, s.ProjectName, files)
	if err != nil {
		return "", fmt.Errorf("assembling archive with report: %w", err)
	}
	stored, err := p.store.Save(userID, projectID, zipPath)
	if err != nil {
		return "", err
	}
	if err := p.projects.SaveArchive(ctx, projectID, stored); err != nil {
		return "", fmt.Errorf("persisting archive path: %w", err)
	}
	return stored, nil
}

// fail marks the project failed, emits the failure events, and returns f.
// The row update must survive a cancelled request context; the project
// service's write methods detach from it internally.
func (p *Pipeline) fail(ctx context.Context, f *Failure) error {
	message := strings.Join(f.Errors, "; ")
	if ctx.Err() != nil {
		message = CancelledMarker + ": " + message
	}
	if err := p.projects.Fail(ctx, f.ProjectID, message); err != nil {
		slog.Error("could not mark project failed",
			"project_id", f.ProjectID, "error", err)
	}
	p.publishStage(ctx, f.ProjectID, f.Stage, events.StageStatusFailed, message)
	p.publishStatus(ctx, f.ProjectID, project.StatusFailed, message)
	slog.Warn("generation pipeline failed",
		"project_id", f.ProjectID, "stage", f.Stage, "error", message)
	return f
}

// publishStatus emits a best-effort project.status event. Publishing keeps
// working after the request context is cancelled so failure events still
// reach subscribers.
func (p *Pipeline) publishStatus(ctx context.Context, projectID string, status project.Status, errMsg string) {
	if p.publisher == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventPublishTimeout)
	defer cancel()
	payload := events.ProjectStatusPayload{
		Type:      events.EventTypeProjectStatus,
		ProjectID: projectID,
		Status:    status,
		Error:     errMsg,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := p.publisher.PublishProjectStatus(pubCtx, projectID, payload); err != nil {
		slog.Warn("project status event not published",
			"project_id", projectID, "status", status, "error", err)
	}
}

// publishStage emits a best-effort stage.status event.
func (p *Pipeline) publishStage(ctx context.Context, projectID, stage, status, message string) {
	if p.publisher == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventPublishTimeout)
	defer cancel()
	payload := events.StageStatusPayload{
		Type:      events.EventTypeStageStatus,
		ProjectID: projectID,
		Stage:     stage,
		Status:    status,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := p.publisher.PublishStageStatus(pubCtx, projectID, payload); err != nil {
		slog.Warn("stage event not published",
			"project_id", projectID, "stage", stage, "status", status, "error", err)
	}
}
