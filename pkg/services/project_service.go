package services

import (
	"context"
	"fmt"
	"time"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/project"
	"github.com/forgeworks/forge/pkg/models"
	"github.com/google/uuid"
)

// ProjectService manages generation project lifecycle. Pipeline stage
// transitions are single-row updates; each stage boundary calls exactly
// one mutation method here.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// Create opens a new project in pending state.
func (s *ProjectService) Create(httpCtx context.Context, params models.CreateProjectParams) (*ent.Project, error) {
	if params.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if params.ProjectName == "" {
		return nil, NewValidationError("project_name", "required")
	}
	if params.Prompt == "" {
		return nil, NewValidationError("prompt", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	proj, err := s.client.Project.Create().
		SetID(uuid.New().String()).
		SetUserID(params.UserID).
		SetProjectName(params.ProjectName).
		SetPrompt(params.Prompt).
		SetStatus(project.StatusPending).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return proj, nil
}

// Get retrieves a project scoped to its owner. A project owned by a
// different user yields ErrNotFound, never a permission error.
func (s *ProjectService) Get(ctx context.Context, userID, projectID string) (*ent.Project, error) {
	if projectID == "" {
		return nil, NewValidationError("project_id", "required")
	}

	proj, err := s.client.Project.Query().
		Where(
			project.IDEQ(projectID),
			project.UserIDEQ(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return proj, nil
}

// List returns the owner's projects with filtering and pagination,
// newest first.
func (s *ProjectService) List(ctx context.Context, userID string, filters models.ProjectFilters) (*models.ProjectListResponse, error) {
	query := s.client.Project.Query().
		Where(project.UserIDEQ(userID))

	if filters.Status != "" {
		query = query.Where(project.StatusEQ(project.Status(filters.Status)))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	projects, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return &models.ProjectListResponse{
		Projects:   projects,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// Delete removes a project and everything cascading from it (threads,
// runs, events). Scoped to the owner.
func (s *ProjectService) Delete(httpCtx context.Context, userID, projectID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	count, err := s.client.Project.Delete().
		Where(
			project.IDEQ(projectID),
			project.UserIDEQ(userID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePromptForRefine overwrites the prompt and rewinds the project to
// pending so the pipeline can run again. Prior artifacts stay in place
// until the new run overwrites them.
func (s *ProjectService) UpdatePromptForRefine(ctx context.Context, projectID, prompt string) (*ent.Project, error) {
	if prompt == "" {
		return nil, NewValidationError("prompt", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	proj, err := s.client.Project.UpdateOneID(projectID).
		SetPrompt(prompt).
		SetStatus(project.StatusPending).
		ClearErrorMessage().
		Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update prompt: %w", err)
	}
	return proj, nil
}

// MarkGenerating transitions pending → generating at spec-agent start.
func (s *ProjectService) MarkGenerating(ctx context.Context, projectID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Project.UpdateOneID(projectID).
		SetStatus(project.StatusGenerating).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark project generating: %w", err)
	}
	return nil
}

// SaveSpec persists the accepted spec, the model that produced it, and the
// project name the spec declared. Projects created from a bare prompt start
// with a placeholder name; this is where they get their real one.
func (s *ProjectService) SaveSpec(ctx context.Context, projectID, projectName, specJSON, modelUsed string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Project.UpdateOneID(projectID).
		SetProjectName(projectName).
		SetSpecJSON(specJSON).
		SetModelUsed(modelUsed).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save spec: %w", err)
	}
	return nil
}

// SaveValidation persists the reviewer verdict.
func (s *ProjectService) SaveValidation(ctx context.Context, projectID, validationJSON string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Project.UpdateOneID(projectID).
		SetValidationJSON(validationJSON).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save validation: %w", err)
	}
	return nil
}

// SaveArchive records the stored archive and transitions the project to
// awaiting_verification in the same update.
func (s *ProjectService) SaveArchive(ctx context.Context, projectID, zipPath string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Project.UpdateOneID(projectID).
		SetZipPath(zipPath).
		SetStatus(project.StatusAwaitingVerification).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save archive path: %w", err)
	}
	return nil
}

// FinishVerification resolves awaiting_verification with the report.
func (s *ProjectService) FinishVerification(ctx context.Context, projectID string, passed bool, verificationJSON string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status := project.StatusCompleted
	if !passed {
		status = project.StatusFailed
	}

	err := s.client.Project.UpdateOneID(projectID).
		SetStatus(status).
		SetVerificationJSON(verificationJSON).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to finish verification: %w", err)
	}
	return nil
}

// Fail transitions the project to failed with a reason. Partial artifacts
// written by earlier stages are left intact.
func (s *ProjectService) Fail(ctx context.Context, projectID, errorMessage string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Project.UpdateOneID(projectID).
		SetStatus(project.StatusFailed).
		SetErrorMessage(errorMessage).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark project failed: %w", err)
	}
	return nil
}
