package api

import (
	"encoding/json"
	"time"

	"github.com/forgeworks/forge/ent"
)

// TokenResponse is the password-grant response of POST /api/v1/auth/token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ModelInfo is one catalog entry in GET /api/v1/models.
type ModelInfo struct {
	ID        string `json:"id"`
	Provider  string `json:"provider"`
	Tier      string `json:"tier"`
	Fallback  string `json:"fallback,omitempty"`
	IsDefault bool   `json:"is_default"`
}

// ModelsResponse is returned by GET /api/v1/models.
type ModelsResponse struct {
	Default string      `json:"default"`
	Models  []ModelInfo `json:"models"`
}

// GenerateResponse is returned when a generation run lands an archive.
type GenerateResponse struct {
	ProjectID   string   `json:"project_id"`
	ProjectName string   `json:"project_name"`
	Status      string   `json:"status"`
	DownloadURL string   `json:"download_url"`
	Warnings    []string `json:"warnings,omitempty"`
}

// GenerationFailureResponse reports a rejected or failed generation (422).
// ProjectID is empty when review rejected the spec before a row existed.
type GenerationFailureResponse struct {
	ProjectID string   `json:"project_id,omitempty"`
	Stage     string   `json:"stage,omitempty"`
	Errors    []string `json:"errors"`
	Warnings  []string `json:"warnings,omitempty"`
}

// ProjectSummary is the list view of a project.
type ProjectSummary struct {
	ID          string    `json:"id"`
	ProjectName string    `json:"project_name"`
	Prompt      string    `json:"prompt"`
	Status      string    `json:"status"`
	ModelUsed   string    `json:"model_used,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectListResponse is returned by GET /api/v1/projects.
type ProjectListResponse struct {
	Projects   []ProjectSummary `json:"projects"`
	TotalCount int              `json:"total_count"`
	Limit      int              `json:"limit"`
	Offset     int              `json:"offset"`
}

// ProjectDetail adds the stored JSON artifacts to the summary view.
type ProjectDetail struct {
	ProjectSummary
	Spec         json.RawMessage `json:"spec,omitempty"`
	Validation   json.RawMessage `json:"validation,omitempty"`
	Verification json.RawMessage `json:"verification,omitempty"`
	ErrorMessage string          `json:"error_message,omitempty"`
	DownloadURL  string          `json:"download_url,omitempty"`
}

// ChatResponse is returned by POST .../threads/:tid/chat.
type ChatResponse struct {
	Reply       string   `json:"reply"`
	Intent      string   `json:"intent"`
	ProjectID   string   `json:"project_id"`
	ProjectName string   `json:"project_name"`
	Status      string   `json:"status"`
	DownloadURL string   `json:"download_url,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
}

// RunResponse acknowledges an enqueued verification or repair run.
type RunResponse struct {
	RunID     string `json:"run_id"`
	ProjectID string `json:"project_id"`
	Kind      string `json:"kind"`
	Status    string `json:"status"`
}

// DocumentUploadResponse is returned by POST /api/v1/documents.
type DocumentUploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	Message      string `json:"message"`
	Deduplicated bool   `json:"deduplicated,omitempty"`
}

// DocumentSummary is one entry in GET /api/v1/documents.
type DocumentSummary struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	SizeBytes  int64     `json:"size_bytes"`
	ChunkCount int       `json:"chunk_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// HealthCheck is one component's verdict inside HealthResponse.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

func projectSummary(p *ent.Project) ProjectSummary {
	s := ProjectSummary{
		ID:          p.ID,
		ProjectName: p.ProjectName,
		Prompt:      p.Prompt,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.ModelUsed != nil {
		s.ModelUsed = *p.ModelUsed
	}
	return s
}

func projectDetail(p *ent.Project) ProjectDetail {
	d := ProjectDetail{ProjectSummary: projectSummary(p)}
	if p.SpecJSON != nil && *p.SpecJSON != "" {
		d.Spec = json.RawMessage(*p.SpecJSON)
	}
	if p.ValidationJSON != nil && *p.ValidationJSON != "" {
		d.Validation = json.RawMessage(*p.ValidationJSON)
	}
	if p.VerificationJSON != nil && *p.VerificationJSON != "" {
		d.Verification = json.RawMessage(*p.VerificationJSON)
	}
	if p.ErrorMessage != nil {
		d.ErrorMessage = *p.ErrorMessage
	}
	if hasArchive(p) {
		d.DownloadURL = downloadURL(p.ID)
	}
	return d
}

func hasArchive(p *ent.Project) bool {
	return p.ZipPath != nil && *p.ZipPath != ""
}

func downloadURL(projectID string) string {
	return "/api/v1/projects/" + projectID + "/download"
}
