// Package models contains request parameters, filters, and response
// envelopes shared between the HTTP layer and the service layer.
package models

import "github.com/forgeworks/forge/ent"

// CreateProjectParams contains fields for creating a generation project.
type CreateProjectParams struct {
	UserID      string `json:"user_id"`
	ProjectName string `json:"project_name"`
	Prompt      string `json:"prompt"`
}

// ProjectFilters contains filtering options for listing a user's projects.
type ProjectFilters struct {
	Status string `json:"status,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// ProjectListResponse contains a paginated project list.
type ProjectListResponse struct {
	Projects   []*ent.Project `json:"projects"`
	TotalCount int            `json:"total_count"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}
