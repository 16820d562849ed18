package api

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/forgeworks/forge/ent/project"
	"github.com/forgeworks/forge/pkg/models"
)

// listProjectsHandler handles GET /api/v1/projects.
func (s *Server) listProjectsHandler(c *gin.Context) {
	var filters models.ProjectFilters

	if v := c.Query("status"); v != "" {
		if err := project.StatusValidator(project.Status(v)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + v})
			return
		}
		filters.Status = v
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			filters.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}

	result, err := s.projectService.List(c.Request.Context(), userID(c), filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	summaries := make([]ProjectSummary, len(result.Projects))
	for i, p := range result.Projects {
		summaries[i] = projectSummary(p)
	}
	c.JSON(http.StatusOK, ProjectListResponse{
		Projects:   summaries,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// getProjectHandler handles GET /api/v1/projects/:id.
func (s *Server) getProjectHandler(c *gin.Context) {
	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project id is required"})
		return
	}

	proj, err := s.projectService.Get(c.Request.Context(), userID(c), projectID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, projectDetail(proj))
}

// downloadProjectHandler handles GET /api/v1/projects/:id/download.
func (s *Server) downloadProjectHandler(c *gin.Context) {
	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project id is required"})
		return
	}

	proj, err := s.projectService.Get(c.Request.Context(), userID(c), projectID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !hasArchive(proj) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No ZIP file available for this project"})
		return
	}
	if _, err := os.Stat(*proj.ZipPath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ZIP file not found on disk"})
		return
	}

	c.FileAttachment(*proj.ZipPath, proj.ProjectName+".zip")
}

// deleteProjectHandler handles DELETE /api/v1/projects/:id. Stored files
// go first so a row-delete fault cannot strand an invisible archive.
func (s *Server) deleteProjectHandler(c *gin.Context) {
	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project id is required"})
		return
	}

	uid := userID(c)
	if _, err := s.projectService.Get(c.Request.Context(), uid, projectID); err != nil {
		mapServiceError(c, err)
		return
	}

	if s.store != nil {
		if err := s.store.Delete(uid, projectID); err != nil {
			slog.Warn("Deleting project archive failed", "project_id", projectID, "error", err)
		}
	}
	if err := s.projectService.Delete(c.Request.Context(), uid, projectID); err != nil {
		mapServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
