package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forgeworks/forge/ent/project"
	"github.com/forgeworks/forge/ent/verificationrun"
	"github.com/forgeworks/forge/pkg/models"
)

// verifyReportHandler handles POST /api/v1/projects/:id/verify-report:
// a client that verified the downloaded project locally posts the
// outcome, which lands the project verdict directly.
func (s *Server) verifyReportHandler(c *gin.Context) {
	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project id is required"})
		return
	}

	var report models.VerificationReport
	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(report.Results) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "results are required"})
		return
	}

	ctx := c.Request.Context()
	if _, err := s.projectService.Get(ctx, userID(c), projectID); err != nil {
		mapServiceError(c, err)
		return
	}

	reportJSON, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if err := s.projectService.FinishVerification(ctx, projectID, report.Passed, string(reportJSON)); err != nil {
		mapServiceError(c, err)
		return
	}

	status := project.StatusFailed
	if report.Passed {
		status = project.StatusCompleted
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Verification report recorded successfully.",
		"status":  status,
	})
}

// verifyRunHandler handles POST /api/v1/projects/:id/verify: queue a
// sandbox verification of the stored archive.
func (s *Server) verifyRunHandler(c *gin.Context) {
	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project id is required"})
		return
	}

	ctx := c.Request.Context()
	uid := userID(c)
	proj, err := s.projectService.Get(ctx, uid, projectID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !hasArchive(proj) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project has no archive to verify"})
		return
	}

	run, err := s.runService.Enqueue(ctx, models.EnqueueRunParams{
		ProjectID: projectID,
		UserID:    uid,
		Kind:      verificationrun.KindVerify,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, RunResponse{
		RunID:     run.ID,
		ProjectID: projectID,
		Kind:      string(run.Kind),
		Status:    string(run.Status),
	})
}

// fixHandler handles POST /api/v1/projects/:id/fix: queue a repair run
// seeded with the client-reported failures. Only failed projects
// qualify; anything else either has nothing to fix or is mid-flight.
func (s *Server) fixHandler(c *gin.Context) {
	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project id is required"})
		return
	}

	var req models.AutoFixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.FailedTests) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed_tests are required"})
		return
	}

	ctx := c.Request.Context()
	uid := userID(c)
	proj, err := s.projectService.Get(ctx, uid, projectID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if proj.Status != project.StatusFailed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Auto-fix can only be requested for failed projects."})
		return
	}
	if !hasArchive(proj) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project has no archive to repair"})
		return
	}

	payload, err := json.Marshal(req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	run, err := s.runService.Enqueue(ctx, models.EnqueueRunParams{
		ProjectID: projectID,
		UserID:    uid,
		Kind:      verificationrun.KindRepair,
		Payload:   string(payload),
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, RunResponse{
		RunID:     run.ID,
		ProjectID: projectID,
		Kind:      string(run.Kind),
		Status:    string(run.Status),
	})
}

// getRunHandler handles GET /api/v1/runs/:id.
func (s *Server) getRunHandler(c *gin.Context) {
	runID := c.Param("id")
	if runID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "run id is required"})
		return
	}

	run, err := s.runService.GetForUser(c.Request.Context(), userID(c), runID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

// latestRunHandler handles GET /api/v1/projects/:id/runs/latest.
func (s *Server) latestRunHandler(c *gin.Context) {
	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project id is required"})
		return
	}

	run, err := s.runService.LatestForProject(c.Request.Context(), userID(c), projectID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	c.JSON(http.StatusOK, run)
}
