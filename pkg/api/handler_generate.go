package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/forgeworks/forge/ent/message"
	"github.com/forgeworks/forge/ent/project"
	"github.com/forgeworks/forge/ent/verificationrun"
	"github.com/forgeworks/forge/pkg/models"
	"github.com/forgeworks/forge/pkg/pipeline"
	"github.com/forgeworks/forge/pkg/spec"
)

// maxSpecBodyBytes bounds a submitted spec document. Far above any real
// spec; only there to stop unbounded reads.
const maxSpecBodyBytes = 1 << 20

// generateHandler handles POST /api/v1/generate: a complete spec in, a
// rendered archive out. Review rejection answers 422 without creating a
// project row, matching the prompt path where rejection happens after
// the row exists.
func (s *Server) generateHandler(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxSpecBodyBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read request body"})
		return
	}
	if len(body) > maxSpecBodyBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "spec document too large"})
		return
	}

	sp, err := spec.Parse(string(body))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sp.Normalize()
	if err := sp.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review := spec.Review(sp)
	if !review.Valid {
		c.JSON(http.StatusUnprocessableEntity, GenerationFailureResponse{
			Errors:   review.Errors,
			Warnings: review.Warnings,
		})
		return
	}

	result, err := s.pipeline.RunFromSpec(c.Request.Context(), userID(c), sp)
	if err != nil {
		var f *pipeline.Failure
		if errors.As(err, &f) {
			writeGenerationFailure(c, f)
			return
		}
		mapServiceError(c, err)
		return
	}

	// Reviewer warnings ride along even though the run carried none of
	// its own: the submitted spec is the only warning source here.
	resp := generateResponse(result)
	if len(resp.Warnings) == 0 {
		resp.Warnings = review.Warnings
	}
	c.JSON(http.StatusCreated, resp)
}

// generateFromPromptHandler handles POST /api/v1/generate-from-prompt:
// the full pipeline from natural language, then a seeded conversation
// thread and, unless skipped, a queued sandbox verification run.
func (s *Server) generateFromPromptHandler(c *gin.Context) {
	var req PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}
	if req.Model != "" && !s.config.Models.Has(req.Model) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown model: " + req.Model})
		return
	}

	uid := userID(c)
	result, err := s.pipeline.Run(c.Request.Context(), pipeline.Params{
		UserID: uid,
		Prompt: req.Prompt,
		Model:  req.Model,
	})
	if err != nil {
		var f *pipeline.Failure
		if errors.As(err, &f) {
			writeGenerationFailure(c, f)
			return
		}
		mapServiceError(c, err)
		return
	}

	s.seedInitialThread(c.Request.Context(), result, req.Prompt)

	if !req.SkipVerify {
		_, err := s.runService.Enqueue(c.Request.Context(), models.EnqueueRunParams{
			ProjectID: result.ProjectID,
			UserID:    uid,
			Kind:      verificationrun.KindVerify,
		})
		if err != nil {
			slog.Warn("Queueing verification after generation failed",
				"project_id", result.ProjectID, "error", err)
		}
	}

	c.JSON(http.StatusCreated, generateResponse(result))
}

// seedInitialThread gives a prompt-driven project its first conversation
// so the chat surface has somewhere to continue. Best effort: the archive
// is already stored, so a thread fault only costs the seeded history.
func (s *Server) seedInitialThread(ctx context.Context, result *pipeline.Result, prompt string) {
	name := result.Spec.ProjectName
	thread, err := s.threadService.Create(ctx, result.ProjectID, "Initial build – "+name)
	if err != nil {
		slog.Warn("Creating initial thread failed", "project_id", result.ProjectID, "error", err)
		return
	}
	_, err = s.threadService.AddMessage(ctx, models.CreateMessageParams{
		ThreadID: thread.ID,
		Role:     message.RoleUser,
		Content:  prompt,
	})
	if err != nil {
		slog.Warn("Seeding thread prompt failed", "thread_id", thread.ID, "error", err)
		return
	}
	reply := fmt.Sprintf("Project **%s** generated successfully. Your backend is ready to download.", name)
	_, err = s.threadService.AddMessage(ctx, models.CreateMessageParams{
		ThreadID: thread.ID,
		Role:     message.RoleAgent,
		Content:  reply,
	})
	if err != nil {
		slog.Warn("Seeding thread reply failed", "thread_id", thread.ID, "error", err)
	}
}

func generateResponse(r *pipeline.Result) GenerateResponse {
	return GenerateResponse{
		ProjectID:   r.ProjectID,
		ProjectName: r.Spec.ProjectName,
		Status:      string(project.StatusAwaitingVerification),
		DownloadURL: downloadURL(r.ProjectID),
		Warnings:    r.Warnings,
	}
}
