package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/forgeworks/forge/ent"
	"github.com/forgeworks/forge/ent/message"
	"github.com/forgeworks/forge/ent/project"
	"github.com/forgeworks/forge/pkg/agent"
	"github.com/forgeworks/forge/pkg/intent"
	"github.com/forgeworks/forge/pkg/models"
	"github.com/forgeworks/forge/pkg/pipeline"
)

// chatHistoryWindow is how many prior turns a brand-new generation sees.
// Refinements get the whole thread instead: earlier requirements must
// survive into the reworked spec.
const chatHistoryWindow = 3

// listThreadsHandler handles GET /api/v1/projects/:id/threads.
func (s *Server) listThreadsHandler(c *gin.Context) {
	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project id is required"})
		return
	}

	if _, err := s.projectService.Get(c.Request.Context(), userID(c), projectID); err != nil {
		mapServiceError(c, err)
		return
	}
	threads, err := s.threadService.ListForProject(c.Request.Context(), projectID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, threads)
}

// createThreadHandler handles POST /api/v1/projects/:id/threads.
func (s *Server) createThreadHandler(c *gin.Context) {
	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project id is required"})
		return
	}

	var req CreateThreadRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	ctx := c.Request.Context()
	if _, err := s.projectService.Get(ctx, userID(c), projectID); err != nil {
		mapServiceError(c, err)
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		existing, err := s.threadService.ListForProject(ctx, projectID)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		title = fmt.Sprintf("Conversation %d", len(existing)+1)
	}

	thread, err := s.threadService.Create(ctx, projectID, title)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, thread)
}

// getThreadHandler handles GET /api/v1/projects/:id/threads/:tid.
func (s *Server) getThreadHandler(c *gin.Context) {
	projectID := c.Param("id")
	threadID := c.Param("tid")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project id is required"})
		return
	}
	if threadID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "thread id is required"})
		return
	}

	if _, err := s.projectService.Get(c.Request.Context(), userID(c), projectID); err != nil {
		mapServiceError(c, err)
		return
	}
	detail, err := s.threadService.GetDetail(c.Request.Context(), projectID, threadID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// chatHandler handles POST /api/v1/projects/:id/threads/:tid/chat. The
// user turn is persisted before anything can fail, then the classified
// intent picks the flow: hand back the existing artifact, refine the
// project in place, or build a fresh one.
func (s *Server) chatHandler(c *gin.Context) {
	projectID := c.Param("id")
	threadID := c.Param("tid")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project id is required"})
		return
	}
	if threadID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "thread id is required"})
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	if req.Model != "" && !s.config.Models.Has(req.Model) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown model: " + req.Model})
		return
	}

	ctx := c.Request.Context()
	proj, err := s.projectService.Get(ctx, userID(c), projectID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if _, err := s.threadService.GetInProject(ctx, projectID, threadID); err != nil {
		mapServiceError(c, err)
		return
	}

	// The prior turns are captured before the new message lands: the
	// message is the prompt, not history.
	prior, err := s.threadService.ListMessages(ctx, threadID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	_, err = s.threadService.AddMessage(ctx, models.CreateMessageParams{
		ThreadID: threadID,
		Role:     message.RoleUser,
		Content:  req.Message,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	switch intent.Classify(req.Message, hasArchive(proj), len(prior)) {
	case intent.Retrieve:
		s.chatRetrieve(c, proj, threadID)
	case intent.Refine:
		s.chatGenerate(c, proj, threadID, req, prior, true)
	default:
		s.chatGenerate(c, proj, threadID, req, prior, false)
	}
}

// chatRetrieve answers a request for the existing artifact without
// touching the pipeline.
func (s *Server) chatRetrieve(c *gin.Context, proj *ent.Project, threadID string) {
	reply := fmt.Sprintf("Here is your existing **%s** project. You can download it below.", proj.ProjectName)
	s.appendAgentReply(c.Request.Context(), threadID, reply)

	c.JSON(http.StatusOK, ChatResponse{
		Reply:       reply,
		Intent:      string(intent.Retrieve),
		ProjectID:   proj.ID,
		ProjectName: proj.ProjectName,
		Status:      string(project.StatusCompleted),
		DownloadURL: downloadURL(proj.ID),
	})
}

// chatGenerate runs the pipeline for a refine or generate turn. Refine
// rebuilds the same project with the full thread as context; generate
// creates a new project seeded with a short history window.
func (s *Server) chatGenerate(c *gin.Context, proj *ent.Project, threadID string, req ChatRequest, prior []*ent.Message, refine bool) {
	ctx := c.Request.Context()

	params := pipeline.Params{
		UserID: proj.UserID,
		Prompt: req.Message,
		Model:  req.Model,
	}
	if refine {
		params.ProjectID = proj.ID
		params.History = historyTurns(prior)
	} else {
		params.History = historyTurns(lastMessages(prior, chatHistoryWindow))
	}

	result, err := s.pipeline.Run(ctx, params)
	if err != nil {
		var f *pipeline.Failure
		if errors.As(err, &f) {
			s.appendAgentReply(ctx, threadID, "Generation failed: "+strings.Join(f.Errors, "; "))
			writeGenerationFailure(c, f)
			return
		}
		mapServiceError(c, err)
		return
	}

	verb, kind := "generated", intent.Generate
	if refine {
		verb, kind = "refined", intent.Refine
	}
	name := result.Spec.ProjectName
	reply := fmt.Sprintf("Successfully %s **%s**. Your backend is ready to download.", verb, name)
	s.appendAgentReply(ctx, threadID, reply)

	// A thread that had at most one turn before this request is still on
	// its placeholder title; adopt the project name.
	if len(prior) <= 1 {
		if err := s.threadService.Rename(ctx, threadID, name); err != nil {
			slog.Warn("Renaming thread failed", "thread_id", threadID, "error", err)
		}
	}

	c.JSON(http.StatusOK, ChatResponse{
		Reply:       reply,
		Intent:      string(kind),
		ProjectID:   result.ProjectID,
		ProjectName: name,
		Status:      string(project.StatusAwaitingVerification),
		DownloadURL: downloadURL(result.ProjectID),
		Warnings:    result.Warnings,
	})
}

// appendAgentReply persists the agent's turn. Best effort: the response
// already carries the reply, so a write fault only loses history.
func (s *Server) appendAgentReply(ctx context.Context, threadID, content string) {
	_, err := s.threadService.AddMessage(ctx, models.CreateMessageParams{
		ThreadID: threadID,
		Role:     message.RoleAgent,
		Content:  content,
	})
	if err != nil {
		slog.Warn("Persisting agent reply failed", "thread_id", threadID, "error", err)
	}
}

func historyTurns(msgs []*ent.Message) []agent.Turn {
	turns := make([]agent.Turn, len(msgs))
	for i, m := range msgs {
		turns[i] = agent.Turn{Role: string(m.Role), Content: m.Content}
	}
	return turns
}

func lastMessages(msgs []*ent.Message, n int) []*ent.Message {
	if len(msgs) <= n {
		return msgs
	}
	return msgs[len(msgs)-n:]
}
