package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forgeworks/forge/pkg/pipeline"
	"github.com/forgeworks/forge/pkg/rag"
	"github.com/forgeworks/forge/pkg/services"
)

// mapServiceError writes the HTTP response for a service-layer error.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	case errors.Is(err, rag.ErrUnsupportedFile):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, rag.ErrFileTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	default:
		slog.Error("Unexpected service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// writeGenerationFailure reports a pipeline fault. The project row is
// already marked failed by the time the Failure surfaces; the client
// gets the stage errors plus the id so it can inspect the project.
func writeGenerationFailure(c *gin.Context, f *pipeline.Failure) {
	c.JSON(http.StatusUnprocessableEntity, GenerationFailureResponse{
		ProjectID: f.ProjectID,
		Stage:     f.Stage,
		Errors:    f.Errors,
		Warnings:  f.Warnings,
	})
}
