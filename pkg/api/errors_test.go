package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/pkg/pipeline"
	"github.com/forgeworks/forge/pkg/rag"
	"github.com/forgeworks/forge/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("name", "missing field"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "missing field",
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "already exists maps to 409",
			err:        fmt.Errorf("wrapped: %w", services.ErrAlreadyExists),
			expectCode: http.StatusConflict,
			expectMsg:  "resource already exists",
		},
		{
			name:       "unsupported file maps to 400",
			err:        fmt.Errorf("%w: %q", rag.ErrUnsupportedFile, ".exe"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "unsupported file type",
		},
		{
			name:       "file too large maps to 413",
			err:        fmt.Errorf("%w: file is 9000000 bytes", rag.ErrFileTooLarge),
			expectCode: http.StatusRequestEntityTooLarge,
			expectMsg:  "file too large",
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			mapServiceError(c, tt.err)

			assert.Equal(t, tt.expectCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectMsg)
		})
	}
}

func TestWriteGenerationFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	writeGenerationFailure(c, &pipeline.Failure{
		ProjectID: "proj-1",
		Stage:     "spec",
		Errors:    []string{"Spec generation failed: quota exhausted"},
		Warnings:  []string{"Document context unavailable"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp GenerationFailureResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "proj-1", resp.ProjectID)
	assert.Equal(t, "spec", resp.Stage)
	assert.Equal(t, []string{"Spec generation failed: quota exhausted"}, resp.Errors)
	assert.Equal(t, []string{"Document context unavailable"}, resp.Warnings)
}
