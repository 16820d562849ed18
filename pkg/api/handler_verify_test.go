package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestVerifyReportHandler_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}

	tests := []struct {
		name      string
		projectID string
		body      string
		expectMsg string
	}{
		{
			name:      "missing project id",
			projectID: "",
			body:      `{"passed": true, "results": [{"endpoint": "/tasks", "method": "GET", "passed": true}]}`,
			expectMsg: "project id is required",
		},
		{
			name:      "malformed body",
			projectID: "p1",
			body:      `{"passed":`,
			expectMsg: "invalid request body",
		},
		{
			name:      "empty results",
			projectID: "p1",
			body:      `{"passed": true, "results": []}`,
			expectMsg: "results are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = postJSON("/api/v1/projects/"+tt.projectID+"/verify-report", tt.body)
			c.Params = gin.Params{{Key: "id", Value: tt.projectID}}

			s.verifyReportHandler(c)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectMsg)
		})
	}
}

func TestFixHandler_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}

	tests := []struct {
		name      string
		projectID string
		body      string
		expectMsg string
	}{
		{
			name:      "missing project id",
			projectID: "",
			body:      `{"attempt_number": 1, "failed_tests": [{"method": "GET", "endpoint": "/tasks", "error_message": "500"}]}`,
			expectMsg: "project id is required",
		},
		{
			name:      "malformed body",
			projectID: "p1",
			body:      `{"failed_tests":`,
			expectMsg: "invalid request body",
		},
		{
			name:      "no failed tests",
			projectID: "p1",
			body:      `{"attempt_number": 1, "failed_tests": []}`,
			expectMsg: "failed_tests are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = postJSON("/api/v1/projects/"+tt.projectID+"/fix", tt.body)
			c.Params = gin.Params{{Key: "id", Value: tt.projectID}}

			s.fixHandler(c)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectMsg)
		})
	}
}

func TestRunHandlers_RequireID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}

	t.Run("get run", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/runs/", nil)

		s.getRunHandler(c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "run id is required")
	})

	t.Run("latest run", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/projects//runs/latest", nil)

		s.latestRunHandler(c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "project id is required")
	})

	t.Run("verify run", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/projects//verify", nil)

		s.verifyRunHandler(c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "project id is required")
	})
}
