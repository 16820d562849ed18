package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/forgeworks/forge/pkg/config"
)

func chatContext(rec *httptest.ResponseRecorder, projectID, threadID, body string) *gin.Context {
	c, _ := gin.CreateTestContext(rec)
	c.Request = postJSON("/api/v1/projects/"+projectID+"/threads/"+threadID+"/chat", body)
	c.Params = gin.Params{
		{Key: "id", Value: projectID},
		{Key: "tid", Value: threadID},
	}
	return c
}

func TestChatHandler_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	registry := config.NewModelRegistry(map[string]*config.ModelConfig{
		"known-model": {Provider: "google", Tier: "primary"},
	}, "known-model")
	s := &Server{config: &config.Config{Models: registry}}

	tests := []struct {
		name       string
		projectID  string
		threadID   string
		body       string
		expectCode int
		expectMsg  string
	}{
		{
			name:       "missing project id",
			projectID:  "",
			threadID:   "t1",
			body:       `{"message": "hi"}`,
			expectCode: http.StatusBadRequest,
			expectMsg:  "project id is required",
		},
		{
			name:       "missing thread id",
			projectID:  "p1",
			threadID:   "",
			body:       `{"message": "hi"}`,
			expectCode: http.StatusBadRequest,
			expectMsg:  "thread id is required",
		},
		{
			name:       "malformed body",
			projectID:  "p1",
			threadID:   "t1",
			body:       `{"message":`,
			expectCode: http.StatusBadRequest,
			expectMsg:  "invalid request body",
		},
		{
			name:       "blank message",
			projectID:  "p1",
			threadID:   "t1",
			body:       `{"message": "   "}`,
			expectCode: http.StatusBadRequest,
			expectMsg:  "message is required",
		},
		{
			name:       "unknown model",
			projectID:  "p1",
			threadID:   "t1",
			body:       `{"message": "build me an api", "model": "gpt-9000"}`,
			expectCode: http.StatusBadRequest,
			expectMsg:  "unknown model: gpt-9000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := chatContext(rec, tt.projectID, tt.threadID, tt.body)

			s.chatHandler(c)

			assert.Equal(t, tt.expectCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectMsg)
		})
	}
}

func TestCreateThreadHandler_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}

	t.Run("missing project id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = postJSON("/api/v1/projects//threads", `{"title": "x"}`)

		s.createThreadHandler(c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "project id is required")
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = postJSON("/api/v1/projects/p1/threads", `{"title":`)
		c.Params = gin.Params{{Key: "id", Value: "p1"}}

		s.createThreadHandler(c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid request body")
	})
}

func TestGetThreadHandler_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/projects/p1/threads/", nil)
	c.Params = gin.Params{{Key: "id", Value: "p1"}}

	s.getThreadHandler(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "thread id is required")
}
