package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestListProjectsHandler_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/projects?status=bogus", nil)

	s.listProjectsHandler(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid status: bogus")
}

func TestProjectHandlers_RequireID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}

	handlers := map[string]gin.HandlerFunc{
		"get":      s.getProjectHandler,
		"download": s.downloadProjectHandler,
		"delete":   s.deleteProjectHandler,
	}

	for name, handler := range handlers {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/projects/", nil)

			handler(c)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "project id is required")
		})
	}
}
