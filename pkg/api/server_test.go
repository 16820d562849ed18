package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/pkg/auth"
	"github.com/forgeworks/forge/pkg/config"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := config.NewModelRegistry(map[string]*config.ModelConfig{
		"gemini-flash": {Provider: "google", Tier: "primary"},
	}, "gemini-flash")
	return NewServer(Deps{
		Config: &config.Config{
			SecretKey:   "test-secret",
			TokenExpiry: time.Hour,
			Models:      registry,
		},
	})
}

func TestRoutesRequireAuth(t *testing.T) {
	s := testServer(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/auth/me"},
		{http.MethodGet, "/api/v1/models"},
		{http.MethodPost, "/api/v1/generate"},
		{http.MethodPost, "/api/v1/generate-from-prompt"},
		{http.MethodGet, "/api/v1/projects"},
		{http.MethodGet, "/api/v1/projects/p1"},
		{http.MethodDelete, "/api/v1/projects/p1"},
		{http.MethodGet, "/api/v1/projects/p1/download"},
		{http.MethodGet, "/api/v1/projects/p1/threads"},
		{http.MethodPost, "/api/v1/projects/p1/threads"},
		{http.MethodGet, "/api/v1/projects/p1/threads/t1"},
		{http.MethodPost, "/api/v1/projects/p1/threads/t1/chat"},
		{http.MethodPost, "/api/v1/projects/p1/verify-report"},
		{http.MethodPost, "/api/v1/projects/p1/verify"},
		{http.MethodPost, "/api/v1/projects/p1/fix"},
		{http.MethodGet, "/api/v1/projects/p1/runs/latest"},
		{http.MethodGet, "/api/v1/runs/r1"},
		{http.MethodPost, "/api/v1/documents"},
		{http.MethodGet, "/api/v1/documents"},
		{http.MethodDelete, "/api/v1/documents/d1"},
		{http.MethodGet, "/api/v1/ws"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(rt.method, rt.path, nil)

			s.Handler().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
		})
	}
}

func TestPublicRoutesBypassAuth(t *testing.T) {
	s := testServer(t)

	t.Run("register rejects bad body without auth", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader("not json"))
		req.Header.Set("Content-Type", "application/json")

		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("token rejects empty form without auth", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", strings.NewReader(""))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestValidTokenReachesHandler(t *testing.T) {
	s := testServer(t)

	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	token, err := issuer.Issue("user-1")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/models", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gemini-flash")
}

func TestUnknownRouteReturns404(t *testing.T) {
	s := testServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)

	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
