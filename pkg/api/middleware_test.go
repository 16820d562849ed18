package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeworks/forge/pkg/auth"
)

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.Use(securityHeaders())
	e.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.Equal(t, "camera=(), microphone=(), geolocation=()", rec.Header().Get("Permissions-Policy"))
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newEngine := func(origins []string) *gin.Engine {
		e := gin.New()
		e.Use(corsMiddleware(origins))
		e.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})
		return e
	}

	t.Run("allowed origin is echoed back", func(t *testing.T) {
		e := newEngine([]string{"http://app.example.com"})
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", "http://app.example.com")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Values("Vary"), "Origin")
	})

	t.Run("unlisted origin gets no CORS headers", func(t *testing.T) {
		e := newEngine([]string{"http://app.example.com"})
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", "http://evil.example.com")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard allows any origin", func(t *testing.T) {
		e := newEngine([]string{"*"})
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", "http://anywhere.example.com")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "http://anywhere.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short-circuits with 204", func(t *testing.T) {
		e := newEngine([]string{"http://app.example.com"})
		req := httptest.NewRequest(http.MethodOptions, "/test", nil)
		req.Header.Set("Origin", "http://app.example.com")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
		assert.Empty(t, rec.Body.String())
	})
}

func TestAuthRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)

	e := gin.New()
	e.GET("/protected", authRequired(tokens), func(c *gin.Context) {
		c.String(http.StatusOK, userID(c))
	})

	issue := func(t *testing.T) string {
		t.Helper()
		token, err := tokens.Issue("user-123")
		require.NoError(t, err)
		return token
	}

	t.Run("missing token returns 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
		assert.Contains(t, rec.Body.String(), "Invalid or expired token")
	})

	t.Run("malformed token returns 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-bearer scheme returns 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token from another secret returns 401", func(t *testing.T) {
		other := auth.NewTokenIssuer("other-secret", time.Hour)
		token, err := other.Issue("user-123")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid header token passes and resolves the user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-123", rec.Body.String())
	})

	t.Run("query parameter works for header-less clients", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected?access_token="+issue(t), nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-123", rec.Body.String())
	})
}
