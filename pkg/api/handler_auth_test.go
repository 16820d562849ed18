package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Handler validation tests stop before any service call; happy paths run
// against a real database in the e2e suite.

func postJSON(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRegisterHandler_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}

	tests := []struct {
		name       string
		body       string
		expectCode int
		expectMsg  string
	}{
		{
			name:       "malformed body",
			body:       `{"email": 123}`,
			expectCode: http.StatusBadRequest,
			expectMsg:  "invalid request body",
		},
		{
			name:       "missing email",
			body:       `{"password": "longenough"}`,
			expectCode: http.StatusBadRequest,
			expectMsg:  "a valid email is required",
		},
		{
			name:       "email without at sign",
			body:       `{"email": "not-an-email", "password": "longenough"}`,
			expectCode: http.StatusBadRequest,
			expectMsg:  "a valid email is required",
		},
		{
			name:       "short password",
			body:       `{"email": "dev@example.com", "password": "short"}`,
			expectCode: http.StatusUnprocessableEntity,
			expectMsg:  "Password must be at least 8 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = postJSON("/api/v1/auth/register", tt.body)

			s.registerHandler(c)

			assert.Equal(t, tt.expectCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectMsg)
		})
	}
}

func TestTokenHandler_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}

	tests := []struct {
		name string
		form string
	}{
		{name: "empty form", form: ""},
		{name: "missing password", form: "username=dev@example.com"},
		{name: "missing username", form: "password=whatever"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", strings.NewReader(tt.form))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			c.Request = req

			s.tokenHandler(c)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "username and password are required")
		})
	}
}
