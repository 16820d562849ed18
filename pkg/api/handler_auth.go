package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/forgeworks/forge/pkg/auth"
	"github.com/forgeworks/forge/pkg/services"
)

// registerHandler handles POST /api/v1/auth/register.
func (s *Server) registerHandler(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a valid email is required"})
		return
	}
	if len(req.Password) < auth.MinPasswordLength {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": fmt.Sprintf("Password must be at least %d characters", auth.MinPasswordLength),
		})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("Password hashing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	u, err := s.userService.Create(c.Request.Context(), email, hash)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
			return
		}
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, UserResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt})
}

// tokenHandler handles POST /api/v1/auth/token: a form-encoded password
// grant. The username field carries the email.
func (s *Server) tokenHandler(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	u, err := s.userService.GetByEmail(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) || services.IsValidationError(err) {
			s.rejectLogin(c)
			return
		}
		mapServiceError(c, err)
		return
	}
	if !auth.VerifyPassword(u.PasswordHash, password) {
		s.rejectLogin(c)
		return
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		slog.Error("Token issuance failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// rejectLogin answers a failed login. Unknown email and wrong password
// produce the same response on purpose.
func (s *Server) rejectLogin(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
}

// meHandler handles GET /api/v1/auth/me.
func (s *Server) meHandler(c *gin.Context) {
	u, err := s.userService.GetByID(c.Request.Context(), userID(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, UserResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt})
}
