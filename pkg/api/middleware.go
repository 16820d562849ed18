package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/forgeworks/forge/pkg/auth"
)

// userIDKey is the gin context key authRequired stores the account id under.
const userIDKey = "forge.user_id"

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		c.Next()
	}
}

// corsMiddleware allows cross-origin requests from the configured origins.
// "*" in the list allows every origin; the matched origin is echoed back
// so credentialed requests keep working.
func corsMiddleware(origins []string) gin.HandlerFunc {
	allowAll := false
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowAll || allowed[origin]) {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			h.Set("Access-Control-Max-Age", "600")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// authRequired rejects requests without a valid platform token and stores
// the authenticated user id in the request context.
func authRequired(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			unauthorized(c)
			return
		}
		uid, err := tokens.Verify(token)
		if err != nil {
			unauthorized(c)
			return
		}
		c.Set(userIDKey, uid)
		c.Next()
	}
}

// bearerToken pulls the JWT from the Authorization header, falling back
// to the access_token query parameter for WebSocket clients that cannot
// set headers.
func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
			return strings.TrimSpace(h[7:])
		}
		return ""
	}
	return c.Query("access_token")
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
}

// userID returns the account id authRequired stored for this request.
func userID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
