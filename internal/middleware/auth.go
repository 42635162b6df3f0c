package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/misterbista/portfolio-api/internal/pkg/jwt"
	"github.com/misterbista/portfolio-api/internal/pkg/response"
)

const ContextKeyUsername = "username"

// Auth returns a middleware that enforces a valid admin session token.
// Tokens are only ever issued to the single gate-admitted identity, so a
// valid token is sufficient for write access.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := jwt.Parse(extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyUsername, claims.Username)
		c.Next()
	}
}

// OptionalAuth sets the username if a valid token is present, but does not
// block the request.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := jwt.Parse(extractToken(c)); err == nil && claims.Username != "" {
			c.Set(ContextKeyUsername, claims.Username)
		}
		c.Next()
	}
}

// CurrentUsername extracts the authenticated username from context.
func CurrentUsername(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUsername)
	name, _ := v.(string)
	return name
}

// IsAuthenticated returns true if the request carries a valid admin token.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentUsername(c) != ""
}

func extractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		return NormalizeToken(auth)
	}
	return NormalizeToken(c.Query("token"))
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
