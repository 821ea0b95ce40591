package middleware

import (
	"net/http"
	"strings"

	"metro-console/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// SessionKey is the gin context key holding the authenticated session id.
const SessionKey = "session_id"

// SessionMiddleware resolves the session token from the Authorization header
// or, for websocket upgrades, the token query parameter.
func SessionMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
				c.Abort()
				return
			}
			token = parts[1]
		}
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session token required"})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session token"})
			c.Abort()
			return
		}

		c.Set(SessionKey, claims.SessionID)
		c.Next()
	}
}

type AdminChecker interface {
	IsAdmin(sessionID string) (bool, error)
}

// AdminOnly gates a route group on the session being signed in as admin.
// Must run after SessionMiddleware.
func AdminOnly(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := checker.IsAdmin(c.GetString(SessionKey))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found"})
			c.Abort()
			return
		}
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
