package middleware

import (
	"net/http"
	"strings"

	"techquiz/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests without a live admin session token.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if !auth.IsAuthenticated(c.Request.Context(), token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		c.Set("session_token", token)
		c.Next()
	}
}
