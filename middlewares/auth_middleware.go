package middlewares

import (
	"net/http"
	"strings"

	"wellbeing/utils"

	"github.com/gin-gonic/gin"
)

// OwnerKey is the gin context key holding the authenticated email.
const OwnerKey = "email"

// AuthMiddleware resolves the owner from an HS256 bearer token. Requests
// without a valid token carrying an email claim never reach a handler.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured: JWT secret not set"})
			return
		}

		email, err := utils.ParseEmail(strings.TrimPrefix(authHeader, "Bearer "), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(OwnerKey, email)
		c.Next()
	}
}
