// server/internal/api/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"cleanconnect-api-server/internal/auth"

	"github.com/gin-gonic/gin"
)

// Authenticate validates the Bearer token and puts the user's identity into
// the request context.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := auth.ParseJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_type", claims.UserType)

		c.Next()
	}
}

// Authorize is a middleware factory that restricts a route to the given
// account types. Authenticate must run first.
func Authorize(allowedTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userTypeValue, exists := c.Get("user_type")
		if !exists {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "User type not found in context"})
			return
		}

		userType, ok := userTypeValue.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "User type has an invalid type"})
			return
		}

		for _, allowed := range allowedTypes {
			if allowed == userType {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
	}
}
