package middleware

import (
	"net/http"
	"strings"

	userService "scopex/services/user"

	"github.com/gin-gonic/gin"
)

// SessionAuthMiddleware resolves the bearer token into a CRM user and puts
// the explicit session identity on the request context. A session whose
// directory entry changed or disappeared is cleared and rejected with the
// same undifferentiated 401 as a missing token.
func SessionAuthMiddleware(svc userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		usr, err := svc.ValidateSession(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set("sessionToken", token)
		c.Set("currentUser", *usr)
		c.Next()
	}
}
