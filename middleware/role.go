package middleware

import (
	"net/http"

	"scopex/models"

	"github.com/gin-gonic/gin"
)

// CurrentUser pulls the authenticated CRM user set by SessionAuthMiddleware.
func CurrentUser(c *gin.Context) (models.CRMUser, bool) {
	val, exists := c.Get("currentUser")
	if !exists {
		return models.CRMUser{}, false
	}
	usr, ok := val.(models.CRMUser)
	return usr, ok
}

// RequireSuperAdmin gates destructive operations: lead deletion, CSV
// export, and user directory mutations. Every role may list and update.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		usr, ok := CurrentUser(c)
		if !ok || usr.Role != models.RoleSuperAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Super admin role required"})
			return
		}
		c.Next()
	}
}
