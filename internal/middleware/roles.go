package middleware

import (
	"net/http"

	"github.com/Diatessaron/Best-Course-Ever/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireRoles returns middleware that allows the request only when the
// authenticated principal holds at least one of the given roles. With no
// roles given, any authenticated principal passes. A missing principal
// means the route was wired without RequireAuth; that is rejected with 401
// rather than silently passing.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(roles) == 0 {
			c.Next()
			return
		}

		principal, ok := CurrentPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			return
		}

		if !principal.HasAnyRole(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}

		c.Next()
	}
}
