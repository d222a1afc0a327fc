package middleware

import (
	"net/http"
	"strings"

	"github.com/Diatessaron/Best-Course-Ever/internal/repository"
	"github.com/Diatessaron/Best-Course-Ever/internal/service"
	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// RequireAuth returns middleware that authenticates the request's bearer
// token. On success the principal and raw token are stored on the request
// context; otherwise the chain is aborted with 401 before any handler runs.
func RequireAuth(tokens service.TokenService, blacklist repository.TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		token := header[len(bearerPrefix):]

		claims, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		revoked, err := blacklist.IsRevoked(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		SetPrincipal(c, &Principal{
			UserID: claims.UserID,
			Email:  claims.Email,
			Roles:  claims.Roles,
		})
		SetToken(c, token)
		c.Next()
	}
}
