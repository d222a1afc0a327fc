// Package middleware provides HTTP middleware for the course platform.
package middleware

import (
	"github.com/Diatessaron/Best-Course-Ever/internal/models"
	"github.com/gin-gonic/gin"
)

// Context keys for the authenticated identity. Each gin.Context lives for
// exactly one request, so values stored under these keys never outlive or
// leak across requests.
const (
	principalKey = "auth.principal"
	tokenKey     = "auth.token"
)

// Principal is the authenticated identity attached to the current request.
type Principal struct {
	UserID string        `json:"user_id"`
	Email  string        `json:"email"`
	Roles  []models.Role `json:"roles"`
}

// HasAnyRole reports whether the principal holds at least one of the given
// roles.
func (p *Principal) HasAnyRole(roles ...models.Role) bool {
	for _, required := range roles {
		for _, held := range p.Roles {
			if held == required {
				return true
			}
		}
	}
	return false
}

// SetPrincipal attaches the authenticated principal to the request context.
func SetPrincipal(c *gin.Context, p *Principal) {
	c.Set(principalKey, p)
}

// CurrentPrincipal returns the principal set by the auth middleware, or
// false if the request never passed through it.
func CurrentPrincipal(c *gin.Context) (*Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*Principal)
	return p, ok
}

// SetToken attaches the raw bearer token to the request context.
func SetToken(c *gin.Context, token string) {
	c.Set(tokenKey, token)
}

// TokenFromContext returns the raw bearer token set by the auth middleware.
func TokenFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(tokenKey)
	if !ok {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}
