// Package auth provides the authentication bounded context: the token
// codec, the session endpoints, and the request gate middleware.
package auth

import (
	"context"
	"net/http"

	"carecamp_backend/internal/auth/token"
	"carecamp_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

const (
	// RoleAdmin is the role required by admin-gated routes.
	RoleAdmin = "admin"

	msgUnauthorized = "unauthorized access"
	msgForbidden    = "forbidden access"
)

// RoleLookup resolves a caller's role from their email. Implemented by
// the users service; the gate stays free of repository dependencies.
type RoleLookup interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// Required returns middleware that authenticates the request from the
// token cookie. Missing or invalid credentials abort with 401; on
// success the verified email is attached to the request context.
func Required(codec *token.Codec, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(cookieName)
		if err != nil || raw == "" {
			abortUnauthorized(c)
			return
		}

		claims, err := codec.Verify(raw)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(httpkit.ContextEmailKey, claims.Email)
		c.Next()
	}
}

// RequireSelf returns middleware that forbids the request unless the
// authenticated email equals the named path parameter.
func RequireSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := httpkit.GetIdentity(c)
		if !id.IsAuthenticated() {
			abortUnauthorized(c)
			return
		}
		if !id.IsSelf(c.Param(param)) {
			abortForbidden(c)
			return
		}
		c.Next()
	}
}

// RequireAdmin returns middleware that forbids the request unless the
// caller's stored user record carries the admin role.
func RequireAdmin(roles RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := httpkit.GetIdentity(c)
		if !id.IsAuthenticated() {
			abortUnauthorized(c)
			return
		}

		role, err := roles.RoleByEmail(c.Request.Context(), id.Email())
		if err != nil || role != RoleAdmin {
			abortForbidden(c)
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, httpkit.ErrorResponse{Error: msgUnauthorized})
}

func abortForbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, httpkit.ErrorResponse{Error: msgForbidden})
}
