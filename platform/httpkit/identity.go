// Package httpkit provides HTTP utilities including identity abstraction.
package httpkit

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// ContextEmailKey is the gin context key for the authenticated email.
	ContextEmailKey = "email"
)

// Identity represents the authenticated caller. It abstracts identity
// extraction from the web framework so handlers and services can check
// ownership without depending on Gin.
type Identity interface {
	// Email returns the authenticated caller's email.
	Email() string
	// IsAuthenticated returns true if a verified credential was presented.
	IsAuthenticated() bool
	// IsSelf reports whether the identity matches the given email.
	IsSelf(email string) bool
}

type identity struct {
	email         string
	authenticated bool
}

func (i *identity) Email() string {
	return i.email
}

func (i *identity) IsAuthenticated() bool {
	return i.authenticated
}

func (i *identity) IsSelf(email string) bool {
	return i.authenticated && i.email == email
}

// GetIdentity extracts the Identity from a Gin context.
// Returns an unauthenticated identity if no verified email is present.
func GetIdentity(c *gin.Context) Identity {
	value, ok := c.Get(ContextEmailKey)
	if !ok {
		return &identity{authenticated: false}
	}

	email, ok := value.(string)
	if !ok || email == "" {
		return &identity{authenticated: false}
	}

	return &identity{email: email, authenticated: true}
}

// MustGetIdentity extracts the Identity from a Gin context.
// If the caller is not authenticated, it aborts with 401 and returns nil.
func MustGetIdentity(c *gin.Context) Identity {
	id := GetIdentity(c)
	if !id.IsAuthenticated() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized access"})
		return nil
	}
	return id
}
