// Package httpkit provides HTTP utilities including identity abstraction.
package httpkit

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const contextPrincipalKey = "principal"

// Principal is the authenticated caller resolved from a bearer token.
type Principal struct {
	UserID   uuid.UUID
	Email    string
	UserName string
	Role     string
}

// Identity represents the authenticated user's identity.
// Handlers read it without depending on how the token was verified.
type Identity interface {
	UserID() uuid.UUID
	Email() string
	UserName() string
	Role() string
	HasRole(roles ...string) bool
	IsAuthenticated() bool
}

type identity struct {
	principal     Principal
	authenticated bool
}

func (i *identity) UserID() uuid.UUID { return i.principal.UserID }
func (i *identity) Email() string     { return i.principal.Email }
func (i *identity) UserName() string  { return i.principal.UserName }
func (i *identity) Role() string      { return i.principal.Role }

// HasRole reports whether the caller holds any of the given roles.
func (i *identity) HasRole(roles ...string) bool {
	for _, r := range roles {
		if r == i.principal.Role {
			return true
		}
	}
	return false
}

func (i *identity) IsAuthenticated() bool {
	return i.authenticated
}

// SetIdentity stores the principal on the gin context.
func SetIdentity(c *gin.Context, p Principal) {
	c.Set(contextPrincipalKey, p)
}

// NewIdentity wraps a principal as an authenticated identity.
func NewIdentity(p Principal) Identity {
	return &identity{principal: p, authenticated: true}
}

// GetIdentity extracts the Identity from a Gin context.
// Returns an unauthenticated identity if no principal is present.
func GetIdentity(c *gin.Context) Identity {
	value, ok := c.Get(contextPrincipalKey)
	if !ok {
		return &identity{}
	}
	p, ok := value.(Principal)
	if !ok {
		return &identity{}
	}
	return NewIdentity(p)
}

// MustGetIdentity extracts the Identity from a Gin context.
// If the user is not authenticated, it aborts with 401 and returns nil.
func MustGetIdentity(c *gin.Context) Identity {
	id := GetIdentity(c)
	if !id.IsAuthenticated() {
		AbortWithError(c, http.StatusUnauthorized, MsgNoToken)
		return nil
	}
	return id
}
