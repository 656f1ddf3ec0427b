// Package access holds the role and ownership rules shared by every module.
package access

import (
	"net/http"

	"travel_booking_backend/platform/apperr"
	"travel_booking_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RoleAdmin  = "admin"
	RoleNormal = "normal"

	// MsgInsufficientPermissions is returned when a caller's role is not allowed.
	MsgInsufficientPermissions = "Access denied, insufficient permissions"
)

// Roles lists every valid role.
var Roles = []string{RoleAdmin, RoleNormal}

// Caller is the authenticated user a service acts on behalf of.
type Caller struct {
	ID       uuid.UUID
	Email    string
	UserName string
	Role     string
}

// IsAdmin reports whether the caller holds the admin role.
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// FromIdentity converts a request identity into a Caller.
func FromIdentity(id httpkit.Identity) Caller {
	return Caller{
		ID:       id.UserID(),
		Email:    id.Email(),
		UserName: id.UserName(),
		Role:     id.Role(),
	}
}

// CallerFrom reads the caller from the gin context, aborting with 401 when
// the request is unauthenticated.
func CallerFrom(c *gin.Context) (Caller, bool) {
	id := httpkit.MustGetIdentity(c)
	if id == nil {
		return Caller{}, false
	}
	return FromIdentity(id), true
}

// AuthorizeRole fails with Forbidden when roles is non-empty and the caller's
// role is not one of them.
func AuthorizeRole(caller Caller, roles ...string) error {
	if len(roles) == 0 {
		return nil
	}
	for _, role := range roles {
		if caller.Role == role {
			return nil
		}
	}
	return apperr.Forbidden(MsgInsufficientPermissions)
}

// CheckOwnership allows admins and the owner of the resource. Everyone else
// gets Forbidden with the given message.
func CheckOwnership(caller Caller, ownerID uuid.UUID, message string) error {
	if caller.IsAdmin() || caller.ID == ownerID {
		return nil
	}
	return apperr.Forbidden(message)
}

// RequireRoles is route middleware around AuthorizeRole. It must run after
// httpkit.AuthRequired.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CallerFrom(c)
		if !ok {
			return
		}
		if err := AuthorizeRole(caller, roles...); err != nil {
			httpkit.AbortWithError(c, http.StatusForbidden, MsgInsufficientPermissions)
			return
		}
		c.Next()
	}
}
