package access

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"travel_booking_backend/platform/apperr"
	"travel_booking_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestAuthorizeRole(t *testing.T) {
	admin := Caller{ID: uuid.New(), Role: RoleAdmin}
	normal := Caller{ID: uuid.New(), Role: RoleNormal}

	if err := AuthorizeRole(normal); err != nil {
		t.Fatalf("empty role list must allow everyone, got %v", err)
	}
	if err := AuthorizeRole(admin, RoleAdmin); err != nil {
		t.Fatalf("admin should pass, got %v", err)
	}
	err := AuthorizeRole(normal, RoleAdmin)
	if !apperr.Is(err, apperr.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if domainErr, _ := apperr.As(err); domainErr.Message != MsgInsufficientPermissions {
		t.Fatalf("unexpected message %q", domainErr.Message)
	}
}

func TestCheckOwnership(t *testing.T) {
	owner := uuid.New()

	if err := CheckOwnership(Caller{ID: owner, Role: RoleNormal}, owner, "nope"); err != nil {
		t.Fatalf("owner should pass, got %v", err)
	}
	if err := CheckOwnership(Caller{ID: uuid.New(), Role: RoleAdmin}, owner, "nope"); err != nil {
		t.Fatalf("admin should pass, got %v", err)
	}

	err := CheckOwnership(Caller{ID: uuid.New(), Role: RoleNormal}, owner, "You are not allowed to view this booking")
	domainErr, ok := apperr.As(err)
	if !ok || domainErr.Kind != apperr.KindForbidden || domainErr.Message != "You are not allowed to view this booking" {
		t.Fatalf("expected forbidden with resource message, got %v", err)
	}
}

func TestRequireRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(role string) int {
		r := gin.New()
		r.GET("/admin",
			func(c *gin.Context) {
				httpkit.SetIdentity(c, httpkit.Principal{UserID: uuid.New(), Role: role})
				c.Next()
			},
			RequireRoles(RoleAdmin),
			func(c *gin.Context) { c.Status(http.StatusNoContent) },
		)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
		return rec.Code
	}

	if code := run(RoleAdmin); code != http.StatusNoContent {
		t.Fatalf("admin: expected 204, got %d", code)
	}
	if code := run(RoleNormal); code != http.StatusForbidden {
		t.Fatalf("normal: expected 403, got %d", code)
	}
}
