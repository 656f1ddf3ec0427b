package httpkit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel_booking_backend/platform/apperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type stubAuthenticator struct {
	principal Principal
	err       error
	gotToken  string
}

func (s *stubAuthenticator) Authenticate(_ context.Context, rawToken string) (Principal, error) {
	s.gotToken = rawToken
	return s.principal, s.err
}

func newProtectedEngine(authn Authenticator) *gin.Engine {
	r := gin.New()
	r.GET("/me", AuthRequired(authn), func(c *gin.Context) {
		id := MustGetIdentity(c)
		if id == nil {
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id.UserID().String(), "role": id.Role()})
	})
	return r
}

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	r := newProtectedEngine(&stubAuthenticator{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if msg := decode(t, rec)["message"]; msg != MsgNoToken {
		t.Fatalf("unexpected message %v", msg)
	}
}

func TestAuthRequiredPropagatesAuthenticatorError(t *testing.T) {
	r := newProtectedEngine(&stubAuthenticator{err: apperr.Unauthorized("Access denied, invalid token")})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if msg := decode(t, rec)["message"]; msg != "Access denied, invalid token" {
		t.Fatalf("unexpected message %v", msg)
	}
}

func TestAuthRequiredSetsIdentity(t *testing.T) {
	userID := uuid.New()
	authn := &stubAuthenticator{principal: Principal{UserID: userID, Role: "admin"}}
	r := newProtectedEngine(authn)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer abc.def")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if authn.gotToken != "abc.def" {
		t.Fatalf("expected raw token to be forwarded, got %q", authn.gotToken)
	}
	body := decode(t, rec)
	if body["id"] != userID.String() || body["role"] != "admin" {
		t.Fatalf("unexpected identity %v", body)
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]bool{
		"Bearer abc": true,
		"Bearer   ":  false,
		"Basic abc":  false,
		"":           false,
	}
	for header, want := range cases {
		if _, ok := BearerToken(header); ok != want {
			t.Fatalf("%q: expected %v", header, want)
		}
	}
}

func TestRequestIDEchoesInboundHeader(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextRequestIDKey))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Body.String() != "req-42" || rec.Header().Get(HeaderRequestID) != "req-42" {
		t.Fatalf("expected request id to be reused, got body=%q header=%q", rec.Body.String(), rec.Header().Get(HeaderRequestID))
	}
}
