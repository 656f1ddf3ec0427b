package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNormalizePassesDomainErrorsThrough(t *testing.T) {
	notFound := NotFound("Package not found")

	got := Normalize(notFound, KindBadRequest, "Failed to create booking")
	if got != notFound {
		t.Fatalf("expected domain error to pass through, got %v", got)
	}

	wrapped := fmt.Errorf("lookup: %w", notFound)
	if !Is(Normalize(wrapped, KindBadRequest, "x"), KindNotFound) {
		t.Fatal("expected wrapped domain error to keep its kind")
	}
}

func TestNormalizeWrapsUnexpectedErrors(t *testing.T) {
	cause := errors.New("connection reset")

	got := Normalize(cause, KindBadRequest, "Failed to create booking")
	domainErr, ok := As(got)
	if !ok {
		t.Fatalf("expected *Error, got %T", got)
	}
	if domainErr.Kind != KindBadRequest || domainErr.Message != "Failed to create booking" {
		t.Fatalf("unexpected normalized error: %+v", domainErr)
	}
	if !errors.Is(got, cause) {
		t.Fatal("expected original cause to remain reachable")
	}
}

func TestNormalizeNil(t *testing.T) {
	if Normalize(nil, KindInternal, "boom") != nil {
		t.Fatal("expected nil for nil input")
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindNotFound:     http.StatusNotFound,
		KindValidation:   http.StatusBadRequest,
		KindBadRequest:   http.StatusBadRequest,
		KindConflict:     http.StatusConflict,
		KindForbidden:    http.StatusForbidden,
		KindUnauthorized: http.StatusUnauthorized,
		KindInternal:     http.StatusInternalServerError,
		KindUnknown:      http.StatusInternalServerError,
	}
	for kind, want := range cases {
		if got := New(kind, "x").HTTPStatus(); got != want {
			t.Fatalf("kind %d: expected %d, got %d", kind, want, got)
		}
	}
}
