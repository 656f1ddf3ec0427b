package repository

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestListFilterForcedUser(t *testing.T) {
	userID := uuid.New()
	where, args := listFilter(ListParams{UserID: &userID, Status: StatusPending})

	if where != "TRUE AND b.user_id = $1 AND b.status = $2" {
		t.Fatalf("unexpected where clause %q", where)
	}
	if len(args) != 2 || args[0] != userID || args[1] != StatusPending {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestListFilterEmpty(t *testing.T) {
	where, args := listFilter(ListParams{})
	if where != "TRUE" || len(args) != 0 {
		t.Fatalf("expected no filters, got %q %v", where, args)
	}
}

func TestBookingReadsJoinContact(t *testing.T) {
	if !strings.Contains(getBookingQuery, "JOIN booking_contacts c ON c.id = b.contact_id") {
		t.Fatal("booking reads must include the contact")
	}
}
