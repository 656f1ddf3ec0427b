package repository

import (
	"strings"
	"testing"
)

func TestListFilterAlwaysExcludesSoftDeleted(t *testing.T) {
	where, args := listFilter(ListParams{})
	if where != "deleted_at IS NULL" || len(args) != 0 {
		t.Fatalf("unexpected unfiltered clause %q %v", where, args)
	}
}

func TestListFilterBuildsCaseInsensitiveSubstringMatches(t *testing.T) {
	where, args := listFilter(ListParams{UserName: "ada", Email: "example"})

	if !strings.Contains(where, "user_name ILIKE $1") || !strings.Contains(where, "email ILIKE $2") {
		t.Fatalf("unexpected clause %q", where)
	}
	if len(args) != 2 || args[0] != "%ada%" || args[1] != "%example%" {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestWritesOnlyTouchLiveUsers(t *testing.T) {
	for name, query := range map[string]string{
		"get":    getUserByIDQuery,
		"update": updateUserQuery,
		"delete": softDeleteUserQuery,
	} {
		if !strings.Contains(query, "deleted_at IS NULL") {
			t.Fatalf("%s query must skip soft-deleted users", name)
		}
	}
}
