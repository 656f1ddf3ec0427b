package repository

import (
	"strings"
	"testing"
)

func TestDestinationQueriesSkipSoftDeleted(t *testing.T) {
	queries := map[string]string{
		"list":   listDestinationsQuery,
		"count":  countDestinationsQuery,
		"get":    getDestinationQuery,
		"update": updateDestinationQuery,
		"delete": softDeleteDestinationQuery,
	}
	for name, query := range queries {
		if !strings.Contains(query, "deleted_at IS NULL") {
			t.Fatalf("%s query must skip soft-deleted destinations", name)
		}
	}
}

func TestListDestinationsNewestFirst(t *testing.T) {
	if !strings.Contains(listDestinationsQuery, "ORDER BY created_at DESC") {
		t.Fatal("destinations must be listed newest first")
	}
}
