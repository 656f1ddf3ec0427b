package repository

import (
	"strings"
	"testing"
)

func TestPackageQueriesSkipSoftDeleted(t *testing.T) {
	queries := map[string]string{
		"list":   listPackagesQuery,
		"count":  countPackagesQuery,
		"get":    getPackageQuery,
		"update": updatePackageQuery,
		"delete": softDeletePackageQuery,
		"stats":  packageStatsQuery,
	}
	for name, query := range queries {
		if !strings.Contains(query, "deleted_at IS NULL") {
			t.Fatalf("%s query must skip soft-deleted packages", name)
		}
	}
}

func TestPackageStatsGroupsByDestination(t *testing.T) {
	if !strings.Contains(packageStatsQuery, "ANY($1)") {
		t.Fatal("stats must be computed for a batch of destination ids")
	}
	if !strings.Contains(packageStatsQuery, "GROUP BY destination_id") {
		t.Fatal("stats must be grouped per destination")
	}
}
