// Package ports defines what the destinations module needs from other modules.
package ports

import (
	"context"

	"github.com/google/uuid"
)

// PackageStats summarises the live packages of one destination.
type PackageStats struct {
	Count    int
	MinPrice float64
}

// PackageStatsReader computes package stats for a set of destinations.
// Destinations without packages may be absent from the result.
type PackageStatsReader interface {
	StatsByDestinationIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]PackageStats, error)
}
