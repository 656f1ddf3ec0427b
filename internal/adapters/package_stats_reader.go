package adapters

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	destports "travel_booking_backend/internal/destinations/ports"
	pkgservice "travel_booking_backend/internal/packages/service"
)

// PackageStatsReader adapts the packages service for the destinations domain,
// satisfying destports.PackageStatsReader.
type PackageStatsReader struct {
	svc *pkgservice.Service
}

// NewPackageStatsReader creates a new package stats adapter.
func NewPackageStatsReader(svc *pkgservice.Service) *PackageStatsReader {
	return &PackageStatsReader{svc: svc}
}

// StatsByDestinationIDs returns count and minimum price per destination.
// Destinations without packages are left out; callers treat them as zero.
func (a *PackageStatsReader) StatsByDestinationIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]destports.PackageStats, error) {
	stats, err := a.svc.StatsByDestinationIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("packages adapter: stats: %w", err)
	}

	out := make(map[uuid.UUID]destports.PackageStats, len(stats))
	for id, st := range stats {
		out[id] = destports.PackageStats{Count: st.Count, MinPrice: st.MinPrice}
	}
	return out, nil
}

var _ destports.PackageStatsReader = (*PackageStatsReader)(nil)
