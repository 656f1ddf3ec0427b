package adapters

import (
	"context"

	"github.com/google/uuid"

	destservice "travel_booking_backend/internal/destinations/service"
	pkgports "travel_booking_backend/internal/packages/ports"
)

// DestinationChecker adapts the destinations service for the packages domain.
type DestinationChecker struct {
	svc *destservice.Service
}

// NewDestinationChecker creates a new destination checker adapter.
func NewDestinationChecker(svc *destservice.Service) *DestinationChecker {
	return &DestinationChecker{svc: svc}
}

// EnsureExists returns NotFound for unknown or deleted destinations.
func (a *DestinationChecker) EnsureExists(ctx context.Context, destinationID uuid.UUID) error {
	return a.svc.EnsureExists(ctx, destinationID)
}

var _ pkgports.DestinationChecker = (*DestinationChecker)(nil)
