// Package ports defines what the bookings module needs from other modules.
package ports

import (
	"context"

	"github.com/google/uuid"
)

// PackageSummary is the part of a travel package a booking cares about.
type PackageSummary struct {
	ID    uuid.UUID
	Name  string
	Price float64
}

// PackageReader looks up bookable packages. Implementations return an
// apperr NotFound error for unknown or deleted packages.
type PackageReader interface {
	GetPackage(ctx context.Context, packageID uuid.UUID) (PackageSummary, error)
}
