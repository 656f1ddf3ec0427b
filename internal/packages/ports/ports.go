// Package ports defines what the packages module needs from other modules.
package ports

import (
	"context"

	"github.com/google/uuid"
)

// DestinationChecker confirms a destination exists and is not deleted.
// Implementations return an apperr NotFound error otherwise.
type DestinationChecker interface {
	EnsureExists(ctx context.Context, destinationID uuid.UUID) error
}
