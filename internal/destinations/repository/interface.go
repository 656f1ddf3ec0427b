package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Destination is a catalog destination row.
type Destination struct {
	ID            uuid.UUID
	Name          string
	Description   string
	ImageURL      string
	ImagePublicID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ListParams defines filters for listing destinations.
type ListParams struct {
	Name   string
	Offset int
	Limit  int
}

// CreateParams contains data for creating a destination.
type CreateParams struct {
	Name          string
	Description   string
	ImageURL      string
	ImagePublicID string
}

// UpdateParams contains data for updating a destination. Nil fields are left as is.
type UpdateParams struct {
	ID            uuid.UUID
	Name          *string
	Description   *string
	ImageURL      *string
	ImagePublicID *string
}

// Repository defines destination storage operations. Soft-deleted rows are
// invisible to every method.
type Repository interface {
	List(ctx context.Context, params ListParams) ([]Destination, error)
	Count(ctx context.Context, params ListParams) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (Destination, error)
	Create(ctx context.Context, params CreateParams) (Destination, error)
	Update(ctx context.Context, params UpdateParams) (Destination, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
