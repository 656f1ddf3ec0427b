package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Package is a bookable travel package row.
type Package struct {
	ID            uuid.UUID
	DestinationID uuid.UUID
	Name          string
	Description   string
	Duration      int
	Included      []string
	ImageURL      string
	ImagePublicID string
	GroupSize     int
	Price         float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Stats summarises the live packages of one destination.
type Stats struct {
	Count    int
	MinPrice float64
}

// ListParams defines filters for listing packages of a destination.
type ListParams struct {
	DestinationID uuid.UUID
	Offset        int
	Limit         int
}

// CreateParams contains data for creating a package.
type CreateParams struct {
	DestinationID uuid.UUID
	Name          string
	Description   string
	Duration      int
	Included      []string
	ImageURL      string
	ImagePublicID string
	GroupSize     int
	Price         float64
}

// UpdateParams contains data for updating a package. Nil fields are left as is.
type UpdateParams struct {
	ID            uuid.UUID
	DestinationID *uuid.UUID
	Name          *string
	Description   *string
	Duration      *int
	Included      []string
	ImageURL      *string
	ImagePublicID *string
	GroupSize     *int
	Price         *float64
}

// Reader is the read side of package storage.
type Reader interface {
	ListByDestination(ctx context.Context, params ListParams) ([]Package, error)
	CountByDestination(ctx context.Context, destinationID uuid.UUID) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (Package, error)
	StatsByDestinationIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Stats, error)
}

// Writer is the write side of package storage.
type Writer interface {
	Create(ctx context.Context, params CreateParams) (Package, error)
	Update(ctx context.Context, params UpdateParams) (Package, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// Repository combines package reads and writes. Soft-deleted rows are
// invisible to every method.
type Repository interface {
	Reader
	Writer
}
