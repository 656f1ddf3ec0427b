package transport

import (
	"time"

	"travel_booking_backend/internal/adapters/storage"
	"travel_booking_backend/platform/pagination"

	"github.com/google/uuid"
)

type ListPackagesRequest struct {
	DestinationID string `form:"destinationId" validate:"required,uuid"`
	Page          int    `form:"page" validate:"omitempty,min=1"`
	Limit         int    `form:"limit" validate:"omitempty,min=1,max=100"`
}

// CreatePackageRequest is bound from multipart form fields. Included is the
// raw form value: a JSON array string or a comma-separated list.
type CreatePackageRequest struct {
	DestinationID string   `form:"destinationId" validate:"required,uuid"`
	Name          string   `form:"name" validate:"required,min=2,max=100"`
	Description   string   `form:"description" validate:"required"`
	Duration      int      `form:"duration" validate:"required,min=1"`
	Included      string   `form:"included"`
	GroupSize     int      `form:"groupSize" validate:"required,min=1"`
	Price         *float64 `form:"price" validate:"required,gte=0"`
}

type UpdatePackageRequest struct {
	DestinationID *string  `form:"destinationId" validate:"omitempty,uuid"`
	Name          *string  `form:"name" validate:"omitempty,min=2,max=100"`
	Description   *string  `form:"description" validate:"omitempty,min=1"`
	Duration      *int     `form:"duration" validate:"omitempty,min=1"`
	Included      *string  `form:"included"`
	GroupSize     *int     `form:"groupSize" validate:"omitempty,min=1"`
	Price         *float64 `form:"price" validate:"omitempty,gte=0"`
}

type PackageListItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	GroupSize   int       `json:"groupSize"`
	Price       float64   `json:"price"`
}

type PackageResponse struct {
	ID            uuid.UUID     `json:"id"`
	DestinationID uuid.UUID     `json:"destinationId"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Duration      int           `json:"duration"`
	Included      []string      `json:"included"`
	Image         storage.Asset `json:"image"`
	GroupSize     int           `json:"groupSize"`
	Price         float64       `json:"price"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

type PackageListResponse struct {
	Items []PackageListItem
	Meta  pagination.Meta
}
