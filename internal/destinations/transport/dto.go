package transport

import (
	"time"

	"travel_booking_backend/internal/adapters/storage"
	"travel_booking_backend/platform/pagination"

	"github.com/google/uuid"
)

type ListDestinationsRequest struct {
	Name  string `form:"name" validate:"omitempty,max=100"`
	Page  int    `form:"page" validate:"omitempty,min=1"`
	Limit int    `form:"limit" validate:"omitempty,min=1,max=100"`
}

// CreateDestinationRequest is bound from multipart form fields; the image
// travels separately as the "image" file part.
type CreateDestinationRequest struct {
	Name        string `form:"name" validate:"required,min=2,max=100"`
	Description string `form:"description" validate:"required,min=3"`
}

type UpdateDestinationRequest struct {
	Name        *string `form:"name" validate:"omitempty,min=2,max=100"`
	Description *string `form:"description" validate:"omitempty,min=3"`
}

type DestinationListItem struct {
	ID            uuid.UUID     `json:"_id"`
	Name          string        `json:"name"`
	Image         storage.Asset `json:"image"`
	PackagesCount int           `json:"packagesCount"`
	MinPrice      float64       `json:"minPrice"`
}

type DestinationResponse struct {
	ID            uuid.UUID     `json:"_id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Image         storage.Asset `json:"image"`
	PackagesCount int           `json:"packagesCount"`
	MinPrice      float64       `json:"minPrice"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

type DestinationListResponse struct {
	Items []DestinationListItem
	Meta  pagination.Meta
}
