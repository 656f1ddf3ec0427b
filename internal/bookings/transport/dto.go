package transport

import (
	"time"

	"travel_booking_backend/platform/pagination"

	"github.com/google/uuid"
)

type ContactRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=150"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=3,max=32"`
}

type ContactUpdateRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=150"`
	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone" validate:"omitempty,min=3,max=32"`
}

type CreateBookingRequest struct {
	Contact        ContactRequest `json:"contact" validate:"required"`
	PackageID      uuid.UUID      `json:"packageId" validate:"required"`
	NumberOfPeople int            `json:"numberOfPeople" validate:"required,min=1"`
	TotalPrice     *float64       `json:"totalPrice" validate:"required,gte=0"`
	Status         string         `json:"status" validate:"omitempty,bookingstatus"`
}

// UpdateBookingRequest is a partial update. The contact is edited in place;
// a booking can never be moved to another contact.
type UpdateBookingRequest struct {
	Contact        *ContactUpdateRequest `json:"contact"`
	PackageID      *uuid.UUID            `json:"packageId"`
	NumberOfPeople *int                  `json:"numberOfPeople" validate:"omitempty,min=1"`
	TotalPrice     *float64              `json:"totalPrice" validate:"omitempty,gte=0"`
	Status         *string               `json:"status" validate:"omitempty,bookingstatus"`
}

type ListBookingsRequest struct {
	ContactID string `form:"contactId" validate:"omitempty,uuid"`
	UserID    string `form:"userId" validate:"omitempty,uuid"`
	PackageID string `form:"packageId" validate:"omitempty,uuid"`
	Status    string `form:"status" validate:"omitempty,bookingstatus"`
	Page      int    `form:"page" validate:"omitempty,min=1"`
	Limit     int    `form:"limit" validate:"omitempty,min=1,max=100"`
}

type BookingListItem struct {
	ID             uuid.UUID `json:"id"`
	ContactID      uuid.UUID `json:"contactId"`
	PackageID      uuid.UUID `json:"packageId"`
	NumberOfPeople int       `json:"numberOfPeople"`
	TotalPrice     float64   `json:"totalPrice"`
	Status         string    `json:"status"`
}

type ContactResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

type BookingResponse struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"userId"`
	ContactID      uuid.UUID       `json:"contactId"`
	Contact        ContactResponse `json:"contact"`
	PackageID      uuid.UUID       `json:"packageId"`
	NumberOfPeople int             `json:"numberOfPeople"`
	TotalPrice     float64         `json:"totalPrice"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type BookingListResponse struct {
	Items []BookingListItem
	Meta  pagination.Meta
}
