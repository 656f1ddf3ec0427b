package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Booking statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCanceled  = "canceled"
)

// Statuses lists every accepted booking status.
var Statuses = []string{StatusPending, StatusConfirmed, StatusCanceled}

// Contact is the person to reach about a booking.
type Contact struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Booking is a reservation of a package, joined with its contact.
type Booking struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	ContactID      uuid.UUID
	PackageID      uuid.UUID
	NumberOfPeople int
	TotalPrice     float64
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Contact        Contact
}

// ListParams defines filters for listing bookings. Nil and empty filters
// are ignored.
type ListParams struct {
	UserID    *uuid.UUID
	ContactID *uuid.UUID
	PackageID *uuid.UUID
	Status    string
	Offset    int
	Limit     int
}

// ContactParams contains a new contact.
type ContactParams struct {
	Name  string
	Email string
	Phone string
}

// ContactPatch edits a contact in place. Nil fields are left as is.
type ContactPatch struct {
	Name  *string
	Email *string
	Phone *string
}

// CreateParams contains data for a booking and its contact.
type CreateParams struct {
	UserID         uuid.UUID
	PackageID      uuid.UUID
	NumberOfPeople int
	TotalPrice     float64
	Status         string
	Contact        ContactParams
}

// UpdateParams contains data for updating a booking. Nil fields are left as is.
type UpdateParams struct {
	ID             uuid.UUID
	PackageID      *uuid.UUID
	NumberOfPeople *int
	TotalPrice     *float64
	Status         *string
	Contact        *ContactPatch
}

// Repository defines booking storage operations.
type Repository interface {
	List(ctx context.Context, params ListParams) ([]Booking, error)
	Count(ctx context.Context, params ListParams) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (Booking, error)
	// Create writes the contact and the booking in one transaction.
	Create(ctx context.Context, params CreateParams) (Booking, error)
	// Update edits the booking and, when given, its contact in one transaction.
	Update(ctx context.Context, params UpdateParams) (Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
