package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is an account row.
type User struct {
	ID                uuid.UUID
	UserName          string
	Email             string
	Role              string
	IsAccountVerified bool
	Phone             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ListParams defines filters for listing users.
type ListParams struct {
	UserName string
	Email    string
	Offset   int
	Limit    int
}

// CreateParams contains data for creating a user.
type CreateParams struct {
	UserName     string
	Email        string
	PasswordHash string
	Role         string
	Phone        *string
}

// UpdateParams contains data for updating a user. Nil fields are left as is.
type UpdateParams struct {
	ID           uuid.UUID
	UserName     *string
	Email        *string
	PasswordHash *string
	Role         *string
	Phone        *string
}

// Reader defines user read operations.
type Reader interface {
	List(ctx context.Context, params ListParams) ([]User, error)
	Count(ctx context.Context, params ListParams) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
}

// Writer defines user write operations.
type Writer interface {
	Create(ctx context.Context, params CreateParams) (User, error)
	Update(ctx context.Context, params UpdateParams) (User, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// Repository combines user reads and writes.
type Repository interface {
	Reader
	Writer
}
