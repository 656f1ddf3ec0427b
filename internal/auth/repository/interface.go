package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is an account row as seen by authentication.
type User struct {
	ID                uuid.UUID
	UserName          string
	Email             string
	PasswordHash      string
	Role              string
	IsAccountVerified bool
	Phone             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CreateUserParams contains data for registering a user.
type CreateUserParams struct {
	UserName     string
	Email        string
	PasswordHash string
	Role         string
}

// Repository defines account lookups used by authentication.
// Soft-deleted users are invisible to every method.
type Repository interface {
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, params CreateUserParams) (User, error)
}
