package transport

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	UserName        string `json:"userName" validate:"required,min=2,max=150"`
	Email           string `json:"email" validate:"required,email,max=150"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserSummary struct {
	ID       uuid.UUID `json:"_id"`
	UserName string    `json:"userName"`
	Email    string    `json:"email"`
}

type RegisterResponse struct {
	User UserSummary `json:"user"`
}

type LoginResponse struct {
	User  UserSummary `json:"user"`
	Token string      `json:"token"`
}

type ProfileResponse struct {
	ID                uuid.UUID `json:"_id"`
	UserName          string    `json:"userName"`
	Email             string    `json:"email"`
	Role              string    `json:"role"`
	IsAccountVerified bool      `json:"isAccountVerified"`
	Phone             *string   `json:"phone,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
