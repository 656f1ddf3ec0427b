package transport

import (
	"time"

	"travel_booking_backend/platform/pagination"

	"github.com/google/uuid"
)

type ListUsersRequest struct {
	UserName string `form:"userName" validate:"omitempty,max=150"`
	Email    string `form:"email" validate:"omitempty,max=150"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	Limit    int    `form:"limit" validate:"omitempty,min=1,max=100"`
}

type CreateUserRequest struct {
	UserName string  `json:"userName" validate:"required,min=2,max=150"`
	Email    string  `json:"email" validate:"required,email,max=150"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Role     string  `json:"role" validate:"omitempty,userrole"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

type UpdateUserRequest struct {
	UserName *string `json:"userName,omitempty" validate:"omitempty,min=2,max=150"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=150"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	Role     *string `json:"role,omitempty" validate:"omitempty,userrole"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

type UserResponse struct {
	ID                uuid.UUID `json:"_id"`
	UserName          string    `json:"userName"`
	Email             string    `json:"email"`
	Role              string    `json:"role"`
	IsAccountVerified bool      `json:"isAccountVerified"`
	Phone             *string   `json:"phone,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type UserListResponse struct {
	Items []UserResponse
	Meta  pagination.Meta
}
