package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"travel_booking_backend/platform/apperr"
	"travel_booking_backend/platform/db"
)

const (
	userNotFoundMessage = "User not found"
	emailExistsMessage  = "Email already exists"
)

const userColumns = `id, user_name, email, password_hash, role, is_account_verified, phone, created_at, updated_at`

const getUserByEmailQuery = `
	SELECT ` + userColumns + `
	FROM users
	WHERE lower(email) = lower($1) AND deleted_at IS NULL`

const getUserByIDQuery = `
	SELECT ` + userColumns + `
	FROM users
	WHERE id = $1 AND deleted_at IS NULL`

// Unique index on lower(email) covers soft-deleted rows too, so the
// existence check must as well.
const emailExistsQuery = `SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower($1))`

const createUserQuery = `
	INSERT INTO users (user_name, email, password_hash, role)
	VALUES ($1, $2, $3, $4)
	RETURNING ` + userColumns

// Repo implements the auth repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new auth repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.UserName, &u.Email, &u.PasswordHash, &u.Role, &u.IsAccountVerified, &u.Phone, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetUserByEmail looks a user up by case-insensitive email.
func (r *Repo) GetUserByEmail(ctx context.Context, email string) (User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, getUserByEmailQuery, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, apperr.NotFound(userNotFoundMessage)
		}
		return User{}, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// GetUserByID retrieves a user by ID.
func (r *Repo) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, getUserByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, apperr.NotFound(userNotFoundMessage)
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// EmailExists reports whether any account uses email.
func (r *Repo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, emailExistsQuery, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}
	return exists, nil
}

// CreateUser inserts a user. A concurrent insert of the same email surfaces
// as Conflict.
func (r *Repo) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, createUserQuery, params.UserName, params.Email, params.PasswordHash, params.Role))
	if err != nil {
		if db.IsUniqueViolation(err) {
			return User{}, apperr.Conflict(emailExistsMessage)
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}
