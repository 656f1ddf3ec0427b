package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

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

const userColumns = `id, user_name, email, role, is_account_verified, phone, created_at, updated_at`

const getUserByIDQuery = `
	SELECT ` + userColumns + `
	FROM users
	WHERE id = $1 AND deleted_at IS NULL`

const emailTakenQuery = `SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower($1) AND id <> $2)`

const createUserQuery = `
	INSERT INTO users (user_name, email, password_hash, role, phone)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING ` + userColumns

const updateUserQuery = `
	UPDATE users
	SET user_name = COALESCE($2, user_name),
		email = COALESCE($3, email),
		password_hash = COALESCE($4, password_hash),
		role = COALESCE($5, role),
		phone = COALESCE($6, phone),
		updated_at = now()
	WHERE id = $1 AND deleted_at IS NULL
	RETURNING ` + userColumns

const softDeleteUserQuery = `UPDATE users SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`

// Repo implements the users repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new users repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.UserName, &u.Email, &u.Role, &u.IsAccountVerified, &u.Phone, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func listFilter(params ListParams) (string, []any) {
	whereClauses := []string{"deleted_at IS NULL"}
	args := []any{}

	if params.UserName != "" {
		args = append(args, "%"+params.UserName+"%")
		whereClauses = append(whereClauses, fmt.Sprintf("user_name ILIKE $%d", len(args)))
	}
	if params.Email != "" {
		args = append(args, "%"+params.Email+"%")
		whereClauses = append(whereClauses, fmt.Sprintf("email ILIKE $%d", len(args)))
	}

	return strings.Join(whereClauses, " AND "), args
}

// List returns one page of users, newest first.
func (r *Repo) List(ctx context.Context, params ListParams) ([]User, error) {
	where, args := listFilter(params)
	args = append(args, params.Limit, params.Offset)
	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE %s
		ORDER BY created_at DESC, id
		LIMIT $%d OFFSET $%d`, userColumns, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	items := make([]User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		items = append(items, u)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate users: %w", rows.Err())
	}
	return items, nil
}

// Count returns the number of users matching the filters.
func (r *Repo) Count(ctx context.Context, params ListParams) (int, error) {
	where, args := listFilter(params)
	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM users WHERE "+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return total, nil
}

// GetByID retrieves a user by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, getUserByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, apperr.NotFound(userNotFoundMessage)
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// EmailTaken reports whether another account already uses email.
func (r *Repo) EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var taken bool
	if err := r.pool.QueryRow(ctx, emailTakenQuery, email, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("check email taken: %w", err)
	}
	return taken, nil
}

// Create inserts a user.
func (r *Repo) Create(ctx context.Context, params CreateParams) (User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, createUserQuery,
		params.UserName, params.Email, params.PasswordHash, params.Role, params.Phone,
	))
	if err != nil {
		if db.IsUniqueViolation(err) {
			return User{}, apperr.Conflict(emailExistsMessage)
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, params UpdateParams) (User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, updateUserQuery,
		params.ID, params.UserName, params.Email, params.PasswordHash, params.Role, params.Phone,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, apperr.NotFound(userNotFoundMessage)
		}
		if db.IsUniqueViolation(err) {
			return User{}, apperr.Conflict(emailExistsMessage)
		}
		return User{}, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// SoftDelete stamps deleted_at on the user.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, softDeleteUserQuery, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(userNotFoundMessage)
	}
	return nil
}
