package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"travel_booking_backend/platform/apperr"
)

const destinationNotFoundMessage = "Destination not found"

const destinationColumns = `id, name, description, image_url, image_public_id, created_at, updated_at`

const listDestinationsQuery = `
	SELECT ` + destinationColumns + `
	FROM destinations
	WHERE deleted_at IS NULL AND ($1 = '' OR name ILIKE '%' || $1 || '%')
	ORDER BY created_at DESC, id
	LIMIT $2 OFFSET $3`

const countDestinationsQuery = `
	SELECT COUNT(*)
	FROM destinations
	WHERE deleted_at IS NULL AND ($1 = '' OR name ILIKE '%' || $1 || '%')`

const getDestinationQuery = `
	SELECT ` + destinationColumns + `
	FROM destinations
	WHERE id = $1 AND deleted_at IS NULL`

const createDestinationQuery = `
	INSERT INTO destinations (name, description, image_url, image_public_id)
	VALUES ($1, $2, $3, $4)
	RETURNING ` + destinationColumns

const updateDestinationQuery = `
	UPDATE destinations
	SET name = COALESCE($2, name),
		description = COALESCE($3, description),
		image_url = COALESCE($4, image_url),
		image_public_id = COALESCE($5, image_public_id),
		updated_at = now()
	WHERE id = $1 AND deleted_at IS NULL
	RETURNING ` + destinationColumns

const softDeleteDestinationQuery = `
	UPDATE destinations SET deleted_at = now(), updated_at = now()
	WHERE id = $1 AND deleted_at IS NULL`

// Repo implements the destinations repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new destinations repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

func scanDestination(row pgx.Row) (Destination, error) {
	var d Destination
	err := row.Scan(&d.ID, &d.Name, &d.Description, &d.ImageURL, &d.ImagePublicID, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

// List returns one page of destinations, newest first.
func (r *Repo) List(ctx context.Context, params ListParams) ([]Destination, error) {
	rows, err := r.pool.Query(ctx, listDestinationsQuery, params.Name, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	defer rows.Close()

	items := make([]Destination, 0)
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("scan destination: %w", err)
		}
		items = append(items, d)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate destinations: %w", rows.Err())
	}
	return items, nil
}

// Count returns the number of destinations matching the filters.
func (r *Repo) Count(ctx context.Context, params ListParams) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, countDestinationsQuery, params.Name).Scan(&total); err != nil {
		return 0, fmt.Errorf("count destinations: %w", err)
	}
	return total, nil
}

// GetByID retrieves a destination by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Destination, error) {
	d, err := scanDestination(r.pool.QueryRow(ctx, getDestinationQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Destination{}, apperr.NotFound(destinationNotFoundMessage)
		}
		return Destination{}, fmt.Errorf("get destination by id: %w", err)
	}
	return d, nil
}

// Create inserts a destination.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Destination, error) {
	d, err := scanDestination(r.pool.QueryRow(ctx, createDestinationQuery,
		params.Name, params.Description, params.ImageURL, params.ImagePublicID,
	))
	if err != nil {
		return Destination{}, fmt.Errorf("create destination: %w", err)
	}
	return d, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, params UpdateParams) (Destination, error) {
	d, err := scanDestination(r.pool.QueryRow(ctx, updateDestinationQuery,
		params.ID, params.Name, params.Description, params.ImageURL, params.ImagePublicID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Destination{}, apperr.NotFound(destinationNotFoundMessage)
		}
		return Destination{}, fmt.Errorf("update destination: %w", err)
	}
	return d, nil
}

// SoftDelete stamps deleted_at on the destination.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, softDeleteDestinationQuery, id)
	if err != nil {
		return fmt.Errorf("delete destination: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(destinationNotFoundMessage)
	}
	return nil
}
