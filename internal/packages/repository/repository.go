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

const packageNotFoundMessage = "Package not found"

const packageColumns = `id, destination_id, name, description, duration, included,
	image_url, image_public_id, group_size, price::float8, created_at, updated_at`

const listPackagesQuery = `
	SELECT ` + packageColumns + `
	FROM packages
	WHERE destination_id = $1 AND deleted_at IS NULL
	ORDER BY created_at DESC, id
	LIMIT $2 OFFSET $3`

const countPackagesQuery = `
	SELECT COUNT(*)
	FROM packages
	WHERE destination_id = $1 AND deleted_at IS NULL`

const getPackageQuery = `
	SELECT ` + packageColumns + `
	FROM packages
	WHERE id = $1 AND deleted_at IS NULL`

const createPackageQuery = `
	INSERT INTO packages (
		destination_id, name, description, duration, included,
		image_url, image_public_id, group_size, price
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING ` + packageColumns

const updatePackageQuery = `
	UPDATE packages
	SET destination_id = COALESCE($2, destination_id),
		name = COALESCE($3, name),
		description = COALESCE($4, description),
		duration = COALESCE($5, duration),
		included = COALESCE($6, included),
		image_url = COALESCE($7, image_url),
		image_public_id = COALESCE($8, image_public_id),
		group_size = COALESCE($9, group_size),
		price = COALESCE($10, price),
		updated_at = now()
	WHERE id = $1 AND deleted_at IS NULL
	RETURNING ` + packageColumns

const softDeletePackageQuery = `
	UPDATE packages SET deleted_at = now(), updated_at = now()
	WHERE id = $1 AND deleted_at IS NULL`

const packageStatsQuery = `
	SELECT destination_id, COUNT(*), COALESCE(MIN(price), 0)::float8
	FROM packages
	WHERE destination_id = ANY($1) AND deleted_at IS NULL
	GROUP BY destination_id`

// Repo implements the packages repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new packages repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

func scanPackage(row pgx.Row) (Package, error) {
	var p Package
	err := row.Scan(
		&p.ID, &p.DestinationID, &p.Name, &p.Description, &p.Duration, &p.Included,
		&p.ImageURL, &p.ImagePublicID, &p.GroupSize, &p.Price, &p.CreatedAt, &p.UpdatedAt,
	)
	if p.Included == nil {
		p.Included = []string{}
	}
	return p, err
}

// ListByDestination returns one page of a destination's packages, newest first.
func (r *Repo) ListByDestination(ctx context.Context, params ListParams) ([]Package, error) {
	rows, err := r.pool.Query(ctx, listPackagesQuery, params.DestinationID, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()

	items := make([]Package, 0)
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		items = append(items, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate packages: %w", rows.Err())
	}
	return items, nil
}

// CountByDestination returns the number of live packages of a destination.
func (r *Repo) CountByDestination(ctx context.Context, destinationID uuid.UUID) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, countPackagesQuery, destinationID).Scan(&total); err != nil {
		return 0, fmt.Errorf("count packages: %w", err)
	}
	return total, nil
}

// GetByID retrieves a package by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Package, error) {
	p, err := scanPackage(r.pool.QueryRow(ctx, getPackageQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Package{}, apperr.NotFound(packageNotFoundMessage)
		}
		return Package{}, fmt.Errorf("get package by id: %w", err)
	}
	return p, nil
}

// StatsByDestinationIDs returns count and minimum price per destination.
// Destinations without live packages are absent from the map.
func (r *Repo) StatsByDestinationIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Stats, error) {
	out := make(map[uuid.UUID]Stats, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.pool.Query(ctx, packageStatsQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("package stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id uuid.UUID
			st Stats
		)
		if err := rows.Scan(&id, &st.Count, &st.MinPrice); err != nil {
			return nil, fmt.Errorf("scan package stats: %w", err)
		}
		out[id] = st
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate package stats: %w", rows.Err())
	}
	return out, nil
}

// Create inserts a package.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Package, error) {
	included := params.Included
	if included == nil {
		included = []string{}
	}
	p, err := scanPackage(r.pool.QueryRow(ctx, createPackageQuery,
		params.DestinationID, params.Name, params.Description, params.Duration, included,
		params.ImageURL, params.ImagePublicID, params.GroupSize, params.Price,
	))
	if err != nil {
		return Package{}, fmt.Errorf("create package: %w", err)
	}
	return p, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, params UpdateParams) (Package, error) {
	p, err := scanPackage(r.pool.QueryRow(ctx, updatePackageQuery,
		params.ID, params.DestinationID, params.Name, params.Description, params.Duration,
		params.Included, params.ImageURL, params.ImagePublicID, params.GroupSize, params.Price,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Package{}, apperr.NotFound(packageNotFoundMessage)
		}
		return Package{}, fmt.Errorf("update package: %w", err)
	}
	return p, nil
}

// SoftDelete stamps deleted_at on the package.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, softDeletePackageQuery, id)
	if err != nil {
		return fmt.Errorf("delete package: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(packageNotFoundMessage)
	}
	return nil
}
