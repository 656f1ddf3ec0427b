package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"travel_booking_backend/platform/apperr"
	"travel_booking_backend/platform/db"
)

const bookingNotFoundMessage = "Booking not found"

const bookingColumns = `b.id, b.user_id, b.contact_id, b.package_id, b.number_of_people,
	b.total_price::float8, b.status, b.created_at, b.updated_at,
	c.id, c.user_id, c.name, c.email, c.phone, c.created_at, c.updated_at`

const bookingFrom = `
	FROM bookings b
	JOIN booking_contacts c ON c.id = b.contact_id`

const getBookingQuery = `
	SELECT ` + bookingColumns + bookingFrom + `
	WHERE b.id = $1`

const insertContactQuery = `
	INSERT INTO booking_contacts (user_id, name, email, phone)
	VALUES ($1, $2, $3, $4)
	RETURNING id`

const insertBookingQuery = `
	INSERT INTO bookings (user_id, contact_id, package_id, number_of_people, total_price, status)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id`

const updateBookingQuery = `
	UPDATE bookings
	SET package_id = COALESCE($2, package_id),
		number_of_people = COALESCE($3, number_of_people),
		total_price = COALESCE($4, total_price),
		status = COALESCE($5, status),
		updated_at = now()
	WHERE id = $1
	RETURNING contact_id`

const updateContactQuery = `
	UPDATE booking_contacts
	SET name = COALESCE($2, name),
		email = COALESCE($3, email),
		phone = COALESCE($4, phone),
		updated_at = now()
	WHERE id = $1`

const deleteBookingQuery = `DELETE FROM bookings WHERE id = $1 RETURNING contact_id`

const deleteContactQuery = `DELETE FROM booking_contacts WHERE id = $1`

// querier is satisfied by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repo implements the bookings repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new bookings repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

func scanBooking(row pgx.Row) (Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID, &b.UserID, &b.ContactID, &b.PackageID, &b.NumberOfPeople,
		&b.TotalPrice, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		&b.Contact.ID, &b.Contact.UserID, &b.Contact.Name, &b.Contact.Email, &b.Contact.Phone,
		&b.Contact.CreatedAt, &b.Contact.UpdatedAt,
	)
	return b, err
}

func listFilter(params ListParams) (string, []any) {
	whereClauses := []string{"TRUE"}
	args := []any{}

	if params.UserID != nil {
		args = append(args, *params.UserID)
		whereClauses = append(whereClauses, fmt.Sprintf("b.user_id = $%d", len(args)))
	}
	if params.ContactID != nil {
		args = append(args, *params.ContactID)
		whereClauses = append(whereClauses, fmt.Sprintf("b.contact_id = $%d", len(args)))
	}
	if params.PackageID != nil {
		args = append(args, *params.PackageID)
		whereClauses = append(whereClauses, fmt.Sprintf("b.package_id = $%d", len(args)))
	}
	if params.Status != "" {
		args = append(args, params.Status)
		whereClauses = append(whereClauses, fmt.Sprintf("b.status = $%d", len(args)))
	}

	return strings.Join(whereClauses, " AND "), args
}

// List returns one page of bookings, newest first.
func (r *Repo) List(ctx context.Context, params ListParams) ([]Booking, error) {
	where, args := listFilter(params)
	args = append(args, params.Limit, params.Offset)
	query := fmt.Sprintf(`
	SELECT %s %s
	WHERE %s
	ORDER BY b.created_at DESC, b.id
	LIMIT $%d OFFSET $%d`, bookingColumns, bookingFrom, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	items := make([]Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		items = append(items, b)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate bookings: %w", rows.Err())
	}
	return items, nil
}

// Count returns the number of bookings matching the filters.
func (r *Repo) Count(ctx context.Context, params ListParams) (int, error) {
	where, args := listFilter(params)
	query := "SELECT COUNT(*) FROM bookings b WHERE " + where

	var total int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return total, nil
}

// GetByID retrieves a booking with its contact.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Booking, error) {
	return getBooking(ctx, r.pool, id)
}

func getBooking(ctx context.Context, q querier, id uuid.UUID) (Booking, error) {
	b, err := scanBooking(q.QueryRow(ctx, getBookingQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Booking{}, apperr.NotFound(bookingNotFoundMessage)
		}
		return Booking{}, fmt.Errorf("get booking by id: %w", err)
	}
	return b, nil
}

// Create inserts the contact then the booking.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Booking, error) {
	var created Booking
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		var contactID uuid.UUID
		if err := tx.QueryRow(ctx, insertContactQuery,
			params.UserID, params.Contact.Name, params.Contact.Email, params.Contact.Phone,
		).Scan(&contactID); err != nil {
			return fmt.Errorf("insert contact: %w", err)
		}

		var bookingID uuid.UUID
		if err := tx.QueryRow(ctx, insertBookingQuery,
			params.UserID, contactID, params.PackageID, params.NumberOfPeople, params.TotalPrice, params.Status,
		).Scan(&bookingID); err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}

		var err error
		created, err = getBooking(ctx, tx, bookingID)
		return err
	})
	if err != nil {
		return Booking{}, fmt.Errorf("create booking: %w", err)
	}
	return created, nil
}

// Update edits the booking and its contact.
func (r *Repo) Update(ctx context.Context, params UpdateParams) (Booking, error) {
	var updated Booking
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		var contactID uuid.UUID
		if err := tx.QueryRow(ctx, updateBookingQuery,
			params.ID, params.PackageID, params.NumberOfPeople, params.TotalPrice, params.Status,
		).Scan(&contactID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperr.NotFound(bookingNotFoundMessage)
			}
			return fmt.Errorf("update booking: %w", err)
		}

		if params.Contact != nil {
			if _, err := tx.Exec(ctx, updateContactQuery,
				contactID, params.Contact.Name, params.Contact.Email, params.Contact.Phone,
			); err != nil {
				return fmt.Errorf("update contact: %w", err)
			}
		}

		var err error
		updated, err = getBooking(ctx, tx, params.ID)
		return err
	})
	if err != nil {
		return Booking{}, err
	}
	return updated, nil
}

// Delete removes the booking and its contact.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		var contactID uuid.UUID
		if err := tx.QueryRow(ctx, deleteBookingQuery, id).Scan(&contactID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperr.NotFound(bookingNotFoundMessage)
			}
			return fmt.Errorf("delete booking: %w", err)
		}
		if _, err := tx.Exec(ctx, deleteContactQuery, contactID); err != nil {
			return fmt.Errorf("delete contact: %w", err)
		}
		return nil
	})
}
