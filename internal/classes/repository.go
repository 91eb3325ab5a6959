package classes

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides PostgreSQL backed persistence for offerings.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const selectColumns = `id, name, image, instructor_name, instructor_email, price, available_seats, status, feedback, created_at`

func scanOffering(row pgx.Row) (ClassOffering, error) {
	var c ClassOffering
	err := row.Scan(&c.ID, &c.Name, &c.Image, &c.InstructorName, &c.InstructorEmail,
		&c.Price, &c.AvailableSeats, &c.Status, &c.Feedback, &c.CreatedAt)
	return c, err
}

func collectOfferings(rows pgx.Rows) ([]ClassOffering, error) {
	defer rows.Close()
	var offerings []ClassOffering
	for rows.Next() {
		c, err := scanOffering(rows)
		if err != nil {
			return nil, err
		}
		offerings = append(offerings, c)
	}
	return offerings, rows.Err()
}

// Insert stores a new offering and returns the generated identifier.
func (r *Repository) Insert(ctx context.Context, c ClassOffering) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx,
		`INSERT INTO classes (name, image, instructor_name, instructor_email, price, available_seats, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		c.Name, c.Image, c.InstructorName, c.InstructorEmail, c.Price, c.AvailableSeats, c.Status,
	).Scan(&id)
	return id, err
}

// ListByInstructor returns offerings owned by the given email.
func (r *Repository) ListByInstructor(ctx context.Context, email string) ([]ClassOffering, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+selectColumns+` FROM classes WHERE instructor_email = $1 ORDER BY created_at`, email)
	if err != nil {
		return nil, err
	}
	return collectOfferings(rows)
}

// ListAll returns every offering regardless of status.
func (r *Repository) ListAll(ctx context.Context) ([]ClassOffering, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+selectColumns+` FROM classes ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	return collectOfferings(rows)
}

// UpdateStatus sets the review status on one offering and reports how
// many rows matched.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE classes SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// UpdateFeedback attaches admin feedback to one offering.
func (r *Repository) UpdateFeedback(ctx context.Context, id uuid.UUID, feedback string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE classes SET feedback = $1 WHERE id = $2`, feedback, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
