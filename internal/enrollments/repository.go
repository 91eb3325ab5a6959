package enrollments

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides PostgreSQL backed persistence for enrollments.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Insert stores a new enrollment and returns the generated identifier.
func (r *Repository) Insert(ctx context.Context, e Enrollment) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx,
		`INSERT INTO selected_classes (user_email, class_id, class_name, image, instructor_name, price)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		e.UserEmail, e.ClassID, e.ClassName, e.Image, e.InstructorName, e.Price,
	).Scan(&id)
	return id, err
}

// ListByUserEmail returns enrollments owned by the given email.
func (r *Repository) ListByUserEmail(ctx context.Context, email string) ([]Enrollment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_email, class_id, class_name, image, instructor_name, price, created_at
		 FROM selected_classes WHERE user_email = $1 ORDER BY created_at`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var enrollments []Enrollment
	for rows.Next() {
		var e Enrollment
		if err := rows.Scan(&e.ID, &e.UserEmail, &e.ClassID, &e.ClassName, &e.Image,
			&e.InstructorName, &e.Price, &e.CreatedAt); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}
