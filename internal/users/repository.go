package users

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pranayama-studio/pranayama-api/internal/gate"
	"github.com/pranayama-studio/pranayama-api/internal/shared"
)

// Repository provides PostgreSQL backed persistence for accounts.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// List returns all accounts.
func (r *Repository) List(ctx context.Context) ([]Account, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, email, photo_url, role, created_at FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var accounts []Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.PhotoURL, &a.Role, &a.CreatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// FindByEmail fetches one account by its natural key.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	var a Account
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, photo_url, role, created_at FROM users WHERE email = $1`, email,
	).Scan(&a.ID, &a.Name, &a.Email, &a.PhotoURL, &a.Role, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Insert stores a new account and returns the generated identifier.
// A duplicate email surfaces as shared.ErrAlreadyExists.
func (r *Repository) Insert(ctx context.Context, name, email, photoURL, role string) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, photo_url, role) VALUES ($1, $2, $3, $4) RETURNING id`,
		name, email, photoURL, role,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return uuid.Nil, shared.ErrAlreadyExists
		}
		return uuid.Nil, err
	}
	return id, nil
}

// UpdateRole sets the role on the account with the given identifier and
// reports how many rows matched.
func (r *Repository) UpdateRole(ctx context.Context, id uuid.UUID, role string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET role = $1 WHERE id = $2`, role, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// RoleByEmail resolves the current role for an email, satisfying the
// gate.RoleLookup capability.
func (r *Repository) RoleByEmail(ctx context.Context, email string) (gate.Role, error) {
	var role string
	err := r.pool.QueryRow(ctx, `SELECT role FROM users WHERE email = $1`, email).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return gate.RoleUnset, shared.ErrNotFound
		}
		return gate.RoleUnset, err
	}
	return gate.Role(role), nil
}

var _ gate.RoleLookup = (*Repository)(nil)
