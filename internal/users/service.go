package users

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pranayama-studio/pranayama-api/internal/shared"
)

// RepositoryPort defines data access methods for accounts.
type RepositoryPort interface {
	List(ctx context.Context) ([]Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	Insert(ctx context.Context, name, email, photoURL, role string) (uuid.UUID, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role string) (int64, error)
}

// Service handles account business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Register creates an account unless the email is already taken.
// Re-registering an existing email is a no-op reported as
// shared.ErrAlreadyExists, never a failure.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (uuid.UUID, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return uuid.Nil, shared.ErrAlreadyExists
	} else if !errors.Is(err, shared.ErrNotFound) {
		return uuid.Nil, err
	}
	return s.repo.Insert(ctx, req.Name, req.Email, req.PhotoURL, req.Role)
}

// List returns all accounts.
func (s *Service) List(ctx context.Context) ([]Account, error) {
	return s.repo.List(ctx)
}

// FindByEmail returns one account or shared.ErrNotFound.
func (s *Service) FindByEmail(ctx context.Context, email string) (*Account, error) {
	return s.repo.FindByEmail(ctx, email)
}

// AssignRole mutates the role on an account by identifier.
func (s *Service) AssignRole(ctx context.Context, id uuid.UUID, role string) (int64, error) {
	return s.repo.UpdateRole(ctx, id, role)
}
