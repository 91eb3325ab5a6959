package enrollments

import (
	"context"

	"github.com/google/uuid"
)

// RepositoryPort defines data access methods for enrollments.
type RepositoryPort interface {
	Insert(ctx context.Context, e Enrollment) (uuid.UUID, error)
	ListByUserEmail(ctx context.Context, email string) ([]Enrollment, error)
}

// Service handles enrollment business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Select records a class selection. Nothing prevents the same student
// selecting the same class twice; the storefront deduplicates.
func (s *Service) Select(ctx context.Context, req SelectClassRequest) (uuid.UUID, error) {
	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		return uuid.Nil, err
	}
	return s.repo.Insert(ctx, Enrollment{
		UserEmail:      req.UserEmail,
		ClassID:        classID,
		ClassName:      req.ClassName,
		Image:          req.Image,
		InstructorName: req.InstructorName,
		Price:          req.Price,
	})
}

// ListByUserEmail returns enrollments owned by the given email.
func (s *Service) ListByUserEmail(ctx context.Context, email string) ([]Enrollment, error) {
	return s.repo.ListByUserEmail(ctx, email)
}
