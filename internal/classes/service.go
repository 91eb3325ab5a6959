package classes

import (
	"context"

	"github.com/google/uuid"
)

// RepositoryPort defines data access methods for offerings.
type RepositoryPort interface {
	Insert(ctx context.Context, c ClassOffering) (uuid.UUID, error)
	ListByInstructor(ctx context.Context, email string) ([]ClassOffering, error)
	ListAll(ctx context.Context) ([]ClassOffering, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (int64, error)
	UpdateFeedback(ctx context.Context, id uuid.UUID, feedback string) (int64, error)
}

// Service handles offering business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Create stores a new offering in pending status.
func (s *Service) Create(ctx context.Context, req CreateClassRequest) (uuid.UUID, error) {
	return s.repo.Insert(ctx, ClassOffering{
		Name:            req.Name,
		Image:           req.Image,
		InstructorName:  req.InstructorName,
		InstructorEmail: req.InstructorEmail,
		Price:           req.Price,
		AvailableSeats:  req.AvailableSeats,
		Status:          StatusPending,
	})
}

// ListByInstructor returns offerings owned by the given email.
func (s *Service) ListByInstructor(ctx context.Context, email string) ([]ClassOffering, error) {
	return s.repo.ListByInstructor(ctx, email)
}

// ListAll returns every offering.
func (s *Service) ListAll(ctx context.Context) ([]ClassOffering, error) {
	return s.repo.ListAll(ctx)
}

// SetStatus updates the review status on one offering.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status Status) (int64, error) {
	return s.repo.UpdateStatus(ctx, id, status)
}

// SendFeedback attaches admin feedback to one offering.
func (s *Service) SendFeedback(ctx context.Context, id uuid.UUID, feedback string) (int64, error) {
	return s.repo.UpdateFeedback(ctx, id, feedback)
}
