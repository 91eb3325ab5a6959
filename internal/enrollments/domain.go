package enrollments

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment records a student's selection of a class offering. The
// class fields are denormalized from the offering at selection time;
// referential integrity back to the offering is advisory.
type Enrollment struct {
	ID             uuid.UUID `json:"id"`
	UserEmail      string    `json:"userEmail"`
	ClassID        uuid.UUID `json:"classId"`
	ClassName      string    `json:"className,omitempty"`
	Image          string    `json:"image,omitempty"`
	InstructorName string    `json:"instructorName,omitempty"`
	Price          float64   `json:"price"`
	CreatedAt      time.Time `json:"createdAt"`
}
