package classes

import (
	"time"

	"github.com/google/uuid"
)

// Status tracks the admin review state of an offering.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

// ClassOffering is an instructor-authored class. Status and feedback
// are mutated only through the admin endpoints.
type ClassOffering struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Image           string    `json:"image,omitempty"`
	InstructorName  string    `json:"instructorName,omitempty"`
	InstructorEmail string    `json:"instructorEmail"`
	Price           float64   `json:"price"`
	AvailableSeats  int       `json:"availableSeats"`
	Status          Status    `json:"status"`
	Feedback        string    `json:"feedback,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
