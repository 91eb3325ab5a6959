package users

import (
	"time"

	"github.com/google/uuid"
)

// Account represents one platform user. Email is the unique natural
// key; role is one of student, instructor, admin, or empty when unset.
type Account struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	PhotoURL  string    `json:"photoUrl,omitempty"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
