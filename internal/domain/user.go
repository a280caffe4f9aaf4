package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
// The core receives only the user ID; the full record lives at the
// identity boundary (register/login).
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
