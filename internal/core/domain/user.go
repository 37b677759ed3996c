package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered platform account.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// Principal returns the authorization identity of u.
func (u User) Principal() Principal {
	return Principal{UserID: u.ID, Role: u.Role}
}
