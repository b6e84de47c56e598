package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing a registered principal.
// PasswordHash never appears in API responses; handlers expose Public() only.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// PublicUser carries the fields of a User that are safe to return to callers.
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Public strips the credential material from a User.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
