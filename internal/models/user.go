package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AuthProviderLocal  = "local"
	AuthProviderGoogle = "google"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           uuid.UUID `json:"id" db:"id"`                       // Primary key
	Email        string    `json:"email" db:"email"`                 // Unique login key
	Name         string    `json:"name" db:"name"`                   // Display name
	PasswordHash *string   `json:"-" db:"password_hash"`             // Nil for federated accounts
	AuthProvider string    `json:"auth_provider" db:"auth_provider"` // local or google
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
}

// User is the public view of a user returned to clients.
// swagger:model User
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// Public strips credentials from u.
func (u *UserDB) Public() User {
	return User{ID: u.ID, Email: u.Email, Name: u.Name}
}
