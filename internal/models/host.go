package models

import (
	"time"

	"github.com/google/uuid"
)

// Host is a person who presents shows.
// swagger:model Host
type Host struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Bio       string    `json:"bio" db:"bio"`
	Email     string    `json:"email" db:"email"`
	ImageURL  *string   `json:"image_url" db:"image_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// HostInput is the client-supplied part of a host, used for create and full update.
// swagger:model HostInput
type HostInput struct {
	// required: true
	Name string `json:"name" validate:"required,notblank,max=200"`
	Bio  string `json:"bio" validate:"max=5000"`
	// required: true
	Email    string  `json:"email" validate:"required,email"`
	ImageURL *string `json:"image_url" validate:"omitempty,max=2048"`
}
