package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ShowStatusActive    = "active"
	ShowStatusPaused    = "paused"
	ShowStatusCompleted = "completed"
)

// Show is a podcast series presented by a host.
// swagger:model Show
type Show struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description" db:"description"`
	HostID        uuid.UUID `json:"host_id" db:"host_id"`
	Category      string    `json:"category" db:"category"`
	CoverImageURL *string   `json:"cover_image_url" db:"cover_image_url"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// ShowInput is the client-supplied part of a show.
// swagger:model ShowInput
type ShowInput struct {
	// required: true
	Title       string `json:"title" validate:"required,notblank,max=300"`
	Description string `json:"description" validate:"max=5000"`
	// required: true
	HostID uuid.UUID `json:"host_id" validate:"required"`
	// required: true
	Category      string  `json:"category" validate:"required,notblank,max=100"`
	CoverImageURL *string `json:"cover_image_url" validate:"omitempty,max=2048"`
	// default: active
	Status string `json:"status" validate:"omitempty,oneof=active paused completed"`
}

// Normalize fills defaults.
func (in *ShowInput) Normalize() {
	if in.Status == "" {
		in.Status = ShowStatusActive
	}
}
