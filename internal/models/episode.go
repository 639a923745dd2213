package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	EpisodeStatusDraft     = "draft"
	EpisodeStatusPublished = "published"
	EpisodeStatusArchived  = "archived"
)

// Episode is a single installment of a show.
// swagger:model Episode
type Episode struct {
	ID              uuid.UUID `json:"id" db:"id"`
	UserID          uuid.UUID `json:"user_id" db:"user_id"`
	ShowID          uuid.UUID `json:"show_id" db:"show_id"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	DurationMinutes int       `json:"duration_minutes" db:"duration_minutes"`
	AudioURL        *string   `json:"audio_url" db:"audio_url"`
	VideoURL        *string   `json:"video_url" db:"video_url"`
	ThumbnailURL    *string   `json:"thumbnail_url" db:"thumbnail_url"`
	EpisodeNumber   int       `json:"episode_number" db:"episode_number"`
	PublishedAt     time.Time `json:"published_at" db:"published_at"`
	Status          string    `json:"status" db:"status"`
}

// EpisodeInput is the client-supplied part of an episode.
// swagger:model EpisodeInput
type EpisodeInput struct {
	// required: true
	ShowID uuid.UUID `json:"show_id" validate:"required"`
	// required: true
	Title           string  `json:"title" validate:"required,notblank,max=300"`
	Description     string  `json:"description" validate:"max=5000"`
	DurationMinutes int     `json:"duration_minutes" validate:"gte=0"`
	AudioURL        *string `json:"audio_url" validate:"omitempty,max=2048"`
	VideoURL        *string `json:"video_url" validate:"omitempty,max=2048"`
	ThumbnailURL    *string `json:"thumbnail_url" validate:"omitempty,max=2048"`
	EpisodeNumber   int     `json:"episode_number" validate:"gte=0"`
	// default: draft
	Status string `json:"status" validate:"omitempty,oneof=draft published archived"`
}

// Normalize fills defaults.
func (in *EpisodeInput) Normalize() {
	if in.Status == "" {
		in.Status = EpisodeStatusDraft
	}
}
