package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sbilibin2017/podcast-network/internal/logger"
	"github.com/sbilibin2017/podcast-network/internal/models"
)

//go:generate mockgen -source=episodes.go -destination=mock_episodes.go -package=services

// EpisodeRepository persists episodes scoped to their owner.
type EpisodeRepository interface {
	Create(ctx context.Context, episode *models.Episode) error
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Episode, error)
	Update(ctx context.Context, userID, id uuid.UUID, in models.EpisodeInput) (*models.Episode, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, showID *uuid.UUID) ([]models.Episode, error)
	ListByStatus(ctx context.Context, userID uuid.UUID, status string, limit int) ([]models.Episode, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// ShowGetter looks up a user's show.
type ShowGetter interface {
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Show, error)
}

// EpisodeService manages a user's episodes.
type EpisodeService struct {
	repo   EpisodeRepository
	shows  ShowGetter
	events EventPublisher
}

// NewEpisodeService creates a new EpisodeService.
func NewEpisodeService(repo EpisodeRepository, shows ShowGetter, events EventPublisher) *EpisodeService {
	return &EpisodeService{repo: repo, shows: shows, events: events}
}

// Create stores a new episode owned by userID. The show must belong to the same user.
func (s *EpisodeService) Create(ctx context.Context, userID uuid.UUID, in models.EpisodeInput) (*models.Episode, error) {
	in.Normalize()
	if err := s.checkShow(ctx, userID, in.ShowID); err != nil {
		return nil, err
	}

	episode := &models.Episode{
		ID:              uuid.New(),
		UserID:          userID,
		ShowID:          in.ShowID,
		Title:           in.Title,
		Description:     in.Description,
		DurationMinutes: in.DurationMinutes,
		AudioURL:        in.AudioURL,
		VideoURL:        in.VideoURL,
		ThumbnailURL:    in.ThumbnailURL,
		EpisodeNumber:   in.EpisodeNumber,
		PublishedAt:     now(),
		Status:          in.Status,
	}
	if err := s.repo.Create(ctx, episode); err != nil {
		logger.Log.Errorw("failed to create episode", "user_id", userID, "err", err)
		return nil, err
	}

	s.events.Publish(ctx, newEvent(userID, models.EntityEpisode, episode.ID, models.OperationCreated))
	return episode, nil
}

// Get returns the user's episode or ErrNotFound.
func (s *EpisodeService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Episode, error) {
	episode, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return episode, nil
}

// Update replaces the user's episode or returns ErrNotFound.
func (s *EpisodeService) Update(ctx context.Context, userID, id uuid.UUID, in models.EpisodeInput) (*models.Episode, error) {
	in.Normalize()
	if err := s.checkShow(ctx, userID, in.ShowID); err != nil {
		return nil, err
	}

	episode, err := s.repo.Update(ctx, userID, id, in)
	if err != nil {
		return nil, mapNotFound(err)
	}

	s.events.Publish(ctx, newEvent(userID, models.EntityEpisode, id, models.OperationUpdated))
	return episode, nil
}

// Delete removes the user's episode or returns ErrNotFound.
func (s *EpisodeService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return mapNotFound(err)
	}

	s.events.Publish(ctx, newEvent(userID, models.EntityEpisode, id, models.OperationDeleted))
	return nil
}

// List returns the user's episodes, optionally restricted to one show.
func (s *EpisodeService) List(ctx context.Context, userID uuid.UUID, showID *uuid.UUID) ([]models.Episode, error) {
	return s.repo.List(ctx, userID, showID)
}

// Popular returns the user's most recently published episodes.
func (s *EpisodeService) Popular(ctx context.Context, userID uuid.UUID) ([]models.Episode, error) {
	return s.repo.ListByStatus(ctx, userID, models.EpisodeStatusPublished, popularEpisodesLimit)
}

func (s *EpisodeService) checkShow(ctx context.Context, userID, showID uuid.UUID) error {
	_, err := s.shows.Get(ctx, userID, showID)
	if errors.Is(mapNotFound(err), ErrNotFound) {
		return ErrInvalidReference
	}
	return err
}
