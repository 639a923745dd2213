package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sbilibin2017/podcast-network/internal/logger"
	"github.com/sbilibin2017/podcast-network/internal/models"
)

//go:generate mockgen -source=shows.go -destination=mock_shows.go -package=services

// ShowRepository persists shows scoped to their owner.
type ShowRepository interface {
	Create(ctx context.Context, show *models.Show) error
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Show, error)
	Update(ctx context.Context, userID, id uuid.UUID, in models.ShowInput) (*models.Show, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]models.Show, error)
	ListByStatus(ctx context.Context, userID uuid.UUID, status string, limit int) ([]models.Show, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// HostGetter looks up a user's host.
type HostGetter interface {
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Host, error)
}

// ShowService manages a user's shows.
type ShowService struct {
	repo   ShowRepository
	hosts  HostGetter
	events EventPublisher
}

// NewShowService creates a new ShowService.
func NewShowService(repo ShowRepository, hosts HostGetter, events EventPublisher) *ShowService {
	return &ShowService{repo: repo, hosts: hosts, events: events}
}

// Create stores a new show owned by userID. The host must belong to the same user.
func (s *ShowService) Create(ctx context.Context, userID uuid.UUID, in models.ShowInput) (*models.Show, error) {
	in.Normalize()
	if err := s.checkHost(ctx, userID, in.HostID); err != nil {
		return nil, err
	}

	show := &models.Show{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         in.Title,
		Description:   in.Description,
		HostID:        in.HostID,
		Category:      in.Category,
		CoverImageURL: in.CoverImageURL,
		Status:        in.Status,
		CreatedAt:     now(),
	}
	if err := s.repo.Create(ctx, show); err != nil {
		logger.Log.Errorw("failed to create show", "user_id", userID, "err", err)
		return nil, err
	}

	s.events.Publish(ctx, newEvent(userID, models.EntityShow, show.ID, models.OperationCreated))
	return show, nil
}

// Get returns the user's show or ErrNotFound.
func (s *ShowService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Show, error) {
	show, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return show, nil
}

// Update replaces the user's show or returns ErrNotFound.
func (s *ShowService) Update(ctx context.Context, userID, id uuid.UUID, in models.ShowInput) (*models.Show, error) {
	in.Normalize()
	if err := s.checkHost(ctx, userID, in.HostID); err != nil {
		return nil, err
	}

	show, err := s.repo.Update(ctx, userID, id, in)
	if err != nil {
		return nil, mapNotFound(err)
	}

	s.events.Publish(ctx, newEvent(userID, models.EntityShow, id, models.OperationUpdated))
	return show, nil
}

// Delete removes the user's show or returns ErrNotFound. Its episodes are kept.
func (s *ShowService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return mapNotFound(err)
	}

	s.events.Publish(ctx, newEvent(userID, models.EntityShow, id, models.OperationDeleted))
	return nil
}

// List returns all of the user's shows.
func (s *ShowService) List(ctx context.Context, userID uuid.UUID) ([]models.Show, error) {
	return s.repo.List(ctx, userID)
}

// Popular returns the user's most recent active shows.
func (s *ShowService) Popular(ctx context.Context, userID uuid.UUID) ([]models.Show, error) {
	return s.repo.ListByStatus(ctx, userID, models.ShowStatusActive, popularShowsLimit)
}

func (s *ShowService) checkHost(ctx context.Context, userID, hostID uuid.UUID) error {
	_, err := s.hosts.Get(ctx, userID, hostID)
	if errors.Is(mapNotFound(err), ErrNotFound) {
		return ErrInvalidReference
	}
	return err
}
