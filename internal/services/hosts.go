package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbilibin2017/podcast-network/internal/logger"
	"github.com/sbilibin2017/podcast-network/internal/models"
)

//go:generate mockgen -source=hosts.go -destination=mock_hosts.go -package=services

// HostRepository persists hosts scoped to their owner.
type HostRepository interface {
	Create(ctx context.Context, host *models.Host) error
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Host, error)
	Update(ctx context.Context, userID, id uuid.UUID, in models.HostInput) (*models.Host, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]models.Host, error)
	ListByNames(ctx context.Context, userID uuid.UUID, names []string, limit int) ([]models.Host, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// HostService manages a user's hosts.
type HostService struct {
	repo   HostRepository
	events EventPublisher
}

// NewHostService creates a new HostService.
func NewHostService(repo HostRepository, events EventPublisher) *HostService {
	return &HostService{repo: repo, events: events}
}

// Create stores a new host owned by userID.
func (s *HostService) Create(ctx context.Context, userID uuid.UUID, in models.HostInput) (*models.Host, error) {
	host := &models.Host{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      in.Name,
		Bio:       in.Bio,
		Email:     in.Email,
		ImageURL:  in.ImageURL,
		CreatedAt: now(),
	}
	if err := s.repo.Create(ctx, host); err != nil {
		logger.Log.Errorw("failed to create host", "user_id", userID, "err", err)
		return nil, err
	}

	s.events.Publish(ctx, newEvent(userID, models.EntityHost, host.ID, models.OperationCreated))
	return host, nil
}

// Get returns the user's host or ErrNotFound.
func (s *HostService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Host, error) {
	host, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return host, nil
}

// Update replaces the user's host or returns ErrNotFound.
func (s *HostService) Update(ctx context.Context, userID, id uuid.UUID, in models.HostInput) (*models.Host, error) {
	host, err := s.repo.Update(ctx, userID, id, in)
	if err != nil {
		return nil, mapNotFound(err)
	}

	s.events.Publish(ctx, newEvent(userID, models.EntityHost, id, models.OperationUpdated))
	return host, nil
}

// Delete removes the user's host or returns ErrNotFound. Shows referencing it are kept.
func (s *HostService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return mapNotFound(err)
	}

	s.events.Publish(ctx, newEvent(userID, models.EntityHost, id, models.OperationDeleted))
	return nil
}

// List returns all of the user's hosts.
func (s *HostService) List(ctx context.Context, userID uuid.UUID) ([]models.Host, error) {
	return s.repo.List(ctx, userID)
}

// Popular returns the user's featured hosts.
func (s *HostService) Popular(ctx context.Context, userID uuid.UUID) ([]models.Host, error) {
	return s.repo.ListByNames(ctx, userID, featuredHostNames, popularHostsLimit)
}
