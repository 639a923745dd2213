package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/sbilibin2017/podcast-network/internal/logger"
	"github.com/sbilibin2017/podcast-network/internal/models"
)

//go:generate mockgen -source=advertisers.go -destination=mock_advertisers.go -package=services

// AdvertiserRepository persists advertisers scoped to their owner.
type AdvertiserRepository interface {
	Create(ctx context.Context, advertiser *models.Advertiser) error
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Advertiser, error)
	Update(ctx context.Context, userID, id uuid.UUID, in models.AdvertiserInput) (*models.Advertiser, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]models.Advertiser, error)
	ListTopBudget(ctx context.Context, userID uuid.UUID, limit int) ([]models.Advertiser, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// AdvertiserService manages a user's advertisers.
type AdvertiserService struct {
	repo   AdvertiserRepository
	events EventPublisher
}

// NewAdvertiserService creates a new AdvertiserService.
func NewAdvertiserService(repo AdvertiserRepository, events EventPublisher) *AdvertiserService {
	return &AdvertiserService{repo: repo, events: events}
}

// Create stores a new advertiser owned by userID.
func (s *AdvertiserService) Create(ctx context.Context, userID uuid.UUID, in models.AdvertiserInput) (*models.Advertiser, error) {
	in.Normalize()
	advertiser := &models.Advertiser{
		ID:            uuid.New(),
		UserID:        userID,
		CompanyName:   in.CompanyName,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Budget:        in.Budget,
		Status:        in.Status,
		CreatedAt:     now(),
	}
	if err := s.repo.Create(ctx, advertiser); err != nil {
		logger.Log.Errorw("failed to create advertiser", "user_id", userID, "err", err)
		return nil, err
	}

	s.events.Publish(ctx, newEvent(userID, models.EntityAdvertiser, advertiser.ID, models.OperationCreated))
	return advertiser, nil
}

// Get returns the user's advertiser or ErrNotFound.
func (s *AdvertiserService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Advertiser, error) {
	advertiser, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return advertiser, nil
}

// Update replaces the user's advertiser or returns ErrNotFound.
func (s *AdvertiserService) Update(ctx context.Context, userID, id uuid.UUID, in models.AdvertiserInput) (*models.Advertiser, error) {
	in.Normalize()
	advertiser, err := s.repo.Update(ctx, userID, id, in)
	if err != nil {
		return nil, mapNotFound(err)
	}

	s.events.Publish(ctx, newEvent(userID, models.EntityAdvertiser, id, models.OperationUpdated))
	return advertiser, nil
}

// Delete removes the user's advertiser or returns ErrNotFound.
func (s *AdvertiserService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return mapNotFound(err)
	}

	s.events.Publish(ctx, newEvent(userID, models.EntityAdvertiser, id, models.OperationDeleted))
	return nil
}

// List returns all of the user's advertisers.
func (s *AdvertiserService) List(ctx context.Context, userID uuid.UUID) ([]models.Advertiser, error) {
	return s.repo.List(ctx, userID)
}

// Popular returns the user's advertisers with the largest budgets.
func (s *AdvertiserService) Popular(ctx context.Context, userID uuid.UUID) ([]models.Advertiser, error) {
	return s.repo.ListTopBudget(ctx, userID, popularAdvertisersLimit)
}
