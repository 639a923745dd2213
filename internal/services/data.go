package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/podcast-network/internal/logger"
	"github.com/sbilibin2017/podcast-network/internal/models"
	"github.com/sbilibin2017/podcast-network/internal/seed"
)

// DataService runs bulk operations over all of a user's resources. Callers
// are expected to run it inside one database transaction.
type DataService struct {
	hosts       HostRepository
	shows       ShowRepository
	episodes    EpisodeRepository
	advertisers AdvertiserRepository
	events      EventPublisher
}

// NewDataService creates a new DataService.
func NewDataService(
	hosts HostRepository,
	shows ShowRepository,
	episodes EpisodeRepository,
	advertisers AdvertiserRepository,
	events EventPublisher,
) *DataService {
	return &DataService{
		hosts:       hosts,
		shows:       shows,
		episodes:    episodes,
		advertisers: advertisers,
		events:      events,
	}
}

// ClearAll deletes every host, show, episode and advertiser of the user.
func (s *DataService) ClearAll(ctx context.Context, userID uuid.UUID) (models.EntityCounts, error) {
	var (
		counts models.EntityCounts
		err    error
	)

	if counts.Episodes, err = s.episodes.DeleteByUser(ctx, userID); err != nil {
		return models.EntityCounts{}, fmt.Errorf("delete episodes: %w", err)
	}
	if counts.Shows, err = s.shows.DeleteByUser(ctx, userID); err != nil {
		return models.EntityCounts{}, fmt.Errorf("delete shows: %w", err)
	}
	if counts.Hosts, err = s.hosts.DeleteByUser(ctx, userID); err != nil {
		return models.EntityCounts{}, fmt.Errorf("delete hosts: %w", err)
	}
	if counts.Advertisers, err = s.advertisers.DeleteByUser(ctx, userID); err != nil {
		return models.EntityCounts{}, fmt.Errorf("delete advertisers: %w", err)
	}

	logger.Log.Infow("user data cleared", "user_id", userID, "counts", counts)
	s.events.Publish(ctx, newEvent(userID, models.EntityNetwork, uuid.Nil, models.OperationCleared))
	return counts, nil
}

// InitializeDefaults loads the sample network for the user. A user who already
// has hosts is left untouched unless force is set, in which case their data is
// replaced.
func (s *DataService) InitializeDefaults(ctx context.Context, userID uuid.UUID, force bool) (*models.SeedResult, error) {
	existing, err := s.hosts.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count hosts: %w", err)
	}
	if existing > 0 {
		if !force {
			return &models.SeedResult{Initialized: false}, nil
		}
		if _, err := s.ClearAll(ctx, userID); err != nil {
			return nil, err
		}
	}

	counts, err := s.load(ctx, userID, seed.Network())
	if err != nil {
		logger.Log.Errorw("failed to load sample network", "user_id", userID, "err", err)
		return nil, err
	}

	s.events.Publish(ctx, newEvent(userID, models.EntityNetwork, uuid.Nil, models.OperationSeeded))
	return &models.SeedResult{Initialized: true, Counts: counts}, nil
}

// load inserts data with creation times one millisecond apart so that
// ordering by time follows the order of the sample data.
func (s *DataService) load(ctx context.Context, userID uuid.UUID, data seed.Data) (models.EntityCounts, error) {
	var counts models.EntityCounts
	base := now()
	tick := 0
	next := func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Millisecond)
	}

	hostIDs := make(map[string]uuid.UUID, len(data.Hosts))
	for _, in := range data.Hosts {
		host := &models.Host{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      in.Name,
			Bio:       in.Bio,
			Email:     in.Email,
			ImageURL:  in.ImageURL,
			CreatedAt: next(),
		}
		if err := s.hosts.Create(ctx, host); err != nil {
			return counts, fmt.Errorf("create host %q: %w", in.Name, err)
		}
		hostIDs[in.Name] = host.ID
		counts.Hosts++
	}

	showIDs := make(map[string]uuid.UUID, len(data.Shows))
	for _, sh := range data.Shows {
		hostID, ok := hostIDs[sh.HostName]
		if !ok {
			return counts, fmt.Errorf("show %q: unknown host %q", sh.Input.Title, sh.HostName)
		}
		in := sh.Input
		in.Normalize()
		show := &models.Show{
			ID:            uuid.New(),
			UserID:        userID,
			Title:         in.Title,
			Description:   in.Description,
			HostID:        hostID,
			Category:      in.Category,
			CoverImageURL: in.CoverImageURL,
			Status:        in.Status,
			CreatedAt:     next(),
		}
		if err := s.shows.Create(ctx, show); err != nil {
			return counts, fmt.Errorf("create show %q: %w", in.Title, err)
		}
		showIDs[in.Title] = show.ID
		counts.Shows++
	}

	for _, ep := range data.Episodes {
		showID, ok := showIDs[ep.ShowTitle]
		if !ok {
			return counts, fmt.Errorf("episode %q: unknown show %q", ep.Input.Title, ep.ShowTitle)
		}
		in := ep.Input
		in.Normalize()
		episode := &models.Episode{
			ID:              uuid.New(),
			UserID:          userID,
			ShowID:          showID,
			Title:           in.Title,
			Description:     in.Description,
			DurationMinutes: in.DurationMinutes,
			AudioURL:        in.AudioURL,
			VideoURL:        in.VideoURL,
			ThumbnailURL:    in.ThumbnailURL,
			EpisodeNumber:   in.EpisodeNumber,
			PublishedAt:     next(),
			Status:          in.Status,
		}
		if err := s.episodes.Create(ctx, episode); err != nil {
			return counts, fmt.Errorf("create episode %q: %w", in.Title, err)
		}
		counts.Episodes++
	}

	for _, in := range data.Advertisers {
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
			CreatedAt:     next(),
		}
		if err := s.advertisers.Create(ctx, advertiser); err != nil {
			return counts, fmt.Errorf("create advertiser %q: %w", in.CompanyName, err)
		}
		counts.Advertisers++
	}

	return counts, nil
}
