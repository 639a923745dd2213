package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/podcast-network/internal/models"
	"github.com/sbilibin2017/podcast-network/internal/repositories"
	"github.com/sbilibin2017/podcast-network/internal/services"
)

func TestEpisodeService_Create(t *testing.T) {
	userID, showID := uuid.New(), uuid.New()

	t.Run("defaults status to draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := services.NewMockEpisodeRepository(ctrl)
		shows := services.NewMockShowGetter(ctrl)
		events := services.NewMockEventPublisher(ctrl)
		svc := services.NewEpisodeService(repo, shows, events)

		shows.EXPECT().Get(gomock.Any(), userID, showID).Return(&models.Show{ID: showID}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		events.EXPECT().Publish(gomock.Any(), gomock.Any())

		ep, err := svc.Create(context.Background(), userID, models.EpisodeInput{ShowID: showID, Title: "Ep 1", DurationMinutes: 60})
		require.NoError(t, err)
		assert.Equal(t, models.EpisodeStatusDraft, ep.Status)
		assert.Equal(t, 60, ep.DurationMinutes)
		assert.False(t, ep.PublishedAt.IsZero())
	})

	t.Run("show not owned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		shows := services.NewMockShowGetter(ctrl)
		svc := services.NewEpisodeService(services.NewMockEpisodeRepository(ctrl), shows, services.NewMockEventPublisher(ctrl))

		shows.EXPECT().Get(gomock.Any(), userID, showID).Return(nil, repositories.ErrNotFound)

		_, err := svc.Create(context.Background(), userID, models.EpisodeInput{ShowID: showID, Title: "Ep 1"})
		assert.ErrorIs(t, err, services.ErrInvalidReference)
	})
}

func TestEpisodeService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := services.NewMockEpisodeRepository(ctrl)
	shows := services.NewMockShowGetter(ctrl)
	events := services.NewMockEventPublisher(ctrl)
	svc := services.NewEpisodeService(repo, shows, events)

	userID, showID, id := uuid.New(), uuid.New(), uuid.New()
	in := models.EpisodeInput{ShowID: showID, Title: "Ep", Status: models.EpisodeStatusPublished}

	shows.EXPECT().Get(gomock.Any(), userID, showID).Return(&models.Show{ID: showID}, nil).Times(2)
	repo.EXPECT().Update(gomock.Any(), userID, id, in).Return(&models.Episode{ID: id, Status: in.Status}, nil)
	repo.EXPECT().Update(gomock.Any(), userID, id, in).Return(nil, repositories.ErrNotFound)
	events.EXPECT().Publish(gomock.Any(), gomock.Any())

	ep, err := svc.Update(context.Background(), userID, id, in)
	require.NoError(t, err)
	assert.Equal(t, models.EpisodeStatusPublished, ep.Status)

	_, err = svc.Update(context.Background(), userID, id, in)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestEpisodeService_ListPopularDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := services.NewMockEpisodeRepository(ctrl)
	svc := services.NewEpisodeService(repo, services.NewMockShowGetter(ctrl), services.NewMockEventPublisher(ctrl))

	userID, showID, id := uuid.New(), uuid.New(), uuid.New()
	eps := []models.Episode{{ID: id, ShowID: showID}}

	repo.EXPECT().List(gomock.Any(), userID, &showID).Return(eps, nil)
	repo.EXPECT().List(gomock.Any(), userID, nil).Return(eps, nil)
	repo.EXPECT().ListByStatus(gomock.Any(), userID, models.EpisodeStatusPublished, 6).Return(eps, nil)
	repo.EXPECT().Delete(gomock.Any(), userID, id).Return(repositories.ErrNotFound)

	got, err := svc.List(context.Background(), userID, &showID)
	require.NoError(t, err)
	assert.Equal(t, eps, got)

	got, err = svc.List(context.Background(), userID, nil)
	require.NoError(t, err)
	assert.Equal(t, eps, got)

	got, err = svc.Popular(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, eps, got)

	assert.ErrorIs(t, svc.Delete(context.Background(), userID, id), services.ErrNotFound)
}
