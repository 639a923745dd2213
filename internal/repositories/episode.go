package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/podcast-network/internal/models"
)

const episodeColumns = `id, user_id, show_id, title, description, duration_minutes,
	audio_url, video_url, thumbnail_url, episode_number, published_at, status`

// EpisodeRepository stores episodes. Every query is scoped to the owning user.
type EpisodeRepository struct {
	base
}

// NewEpisodeRepository creates a new EpisodeRepository
func NewEpisodeRepository(db *sqlx.DB, txGetter TxGetter) *EpisodeRepository {
	return &EpisodeRepository{base{db: db, txGetter: txGetter}}
}

// Create inserts episode.
func (r *EpisodeRepository) Create(ctx context.Context, e *models.Episode) error {
	query := `
		INSERT INTO episodes (id, user_id, show_id, title, description, duration_minutes,
			audio_url, video_url, thumbnail_url, episode_number, published_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.executor(ctx).ExecContext(ctx, query,
		e.ID, e.UserID, e.ShowID, e.Title, e.Description, e.DurationMinutes,
		e.AudioURL, e.VideoURL, e.ThumbnailURL, e.EpisodeNumber, e.PublishedAt, e.Status)

	logQuery(query, []any{e.ID, e.UserID, e.ShowID, e.Title}, nil, err)

	return mapError(err)
}

// Get returns the user's episode with the given id or ErrNotFound.
func (r *EpisodeRepository) Get(ctx context.Context, userID, id uuid.UUID) (*models.Episode, error) {
	query := "SELECT " + episodeColumns + " FROM episodes WHERE id = $1 AND user_id = $2"

	var e models.Episode
	err := sqlx.GetContext(ctx, r.executor(ctx), &e, query, id, userID)

	logQuery(query, []any{id, userID}, e.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &e, nil
}

// Update replaces the mutable fields of the user's episode and returns the stored row.
// published_at is kept as is.
func (r *EpisodeRepository) Update(ctx context.Context, userID, id uuid.UUID, in models.EpisodeInput) (*models.Episode, error) {
	query := `
		UPDATE episodes
		SET show_id = $3, title = $4, description = $5, duration_minutes = $6,
			audio_url = $7, video_url = $8, thumbnail_url = $9, episode_number = $10, status = $11
		WHERE id = $1 AND user_id = $2
		RETURNING ` + episodeColumns

	var e models.Episode
	err := sqlx.GetContext(ctx, r.executor(ctx), &e, query,
		id, userID, in.ShowID, in.Title, in.Description, in.DurationMinutes,
		in.AudioURL, in.VideoURL, in.ThumbnailURL, in.EpisodeNumber, in.Status)

	logQuery(query, []any{id, userID, in.Title}, e.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &e, nil
}

// Delete removes the user's episode or returns ErrNotFound.
func (r *EpisodeRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return deleteOwned(ctx, r.executor(ctx), "episodes", userID, id)
}

// List returns the user's episodes, restricted to one show when showID is not nil.
func (r *EpisodeRepository) List(ctx context.Context, userID uuid.UUID, showID *uuid.UUID) ([]models.Episode, error) {
	if showID != nil {
		query := "SELECT " + episodeColumns + " FROM episodes WHERE user_id = $1 AND show_id = $2 ORDER BY episode_number, published_at, id LIMIT $3"
		return r.selectEpisodes(ctx, query, userID, *showID, listLimit)
	}
	query := "SELECT " + episodeColumns + " FROM episodes WHERE user_id = $1 ORDER BY published_at, id LIMIT $2"
	return r.selectEpisodes(ctx, query, userID, listLimit)
}

// ListByStatus returns at most limit of the user's episodes with the given status, most recently published first.
func (r *EpisodeRepository) ListByStatus(ctx context.Context, userID uuid.UUID, status string, limit int) ([]models.Episode, error) {
	query := "SELECT " + episodeColumns + " FROM episodes WHERE user_id = $1 AND status = $2 ORDER BY published_at DESC, id LIMIT $3"
	return r.selectEpisodes(ctx, query, userID, status, limit)
}

// DeleteByUser removes every episode of the user and returns the count.
func (r *EpisodeRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return deleteByUser(ctx, r.executor(ctx), "episodes", userID)
}

func (r *EpisodeRepository) selectEpisodes(ctx context.Context, query string, args ...any) ([]models.Episode, error) {
	episodes := []models.Episode{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &episodes, query, args...)

	logQuery(query, args, len(episodes), err)

	if err != nil {
		return nil, err
	}
	return episodes, nil
}
