package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/podcast-network/internal/models"
)

const showColumns = "id, user_id, title, description, host_id, category, cover_image_url, status, created_at"

// ShowRepository stores shows. Every query is scoped to the owning user.
type ShowRepository struct {
	base
}

// NewShowRepository creates a new ShowRepository
func NewShowRepository(db *sqlx.DB, txGetter TxGetter) *ShowRepository {
	return &ShowRepository{base{db: db, txGetter: txGetter}}
}

// Create inserts show.
func (r *ShowRepository) Create(ctx context.Context, show *models.Show) error {
	query := `
		INSERT INTO shows (id, user_id, title, description, host_id, category, cover_image_url, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.executor(ctx).ExecContext(ctx, query,
		show.ID, show.UserID, show.Title, show.Description, show.HostID,
		show.Category, show.CoverImageURL, show.Status, show.CreatedAt)

	logQuery(query, []any{show.ID, show.UserID, show.Title}, nil, err)

	return mapError(err)
}

// Get returns the user's show with the given id or ErrNotFound.
func (r *ShowRepository) Get(ctx context.Context, userID, id uuid.UUID) (*models.Show, error) {
	query := "SELECT " + showColumns + " FROM shows WHERE id = $1 AND user_id = $2"

	var show models.Show
	err := sqlx.GetContext(ctx, r.executor(ctx), &show, query, id, userID)

	logQuery(query, []any{id, userID}, show.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &show, nil
}

// Update replaces the mutable fields of the user's show and returns the stored row.
func (r *ShowRepository) Update(ctx context.Context, userID, id uuid.UUID, in models.ShowInput) (*models.Show, error) {
	query := `
		UPDATE shows
		SET title = $3, description = $4, host_id = $5, category = $6, cover_image_url = $7, status = $8
		WHERE id = $1 AND user_id = $2
		RETURNING ` + showColumns

	var show models.Show
	err := sqlx.GetContext(ctx, r.executor(ctx), &show, query,
		id, userID, in.Title, in.Description, in.HostID, in.Category, in.CoverImageURL, in.Status)

	logQuery(query, []any{id, userID, in.Title}, show.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &show, nil
}

// Delete removes the user's show or returns ErrNotFound.
func (r *ShowRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return deleteOwned(ctx, r.executor(ctx), "shows", userID, id)
}

// List returns the user's shows in creation order.
func (r *ShowRepository) List(ctx context.Context, userID uuid.UUID) ([]models.Show, error) {
	query := "SELECT " + showColumns + " FROM shows WHERE user_id = $1 ORDER BY created_at, id LIMIT $2"
	return r.selectShows(ctx, query, userID, listLimit)
}

// ListByStatus returns at most limit of the user's shows with the given status, newest first.
func (r *ShowRepository) ListByStatus(ctx context.Context, userID uuid.UUID, status string, limit int) ([]models.Show, error) {
	query := "SELECT " + showColumns + " FROM shows WHERE user_id = $1 AND status = $2 ORDER BY created_at DESC, id LIMIT $3"
	return r.selectShows(ctx, query, userID, status, limit)
}

// DeleteByUser removes every show of the user and returns the count.
func (r *ShowRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return deleteByUser(ctx, r.executor(ctx), "shows", userID)
}

func (r *ShowRepository) selectShows(ctx context.Context, query string, args ...any) ([]models.Show, error) {
	shows := []models.Show{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &shows, query, args...)

	logQuery(query, args, len(shows), err)

	if err != nil {
		return nil, err
	}
	return shows, nil
}
