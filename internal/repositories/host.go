package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/podcast-network/internal/models"
)

const hostColumns = "id, user_id, name, bio, email, image_url, created_at"

// HostRepository stores hosts. Every query is scoped to the owning user.
type HostRepository struct {
	base
}

// NewHostRepository creates a new HostRepository
func NewHostRepository(db *sqlx.DB, txGetter TxGetter) *HostRepository {
	return &HostRepository{base{db: db, txGetter: txGetter}}
}

// Create inserts host.
func (r *HostRepository) Create(ctx context.Context, host *models.Host) error {
	query := `
		INSERT INTO hosts (id, user_id, name, bio, email, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.executor(ctx).ExecContext(ctx, query,
		host.ID, host.UserID, host.Name, host.Bio, host.Email, host.ImageURL, host.CreatedAt)

	logQuery(query, []any{host.ID, host.UserID, host.Name}, nil, err)

	return mapError(err)
}

// Get returns the user's host with the given id or ErrNotFound.
func (r *HostRepository) Get(ctx context.Context, userID, id uuid.UUID) (*models.Host, error) {
	query := "SELECT " + hostColumns + " FROM hosts WHERE id = $1 AND user_id = $2"

	var host models.Host
	err := sqlx.GetContext(ctx, r.executor(ctx), &host, query, id, userID)

	logQuery(query, []any{id, userID}, host.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &host, nil
}

// Update replaces the mutable fields of the user's host and returns the stored row.
func (r *HostRepository) Update(ctx context.Context, userID, id uuid.UUID, in models.HostInput) (*models.Host, error) {
	query := `
		UPDATE hosts SET name = $3, bio = $4, email = $5, image_url = $6
		WHERE id = $1 AND user_id = $2
		RETURNING ` + hostColumns

	var host models.Host
	err := sqlx.GetContext(ctx, r.executor(ctx), &host, query, id, userID, in.Name, in.Bio, in.Email, in.ImageURL)

	logQuery(query, []any{id, userID, in.Name}, host.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &host, nil
}

// Delete removes the user's host or returns ErrNotFound.
func (r *HostRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return deleteOwned(ctx, r.executor(ctx), "hosts", userID, id)
}

// List returns the user's hosts in creation order.
func (r *HostRepository) List(ctx context.Context, userID uuid.UUID) ([]models.Host, error) {
	query := "SELECT " + hostColumns + " FROM hosts WHERE user_id = $1 ORDER BY created_at, id LIMIT $2"
	return r.selectHosts(ctx, query, userID, listLimit)
}

// ListByNames returns at most limit of the user's hosts whose name is in names.
func (r *HostRepository) ListByNames(ctx context.Context, userID uuid.UUID, names []string, limit int) ([]models.Host, error) {
	query := "SELECT " + hostColumns + " FROM hosts WHERE user_id = $1 AND name = ANY($2) ORDER BY created_at, id LIMIT $3"
	return r.selectHosts(ctx, query, userID, names, limit)
}

// CountByUser returns how many hosts the user owns.
func (r *HostRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := "SELECT COUNT(*) FROM hosts WHERE user_id = $1"

	var n int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &n, query, userID)

	logQuery(query, []any{userID}, n, err)

	return n, err
}

// DeleteByUser removes every host of the user and returns the count.
func (r *HostRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return deleteByUser(ctx, r.executor(ctx), "hosts", userID)
}

func (r *HostRepository) selectHosts(ctx context.Context, query string, args ...any) ([]models.Host, error) {
	hosts := []models.Host{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &hosts, query, args...)

	logQuery(query, args, len(hosts), err)

	if err != nil {
		return nil, err
	}
	return hosts, nil
}
