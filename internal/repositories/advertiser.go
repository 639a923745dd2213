package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/podcast-network/internal/models"
)

const advertiserColumns = "id, user_id, company_name, contact_person, email, phone, budget, status, created_at"

// AdvertiserRepository stores advertisers. Every query is scoped to the owning user.
type AdvertiserRepository struct {
	base
}

// NewAdvertiserRepository creates a new AdvertiserRepository
func NewAdvertiserRepository(db *sqlx.DB, txGetter TxGetter) *AdvertiserRepository {
	return &AdvertiserRepository{base{db: db, txGetter: txGetter}}
}

// Create inserts advertiser.
func (r *AdvertiserRepository) Create(ctx context.Context, a *models.Advertiser) error {
	query := `
		INSERT INTO advertisers (id, user_id, company_name, contact_person, email, phone, budget, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.executor(ctx).ExecContext(ctx, query,
		a.ID, a.UserID, a.CompanyName, a.ContactPerson, a.Email, a.Phone, a.Budget, a.Status, a.CreatedAt)

	logQuery(query, []any{a.ID, a.UserID, a.CompanyName}, nil, err)

	return mapError(err)
}

// Get returns the user's advertiser with the given id or ErrNotFound.
func (r *AdvertiserRepository) Get(ctx context.Context, userID, id uuid.UUID) (*models.Advertiser, error) {
	query := "SELECT " + advertiserColumns + " FROM advertisers WHERE id = $1 AND user_id = $2"

	var a models.Advertiser
	err := sqlx.GetContext(ctx, r.executor(ctx), &a, query, id, userID)

	logQuery(query, []any{id, userID}, a.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &a, nil
}

// Update replaces the mutable fields of the user's advertiser and returns the stored row.
func (r *AdvertiserRepository) Update(ctx context.Context, userID, id uuid.UUID, in models.AdvertiserInput) (*models.Advertiser, error) {
	query := `
		UPDATE advertisers
		SET company_name = $3, contact_person = $4, email = $5, phone = $6, budget = $7, status = $8
		WHERE id = $1 AND user_id = $2
		RETURNING ` + advertiserColumns

	var a models.Advertiser
	err := sqlx.GetContext(ctx, r.executor(ctx), &a, query,
		id, userID, in.CompanyName, in.ContactPerson, in.Email, in.Phone, in.Budget, in.Status)

	logQuery(query, []any{id, userID, in.CompanyName}, a.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &a, nil
}

// Delete removes the user's advertiser or returns ErrNotFound.
func (r *AdvertiserRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return deleteOwned(ctx, r.executor(ctx), "advertisers", userID, id)
}

// List returns the user's advertisers in creation order.
func (r *AdvertiserRepository) List(ctx context.Context, userID uuid.UUID) ([]models.Advertiser, error) {
	query := "SELECT " + advertiserColumns + " FROM advertisers WHERE user_id = $1 ORDER BY created_at, id LIMIT $2"
	return r.selectAdvertisers(ctx, query, userID, listLimit)
}

// ListTopBudget returns at most limit of the user's advertisers, largest budget first.
func (r *AdvertiserRepository) ListTopBudget(ctx context.Context, userID uuid.UUID, limit int) ([]models.Advertiser, error) {
	query := "SELECT " + advertiserColumns + " FROM advertisers WHERE user_id = $1 ORDER BY budget DESC, id LIMIT $2"
	return r.selectAdvertisers(ctx, query, userID, limit)
}

// DeleteByUser removes every advertiser of the user and returns the count.
func (r *AdvertiserRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return deleteByUser(ctx, r.executor(ctx), "advertisers", userID)
}

func (r *AdvertiserRepository) selectAdvertisers(ctx context.Context, query string, args ...any) ([]models.Advertiser, error) {
	advertisers := []models.Advertiser{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &advertisers, query, args...)

	logQuery(query, args, len(advertisers), err)

	if err != nil {
		return nil, err
	}
	return advertisers, nil
}
