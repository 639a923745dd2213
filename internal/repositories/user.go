package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/podcast-network/internal/models"
)

const userColumns = "id, email, name, password_hash, auth_provider, created_at"

// UserWriteRepository handles user persistence
type UserWriteRepository struct {
	base
}

// NewUserWriteRepository creates a new UserWriteRepository
func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{base{db: db, txGetter: txGetter}}
}

// Save inserts a new user. A taken email yields ErrDuplicate and leaves the
// request transaction usable for a follow-up lookup.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	query := `
		INSERT INTO users (id, email, name, password_hash, auth_provider, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	err := r.savepoint(ctx, "user_save", func(exec sqlx.ExtContext) error {
		_, err := exec.ExecContext(ctx, query,
			user.ID, user.Email, user.Name, user.PasswordHash, user.AuthProvider, user.CreatedAt)
		logQuery(query, []any{user.ID, user.Email, user.AuthProvider}, nil, err)
		return err
	})

	return mapError(err)
}

// Delete removes a user. Owned rows are removed by the foreign key cascade.
func (r *UserWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := "DELETE FROM users WHERE id = $1"
	n, err := affected(r.executor(ctx).ExecContext(ctx, query, id))
	logQuery(query, []any{id}, n, err)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// UserReadRepository handles user lookups
type UserReadRepository struct {
	base
}

// NewUserReadRepository creates a new UserReadRepository
func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{base{db: db, txGetter: txGetter}}
}

// GetByEmail returns the user with the given email or ErrNotFound.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := "SELECT " + userColumns + " FROM users WHERE email = $1"
	return r.get(ctx, query, email)
}

// GetByID returns the user with the given id or ErrNotFound.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = $1"
	return r.get(ctx, query, id)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, arg)

	logQuery(query, []any{arg}, user.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}
