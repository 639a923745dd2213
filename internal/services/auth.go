package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/podcast-network/internal/hasher"
	"github.com/sbilibin2017/podcast-network/internal/logger"
	"github.com/sbilibin2017/podcast-network/internal/models"
	"github.com/sbilibin2017/podcast-network/internal/repositories"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// Error variables
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrUserNotFound           = errors.New("user not found")
	ErrPasswordTooLong        = errors.New("password exceeds 72 bytes")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, email string) (string, error)
}

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// DataClearer removes every resource a user owns.
type DataClearer interface {
	ClearAll(ctx context.Context, userID uuid.UUID) (models.EntityCounts, error)
}

// AuthResult is a freshly issued session.
type AuthResult struct {
	Token string
	User  models.User
}

// AuthService handles registration, login and account removal.
type AuthService struct {
	reader UserReader
	writer UserWriter
	hasher PasswordHasher
	jwt    JWTGenerator
	data   DataClearer
	events EventPublisher
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	hasher PasswordHasher,
	jwt JWTGenerator,
	data DataClearer,
	events EventPublisher,
) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		hasher: hasher,
		jwt:    jwt,
		data:   data,
		events: events,
	}
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a local account and returns a session for it.
func (svc *AuthService) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	email = NormalizeEmail(email)

	_, err := svc.reader.GetByEmail(ctx, email)
	switch {
	case err == nil:
		logger.Log.Infow("email already registered", "email", email)
		return nil, ErrEmailAlreadyRegistered
	case !errors.Is(err, repositories.ErrNotFound):
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}

	hash, err := svc.hasher.Hash(password)
	if errors.Is(err, hasher.ErrPasswordTooLong) {
		return nil, ErrPasswordTooLong
	}
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.UserDB{
		ID:           uuid.New(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: &hash,
		AuthProvider: models.AuthProviderLocal,
		CreatedAt:    time.Now().UTC(),
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			logger.Log.Infow("email registered concurrently", "email", email)
			return nil, ErrEmailAlreadyRegistered
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	svc.events.Publish(ctx, newEvent(user.ID, models.EntityUser, user.ID, models.OperationCreated))

	return svc.issue(ctx, user)
}

// Login authenticates a local account. Unknown emails, federated accounts and
// wrong passwords all yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = NormalizeEmail(email)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Log.Infow("login for unknown email", "email", email)
			return nil, ErrInvalidCredentials
		}
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}

	if user.PasswordHash == nil || !svc.hasher.Verify(password, *user.PasswordHash) {
		logger.Log.Infow("invalid credentials", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	return svc.issue(ctx, user)
}

// DeleteAccount removes every resource of the user and then the user.
func (svc *AuthService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if _, err := svc.data.ClearAll(ctx, userID); err != nil {
		logger.Log.Errorw("failed to clear user data", "user_id", userID, "err", err)
		return err
	}

	if err := svc.writer.Delete(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		logger.Log.Errorw("failed to delete user", "user_id", userID, "err", err)
		return err
	}

	svc.events.Publish(ctx, newEvent(userID, models.EntityUser, userID, models.OperationDeleted))
	return nil
}

func (svc *AuthService) issue(ctx context.Context, user *models.UserDB) (*AuthResult, error) {
	token, err := svc.jwt.Generate(ctx, user.ID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, err
	}
	return &AuthResult{Token: token, User: user.Public()}, nil
}
