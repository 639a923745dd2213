package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/podcast-network/internal/jwt"
	"github.com/sbilibin2017/podcast-network/internal/logger"
	"github.com/sbilibin2017/podcast-network/internal/models"
	"github.com/sbilibin2017/podcast-network/internal/repositories"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

// Rejection kinds, logged but never sent to the client.
var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
)

const (
	unauthorizedDetail = "Invalid authentication credentials"
	internalDetail     = "Internal server error"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserGetter loads the account a token was issued for.
type UserGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

type userContextKey struct{}

// AuthMiddleware returns a middleware that admits requests carrying a valid
// bearer token for an existing user. The user is stored in the request context.
func AuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				unauthorized(w, fmt.Errorf("%w: %v", ErrMissingCredentials, err))
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				unauthorized(w, fmt.Errorf("%w: %v", ErrInvalidToken, err))
				return
			}

			user, err := users.GetByID(ctx, claims.UserID)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					unauthorized(w, fmt.Errorf("%w: %s", ErrUserNotFound, claims.UserID))
					return
				}
				logger.Log.Errorw("failed to load user", "user_id", claims.UserID, "err", err)
				writeDetail(w, http.StatusInternalServerError, internalDetail)
				return
			}

			ctx = WithUser(ctx, user.Public())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the user admitted by AuthMiddleware.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(models.User)
	return user, ok
}

// WithUser stores user in ctx the way AuthMiddleware does.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

func unauthorized(w http.ResponseWriter, reason error) {
	logger.Log.Infow("authorization failed", "err", reason)
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeDetail(w, http.StatusUnauthorized, unauthorizedDetail)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
