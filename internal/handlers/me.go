package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/podcast-network/internal/models"
	"github.com/sbilibin2017/podcast-network/internal/services"
)

//go:generate mockgen -source=me.go -destination=mock_me.go -package=handlers

// AccountDeleter removes a user and everything they own.
type AccountDeleter interface {
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

// MeResponse wraps the current user.
// swagger:model MeResponse
type MeResponse struct {
	User models.User `json:"user"`
}

// NewMeHandler returns the authenticated user.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MeResponse
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Router /auth/me [get]
// @Security BearerAuth
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, MeResponse{User: user})
	}
}

// NewDeleteAccountHandler deletes the authenticated user with all their data.
// Tokens issued to the user stop working afterwards.
// @Summary Delete account
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/me [delete]
// @Security BearerAuth
func NewDeleteAccountHandler(svc AccountDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteAccount(r.Context(), user.ID); err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusUnauthorized, detailUnauthorized)
				return
			}
			writeInternalError(w, "failed to delete account", err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Account deleted successfully"})
	}
}
