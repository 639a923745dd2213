package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/podcast-network/internal/services"
)

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

// Loginer defines the interface for user login.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Login user
// @Description Authenticates a local account and returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "User login request"
// @Success 200 {object} handlers.TokenResponse "Successful login"
// @Failure 400 {object} handlers.ErrorResponse "Invalid JSON"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Failure 422 {object} handlers.ErrorResponse "Invalid field"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		res, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid email or password")
			default:
				writeInternalError(w, "failed to login", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, newTokenResponse(res))
	}
}
