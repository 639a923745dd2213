package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/podcast-network/internal/models"
	"github.com/sbilibin2017/podcast-network/internal/services"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password, name string) (*services.AuthResult, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email,max=254"`

	// Display name
	// required: true
	// default: John Doe
	Name string `json:"name" validate:"required,notblank,max=200"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,maxbytes=72"`
}

// TokenResponse is returned by register and login.
// swagger:model TokenResponse
type TokenResponse struct {
	// Bearer token valid for seven days
	AccessToken string `json:"access_token"`

	// Always "bearer"
	// default: bearer
	TokenType string `json:"token_type"`

	User models.User `json:"user"`
}

func newTokenResponse(res *services.AuthResult) TokenResponse {
	return TokenResponse{AccessToken: res.Token, TokenType: "bearer", User: res.User}
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a local account and returns a bearer token for it.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.TokenResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Email already registered / invalid JSON"
// @Failure 422 {object} handlers.ErrorResponse "Invalid field"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		res, err := svc.Register(r.Context(), req.Email, req.Password, req.Name)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyRegistered):
				writeError(w, http.StatusBadRequest, "Email already registered")
			case errors.Is(err, services.ErrPasswordTooLong):
				writeError(w, http.StatusUnprocessableEntity, "password: must be at most 72 bytes")
			default:
				writeInternalError(w, "failed to register user", err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, newTokenResponse(res))
	}
}
