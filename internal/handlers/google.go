package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/sbilibin2017/podcast-network/internal/services"
)

//go:generate mockgen -source=google.go -destination=mock_google.go -package=handlers

// Federator runs an external login flow.
type Federator interface {
	BeginFederation(ctx context.Context, provider string) (string, error)
	CompleteFederation(ctx context.Context, provider string, query url.Values) string
}

// NewGoogleLoginHandler redirects the browser to Google's consent page.
// @Summary Start Google login
// @Tags auth
// @Success 302 "Redirect to Google"
// @Failure 400 {object} handlers.ErrorResponse "Google OAuth not configured"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/google [get]
func NewGoogleLoginHandler(svc Federator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authURL, err := svc.BeginFederation(r.Context(), services.ProviderGoogle)
		if err != nil {
			if errors.Is(err, services.ErrProviderNotConfigured) {
				writeError(w, http.StatusBadRequest, "Google OAuth not configured")
				return
			}
			writeInternalError(w, "failed to start google login", err)
			return
		}
		http.Redirect(w, r, authURL, http.StatusFound)
	}
}

// NewGoogleCallbackHandler completes the Google login and redirects to the
// frontend with either a token or an error code.
// @Summary Google login callback
// @Tags auth
// @Param state query string false "State issued by /auth/google"
// @Param code query string false "Authorization code"
// @Param error query string false "Provider error"
// @Success 302 "Redirect to frontend"
// @Router /auth/google/callback [get]
func NewGoogleCallbackHandler(svc Federator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, svc.CompleteFederation(r.Context(), services.ProviderGoogle, r.URL.Query()), http.StatusFound)
	}
}
