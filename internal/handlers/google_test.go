package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/podcast-network/internal/services"
)

func TestGoogleLoginHandler(t *testing.T) {
	tests := []struct {
		name             string
		url              string
		err              error
		expectedCode     int
		expectedLocation string
		expectedDetail   string
	}{
		{
			name:             "redirects to provider",
			url:              "https://accounts.google.com/o/oauth2/auth?state=abc",
			expectedCode:     http.StatusFound,
			expectedLocation: "https://accounts.google.com/o/oauth2/auth?state=abc",
		},
		{
			name:           "not configured",
			err:            services.ErrProviderNotConfigured,
			expectedCode:   http.StatusBadRequest,
			expectedDetail: "Google OAuth not configured",
		},
		{
			name:           "state store down",
			err:            errors.New("redis down"),
			expectedCode:   http.StatusInternalServerError,
			expectedDetail: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockFederator(ctrl)
			m.EXPECT().BeginFederation(gomock.Any(), services.ProviderGoogle).Return(tt.url, tt.err)

			rr := serve(NewGoogleLoginHandler(m), http.MethodGet, "/api/auth/google", nil, nil)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, rr.Header().Get("Location"))
			}
			if tt.expectedDetail != "" {
				assert.Equal(t, tt.expectedDetail, decodeDetail(t, rr))
			}
		})
	}
}

func TestGoogleCallbackHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockFederator(ctrl)
	m.EXPECT().
		CompleteFederation(gomock.Any(), services.ProviderGoogle, url.Values{"state": {"s"}, "code": {"c"}}).
		Return("http://localhost:3000/?error=invalid_state")

	rr := serve(NewGoogleCallbackHandler(m), http.MethodGet, "/api/auth/google/callback?state=s&code=c", nil, nil)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "http://localhost:3000/?error=invalid_state", rr.Header().Get("Location"))
}
