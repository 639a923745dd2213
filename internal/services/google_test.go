package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestGoogleProvider(t *testing.T, userInfo http.HandlerFunc) *GoogleProvider {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("code") != "good-code" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "access-123",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/userinfo", userInfo)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	p := NewGoogleProvider("client-id", "client-secret", "http://localhost:8001/api/auth/google/callback")
	p.config.Endpoint = oauth2.Endpoint{
		AuthURL:   srv.URL + "/auth",
		TokenURL:  srv.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
	p.userInfoURL = srv.URL + "/userinfo"
	return p
}

func TestGoogleProvider_AuthCodeURL(t *testing.T) {
	p := NewGoogleProvider("client-id", "secret", "http://localhost:8001/api/auth/google/callback")

	u, err := url.Parse(p.AuthCodeURL("state-xyz"))
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "accounts.google.com", u.Host)
	assert.Equal(t, "state-xyz", q.Get("state"))
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "openid email profile", q.Get("scope"))
	assert.Equal(t, "http://localhost:8001/api/auth/google/callback", q.Get("redirect_uri"))
}

func TestGoogleProvider_Exchange(t *testing.T) {
	okUserInfo := func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"email": "erin@example.com", "name": "Erin"})
	}

	t.Run("success", func(t *testing.T) {
		p := newTestGoogleProvider(t, okUserInfo)

		profile, err := p.Exchange(context.Background(), "good-code")
		require.NoError(t, err)
		assert.Equal(t, &OAuthProfile{Email: "erin@example.com", Name: "Erin"}, profile)
	})

	t.Run("rejected code", func(t *testing.T) {
		p := newTestGoogleProvider(t, okUserInfo)

		_, err := p.Exchange(context.Background(), "bad-code")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoUserInfo)
	})

	t.Run("userinfo error status", func(t *testing.T) {
		p := newTestGoogleProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := p.Exchange(context.Background(), "good-code")
		assert.ErrorIs(t, err, ErrNoUserInfo)
	})

	t.Run("userinfo not json", func(t *testing.T) {
		p := newTestGoogleProvider(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		})

		_, err := p.Exchange(context.Background(), "good-code")
		assert.ErrorIs(t, err, ErrNoUserInfo)
	})
}
