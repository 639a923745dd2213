package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/podcast-network/internal/logger"
	"github.com/sbilibin2017/podcast-network/internal/models"
	"github.com/sbilibin2017/podcast-network/internal/repositories"
)

//go:generate mockgen -source=oauth.go -destination=mock_oauth.go -package=services

const (
	ProviderGoogle = "google"

	oauthStateTTL = 10 * time.Minute
)

// Error codes placed in the frontend redirect.
const (
	oauthErrInvalidState  = "invalid_state"
	oauthErrMissingCode   = "missing_code"
	oauthErrExchange      = "token_exchange_failed"
	oauthErrNoUserInfo    = "no_user_info"
	oauthErrLogin         = "login_failed"
	oauthErrNotConfigured = "provider_not_configured"
)

// ErrProviderNotConfigured is returned when the requested provider has no credentials.
var ErrProviderNotConfigured = errors.New("oauth provider not configured")

// IdentityProvider runs one provider's authorization code flow.
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*OAuthProfile, error)
}

// OAuthStateStore keeps issued state values until they are consumed or expire.
type OAuthStateStore interface {
	Save(ctx context.Context, state string, ttl time.Duration) error
	Consume(ctx context.Context, state string) (bool, error)
}

// OAuthService federates logins through external identity providers.
type OAuthService struct {
	providers   map[string]IdentityProvider
	states      OAuthStateStore
	reader      UserReader
	writer      UserWriter
	jwt         JWTGenerator
	events      EventPublisher
	frontendURL string
}

// NewOAuthService creates a new OAuthService. Providers missing from the map are reported as not configured.
func NewOAuthService(
	providers map[string]IdentityProvider,
	states OAuthStateStore,
	reader UserReader,
	writer UserWriter,
	jwt JWTGenerator,
	events EventPublisher,
	frontendURL string,
) *OAuthService {
	return &OAuthService{
		providers:   providers,
		states:      states,
		reader:      reader,
		writer:      writer,
		jwt:         jwt,
		events:      events,
		frontendURL: strings.TrimRight(frontendURL, "/"),
	}
}

// BeginFederation issues a fresh state and returns the provider authorization URL.
func (s *OAuthService) BeginFederation(ctx context.Context, provider string) (string, error) {
	p, ok := s.providers[provider]
	if !ok || p == nil {
		return "", ErrProviderNotConfigured
	}

	state, err := generateState()
	if err != nil {
		logger.Log.Errorw("failed to generate oauth state", "err", err)
		return "", err
	}
	if err := s.states.Save(ctx, state, oauthStateTTL); err != nil {
		logger.Log.Errorw("failed to store oauth state", "err", err)
		return "", err
	}

	return p.AuthCodeURL(state), nil
}

// CompleteFederation finishes the flow started by BeginFederation and returns
// the frontend URL to redirect to. Failures are reported in the URL, never returned.
func (s *OAuthService) CompleteFederation(ctx context.Context, provider string, query url.Values) (redirect string) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Log.Errorw("oauth callback panicked", "provider", provider, "panic", rec)
			redirect = s.redirect(url.Values{"error": {oauthErrLogin}})
		}
	}()

	token, user, code := s.complete(ctx, provider, query)
	if code != "" {
		return s.redirect(url.Values{"error": {code}})
	}

	payload, err := json.Marshal(user)
	if err != nil {
		logger.Log.Errorw("failed to encode user for redirect", "err", err)
		return s.redirect(url.Values{"error": {oauthErrLogin}})
	}
	return s.redirect(url.Values{"token": {token}, "user": {string(payload)}})
}

func (s *OAuthService) complete(ctx context.Context, provider string, query url.Values) (string, models.User, string) {
	p, ok := s.providers[provider]
	if !ok || p == nil {
		return "", models.User{}, oauthErrNotConfigured
	}

	if providerErr := query.Get("error"); providerErr != "" {
		logger.Log.Infow("oauth provider returned error", "provider", provider, "error", providerErr)
		return "", models.User{}, providerErr
	}

	state := query.Get("state")
	if state == "" {
		return "", models.User{}, oauthErrInvalidState
	}
	valid, err := s.states.Consume(ctx, state)
	if err != nil {
		logger.Log.Errorw("failed to consume oauth state", "err", err)
		return "", models.User{}, oauthErrInvalidState
	}
	if !valid {
		logger.Log.Infow("oauth state rejected", "provider", provider)
		return "", models.User{}, oauthErrInvalidState
	}

	code := query.Get("code")
	if code == "" {
		return "", models.User{}, oauthErrMissingCode
	}

	profile, err := p.Exchange(ctx, code)
	if err != nil {
		logger.Log.Errorw("oauth exchange failed", "provider", provider, "err", err)
		if errors.Is(err, ErrNoUserInfo) {
			return "", models.User{}, oauthErrNoUserInfo
		}
		return "", models.User{}, oauthErrExchange
	}
	if profile == nil || strings.TrimSpace(profile.Email) == "" {
		return "", models.User{}, oauthErrNoUserInfo
	}

	user, err := s.findOrCreateUser(ctx, profile)
	if err != nil {
		logger.Log.Errorw("failed to find or create federated user", "err", err)
		return "", models.User{}, oauthErrLogin
	}

	token, err := s.jwt.Generate(ctx, user.ID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", models.User{}, oauthErrLogin
	}

	return token, user.Public(), ""
}

// findOrCreateUser returns the account for the profile email, creating a
// federated account on first login. The provider email is trusted as verified.
func (s *OAuthService) findOrCreateUser(ctx context.Context, profile *OAuthProfile) (*models.UserDB, error) {
	email := NormalizeEmail(profile.Email)

	user, err := s.reader.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	name := strings.TrimSpace(profile.Name)
	if name == "" {
		name = email
	}
	user = &models.UserDB{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		AuthProvider: models.AuthProviderGoogle,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.writer.Save(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			// Created by a concurrent callback.
			return s.reader.GetByEmail(ctx, email)
		}
		return nil, err
	}

	s.events.Publish(ctx, newEvent(user.ID, models.EntityUser, user.ID, models.OperationCreated))
	return user, nil
}

func (s *OAuthService) redirect(q url.Values) string {
	return fmt.Sprintf("%s/?%s", s.frontendURL, q.Encode())
}

func generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
