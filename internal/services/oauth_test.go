package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/podcast-network/internal/models"
	"github.com/sbilibin2017/podcast-network/internal/repositories"
	"github.com/sbilibin2017/podcast-network/internal/services"
)

const frontendURL = "http://localhost:3000"

type oauthMocks struct {
	provider *services.MockIdentityProvider
	states   *services.MockOAuthStateStore
	reader   *services.MockUserReader
	writer   *services.MockUserWriter
	jwt      *services.MockJWTGenerator
	events   *services.MockEventPublisher
}

func newOAuthService(ctrl *gomock.Controller) (*services.OAuthService, oauthMocks) {
	m := oauthMocks{
		provider: services.NewMockIdentityProvider(ctrl),
		states:   services.NewMockOAuthStateStore(ctrl),
		reader:   services.NewMockUserReader(ctrl),
		writer:   services.NewMockUserWriter(ctrl),
		jwt:      services.NewMockJWTGenerator(ctrl),
		events:   services.NewMockEventPublisher(ctrl),
	}
	svc := services.NewOAuthService(
		map[string]services.IdentityProvider{services.ProviderGoogle: m.provider},
		m.states, m.reader, m.writer, m.jwt, m.events,
		frontendURL+"/",
	)
	return svc, m
}

func redirectQuery(t *testing.T, redirect string) url.Values {
	t.Helper()
	u, err := url.Parse(redirect)
	require.NoError(t, err)
	assert.Equal(t, "localhost:3000", u.Host)
	assert.Equal(t, "/", u.Path)
	return u.Query()
}

func TestOAuthService_BeginFederation(t *testing.T) {
	t.Run("stores state and returns provider url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newOAuthService(ctrl)

		var saved string
		m.states.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, state string, _ time.Duration) error {
				saved = state
				return nil
			})
		m.provider.EXPECT().AuthCodeURL(gomock.Any()).DoAndReturn(func(state string) string {
			return "https://accounts.example.com/auth?state=" + state
		})

		got, err := svc.BeginFederation(context.Background(), services.ProviderGoogle)
		require.NoError(t, err)
		assert.NotEmpty(t, saved)
		assert.Equal(t, "https://accounts.example.com/auth?state="+saved, got)
	})

	t.Run("fresh state every time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newOAuthService(ctrl)
		seen := map[string]bool{}
		m.states.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Times(5).DoAndReturn(
			func(_ context.Context, state string, _ time.Duration) error {
				assert.False(t, seen[state])
				seen[state] = true
				return nil
			})
		m.provider.EXPECT().AuthCodeURL(gomock.Any()).Times(5).Return("u")

		for i := 0; i < 5; i++ {
			_, err := svc.BeginFederation(context.Background(), services.ProviderGoogle)
			require.NoError(t, err)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newOAuthService(ctrl)
		_, err := svc.BeginFederation(context.Background(), "github")
		assert.ErrorIs(t, err, services.ErrProviderNotConfigured)
	})

	t.Run("state store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newOAuthService(ctrl)
		m.states.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		_, err := svc.BeginFederation(context.Background(), services.ProviderGoogle)
		assert.EqualError(t, err, "redis down")
	})
}

func TestOAuthService_CompleteFederation(t *testing.T) {
	existingID := uuid.New()
	existing := &models.UserDB{ID: existingID, Email: "carol@example.com", Name: "Carol", AuthProvider: models.AuthProviderLocal}
	validQuery := url.Values{"state": {"s1"}, "code": {"c1"}}

	tests := []struct {
		name      string
		provider  string
		query     url.Values
		setup     func(m oauthMocks)
		wantError string
		wantUser  *models.User
	}{
		{
			name:     "existing account logs in",
			provider: services.ProviderGoogle,
			query:    validQuery,
			setup: func(m oauthMocks) {
				m.states.EXPECT().Consume(gomock.Any(), "s1").Return(true, nil)
				m.provider.EXPECT().Exchange(gomock.Any(), "c1").
					Return(&services.OAuthProfile{Email: "Carol@Example.com", Name: "Carol G"}, nil)
				m.reader.EXPECT().GetByEmail(gomock.Any(), "carol@example.com").Return(existing, nil)
				m.jwt.EXPECT().Generate(gomock.Any(), existingID, "carol@example.com").Return("tok", nil)
			},
			wantUser: &models.User{ID: existingID, Email: "carol@example.com", Name: "Carol"},
		},
		{
			name:     "first login creates federated account",
			provider: services.ProviderGoogle,
			query:    validQuery,
			setup: func(m oauthMocks) {
				m.states.EXPECT().Consume(gomock.Any(), "s1").Return(true, nil)
				m.provider.EXPECT().Exchange(gomock.Any(), "c1").
					Return(&services.OAuthProfile{Email: "dave@example.com"}, nil)
				m.reader.EXPECT().GetByEmail(gomock.Any(), "dave@example.com").Return(nil, repositories.ErrNotFound)
				m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *models.UserDB) error {
					assert.Equal(t, models.AuthProviderGoogle, u.AuthProvider)
					assert.Nil(t, u.PasswordHash)
					assert.Equal(t, "dave@example.com", u.Name)
					u.ID = existingID
					return nil
				})
				m.events.EXPECT().Publish(gomock.Any(), gomock.Any())
				m.jwt.EXPECT().Generate(gomock.Any(), existingID, "dave@example.com").Return("tok", nil)
			},
			wantUser: &models.User{ID: existingID, Email: "dave@example.com", Name: "dave@example.com"},
		},
		{
			name:     "concurrent first login re-reads account",
			provider: services.ProviderGoogle,
			query:    validQuery,
			setup: func(m oauthMocks) {
				m.states.EXPECT().Consume(gomock.Any(), "s1").Return(true, nil)
				m.provider.EXPECT().Exchange(gomock.Any(), "c1").
					Return(&services.OAuthProfile{Email: "carol@example.com"}, nil)
				gomock.InOrder(
					m.reader.EXPECT().GetByEmail(gomock.Any(), "carol@example.com").Return(nil, repositories.ErrNotFound),
					m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(repositories.ErrDuplicate),
					m.reader.EXPECT().GetByEmail(gomock.Any(), "carol@example.com").Return(existing, nil),
				)
				m.jwt.EXPECT().Generate(gomock.Any(), existingID, "carol@example.com").Return("tok", nil)
			},
			wantUser: &models.User{ID: existingID, Email: "carol@example.com", Name: "Carol"},
		},
		{
			name:      "provider reported error",
			provider:  services.ProviderGoogle,
			query:     url.Values{"error": {"access_denied"}},
			setup:     func(m oauthMocks) {},
			wantError: "access_denied",
		},
		{
			name:      "missing state",
			provider:  services.ProviderGoogle,
			query:     url.Values{"code": {"c1"}},
			setup:     func(m oauthMocks) {},
			wantError: "invalid_state",
		},
		{
			name:     "unknown or replayed state",
			provider: services.ProviderGoogle,
			query:    validQuery,
			setup: func(m oauthMocks) {
				m.states.EXPECT().Consume(gomock.Any(), "s1").Return(false, nil)
			},
			wantError: "invalid_state",
		},
		{
			name:     "state store failure",
			provider: services.ProviderGoogle,
			query:    validQuery,
			setup: func(m oauthMocks) {
				m.states.EXPECT().Consume(gomock.Any(), "s1").Return(false, errors.New("redis down"))
			},
			wantError: "invalid_state",
		},
		{
			name:     "missing code",
			provider: services.ProviderGoogle,
			query:    url.Values{"state": {"s1"}},
			setup: func(m oauthMocks) {
				m.states.EXPECT().Consume(gomock.Any(), "s1").Return(true, nil)
			},
			wantError: "missing_code",
		},
		{
			name:     "token exchange failure",
			provider: services.ProviderGoogle,
			query:    validQuery,
			setup: func(m oauthMocks) {
				m.states.EXPECT().Consume(gomock.Any(), "s1").Return(true, nil)
				m.provider.EXPECT().Exchange(gomock.Any(), "c1").Return(nil, errors.New("bad code"))
			},
			wantError: "token_exchange_failed",
		},
		{
			name:     "userinfo failure",
			provider: services.ProviderGoogle,
			query:    validQuery,
			setup: func(m oauthMocks) {
				m.states.EXPECT().Consume(gomock.Any(), "s1").Return(true, nil)
				m.provider.EXPECT().Exchange(gomock.Any(), "c1").
					Return(nil, fmt.Errorf("%w: status 500", services.ErrNoUserInfo))
			},
			wantError: "no_user_info",
		},
		{
			name:     "profile without email",
			provider: services.ProviderGoogle,
			query:    validQuery,
			setup: func(m oauthMocks) {
				m.states.EXPECT().Consume(gomock.Any(), "s1").Return(true, nil)
				m.provider.EXPECT().Exchange(gomock.Any(), "c1").Return(&services.OAuthProfile{Name: "x"}, nil)
			},
			wantError: "no_user_info",
		},
		{
			name:     "user store failure",
			provider: services.ProviderGoogle,
			query:    validQuery,
			setup: func(m oauthMocks) {
				m.states.EXPECT().Consume(gomock.Any(), "s1").Return(true, nil)
				m.provider.EXPECT().Exchange(gomock.Any(), "c1").Return(&services.OAuthProfile{Email: "e@example.com"}, nil)
				m.reader.EXPECT().GetByEmail(gomock.Any(), "e@example.com").Return(nil, errors.New("db error"))
			},
			wantError: "login_failed",
		},
		{
			name:     "panic is reported as login failure",
			provider: services.ProviderGoogle,
			query:    validQuery,
			setup: func(m oauthMocks) {
				m.states.EXPECT().Consume(gomock.Any(), "s1").Return(true, nil)
				m.provider.EXPECT().Exchange(gomock.Any(), "c1").DoAndReturn(
					func(context.Context, string) (*services.OAuthProfile, error) {
						panic("boom")
					})
			},
			wantError: "login_failed",
		},
		{
			name:      "unknown provider",
			provider:  "github",
			query:     validQuery,
			setup:     func(m oauthMocks) {},
			wantError: "provider_not_configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newOAuthService(ctrl)
			tt.setup(m)

			q := redirectQuery(t, svc.CompleteFederation(context.Background(), tt.provider, tt.query))
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, q.Get("error"))
				assert.Empty(t, q.Get("token"))
				return
			}

			assert.Empty(t, q.Get("error"))
			assert.Equal(t, "tok", q.Get("token"))
			var user models.User
			require.NoError(t, json.Unmarshal([]byte(q.Get("user")), &user))
			assert.Equal(t, *tt.wantUser, user)
		})
	}
}
