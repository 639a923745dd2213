package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/podcast-network/internal/hasher"
	"github.com/sbilibin2017/podcast-network/internal/models"
	"github.com/sbilibin2017/podcast-network/internal/repositories"
	"github.com/sbilibin2017/podcast-network/internal/services"
)

type authMocks struct {
	reader *services.MockUserReader
	writer *services.MockUserWriter
	hasher *services.MockPasswordHasher
	jwt    *services.MockJWTGenerator
	data   *services.MockDataClearer
	events *services.MockEventPublisher
}

func newAuthService(ctrl *gomock.Controller) (*services.AuthService, authMocks) {
	m := authMocks{
		reader: services.NewMockUserReader(ctrl),
		writer: services.NewMockUserWriter(ctrl),
		hasher: services.NewMockPasswordHasher(ctrl),
		jwt:    services.NewMockJWTGenerator(ctrl),
		data:   services.NewMockDataClearer(ctrl),
		events: services.NewMockEventPublisher(ctrl),
	}
	svc := services.NewAuthService(m.reader, m.writer, m.hasher, m.jwt, m.data, m.events)
	return svc, m
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", services.NormalizeEmail("  Alice@Example.COM "))
	assert.Equal(t, "", services.NormalizeEmail("   "))
}

func TestAuthService_Register(t *testing.T) {
	dbErr := errors.New("db error")

	tests := []struct {
		name    string
		setup   func(m authMocks)
		wantErr error
	}{
		{
			name: "successful registration",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, repositories.ErrNotFound)
				m.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
				m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *models.UserDB) error {
						assert.Equal(t, "alice@example.com", u.Email)
						assert.Equal(t, "Alice", u.Name)
						assert.Equal(t, models.AuthProviderLocal, u.AuthProvider)
						require.NotNil(t, u.PasswordHash)
						assert.Equal(t, "hashed", *u.PasswordHash)
						return nil
					})
				m.events.EXPECT().Publish(gomock.Any(), gomock.Any())
				m.jwt.EXPECT().Generate(gomock.Any(), gomock.Any(), "alice@example.com").Return("token123", nil)
			},
		},
		{
			name: "email already registered",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").
					Return(&models.UserDB{ID: uuid.New()}, nil)
			},
			wantErr: services.ErrEmailAlreadyRegistered,
		},
		{
			name: "concurrent registration hits unique constraint",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrNotFound)
				m.hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
				m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(repositories.ErrDuplicate)
			},
			wantErr: services.ErrEmailAlreadyRegistered,
		},
		{
			name: "reader error",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name: "password over bcrypt byte limit",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrNotFound)
				m.hasher.EXPECT().Hash(gomock.Any()).Return("", hasher.ErrPasswordTooLong)
			},
			wantErr: services.ErrPasswordTooLong,
		},
		{
			name: "writer error",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrNotFound)
				m.hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
				m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newAuthService(ctrl)
			tt.setup(m)

			res, err := svc.Register(context.Background(), " Alice@Example.com", "secret123", " Alice ")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token123", res.Token)
			assert.Equal(t, "alice@example.com", res.User.Email)
			assert.Equal(t, "Alice", res.User.Name)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()
	hash := "hashed"
	local := &models.UserDB{ID: userID, Email: "bob@example.com", Name: "Bob", PasswordHash: &hash}
	federated := &models.UserDB{ID: userID, Email: "bob@example.com", Name: "Bob", AuthProvider: models.AuthProviderGoogle}
	dbErr := errors.New("db error")

	tests := []struct {
		name      string
		setup     func(m authMocks)
		wantErr   error
		wantToken string
	}{
		{
			name: "successful login",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), "bob@example.com").Return(local, nil)
				m.hasher.EXPECT().Verify("secret", hash).Return(true)
				m.jwt.EXPECT().Generate(gomock.Any(), userID, "bob@example.com").Return("token123", nil)
			},
			wantToken: "token123",
		},
		{
			name: "unknown email",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrNotFound)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(local, nil)
				m.hasher.EXPECT().Verify("secret", hash).Return(false)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name: "federated account has no password",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(federated, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name: "reader error",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name: "jwt error",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(local, nil)
				m.hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(true)
				m.jwt.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("sign error"))
			},
			wantErr: errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newAuthService(ctrl)
			tt.setup(m)

			res, err := svc.Login(context.Background(), "BOB@example.com", "secret")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, res.Token)
			assert.Equal(t, models.User{ID: userID, Email: "bob@example.com", Name: "Bob"}, res.User)
		})
	}
}

func TestAuthService_DeleteAccount(t *testing.T) {
	userID := uuid.New()

	t.Run("clears data then deletes user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newAuthService(ctrl)
		gomock.InOrder(
			m.data.EXPECT().ClearAll(gomock.Any(), userID).Return(models.EntityCounts{Hosts: 2}, nil),
			m.writer.EXPECT().Delete(gomock.Any(), userID).Return(nil),
		)
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, ev models.Event) {
			assert.Equal(t, models.EntityUser, ev.Entity)
			assert.Equal(t, models.OperationDeleted, ev.Operation)
			assert.Equal(t, userID.String(), ev.UserID)
		})

		assert.NoError(t, svc.DeleteAccount(context.Background(), userID))
	})

	t.Run("clear failure stops deletion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newAuthService(ctrl)
		m.data.EXPECT().ClearAll(gomock.Any(), userID).Return(models.EntityCounts{}, errors.New("db error"))

		assert.EqualError(t, svc.DeleteAccount(context.Background(), userID), "db error")
	})

	t.Run("user already gone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newAuthService(ctrl)
		m.data.EXPECT().ClearAll(gomock.Any(), userID).Return(models.EntityCounts{}, nil)
		m.writer.EXPECT().Delete(gomock.Any(), userID).Return(repositories.ErrNotFound)

		assert.ErrorIs(t, svc.DeleteAccount(context.Background(), userID), services.ErrUserNotFound)
	})
}
