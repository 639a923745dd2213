package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/podcast-network/internal/jwt"
	"github.com/sbilibin2017/podcast-network/internal/models"
	"github.com/sbilibin2017/podcast-network/internal/repositories"
)

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	user := &models.UserDB{ID: userID, Email: "alice@example.com", Name: "Alice"}

	tests := []struct {
		name             string
		mockSetup        func(tok *MockTokener, users *MockUserGetter)
		expectedStatus   int
		expectedBody     string
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(tok *MockTokener, users *MockUserGetter) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", jwt.ErrMissingToken)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"detail":"Invalid authentication credentials"}`,
		},
		{
			name: "InvalidToken",
			mockSetup: func(tok *MockTokener, users *MockUserGetter) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("sometoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "sometoken").Return(nil, jwt.ErrExpiredToken)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"detail":"Invalid authentication credentials"}`,
		},
		{
			name: "DeletedUser",
			mockSetup: func(tok *MockTokener, users *MockUserGetter) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "validtoken").Return(&jwt.Claims{UserID: userID}, nil)
				users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, repositories.ErrNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"detail":"Invalid authentication credentials"}`,
		},
		{
			name: "StoreError",
			mockSetup: func(tok *MockTokener, users *MockUserGetter) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "validtoken").Return(&jwt.Claims{UserID: userID}, nil)
				users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"detail":"Internal server error"}`,
		},
		{
			name: "ValidToken",
			mockSetup: func(tok *MockTokener, users *MockUserGetter) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "validtoken").Return(&jwt.Claims{UserID: userID}, nil)
				users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tok := NewMockTokener(ctrl)
			users := NewMockUserGetter(ctrl)
			tt.mockSetup(tok, users)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				got, ok := UserFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, user.Public(), got)
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(tok, users)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestUserFromContext_Missing(t *testing.T) {
	_, ok := UserFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}
