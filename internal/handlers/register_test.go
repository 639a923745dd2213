package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/podcast-network/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	result := &services.AuthResult{Token: "token123", User: testUser}

	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *MockRegisterer)
		expectedCode   int
		expectedDetail string
	}{
		{
			name: "success",
			body: `{"email":"alice@example.com","name":"Alice","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "alice@example.com", "secret", "Alice").Return(result, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "email already registered",
			body: `{"email":"alice@example.com","name":"Alice","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, services.ErrEmailAlreadyRegistered)
			},
			expectedCode:   http.StatusBadRequest,
			expectedDetail: "Email already registered",
		},
		{
			name: "internal server error",
			body: `{"email":"bob@example.com","name":"Bob","password":"pass"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database failure"))
			},
			expectedCode:   http.StatusInternalServerError,
			expectedDetail: "Internal server error",
		},
		{
			name:           "invalid json",
			body:           `{"email":`,
			mockSetup:      func(m *MockRegisterer) {},
			expectedCode:   http.StatusBadRequest,
			expectedDetail: "Invalid JSON body",
		},
		{
			name:           "invalid email",
			body:           `{"email":"not-an-email","name":"Alice","password":"secret"}`,
			mockSetup:      func(m *MockRegisterer) {},
			expectedCode:   http.StatusUnprocessableEntity,
			expectedDetail: "email: value is not a valid email address",
		},
		{
			name:           "missing password",
			body:           `{"email":"alice@example.com","name":"Alice"}`,
			mockSetup:      func(m *MockRegisterer) {},
			expectedCode:   http.StatusUnprocessableEntity,
			expectedDetail: "password: field required",
		},
		{
			name:           "whitespace-only name",
			body:           `{"email":"alice@example.com","name":"   ","password":"secret"}`,
			mockSetup:      func(m *MockRegisterer) {},
			expectedCode:   http.StatusUnprocessableEntity,
			expectedDetail: "name: field required",
		},
		{
			name:           "multibyte password over 72 bytes",
			body:           `{"email":"alice@example.com","name":"Alice","password":"` + strings.Repeat("é", 40) + `"}`,
			mockSetup:      func(m *MockRegisterer) {},
			expectedCode:   http.StatusUnprocessableEntity,
			expectedDetail: "password: must be at most 72 bytes",
		},
		{
			name: "multibyte password at 72 bytes",
			body: `{"email":"alice@example.com","name":"Alice","password":"` + strings.Repeat("é", 36) + `"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "alice@example.com", strings.Repeat("é", 36), "Alice").Return(result, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "password rejected by hasher",
			body: `{"email":"alice@example.com","name":"Alice","password":"secret"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, services.ErrPasswordTooLong)
			},
			expectedCode:   http.StatusUnprocessableEntity,
			expectedDetail: "password: must be at most 72 bytes",
		},
		{
			name:           "wrong type",
			body:           `{"email":"alice@example.com","name":42,"password":"secret"}`,
			mockSetup:      func(m *MockRegisterer) {},
			expectedCode:   http.StatusUnprocessableEntity,
			expectedDetail: "name: invalid type, expected string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockRegisterer(ctrl)
			tt.mockSetup(m)

			rr := serve(NewRegisterHandler(m), http.MethodPost, "/api/auth/register", strings.NewReader(tt.body), nil)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			if tt.expectedDetail != "" {
				assert.Equal(t, tt.expectedDetail, decodeDetail(t, rr))
				return
			}

			var resp TokenResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "token123", resp.AccessToken)
			assert.Equal(t, "bearer", resp.TokenType)
			assert.Equal(t, testUser, resp.User)
		})
	}
}
