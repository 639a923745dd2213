package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type decodeTarget struct {
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name" validate:"min=2,max=5"`
	Status string `json:"status" validate:"omitempty,oneof=draft published"`
	Budget int    `json:"budget" validate:"gte=0"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedOK     bool
		expectedCode   int
		expectedDetail string
	}{
		{
			name:       "valid",
			body:       `{"email":"a@b.co","name":"Ann"}`,
			expectedOK: true,
		},
		{
			name:           "empty body",
			body:           ``,
			expectedCode:   http.StatusBadRequest,
			expectedDetail: "Invalid JSON body",
		},
		{
			name:           "broken json",
			body:           `{"email":`,
			expectedCode:   http.StatusBadRequest,
			expectedDetail: "Invalid JSON body",
		},
		{
			name:           "wrong type",
			body:           `{"email":"a@b.co","name":"Ann","budget":"lots"}`,
			expectedCode:   http.StatusUnprocessableEntity,
			expectedDetail: "budget: invalid type, expected int",
		},
		{
			name:           "missing email",
			body:           `{"name":"Ann"}`,
			expectedCode:   http.StatusUnprocessableEntity,
			expectedDetail: "email: field required",
		},
		{
			name:           "bad email",
			body:           `{"email":"nope","name":"Ann"}`,
			expectedCode:   http.StatusUnprocessableEntity,
			expectedDetail: "email: value is not a valid email address",
		},
		{
			name:           "name too short",
			body:           `{"email":"a@b.co","name":"A"}`,
			expectedCode:   http.StatusUnprocessableEntity,
			expectedDetail: "name: must be at least 2 characters",
		},
		{
			name:           "name too long",
			body:           `{"email":"a@b.co","name":"Annabelle"}`,
			expectedCode:   http.StatusUnprocessableEntity,
			expectedDetail: "name: must be at most 5 characters",
		},
		{
			name:           "unknown status",
			body:           `{"email":"a@b.co","name":"Ann","status":"gone"}`,
			expectedCode:   http.StatusUnprocessableEntity,
			expectedDetail: "status: must be one of draft, published",
		},
		{
			name:           "negative budget",
			body:           `{"email":"a@b.co","name":"Ann","budget":-3}`,
			expectedCode:   http.StatusUnprocessableEntity,
			expectedDetail: "budget: must be greater than or equal to 0",
		},
		{
			name:           "too large",
			body:           `{"name":"` + strings.Repeat("x", maxJSONBodyBytes) + `"}`,
			expectedCode:   http.StatusRequestEntityTooLarge,
			expectedDetail: "Request body too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			var dst decodeTarget
			ok := decodeJSON(rr, req, &dst)

			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				return
			}
			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedDetail, decodeDetail(t, rr))
		})
	}
}

func TestPathID(t *testing.T) {
	h := NewHostHandler(nil).Routes()

	rr := serve(h, http.MethodGet, "/not-a-uuid", nil, &testUser)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Host not found", decodeDetail(t, rr))
}
