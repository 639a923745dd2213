package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/podcast-network/internal/middlewares"
	"github.com/sbilibin2017/podcast-network/internal/models"
)

var testUser = models.User{ID: uuid.MustParse("7b0f6a3e-2a51-4d0c-9a7e-1f4f3d2c1b00"), Email: "alice@example.com", Name: "Alice"}

// serve runs req through h as testUser, or anonymously when user is nil.
func serve(h http.Handler, method, target string, body io.Reader, user *models.User) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != nil {
		req = req.WithContext(middlewares.WithUser(req.Context(), *user))
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeDetail(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Detail
}

// serveMaybeBody is serve for table tests where the body is optional.
func serveMaybeBody(h http.Handler, method, target string, body *strings.Reader) *httptest.ResponseRecorder {
	if body == nil {
		return serve(h, method, target, nil, &testUser)
	}
	return serve(h, method, target, body, &testUser)
}
