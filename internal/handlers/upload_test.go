package handlers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/podcast-network/internal/middlewares"
	"github.com/sbilibin2017/podcast-network/internal/services"
)

const testMaxUpload = 5 << 20

func multipartRequest(t *testing.T, field, filename, contentType string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
		h.Set("Content-Type", contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload/host-image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req.WithContext(middlewares.WithUser(req.Context(), testUser))
}

func TestUploadHostImageHandler(t *testing.T) {
	tests := []struct {
		name           string
		field          string
		contentType    string
		mockSetup      func(m *MockImageUploader)
		expectedCode   int
		expectedDetail string
		expectedURL    string
	}{
		{
			name:        "stored",
			field:       "image",
			contentType: "image/png",
			mockSetup: func(m *MockImageUploader) {
				m.EXPECT().SaveHostImage(gomock.Any(), "cover.png", "image/png", gomock.Any()).
					Return("/uploads/hosts/abc.png", nil)
			},
			expectedCode: http.StatusOK,
			expectedURL:  "/uploads/hosts/abc.png",
		},
		{
			name:        "not an image",
			field:       "image",
			contentType: "text/plain",
			mockSetup: func(m *MockImageUploader) {
				m.EXPECT().SaveHostImage(gomock.Any(), "cover.png", "text/plain", gomock.Any()).
					Return("", services.ErrNotAnImage)
			},
			expectedCode:   http.StatusBadRequest,
			expectedDetail: "File must be an image",
		},
		{
			name:        "too large after streaming",
			field:       "image",
			contentType: "image/png",
			mockSetup: func(m *MockImageUploader) {
				m.EXPECT().SaveHostImage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", services.ErrFileTooLarge)
			},
			expectedCode:   http.StatusBadRequest,
			expectedDetail: "File size must be less than 5MB",
		},
		{
			name:        "storage failure",
			field:       "image",
			contentType: "image/png",
			mockSetup: func(m *MockImageUploader) {
				m.EXPECT().SaveHostImage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("disk full"))
			},
			expectedCode:   http.StatusInternalServerError,
			expectedDetail: "Failed to upload image",
		},
		{
			name:           "missing field",
			mockSetup:      func(m *MockImageUploader) {},
			expectedCode:   http.StatusUnprocessableEntity,
			expectedDetail: "image: field required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockImageUploader(ctrl)
			m.EXPECT().MaxBytes().Return(int64(testMaxUpload)).AnyTimes()
			tt.mockSetup(m)

			req := multipartRequest(t, tt.field, "cover.png", tt.contentType, []byte("\x89PNG fake"))
			rr := httptest.NewRecorder()
			NewUploadHostImageHandler(m).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedDetail != "" {
				assert.Equal(t, tt.expectedDetail, decodeDetail(t, rr))
			}
			if tt.expectedURL != "" {
				assert.JSONEq(t, `{"url":"`+tt.expectedURL+`"}`, rr.Body.String())
			}
		})
	}
}

func TestUploadHostImageHandler_OversizedFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockImageUploader(ctrl)
	m.EXPECT().MaxBytes().Return(int64(16)).AnyTimes()

	req := multipartRequest(t, "image", "big.jpg", "image/jpeg", bytes.Repeat([]byte{0xff}, 64))
	rr := httptest.NewRecorder()
	NewUploadHostImageHandler(m).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "File size must be less than 0MB", decodeDetail(t, rr))
}
