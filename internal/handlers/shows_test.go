package handlers

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/podcast-network/internal/models"
	"github.com/sbilibin2017/podcast-network/internal/services"
)

func TestShowHandler_Create(t *testing.T) {
	hostID := uuid.New()

	tests := []struct {
		name           string
		body           any
		mockSetup      func(m *MockShowService)
		expectedCode   int
		expectedDetail string
	}{
		{
			name: "created",
			body: map[string]any{"title": "The Ranveer Show", "host_id": hostID, "category": "Self-Improvement"},
			mockSetup: func(m *MockShowService) {
				m.EXPECT().Create(gomock.Any(), testUser.ID, gomock.Any()).
					Return(&models.Show{ID: uuid.New(), HostID: hostID, Status: models.ShowStatusActive}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "host of another user",
			body: map[string]any{"title": "X", "host_id": hostID, "category": "Y"},
			mockSetup: func(m *MockShowService) {
				m.EXPECT().Create(gomock.Any(), testUser.ID, gomock.Any()).Return(nil, services.ErrInvalidReference)
			},
			expectedCode:   http.StatusUnprocessableEntity,
			expectedDetail: "host_id: host not found",
		},
		{
			name:           "missing host",
			body:           map[string]any{"title": "X", "category": "Y"},
			mockSetup:      func(m *MockShowService) {},
			expectedCode:   http.StatusUnprocessableEntity,
			expectedDetail: "host_id: field required",
		},
		{
			name:           "unknown status",
			body:           map[string]any{"title": "X", "host_id": hostID, "category": "Y", "status": "cancelled"},
			mockSetup:      func(m *MockShowService) {},
			expectedCode:   http.StatusUnprocessableEntity,
			expectedDetail: "status: must be one of active, paused, completed",
		},
		{
			name:           "host id not a uuid",
			body:           map[string]any{"title": "X", "host_id": "abc", "category": "Y"},
			mockSetup:      func(m *MockShowService) {},
			expectedCode:   http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockShowService(ctrl)
			tt.mockSetup(m)

			rr := serve(NewShowHandler(m).Routes(), http.MethodPost, "/", jsonBody(t, tt.body), &testUser)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedDetail != "" {
				assert.Equal(t, tt.expectedDetail, decodeDetail(t, rr))
			}
		})
	}
}

func TestShowHandler_UpdateInvalidReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockShowService(ctrl)
	id := uuid.New()
	m.EXPECT().Update(gomock.Any(), testUser.ID, id, gomock.Any()).Return(nil, services.ErrInvalidReference)

	body := jsonBody(t, map[string]any{"title": "X", "host_id": uuid.New(), "category": "Y"})
	rr := serve(NewShowHandler(m).Routes(), http.MethodPut, "/"+id.String(), body, &testUser)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestShowHandler_Popular(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockShowService(ctrl)
	m.EXPECT().Popular(gomock.Any(), testUser.ID).Return([]models.Show{{Title: "WTF"}}, nil)

	rr := serve(NewShowHandler(m).Routes(), http.MethodGet, "/popular/list", nil, &testUser)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"title":"WTF"`)
}
