package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/podcast-network/internal/models"
)

func TestClearAllDataHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockDataManager(ctrl)
	counts := models.EntityCounts{Hosts: 10, Shows: 10, Episodes: 5, Advertisers: 12}
	m.EXPECT().ClearAll(gomock.Any(), testUser.ID).Return(counts, nil)

	rr := serve(NewClearAllDataHandler(m), http.MethodDelete, "/clear-all-data", nil, &testUser)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp ClearDataResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "All data cleared successfully", resp.Message)
	assert.Equal(t, counts, resp.Deleted)

	m.EXPECT().ClearAll(gomock.Any(), testUser.ID).Return(models.EntityCounts{}, errors.New("db down"))
	rr = serve(NewClearAllDataHandler(m), http.MethodDelete, "/clear-all-data", nil, &testUser)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	rr = serve(NewClearAllDataHandler(m), http.MethodDelete, "/clear-all-data", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestInitializeDefaultsHandler(t *testing.T) {
	seeded := &models.SeedResult{
		Initialized: true,
		Counts:      models.EntityCounts{Hosts: 10, Shows: 10, Episodes: 5, Advertisers: 12},
	}

	tests := []struct {
		name          string
		target        string
		mockSetup     func(m *MockDataManager)
		expectedCode  int
		expectedInit  bool
		expectedMsg   string
		expectedCount bool
	}{
		{
			name:   "fresh account",
			target: "/initialize-defaults",
			mockSetup: func(m *MockDataManager) {
				m.EXPECT().InitializeDefaults(gomock.Any(), testUser.ID, false).Return(seeded, nil)
			},
			expectedCode:  http.StatusOK,
			expectedInit:  true,
			expectedMsg:   "Indian podcast sample data initialized successfully",
			expectedCount: true,
		},
		{
			name:   "existing data",
			target: "/initialize-defaults",
			mockSetup: func(m *MockDataManager) {
				m.EXPECT().InitializeDefaults(gomock.Any(), testUser.ID, false).Return(&models.SeedResult{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "User already has data. Use force=true to reinitialize.",
		},
		{
			name:   "forced",
			target: "/initialize-defaults?force=true",
			mockSetup: func(m *MockDataManager) {
				m.EXPECT().InitializeDefaults(gomock.Any(), testUser.ID, true).Return(seeded, nil)
			},
			expectedCode:  http.StatusOK,
			expectedInit:  true,
			expectedMsg:   "Indian podcast sample data initialized successfully",
			expectedCount: true,
		},
		{
			name:         "bad force value",
			target:       "/initialize-defaults?force=maybe",
			mockSetup:    func(m *MockDataManager) {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:   "service failure",
			target: "/initialize-defaults",
			mockSetup: func(m *MockDataManager) {
				m.EXPECT().InitializeDefaults(gomock.Any(), testUser.ID, false).Return(nil, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockDataManager(ctrl)
			tt.mockSetup(m)

			rr := serve(NewInitializeDefaultsHandler(m), http.MethodPost, tt.target, nil, &testUser)
			require.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode != http.StatusOK {
				return
			}

			var resp InitializeResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedInit, resp.Initialized)
			assert.Equal(t, tt.expectedMsg, resp.Message)
			assert.Equal(t, tt.expectedCount, resp.Counts != nil)
		})
	}
}
