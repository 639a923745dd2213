package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/sbilibin2017/podcast-network/internal/models"
)

//go:generate mockgen -source=data.go -destination=mock_data.go -package=handlers

// DataManager runs bulk operations on the caller's data.
type DataManager interface {
	ClearAll(ctx context.Context, userID uuid.UUID) (models.EntityCounts, error)
	InitializeDefaults(ctx context.Context, userID uuid.UUID, force bool) (*models.SeedResult, error)
}

// ClearDataResponse reports how many rows were removed.
// swagger:model ClearDataResponse
type ClearDataResponse struct {
	Message string              `json:"message"`
	Deleted models.EntityCounts `json:"deleted"`
}

// InitializeResponse reports the outcome of loading sample data.
// swagger:model InitializeResponse
type InitializeResponse struct {
	Message     string               `json:"message"`
	Initialized bool                 `json:"initialized"`
	Counts      *models.EntityCounts `json:"counts,omitempty"`
}

// NewClearAllDataHandler deletes every host, show, episode and advertiser of the caller.
// @Summary Clear all data
// @Tags data
// @Produce json
// @Success 200 {object} handlers.ClearDataResponse
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /clear-all-data [delete]
// @Security BearerAuth
func NewClearAllDataHandler(svc DataManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		counts, err := svc.ClearAll(r.Context(), user.ID)
		if err != nil {
			writeInternalError(w, "failed to clear data", err)
			return
		}

		writeJSON(w, http.StatusOK, ClearDataResponse{
			Message: "All data cleared successfully",
			Deleted: counts,
		})
	}
}

// NewInitializeDefaultsHandler loads the sample podcast network for the caller.
// @Summary Load sample data
// @Description Skipped when the caller already has hosts, unless force is true.
// @Tags data
// @Produce json
// @Param force query bool false "Replace existing data"
// @Success 200 {object} handlers.InitializeResponse
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Failure 422 {object} handlers.ErrorResponse "Invalid force value"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /initialize-defaults [post]
// @Security BearerAuth
func NewInitializeDefaultsHandler(svc DataManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		force := false
		if raw := r.URL.Query().Get("force"); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				writeError(w, http.StatusUnprocessableEntity, "force: value could not be parsed to a boolean")
				return
			}
			force = v
		}

		res, err := svc.InitializeDefaults(r.Context(), user.ID, force)
		if err != nil {
			writeInternalError(w, "failed to initialize sample data", err)
			return
		}

		if !res.Initialized {
			writeJSON(w, http.StatusOK, InitializeResponse{
				Message: "User already has data. Use force=true to reinitialize.",
			})
			return
		}

		writeJSON(w, http.StatusOK, InitializeResponse{
			Message:     "Indian podcast sample data initialized successfully",
			Initialized: true,
			Counts:      &res.Counts,
		})
	}
}
