package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/podcast-network/internal/models"
	"github.com/sbilibin2017/podcast-network/internal/services"
)

//go:generate mockgen -source=advertisers.go -destination=mock_advertisers.go -package=handlers

// AdvertiserService manages the caller's advertisers.
type AdvertiserService interface {
	Create(ctx context.Context, userID uuid.UUID, in models.AdvertiserInput) (*models.Advertiser, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Advertiser, error)
	Update(ctx context.Context, userID, id uuid.UUID, in models.AdvertiserInput) (*models.Advertiser, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]models.Advertiser, error)
	Popular(ctx context.Context, userID uuid.UUID) ([]models.Advertiser, error)
}

const (
	advertiserNotFound = "Advertiser not found"
	advertiserDeleted  = "Advertiser deleted successfully"
)

// AdvertiserHandler serves /advertisers.
type AdvertiserHandler struct {
	svc AdvertiserService
}

// NewAdvertiserHandler creates a new AdvertiserHandler.
func NewAdvertiserHandler(svc AdvertiserService) *AdvertiserHandler {
	return &AdvertiserHandler{svc: svc}
}

// Routes returns a chi router with advertiser routes.
func (h *AdvertiserHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/popular/list", h.Popular)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

// Create handles POST /advertisers.
// @Summary Create an advertiser
// @Tags advertisers
// @Accept json
// @Produce json
// @Param advertiser body models.AdvertiserInput true "Advertiser"
// @Success 201 {object} models.Advertiser
// @Failure 400 {object} handlers.ErrorResponse "Invalid JSON"
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Failure 422 {object} handlers.ErrorResponse "Invalid field"
// @Router /advertisers [post]
// @Security BearerAuth
func (h *AdvertiserHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var in models.AdvertiserInput
	if !decodeJSON(w, r, &in) {
		return
	}

	advertiser, err := h.svc.Create(r.Context(), user.ID, in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, advertiser)
}

// List handles GET /advertisers.
// @Summary List advertisers
// @Tags advertisers
// @Produce json
// @Success 200 {array} models.Advertiser
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Router /advertisers [get]
// @Security BearerAuth
func (h *AdvertiserHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	advertisers, err := h.svc.List(r.Context(), user.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, advertisers)
}

// Popular handles GET /advertisers/popular/list.
// @Summary Advertisers with the largest budgets
// @Tags advertisers
// @Produce json
// @Success 200 {array} models.Advertiser
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Router /advertisers/popular/list [get]
// @Security BearerAuth
func (h *AdvertiserHandler) Popular(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	advertisers, err := h.svc.Popular(r.Context(), user.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, advertisers)
}

// Get handles GET /advertisers/{id}.
// @Summary Get an advertiser
// @Tags advertisers
// @Produce json
// @Param id path string true "Advertiser ID"
// @Success 200 {object} models.Advertiser
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Failure 404 {object} handlers.ErrorResponse "Advertiser not found"
// @Router /advertisers/{id} [get]
// @Security BearerAuth
func (h *AdvertiserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, advertiserNotFound)
	if !ok {
		return
	}

	advertiser, err := h.svc.Get(r.Context(), user.ID, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, advertiser)
}

// Update handles PUT /advertisers/{id}.
// @Summary Replace an advertiser
// @Tags advertisers
// @Accept json
// @Produce json
// @Param id path string true "Advertiser ID"
// @Param advertiser body models.AdvertiserInput true "Advertiser"
// @Success 200 {object} models.Advertiser
// @Failure 400 {object} handlers.ErrorResponse "Invalid JSON"
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Failure 404 {object} handlers.ErrorResponse "Advertiser not found"
// @Failure 422 {object} handlers.ErrorResponse "Invalid field"
// @Router /advertisers/{id} [put]
// @Security BearerAuth
func (h *AdvertiserHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, advertiserNotFound)
	if !ok {
		return
	}

	var in models.AdvertiserInput
	if !decodeJSON(w, r, &in) {
		return
	}

	advertiser, err := h.svc.Update(r.Context(), user.ID, id, in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, advertiser)
}

// Delete handles DELETE /advertisers/{id}.
// @Summary Delete an advertiser
// @Tags advertisers
// @Produce json
// @Param id path string true "Advertiser ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Failure 404 {object} handlers.ErrorResponse "Advertiser not found"
// @Router /advertisers/{id} [delete]
// @Security BearerAuth
func (h *AdvertiserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, advertiserNotFound)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), user.ID, id); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: advertiserDeleted})
}

func (h *AdvertiserHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, advertiserNotFound)
	default:
		writeInternalError(w, "advertiser request failed", err)
	}
}
