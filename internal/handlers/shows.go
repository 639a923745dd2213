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

//go:generate mockgen -source=shows.go -destination=mock_shows.go -package=handlers

// ShowService manages the caller's shows.
type ShowService interface {
	Create(ctx context.Context, userID uuid.UUID, in models.ShowInput) (*models.Show, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Show, error)
	Update(ctx context.Context, userID, id uuid.UUID, in models.ShowInput) (*models.Show, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]models.Show, error)
	Popular(ctx context.Context, userID uuid.UUID) ([]models.Show, error)
}

const (
	showNotFound = "Show not found"
	showDeleted  = "Show deleted successfully"
)

// ShowHandler serves /shows.
type ShowHandler struct {
	svc ShowService
}

// NewShowHandler creates a new ShowHandler.
func NewShowHandler(svc ShowService) *ShowHandler {
	return &ShowHandler{svc: svc}
}

// Routes returns a chi router with show routes.
func (h *ShowHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/popular/list", h.Popular)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

// Create handles POST /shows.
// @Summary Create a show
// @Tags shows
// @Accept json
// @Produce json
// @Param show body models.ShowInput true "Show"
// @Success 201 {object} models.Show
// @Failure 400 {object} handlers.ErrorResponse "Invalid JSON"
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Failure 422 {object} handlers.ErrorResponse "Invalid field"
// @Router /shows [post]
// @Security BearerAuth
func (h *ShowHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var in models.ShowInput
	if !decodeJSON(w, r, &in) {
		return
	}

	show, err := h.svc.Create(r.Context(), user.ID, in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, show)
}

// List handles GET /shows.
// @Summary List shows
// @Tags shows
// @Produce json
// @Success 200 {array} models.Show
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Router /shows [get]
// @Security BearerAuth
func (h *ShowHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	shows, err := h.svc.List(r.Context(), user.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shows)
}

// Popular handles GET /shows/popular/list.
// @Summary Newest active shows
// @Tags shows
// @Produce json
// @Success 200 {array} models.Show
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Router /shows/popular/list [get]
// @Security BearerAuth
func (h *ShowHandler) Popular(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	shows, err := h.svc.Popular(r.Context(), user.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shows)
}

// Get handles GET /shows/{id}.
// @Summary Get a show
// @Tags shows
// @Produce json
// @Param id path string true "Show ID"
// @Success 200 {object} models.Show
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Failure 404 {object} handlers.ErrorResponse "Show not found"
// @Router /shows/{id} [get]
// @Security BearerAuth
func (h *ShowHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, showNotFound)
	if !ok {
		return
	}

	show, err := h.svc.Get(r.Context(), user.ID, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, show)
}

// Update handles PUT /shows/{id}.
// @Summary Replace a show
// @Tags shows
// @Accept json
// @Produce json
// @Param id path string true "Show ID"
// @Param show body models.ShowInput true "Show"
// @Success 200 {object} models.Show
// @Failure 400 {object} handlers.ErrorResponse "Invalid JSON"
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Failure 404 {object} handlers.ErrorResponse "Show not found"
// @Failure 422 {object} handlers.ErrorResponse "Invalid field"
// @Router /shows/{id} [put]
// @Security BearerAuth
func (h *ShowHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, showNotFound)
	if !ok {
		return
	}

	var in models.ShowInput
	if !decodeJSON(w, r, &in) {
		return
	}

	show, err := h.svc.Update(r.Context(), user.ID, id, in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, show)
}

// Delete handles DELETE /shows/{id}.
// @Summary Delete a show
// @Tags shows
// @Produce json
// @Param id path string true "Show ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Failure 404 {object} handlers.ErrorResponse "Show not found"
// @Router /shows/{id} [delete]
// @Security BearerAuth
func (h *ShowHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, showNotFound)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), user.ID, id); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: showDeleted})
}

func (h *ShowHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, showNotFound)
	case errors.Is(err, services.ErrInvalidReference):
		writeError(w, http.StatusUnprocessableEntity, "host_id: host not found")
	default:
		writeInternalError(w, "show request failed", err)
	}
}
