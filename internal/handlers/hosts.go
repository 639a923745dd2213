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

//go:generate mockgen -source=hosts.go -destination=mock_hosts.go -package=handlers

// HostService manages the caller's hosts.
type HostService interface {
	Create(ctx context.Context, userID uuid.UUID, in models.HostInput) (*models.Host, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Host, error)
	Update(ctx context.Context, userID, id uuid.UUID, in models.HostInput) (*models.Host, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]models.Host, error)
	Popular(ctx context.Context, userID uuid.UUID) ([]models.Host, error)
}

const (
	hostNotFound = "Host not found"
	hostDeleted  = "Host deleted successfully"
)

// HostHandler serves /hosts.
type HostHandler struct {
	svc HostService
}

// NewHostHandler creates a new HostHandler.
func NewHostHandler(svc HostService) *HostHandler {
	return &HostHandler{svc: svc}
}

// Routes returns a chi router with host routes.
func (h *HostHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/popular/list", h.Popular)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

// Create handles POST /hosts.
// @Summary Create a host
// @Tags hosts
// @Accept json
// @Produce json
// @Param host body models.HostInput true "Host"
// @Success 201 {object} models.Host
// @Failure 400 {object} handlers.ErrorResponse "Invalid JSON"
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Failure 422 {object} handlers.ErrorResponse "Invalid field"
// @Router /hosts [post]
// @Security BearerAuth
func (h *HostHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var in models.HostInput
	if !decodeJSON(w, r, &in) {
		return
	}

	host, err := h.svc.Create(r.Context(), user.ID, in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, host)
}

// List handles GET /hosts.
// @Summary List hosts
// @Tags hosts
// @Produce json
// @Success 200 {array} models.Host
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Router /hosts [get]
// @Security BearerAuth
func (h *HostHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	hosts, err := h.svc.List(r.Context(), user.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hosts)
}

// Popular handles GET /hosts/popular/list.
// @Summary Featured hosts
// @Tags hosts
// @Produce json
// @Success 200 {array} models.Host
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Router /hosts/popular/list [get]
// @Security BearerAuth
func (h *HostHandler) Popular(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	hosts, err := h.svc.Popular(r.Context(), user.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hosts)
}

// Get handles GET /hosts/{id}.
// @Summary Get a host
// @Tags hosts
// @Produce json
// @Param id path string true "Host ID"
// @Success 200 {object} models.Host
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Failure 404 {object} handlers.ErrorResponse "Host not found"
// @Router /hosts/{id} [get]
// @Security BearerAuth
func (h *HostHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, hostNotFound)
	if !ok {
		return
	}

	host, err := h.svc.Get(r.Context(), user.ID, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, host)
}

// Update handles PUT /hosts/{id}.
// @Summary Replace a host
// @Tags hosts
// @Accept json
// @Produce json
// @Param id path string true "Host ID"
// @Param host body models.HostInput true "Host"
// @Success 200 {object} models.Host
// @Failure 400 {object} handlers.ErrorResponse "Invalid JSON"
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Failure 404 {object} handlers.ErrorResponse "Host not found"
// @Failure 422 {object} handlers.ErrorResponse "Invalid field"
// @Router /hosts/{id} [put]
// @Security BearerAuth
func (h *HostHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, hostNotFound)
	if !ok {
		return
	}

	var in models.HostInput
	if !decodeJSON(w, r, &in) {
		return
	}

	host, err := h.svc.Update(r.Context(), user.ID, id, in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, host)
}

// Delete handles DELETE /hosts/{id}.
// @Summary Delete a host
// @Tags hosts
// @Produce json
// @Param id path string true "Host ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Failure 404 {object} handlers.ErrorResponse "Host not found"
// @Router /hosts/{id} [delete]
// @Security BearerAuth
func (h *HostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, hostNotFound)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), user.ID, id); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: hostDeleted})
}

func (h *HostHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, hostNotFound)
	default:
		writeInternalError(w, "host request failed", err)
	}
}
