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

//go:generate mockgen -source=episodes.go -destination=mock_episodes.go -package=handlers

// EpisodeService manages the caller's episodes.
type EpisodeService interface {
	Create(ctx context.Context, userID uuid.UUID, in models.EpisodeInput) (*models.Episode, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Episode, error)
	Update(ctx context.Context, userID, id uuid.UUID, in models.EpisodeInput) (*models.Episode, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, showID *uuid.UUID) ([]models.Episode, error)
	Popular(ctx context.Context, userID uuid.UUID) ([]models.Episode, error)
}

const (
	episodeNotFound = "Episode not found"
	episodeDeleted  = "Episode deleted successfully"
)

// EpisodeHandler serves /episodes.
type EpisodeHandler struct {
	svc EpisodeService
}

// NewEpisodeHandler creates a new EpisodeHandler.
func NewEpisodeHandler(svc EpisodeService) *EpisodeHandler {
	return &EpisodeHandler{svc: svc}
}

// Routes returns a chi router with episode routes.
func (h *EpisodeHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/popular/list", h.Popular)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

// Create handles POST /episodes.
// @Summary Create an episode
// @Tags episodes
// @Accept json
// @Produce json
// @Param episode body models.EpisodeInput true "Episode"
// @Success 201 {object} models.Episode
// @Failure 400 {object} handlers.ErrorResponse "Invalid JSON"
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Failure 422 {object} handlers.ErrorResponse "Invalid field"
// @Router /episodes [post]
// @Security BearerAuth
func (h *EpisodeHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var in models.EpisodeInput
	if !decodeJSON(w, r, &in) {
		return
	}

	episode, err := h.svc.Create(r.Context(), user.ID, in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, episode)
}

// List handles GET /episodes.
// @Summary List episodes
// @Tags episodes
// @Produce json
// @Param show_id query string false "Only episodes of this show"
// @Success 200 {array} models.Episode
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Router /episodes [get]
// @Security BearerAuth
func (h *EpisodeHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var showID *uuid.UUID
	if raw := r.URL.Query().Get("show_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "show_id: invalid UUID")
			return
		}
		showID = &id
	}

	episodes, err := h.svc.List(r.Context(), user.ID, showID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, episodes)
}

// Popular handles GET /episodes/popular/list.
// @Summary Latest published episodes
// @Tags episodes
// @Produce json
// @Success 200 {array} models.Episode
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Router /episodes/popular/list [get]
// @Security BearerAuth
func (h *EpisodeHandler) Popular(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	episodes, err := h.svc.Popular(r.Context(), user.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, episodes)
}

// Get handles GET /episodes/{id}.
// @Summary Get an episode
// @Tags episodes
// @Produce json
// @Param id path string true "Episode ID"
// @Success 200 {object} models.Episode
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Failure 404 {object} handlers.ErrorResponse "Episode not found"
// @Router /episodes/{id} [get]
// @Security BearerAuth
func (h *EpisodeHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, episodeNotFound)
	if !ok {
		return
	}

	episode, err := h.svc.Get(r.Context(), user.ID, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, episode)
}

// Update handles PUT /episodes/{id}.
// @Summary Replace an episode
// @Tags episodes
// @Accept json
// @Produce json
// @Param id path string true "Episode ID"
// @Param episode body models.EpisodeInput true "Episode"
// @Success 200 {object} models.Episode
// @Failure 400 {object} handlers.ErrorResponse "Invalid JSON"
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Failure 404 {object} handlers.ErrorResponse "Episode not found"
// @Failure 422 {object} handlers.ErrorResponse "Invalid field"
// @Router /episodes/{id} [put]
// @Security BearerAuth
func (h *EpisodeHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, episodeNotFound)
	if !ok {
		return
	}

	var in models.EpisodeInput
	if !decodeJSON(w, r, &in) {
		return
	}

	episode, err := h.svc.Update(r.Context(), user.ID, id, in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, episode)
}

// Delete handles DELETE /episodes/{id}.
// @Summary Delete an episode
// @Tags episodes
// @Produce json
// @Param id path string true "Episode ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 401 {object} handlers.ErrorResponse "Invalid authentication credentials"
// @Failure 404 {object} handlers.ErrorResponse "Episode not found"
// @Router /episodes/{id} [delete]
// @Security BearerAuth
func (h *EpisodeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, episodeNotFound)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), user.ID, id); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: episodeDeleted})
}

func (h *EpisodeHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, episodeNotFound)
	case errors.Is(err, services.ErrInvalidReference):
		writeError(w, http.StatusUnprocessableEntity, "show_id: show not found")
	default:
		writeInternalError(w, "episode request failed", err)
	}
}
