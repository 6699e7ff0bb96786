package portfolio

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zootown/agency-ai-platform/pkg/logging"
)

// Handler serves the public portfolio endpoints.
type Handler struct {
	repo   Repository
	logger *logging.Logger
}

// NewHandler creates a portfolio handler.
func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// ListProjects handles GET /api/portfolio requests.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list projects", "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load projects"})
		return
	}
	if projects == nil {
		projects = []*Project{}
	}
	respondJSON(w, http.StatusOK, map[string][]*Project{"data": projects})
}

// GetProject handles GET /api/portfolio/{slug} requests.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	project, err := h.repo.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			respondJSON(w, http.StatusNotFound, map[string]string{"error": "Project not found"})
			return
		}
		h.logger.Error("failed to load project", "error", err, "slug", slug)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load project"})
		return
	}

	respondJSON(w, http.StatusOK, map[string]*Project{"data": project})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
