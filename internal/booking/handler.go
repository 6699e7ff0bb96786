package booking

import (
	"encoding/json"
	"net/http"

	"github.com/zootown/agency-ai-platform/pkg/logging"
)

// Handler serves scheduling-link lookups for the booking widget.
type Handler struct {
	catalog *LinkCatalog
	logger  *logging.Logger
}

// NewHandler creates a booking handler.
func NewHandler(catalog *LinkCatalog, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{catalog: catalog, logger: logger}
}

// Link handles GET /api/booking/link?type=&name=&email= requests. The widget
// opens the returned URL in a new tab; name and email prefill the page.
func (h *Handler) Link(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	modality, err := ParseModality(query.Get("type"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "type must be one of: phone, video, in-person"})
		return
	}

	u, err := h.catalog.HandoffURL(modality, query.Get("name"), query.Get("email"))
	if err != nil {
		h.logger.Error("failed to build scheduling link", "error", err, "modality", modality)
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "no scheduling link configured for this consultation type"})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"url": u})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
