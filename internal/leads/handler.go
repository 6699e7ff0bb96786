package leads

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/zootown/agency-ai-platform/pkg/logging"
)

const notifyTimeout = 10 * time.Second

// Notifier delivers the lead.created event to the automation endpoint.
// Delivery is best effort and never blocks the HTTP response.
type Notifier interface {
	LeadCreated(ctx context.Context, lead *Lead) error
}

// Metrics records intake outcomes. Nil-safe on the caller side.
type Metrics interface {
	ObserveLeadCreated(status, source string)
}

// Handler handles HTTP requests for leads
type Handler struct {
	repo     Repository
	notifier Notifier
	metrics  Metrics
	logger   *logging.Logger
}

// NewHandler creates a new leads handler
func NewHandler(repo Repository, notifier Notifier, metrics Metrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		repo:     repo,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

func (h *Handler) observeLeadCreated(status, source string) {
	if h.metrics == nil {
		return
	}
	if source == "" {
		source = "contact_form"
	}
	h.metrics.ObserveLeadCreated(status, source)
}

// CreateLead handles POST /api/leads requests.
func (h *Handler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		h.logger.Error("failed to decode lead request", "error", err)
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request"})
		return
	}

	// The form posts loosely typed fields; coerce everything to text before
	// validating, same as the submitting side.
	req := &CreateLeadRequest{
		Name:    coerceString(raw["name"]),
		Email:   coerceString(raw["email"]),
		Phone:   coerceString(raw["phone"]),
		Message: coerceString(raw["message"]),
		Source:  coerceString(raw["source"]),
	}
	req.Normalize()

	if fieldErrors := req.Validate(); fieldErrors != nil {
		h.observeLeadCreated("invalid", req.Source)
		respondJSON(w, http.StatusBadRequest, map[string]FieldErrors{"errors": fieldErrors})
		return
	}
	req.Phone = req.CleanedPhone()

	lead, err := h.repo.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("failed to create lead", "error", err)
		h.observeLeadCreated("error", req.Source)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to save lead"})
		return
	}
	h.observeLeadCreated("created", lead.Source)

	h.logger.Info("lead created", "id", lead.ID, "name", lead.Name)

	// Detached on purpose: the lead is already durable, and the automation
	// endpoint owns its own resilience. The request context is about to end,
	// so the delivery attempt runs on a fresh one.
	if h.notifier != nil {
		go func(lead *Lead) {
			ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()
			if err := h.notifier.LeadCreated(ctx, lead); err != nil {
				h.logger.Error("lead notification failed", "error", err, "lead_id", lead.ID)
			}
		}(lead)
	}

	respondJSON(w, http.StatusCreated, map[string][]*Lead{"data": {lead}})
}

// ListLeadsResponse is the response for listing leads
type ListLeadsResponse struct {
	Leads  []*Lead `json:"leads"`
	Count  int     `json:"count"`
	Offset int     `json:"offset"`
	Limit  int     `json:"limit"`
}

// ListLeads handles GET /admin/leads requests
func (h *Handler) ListLeads(w http.ResponseWriter, r *http.Request) {
	limit := 50
	offset := 0

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if v, err := strconv.Atoi(limitStr); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if v, err := strconv.Atoi(offsetStr); err == nil && v >= 0 {
			offset = v
		}
	}

	found, err := h.repo.List(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error("failed to list leads", "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list leads"})
		return
	}

	respondJSON(w, http.StatusOK, ListLeadsResponse{
		Leads:  found,
		Count:  len(found),
		Offset: offset,
		Limit:  limit,
	})
}

func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
