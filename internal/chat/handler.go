package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zootown/agency-ai-platform/pkg/logging"
)

// conversationCookie caches the client's conversation id, mirroring the
// widget's local-storage key.
const conversationCookie = "chatbot_conversation_id"

// Handler exposes the chat API.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a chat handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

type chatRequestBody struct {
	Message        string    `json:"message"`
	ConversationID string    `json:"conversationId"`
	Email          string    `json:"email"`
	History        []Message `json:"history"`
}

// Respond handles POST /api/chat requests.
func (h *Handler) Respond(w http.ResponseWriter, r *http.Request) {
	var body chatRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Error("failed to decode chat request", "error", err)
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request"})
		return
	}

	resp, err := h.service.Respond(r.Context(), Request{
		Message:        body.Message,
		ConversationID: body.ConversationID,
		Email:          body.Email,
		History:        body.History,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// respondError maps orchestrator errors onto the API taxonomy. Upstream
// completion failures surface their text: it tells an operator whether the
// model is missing or the service is down.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var modelErr *ModelNotFoundError
	var unavailErr *UnavailableError

	switch {
	case errors.Is(err, ErrEmptyMessage) || errors.Is(err, ErrMissingConversationID):
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Message and conversationId are required"})
	case errors.As(err, &modelErr) || errors.As(err, &unavailErr):
		h.logger.Error("completion endpoint failed", "error", err)
		respondJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
	default:
		h.logger.Error("chat request failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

// Session handles POST /api/chat/session: it returns the browser's
// conversation id, minting and caching one in a cookie on first call.
// Repeated calls from the same client return the same id.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	id := GetOrCreateConversationID(w, r)
	respondJSON(w, http.StatusOK, map[string]string{"conversationId": id})
}

// GetOrCreateConversationID reads the conversation cookie, generating and
// setting a fresh id when none exists. Idempotent for a client that keeps
// its cookies.
func GetOrCreateConversationID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(conversationCookie); err == nil {
		if id := strings.TrimSpace(cookie.Value); id != "" {
			return id
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     conversationCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// History handles GET /api/chat/history?conversation=... requests, serving
// the cached transcript so a returning browser can rehydrate its widget.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	conversationID := strings.TrimSpace(r.URL.Query().Get("conversation"))
	if conversationID == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "conversation parameter required"})
		return
	}

	messages, err := h.service.Transcript(r.Context(), conversationID, 100)
	if err != nil {
		h.logger.Error("failed to load transcript", "error", err, "conversation_id", conversationID)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load history"})
		return
	}
	if messages == nil {
		messages = []TranscriptMessage{}
	}

	respondJSON(w, http.StatusOK, map[string][]TranscriptMessage{"messages": messages})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
