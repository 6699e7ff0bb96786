package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, client CompletionClient) *Handler {
	t.Helper()
	svc := NewService(client, "phi3", NewInMemoryExchangeStore(), newTestTranscriptCache(t), nil, nil, nil, nil)
	return NewHandler(svc, nil)
}

func TestHandlerRespond(t *testing.T) {
	handler := newTestHandler(t, &stubCompletionClient{reply: "We build custom sites."})

	body := `{"message":"What does it cost?","conversationId":"conv-1","history":[]}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Respond(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "We build custom sites.", resp.Message)
	require.True(t, resp.ShowEmailPrompt)
}

func TestHandlerRespondValidation(t *testing.T) {
	handler := newTestHandler(t, &stubCompletionClient{reply: "ok"})

	tests := []struct {
		name string
		body string
	}{
		{"empty message", `{"message":"","conversationId":"conv-1"}`},
		{"missing conversation id", `{"message":"hi"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Respond(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Equal(t, "Message and conversationId are required", resp["error"])
		})
	}
}

func TestHandlerRespondInvalidJSON(t *testing.T) {
	handler := newTestHandler(t, &stubCompletionClient{reply: "ok"})

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	handler.Respond(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Invalid request", resp["error"])
}

func TestHandlerRespondUpstreamErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{
			"model not found",
			&ModelNotFoundError{Model: "phi3"},
			`Ollama model "phi3" not found. Run: ollama pull phi3`,
		},
		{
			"endpoint down",
			&UnavailableError{},
			"Failed to process message. Make sure Ollama is running (ollama serve).",
		},
		{
			"upstream status",
			&UnavailableError{Detail: "Ollama error: 500. Is Ollama running? Start it with: ollama serve"},
			"Ollama error: 500. Is Ollama running? Start it with: ollama serve",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(t, &stubCompletionClient{err: tt.err})

			body := `{"message":"hi","conversationId":"conv-1"}`
			req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
			w := httptest.NewRecorder()

			handler.Respond(w, req)

			require.Equal(t, http.StatusBadGateway, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Equal(t, tt.wantMessage, resp["error"])
		})
	}
}

func TestHandlerSession(t *testing.T) {
	handler := newTestHandler(t, &stubCompletionClient{reply: "ok"})

	req := httptest.NewRequest(http.MethodPost, "/api/chat/session", nil)
	w := httptest.NewRecorder()

	handler.Session(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["conversationId"])

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "chatbot_conversation_id", cookies[0].Name)
	require.Equal(t, resp["conversationId"], cookies[0].Value)

	// A client presenting its cookie gets the same id back, with no new cookie.
	req2 := httptest.NewRequest(http.MethodPost, "/api/chat/session", nil)
	req2.AddCookie(cookies[0])
	w2 := httptest.NewRecorder()

	handler.Session(w2, req2)

	require.Equal(t, http.StatusOK, w2.Code)

	var resp2 map[string]string
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &resp2))
	require.Equal(t, resp["conversationId"], resp2["conversationId"])
	require.Empty(t, w2.Result().Cookies())
}

func TestHandlerHistory(t *testing.T) {
	cache := newTestTranscriptCache(t)
	svc := NewService(&stubCompletionClient{reply: "ok"}, "phi3", nil, cache, nil, nil, nil, nil)
	handler := NewHandler(svc, nil)

	ctx := context.Background()
	require.NoError(t, cache.Append(ctx, "conv-9", TranscriptMessage{Role: RoleUser, Content: "hi"}))
	require.NoError(t, cache.Append(ctx, "conv-9", TranscriptMessage{Role: RoleAssistant, Content: "hello"}))

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history?conversation=conv-9", nil)
	w := httptest.NewRecorder()

	handler.History(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string][]TranscriptMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp["messages"], 2)
	require.Equal(t, "hi", resp["messages"][0].Content)
}

func TestHandlerHistoryRequiresConversation(t *testing.T) {
	handler := newTestHandler(t, &stubCompletionClient{reply: "ok"})

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history", nil)
	w := httptest.NewRecorder()

	handler.History(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerHistoryUnknownConversation(t *testing.T) {
	handler := newTestHandler(t, &stubCompletionClient{reply: "ok"})

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history?conversation=missing", nil)
	w := httptest.NewRecorder()

	handler.History(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string][]TranscriptMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp["messages"])
	require.Empty(t, resp["messages"])
}
