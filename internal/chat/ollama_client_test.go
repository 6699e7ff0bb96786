package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestOllamaClientComplete(t *testing.T) {
	var captured ollamaChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/chat" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"  Hello from the model  "}}`))
	}))
	defer server.Close()

	client := NewOllamaClient(server.URL, "phi3", 5*time.Second, nil)
	got, err := client.Complete(context.Background(), []Message{
		{Role: RoleSystem, Content: "be helpful"},
		{Role: RoleUser, Content: "hi"},
	})
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if got != "Hello from the model" {
		t.Errorf("expected trimmed content, got %q", got)
	}

	if captured.Model != "phi3" {
		t.Errorf("expected model phi3, got %q", captured.Model)
	}
	if captured.Stream {
		t.Error("expected stream:false")
	}
	if len(captured.Messages) != 2 || captured.Messages[1].Content != "hi" {
		t.Errorf("unexpected message list: %+v", captured.Messages)
	}
}

func TestOllamaClientModelNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model 'phi3' not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := NewOllamaClient(server.URL, "phi3", 5*time.Second, nil)
	_, err := client.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})

	var notFound *ModelNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ModelNotFoundError, got %v", err)
	}
	if !strings.Contains(err.Error(), "ollama pull phi3") {
		t.Errorf("error should name the pull command, got %q", err.Error())
	}
}

func TestOllamaClientServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewOllamaClient(server.URL, "phi3", 5*time.Second, nil)
	_, err := client.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})

	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected UnavailableError, got %v", err)
	}
	if !strings.Contains(err.Error(), "Ollama error: 500") {
		t.Errorf("error should carry the upstream status, got %q", err.Error())
	}
}

func TestOllamaClientUnreachable(t *testing.T) {
	// Port 1 refuses connections on any sane host.
	client := NewOllamaClient("http://127.0.0.1:1", "phi3", time.Second, nil)
	_, err := client.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})

	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected UnavailableError, got %v", err)
	}
	if !strings.Contains(err.Error(), "ollama serve") {
		t.Errorf("error should tell the operator how to start Ollama, got %q", err.Error())
	}
}

func TestOllamaClientDefaults(t *testing.T) {
	client := NewOllamaClient("", "", 0, nil)
	if client.baseURL != DefaultOllamaURL {
		t.Errorf("expected default URL, got %q", client.baseURL)
	}
	if client.Model() != DefaultOllamaModel {
		t.Errorf("expected default model, got %q", client.Model())
	}
}
