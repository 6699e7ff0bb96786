package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zootown/agency-ai-platform/internal/leads"
	"github.com/zootown/agency-ai-platform/pkg/logging"
)

func TestLeadCreatedEnvelope(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected json content type, got %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &received); err != nil {
			t.Errorf("invalid body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, nil, logging.New("error"))
	err := n.LeadCreated(context.Background(), &leads.Lead{
		ID:    "lead-1",
		Name:  "Jane Doe",
		Email: "jane@x.com",
		Phone: "(406) 555-0100",
	})
	if err != nil {
		t.Fatalf("delivery failed: %v", err)
	}

	if received["event"] != "lead.created" {
		t.Errorf("expected lead.created event, got %v", received["event"])
	}
	if received["timestamp"] == nil {
		t.Error("expected timestamp")
	}
	data, ok := received["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %T", received["data"])
	}
	if data["id"] != "lead-1" || data["email"] != "jane@x.com" {
		t.Errorf("unexpected data: %v", data)
	}
	if data["phone"] != "(406) 555-0100" {
		t.Errorf("unexpected phone: %v", data["phone"])
	}
	if data["message"] != nil {
		t.Errorf("expected null message, got %v", data["message"])
	}
}

func TestLeadCreatedNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, nil, logging.New("error"))
	if err := n.LeadCreated(context.Background(), &leads.Lead{ID: "lead-1"}); err == nil {
		t.Fatal("expected error on non-2xx response")
	}
}

func TestLeadCreatedUnreachableEndpoint(t *testing.T) {
	n := NewWebhookNotifier("http://127.0.0.1:1/hook", nil, logging.New("error"))
	if err := n.LeadCreated(context.Background(), &leads.Lead{ID: "lead-1"}); err == nil {
		t.Fatal("expected error on unreachable endpoint")
	}
}

func TestLeadCreatedNoURLIsSilentSkip(t *testing.T) {
	n := NewWebhookNotifier("", nil, logging.New("error"))
	if err := n.LeadCreated(context.Background(), &leads.Lead{ID: "lead-1"}); err != nil {
		t.Fatalf("expected silent skip, got %v", err)
	}
}
