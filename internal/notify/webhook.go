package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/zootown/agency-ai-platform/internal/events"
	"github.com/zootown/agency-ai-platform/internal/leads"
	"github.com/zootown/agency-ai-platform/pkg/logging"
)

// Metrics records delivery outcomes. Nil-safe on the caller side.
type Metrics interface {
	ObserveWebhookDelivery(status string)
}

// WebhookNotifier delivers lead events to the automation endpoint with a
// single POST. There is no retry here: the workflow engine on the other end
// owns redelivery, and a failed attempt must never surface to the submitter.
type WebhookNotifier struct {
	url     string
	client  *http.Client
	metrics Metrics
	logger  *logging.Logger
}

// NewWebhookNotifier creates a notifier for the given automation endpoint.
// An empty URL is valid and disables delivery.
func NewWebhookNotifier(url string, metrics Metrics, logger *logging.Logger) *WebhookNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &WebhookNotifier{
		url:     url,
		client:  &http.Client{Timeout: 10 * time.Second},
		metrics: metrics,
		logger:  logger,
	}
}

// LeadCreated posts a lead.created event. Only a 2xx response counts as
// delivered; every other outcome is logged and swallowed.
func (n *WebhookNotifier) LeadCreated(ctx context.Context, lead *leads.Lead) error {
	if n.url == "" {
		n.logger.Debug("automation webhook not configured, skipping lead.created delivery", "lead_id", lead.ID)
		return nil
	}

	envelope := events.NewEnvelope(events.TypeLeadCreated, events.LeadCreatedV1{
		ID:      lead.ID,
		Name:    lead.Name,
		Email:   lead.Email,
		Phone:   nullable(lead.Phone),
		Message: nullable(lead.Message),
	})

	if err := n.post(ctx, envelope); err != nil {
		n.observe("error")
		n.logger.Error("automation webhook delivery failed", "error", err, "lead_id", lead.ID)
		return err
	}

	n.observe("ok")
	n.logger.Info("automation webhook delivered", "event", envelope.Event, "lead_id", lead.ID)
	return nil
}

func (n *WebhookNotifier) post(ctx context.Context, envelope events.Envelope) error {
	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("notify: marshal envelope: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("notify: deliver event: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notify: automation endpoint returned %d", resp.StatusCode)
	}
	return nil
}

func (n *WebhookNotifier) observe(status string) {
	if n.metrics != nil {
		n.metrics.ObserveWebhookDelivery(status)
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
