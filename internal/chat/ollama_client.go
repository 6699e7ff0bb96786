package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/zootown/agency-ai-platform/pkg/logging"
)

const (
	// DefaultOllamaURL is the local completion endpoint.
	DefaultOllamaURL = "http://localhost:11434"
	// DefaultOllamaModel is used when no model is configured.
	DefaultOllamaModel = "phi3"
)

// OllamaClient talks to an Ollama-compatible completion endpoint. The wire
// format is the native /api/chat contract: a model, an ordered message list
// and stream:false, answered with a single message object.
type OllamaClient struct {
	baseURL string
	model   string
	client  *http.Client
	logger  *logging.Logger
}

// NewOllamaClient creates a client for the given endpoint and model.
// Empty arguments fall back to the local defaults.
func NewOllamaClient(baseURL, model string, timeout time.Duration, logger *logging.Logger) *OllamaClient {
	if baseURL == "" {
		baseURL = DefaultOllamaURL
	}
	if model == "" {
		model = DefaultOllamaModel
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &OllamaClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Model returns the configured model name.
func (c *OllamaClient) Model() string { return c.model }

type ollamaChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type ollamaChatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

// Complete issues one non-streaming chat completion. A 404 means the model
// is missing; every other failure is generic unavailability. Both error
// texts are operationally actionable and safe to surface.
func (c *OllamaClient) Complete(ctx context.Context, messages []Message) (string, error) {
	body, err := json.Marshal(ollamaChatRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   false,
	})
	if err != nil {
		return "", fmt.Errorf("chat: marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("chat: build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("completion endpoint unreachable", "url", c.baseURL, "error", err)
		return "", &UnavailableError{}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		errText, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("completion endpoint error",
			"status", resp.StatusCode,
			"model", c.model,
			"body", string(errText),
		)
		if resp.StatusCode == http.StatusNotFound {
			return "", &ModelNotFoundError{Model: c.model}
		}
		return "", &UnavailableError{
			Detail: fmt.Sprintf("Ollama error: %d. Is Ollama running? Start it with: ollama serve", resp.StatusCode),
		}
	}

	var parsed ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("chat: decode completion response: %w", err)
	}
	return strings.TrimSpace(parsed.Message.Content), nil
}
