package chat

import (
	"context"
	"strings"
	"time"

	"github.com/zootown/agency-ai-platform/internal/leads"
	"github.com/zootown/agency-ai-platform/pkg/logging"
	"go.opentelemetry.io/otel"
)

// FallbackReply is returned when the completion endpoint produces no text.
const FallbackReply = "Sorry, I could not generate a response."

const leadCaptureTimeout = 10 * time.Second

var chatTracer = otel.Tracer("zootown.internal.chat")

// Request is one inbound chat turn. History is the client-held transcript,
// oldest first; the client is the source of truth for it.
type Request struct {
	Message        string
	ConversationID string
	Email          string
	History        []Message
}

// Response is the orchestrator's answer.
type Response struct {
	Message         string `json:"message"`
	ShowEmailPrompt bool   `json:"showEmailPrompt"`
}

// Service orchestrates one chat round trip: context assembly, the completion
// call, the durable log write and the interest heuristic.
type Service struct {
	client     CompletionClient
	model      string
	exchanges  ExchangeStore
	transcript *TranscriptCache
	leadsRepo  leads.Repository
	notifier   leads.Notifier
	metrics    *Metrics
	logger     *logging.Logger
}

// NewService creates a chat service. transcript, leadsRepo, notifier and
// metrics are optional; the model name only labels metrics.
func NewService(client CompletionClient, model string, exchanges ExchangeStore, transcript *TranscriptCache, leadsRepo leads.Repository, notifier leads.Notifier, metrics *Metrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if model == "" {
		model = DefaultOllamaModel
	}
	return &Service{
		client:     client,
		model:      model,
		exchanges:  exchanges,
		transcript: transcript,
		leadsRepo:  leadsRepo,
		notifier:   notifier,
		metrics:    metrics,
		logger:     logger,
	}
}

// Respond handles one chat turn. The exchange log write is awaited so turns
// from a single client land in submission order; the email-capture lead
// write is detached and never delays the reply.
func (s *Service) Respond(ctx context.Context, req Request) (*Response, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		s.metrics.ObserveRequest("bad_request")
		return nil, ErrEmptyMessage
	}
	if strings.TrimSpace(req.ConversationID) == "" {
		s.metrics.ObserveRequest("bad_request")
		return nil, ErrMissingConversationID
	}
	email := strings.TrimSpace(req.Email)

	// System instruction first, prior turns in original order, new message last.
	messages := make([]Message, 0, len(req.History)+2)
	messages = append(messages, Message{Role: RoleSystem, Content: SystemPrompt})
	messages = append(messages, req.History...)
	messages = append(messages, Message{Role: RoleUser, Content: message})

	botMessage, err := s.complete(ctx, messages)
	if err != nil {
		s.metrics.ObserveRequest("upstream_error")
		return nil, err
	}
	if botMessage == "" {
		botMessage = FallbackReply
	}

	s.logExchange(ctx, req.ConversationID, message, botMessage, email)

	if email != "" {
		s.captureLead(req.ConversationID, email)
	}

	s.metrics.ObserveRequest("ok")
	return &Response{
		Message:         botMessage,
		ShowEmailPrompt: ShouldPromptEmail(message, len(req.History), email),
	}, nil
}

func (s *Service) complete(ctx context.Context, messages []Message) (string, error) {
	ctx, span := chatTracer.Start(ctx, "chat.completion")
	defer span.End()

	start := time.Now()
	text, err := s.client.Complete(ctx, messages)
	latency := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		span.RecordError(err)
	}
	s.metrics.ObserveCompletion(s.model, status, latency.Seconds())
	s.logger.Info("completion finished",
		"model", s.model,
		"status", status,
		"latency_ms", latency.Milliseconds(),
	)
	return text, err
}

// logExchange writes the turn pair to the durable log and mirrors it to the
// transcript cache. Both writes are best effort: a storage hiccup must not
// cost the visitor a reply they already received.
func (s *Service) logExchange(ctx context.Context, conversationID, userMessage, botMessage, email string) {
	if s.exchanges != nil {
		exchange := &Exchange{
			ConversationID: conversationID,
			UserMessage:    userMessage,
			BotMessage:     botMessage,
		}
		if email != "" {
			exchange.Metadata = map[string]string{"email": email}
		}
		if err := s.exchanges.Append(ctx, exchange); err != nil {
			s.logger.Error("failed to log chat exchange", "error", err, "conversation_id", conversationID)
		}
	}

	if s.transcript != nil {
		now := time.Now().UTC()
		userTurn := TranscriptMessage{Role: RoleUser, Content: userMessage, Timestamp: now}
		botTurn := TranscriptMessage{Role: RoleAssistant, Content: botMessage, Timestamp: now}
		if err := s.transcript.Append(ctx, conversationID, userTurn); err == nil {
			if err := s.transcript.Append(ctx, conversationID, botTurn); err != nil {
				s.logger.Warn("failed to cache assistant turn", "error", err, "conversation_id", conversationID)
			}
		} else {
			s.logger.Warn("failed to cache user turn", "error", err, "conversation_id", conversationID)
		}
	}
}

// captureLead records the supplied email as a chatbot lead. Detached from
// the response on purpose; the visitor already has their answer.
func (s *Service) captureLead(conversationID, email string) {
	if s.leadsRepo == nil {
		return
	}
	if !leads.ValidateEmail(email) {
		s.logger.Warn("ignoring invalid chat email", "conversation_id", conversationID)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), leadCaptureTimeout)
		defer cancel()

		lead, err := s.leadsRepo.Create(ctx, &leads.CreateLeadRequest{
			Name:    "Chatbot",
			Email:   email,
			Message: "Chatbot inquiry - conversation " + conversationID,
			Source:  "chatbot",
		})
		if err != nil {
			s.logger.Error("failed to capture chat lead", "error", err, "conversation_id", conversationID)
			return
		}
		s.logger.Info("chat lead captured", "lead_id", lead.ID, "conversation_id", conversationID)

		if s.notifier != nil {
			if err := s.notifier.LeadCreated(ctx, lead); err != nil {
				s.logger.Error("chat lead notification failed", "error", err, "lead_id", lead.ID)
			}
		}
	}()
}

// Transcript returns the cached tail of a conversation, oldest first.
// Returns an empty slice when no cache is configured.
func (s *Service) Transcript(ctx context.Context, conversationID string, limit int) ([]TranscriptMessage, error) {
	if s.transcript == nil {
		return nil, nil
	}
	return s.transcript.List(ctx, conversationID, int64(limit))
}
