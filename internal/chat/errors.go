package chat

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMessage is returned when the message is blank after trimming.
	ErrEmptyMessage = errors.New("message and conversationId are required")

	// ErrMissingConversationID is returned when no conversation id accompanies
	// the message.
	ErrMissingConversationID = errors.New("message and conversationId are required")
)

// ModelNotFoundError means the completion endpoint is up but the configured
// model is not installed. The text is shown to operators as-is, so it names
// the fix.
type ModelNotFoundError struct {
	Model string
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("Ollama model %q not found. Run: ollama pull %s", e.Model, e.Model)
}

// UnavailableError covers every other completion-endpoint failure: refused
// connections, timeouts and non-404 error statuses.
type UnavailableError struct {
	Detail string
}

func (e *UnavailableError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "Failed to process message. Make sure Ollama is running (ollama serve)."
}
