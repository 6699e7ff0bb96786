package chat

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn in a conversation, in completion-endpoint wire shape.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionClient generates one assistant reply for an ordered message list.
// No streaming, no retry: one call per inbound chat request.
type CompletionClient interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
