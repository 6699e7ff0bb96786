package chat

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Exchange is one user/assistant turn pair in the durable conversation log.
// Rows are append-only: written once after a successful completion, never
// updated or deleted.
type Exchange struct {
	ID             string            `json:"id"`
	ConversationID string            `json:"conversation_id"`
	UserMessage    string            `json:"user_message"`
	BotMessage     string            `json:"bot_message"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

// ExchangeStore is the durable, append-only conversation log.
type ExchangeStore interface {
	Append(ctx context.Context, exchange *Exchange) error
	ListByConversation(ctx context.Context, conversationID string, limit int) ([]Exchange, error)
}

// InMemoryExchangeStore keeps exchanges in memory for tests and for running
// without a database.
type InMemoryExchangeStore struct {
	mu        sync.RWMutex
	exchanges map[string][]Exchange
}

// NewInMemoryExchangeStore creates an empty in-memory log.
func NewInMemoryExchangeStore() *InMemoryExchangeStore {
	return &InMemoryExchangeStore{exchanges: make(map[string][]Exchange)}
}

// Append records an exchange in insertion order.
func (s *InMemoryExchangeStore) Append(_ context.Context, exchange *Exchange) error {
	stamp(exchange)
	s.mu.Lock()
	s.exchanges[exchange.ConversationID] = append(s.exchanges[exchange.ConversationID], *exchange)
	s.mu.Unlock()
	return nil
}

// ListByConversation returns up to limit exchanges, oldest first.
func (s *InMemoryExchangeStore) ListByConversation(_ context.Context, conversationID string, limit int) ([]Exchange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	found := s.exchanges[conversationID]
	if limit > 0 && len(found) > limit {
		found = found[len(found)-limit:]
	}
	out := make([]Exchange, len(found))
	copy(out, found)
	return out, nil
}

type pgxQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresExchangeStore logs exchanges to the chatbot_conversations table.
type PostgresExchangeStore struct {
	db pgxQuerier
}

// NewPostgresExchangeStore initializes a store backed by pgxpool.
func NewPostgresExchangeStore(pool *pgxpool.Pool) *PostgresExchangeStore {
	if pool == nil {
		panic("chat: pgx pool required")
	}
	return &PostgresExchangeStore{db: pool}
}

func newPostgresExchangeStoreWithQuerier(db pgxQuerier) *PostgresExchangeStore {
	return &PostgresExchangeStore{db: db}
}

// Append inserts one row.
func (s *PostgresExchangeStore) Append(ctx context.Context, exchange *Exchange) error {
	stamp(exchange)
	query := `
		INSERT INTO chatbot_conversations (id, conversation_id, user_message, bot_message, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	metadata := exchange.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}
	if _, err := s.db.Exec(ctx, query,
		exchange.ID,
		exchange.ConversationID,
		exchange.UserMessage,
		exchange.BotMessage,
		metadata,
		exchange.CreatedAt,
	); err != nil {
		return fmt.Errorf("chat: insert exchange: %w", err)
	}
	return nil
}

// ListByConversation returns up to limit exchanges, oldest first.
func (s *PostgresExchangeStore) ListByConversation(ctx context.Context, conversationID string, limit int) ([]Exchange, error) {
	query := `
		SELECT id, conversation_id, user_message, bot_message, metadata, created_at
		FROM chatbot_conversations
		WHERE conversation_id = $1
		ORDER BY created_at ASC
		LIMIT $2
	`
	rows, err := s.db.Query(ctx, query, conversationID, limit)
	if err != nil {
		return nil, fmt.Errorf("chat: list exchanges: %w", err)
	}
	defer rows.Close()

	var out []Exchange
	for rows.Next() {
		var ex Exchange
		if err := rows.Scan(
			&ex.ID,
			&ex.ConversationID,
			&ex.UserMessage,
			&ex.BotMessage,
			&ex.Metadata,
			&ex.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("chat: scan exchange: %w", err)
		}
		out = append(out, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("chat: list exchange rows: %w", err)
	}
	return out, nil
}

func stamp(exchange *Exchange) {
	if exchange.ID == "" {
		exchange.ID = uuid.NewString()
	}
	if exchange.CreatedAt.IsZero() {
		exchange.CreatedAt = time.Now().UTC()
	}
}
