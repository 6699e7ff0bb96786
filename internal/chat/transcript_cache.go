package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	transcriptKeyPrefix = "chat_transcript:"
	transcriptTTL       = 24 * time.Hour
)

// TranscriptMessage is one cached turn.
type TranscriptMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// TranscriptCache keeps a bounded per-conversation transcript in Redis so a
// returning browser can rehydrate its widget. The client-supplied history
// stays authoritative for completion calls; this cache is a convenience
// mirror of the durable log with TTL eviction.
type TranscriptCache struct {
	redis       *redis.Client
	tracer      trace.Tracer
	maxMessages int64
}

// NewTranscriptCache creates a cache. A nil redis client yields a nil cache,
// which every method treats as a no-op.
func NewTranscriptCache(redisClient *redis.Client) *TranscriptCache {
	if redisClient == nil {
		return nil
	}
	return &TranscriptCache{
		redis:       redisClient,
		tracer:      otel.Tracer("zootown.internal.chat.transcript"),
		maxMessages: 200,
	}
}

// Append pushes a turn onto the conversation list, refreshes the TTL and
// trims old entries. Single-writer append order is preserved by the list.
func (c *TranscriptCache) Append(ctx context.Context, conversationID string, msg TranscriptMessage) error {
	if c == nil || c.redis == nil {
		return nil
	}
	if conversationID == "" {
		return errors.New("chat: transcript conversationID required")
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("chat: marshal transcript message: %w", err)
	}

	ctx, span := c.tracer.Start(ctx, "chat.transcript.append")
	defer span.End()

	key := transcriptKey(conversationID)
	pipe := c.redis.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, transcriptTTL)
	if c.maxMessages > 0 {
		pipe.LTrim(ctx, key, -c.maxMessages, -1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		span.RecordError(err)
		return fmt.Errorf("chat: append transcript message: %w", err)
	}
	return nil
}

// List returns up to limit cached turns, oldest first.
func (c *TranscriptCache) List(ctx context.Context, conversationID string, limit int64) ([]TranscriptMessage, error) {
	if c == nil || c.redis == nil {
		return nil, nil
	}
	if conversationID == "" {
		return nil, errors.New("chat: transcript conversationID required")
	}

	ctx, span := c.tracer.Start(ctx, "chat.transcript.list")
	defer span.End()

	start := int64(0)
	if limit > 0 {
		start = -limit
	}

	raw, err := c.redis.LRange(ctx, transcriptKey(conversationID), start, -1).Result()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("chat: list transcript messages: %w", err)
	}

	out := make([]TranscriptMessage, 0, len(raw))
	for _, item := range raw {
		var msg TranscriptMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			continue // skip unreadable entries rather than failing the read
		}
		out = append(out, msg)
	}
	return out, nil
}

func transcriptKey(conversationID string) string {
	return transcriptKeyPrefix + conversationID
}
