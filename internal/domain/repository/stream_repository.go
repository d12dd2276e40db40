package repository

import (
	"context"
	"time"

	"github.com/skatespot-service/internal/domain"
)

// StreamRepository - Redis Streams access for the notification channel.
type StreamRepository interface {
	// PublishToStream appends a JSON-encoded message to the stream.
	PublishToStream(ctx context.Context, stream string, data interface{}) error

	// ConsumeBatch reads up to count pending messages for a consumer group,
	// blocking for at most block when the stream is empty (non-positive block
	// means do not block at all).
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int, block time.Duration) ([]domain.StreamMessage, error)

	// AckMessage acknowledges a processed message.
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// CreateConsumerGroup creates the consumer group, ignoring "already exists".
	CreateConsumerGroup(ctx context.Context, stream, group string) error
}
