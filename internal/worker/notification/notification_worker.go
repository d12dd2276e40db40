package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/domain/repository"
	"github.com/skatespot-service/internal/worker"
	"go.uber.org/zap"
)

const (
	maxBatchSize    = 20                     // messages consumed per read
	emptyQueueSleep = 100 * time.Millisecond // pause when the stream is drained
	retryBackoff    = 500 * time.Millisecond
)

// AnalysisNotificationWorker consumes analysis events and forwards them to the
// configured notifier webhook. Delivery is best-effort: a message that keeps
// failing after maxRetries is acknowledged and dropped so the stream cannot
// back up behind a dead endpoint.
type AnalysisNotificationWorker struct {
	*worker.BaseWorker
	streamRepo        repository.StreamRepository
	httpClient        *http.Client
	notifierURL       string
	consumerName      string
	maxRetries        int
	streamReadTimeout time.Duration
}

// NewAnalysisNotificationWorker creates an AnalysisNotificationWorker.
// streamReadTimeout bounds how long one stream read blocks waiting for
// messages; it also bounds how long Stop can lag behind a quiet stream.
func NewAnalysisNotificationWorker(
	streamRepo repository.StreamRepository,
	notifierURL string,
	notifierTimeout time.Duration,
	streamReadTimeout time.Duration,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *AnalysisNotificationWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &AnalysisNotificationWorker{
		BaseWorker:        worker.NewBaseWorker("analysis-notification", consumerGroup, logger),
		streamRepo:        streamRepo,
		httpClient:        &http.Client{Timeout: notifierTimeout},
		notifierURL:       notifierURL,
		consumerName:      consumerName,
		maxRetries:        maxRetries,
		streamReadTimeout: streamReadTimeout,
	}
}

// Start runs the consume loop until stopped.
func (w *AnalysisNotificationWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting AnalysisNotificationWorker (batch mode)",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.String("notifier_url", w.notifierURL),
		zap.Int("max_batch_size", maxBatchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamAnalysisEvents, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch reads up to maxBatchSize messages, delivers each one, and acks
// everything it consumed. Returns how many messages were read.
func (w *AnalysisNotificationWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamAnalysisEvents,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
		w.streamReadTimeout,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Info("Processing batch", zap.Int("message_count", len(messages)))

	for _, msg := range messages {
		event, err := w.parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ack the broken message so it does not wedge the group
			_ = w.streamRepo.AckMessage(ctx, domain.StreamAnalysisEvents, w.ConsumerGroup(), msg.ID)
			continue
		}

		if err := w.deliver(ctx, event); err != nil {
			logger.Warn("Notification delivery failed, dropping event",
				zap.String("message_id", msg.ID),
				zap.String("user_id", event.UserID),
				zap.Error(err))
		} else {
			logger.Debug("Notification delivered",
				zap.String("message_id", msg.ID),
				zap.String("user_id", event.UserID),
				zap.String("type", string(event.Type)))
		}

		if err := w.streamRepo.AckMessage(ctx, domain.StreamAnalysisEvents, w.ConsumerGroup(), msg.ID); err != nil {
			logger.Error("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}
	}

	return len(messages), nil
}

// parseMessage decodes the JSON payload stored under the "data" field.
func (w *AnalysisNotificationWorker) parseMessage(msg domain.StreamMessage) (*domain.AnalysisEvent, error) {
	var event domain.AnalysisEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.UserID == "" {
		return nil, fmt.Errorf("event missing user_id")
	}

	return &event, nil
}

// deliver POSTs the event to the notifier, retrying transient failures.
func (w *AnalysisNotificationWorker) deliver(ctx context.Context, event *domain.AnalysisEvent) error {
	if w.notifierURL == "" {
		return fmt.Errorf("notifier URL is not configured")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBackoff * time.Duration(attempt-1)):
			}
		}

		lastErr = w.post(ctx, body)
		if lastErr == nil {
			return nil
		}
	}

	return fmt.Errorf("delivery failed after %d attempts: %w", w.maxRetries, lastErr)
}

func (w *AnalysisNotificationWorker) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.notifierURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notifier request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notifier returned status %d", resp.StatusCode)
	}

	return nil
}
