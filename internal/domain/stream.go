package domain

import "time"

// Stream names (must match the notification consumers)
const (
	StreamAnalysisEvents = "stream:analysis:events"
)

// AnalysisEvent - fire-and-forget notification published after a successful
// image analysis. Delivery is best-effort; the analysis response never waits on it.
type AnalysisEvent struct {
	UserID     string           `json:"user_id"`
	SpotID     *string          `json:"spot_id,omitempty"`
	Type       SpotType         `json:"type"`
	Confidence float64          `json:"confidence"`
	Difficulty DifficultyRating `json:"difficulty"`
	Source     AnalysisSource   `json:"source"`
	AnalyzedAt time.Time        `json:"analyzed_at"`
}

// StreamMessage - raw message read from a Redis Stream.
type StreamMessage struct {
	ID   string
	Data string
}
