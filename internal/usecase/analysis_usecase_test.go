package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/usecase"
)

// MockClassifierRepository is a mock of ClassifierRepository
type MockClassifierRepository struct {
	mock.Mock
}

func (m *MockClassifierRepository) Detect(ctx context.Context, image []byte) ([]domain.Detection, error) {
	args := m.Called(ctx, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Detection), args.Error(1)
}

func (m *MockClassifierRepository) Available() bool {
	args := m.Called()
	return args.Bool(0)
}

// recordingStreamRepo captures published events so the fire-and-forget goroutine
// can be observed from the test.
type recordingStreamRepo struct {
	mu       sync.Mutex
	events   []interface{}
	notified chan struct{}
}

func newRecordingStreamRepo() *recordingStreamRepo {
	return &recordingStreamRepo{notified: make(chan struct{}, 8)}
}

func (r *recordingStreamRepo) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	r.mu.Lock()
	r.events = append(r.events, data)
	r.mu.Unlock()
	r.notified <- struct{}{}
	return nil
}

func (r *recordingStreamRepo) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int, block time.Duration) ([]domain.StreamMessage, error) {
	return nil, nil
}

func (r *recordingStreamRepo) AckMessage(ctx context.Context, stream, group, messageID string) error {
	return nil
}

func (r *recordingStreamRepo) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	return nil
}

func TestAnalysisUseCase_Analyze(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	image := []byte("fake-jpeg-bytes")

	t.Run("empty image returns the safe default", func(t *testing.T) {
		mockClassifier := &MockClassifierRepository{}
		uc := usecase.NewAnalysisUseCase(mockClassifier, nil, logger)

		result := uc.Analyze(ctx, nil, "user-1")

		assert.Equal(t, domain.AnalysisSourceDefault, result.Source)
		assert.Equal(t, domain.SpotTypeUnknown, result.Type)
		assert.Equal(t, 0.0, result.Confidence)
		assert.Equal(t, domain.DifficultyMedium, result.Difficulty)
		mockClassifier.AssertNotCalled(t, "Detect", mock.Anything, mock.Anything)
	})

	t.Run("unconfigured classifier serves a degraded result", func(t *testing.T) {
		mockClassifier := &MockClassifierRepository{}
		mockClassifier.On("Available").Return(false)
		uc := usecase.NewAnalysisUseCase(mockClassifier, nil, logger)

		result := uc.Analyze(ctx, image, "user-1")

		assert.Equal(t, domain.AnalysisSourceDegraded, result.Source)
		assert.GreaterOrEqual(t, result.Confidence, 0.4)
		assert.LessOrEqual(t, result.Confidence, 0.8)
		assert.NotEqual(t, domain.SpotTypeUnknown, result.Type)
		assert.NotEmpty(t, result.SuggestedTricks)
	})

	t.Run("classifier error serves a degraded result, never an error", func(t *testing.T) {
		mockClassifier := &MockClassifierRepository{}
		mockClassifier.On("Available").Return(true)
		mockClassifier.On("Detect", ctx, image).Return(nil, errors.New("connection refused"))
		uc := usecase.NewAnalysisUseCase(mockClassifier, nil, logger)

		result := uc.Analyze(ctx, image, "user-1")

		assert.Equal(t, domain.AnalysisSourceDegraded, result.Source)
	})

	t.Run("detections map onto spot type, difficulty and tricks", func(t *testing.T) {
		mockClassifier := &MockClassifierRepository{}
		mockClassifier.On("Available").Return(true)
		mockClassifier.On("Detect", ctx, image).Return([]domain.Detection{
			{Class: "handrail", Confidence: 0.9, Width: 100, Height: 50},
			{Class: "handrail", Confidence: 0.8, Width: 200, Height: 80},
			{Class: "stairs", Confidence: 0.7, Width: 150, Height: 90},
		}, nil)
		uc := usecase.NewAnalysisUseCase(mockClassifier, nil, logger)

		result := uc.Analyze(ctx, image, "user-1")

		assert.Equal(t, domain.AnalysisSourcePrimary, result.Source)
		assert.Equal(t, domain.SpotTypeRail, result.Type)
		assert.Equal(t, domain.DifficultyHard, result.Difficulty)
		assert.InDelta(t, 0.8, result.Confidence, 0.001)
		assert.Equal(t, domain.SurfaceSmoothConcrete, result.SurfaceQuality)
		assert.Contains(t, result.SuggestedTricks, "50-50 Grind")

		// features come from the largest handrail box: 200x80 px at 0.6 cm/px
		height, ok := result.Features.Height()
		assert.True(t, ok)
		assert.Equal(t, 48.0, height)
		width, _ := result.Features.Width()
		assert.Equal(t, 120.0, width)
		length, _ := result.Features.Length()
		assert.Equal(t, 240.0, length)
	})

	t.Run("no detections yields unknown type with assumed confidence", func(t *testing.T) {
		mockClassifier := &MockClassifierRepository{}
		mockClassifier.On("Available").Return(true)
		mockClassifier.On("Detect", ctx, image).Return([]domain.Detection{}, nil)
		uc := usecase.NewAnalysisUseCase(mockClassifier, nil, logger)

		result := uc.Analyze(ctx, image, "user-1")

		assert.Equal(t, domain.AnalysisSourcePrimary, result.Source)
		assert.Equal(t, domain.SpotTypeUnknown, result.Type)
		assert.Equal(t, 0.7, result.Confidence)
		assert.Equal(t, domain.DifficultyMedium, result.Difficulty)
		assert.Equal(t, []string{"Ollie", "Shove-it", "Kickflip"}, result.SuggestedTricks)
	})

	t.Run("flat ground detections rate easy", func(t *testing.T) {
		mockClassifier := &MockClassifierRepository{}
		mockClassifier.On("Available").Return(true)
		mockClassifier.On("Detect", ctx, image).Return([]domain.Detection{
			{Class: "flat_ground", Confidence: 0.6, Width: 300, Height: 300},
		}, nil)
		uc := usecase.NewAnalysisUseCase(mockClassifier, nil, logger)

		result := uc.Analyze(ctx, image, "user-1")

		assert.Equal(t, domain.SpotTypeOther, result.Type)
		assert.Equal(t, domain.DifficultyEasy, result.Difficulty)
		assert.Equal(t, domain.SurfaceRoughConcrete, result.SurfaceQuality)
	})

	t.Run("successful analysis publishes a notification event", func(t *testing.T) {
		mockClassifier := &MockClassifierRepository{}
		mockClassifier.On("Available").Return(true)
		mockClassifier.On("Detect", ctx, image).Return([]domain.Detection{
			{Class: "ledge", Confidence: 0.85, Width: 120, Height: 40},
		}, nil)
		stream := newRecordingStreamRepo()
		uc := usecase.NewAnalysisUseCase(mockClassifier, stream, logger)

		result := uc.Analyze(ctx, image, "user-42")
		assert.Equal(t, domain.AnalysisSourcePrimary, result.Source)

		<-stream.notified
		stream.mu.Lock()
		defer stream.mu.Unlock()
		assert.Len(t, stream.events, 1)
		event, ok := stream.events[0].(domain.AnalysisEvent)
		assert.True(t, ok)
		assert.Equal(t, "user-42", event.UserID)
		assert.Equal(t, domain.SpotTypeLedge, event.Type)
	})

	t.Run("default result is not published", func(t *testing.T) {
		mockClassifier := &MockClassifierRepository{}
		stream := newRecordingStreamRepo()
		uc := usecase.NewAnalysisUseCase(mockClassifier, stream, logger)

		uc.Analyze(ctx, nil, "user-1")

		stream.mu.Lock()
		defer stream.mu.Unlock()
		assert.Empty(t, stream.events)
	})
}

func TestAnalysisUseCase_RateDifficulty(t *testing.T) {
	logger := zap.NewNop()
	uc := usecase.NewAnalysisUseCase(&MockClassifierRepository{}, nil, logger)

	tests := []struct {
		name     string
		features domain.FeatureMap
		want     domain.DifficultyRating
	}{
		{
			name:     "empty features rate easy",
			features: domain.FeatureMap{},
			want:     domain.DifficultyEasy,
		},
		{
			name:     "low obstacle with gentle slope rates easy",
			features: domain.FeatureMap{"height": 60, "angle": 10},
			want:     domain.DifficultyEasy,
		},
		{
			name:     "medium height with slope rates medium",
			features: domain.FeatureMap{"height": 120},
			want:     domain.DifficultyMedium,
		},
		{
			name:     "tall obstacle with steep angle rates pro",
			features: domain.FeatureMap{"height": 250, "angle": 50},
			want:     domain.DifficultyPro,
		},
		{
			name:     "tall obstacle alone rates hard",
			features: domain.FeatureMap{"height": 180},
			want:     domain.DifficultyHard,
		},
		{
			name:     "long runway adds to the score",
			features: domain.FeatureMap{"height": 120, "length": 1200},
			want:     domain.DifficultyHard,
		},
		{
			name:     "nil feature map rates easy",
			features: nil,
			want:     domain.DifficultyEasy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, uc.RateDifficulty(tt.features))
		})
	}
}
