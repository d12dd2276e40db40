package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/domain"
	apperrors "github.com/skatespot-service/internal/pkg/errors"
	"github.com/skatespot-service/internal/usecase"
)

// MockTrickRepository is a mock of TrickRepository
type MockTrickRepository struct {
	mock.Mock
}

func (m *MockTrickRepository) ListBySpotTypes(ctx context.Context, spotTypes []string, limit int) ([]*domain.Trick, error) {
	args := m.Called(ctx, spotTypes, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Trick), args.Error(1)
}

func (m *MockTrickRepository) GetDailyChallenge(ctx context.Context, day string) (*domain.DailyChallenge, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyChallenge), args.Error(1)
}

func TestTrickUseCase_GetTricksForSpotType(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	mockTrick := &MockTrickRepository{}
	mockCache := &MockCacheRepository{}
	uc := usecase.NewTrickUseCase(mockTrick, mockCache, logger)

	tricks := []*domain.Trick{
		{ID: "t1", Name: "Boardslide", SpotTypes: []string{"rail"}},
		{ID: "t2", Name: "50-50 Grind", SpotTypes: []string{"rail", "ledge"}},
	}
	mockTrick.On("ListBySpotTypes", ctx, []string{"rail"}, 50).Return(tricks, nil)

	result, err := uc.GetTricksForSpotType(ctx, domain.SpotTypeRail)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "Boardslide", result[0].Name)
}

func TestTrickUseCase_GetDailyChallenge(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	today := time.Now().UTC().Format("2006-01-02")

	t.Run("cache miss loads today's challenge and caches until midnight", func(t *testing.T) {
		mockTrick := &MockTrickRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewTrickUseCase(mockTrick, mockCache, logger)

		challenge := &domain.DailyChallenge{
			ID:          "ch1",
			Trick:       domain.Trick{ID: "t1", Name: "Kickflip"},
			BonusPoints: 50,
		}

		mockCache.On("Get", ctx, "challenge:daily:"+today).Return(nil, nil)
		mockCache.On("Set", ctx, "challenge:daily:"+today, mock.Anything, mock.AnythingOfType("time.Duration")).Return(nil)
		mockTrick.On("GetDailyChallenge", ctx, today).Return(challenge, nil)

		result, err := uc.GetDailyChallenge(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "ch1", result.ID)
		assert.Equal(t, "Kickflip", result.Trick.Name)
		mockCache.AssertCalled(t, "Set", ctx, "challenge:daily:"+today, mock.Anything, mock.AnythingOfType("time.Duration"))
	})

	t.Run("cache hit skips the database", func(t *testing.T) {
		mockTrick := &MockTrickRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewTrickUseCase(mockTrick, mockCache, logger)

		payload, _ := json.Marshal(&domain.DailyChallenge{ID: "cached"})
		mockCache.On("Get", ctx, "challenge:daily:"+today).Return(payload, nil)

		result, err := uc.GetDailyChallenge(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "cached", result.ID)
		mockTrick.AssertNotCalled(t, "GetDailyChallenge", mock.Anything, mock.Anything)
	})

	t.Run("no scheduled challenge propagates not found", func(t *testing.T) {
		mockTrick := &MockTrickRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewTrickUseCase(mockTrick, mockCache, logger)

		mockCache.On("Get", ctx, "challenge:daily:"+today).Return(nil, nil)
		mockTrick.On("GetDailyChallenge", ctx, today).Return(nil, apperrors.ErrChallengeNotFound)

		_, err := uc.GetDailyChallenge(ctx)

		assert.ErrorIs(t, err, apperrors.ErrChallengeNotFound)
	})
}
