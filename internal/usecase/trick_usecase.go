package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/domain/repository"
)

const (
	trickListLimit          = 50
	dailyChallengeKeyPrefix = "challenge:daily:"
)

// TrickUseCase serves the tricks catalog and the daily challenge.
type TrickUseCase struct {
	trickRepo repository.TrickRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
}

func NewTrickUseCase(
	trickRepo repository.TrickRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
) *TrickUseCase {
	return &TrickUseCase{
		trickRepo: trickRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
	}
}

// GetTricksForSpotType lists catalog tricks applicable to a spot type.
func (uc *TrickUseCase) GetTricksForSpotType(ctx context.Context, spotType domain.SpotType) ([]*domain.Trick, error) {
	return uc.trickRepo.ListBySpotTypes(ctx, []string{string(spotType)}, trickListLimit)
}

// GetDailyChallenge returns today's challenge, cached until midnight UTC.
func (uc *TrickUseCase) GetDailyChallenge(ctx context.Context) (*domain.DailyChallenge, error) {
	now := time.Now().UTC()
	day := now.Format("2006-01-02")
	key := dailyChallengeKeyPrefix + day

	if data, err := uc.cacheRepo.Get(ctx, key); err != nil {
		uc.logger.Warn("Cache read failed, falling back to database", zap.String("key", key), zap.Error(err))
	} else if data != nil {
		var challenge domain.DailyChallenge
		if err := json.Unmarshal(data, &challenge); err == nil {
			return &challenge, nil
		}
	}

	challenge, err := uc.trickRepo.GetDailyChallenge(ctx, day)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(challenge); err == nil {
		midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
		if err := uc.cacheRepo.Set(ctx, key, payload, time.Until(midnight)); err != nil {
			uc.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return challenge, nil
}
