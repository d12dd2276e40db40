package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/domain/repository"
	"github.com/skatespot-service/internal/pkg/errors"
	"github.com/skatespot-service/internal/pkg/utils"
)

const (
	spotListCachePattern = "spots:list:*"
	spotIDCachePrefix    = "spots:id:"

	// defaultSkateabilityScore is the neutral score assigned at creation when
	// the user does not rate the spot.
	defaultSkateabilityScore = 5.0
)

// SpotUseCase is the spot query engine: filtered, paginated, optionally
// geospatial reads with a read-through cache, plus the write paths that keep
// the cache coherent.
type SpotUseCase struct {
	spotRepo  repository.SpotRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewSpotUseCase creates a SpotUseCase.
func NewSpotUseCase(
	spotRepo repository.SpotRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *SpotUseCase {
	return &SpotUseCase{
		spotRepo:  spotRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// GetSpots answers "spots matching filters X, sorted by Y, page N of size L".
// Cache hits are returned verbatim; stale reads within the TTL are accepted.
func (uc *SpotUseCase) GetSpots(ctx context.Context, opts *domain.SpotQueryOptions) (*domain.PaginatedSpots, error) {
	opts.Normalize()

	if opts.MinSkateabilityScore != nil && *opts.MinSkateabilityScore < 0 {
		return nil, errors.ErrValidation.WithDetails(map[string]interface{}{
			"min_skateability_score": *opts.MinSkateabilityScore,
		})
	}

	if opts.Near != nil {
		if !utils.ValidateCoordinates(opts.Near.Latitude, opts.Near.Longitude) {
			return nil, errors.ErrInvalidCoordinates
		}
		if !utils.ValidateRadius(opts.Near.RadiusKm) {
			return nil, errors.ErrInvalidRadius.WithDetails(map[string]interface{}{
				"radius_km": opts.Near.RadiusKm,
			})
		}
	}

	key := opts.CacheKey()
	if cached := uc.readCachedPage(ctx, key); cached != nil {
		return cached, nil
	}

	records, total, err := uc.spotRepo.List(ctx, opts)
	if err != nil {
		uc.logger.Error("Spot query failed", zap.Error(err))
		return nil, errors.ErrQueryFailed.Wrap(err)
	}

	spots := uc.formatRecords(records, opts.Near)
	result := domain.NewPaginatedSpots(spots, total, opts.Page, opts.Limit)

	uc.writeCachedPage(ctx, key, result)

	return result, nil
}

// GetSpotByID is a cache-first single-spot read with the same TTL policy and
// the same invalid-location rejection rule as GetSpots.
func (uc *SpotUseCase) GetSpotByID(ctx context.Context, id string) (*domain.Spot, error) {
	key := spotIDCachePrefix + id

	if data, err := uc.cacheRepo.Get(ctx, key); err != nil {
		uc.logger.Warn("Cache read failed, falling back to database", zap.String("key", key), zap.Error(err))
	} else if data != nil {
		var spot domain.Spot
		if err := json.Unmarshal(data, &spot); err == nil {
			return &spot, nil
		}
		uc.logger.Warn("Corrupt cache entry, falling back to database", zap.String("key", key))
	}

	record, err := uc.spotRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	spot, err := formatSpot(record)
	if err != nil {
		uc.logger.Error("Stored spot violates location invariant",
			zap.String("spot_id", id),
			zap.Error(err))
		return nil, err
	}

	if payload, err := json.Marshal(spot); err == nil {
		if err := uc.cacheRepo.Set(ctx, key, payload, uc.cacheTTL); err != nil {
			uc.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return spot, nil
}

// CreateSpot validates the draft, persists it and invalidates all cached spot
// lists so the next read sees the new spot.
func (uc *SpotUseCase) CreateSpot(ctx context.Context, draft *domain.SpotDraft) (*domain.Spot, error) {
	if draft.Name == "" {
		return nil, errors.ErrValidation.WithDetails(map[string]interface{}{"name": "required"})
	}

	location, ok := draft.ResolveLocation()
	if !ok {
		return nil, errors.ErrMissingLocation
	}
	if !utils.ValidateCoordinates(location.Latitude, location.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}

	now := time.Now().UTC()
	spot := &domain.Spot{
		ID:                uuid.NewString(),
		Name:              draft.Name,
		Description:       draft.Description,
		Type:              draft.Type,
		Difficulty:        draft.Difficulty,
		Surface:           draft.Surface,
		SkateabilityScore: draft.SkateabilityScore,
		Features:          draft.Features,
		Location:          location,
		Address:           draft.Address,
		Status:            domain.SpotStatusActive,
		UserID:            draft.UserID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if spot.Type == "" {
		spot.Type = domain.SpotTypeUnknown
	}
	if spot.Difficulty == "" {
		spot.Difficulty = domain.DifficultyUnknown
	}
	if spot.Surface == "" {
		spot.Surface = domain.SurfaceUnknown
	}
	if spot.SkateabilityScore == nil {
		score := defaultSkateabilityScore
		spot.SkateabilityScore = &score
	}

	if err := uc.spotRepo.Create(ctx, spot); err != nil {
		uc.logger.Error("Failed to create spot", zap.String("name", spot.Name), zap.Error(err))
		return nil, err
	}

	// Image linking is best-effort: a failure is logged, never rolled back.
	if len(draft.Images) > 0 {
		if err := uc.spotRepo.AddImages(ctx, spot.ID, draft.Images); err != nil {
			uc.logger.Error("Failed to link spot images",
				zap.String("spot_id", spot.ID),
				zap.Int("image_count", len(draft.Images)),
				zap.Error(err))
		} else {
			spot.Images = draft.Images
		}
	}

	// Correctness over cache efficiency: a write invalidates every cached list.
	uc.invalidateLists(ctx)

	uc.logger.Info("Spot created",
		zap.String("spot_id", spot.ID),
		zap.String("type", string(spot.Type)),
		zap.String("user_id", spot.UserID))

	return spot, nil
}

// UpdateSpot applies a partial update and invalidates the affected cache entries.
func (uc *SpotUseCase) UpdateSpot(ctx context.Context, id string, update *domain.SpotUpdate) (*domain.Spot, error) {
	if update.Location != nil && !utils.ValidateCoordinates(update.Location.Latitude, update.Location.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}

	record, err := uc.spotRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	spot, err := formatSpot(record)
	if err != nil {
		return nil, err
	}

	uc.invalidateSpot(ctx, id)
	return spot, nil
}

// VerifySpot marks a spot as verified (privileged action).
func (uc *SpotUseCase) VerifySpot(ctx context.Context, id string) error {
	if err := uc.spotRepo.SetVerified(ctx, id, true); err != nil {
		return err
	}
	uc.invalidateSpot(ctx, id)
	return nil
}

// ArchiveSpot soft-deletes a spot by moving it to the archived status.
func (uc *SpotUseCase) ArchiveSpot(ctx context.Context, id string) error {
	if err := uc.spotRepo.SetStatus(ctx, id, domain.SpotStatusArchived); err != nil {
		return err
	}
	uc.invalidateSpot(ctx, id)
	return nil
}

// SetSpotStatus changes the lifecycle status of a spot.
func (uc *SpotUseCase) SetSpotStatus(ctx context.Context, id string, status domain.SpotStatus) error {
	switch status {
	case domain.SpotStatusActive, domain.SpotStatusArchived, domain.SpotStatusFlagged:
	default:
		return errors.ErrValidation.WithDetails(map[string]interface{}{"status": string(status)})
	}

	if err := uc.spotRepo.SetStatus(ctx, id, status); err != nil {
		return err
	}
	uc.invalidateSpot(ctx, id)
	return nil
}

// GetUserSpots lists the spots created by one user.
func (uc *SpotUseCase) GetUserSpots(ctx context.Context, userID string, page, limit int) (*domain.PaginatedSpots, error) {
	return uc.GetSpots(ctx, &domain.SpotQueryOptions{
		Page:   page,
		Limit:  limit,
		UserID: userID,
	})
}

// readCachedPage returns the cached page for key, or nil on miss or any cache
// problem. Cache errors degrade to a miss, never to a failed request.
func (uc *SpotUseCase) readCachedPage(ctx context.Context, key string) *domain.PaginatedSpots {
	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("Cache read failed, falling back to database", zap.String("key", key), zap.Error(err))
		return nil
	}
	if data == nil {
		return nil
	}

	var page domain.PaginatedSpots
	if err := json.Unmarshal(data, &page); err != nil {
		uc.logger.Warn("Corrupt cache entry, falling back to database", zap.String("key", key), zap.Error(err))
		return nil
	}

	return &page
}

func (uc *SpotUseCase) writeCachedPage(ctx context.Context, key string, page *domain.PaginatedSpots) {
	payload, err := json.Marshal(page)
	if err != nil {
		uc.logger.Warn("Failed to marshal page for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, payload, uc.cacheTTL); err != nil {
		uc.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (uc *SpotUseCase) invalidateSpot(ctx context.Context, id string) {
	if err := uc.cacheRepo.Delete(ctx, spotIDCachePrefix+id); err != nil {
		uc.logger.Warn("Cache invalidation failed", zap.String("spot_id", id), zap.Error(err))
	}
	uc.invalidateLists(ctx)
}

func (uc *SpotUseCase) invalidateLists(ctx context.Context) {
	if err := uc.cacheRepo.ClearPattern(ctx, spotListCachePattern); err != nil {
		uc.logger.Warn("Cache list invalidation failed", zap.Error(err))
	}
}

// formatRecords converts raw rows into canonical spots. A row that violates the
// location invariant is dropped and logged loudly instead of failing the page
// or being patched with default coordinates. With a near-location the distance
// is verified in-process and out-of-radius rows are excluded.
func (uc *SpotUseCase) formatRecords(records []*domain.SpotRecord, near *domain.NearLocation) []*domain.Spot {
	spots := make([]*domain.Spot, 0, len(records))
	for _, record := range records {
		spot, err := formatSpot(record)
		if err != nil {
			uc.logger.Error("Dropping spot row that violates location invariant",
				zap.String("spot_id", record.ID),
				zap.Error(err))
			continue
		}

		if near != nil {
			if spot.DistanceKm == nil {
				d := utils.HaversineDistance(
					near.Latitude, near.Longitude,
					spot.Location.Latitude, spot.Location.Longitude,
				)
				spot.DistanceKm = &d
			}
			if *spot.DistanceKm > near.RadiusKm {
				continue
			}
		}

		spots = append(spots, spot)
	}
	return spots
}
