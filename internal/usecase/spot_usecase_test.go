package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/domain"
	apperrors "github.com/skatespot-service/internal/pkg/errors"
	"github.com/skatespot-service/internal/usecase"
)

// MockSpotRepository is a mock of SpotRepository
type MockSpotRepository struct {
	mock.Mock
}

func (m *MockSpotRepository) List(ctx context.Context, opts *domain.SpotQueryOptions) ([]*domain.SpotRecord, int, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.SpotRecord), args.Int(1), args.Error(2)
}

func (m *MockSpotRepository) GetByID(ctx context.Context, id string) (*domain.SpotRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpotRecord), args.Error(1)
}

func (m *MockSpotRepository) Create(ctx context.Context, spot *domain.Spot) error {
	args := m.Called(ctx, spot)
	return args.Error(0)
}

func (m *MockSpotRepository) Update(ctx context.Context, id string, update *domain.SpotUpdate) (*domain.SpotRecord, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpotRecord), args.Error(1)
}

func (m *MockSpotRepository) SetStatus(ctx context.Context, id string, status domain.SpotStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockSpotRepository) SetVerified(ctx context.Context, id string, verified bool) error {
	args := m.Called(ctx, id, verified)
	return args.Error(0)
}

func (m *MockSpotRepository) AddImages(ctx context.Context, spotID string, urls []string) error {
	args := m.Called(ctx, spotID, urls)
	return args.Error(0)
}

func (m *MockSpotRepository) GetImages(ctx context.Context, spotID string) ([]*domain.SpotImage, error) {
	args := m.Called(ctx, spotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SpotImage), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) ClearPattern(ctx context.Context, pattern string) error {
	args := m.Called(ctx, pattern)
	return args.Error(0)
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }

func validRecord(id string, lat, lon float64) *domain.SpotRecord {
	now := time.Now().UTC()
	return &domain.SpotRecord{
		ID:        id,
		Name:      "spot " + id,
		Type:      domain.SpotTypeRail,
		Latitude:  ptrFloat64(lat),
		Longitude: ptrFloat64(lon),
		Status:    domain.SpotStatusActive,
		UserID:    "user-1",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSpotUseCase_GetSpots(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("cache hit returns page without touching the database", func(t *testing.T) {
		mockSpot := &MockSpotRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockSpot, mockCache, logger, time.Hour)

		cached := domain.NewPaginatedSpots([]*domain.Spot{{ID: "s1", Name: "cached"}}, 1, 1, 20)
		payload, err := json.Marshal(cached)
		assert.NoError(t, err)

		mockCache.On("Get", ctx, mock.AnythingOfType("string")).Return(payload, nil)

		result, err := uc.GetSpots(ctx, &domain.SpotQueryOptions{})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Total)
		assert.Equal(t, "cached", result.Data[0].Name)
		mockSpot.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("cache miss queries the database and caches the page", func(t *testing.T) {
		mockSpot := &MockSpotRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockSpot, mockCache, logger, time.Hour)

		records := []*domain.SpotRecord{
			validRecord("s1", 40.7128, -74.0060),
			validRecord("s2", 40.7138, -74.0050),
		}

		mockCache.On("Get", ctx, mock.AnythingOfType("string")).Return(nil, nil)
		mockCache.On("Set", ctx, mock.AnythingOfType("string"), mock.Anything, time.Hour).Return(nil)
		mockSpot.On("List", ctx, mock.AnythingOfType("*domain.SpotQueryOptions")).Return(records, 2, nil)

		result, err := uc.GetSpots(ctx, &domain.SpotQueryOptions{})

		assert.NoError(t, err)
		assert.Len(t, result.Data, 2)
		assert.Equal(t, 2, result.Total)
		mockCache.AssertCalled(t, "Set", ctx, mock.AnythingOfType("string"), mock.Anything, time.Hour)
	})

	t.Run("cache error degrades to a miss instead of failing the request", func(t *testing.T) {
		mockSpot := &MockSpotRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockSpot, mockCache, logger, time.Hour)

		mockCache.On("Get", ctx, mock.AnythingOfType("string")).Return(nil, errors.New("redis down"))
		mockCache.On("Set", ctx, mock.AnythingOfType("string"), mock.Anything, time.Hour).Return(errors.New("redis down"))
		mockSpot.On("List", ctx, mock.AnythingOfType("*domain.SpotQueryOptions")).
			Return([]*domain.SpotRecord{validRecord("s1", 41.0, 2.0)}, 1, nil)

		result, err := uc.GetSpots(ctx, &domain.SpotQueryOptions{})

		assert.NoError(t, err)
		assert.Len(t, result.Data, 1)
	})

	t.Run("rows without coordinates are dropped, not patched", func(t *testing.T) {
		mockSpot := &MockSpotRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockSpot, mockCache, logger, time.Hour)

		broken := validRecord("s2", 0, 0)
		broken.Latitude = nil
		broken.Longitude = nil
		records := []*domain.SpotRecord{validRecord("s1", 41.3851, 2.1734), broken}

		mockCache.On("Get", ctx, mock.AnythingOfType("string")).Return(nil, nil)
		mockCache.On("Set", ctx, mock.AnythingOfType("string"), mock.Anything, time.Hour).Return(nil)
		mockSpot.On("List", ctx, mock.AnythingOfType("*domain.SpotQueryOptions")).Return(records, 2, nil)

		result, err := uc.GetSpots(ctx, &domain.SpotQueryOptions{})

		assert.NoError(t, err)
		assert.Len(t, result.Data, 1)
		assert.Equal(t, "s1", result.Data[0].ID)
	})

	t.Run("pagination metadata rounds total pages up", func(t *testing.T) {
		mockSpot := &MockSpotRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockSpot, mockCache, logger, time.Hour)

		records := make([]*domain.SpotRecord, 0, 10)
		for i := 0; i < 10; i++ {
			records = append(records, validRecord(string(rune('a'+i)), 41.0, 2.0))
		}

		mockCache.On("Get", ctx, mock.AnythingOfType("string")).Return(nil, nil)
		mockCache.On("Set", ctx, mock.AnythingOfType("string"), mock.Anything, time.Hour).Return(nil)
		mockSpot.On("List", ctx, mock.AnythingOfType("*domain.SpotQueryOptions")).Return(records, 25, nil)

		result, err := uc.GetSpots(ctx, &domain.SpotQueryOptions{Page: 2, Limit: 10})

		assert.NoError(t, err)
		assert.Equal(t, 25, result.Total)
		assert.Equal(t, 2, result.Page)
		assert.Equal(t, 3, result.TotalPages)
	})

	t.Run("radius search fills distances and excludes out-of-radius rows", func(t *testing.T) {
		mockSpot := &MockSpotRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockSpot, mockCache, logger, time.Hour)

		// ~0 km and ~roughly 1000+ km from the center
		near := validRecord("near", 41.3851, 2.1734)
		far := validRecord("far", 48.8566, 2.3522)

		mockCache.On("Get", ctx, mock.AnythingOfType("string")).Return(nil, nil)
		mockCache.On("Set", ctx, mock.AnythingOfType("string"), mock.Anything, time.Hour).Return(nil)
		mockSpot.On("List", ctx, mock.AnythingOfType("*domain.SpotQueryOptions")).
			Return([]*domain.SpotRecord{near, far}, 2, nil)

		result, err := uc.GetSpots(ctx, &domain.SpotQueryOptions{
			Near: &domain.NearLocation{Latitude: 41.3851, Longitude: 2.1734, RadiusKm: 10},
		})

		assert.NoError(t, err)
		assert.Len(t, result.Data, 1)
		assert.Equal(t, "near", result.Data[0].ID)
		assert.NotNil(t, result.Data[0].DistanceKm)
		assert.InDelta(t, 0.0, *result.Data[0].DistanceKm, 0.01)
	})

	t.Run("negative min score is rejected", func(t *testing.T) {
		mockSpot := &MockSpotRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockSpot, mockCache, logger, time.Hour)

		_, err := uc.GetSpots(ctx, &domain.SpotQueryOptions{
			MinSkateabilityScore: ptrFloat64(-1),
		})

		assert.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		mockSpot.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("out-of-range radius is rejected", func(t *testing.T) {
		mockSpot := &MockSpotRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockSpot, mockCache, logger, time.Hour)

		_, err := uc.GetSpots(ctx, &domain.SpotQueryOptions{
			Near: &domain.NearLocation{Latitude: 41.3851, Longitude: 2.1734, RadiusKm: 1000},
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidRadius)
		mockSpot.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("out-of-range near center is rejected", func(t *testing.T) {
		mockSpot := &MockSpotRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockSpot, mockCache, logger, time.Hour)

		_, err := uc.GetSpots(ctx, &domain.SpotQueryOptions{
			Near: &domain.NearLocation{Latitude: 95, Longitude: 2.1734, RadiusKm: 5},
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidCoordinates)
		mockSpot.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("database error surfaces as a query failure", func(t *testing.T) {
		mockSpot := &MockSpotRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockSpot, mockCache, logger, time.Hour)

		mockCache.On("Get", ctx, mock.AnythingOfType("string")).Return(nil, nil)
		mockSpot.On("List", ctx, mock.AnythingOfType("*domain.SpotQueryOptions")).
			Return(nil, 0, errors.New("connection refused"))

		_, err := uc.GetSpots(ctx, &domain.SpotQueryOptions{})

		assert.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrQueryFailed)
	})
}

func TestSpotUseCase_GetSpotByID(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("cache miss loads from database and caches", func(t *testing.T) {
		mockSpot := &MockSpotRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockSpot, mockCache, logger, time.Hour)

		mockCache.On("Get", ctx, "spots:id:s1").Return(nil, nil)
		mockCache.On("Set", ctx, "spots:id:s1", mock.Anything, time.Hour).Return(nil)
		mockSpot.On("GetByID", ctx, "s1").Return(validRecord("s1", 41.0, 2.0), nil)

		spot, err := uc.GetSpotByID(ctx, "s1")

		assert.NoError(t, err)
		assert.Equal(t, "s1", spot.ID)
		assert.Equal(t, 41.0, spot.Location.Latitude)
		mockCache.AssertCalled(t, "Set", ctx, "spots:id:s1", mock.Anything, time.Hour)
	})

	t.Run("cache hit skips the database", func(t *testing.T) {
		mockSpot := &MockSpotRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockSpot, mockCache, logger, time.Hour)

		payload, _ := json.Marshal(&domain.Spot{ID: "s1", Name: "cached"})
		mockCache.On("Get", ctx, "spots:id:s1").Return(payload, nil)

		spot, err := uc.GetSpotByID(ctx, "s1")

		assert.NoError(t, err)
		assert.Equal(t, "cached", spot.Name)
		mockSpot.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("missing spot propagates not found", func(t *testing.T) {
		mockSpot := &MockSpotRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockSpot, mockCache, logger, time.Hour)

		mockCache.On("Get", ctx, "spots:id:missing").Return(nil, nil)
		mockSpot.On("GetByID", ctx, "missing").Return(nil, apperrors.ErrSpotNotFound)

		_, err := uc.GetSpotByID(ctx, "missing")

		assert.ErrorIs(t, err, apperrors.ErrSpotNotFound)
	})
}

func TestSpotUseCase_CreateSpot(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("creates with defaults and invalidates cached lists", func(t *testing.T) {
		mockSpot := &MockSpotRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockSpot, mockCache, logger, time.Hour)

		mockSpot.On("Create", ctx, mock.AnythingOfType("*domain.Spot")).Return(nil)
		mockCache.On("ClearPattern", ctx, "spots:list:*").Return(nil)

		spot, err := uc.CreateSpot(ctx, &domain.SpotDraft{
			Name:      "Ledge by the library",
			Latitude:  ptrFloat64(41.3851),
			Longitude: ptrFloat64(2.1734),
			UserID:    "user-1",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, spot.ID)
		assert.Equal(t, domain.SpotTypeUnknown, spot.Type)
		assert.Equal(t, domain.DifficultyUnknown, spot.Difficulty)
		assert.Equal(t, domain.SpotStatusActive, spot.Status)
		assert.NotNil(t, spot.SkateabilityScore)
		assert.Equal(t, 5.0, *spot.SkateabilityScore)
		mockCache.AssertCalled(t, "ClearPattern", ctx, "spots:list:*")
	})

	t.Run("nested location wins over flat coordinates", func(t *testing.T) {
		mockSpot := &MockSpotRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockSpot, mockCache, logger, time.Hour)

		mockSpot.On("Create", ctx, mock.AnythingOfType("*domain.Spot")).Return(nil)
		mockCache.On("ClearPattern", ctx, "spots:list:*").Return(nil)

		spot, err := uc.CreateSpot(ctx, &domain.SpotDraft{
			Name:      "Plaza",
			Location:  &domain.Location{Latitude: 48.8566, Longitude: 2.3522},
			Latitude:  ptrFloat64(41.3851),
			Longitude: ptrFloat64(2.1734),
			UserID:    "user-1",
		})

		assert.NoError(t, err)
		assert.Equal(t, 48.8566, spot.Location.Latitude)
	})

	t.Run("missing location is rejected", func(t *testing.T) {
		mockSpot := &MockSpotRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockSpot, mockCache, logger, time.Hour)

		_, err := uc.CreateSpot(ctx, &domain.SpotDraft{Name: "Nowhere", UserID: "user-1"})

		assert.ErrorIs(t, err, apperrors.ErrMissingLocation)
		mockSpot.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("out-of-range coordinates are rejected", func(t *testing.T) {
		mockSpot := &MockSpotRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockSpot, mockCache, logger, time.Hour)

		_, err := uc.CreateSpot(ctx, &domain.SpotDraft{
			Name:      "Broken",
			Latitude:  ptrFloat64(95.0),
			Longitude: ptrFloat64(2.0),
			UserID:    "user-1",
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidCoordinates)
	})

	t.Run("image linking failure does not fail the create", func(t *testing.T) {
		mockSpot := &MockSpotRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockSpot, mockCache, logger, time.Hour)

		mockSpot.On("Create", ctx, mock.AnythingOfType("*domain.Spot")).Return(nil)
		mockSpot.On("AddImages", ctx, mock.AnythingOfType("string"), []string{"https://img/1.jpg"}).
			Return(errors.New("insert failed"))
		mockCache.On("ClearPattern", ctx, "spots:list:*").Return(nil)

		spot, err := uc.CreateSpot(ctx, &domain.SpotDraft{
			Name:      "With image",
			Latitude:  ptrFloat64(41.0),
			Longitude: ptrFloat64(2.0),
			UserID:    "user-1",
			Images:    []string{"https://img/1.jpg"},
		})

		assert.NoError(t, err)
		assert.Empty(t, spot.Images)
	})
}

func TestSpotUseCase_StatusTransitions(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("archive sets archived status and invalidates caches", func(t *testing.T) {
		mockSpot := &MockSpotRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockSpot, mockCache, logger, time.Hour)

		mockSpot.On("SetStatus", ctx, "s1", domain.SpotStatusArchived).Return(nil)
		mockCache.On("Delete", ctx, "spots:id:s1").Return(nil)
		mockCache.On("ClearPattern", ctx, "spots:list:*").Return(nil)

		err := uc.ArchiveSpot(ctx, "s1")

		assert.NoError(t, err)
		mockCache.AssertCalled(t, "Delete", ctx, "spots:id:s1")
		mockCache.AssertCalled(t, "ClearPattern", ctx, "spots:list:*")
	})

	t.Run("unknown status is rejected before hitting the database", func(t *testing.T) {
		mockSpot := &MockSpotRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockSpot, mockCache, logger, time.Hour)

		err := uc.SetSpotStatus(ctx, "s1", domain.SpotStatus("bogus"))

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		mockSpot.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("verify marks the spot verified", func(t *testing.T) {
		mockSpot := &MockSpotRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewSpotUseCase(mockSpot, mockCache, logger, time.Hour)

		mockSpot.On("SetVerified", ctx, "s1", true).Return(nil)
		mockCache.On("Delete", ctx, "spots:id:s1").Return(nil)
		mockCache.On("ClearPattern", ctx, "spots:list:*").Return(nil)

		err := uc.VerifySpot(ctx, "s1")

		assert.NoError(t, err)
		mockSpot.AssertCalled(t, "SetVerified", ctx, "s1", true)
	})
}
