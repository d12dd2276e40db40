package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/domain/repository"
	"github.com/skatespot-service/internal/pkg/errors"
)

// CollectionUseCase manages user spot collections. Plain persistence calls;
// collections are not cached.
type CollectionUseCase struct {
	collectionRepo repository.CollectionRepository
	spotRepo       repository.SpotRepository
	logger         *zap.Logger
}

func NewCollectionUseCase(
	collectionRepo repository.CollectionRepository,
	spotRepo repository.SpotRepository,
	logger *zap.Logger,
) *CollectionUseCase {
	return &CollectionUseCase{
		collectionRepo: collectionRepo,
		spotRepo:       spotRepo,
		logger:         logger,
	}
}

// CreateCollection creates an empty collection owned by userID.
func (uc *CollectionUseCase) CreateCollection(ctx context.Context, userID, name string, description *string, isPublic bool) (*domain.Collection, error) {
	if name == "" {
		return nil, errors.ErrValidation.WithDetails(map[string]interface{}{"name": "required"})
	}

	now := time.Now().UTC()
	collection := &domain.Collection{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Description: description,
		IsPublic:    isPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.collectionRepo.Create(ctx, collection); err != nil {
		return nil, err
	}

	uc.logger.Info("Collection created",
		zap.String("collection_id", collection.ID),
		zap.String("user_id", userID))

	return collection, nil
}

// GetCollection returns a collection visible to userID: public ones or their own.
func (uc *CollectionUseCase) GetCollection(ctx context.Context, id, userID string) (*domain.Collection, error) {
	collection, err := uc.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !collection.IsPublic && collection.UserID != userID {
		return nil, errors.ErrForbidden
	}
	return collection, nil
}

// ListUserCollections returns all collections owned by userID.
func (uc *CollectionUseCase) ListUserCollections(ctx context.Context, userID string) ([]*domain.Collection, error) {
	return uc.collectionRepo.ListByUser(ctx, userID)
}

// AddSpotToCollection links an existing spot into the caller's collection.
func (uc *CollectionUseCase) AddSpotToCollection(ctx context.Context, collectionID, spotID, userID string) error {
	collection, err := uc.collectionRepo.GetByID(ctx, collectionID)
	if err != nil {
		return err
	}
	if collection.UserID != userID {
		return errors.ErrForbidden
	}

	// The spot must exist and be readable before it can be collected.
	if _, err := uc.spotRepo.GetByID(ctx, spotID); err != nil {
		return err
	}

	return uc.collectionRepo.AddSpot(ctx, collectionID, spotID)
}

// RemoveSpotFromCollection unlinks a spot from the caller's collection.
func (uc *CollectionUseCase) RemoveSpotFromCollection(ctx context.Context, collectionID, spotID, userID string) error {
	collection, err := uc.collectionRepo.GetByID(ctx, collectionID)
	if err != nil {
		return err
	}
	if collection.UserID != userID {
		return errors.ErrForbidden
	}

	return uc.collectionRepo.RemoveSpot(ctx, collectionID, spotID)
}
