package repository

import (
	"context"

	"github.com/skatespot-service/internal/domain"
)

// SpotRepository defines persistence operations over the spots table.
type SpotRepository interface {
	// List returns spots matching the normalized query options plus the total
	// match count. With a near-location it runs a geospatial radius search,
	// otherwise a plain conjunctive filter.
	// Records are unformatted; the query engine enforces the location invariant.
	List(ctx context.Context, opts *domain.SpotQueryOptions) ([]*domain.SpotRecord, int, error)

	// GetByID returns a raw spot record by ID or ErrSpotNotFound.
	GetByID(ctx context.Context, id string) (*domain.SpotRecord, error)

	// Create persists a new spot with both lat/lon columns and the PostGIS point.
	Create(ctx context.Context, spot *domain.Spot) error

	// Update applies a partial update and bumps updated_at.
	Update(ctx context.Context, id string, update *domain.SpotUpdate) (*domain.SpotRecord, error)

	// SetStatus changes the lifecycle status of a spot.
	SetStatus(ctx context.Context, id string, status domain.SpotStatus) error

	// SetVerified marks a spot as verified (privileged action).
	SetVerified(ctx context.Context, id string, verified bool) error

	// AddImages links image URLs to a spot; the first is primary unless
	// a primary image already exists.
	AddImages(ctx context.Context, spotID string, urls []string) error

	// GetImages returns a spot's images ordered by position, primary first.
	GetImages(ctx context.Context, spotID string) ([]*domain.SpotImage, error)
}

// TrickRepository reads from the tricks catalog and daily challenges.
type TrickRepository interface {
	// ListBySpotTypes returns tricks applicable to any of the given spot types.
	ListBySpotTypes(ctx context.Context, spotTypes []string, limit int) ([]*domain.Trick, error)

	// GetDailyChallenge returns the challenge for the given calendar day.
	GetDailyChallenge(ctx context.Context, day string) (*domain.DailyChallenge, error)
}

// CollectionRepository manages user spot collections.
type CollectionRepository interface {
	Create(ctx context.Context, collection *domain.Collection) error
	GetByID(ctx context.Context, id string) (*domain.Collection, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Collection, error)
	AddSpot(ctx context.Context, collectionID, spotID string) error
	RemoveSpot(ctx context.Context, collectionID, spotID string) error
}
