package usecase

import (
	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/pkg/errors"
	"github.com/skatespot-service/internal/pkg/utils"
)

// formatSpot converts a raw persisted row into the canonical Spot shape.
// A record missing latitude or longitude is a data-integrity violation and is
// rejected, never coerced to a default coordinate.
func formatSpot(record *domain.SpotRecord) (*domain.Spot, error) {
	if !record.HasLocation() {
		return nil, errors.ErrDataIntegrity.WithDetails(map[string]interface{}{
			"spot_id": record.ID,
		})
	}

	spot := &domain.Spot{
		ID:                record.ID,
		Name:              record.Name,
		Description:       record.Description,
		Type:              record.Type,
		Difficulty:        record.Difficulty,
		Surface:           record.Surface,
		SkateabilityScore: record.SkateabilityScore,
		Features:          record.Features,
		Location: domain.Location{
			Latitude:  *record.Latitude,
			Longitude: *record.Longitude,
		},
		Address:   record.Address,
		Images:    record.Images,
		Status:    record.Status,
		Verified:  record.Verified,
		UserID:    record.UserID,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
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
	if record.DistanceKm != nil {
		d := utils.Round2(*record.DistanceKm)
		spot.DistanceKm = &d
	}

	return spot, nil
}
