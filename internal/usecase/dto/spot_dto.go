package dto

import (
	"github.com/skatespot-service/internal/domain"
)

// ListSpotsRequest carries the GET /spots query parameters.
type ListSpotsRequest struct {
	Page       int      `query:"page" validate:"omitempty,min=1"`
	Limit      int      `query:"limit" validate:"omitempty,min=1,max=100"`
	Latitude   *float64 `query:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude  *float64 `query:"longitude" validate:"omitempty,min=-180,max=180"`
	Radius     float64  `query:"radius" validate:"omitempty,min=0.1,max=500"`
	Type       string   `query:"type" validate:"omitempty,spot_type"`
	Surface    string   `query:"surface"`
	Difficulty string   `query:"difficulty" validate:"omitempty,difficulty"`
	Verified   *bool    `query:"verified"`
	UserID     string   `query:"userId"`
	Search     string   `query:"search"`
	Status     string   `query:"status" validate:"omitempty,oneof=active archived flagged"`
	MinScore   *float64 `query:"minScore" validate:"omitempty,min=0,max=10"`
	SortBy     string   `query:"sortBy"`
	SortOrder  string   `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

// ToQueryOptions converts the request into engine query options. A near-location
// is only formed when both coordinates are present.
func (r *ListSpotsRequest) ToQueryOptions() *domain.SpotQueryOptions {
	opts := &domain.SpotQueryOptions{
		Page:                 r.Page,
		Limit:                r.Limit,
		Type:                 domain.SpotType(r.Type),
		Surface:              r.Surface,
		Difficulty:           domain.DifficultyRating(r.Difficulty),
		Verified:             r.Verified,
		UserID:               r.UserID,
		Search:               r.Search,
		Status:               domain.SpotStatus(r.Status),
		MinSkateabilityScore: r.MinScore,
		SortBy:               r.SortBy,
		SortOrder:            r.SortOrder,
	}

	if r.Latitude != nil && r.Longitude != nil {
		opts.Near = &domain.NearLocation{
			Latitude:  *r.Latitude,
			Longitude: *r.Longitude,
			RadiusKm:  r.Radius,
		}
	}

	return opts
}

// CreateSpotRequest is the POST /spots body.
type CreateSpotRequest struct {
	Name              string            `json:"name" validate:"required,min=1,max=200"`
	Description       *string           `json:"description,omitempty"`
	Type              string            `json:"type,omitempty" validate:"omitempty,spot_type"`
	Difficulty        string            `json:"difficulty,omitempty" validate:"omitempty,difficulty"`
	Surface           string            `json:"surface,omitempty"`
	SkateabilityScore *float64          `json:"skateability_score,omitempty" validate:"omitempty,min=0,max=10"`
	Features          domain.FeatureMap `json:"features,omitempty"`
	Location          *domain.Location  `json:"location,omitempty"`
	Latitude          *float64          `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude         *float64          `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	Address           *string           `json:"address,omitempty"`
	Images            []string          `json:"images,omitempty" validate:"omitempty,dive,url"`
}

// ToDraft converts the request into a spot draft owned by userID.
func (r *CreateSpotRequest) ToDraft(userID string) *domain.SpotDraft {
	return &domain.SpotDraft{
		Name:              r.Name,
		Description:       r.Description,
		Type:              domain.SpotType(r.Type),
		Difficulty:        domain.DifficultyRating(r.Difficulty),
		Surface:           r.Surface,
		SkateabilityScore: r.SkateabilityScore,
		Features:          r.Features,
		Location:          r.Location,
		Latitude:          r.Latitude,
		Longitude:         r.Longitude,
		Address:           r.Address,
		Images:            r.Images,
		UserID:            userID,
	}
}

// UpdateSpotRequest is the PUT /spots/:id body; nil fields stay unchanged.
type UpdateSpotRequest struct {
	Name              *string           `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description       *string           `json:"description,omitempty"`
	Type              *string           `json:"type,omitempty" validate:"omitempty,spot_type"`
	Difficulty        *string           `json:"difficulty,omitempty" validate:"omitempty,difficulty"`
	Surface           *string           `json:"surface,omitempty"`
	SkateabilityScore *float64          `json:"skateability_score,omitempty" validate:"omitempty,min=0,max=10"`
	Features          domain.FeatureMap `json:"features,omitempty"`
	Address           *string           `json:"address,omitempty"`
	Location          *domain.Location  `json:"location,omitempty"`
}

// ToUpdate converts the request into a domain update.
func (r *UpdateSpotRequest) ToUpdate() *domain.SpotUpdate {
	update := &domain.SpotUpdate{
		Name:              r.Name,
		Description:       r.Description,
		Surface:           r.Surface,
		SkateabilityScore: r.SkateabilityScore,
		Features:          r.Features,
		Address:           r.Address,
		Location:          r.Location,
	}
	if r.Type != nil {
		t := domain.SpotType(*r.Type)
		update.Type = &t
	}
	if r.Difficulty != nil {
		d := domain.DifficultyRating(*r.Difficulty)
		update.Difficulty = &d
	}
	return update
}

// CreateCollectionRequest is the POST /collections body.
type CreateCollectionRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	IsPublic    bool    `json:"is_public"`
}

// RateDifficultyRequest exposes the standalone difficulty scorer.
type RateDifficultyRequest struct {
	Features domain.FeatureMap `json:"features" validate:"required"`
}
