package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skatespot-service/internal/domain"
)

func TestSpotQueryOptions_Normalize(t *testing.T) {
	t.Run("fills defaults on an empty query", func(t *testing.T) {
		opts := &domain.SpotQueryOptions{}
		opts.Normalize()

		assert.Equal(t, 1, opts.Page)
		assert.Equal(t, 20, opts.Limit)
		assert.Equal(t, domain.SpotStatusActive, opts.Status)
		assert.Equal(t, "created_at", opts.SortBy)
		assert.Equal(t, "desc", opts.SortOrder)
	})

	t.Run("clamps unknown sort fields to created_at", func(t *testing.T) {
		opts := &domain.SpotQueryOptions{SortBy: "password; DROP TABLE spots"}
		opts.Normalize()

		assert.Equal(t, "created_at", opts.SortBy)
	})

	t.Run("keeps allow-listed sort fields", func(t *testing.T) {
		for _, field := range []string{"created_at", "updated_at", "name", "skateability_score", "difficulty"} {
			opts := &domain.SpotQueryOptions{SortBy: field}
			opts.Normalize()
			assert.Equal(t, field, opts.SortBy)
		}
	})

	t.Run("sort order only accepts asc, anything else becomes desc", func(t *testing.T) {
		opts := &domain.SpotQueryOptions{SortOrder: "asc"}
		opts.Normalize()
		assert.Equal(t, "asc", opts.SortOrder)

		opts = &domain.SpotQueryOptions{SortOrder: "ASC; --"}
		opts.Normalize()
		assert.Equal(t, "desc", opts.SortOrder)
	})

	t.Run("sort order is case-insensitive", func(t *testing.T) {
		for _, raw := range []string{"ASC", "Asc", "aSc"} {
			opts := &domain.SpotQueryOptions{SortOrder: raw}
			opts.Normalize()
			assert.Equal(t, "asc", opts.SortOrder)
		}
	})

	t.Run("near search gets the default radius", func(t *testing.T) {
		opts := &domain.SpotQueryOptions{
			Near: &domain.NearLocation{Latitude: 41.0, Longitude: 2.0},
		}
		opts.Normalize()

		assert.Equal(t, 10.0, opts.Near.RadiusKm)
	})

	t.Run("is idempotent", func(t *testing.T) {
		opts := &domain.SpotQueryOptions{Page: 3, Limit: 50, SortBy: "name", SortOrder: "asc"}
		opts.Normalize()
		first := opts.CacheKey()
		opts.Normalize()
		assert.Equal(t, first, opts.CacheKey())
	})
}

func TestSpotQueryOptions_CacheKey(t *testing.T) {
	t.Run("identical queries produce identical keys", func(t *testing.T) {
		verified := true
		a := &domain.SpotQueryOptions{
			Type:     domain.SpotTypeRail,
			Verified: &verified,
			Near:     &domain.NearLocation{Latitude: 41.3851, Longitude: 2.1734, RadiusKm: 5},
		}
		b := &domain.SpotQueryOptions{
			Type:     domain.SpotTypeRail,
			Verified: &verified,
			Near:     &domain.NearLocation{Latitude: 41.3851, Longitude: 2.1734, RadiusKm: 5},
		}
		a.Normalize()
		b.Normalize()

		assert.Equal(t, a.CacheKey(), b.CacheKey())
	})

	t.Run("every filter participates in the key", func(t *testing.T) {
		base := &domain.SpotQueryOptions{}
		base.Normalize()

		variants := []*domain.SpotQueryOptions{
			{Page: 2},
			{Limit: 5},
			{Type: domain.SpotTypeLedge},
			{Surface: "wood"},
			{Difficulty: domain.DifficultyHard},
			{UserID: "user-1"},
			{Search: "plaza"},
			{Status: domain.SpotStatusArchived},
			{Near: &domain.NearLocation{Latitude: 1, Longitude: 2, RadiusKm: 3}},
			{SortBy: "name"},
			{SortOrder: "asc"},
		}

		seen := map[string]bool{base.CacheKey(): true}
		for _, v := range variants {
			v.Normalize()
			key := v.CacheKey()
			assert.False(t, seen[key], "duplicate key: %s", key)
			seen[key] = true
		}
	})

	t.Run("field values containing delimiters cannot collide", func(t *testing.T) {
		a := &domain.SpotQueryOptions{UserID: "a:q=b", Search: "c"}
		b := &domain.SpotQueryOptions{UserID: "a", Search: "b:q=c"}
		a.Normalize()
		b.Normalize()

		assert.NotEqual(t, a.CacheKey(), b.CacheKey())
	})

	t.Run("keys live under the invalidation pattern", func(t *testing.T) {
		opts := &domain.SpotQueryOptions{}
		opts.Normalize()
		assert.Contains(t, opts.CacheKey(), "spots:list:")
	})
}

func TestSpotQueryOptions_Offset(t *testing.T) {
	opts := &domain.SpotQueryOptions{Page: 3, Limit: 25}
	assert.Equal(t, 50, opts.Offset())
}

func TestNewPaginatedSpots(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		limit     int
		wantPages int
	}{
		{"exact division", 40, 20, 2},
		{"partial last page rounds up", 25, 10, 3},
		{"empty result", 0, 20, 0},
		{"single row", 1, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := domain.NewPaginatedSpots(nil, tt.total, 1, tt.limit)
			assert.Equal(t, tt.wantPages, page.TotalPages)
		})
	}
}

func TestSpotDraft_ResolveLocation(t *testing.T) {
	lat, lon := 41.3851, 2.1734

	t.Run("nested location preferred", func(t *testing.T) {
		draft := &domain.SpotDraft{
			Location:  &domain.Location{Latitude: 48.8566, Longitude: 2.3522},
			Latitude:  &lat,
			Longitude: &lon,
		}
		loc, ok := draft.ResolveLocation()
		assert.True(t, ok)
		assert.Equal(t, 48.8566, loc.Latitude)
	})

	t.Run("flat coordinates used when no nested location", func(t *testing.T) {
		draft := &domain.SpotDraft{Latitude: &lat, Longitude: &lon}
		loc, ok := draft.ResolveLocation()
		assert.True(t, ok)
		assert.Equal(t, lat, loc.Latitude)
		assert.Equal(t, lon, loc.Longitude)
	})

	t.Run("half a coordinate pair does not resolve", func(t *testing.T) {
		draft := &domain.SpotDraft{Latitude: &lat}
		_, ok := draft.ResolveLocation()
		assert.False(t, ok)
	})
}
