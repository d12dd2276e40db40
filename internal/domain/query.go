package domain

import (
	"fmt"
	"math"
	"net/url"
	"strings"
)

// Query defaults applied by the query engine when the caller omits them.
const (
	DefaultPage     = 1
	DefaultLimit    = 20
	DefaultRadiusKm = 10.0
)

// Sortable fields allow-list. Caller-supplied sort fields outside this set fall
// back to created_at instead of being passed through to the database.
var sortableFields = map[string]struct{}{
	"created_at":         {},
	"updated_at":         {},
	"name":               {},
	"skateability_score": {},
	"difficulty":         {},
}

// NearLocation is the center and radius of a geospatial radius search.
type NearLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKm  float64 `json:"radius_km"`
}

// SpotQueryOptions is the full shape of a filtered, paginated spot query. The
// normalized option set doubles as the cache key for the result page.
type SpotQueryOptions struct {
	Page                 int               `json:"page"`
	Limit                int               `json:"limit"`
	Type                 SpotType          `json:"type,omitempty"`
	Surface              string            `json:"surface,omitempty"`
	Difficulty           DifficultyRating  `json:"difficulty,omitempty"`
	Verified             *bool             `json:"verified,omitempty"`
	UserID               string            `json:"user_id,omitempty"`
	Search               string            `json:"search,omitempty"`
	Status               SpotStatus        `json:"status,omitempty"`
	Near                 *NearLocation     `json:"near,omitempty"`
	MinSkateabilityScore *float64          `json:"min_skateability_score,omitempty"`
	SortBy               string            `json:"sort_by,omitempty"`
	SortOrder            string            `json:"sort_order,omitempty"`
}

// Normalize fills in defaults and clamps the sort target to the allow-list.
// It is idempotent; the engine normalizes once before keying the cache.
func (o *SpotQueryOptions) Normalize() {
	if o.Page < 1 {
		o.Page = DefaultPage
	}
	if o.Limit < 1 {
		o.Limit = DefaultLimit
	}
	if o.Status == "" {
		o.Status = SpotStatusActive
	}
	if o.Near != nil && o.Near.RadiusKm <= 0 {
		o.Near.RadiusKm = DefaultRadiusKm
	}
	if _, ok := sortableFields[o.SortBy]; !ok {
		o.SortBy = "created_at"
	}
	if strings.ToLower(o.SortOrder) == "asc" {
		o.SortOrder = "asc"
	} else {
		o.SortOrder = "desc"
	}
}

// CacheKey serializes the normalized option set into a deterministic key.
// Field order is fixed so identical queries always hash to the same key.
// Caller-supplied strings are query-escaped so the delimiters cannot occur
// inside a value and distinct option sets can never share a key.
func (o *SpotQueryOptions) CacheKey() string {
	var b strings.Builder
	b.WriteString("spots:list:")
	fmt.Fprintf(&b, "p=%d:l=%d:t=%s:su=%s:d=%s",
		o.Page, o.Limit,
		url.QueryEscape(string(o.Type)), url.QueryEscape(o.Surface), url.QueryEscape(string(o.Difficulty)))
	if o.Verified != nil {
		fmt.Fprintf(&b, ":v=%t", *o.Verified)
	}
	fmt.Fprintf(&b, ":u=%s:q=%s:st=%s",
		url.QueryEscape(o.UserID), url.QueryEscape(o.Search), url.QueryEscape(string(o.Status)))
	if o.Near != nil {
		fmt.Fprintf(&b, ":near=%.6f,%.6f,%.2f", o.Near.Latitude, o.Near.Longitude, o.Near.RadiusKm)
	}
	if o.MinSkateabilityScore != nil {
		fmt.Fprintf(&b, ":ms=%.2f", *o.MinSkateabilityScore)
	}
	fmt.Fprintf(&b, ":sb=%s:so=%s", o.SortBy, o.SortOrder)
	return b.String()
}

// Offset returns the zero-based row offset for offset pagination.
func (o *SpotQueryOptions) Offset() int {
	return (o.Page - 1) * o.Limit
}

// PaginatedSpots is one page of query results with pagination metadata.
type PaginatedSpots struct {
	Data       []*Spot `json:"data"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"total_pages"`
}

// NewPaginatedSpots computes total_pages from the matched row count.
func NewPaginatedSpots(data []*Spot, total, page, limit int) *PaginatedSpots {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return &PaginatedSpots{
		Data:       data,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
