package domain

import "time"

// SpotType classifies the physical obstacle a spot is built around.
type SpotType string

const (
	SpotTypeStairs    SpotType = "stairs"
	SpotTypeRail      SpotType = "rail"
	SpotTypeLedge     SpotType = "ledge"
	SpotTypeGap       SpotType = "gap"
	SpotTypeManualPad SpotType = "manual_pad"
	SpotTypeBowl      SpotType = "bowl"
	SpotTypeRamp      SpotType = "ramp"
	SpotTypeHalfpipe  SpotType = "halfpipe"
	SpotTypePlaza     SpotType = "plaza"
	SpotTypeOther     SpotType = "other"
	SpotTypeUnknown   SpotType = "unknown"
)

// DifficultyRating grades the technical demand of a spot.
type DifficultyRating string

const (
	DifficultyEasy    DifficultyRating = "easy"
	DifficultyMedium  DifficultyRating = "medium"
	DifficultyHard    DifficultyRating = "hard"
	DifficultyPro     DifficultyRating = "pro"
	DifficultyUnknown DifficultyRating = "unknown"
)

// SpotStatus is the lifecycle state of a spot record.
type SpotStatus string

const (
	SpotStatusActive   SpotStatus = "active"
	SpotStatusArchived SpotStatus = "archived"
	SpotStatusFlagged  SpotStatus = "flagged"
)

// Surface quality descriptors reported by classification and user input.
const (
	SurfaceSmoothConcrete = "smooth_concrete"
	SurfaceRoughConcrete  = "rough_concrete"
	SurfaceAsphalt        = "asphalt"
	SurfaceWood           = "wood"
	SurfaceMetal          = "metal"
	SurfaceMarble         = "marble"
	SurfaceBrick          = "brick"
	SurfaceUnknown        = "unknown"
)

// Well-known FeatureMap keys.
const (
	FeatureHeight = "height"
	FeatureWidth  = "width"
	FeatureLength = "length"
	FeatureAngle  = "angle"
	FeatureSteps  = "steps"
)

// FeatureMap is an open bag of numeric measurements (centimeters / degrees / counts).
type FeatureMap map[string]float64

// Height returns the height measurement and whether it is present.
func (f FeatureMap) Height() (float64, bool) { return f.get(FeatureHeight) }

// Width returns the width measurement and whether it is present.
func (f FeatureMap) Width() (float64, bool) { return f.get(FeatureWidth) }

// Length returns the length measurement and whether it is present.
func (f FeatureMap) Length() (float64, bool) { return f.get(FeatureLength) }

// Angle returns the incline angle in degrees and whether it is present.
func (f FeatureMap) Angle() (float64, bool) { return f.get(FeatureAngle) }

// Steps returns the stair step count and whether it is present.
func (f FeatureMap) Steps() (float64, bool) { return f.get(FeatureSteps) }

func (f FeatureMap) get(key string) (float64, bool) {
	if f == nil {
		return 0, false
	}
	v, ok := f[key]
	return v, ok
}

// Location is a validated WGS84 coordinate pair.
type Location struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// Spot represents a physical skateboarding location.
type Spot struct {
	ID                string           `json:"id" db:"id"`
	Name              string           `json:"name" db:"name"`
	Description       *string          `json:"description,omitempty" db:"description"`
	Type              SpotType         `json:"type" db:"type"`
	Difficulty        DifficultyRating `json:"difficulty" db:"difficulty"`
	Surface           string           `json:"surface" db:"surface"`
	SkateabilityScore *float64         `json:"skateability_score,omitempty" db:"skateability_score"`
	Features          FeatureMap       `json:"features,omitempty" db:"features"`
	Location          Location         `json:"location"`
	Address           *string          `json:"address,omitempty" db:"address"`
	Images            []string         `json:"images,omitempty"`
	Status            SpotStatus       `json:"status" db:"status"`
	Verified          bool             `json:"verified" db:"verified"`
	UserID            string           `json:"user_id" db:"user_id"`
	DistanceKm        *float64         `json:"distance_km,omitempty" db:"distance_km"`
	CreatedAt         time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at" db:"updated_at"`
}

// SpotImage is an image linked to a spot, first/primary one shown in listings.
type SpotImage struct {
	ID        string    `json:"id" db:"id"`
	SpotID    string    `json:"spot_id" db:"spot_id"`
	URL       string    `json:"url" db:"url"`
	IsPrimary bool      `json:"is_primary" db:"is_primary"`
	Position  int       `json:"position" db:"position"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SpotDraft carries the user-supplied fields for creating a spot. Coordinates may
// arrive either nested or flat; exactly one representation must resolve.
type SpotDraft struct {
	Name              string           `json:"name"`
	Description       *string          `json:"description,omitempty"`
	Type              SpotType         `json:"type,omitempty"`
	Difficulty        DifficultyRating `json:"difficulty,omitempty"`
	Surface           string           `json:"surface,omitempty"`
	SkateabilityScore *float64         `json:"skateability_score,omitempty"`
	Features          FeatureMap       `json:"features,omitempty"`
	Location          *Location        `json:"location,omitempty"`
	Latitude          *float64         `json:"latitude,omitempty"`
	Longitude         *float64         `json:"longitude,omitempty"`
	Address           *string          `json:"address,omitempty"`
	Images            []string         `json:"images,omitempty"`
	UserID            string           `json:"-"`
}

// ResolveLocation returns the draft coordinates, preferring the nested object over
// the flat fields. The second return is false when neither form is complete.
func (d *SpotDraft) ResolveLocation() (Location, bool) {
	if d.Location != nil {
		return *d.Location, true
	}
	if d.Latitude != nil && d.Longitude != nil {
		return Location{Latitude: *d.Latitude, Longitude: *d.Longitude}, true
	}
	return Location{}, false
}

// SpotUpdate carries optional fields for a partial spot update. Nil means "leave as is".
type SpotUpdate struct {
	Name              *string           `json:"name,omitempty"`
	Description       *string           `json:"description,omitempty"`
	Type              *SpotType         `json:"type,omitempty"`
	Difficulty        *DifficultyRating `json:"difficulty,omitempty"`
	Surface           *string           `json:"surface,omitempty"`
	SkateabilityScore *float64          `json:"skateability_score,omitempty"`
	Features          FeatureMap        `json:"features,omitempty"`
	Address           *string           `json:"address,omitempty"`
	Location          *Location         `json:"location,omitempty"`
}

// Trick is an entry from the tricks catalog.
type Trick struct {
	ID         string           `json:"id" db:"id"`
	Name       string           `json:"name" db:"name"`
	Category   string           `json:"category" db:"category"`
	Difficulty DifficultyRating `json:"difficulty" db:"difficulty"`
	SpotTypes  []string         `json:"spot_types" db:"spot_types"`
}

// DailyChallenge pairs a trick with a calendar day.
type DailyChallenge struct {
	ID            string    `json:"id" db:"id"`
	Trick         Trick     `json:"trick"`
	ChallengeDate time.Time `json:"challenge_date" db:"challenge_date"`
	BonusPoints   int       `json:"bonus_points" db:"bonus_points"`
}

// Collection is a user-curated list of spots.
type Collection struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	IsPublic    bool      `json:"is_public" db:"is_public"`
	SpotCount   int       `json:"spot_count" db:"spot_count"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
