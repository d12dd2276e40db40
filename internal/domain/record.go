package domain

import "time"

// SpotRecord is a raw spots row as persisted, before invariant checks. Latitude
// and longitude are nullable here because the store cannot guarantee them; the
// query engine converts records into canonical Spots and rejects the invalid ones.
type SpotRecord struct {
	ID                string           `db:"id"`
	Name              string           `db:"name"`
	Description       *string          `db:"description"`
	Type              SpotType         `db:"type"`
	Difficulty        DifficultyRating `db:"difficulty"`
	Surface           string           `db:"surface"`
	SkateabilityScore *float64         `db:"skateability_score"`
	Features          FeatureMap       `db:"-"`
	Latitude          *float64         `db:"latitude"`
	Longitude         *float64         `db:"longitude"`
	Address           *string          `db:"address"`
	Images            []string         `db:"-"`
	Status            SpotStatus       `db:"status"`
	Verified          bool             `db:"verified"`
	UserID            string           `db:"user_id"`
	DistanceKm        *float64         `db:"distance_km"`
	CreatedAt         time.Time        `db:"created_at"`
	UpdatedAt         time.Time        `db:"updated_at"`
}

// HasLocation reports whether both coordinates are present.
func (r *SpotRecord) HasLocation() bool {
	return r.Latitude != nil && r.Longitude != nil
}
