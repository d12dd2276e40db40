package domain

// AnalysisSource tags where an analysis result came from so degraded-mode output
// is distinguishable from genuine inference in logs and telemetry.
type AnalysisSource string

const (
	// AnalysisSourcePrimary - result produced by the external classifier.
	AnalysisSourcePrimary AnalysisSource = "primary"
	// AnalysisSourceDegraded - classifier unavailable, bounded-random stub result.
	AnalysisSourceDegraded AnalysisSource = "degraded"
	// AnalysisSourceDefault - even the image could not be read, universal safe default.
	AnalysisSourceDefault AnalysisSource = "default"
)

// AnalysisResult is the normalized outcome of classifying one spot image.
// It is a transient value consumed to enrich a Spot or answer a client directly.
type AnalysisResult struct {
	Type              SpotType         `json:"type"`
	Confidence        float64          `json:"confidence"`
	Features          FeatureMap       `json:"features"`
	SurfaceQuality    string           `json:"surface_quality"`
	Difficulty        DifficultyRating `json:"difficulty"`
	SkateabilityScore *float64         `json:"skateability_score,omitempty"`
	SuggestedTricks   []string         `json:"suggested_tricks,omitempty"`
	Source            AnalysisSource   `json:"source"`
}

// DefaultAnalysisResult is the universal safe default returned when nothing at all
// could be inferred from the input.
func DefaultAnalysisResult() *AnalysisResult {
	return &AnalysisResult{
		Type:           SpotTypeUnknown,
		Confidence:     0,
		Features:       FeatureMap{},
		SurfaceQuality: SurfaceUnknown,
		Difficulty:     DifficultyMedium,
		Source:         AnalysisSourceDefault,
	}
}

// Detection is one labeled bounding box returned by the external classifier.
type Detection struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

// Area returns the bounding-box area in square pixels.
func (d Detection) Area() float64 {
	return d.Width * d.Height
}
