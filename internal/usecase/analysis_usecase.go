package usecase

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/domain/repository"
	"github.com/skatespot-service/internal/pkg/utils"
)

const (
	// defaultConfidence is assumed when the classifier answers with an empty
	// prediction list.
	defaultConfidence = 0.7

	// cmPerPixel converts bounding-box pixels into rough centimeters. These are
	// coarse approximations of obstacle size, not measurements.
	cmPerPixel       = 0.6
	lengthMultiplier = 2.0

	publishTimeout = 5 * time.Second
)

// trickSuggestions maps a spot type to its starter trick list.
var trickSuggestions = map[domain.SpotType][]string{
	domain.SpotTypeRail:      {"50-50 Grind", "Boardslide", "Lipslide", "Smith Grind", "Feeble Grind"},
	domain.SpotTypeStairs:    {"Ollie", "Kickflip", "Heelflip", "360 Flip", "Hardflip"},
	domain.SpotTypeLedge:     {"50-50 Grind", "Crooked Grind", "Nosegrind", "Bluntslide", "Tailslide"},
	domain.SpotTypeGap:       {"Ollie", "Kickflip", "Heelflip", "Varial Flip"},
	domain.SpotTypeManualPad: {"Manual", "Nose Manual", "Manual Kickflip Out"},
	domain.SpotTypeBowl:      {"Carve", "Rock to Fakie", "Axle Stall", "Frontside Grind"},
	domain.SpotTypeRamp:      {"Drop In", "Rock to Fakie", "Axle Stall"},
	domain.SpotTypeHalfpipe:  {"Drop In", "Rock to Fakie", "Backside Air"},
	domain.SpotTypePlaza:     {"Ollie", "Shove-it", "Kickflip", "Manual"},
}

// genericTricks is the fallback set for types without a dedicated list.
var genericTricks = []string{"Ollie", "Shove-it", "Kickflip"}

// degraded-mode generator bounds
var (
	degradedTypes = []domain.SpotType{
		domain.SpotTypeStairs, domain.SpotTypeRail, domain.SpotTypeLedge,
		domain.SpotTypeGap, domain.SpotTypeManualPad, domain.SpotTypeBowl,
		domain.SpotTypeRamp, domain.SpotTypeHalfpipe, domain.SpotTypePlaza,
	}
	degradedSurfaces = []string{
		domain.SurfaceSmoothConcrete, domain.SurfaceRoughConcrete,
		domain.SurfaceAsphalt, domain.SurfaceWood, domain.SurfaceMetal,
		domain.SurfaceBrick,
	}
)

// AnalysisUseCase is the spot classification engine. Analyze never propagates a
// hard failure upward: the worst case is the universal safe default result.
type AnalysisUseCase struct {
	classifier repository.ClassifierRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
	rng        *rand.Rand
}

// NewAnalysisUseCase creates an AnalysisUseCase. streamRepo may be nil, in
// which case no analysis notifications are published.
func NewAnalysisUseCase(
	classifier repository.ClassifierRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *AnalysisUseCase {
	return &AnalysisUseCase{
		classifier: classifier,
		streamRepo: streamRepo,
		logger:     logger,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Analyze turns an image into a structured, bounded-confidence description of a
// skate spot. It always returns a usable result:
//   - primary: external classifier detections, normalized
//   - degraded: classifier unreachable or failing, bounded-random stub
//   - default: unreadable input, universal safe default
func (uc *AnalysisUseCase) Analyze(ctx context.Context, image []byte, userID string) *domain.AnalysisResult {
	if len(image) == 0 {
		uc.logger.Warn("Analyze called with empty image, returning safe default")
		return domain.DefaultAnalysisResult()
	}

	var result *domain.AnalysisResult

	if !uc.classifier.Available() {
		uc.logger.Warn("Classifier not configured, serving degraded analysis")
		result = uc.degradedResult()
	} else if detections, err := uc.classifier.Detect(ctx, image); err != nil {
		uc.logger.Warn("Classifier failed, serving degraded analysis", zap.Error(err))
		result = uc.degradedResult()
	} else {
		result = uc.primaryResult(detections)
	}

	uc.logger.Info("Image analyzed",
		zap.String("source", string(result.Source)),
		zap.String("type", string(result.Type)),
		zap.Float64("confidence", result.Confidence),
		zap.String("difficulty", string(result.Difficulty)))

	uc.publishAnalysisEvent(userID, result)

	return result
}

// RateDifficulty scores spot features deterministically. Missing features
// contribute nothing, so an empty feature set always resolves to easy.
func (uc *AnalysisUseCase) RateDifficulty(features domain.FeatureMap) domain.DifficultyRating {
	score := 0

	if height, ok := features.Height(); ok {
		switch {
		case height > 200:
			score += 6
		case height > 150:
			score += 5
		case height > 100:
			score += 4
		case height > 50:
			score += 2
		default:
			score++
		}
	}

	if angle, ok := features.Angle(); ok {
		switch {
		case angle > 45:
			score += 3
		case angle > 30:
			score += 2
		case angle > 15:
			score++
		}
	}

	if length, ok := features.Length(); ok {
		switch {
		case length > 1000:
			score += 2
		case length > 500:
			score++
		}
	}

	switch {
	case score >= 7:
		return domain.DifficultyPro
	case score >= 5:
		return domain.DifficultyHard
	case score >= 3:
		return domain.DifficultyMedium
	default:
		return domain.DifficultyEasy
	}
}

// primaryResult normalizes raw classifier detections into an AnalysisResult.
func (uc *AnalysisUseCase) primaryResult(detections []domain.Detection) *domain.AnalysisResult {
	if len(detections) == 0 {
		return &domain.AnalysisResult{
			Type:              domain.SpotTypeUnknown,
			Confidence:        defaultConfidence,
			Features:          domain.FeatureMap{},
			SurfaceQuality:    domain.SurfaceUnknown,
			Difficulty:        domain.DifficultyMedium,
			SkateabilityScore: scoreFromConfidence(defaultConfidence),
			SuggestedTricks:   genericTricks,
			Source:            domain.AnalysisSourcePrimary,
		}
	}

	dominantClass := dominantClass(detections)
	spotType := mapClassToType(dominantClass)

	var confidenceSum float64
	for _, d := range detections {
		confidenceSum += d.Confidence
	}
	confidence := confidenceSum / float64(len(detections))

	result := &domain.AnalysisResult{
		Type:              spotType,
		Confidence:        confidence,
		Features:          estimateFeatures(detections, dominantClass),
		SurfaceQuality:    surfaceFromConfidence(confidence),
		Difficulty:        classifyDifficulty(spotType, detections),
		SkateabilityScore: scoreFromConfidence(confidence),
		SuggestedTricks:   suggestTricks(spotType),
		Source:            domain.AnalysisSourcePrimary,
	}

	return result
}

// degradedResult keeps downstream consumers functional while the classifier is
// down. It is a clearly tagged stub, not an inference.
func (uc *AnalysisUseCase) degradedResult() *domain.AnalysisResult {
	spotType := degradedTypes[uc.rng.Intn(len(degradedTypes))]
	confidence := 0.4 + uc.rng.Float64()*0.4 // bounded to [0.4, 0.8)

	difficulties := []domain.DifficultyRating{
		domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard,
	}

	return &domain.AnalysisResult{
		Type:              spotType,
		Confidence:        utils.Round2(confidence),
		Features:          domain.FeatureMap{},
		SurfaceQuality:    degradedSurfaces[uc.rng.Intn(len(degradedSurfaces))],
		Difficulty:        difficulties[uc.rng.Intn(len(difficulties))],
		SkateabilityScore: scoreFromConfidence(confidence),
		SuggestedTricks:   suggestTricks(spotType),
		Source:            domain.AnalysisSourceDegraded,
	}
}

// publishAnalysisEvent fires the best-effort "analysis complete" notification.
// It is dispatched and forgotten; a failure never affects the returned result.
func (uc *AnalysisUseCase) publishAnalysisEvent(userID string, result *domain.AnalysisResult) {
	if uc.streamRepo == nil || result.Source == domain.AnalysisSourceDefault {
		return
	}

	event := domain.AnalysisEvent{
		UserID:     userID,
		Type:       result.Type,
		Confidence: result.Confidence,
		Difficulty: result.Difficulty,
		Source:     result.Source,
		AnalyzedAt: time.Now().UTC(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := uc.streamRepo.PublishToStream(ctx, domain.StreamAnalysisEvents, event); err != nil {
			uc.logger.Warn("Failed to publish analysis event", zap.Error(err))
		}
	}()
}

// dominantClass returns the most frequent detection class, breaking count ties
// lexicographically so the result is deterministic.
func dominantClass(detections []domain.Detection) string {
	counts := make(map[string]int)
	for _, d := range detections {
		counts[strings.ToLower(d.Class)]++
	}

	classes := make([]string, 0, len(counts))
	for class := range counts {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	dominant := classes[0]
	for _, class := range classes[1:] {
		if counts[class] > counts[dominant] {
			dominant = class
		}
	}
	return dominant
}

// mapClassToType maps a raw classifier label onto the spot type vocabulary via
// canonical keyword matching.
func mapClassToType(class string) domain.SpotType {
	c := strings.ToLower(class)
	switch {
	case strings.Contains(c, "half") && strings.Contains(c, "pipe"):
		return domain.SpotTypeHalfpipe
	case strings.Contains(c, "rail"):
		return domain.SpotTypeRail
	case strings.Contains(c, "ledge"):
		return domain.SpotTypeLedge
	case strings.Contains(c, "stair"):
		return domain.SpotTypeStairs
	case strings.Contains(c, "gap"):
		return domain.SpotTypeGap
	case strings.Contains(c, "manual"), strings.Contains(c, "pad"):
		return domain.SpotTypeManualPad
	case strings.Contains(c, "bowl"):
		return domain.SpotTypeBowl
	case strings.Contains(c, "ramp"):
		return domain.SpotTypeRamp
	case strings.Contains(c, "plaza"):
		return domain.SpotTypePlaza
	default:
		// "flat" and anything unmatched both land on other
		return domain.SpotTypeOther
	}
}

// classifyDifficulty applies the fixed rule table over the dominant type and
// the full detection set.
func classifyDifficulty(spotType domain.SpotType, detections []domain.Detection) domain.DifficultyRating {
	if spotType == domain.SpotTypeRail || spotType == domain.SpotTypeStairs {
		return domain.DifficultyHard
	}

	hasGap := false
	hasFlat := false
	for _, d := range detections {
		c := strings.ToLower(d.Class)
		if strings.Contains(c, "gap") {
			hasGap = true
		}
		if strings.Contains(c, "flat") {
			hasFlat = true
		}
	}

	if hasGap {
		return domain.DifficultyHard
	}
	if spotType == domain.SpotTypeLedge || spotType == domain.SpotTypeManualPad {
		return domain.DifficultyMedium
	}
	if spotType == domain.SpotTypeOther && hasFlat {
		return domain.DifficultyEasy
	}
	return domain.DifficultyMedium
}

// estimateFeatures derives rough dimensions from the single largest-area
// detection of the dominant class.
func estimateFeatures(detections []domain.Detection, dominantClass string) domain.FeatureMap {
	var largest *domain.Detection
	for i := range detections {
		d := &detections[i]
		if strings.ToLower(d.Class) != dominantClass {
			continue
		}
		if largest == nil || d.Area() > largest.Area() {
			largest = d
		}
	}
	if largest == nil {
		return domain.FeatureMap{}
	}

	return domain.FeatureMap{
		domain.FeatureHeight: utils.Round1(largest.Height * cmPerPixel),
		domain.FeatureWidth:  utils.Round1(largest.Width * cmPerPixel),
		domain.FeatureLength: utils.Round1(largest.Width * cmPerPixel * lengthMultiplier),
	}
}

// scoreFromConfidence maps confidence onto the 0-10 skateability scale.
func scoreFromConfidence(confidence float64) *float64 {
	score := utils.Round1(confidence * 10)
	if score > 10 {
		score = 10
	}
	return &score
}

// surfaceFromConfidence is a coarse heuristic: higher detection confidence
// correlates with cleaner, better-lit surfaces in the training data.
func surfaceFromConfidence(confidence float64) string {
	switch {
	case confidence >= 0.75:
		return domain.SurfaceSmoothConcrete
	case confidence >= 0.5:
		return domain.SurfaceRoughConcrete
	default:
		return domain.SurfaceUnknown
	}
}

// suggestTricks returns the trick list for a spot type.
func suggestTricks(spotType domain.SpotType) []string {
	if tricks, ok := trickSuggestions[spotType]; ok {
		return tricks
	}
	return genericTricks
}
