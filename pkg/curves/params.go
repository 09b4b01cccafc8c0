package curves

import (
	"math"
	"math/rand"

	"github.com/xkilldash9x/humanpath/pkg/easing"
	"github.com/xkilldash9x/humanpath/pkg/sampling"
)

// CurveParameters is the complete parameter bundle for one trajectory.
// A bundle is generated fresh per movement request and discarded with it;
// nothing here is persisted or shared across calls.
type CurveParameters struct {
	// OffsetBoundaryX/Y expand the origin-destination envelope in which
	// interior knots are placed.
	OffsetBoundaryX float64
	OffsetBoundaryY float64
	// KnotsCount is the number of random interior control points.
	KnotsCount int
	// Distortion* describe the Gaussian y-noise applied to interior samples.
	DistortionMean      float64
	DistortionStDev     float64
	DistortionFrequency float64
	// Easing reparameterizes point density during temporal resampling.
	Easing easing.Entry
	// TargetPointCount is the length of the final resampled sequence.
	TargetPointCount int
}

// intTier is an inclusive integer range used for two-stage tiered draws.
type intTier struct {
	lo, hi int
}

// The tier tables below are documented, load-tested distributions. The last
// offset tier carries weight 15 against 0.85 combined, so ~94.65% of draws
// land in [75,99].
var (
	offsetTiers       = []intTier{{20, 44}, {45, 74}, {75, 99}}
	offsetTierWeights = []float64{0.2, 0.65, 15}

	targetPointTiers   = []intTier{{35, 44}, {45, 59}, {60, 79}}
	targetPointWeights = []float64{0.53, 0.32, 0.15}

	knotChoices = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	knotWeights = []float64{0.15, 0.36, 0.17, 0.12, 0.08, 0.04, 0.03, 0.02, 0.015, 0.005}
)

// ParameterGenerator produces randomized, statistically weighted
// CurveParameters bundles. The random source is injected so callers can seed
// deterministically and keep concurrent generation safe.
type ParameterGenerator struct {
	rng *rand.Rand
}

// NewParameterGenerator creates a generator drawing from rng.
func NewParameterGenerator(rng *rand.Rand) *ParameterGenerator {
	return &ParameterGenerator{rng: rng}
}

// Generate builds a complete parameter bundle for a movement from origin to
// destination. It never fails for finite-coordinate inputs.
func (g *ParameterGenerator) Generate(origin, destination Point2D) CurveParameters {
	p := CurveParameters{
		Easing:              easing.Random(g.rng),
		OffsetBoundaryX:     float64(g.tieredInt(offsetTiers, offsetTierWeights)),
		OffsetBoundaryY:     float64(g.tieredInt(offsetTiers, offsetTierWeights)),
		KnotsCount:          sampling.WeightedChoice(g.rng, knotChoices, knotWeights),
		DistortionMean:      float64(sampling.IntRange(g.rng, 80, 109)) / 100,
		DistortionStDev:     float64(sampling.IntRange(g.rng, 85, 109)) / 100,
		DistortionFrequency: float64(sampling.IntRange(g.rng, 25, 69)) / 100,
		TargetPointCount:    g.tieredInt(targetPointTiers, targetPointWeights),
	}

	// Distance-aware floor. Short or edge-adjacent movements would otherwise
	// collapse into near-straight lines; a boundary of at least
	// max(30, 15% of distance) keeps visible curvature.
	distance := destination.Dist(origin)
	minBoundary := math.Max(30, 0.15*distance)
	p.OffsetBoundaryX = math.Max(p.OffsetBoundaryX, minBoundary)
	p.OffsetBoundaryY = math.Max(p.OffsetBoundaryY, minBoundary)

	// At least two knots, regardless of the weighted draw.
	if p.KnotsCount < 2 {
		p.KnotsCount = 2
	}
	return p
}

// tieredInt draws a tier by weight, then a uniform integer inside it.
func (g *ParameterGenerator) tieredInt(tiers []intTier, weights []float64) int {
	tier := sampling.WeightedChoice(g.rng, tiers, weights)
	return sampling.IntRange(g.rng, tier.lo, tier.hi)
}
