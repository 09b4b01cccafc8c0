package curves

import (
	"math"
	"math/rand"

	"github.com/xkilldash9x/humanpath/pkg/sampling"
)

// Builder turns an origin, a destination, and a CurveParameters bundle into
// the final ordered point sequence. The pipeline has four phases: knot
// placement, coarse Bezier sampling, Gaussian distortion, and easing-based
// temporal resampling. It retains no state across calls; a Build either
// completes or fails fast with a validation error and produces no output.
type Builder struct {
	rng *rand.Rand
}

// NewBuilder creates a builder drawing knot positions and distortion noise
// from rng.
func NewBuilder(rng *rand.Rand) *Builder {
	return &Builder{rng: rng}
}

// coarseSampleFloor is the minimum number of samples taken along the raw
// Bezier curve before resampling.
const coarseSampleFloor = 50

// Build produces the trajectory from origin to destination.
//
// The first and last points of the result equal origin and destination
// exactly, bit for bit. The result has p.TargetPointCount points unless the
// coarse sample count is already at or below the target, in which case the
// coarse sequence is returned unchanged.
func (b *Builder) Build(origin, destination Point2D, p CurveParameters) ([]Point2D, error) {
	if err := validateParameters(origin, destination, p); err != nil {
		return nil, err
	}

	knots := b.generateKnots(origin, destination, p)

	controls := make([]Point2D, 0, len(knots)+2)
	controls = append(controls, origin)
	controls = append(controls, knots...)
	controls = append(controls, destination)

	distance := destination.Dist(origin)
	coarseCount := int(math.Floor(distance))
	if coarseCount < coarseSampleFloor {
		coarseCount = coarseSampleFloor
	}

	points, err := SampleBezier(controls, coarseCount)
	if err != nil {
		return nil, err
	}

	b.distort(points, p)
	return resample(points, p.TargetPointCount, p.Easing.Fn), nil
}

// validateParameters fails fast on malformed inputs. Nothing here is
// recoverable inside the builder; retry and fallback policy belong to the
// caller.
func validateParameters(origin, destination Point2D, p CurveParameters) error {
	if !origin.finite() {
		return validationErrorf("origin", "non-finite coordinate (%v, %v)", origin.X, origin.Y)
	}
	if !destination.finite() {
		return validationErrorf("destination", "non-finite coordinate (%v, %v)", destination.X, destination.Y)
	}
	if math.IsNaN(p.OffsetBoundaryX) || math.IsInf(p.OffsetBoundaryX, 0) ||
		math.IsNaN(p.OffsetBoundaryY) || math.IsInf(p.OffsetBoundaryY, 0) {
		return validationErrorf("offset boundaries", "non-finite value (%v, %v)", p.OffsetBoundaryX, p.OffsetBoundaryY)
	}
	if math.IsNaN(p.DistortionMean) || math.IsInf(p.DistortionMean, 0) ||
		math.IsNaN(p.DistortionStDev) || math.IsInf(p.DistortionStDev, 0) {
		return validationErrorf("distortion", "non-finite mean or stdev (%v, %v)", p.DistortionMean, p.DistortionStDev)
	}
	if p.DistortionFrequency < 0 || p.DistortionFrequency > 1 || math.IsNaN(p.DistortionFrequency) {
		return validationErrorf("distortion frequency", "%v outside [0,1]", p.DistortionFrequency)
	}
	if p.TargetPointCount < 2 {
		return validationErrorf("target point count", "%d below minimum of 2", p.TargetPointCount)
	}
	if p.Easing.Fn == nil {
		return validationErrorf("easing", "nil function")
	}

	// The knot box is the origin-destination envelope expanded by the offset
	// boundaries; a sufficiently negative offset would invert it.
	left, right, down, up := knotBox(origin, destination, p)
	if left > right {
		return validationErrorf("knot boundaries", "left %v exceeds right %v", left, right)
	}
	if down > up {
		return validationErrorf("knot boundaries", "down %v exceeds up %v", down, up)
	}
	return nil
}

func knotBox(origin, destination Point2D, p CurveParameters) (left, right, down, up float64) {
	left = math.Min(origin.X, destination.X) - p.OffsetBoundaryX
	right = math.Max(origin.X, destination.X) + p.OffsetBoundaryX
	down = math.Min(origin.Y, destination.Y) - p.OffsetBoundaryY
	up = math.Max(origin.Y, destination.Y) + p.OffsetBoundaryY
	return left, right, down, up
}

// generateKnots draws the interior control points uniformly inside the knot
// box. A negative knot count is coerced to zero rather than rejected.
func (b *Builder) generateKnots(origin, destination Point2D, p CurveParameters) []Point2D {
	count := p.KnotsCount
	if count < 0 {
		count = 0
	}
	if count == 0 {
		return nil
	}

	left, right, down, up := knotBox(origin, destination, p)
	knots := make([]Point2D, count)
	for i := range knots {
		knots[i] = Point2D{
			X: left + b.rng.Float64()*(right-left),
			Y: down + b.rng.Float64()*(up-down),
		}
	}
	return knots
}

// distort perturbs interior samples in place. Each point between the
// endpoints gets, with probability p.DistortionFrequency, a Gaussian offset
// added to its y-coordinate. X is deliberately left untouched; the y-only
// asymmetry is a documented behavior of the model, not an oversight. The
// endpoints are never distorted.
func (b *Builder) distort(points []Point2D, p CurveParameters) {
	for i := 1; i < len(points)-1; i++ {
		if b.rng.Float64() < p.DistortionFrequency {
			points[i].Y += sampling.Gaussian(b.rng, p.DistortionMean, p.DistortionStDev)
		}
	}
}

// resample reduces the sequence to target points, biasing point density
// through the easing function. When the input is already at or below the
// target length it is returned unchanged. Endpoints copy the input endpoints
// verbatim; interior points linearly interpolate at the eased fractional
// index, so the mapping into the source sequence is monotonic whenever the
// easing function is.
func resample(points []Point2D, target int, ease func(float64) float64) []Point2D {
	m := len(points)
	if m <= target {
		return points
	}

	out := make([]Point2D, target)
	out[0] = points[0]
	out[target-1] = points[m-1]

	for i := 1; i < target-1; i++ {
		t := float64(i) / float64(target-1)
		c := ease(t) * float64(m-1)

		lo := int(math.Floor(c))
		if lo > m-1 {
			lo = m - 1
		}
		hi := lo + 1
		if hi > m-1 {
			hi = m - 1
		}
		frac := c - math.Floor(c)

		out[i] = points[lo].Add(points[hi].Sub(points[lo]).Mul(frac))
	}
	return out
}
