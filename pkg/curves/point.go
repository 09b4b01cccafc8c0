// Package curves generates finite, ordered point sequences approximating
// human mouse trajectories: weighted parameter selection, Bernstein-polynomial
// Bezier evaluation over randomly placed knots, Gaussian distortion, and
// easing-based temporal resampling. Everything here is pure computation on
// the calling goroutine; randomness comes from injected *rand.Rand sources.
package curves

import "math"

// Point2D is a point (or displacement) in a single 2D coordinate space.
// Immutable by value semantics.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the vector sum of p and other.
func (p Point2D) Add(other Point2D) Point2D {
	return Point2D{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the vector difference of p and other.
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// Mul returns p scaled by the scalar factor.
func (p Point2D) Mul(scalar float64) Point2D {
	return Point2D{X: p.X * scalar, Y: p.Y * scalar}
}

// Mag calculates the magnitude (length) of p treated as a vector.
func (p Point2D) Mag() float64 {
	// math.Hypot for numerical stability.
	return math.Hypot(p.X, p.Y)
}

// Dist calculates the Euclidean distance between p and other.
func (p Point2D) Dist(other Point2D) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// finite reports whether both coordinates are finite numbers.
func (p Point2D) finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
