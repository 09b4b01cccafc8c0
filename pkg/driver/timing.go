package driver

import (
	"time"

	"github.com/xkilldash9x/humanpath/pkg/curves"
)

// TimedPoint is a trajectory point with the offset at which it should be
// reached, measured from the start of the movement. Offsets are monotonically
// non-decreasing.
type TimedPoint struct {
	curves.Point2D
	Offset time.Duration
}

// Schedule converts a point sequence into timed points using the inter-point
// Euclidean distance and a speed factor in pixels per second. The first point
// carries offset zero; coincident consecutive points advance the clock by
// nothing. A non-positive speed falls back to defaultSpeed.
func Schedule(points []curves.Point2D, pixelsPerSecond float64) []TimedPoint {
	const defaultSpeed = 900.0
	if pixelsPerSecond <= 0 {
		pixelsPerSecond = defaultSpeed
	}

	timed := make([]TimedPoint, len(points))
	var elapsed time.Duration
	for i, p := range points {
		if i > 0 {
			dist := p.Dist(points[i-1])
			elapsed += time.Duration(dist / pixelsPerSecond * float64(time.Second))
		}
		timed[i] = TimedPoint{Point2D: p, Offset: elapsed}
	}
	return timed
}

// Bounds is an inclusive device rectangle.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Clamp returns a copy of points with every coordinate forced inside b. The
// core never clamps; this belongs to the device-facing caller.
func Clamp(points []curves.Point2D, b Bounds) []curves.Point2D {
	out := make([]curves.Point2D, len(points))
	for i, p := range points {
		out[i] = curves.Point2D{
			X: clampFloat(p.X, b.MinX, b.MaxX),
			Y: clampFloat(p.Y, b.MinY, b.MaxY),
		}
	}
	return out
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
