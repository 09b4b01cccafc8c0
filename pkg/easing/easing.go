// Package easing provides a fixed catalog of named, monotonic timing
// functions mapping a normalized progress t in [0,1] to an eased progress in
// [0,1]. Every function satisfies f(0)=0 and f(1)=1 exactly; the exponential
// variants special-case their endpoints to keep that guarantee.
//
// The catalog is closed and enumerable so that trajectory generation can pick
// a profile uniformly at random and tests can exercise every entry.
package easing

import (
	"math"
	"math/rand"
)

// Func is a timing function over normalized progress.
type Func func(t float64) float64

// Entry pairs a timing function with its stable catalog name.
type Entry struct {
	Name string
	Fn   Func
}

func Linear(t float64) float64 { return t }

func InQuad(t float64) float64  { return t * t }
func OutQuad(t float64) float64 { return 1 - (1-t)*(1-t) }
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

func InCubic(t float64) float64  { return t * t * t }
func OutCubic(t float64) float64 { return 1 - math.Pow(1-t, 3) }
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func InQuart(t float64) float64  { return t * t * t * t }
func OutQuart(t float64) float64 { return 1 - math.Pow(1-t, 4) }
func InOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 4)/2
}

func InQuint(t float64) float64  { return t * t * t * t * t }
func OutQuint(t float64) float64 { return 1 - math.Pow(1-t, 5) }
func InOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 5)/2
}

// InSine returns exactly 1 at t=1; 1-cos(pi/2) lands one ulp below it.
func InSine(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Cos(t*math.Pi/2)
}
func OutSine(t float64) float64 { return math.Sin(t * math.Pi / 2) }
func InOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// InExpo returns exactly 0 at t=0; the closed-form 2^(10t-10) does not.
func InExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}

// OutExpo returns exactly 1 at t=1 for the same reason.
func OutExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func InOutExpo(t float64) float64 {
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return math.Pow(2, 20*t-10) / 2
	default:
		return (2 - math.Pow(2, -20*t+10)) / 2
	}
}

func InCirc(t float64) float64  { return 1 - math.Sqrt(1-t*t) }
func OutCirc(t float64) float64 { return math.Sqrt(1 - (t-1)*(t-1)) }
func InOutCirc(t float64) float64 {
	if t < 0.5 {
		return (1 - math.Sqrt(1-math.Pow(2*t, 2))) / 2
	}
	return (math.Sqrt(1-math.Pow(-2*t+2, 2)) + 1) / 2
}

// catalog is the closed set of profiles. Order is stable; Random indexes it.
var catalog = []Entry{
	{"linear", Linear},
	{"inQuad", InQuad},
	{"outQuad", OutQuad},
	{"inOutQuad", InOutQuad},
	{"inCubic", InCubic},
	{"outCubic", OutCubic},
	{"inOutCubic", InOutCubic},
	{"inQuart", InQuart},
	{"outQuart", OutQuart},
	{"inOutQuart", InOutQuart},
	{"inQuint", InQuint},
	{"outQuint", OutQuint},
	{"inOutQuint", InOutQuint},
	{"inSine", InSine},
	{"outSine", OutSine},
	{"inOutSine", InOutSine},
	{"inExpo", InExpo},
	{"outExpo", OutExpo},
	{"inOutExpo", InOutExpo},
	{"inCirc", InCirc},
	{"outCirc", OutCirc},
	{"inOutCirc", InOutCirc},
}

// Catalog returns a copy of the full catalog in stable order.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// ByName looks up a profile by its catalog name.
func ByName(name string) (Entry, bool) {
	for _, e := range catalog {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Random picks a profile uniformly from the catalog.
func Random(rng *rand.Rand) Entry {
	return catalog[rng.Intn(len(catalog))]
}
