package curves

import "math"

// SampleBezier evaluates the Bernstein-polynomial Bezier curve of degree
// len(controls)-1 and returns n points along it.
//
// The first and last output points copy the endpoint control points verbatim
// instead of evaluating the polynomial at t=0 and t=1. Evaluating through the
// basis accumulates floating-point deviation at the boundaries, and exact
// endpoint preservation is a correctness requirement for every consumer of
// these paths. Interior points are evaluated at t=i/(n-1). Complexity O(n*k).
func SampleBezier(controls []Point2D, n int) ([]Point2D, error) {
	if n < 2 {
		return nil, ErrDegenerateSampleCount
	}
	if len(controls) < 2 {
		return nil, validationErrorf("control points", "need at least 2, got %d", len(controls))
	}
	for i, c := range controls {
		if !c.finite() {
			return nil, validationErrorf("control points", "non-finite coordinate at index %d", i)
		}
	}

	degree := len(controls) - 1
	coeff := binomials(degree)

	points := make([]Point2D, n)
	points[0] = controls[0]
	points[n-1] = controls[len(controls)-1]

	for i := 1; i < n-1; i++ {
		t := float64(i) / float64(n-1)
		points[i] = evalBernstein(controls, coeff, t)
	}
	return points, nil
}

// binomials returns the row of binomial coefficients C(n, 0..n) as floats,
// built with the multiplicative recurrence to stay exact well past the knot
// counts the generator produces.
func binomials(n int) []float64 {
	row := make([]float64, n+1)
	row[0] = 1
	for j := 1; j <= n; j++ {
		row[j] = row[j-1] * float64(n-j+1) / float64(j)
	}
	return row
}

// evalBernstein computes sum_j C(n,j) * t^j * (1-t)^(n-j) * P_j.
func evalBernstein(controls []Point2D, coeff []float64, t float64) Point2D {
	n := len(controls) - 1
	omt := 1 - t

	var acc Point2D
	for j, p := range controls {
		basis := coeff[j] * math.Pow(t, float64(j)) * math.Pow(omt, float64(n-j))
		acc = acc.Add(p.Mul(basis))
	}
	return acc
}
