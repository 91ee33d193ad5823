package casteljau

import (
	"github.com/R46narok/bezier-hodograph"
)

// Derivative returns the control polygon of the hodograph of a Bézier
// curve: the successive differences of the control points,
//
//	D.i = P.(i+1) − P.i
//
// The differences are returned unscaled. The analytic first derivative of
// a degree-n curve is n·D; see the package documentation for why the
// degree factor is left to the caller.
//
// A polygon of fewer than two knots has no differences and yields nil.
func Derivative(points []bezier.Pair) []bezier.Pair {
	if len(points) < 2 {
		return nil
	}
	diffs := make([]bezier.Pair, len(points)-1)
	for i := 0; i < len(diffs); i++ {
		diffs[i] = points[i+1] - points[i]
	}
	return diffs
}
