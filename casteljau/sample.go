package casteljau

import (
	"github.com/R46narok/bezier-hodograph"
	"gonum.org/v1/gonum/floats"
)

// Sample evaluates the curve spanned by a control polygon at steps+1
// parameters spanning [0,1] inclusively and returns the curve points in
// order, ready to be drawn as a polyline. Both endpoints of the curve are
// always part of the result. Step counts below 1 are raised to 1.
//
// An empty polygon yields nil (and an entry in the trace).
func Sample(points []bezier.Pair, steps int) []bezier.Pair {
	if len(points) == 0 {
		tracer().Errorf("sampling a curve over an empty polygon")
		return nil
	}
	if steps < 1 {
		steps = 1
	}
	ts := floats.Span(make([]float64, steps+1), 0, 1)
	curve := make([]bezier.Pair, len(ts))
	for i, t := range ts {
		curve[i] = Eval(points, t)
	}
	return curve
}
