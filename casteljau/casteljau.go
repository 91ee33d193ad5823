package casteljau

import (
	"math/cmplx"

	"github.com/R46narok/bezier-hodograph"
)

// Subdivide runs de Casteljau's construction on a control polygon for a
// given parameter t and returns every stage of it, the original polygon
// included as level 0.
//
// The input slice is copied, never aliased or modified; subdividing is a
// pure function of its arguments. A polygon of n points yields n levels,
// the k-th holding n−k points. An empty polygon yields nil (and an entry
// in the trace); a single knot is its own curve point.
//
// Subdivide will trace the complete construction using log-level Debug.
//
// t is not clamped. For t outside [0,1] the blends extrapolate, see the
// package documentation.
func Subdivide(points []bezier.Pair, t float64) Levels {
	if len(points) == 0 {
		tracer().Errorf("de Casteljau construction over empty polygon")
		return nil
	}
	levels := make(Levels, 0, len(points))
	level := make([]bezier.Pair, len(points))
	copy(level, points)
	levels = append(levels, level)
	for len(level) > 1 {
		level = blend(level, t)
		levels = append(levels, level)
	}
	tracer().Debugf("de Casteljau at t=%.4g:\n%s", t, AsString(levels))
	return levels
}

// blend replaces a polygon by the polygon of affine combinations
// (1−t)·P.i + t·P.(i+1) of its adjacent points.
func blend(points []bezier.Pair, t float64) []bezier.Pair {
	next := make([]bezier.Pair, len(points)-1)
	for i := 0; i < len(next); i++ {
		next[i] = points[i].Lerp(points[i+1], t)
	}
	return next
}

// Eval returns the point B(t) of the Bézier curve spanned by a control
// polygon. It is shorthand for Subdivide(points, t).Point() without
// retaining the intermediate levels.
func Eval(points []bezier.Pair, t float64) bezier.Pair {
	if len(points) == 0 {
		tracer().Errorf("de Casteljau construction over empty polygon")
		return bezier.Pair(cmplx.NaN())
	}
	level := make([]bezier.Pair, len(points))
	copy(level, points)
	for len(level) > 1 {
		level = blend(level, t)
	}
	return level[0]
}
