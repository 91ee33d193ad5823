package casteljau

import (
	"math/cmplx"

	"github.com/R46narok/bezier-hodograph"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bezier'
func tracer() tracing.Trace {
	return tracing.Select("bezier")
}

// Levels holds every stage of a de Casteljau construction. Level 0 is the
// original control polygon; each subsequent level holds the affine blends of
// adjacent points of the previous one and therefore has one point fewer.
// The last level consists of a single point, the curve point B(t).
type Levels [][]bezier.Pair

// N returns the number of construction levels.
func (l Levels) N() int {
	return len(l)
}

// Level returns the polygon at stage k of the construction, stage 0 being
// the original control polygon. Out-of-range stages yield nil.
func (l Levels) Level(k int) []bezier.Pair {
	if k < 0 || k >= len(l) {
		return nil
	}
	return l[k]
}

// Point returns the point on the curve, i.e. the single point of the last
// construction level. An empty construction has no such point and yields an
// invalid pair (checkable with Pair.IsValid).
func (l Levels) Point() bezier.Pair {
	if len(l) == 0 || len(l[len(l)-1]) == 0 {
		return bezier.Pair(cmplx.NaN())
	}
	return l[len(l)-1][0]
}
