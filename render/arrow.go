package render

import (
	"github.com/R46narok/bezier-hodograph"
)

// Arrow geometry: barb length in surface units and barb angle against the
// shaft.
var (
	ArrowBarb  = 8.0
	ArrowAngle = 25 * bezier.Deg2Rad
)

// Arrow strokes the vector v anchored at from, with two barbs at the tip.
// A zero vector degenerates to nothing but the (invisible) shaft.
func Arrow(s Surface, from, v bezier.Pair, style Style) {
	tip := from + v
	s.Segment(from, tip, style)
	mag := bezier.Origin.Dist(v)
	if bezier.Is0(mag) {
		return
	}
	barb := v.Scaled(-ArrowBarb / mag)
	s.Segment(tip, tip+barb.Rotated(ArrowAngle), style)
	s.Segment(tip, tip+barb.Rotated(-ArrowAngle), style)
}
