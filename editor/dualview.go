package editor

import (
	"github.com/R46narok/bezier-hodograph"
	"github.com/R46narok/bezier-hodograph/casteljau"
	"github.com/R46narok/bezier-hodograph/render"
)

// DualView is the hodograph companion of a control point set: the curve's
// tangent vectors, and the polygon of their tips when anchored at a fixed
// center. The anchored polygon acts as a pseudo control point set for a
// miniature Bézier construction of its own; the vectors themselves are
// drawn as arrows from the center. The view has no interaction, it is
// purely derived.
type DualView struct {
	Vectors []bezier.Pair // tangent vectors, untranslated
	Polygon []bezier.Pair // vector tips anchored at Center
	Center  bezier.Pair
}

// NewDualView derives the hodograph view of a control point set, anchored
// at center. Fewer than 2 control points have no tangents; the view is
// then empty.
func NewDualView(points []bezier.Pair, center bezier.Pair) *DualView {
	vectors := casteljau.Derivative(points)
	anchored := make([]bezier.Pair, len(vectors))
	for i, v := range vectors {
		anchored[i] = v.Shifted(center)
	}
	return &DualView{Vectors: vectors, Polygon: anchored, Center: center}
}

// Draw renders the complete view onto a surface: the anchored vector
// polygon, the curve it spans sampled over steps, and one arrow per
// tangent vector. An empty view draws nothing.
func (dv *DualView) Draw(surface render.Surface, steps int) {
	if len(dv.Polygon) >= 2 {
		surface.Polyline(dv.Polygon, render.PolygonStyle)
		surface.Polyline(casteljau.Sample(dv.Polygon, steps), render.CurveStyle)
	}
	for _, v := range dv.Vectors {
		render.Arrow(surface, dv.Center, v, render.VectorStyle)
	}
}
