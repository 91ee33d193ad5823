// Package casteljau evaluates Bézier curves of arbitrary degree. It provides
// an implementation of de Casteljau's subdivision algorithm together with the
// hodograph (derivative) control polygon.
/*

De Casteljau's algorithm constructs the point B(t) on a Bézier curve by
repeated affine blending of adjacent control points: a polygon of n points
is replaced by one of n−1 points, each

   P'.i = (1−t)·P.i + t·P.(i+1)

until a single point remains. Besides being numerically robust, the
construction is geometrically meaningful: every intermediate polygon is a
stage of the construction, and retaining all of them lets a caller draw the
complete scaffolding of the evaluation. This package therefore returns all
levels, not just the final point.

The primary sources of information are:

   Courbes et surfaces à pôles -- Paul de Casteljau
   Technical report, A. Citroën, Paris 1963

and the thorough practical treatment in

   (1) A Primer on Bézier Curves
       https://pomax.github.io/bezierinfo/

   (2) Curves and Surfaces for CAGD: A Practical Guide -- Gerald Farin
       Morgan Kaufmann, 5th edition, 2001

This Go implementation is not the result of transcoding any particular
implementation; notation sticks closely to the affine-blend formulation
found in the literature.

Usage

Clients hand a control polygon and a parameter t to Subdivide and receive
all construction levels (package qualifiers omitted for clarity and
brevity):

   levels := Subdivide([]Pair{P(0,0), P(100,0), P(100,100)}, 0.5)

Level 0 is the original polygon, every subsequent level has one point
fewer, and the last level holds exactly the curve point:

   (0,0) (100,0) (100,100)
     > (50.0000,0.0000) (100.0000,50.0000)
     > (75.0000,25.0000)

Eval is shorthand for the final level's point, and Sample walks t over an
inclusive span to produce a drawable polyline of the whole curve.

The hodograph of a Bézier curve (the curve traced by its tangent vectors)
is itself a Bézier curve, defined by the successive differences of the
control points. Derivative returns these difference vectors.

Caveats

(1) Derivative returns raw differences P.(i+1) − P.i. The analytic first
derivative of a degree-n curve is n times this polygon (n−1 points for n+1
controls). The editor built on this package visualizes raw differences on
purpose, so this package does not apply the degree factor. Callers wanting
the true derivative magnitude must scale themselves.

(2) Subdivide does not clamp t. The affine blend is defined for every real
t; values outside [0,1] extrapolate the curve's construction. Callers that
need a point ON the curve must clamp.


BSD License

All rights reserved.

Please refer to the license file for more information.
*/
package casteljau

// AsString returns all stages of a de Casteljau construction as a
// (debugging) string. The string contains newlines if the construction has
// more than one level. Knots of the original polygon are printed in compact
// form, computed points with 4 decimal places.
//
// Example, a quadratic polygon subdivided at t=0.5:
//
//	(0,0) (100,0) (100,100)
//	  > (50.0000,0.0000) (100.0000,50.0000)
//	  > (75.0000,25.0000)
func AsString(levels Levels) string {
	var s string
	for k, level := range levels {
		if k > 0 {
			s += "\n  > "
		}
		for i, pt := range level {
			if i > 0 {
				s += " "
			}
			s += ptstring(pt, k > 0)
		}
	}
	return s
}
