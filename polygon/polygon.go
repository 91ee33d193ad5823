// Package polygon implements knot polygons, open or closed, together with
// boolean clipping of closed polygons.
/*

A Polygon is the drawable companion of a Bézier control polygon: editors
draw the open chain of control knots as scaffolding, and clip the closed
chain against a viewport box to obtain a hull outline.

Clipping is done with the polyclip-go library by Mateusz Czapliński, an
implementation of

   A new algorithm for computing Boolean operations on polygons --
   F. Martínez, A.J. Rueda, F.R. Feito
   Computers & Geosciences 35 (2009)

Usage

Polygons are built with a builder pattern (package qualifiers omitted for
clarity and brevity):

   pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()

or in bulk from an existing knot slice:

   pg := FromPairs(knots, true)

Clip intersects two closed polygons:

   hull := Clip(pg, Box(P(0,100), P(100,0)))


BSD License

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"github.com/R46narok/bezier-hodograph"
	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
)

// L writes to trace with key 'bezier'
func L() tracing.Trace {
	return tracing.Select("bezier")
}

// Polygon is a chain of knots, open or closed into a cycle. Create one
// with NullPolygon, Box or FromPairs.
type Polygon struct {
	knots []bezier.Pair // knot i
	cycle bool          // is this polygon closed ?
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls.
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a knot to a polygon. Part of builder functionality.
func (pg *Polygon) Knot(p bezier.Pair) *Polygon {
	pg.knots = append(pg.knots, p)
	return pg
}

// End finishes an open polygon. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// Box creates a closed polygon of the four corners of a rectangle, given
// as north-west and south-east corner.
func Box(nw, se bezier.Pair) *Polygon {
	return NullPolygon().
		Knot(nw).
		Knot(bezier.P(se.X(), nw.Y())).
		Knot(se).
		Knot(bezier.P(nw.X(), se.Y())).
		Cycle()
}

// FromPairs creates a polygon from a slice of knots, which is copied,
// never aliased.
func FromPairs(knots []bezier.Pair, cyclic bool) *Polygon {
	pg := &Polygon{
		knots: make([]bezier.Pair, len(knots)),
		cycle: cyclic,
	}
	copy(pg.knots, knots)
	return pg
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.knots)
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// Z returns the knot at position (i mod N). The empty polygon has no
// knots at all; Z then yields origin (and an entry in the trace).
func (pg *Polygon) Z(i int) bezier.Pair {
	n := pg.N()
	if n == 0 {
		L().Errorf("knot %d of empty polygon", i)
		return bezier.Origin
	}
	if i < 0 || i >= n {
		i = ((i % n) + n) % n
	}
	return pg.knots[i]
}

// Pairs returns the knots of a polygon as a slice, which is copied, never
// aliased.
func (pg *Polygon) Pairs() []bezier.Pair {
	knots := make([]bezier.Pair, len(pg.knots))
	copy(knots, pg.knots)
	return knots
}

// Area returns the signed area of a polygon, treating it as closed
// regardless of IsCycle. Counterclockwise knot order yields a positive
// area. Collinear knots yield 0.
func (pg *Polygon) Area() float64 {
	var a float64
	n := pg.N()
	for i := 0; i < n; i++ {
		p, q := pg.knots[i], pg.knots[(i+1)%n]
		a += p.X()*q.Y() - q.X()*p.Y()
	}
	return a / 2
}

// Clip intersects two closed polygons and returns the closed outline of
// the intersection. Polygons with fewer than 3 knots or without area have
// no interior; Clip then yields the empty polygon (and an entry in the
// trace). If the intersection falls apart into several pieces, only the
// first one is returned.
func Clip(pg, clip *Polygon) *Polygon {
	if pg.N() < 3 || clip.N() < 3 {
		L().Errorf("clipping needs closed polygons, got %d and %d knots", pg.N(), clip.N())
		return NullPolygon()
	}
	if bezier.Is0(pg.Area()) || bezier.Is0(clip.Area()) {
		L().Debugf("clipping degenerate polygon without area")
		return NullPolygon()
	}
	result := contour(pg).Construct(polyclip.INTERSECTION, contour(clip))
	if len(result) == 0 {
		return NullPolygon()
	}
	out := NullPolygon()
	for _, pt := range result[0] {
		out.Knot(bezier.P(pt.X, pt.Y))
	}
	return out.Cycle()
}

// contour converts a polygon into a single-contour polyclip polygon.
func contour(pg *Polygon) polyclip.Polygon {
	c := make(polyclip.Contour, pg.N())
	for i, knot := range pg.knots {
		c[i] = polyclip.Point{X: knot.X(), Y: knot.Y()}
	}
	return polyclip.Polygon{c}
}

// AsString returns a polygon as a (debugging) string, e.g.
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	var s string
	for i, knot := range pg.knots {
		if i > 0 {
			s += " -- "
		}
		s += knot.String()
	}
	if pg.cycle {
		s += " -- cycle"
	}
	return s
}
