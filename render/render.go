// Package render declares the drawing capability consumed by the Bézier
// curve editor, together with the editor's visual vocabulary (styles for
// curves, scaffolding, markers and tangent vectors).
/*

The editor core never draws pixels itself. It hands polylines, circles and
segments to a Surface, which a host binds to a real drawing backend (see
package board for a Cairo-backed one). A Recorder implements the same
interface purely in memory, so every drawing decision of the core is
testable without a display.

Surfaces are accumulative: drawing operations paint over previous output
until Clear is called. The animated de Casteljau construction relies on
this to leave its trace on the surface frame after frame.


BSD License

All rights reserved.

Please refer to the license file for more information.
*/
package render

import (
	"github.com/R46narok/bezier-hodograph"
)

// Color is an RGB color with channels in [0,1].
type Color struct {
	R, G, B float64
}

// Style bundles the stroke parameters of a line drawing operation. A nil
// or empty Dash pattern means a solid stroke; otherwise Dash holds
// alternating on/off run lengths.
type Style struct {
	Color Color
	Width float64
	Dash  []float64
}

// Surface is the drawing capability consumed by the editor core. Drawing
// never fails from the caller's point of view: implementations report
// problems to the trace and degrade to missing output.
//
// Callers keep degenerate geometry away from a surface: a polyline has at
// least 2 points, circles a positive radius.
type Surface interface {
	// Clear erases the surface to its background.
	Clear()
	// Polyline strokes the open chain through points.
	Polyline(points []bezier.Pair, style Style)
	// FilledCircle fills a disc around center.
	FilledCircle(center bezier.Pair, radius float64, color Color)
	// Segment strokes a single line from a to b.
	Segment(a, b bezier.Pair, style Style)
}

// The editor's visual vocabulary. Hosts may re-style before wiring up an
// editor; the defaults follow the classic chalk-on-board look of Bézier
// demos: red curve, gray scaffolding, dashed green control polygon, blue
// tangent vectors.
var (
	CurveStyle    = Style{Color: Color{R: 0.8}, Width: 2}
	ScaffoldStyle = Style{Color: Color{R: 0.7, G: 0.7, B: 0.7}, Width: 1}
	PolygonStyle  = Style{Color: Color{G: 0.5}, Width: 1, Dash: []float64{4, 4}}
	VectorStyle   = Style{Color: Color{B: 0.8}, Width: 1.5}
	HullStyle     = Style{Color: Color{R: 0.9, G: 0.6, B: 0.1}, Width: 1, Dash: []float64{2, 3}}
)

// Radii and colors for the editor's point markers.
var (
	PointColor   = Color{}
	MarkerColor  = Color{R: 0.8}
	PointRadius  = 4.0
	MarkerRadius = 3.0
)
