package editor

import (
	"github.com/R46narok/bezier-hodograph"
	"github.com/R46narok/bezier-hodograph/casteljau"
	"github.com/R46narok/bezier-hodograph/polygon"
	"github.com/R46narok/bezier-hodograph/render"
)

// PointerDown handles a pointer press on the primary surface. A press
// within DragRadius of a control point grabs it and enters Dragging; on
// overlap the lowest index wins. A press that grabs nothing leaves the
// mode unchanged.
//
// Grabbing a point cancels in-flight animation runs, so that stale
// snapshots do not keep painting over the drag redraws.
func (ed *Editor) PointerDown(p bezier.Pair) {
	for i, knot := range ed.points {
		if p.Dist(knot) <= DragRadius {
			tracer().Infof("mode %s -> %s, grabbed knot %d", ed.mode, Dragging, i)
			ed.mode = Dragging
			ed.dragged = i
			ed.cancelRuns()
			return
		}
	}
}

// PointerMove handles pointer motion. Outside of Dragging it is a no-op.
// While dragging it replaces the grabbed control point with p and redraws
// both surfaces synchronously: curve, control polygon and hull outline on
// the primary surface, the hodograph view on the secondary one. No
// animation is involved.
func (ed *Editor) PointerMove(p bezier.Pair) {
	if ed.mode != Dragging || ed.dragged < 0 || ed.dragged >= len(ed.points) {
		return
	}
	tracer().Debugf("knot %d dragged to %s", ed.dragged, p)
	ed.points[ed.dragged] = p
	ed.redrawPrimary()
	ed.redrawSecondary()
}

// PointerUp handles a pointer release. It exits Dragging, whatever point
// was grabbed; other modes are unaffected.
func (ed *Editor) PointerUp() {
	if ed.mode != Dragging {
		return
	}
	tracer().Infof("mode %s -> %s, released knot %d", ed.mode, Idle, ed.dragged)
	ed.mode = Idle
	ed.dragged = -1
}

// Click handles a press-and-release on the primary surface. In
// AddingPoints mode it appends a control point at p and immediately draws
// the updated point polygon; the curve is not drawn until an animation is
// triggered. In every other mode a click does nothing, in particular a
// release after dragging never appends a point.
func (ed *Editor) Click(p bezier.Pair) {
	if ed.mode != AddingPoints {
		return
	}
	ed.points = append(ed.points, p)
	tracer().Debugf("knot %d added at %s", len(ed.points)-1, p)
	ed.primary.FilledCircle(p, render.PointRadius, render.PointColor)
	if len(ed.points) >= 2 {
		ed.primary.Polyline(ed.points, render.PolygonStyle)
	}
}

// redrawPrimary repaints the primary surface from scratch: control
// polygon, sampled curve, hull outline and the control points.
func (ed *Editor) redrawPrimary() {
	ed.primary.Clear()
	if len(ed.points) >= 2 {
		ed.primary.Polyline(ed.points, render.PolygonStyle)
		ed.primary.Polyline(casteljau.Sample(ed.points, ed.steps), render.CurveStyle)
	}
	ed.drawHull()
	for _, knot := range ed.points {
		ed.primary.FilledCircle(knot, render.PointRadius, render.PointColor)
	}
}

// drawHull outlines the intersection of the closed control polygon with
// the surface box, making it obvious which part of the polygon's hull
// lies inside the visible area while a point is dragged around.
func (ed *Editor) drawHull() {
	if len(ed.points) < 3 {
		return
	}
	hull := polygon.Clip(
		polygon.FromPairs(ed.points, true),
		polygon.Box(bezier.P(0, 0), ed.size),
	)
	if hull.N() < 2 {
		return
	}
	outline := append(hull.Pairs(), hull.Z(0))
	ed.primary.Polyline(outline, render.HullStyle)
}

// redrawSecondary repaints the hodograph view from scratch.
func (ed *Editor) redrawSecondary() {
	ed.secondary.Clear()
	NewDualView(ed.points, ed.center()).Draw(ed.secondary, ed.steps)
}
