// Package editor implements the interaction core of a Bézier curve
// editor: a state machine over a shared control point set, feeding two
// coupled drawing surfaces.
/*

An Editor owns the control points and every mutation of them. Hosts
translate their input events (button clicks, pointer events with
surface-local coordinates) into calls on the editor and drive pending
animation runs from their frame tick; the editor never talks to a real
GUI, only to the render.Surface capability it is handed.

The primary surface shows the control polygon, the control points and the
curve; the secondary surface mirrors the curve's hodograph, the polygon
of tangent vectors, anchored at the surface center (see DualView).

Usage

A host wires two surfaces and feeds events (package qualifiers omitted
for clarity and brevity):

   ed := New(primary, secondary, P(600,400), DefaultSteps)
   ed.EnterAddMode()
   ed.PointerDown(P(120,80))   // on every press,
   ed.Click(P(120,80))         // a press that grabbed no point may add
   ed.Animate()
   for ed.StepRuns() {
      // yield until the next frame tick
   }

Interaction modes follow fixed transitions: AddingPoints is entered by
EnterAddMode and left by Animate or Reset; Dragging is entered by a
pointer press within DragRadius of a control point and left on release.
While dragging, every pointer move replaces the dragged point and redraws
both surfaces synchronously, without animation.

Animation runs work on a snapshot of the points. To keep the surfaces
consistent, starting an animation, grabbing a point and resetting all
cancel whatever runs are still in flight.


BSD License

All rights reserved.

Please refer to the license file for more information.
*/
package editor

import (
	"github.com/R46narok/bezier-hodograph"
	"github.com/R46narok/bezier-hodograph/anim"
	"github.com/R46narok/bezier-hodograph/render"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'editor'
func tracer() tracing.Trace {
	return tracing.Select("editor")
}

// DragRadius is the pick distance for grabbing a control point, in
// surface units.
var DragRadius = 5.0

// Mode is the interaction mode of an editor. Exactly one mode is active
// at a time.
type Mode int

// Interaction modes.
const (
	Idle Mode = iota
	AddingPoints
	Dragging
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "Idle"
	case AddingPoints:
		return "AddingPoints"
	case Dragging:
		return "Dragging"
	}
	return "<invalid mode>"
}

// Editor is the interaction state machine of a Bézier curve editor. It
// owns the control point set; drawing goes to the two surfaces it is
// created with. An Editor is not safe for concurrent use; hosts call it
// from a single event loop.
type Editor struct {
	primary   render.Surface
	secondary render.Surface
	size      bezier.Pair // extent of the surfaces, as (width,height)
	steps     int

	mode    Mode
	dragged int // index of the grabbed point while mode == Dragging
	points  []bezier.Pair
	runs    []*anim.Driver
}

// New creates an editor drawing onto two surfaces of the given extent.
// Both surfaces must be non-nil; size is the (width,height) pair shared
// by them, which anchors the hodograph view at its center. Step counts
// below 1 fall back to anim.DefaultSteps.
func New(primary, secondary render.Surface, size bezier.Pair, steps int) *Editor {
	if steps < 1 {
		steps = anim.DefaultSteps
	}
	return &Editor{
		primary:   primary,
		secondary: secondary,
		size:      size,
		steps:     steps,
		dragged:   -1,
	}
}

// Mode returns the active interaction mode.
func (ed *Editor) Mode() Mode {
	return ed.mode
}

// Points returns the control point set as a copy, never aliased.
func (ed *Editor) Points() []bezier.Pair {
	points := make([]bezier.Pair, len(ed.points))
	copy(points, ed.points)
	return points
}

// EnterAddMode switches the editor to AddingPoints: subsequent clicks on
// the primary surface append control points.
func (ed *Editor) EnterAddMode() {
	tracer().Infof("mode %s -> %s", ed.mode, AddingPoints)
	ed.mode = AddingPoints
}

// Animate leaves AddingPoints and starts two animation runs over the
// current control points: the de Casteljau construction on the primary
// surface, and the construction over the anchored tangent vector polygon
// on the secondary surface. In-flight runs are cancelled first.
//
// Fewer than 2 control points yield degenerate runs which finish without
// drawing a curve; that is accepted behavior, not an error.
func (ed *Editor) Animate() {
	tracer().Infof("mode %s -> %s, animating %d knots", ed.mode, Idle, len(ed.points))
	ed.mode = Idle
	ed.cancelRuns()
	view := NewDualView(ed.points, ed.center())
	ed.runs = []*anim.Driver{
		anim.New(ed.primary, ed.points, ed.steps),
		anim.New(ed.secondary, view.Polygon, ed.steps).WithVectors(view.Vectors, view.Center),
	}
}

// Reset returns the editor to Idle with an empty control point set and
// clears both surfaces. In-flight runs are cancelled first.
func (ed *Editor) Reset() {
	tracer().Infof("mode %s -> %s, reset", ed.mode, Idle)
	ed.mode = Idle
	ed.dragged = -1
	ed.cancelRuns()
	ed.points = nil
	ed.primary.Clear()
	ed.secondary.Clear()
}

// StepRuns advances every pending animation run by one frame and reports
// whether any of them still is in flight. Hosts call this once per frame
// tick.
func (ed *Editor) StepRuns() bool {
	running := false
	for _, run := range ed.runs {
		if run.Step() {
			running = true
		}
	}
	if !running {
		ed.runs = nil
	}
	return running
}

// Animating reports whether an animation run is in flight.
func (ed *Editor) Animating() bool {
	for _, run := range ed.runs {
		if run.State() == anim.Running {
			return true
		}
	}
	return false
}

func (ed *Editor) cancelRuns() {
	for _, run := range ed.runs {
		run.Cancel()
	}
	ed.runs = nil
}

// center is the anchor of the hodograph view, half the surface extent.
func (ed *Editor) center() bezier.Pair {
	return ed.size.Scaled(0.5)
}
