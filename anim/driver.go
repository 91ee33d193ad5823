// Package anim animates de Casteljau's construction of a Bézier curve,
// one frame per external scheduler tick.
/*

A Driver owns the time parameter t of one animation run. Each call to Step
renders a single frame onto the run's surface: the construction scaffolding
for the current t, the curve trace accumulated so far, and a marker at the
current curve point. t then advances by 1/steps. Once t exceeds 1 the run
finishes with one final render of the complete curve and Step keeps
returning false.

The driver does not schedule itself. Hosts drive it from whatever frame
source they have, typically a GUI redraw tick:

   drv := anim.New(surface, points, anim.DefaultSteps)
   ...
   for drv.Step() {
      // yield to the scheduler until the next tick
   }

Keeping the suspension point external makes a run fully deterministic and
testable: stepping a driver against a recording surface replays the exact
frame sequence a user would see.

A run works on a snapshot of the control points taken at construction
time. Editing points while a run is in flight therefore never changes the
animated curve; editors are expected to Cancel the run instead. A
cancelled run stops silently, skipping the final render.

Runs may visualize a hodograph: WithVectors attaches tangent vectors that
are drawn as arrows from a fixed anchor each frame, plus a static polygon
overlay when the run finishes.


BSD License

All rights reserved.

Please refer to the license file for more information.
*/
package anim

import (
	"github.com/R46narok/bezier-hodograph"
	"github.com/R46narok/bezier-hodograph/casteljau"
	"github.com/R46narok/bezier-hodograph/render"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'editor'
func tracer() tracing.Trace {
	return tracing.Select("editor")
}

// DefaultSteps is the canonical frame count of an animation run: t
// advances by 1/DefaultSteps per frame.
const DefaultSteps = 150

// RunState is the lifecycle state of an animation run.
type RunState int

// An animation run is Running until its parameter exceeds 1 or it is
// cancelled; then it is Done, terminally.
const (
	Running RunState = iota
	Done
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "Running"
	case Done:
		return "Done"
	}
	return "<invalid run state>"
}

// Driver animates one de Casteljau construction. Create one with New,
// optionally attach tangent vectors with WithVectors, then call Step once
// per frame tick.
type Driver struct {
	surface   render.Surface
	points    []bezier.Pair // snapshot of the control points
	vectors   []bezier.Pair // optional tangent vectors, untranslated
	center    bezier.Pair   // anchor for the vector arrows
	steps     int
	t         float64
	state     RunState
	cancelled bool
	trace     []bezier.Pair // curve points drawn so far
}

// New creates an animation run over a control polygon, drawing onto
// surface. The polygon is copied at this point; later edits do not affect
// the run. Step counts below 1 fall back to DefaultSteps.
func New(surface render.Surface, points []bezier.Pair, steps int) *Driver {
	if steps < 1 {
		steps = DefaultSteps
	}
	snapshot := make([]bezier.Pair, len(points))
	copy(snapshot, points)
	tracer().Infof("animation run over %d knots in %d steps", len(snapshot), steps)
	return &Driver{
		surface: surface,
		points:  snapshot,
		steps:   steps,
		trace:   make([]bezier.Pair, 0, steps+1),
	}
}

// WithVectors attaches tangent vectors to a run. Each frame the vectors
// are drawn as arrows anchored at center; the finished run additionally
// re-strokes its control polygon as a static overlay. The vector slice is
// copied. Part of builder functionality.
func (d *Driver) WithVectors(vectors []bezier.Pair, center bezier.Pair) *Driver {
	d.vectors = make([]bezier.Pair, len(vectors))
	copy(d.vectors, vectors)
	d.center = center
	return d
}

// State returns the lifecycle state of the run.
func (d *Driver) State() RunState {
	return d.state
}

// T returns the current time parameter of the run.
func (d *Driver) T() float64 {
	return d.t
}

// Cancel stops a run. Subsequent calls to Step return false without
// drawing anything, the final full-curve render included.
func (d *Driver) Cancel() {
	if d.state == Done {
		return
	}
	tracer().Debugf("animation run cancelled at t=%.4g", d.t)
	d.cancelled = true
	d.state = Done
}

// Step renders the next frame of the run and reports whether the run is
// still in flight. The first false return has rendered the finished
// curve; repeated calls after that are no-ops.
//
// An empty control polygon finishes immediately, drawing nothing.
func (d *Driver) Step() bool {
	if d.state == Done {
		return false
	}
	if len(d.points) == 0 {
		d.state = Done
		return false
	}
	if d.t > 1 && !bezier.Is1(d.t) {
		d.finish()
		return false
	}
	levels := casteljau.Subdivide(d.points, d.t)
	for k := 0; k < levels.N(); k++ {
		level := levels.Level(k)
		if len(level) < 2 {
			continue
		}
		style := render.ScaffoldStyle
		if k == 0 {
			style = render.PolygonStyle
		}
		d.surface.Polyline(level, style)
	}
	d.trace = append(d.trace, levels.Point())
	if len(d.trace) >= 2 {
		d.surface.Polyline(d.trace, render.CurveStyle)
	}
	d.surface.FilledCircle(levels.Point(), render.MarkerRadius, render.MarkerColor)
	d.drawVectors()
	d.t += 1 / float64(d.steps)
	return true
}

// finish renders the complete curve once, plus the static vector overlay
// if vectors are attached.
func (d *Driver) finish() {
	d.state = Done
	curve := casteljau.Sample(d.points, d.steps)
	if len(curve) >= 2 {
		d.surface.Polyline(curve, render.CurveStyle)
	}
	if len(d.vectors) > 0 && len(d.points) >= 2 {
		d.surface.Polyline(d.points, render.PolygonStyle)
	}
	d.drawVectors()
	tracer().Debugf("animation run finished after %d frames", len(d.trace))
}

func (d *Driver) drawVectors() {
	for _, v := range d.vectors {
		render.Arrow(d.surface, d.center, v, render.VectorStyle)
	}
}
