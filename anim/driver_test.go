package anim

import (
	"testing"

	"github.com/R46narok/bezier-hodograph"
	"github.com/R46narok/bezier-hodograph/render"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func quad() []bezier.Pair {
	return []bezier.Pair{bezier.P(0, 0), bezier.P(100, 0), bezier.P(100, 100)}
}

// runAll steps a driver to completion and returns the number of frames.
func runAll(d *Driver) int {
	n := 0
	for d.Step() {
		n++
	}
	return n
}

func TestDriverFrameCount(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := &render.Recorder{}
	drv := New(rec, quad(), 4)
	// t visits 0, 0.25, 0.5, 0.75, 1, then exceeds 1.
	if got := runAll(drv); got != 5 {
		t.Fatalf("got %d frames, want 5", got)
	}
	if drv.State() != Done {
		t.Errorf("run state = %s, want Done", drv.State())
	}
	ops := len(rec.Ops)
	if drv.Step() {
		t.Errorf("finished run claims to be running again")
	}
	if len(rec.Ops) != ops {
		t.Errorf("finished run kept drawing: %d new ops", len(rec.Ops)-ops)
	}
}

func TestDriverTimeAdvances(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := &render.Recorder{}
	drv := New(rec, quad(), 4)
	if drv.T() != 0 {
		t.Fatalf("fresh run starts at t=%g, want 0", drv.T())
	}
	drv.Step()
	if drv.T() != 0.25 {
		t.Errorf("after one frame t=%g, want 0.25", drv.T())
	}
	drv.Step()
	if drv.T() != 0.5 {
		t.Errorf("after two frames t=%g, want 0.5", drv.T())
	}
}

// 1/150 is not exactly representable, so t accumulates to almost-1 rather
// than 1. The run still owes its caller the inclusive final frame.
func TestDriverInclusiveFinalFrame(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := &render.Recorder{}
	drv := New(rec, quad(), DefaultSteps)
	if got, want := runAll(drv), DefaultSteps+1; got != want {
		t.Fatalf("got %d frames, want %d", got, want)
	}
	if got, want := rec.Count(render.OpCircle), DefaultSteps+1; got != want {
		t.Errorf("got %d markers, want one per frame = %d", got, want)
	}
	marker, _ := rec.Last(render.OpCircle)
	if !marker.Points[0].Equal(bezier.P(100, 100)) {
		t.Errorf("final marker sits at %s, want the curve endpoint", marker.Points[0])
	}
	if drv.T() <= 1 {
		t.Errorf("finished run stopped at t=%g", drv.T())
	}
}

func TestDriverFinalCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := &render.Recorder{}
	runAll(New(rec, quad(), 4))
	curve, ok := rec.Last(render.OpPolyline)
	if !ok {
		t.Fatal("no polyline rendered at all")
	}
	if len(curve.Points) != 5 {
		t.Fatalf("final curve has %d points, want 5", len(curve.Points))
	}
	if !curve.Points[0].Equal(bezier.P(0, 0)) || !curve.Points[4].Equal(bezier.P(100, 100)) {
		t.Errorf("final curve spans %s..%s", curve.Points[0], curve.Points[4])
	}
	if curve.Style.Color != render.CurveStyle.Color {
		t.Errorf("final curve drawn as %+v", curve.Style.Color)
	}
}

func TestDriverAccumulates(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := &render.Recorder{}
	runAll(New(rec, quad(), 4))
	if rec.Clears != 0 {
		t.Errorf("animation cleared the surface %d times", rec.Clears)
	}
	if got, want := rec.Count(render.OpCircle), 5; got != want {
		t.Errorf("got %d curve point markers, want one per frame = %d", got, want)
	}
}

func TestDriverMarkerTracksCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := &render.Recorder{}
	drv := New(rec, quad(), 2)
	drv.Step()
	marker, ok := rec.Last(render.OpCircle)
	if !ok {
		t.Fatal("first frame rendered no marker")
	}
	if !marker.Points[0].Equal(bezier.P(0, 0)) {
		t.Errorf("marker at t=0 sits at %s, want first knot", marker.Points[0])
	}
	drv.Step()
	marker, _ = rec.Last(render.OpCircle)
	if !marker.Points[0].Equal(bezier.P(75, 25)) {
		t.Errorf("marker at t=0.5 sits at %s, want (75,25)", marker.Points[0])
	}
}

func TestDriverSnapshotIsolation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := &render.Recorder{}
	points := quad()
	drv := New(rec, points, 2)
	points[2] = bezier.P(-5, -5)
	runAll(drv)
	curve, _ := rec.Last(render.OpPolyline)
	last := curve.Points[len(curve.Points)-1]
	if !last.Equal(bezier.P(100, 100)) {
		t.Errorf("run follows live edits, curve ends at %s", last)
	}
}

func TestDriverCancel(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := &render.Recorder{}
	drv := New(rec, quad(), 4)
	drv.Step()
	drv.Step()
	before := len(rec.Ops)
	drv.Cancel()
	if drv.State() != Done {
		t.Errorf("cancelled run state = %s, want Done", drv.State())
	}
	if drv.Step() {
		t.Errorf("cancelled run claims to be running")
	}
	if len(rec.Ops) != before {
		t.Errorf("cancelled run drew %d more ops, final render included?", len(rec.Ops)-before)
	}
}

func TestDriverVectorOverlay(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := &render.Recorder{}
	vectors := []bezier.Pair{bezier.P(10, 0), bezier.P(0, 10)}
	center := bezier.P(50, 50)
	translated := []bezier.Pair{center + vectors[0], center + vectors[1]}
	drv := New(rec, translated, 2).WithVectors(vectors, center)
	drv.Step()
	// Two arrows per frame, each a shaft plus two barbs.
	if got, want := rec.Count(render.OpSegment), 6; got != want {
		t.Errorf("first frame drew %d segments, want %d", got, want)
	}
	runAll(drv)
	overlay, ok := rec.Last(render.OpPolyline)
	if !ok {
		t.Fatal("finished run rendered no polyline")
	}
	if overlay.Style.Color != render.PolygonStyle.Color {
		t.Errorf("static overlay drawn as %+v, want the polygon style", overlay.Style.Color)
	}
	if len(overlay.Points) != 2 ||
		!overlay.Points[0].Equal(translated[0]) || !overlay.Points[1].Equal(translated[1]) {
		t.Errorf("overlay polygon = %v, want the anchored vector tips", overlay.Points)
	}
}

func TestDriverSinglePoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := &render.Recorder{}
	knot := bezier.P(30, 40)
	drv := New(rec, []bezier.Pair{knot}, 2)
	if got := runAll(drv); got != 3 {
		t.Fatalf("got %d frames, want 3", got)
	}
	if got := rec.Count(render.OpCircle); got != 3 {
		t.Errorf("got %d markers, want 3", got)
	}
	marker, _ := rec.Last(render.OpCircle)
	if !marker.Points[0].Equal(knot) {
		t.Errorf("marker wandered to %s, want the only knot", marker.Points[0])
	}
	if drv.State() != Done {
		t.Errorf("run state = %s, want Done", drv.State())
	}
}

func TestDriverEmptyPolygon(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := &render.Recorder{}
	drv := New(rec, nil, 4)
	if drv.Step() {
		t.Errorf("empty run claims to be running")
	}
	if len(rec.Ops) != 0 {
		t.Errorf("empty run drew %d ops", len(rec.Ops))
	}
	if drv.State() != Done {
		t.Errorf("empty run state = %s, want Done", drv.State())
	}
}
