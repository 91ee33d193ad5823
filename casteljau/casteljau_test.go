package casteljau

import (
	"testing"

	"github.com/R46narok/bezier-hodograph"
	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// A quadratic control polygon with known construction values.
func quad() []bezier.Pair {
	return []bezier.Pair{bezier.P(0, 0), bezier.P(100, 0), bezier.P(100, 100)}
}

func TestSubdivideLevelCounts(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for n := 1; n <= 5; n++ {
		points := make([]bezier.Pair, n)
		for i := range points {
			points[i] = bezier.P(float64(i), float64(i*i))
		}
		levels := Subdivide(points, 0.3)
		if levels.N() != n {
			t.Fatalf("polygon of %d knots: got %d levels, want %d", n, levels.N(), n)
		}
		for k := 0; k < levels.N(); k++ {
			if got, want := len(levels.Level(k)), n-k; got != want {
				t.Fatalf("polygon of %d knots: level %d has %d points, want %d", n, k, got, want)
			}
		}
	}
}

func TestSubdivideEndpoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points := quad()
	if pt := Subdivide(points, 0).Point(); !pt.Equal(points[0]) {
		t.Errorf("B(0) = %s, want first knot %s", pt, points[0])
	}
	if pt := Subdivide(points, 1).Point(); !pt.Equal(points[2]) {
		t.Errorf("B(1) = %s, want last knot %s", pt, points[2])
	}
}

func TestSubdivideQuadratic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	levels := Subdivide(quad(), 0.5)
	t.Logf("construction:\n%s", AsString(levels))
	want := []bezier.Pair{bezier.P(50, 0), bezier.P(100, 50)}
	if diff := cmp.Diff(want, levels.Level(1)); diff != "" {
		t.Errorf("level 1 mismatch (-want +got):\n%s", diff)
	}
	if pt := levels.Point(); !pt.Equal(bezier.P(75, 25)) {
		t.Errorf("B(0.5) = %s, want (75,25)", pt)
	}
}

func TestSubdivideBlendsAdjacent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points := []bezier.Pair{
		bezier.P(0, 0), bezier.P(40, 80), bezier.P(120, 80), bezier.P(160, 0),
	}
	level := Subdivide(points, 0.3).Level(1)
	for i := range level {
		if want := points[i].Lerp(points[i+1], 0.3); !level[i].Equal(want) {
			t.Errorf("level-1 point %d = %s, want the blend %s", i, level[i], want)
		}
	}
}

func TestSubdivideSingleKnot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	levels := Subdivide([]bezier.Pair{bezier.P(7, -3)}, 0.9)
	if levels.N() != 1 {
		t.Fatalf("got %d levels, want 1", levels.N())
	}
	if pt := levels.Point(); !pt.Equal(bezier.P(7, -3)) {
		t.Errorf("a single knot is its own curve, got %s", pt)
	}
}

func TestSubdivideEmpty(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	levels := Subdivide(nil, 0.5)
	if levels != nil {
		t.Errorf("empty polygon: got %v, want nil", levels)
	}
	if levels.Point().IsValid() {
		t.Errorf("empty construction returned a valid curve point")
	}
}

func TestSubdivideExtrapolates(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	line := []bezier.Pair{bezier.P(0, 0), bezier.P(10, 0)}
	if pt := Subdivide(line, 2).Point(); !pt.Equal(bezier.P(20, 0)) {
		t.Errorf("B(2) = %s, want (20,0)", pt)
	}
}

func TestSubdividePure(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points := quad()
	first := Subdivide(points, 0.25)
	second := Subdivide(points, 0.25)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated construction differs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(quad(), points); diff != "" {
		t.Errorf("input polygon was modified (-want +got):\n%s", diff)
	}
	first.Level(0)[0] = bezier.P(99, 99)
	if pt := Subdivide(points, 0.25).Point(); !pt.Equal(second.Point()) {
		t.Errorf("construction aliases its input")
	}
}

func TestEvalMatchesSubdivide(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points := quad()
	for _, tc := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got, want := Eval(points, tc), Subdivide(points, tc).Point(); !got.Equal(want) {
			t.Errorf("Eval(%.2f) = %s, Subdivide yields %s", tc, got, want)
		}
	}
	if Eval(nil, 0.5).IsValid() {
		t.Errorf("Eval over empty polygon returned a valid point")
	}
}

func TestDerivativeCounts(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if d := Derivative(nil); d != nil {
		t.Errorf("derivative of empty polygon: got %v, want nil", d)
	}
	if d := Derivative([]bezier.Pair{bezier.P(1, 1)}); d != nil {
		t.Errorf("derivative of single knot: got %v, want nil", d)
	}
	for n := 2; n <= 5; n++ {
		points := make([]bezier.Pair, n)
		for i := range points {
			points[i] = bezier.P(float64(i*i), float64(i))
		}
		if got, want := len(Derivative(points)), n-1; got != want {
			t.Errorf("polygon of %d knots: got %d difference vectors, want %d", n, got, want)
		}
	}
}

func TestDerivativeDifferences(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	line := []bezier.Pair{bezier.P(0, 0), bezier.P(10, 0)}
	want := []bezier.Pair{bezier.P(10, 0)}
	if diff := cmp.Diff(want, Derivative(line)); diff != "" {
		t.Errorf("derivative mismatch (-want +got):\n%s", diff)
	}
	// Differences stay unscaled: a degree-2 polygon yields the plain
	// vectors, not 2 times them.
	want = []bezier.Pair{bezier.P(100, 0), bezier.P(0, 100)}
	if diff := cmp.Diff(want, Derivative(quad())); diff != "" {
		t.Errorf("derivative mismatch (-want +got):\n%s", diff)
	}
}

func TestDerivativePure(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points := quad()
	if diff := cmp.Diff(Derivative(points), Derivative(points)); diff != "" {
		t.Errorf("repeated derivative differs:\n%s", diff)
	}
	if diff := cmp.Diff(quad(), points); diff != "" {
		t.Errorf("input polygon was modified (-want +got):\n%s", diff)
	}
}

func TestSampleSpansCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points := quad()
	curve := Sample(points, 10)
	if got, want := len(curve), 11; got != want {
		t.Fatalf("got %d samples, want %d", got, want)
	}
	if !curve[0].Equal(points[0]) {
		t.Errorf("first sample %s, want first knot %s", curve[0], points[0])
	}
	if !curve[10].Equal(points[2]) {
		t.Errorf("last sample %s, want last knot %s", curve[10], points[2])
	}
	if !curve[5].Equal(bezier.P(75, 25)) {
		t.Errorf("middle sample %s, want (75,25)", curve[5])
	}
}

func TestSampleDegenerateSteps(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if got := Sample(quad(), 0); len(got) != 2 {
		t.Errorf("steps 0: got %d samples, want 2", len(got))
	}
	if got := Sample(nil, 10); got != nil {
		t.Errorf("empty polygon: got %v, want nil", got)
	}
}

func TestAsStringSnapshot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	got := AsString(Subdivide(quad(), 0.5))
	want := "(0,0) (100,0) (100,100)\n" +
		"  > (50.0000,0.0000) (100.0000,50.0000)\n" +
		"  > (75.0000,25.0000)"
	if got != want {
		t.Errorf("AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
}
