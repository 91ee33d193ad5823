package render

import (
	"github.com/R46narok/bezier-hodograph"
)

// OpKind enumerates the drawing operations a Recorder captures. Clear is
// not an operation: it empties the log and bumps the Clears counter.
type OpKind int

// Recorded drawing operations.
const (
	OpPolyline OpKind = iota
	OpCircle
	OpSegment
)

// Op is one recorded drawing operation. Points holds the polyline chain,
// the two endpoints of a segment, or the single center of a circle.
type Op struct {
	Kind   OpKind
	Points []bezier.Pair
	Radius float64
	Style  Style
	Color  Color
}

// Recorder is a Surface that draws into memory. It captures every
// operation in order, so tests can inspect what an editor or animation
// run would have put on screen. The zero value is an empty, ready to use
// surface.
type Recorder struct {
	Ops    []Op // operations since the last Clear
	Clears int  // number of Clear calls over the recorder's lifetime
}

// Clear implements Surface. It empties the operation log, mirroring a
// backend erasing its surface.
func (rec *Recorder) Clear() {
	rec.Ops = rec.Ops[:0]
	rec.Clears++
}

// Polyline implements Surface. The point chain is copied, never aliased.
func (rec *Recorder) Polyline(points []bezier.Pair, style Style) {
	chain := make([]bezier.Pair, len(points))
	copy(chain, points)
	rec.Ops = append(rec.Ops, Op{Kind: OpPolyline, Points: chain, Style: style})
}

// FilledCircle implements Surface.
func (rec *Recorder) FilledCircle(center bezier.Pair, radius float64, color Color) {
	rec.Ops = append(rec.Ops, Op{
		Kind:   OpCircle,
		Points: []bezier.Pair{center},
		Radius: radius,
		Color:  color,
	})
}

// Segment implements Surface.
func (rec *Recorder) Segment(a, b bezier.Pair, style Style) {
	rec.Ops = append(rec.Ops, Op{Kind: OpSegment, Points: []bezier.Pair{a, b}, Style: style})
}

// Count returns the number of recorded operations of a kind.
func (rec *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range rec.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Last returns the most recent operation of a kind, and whether one was
// recorded at all.
func (rec *Recorder) Last(kind OpKind) (Op, bool) {
	for i := len(rec.Ops) - 1; i >= 0; i-- {
		if rec.Ops[i].Kind == kind {
			return rec.Ops[i], true
		}
	}
	return Op{}, false
}
