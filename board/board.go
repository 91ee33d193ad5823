// Package board backs a render.Surface with an offscreen Cairo image
// surface, for use from a GTK drawing area.
/*

GTK repaints a drawing area from scratch on every "draw" signal, while the
editor's surfaces accumulate output between frames. A Board resolves this
mismatch: the editor draws into the board's offscreen surface whenever it
likes, and the host blits the accumulated picture onto the widget's Cairo
context from its draw handler:

   drawArea.Connect("draw", func(da *gtk.DrawingArea, cr *cairo.Context) {
      primary.Draw(cr)
   })

Cairo has no error return on drawing calls; in line with the editor's
silent-degradation contract the board validates incoming geometry itself,
drops invalid coordinates, and notes them in the trace.

Boards require cgo and a Cairo installation. Headless tests of the editor
use render.Recorder instead.


BSD License

All rights reserved.

Please refer to the license file for more information.
*/
package board

import (
	"errors"
	"fmt"
	"math"

	"github.com/R46narok/bezier-hodograph"
	"github.com/R46narok/bezier-hodograph/render"
	"github.com/gotk3/gotk3/cairo"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'editor'
func tracer() tracing.Trace {
	return tracing.Select("editor")
}

// ErrInvalidSize indicates a board dimension of less than one pixel.
var ErrInvalidSize = errors.New("board needs positive width and height")

// Board is a render.Surface drawing into an offscreen Cairo image
// surface. Like every Surface it accumulates output until Clear; the
// accumulated picture is blitted with Draw. A Board is confined to the
// GUI main loop, it is not safe for concurrent use.
type Board struct {
	width   int
	height  int
	surface *cairo.Surface
	cr      *cairo.Context
}

// New creates a white board of width x height pixels.
func New(width, height int) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	surface := cairo.CreateImageSurface(cairo.FORMAT_ARGB32, width, height)
	b := &Board{
		width:   width,
		height:  height,
		surface: surface,
		cr:      cairo.Create(surface),
	}
	b.Clear()
	return b, nil
}

// Size returns the board's dimensions in pixels.
func (b *Board) Size() (int, int) {
	return b.width, b.height
}

// Clear implements render.Surface: it paints the whole board white.
func (b *Board) Clear() {
	b.cr.SetSourceRGB(1, 1, 1)
	b.cr.Rectangle(0, 0, float64(b.width), float64(b.height))
	b.cr.Fill()
}

// Polyline implements render.Surface.
func (b *Board) Polyline(points []bezier.Pair, style render.Style) {
	if len(points) < 2 {
		tracer().Debugf("dropping polyline of %d points", len(points))
		return
	}
	for _, p := range points {
		if !p.IsValid() {
			tracer().Errorf("dropping polyline with invalid point %s", p)
			return
		}
	}
	b.cr.SetSourceRGB(style.Color.R, style.Color.G, style.Color.B)
	b.cr.SetDash(style.Dash, 0)
	b.cr.MoveTo(points[0].X(), points[0].Y())
	for _, p := range points[1:] {
		b.cr.LineTo(p.X(), p.Y())
	}
	b.cr.SetLineWidth(style.Width)
	b.cr.Stroke()
}

// FilledCircle implements render.Surface.
func (b *Board) FilledCircle(center bezier.Pair, radius float64, color render.Color) {
	if !center.IsValid() || radius <= 0 {
		tracer().Errorf("dropping circle at %s with radius %g", center, radius)
		return
	}
	b.cr.SetSourceRGB(color.R, color.G, color.B)
	b.cr.Arc(center.X(), center.Y(), radius, 0, 2*math.Pi)
	b.cr.Fill()
}

// Segment implements render.Surface.
func (b *Board) Segment(a, p bezier.Pair, style render.Style) {
	if !a.IsValid() || !p.IsValid() {
		tracer().Errorf("dropping segment %s..%s", a, p)
		return
	}
	b.stroke(a, p, style)
}

// Draw blits the accumulated picture onto a widget's Cairo context. Call
// this from the drawing area's "draw" handler.
func (b *Board) Draw(cr *cairo.Context) {
	b.surface.Flush()
	cr.SetSourceSurface(b.surface, 0, 0)
	cr.Paint()
}

func (b *Board) stroke(a, p bezier.Pair, style render.Style) {
	b.cr.SetSourceRGB(style.Color.R, style.Color.G, style.Color.B)
	b.cr.SetDash(style.Dash, 0)
	b.cr.MoveTo(a.X(), a.Y())
	b.cr.LineTo(p.X(), p.Y())
	b.cr.SetLineWidth(style.Width)
	b.cr.Stroke()
}
