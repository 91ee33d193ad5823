package main

import (
	"flag"
	"log"

	"github.com/R46narok/bezier-hodograph"
	"github.com/R46narok/bezier-hodograph/anim"
	"github.com/R46narok/bezier-hodograph/board"
	"github.com/R46narok/bezier-hodograph/editor"
	"github.com/gotk3/gotk3/cairo"
	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
)

func main() {
	widthFlag := flag.Int("width", 600, "Width of each drawing surface")
	heightFlag := flag.Int("height", 400, "Height of each drawing surface")
	stepsFlag := flag.Int("steps", anim.DefaultSteps, "Animation frames per run")
	flag.Parse()

	gtk.Init(nil)

	primary, err := board.New(*widthFlag, *heightFlag)
	if err != nil {
		log.Fatal(err)
	}
	secondary, err := board.New(*widthFlag, *heightFlag)
	if err != nil {
		log.Fatal(err)
	}

	size := bezier.P(float64(*widthFlag), float64(*heightFlag))
	ed := editor.New(primary, secondary, size, *stepsFlag)

	win, err := gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
	if err != nil {
		log.Fatal(err)
	}
	win.SetTitle("Bézier Hodograph")
	win.Connect("destroy", func() {
		gtk.MainQuit()
	})

	initWindow(win, ed, primary, secondary)

	win.ShowAll()
	gtk.Main()
}

func initWindow(win *gtk.Window, ed *editor.Editor, primary, secondary *board.Board) {
	body := newBox(gtk.ORIENTATION_VERTICAL)
	buttons := newBox(gtk.ORIENTATION_HORIZONTAL)
	boards := newBox(gtk.ORIENTATION_HORIZONTAL)

	addButton := newButton("Add points")
	animateButton := newButton("Animate")
	resetButton := newButton("Reset")
	buttons.PackStart(addButton, false, false, 0)
	buttons.PackStart(animateButton, false, false, 0)
	buttons.PackStart(resetButton, false, false, 0)

	curveArea := newArea(primary)
	hodographArea := newArea(secondary)
	boards.PackStart(curveArea, true, true, 0)
	boards.PackStart(hodographArea, true, true, 0)

	body.PackStart(buttons, false, false, 0)
	body.PackStart(boards, true, true, 0)
	win.Add(body)

	addButton.Connect("clicked", func() {
		ed.EnterAddMode()
	})
	animateButton.Connect("clicked", func() {
		ed.Animate()
	})
	resetButton.Connect("clicked", func() {
		ed.Reset()
		curveArea.QueueDraw()
		hodographArea.QueueDraw()
	})

	curveArea.AddEvents(int(gdk.BUTTON_PRESS_MASK))
	curveArea.AddEvents(int(gdk.BUTTON_RELEASE_MASK))
	curveArea.AddEvents(int(gdk.POINTER_MOTION_MASK))

	// Animation frames advance in the draw handler, so all editor calls
	// stay on the GTK main loop.
	curveArea.Connect("draw", func(da *gtk.DrawingArea, cr *cairo.Context) {
		ed.StepRuns()
		primary.Draw(cr)
	})
	hodographArea.Connect("draw", func(da *gtk.DrawingArea, cr *cairo.Context) {
		secondary.Draw(cr)
	})

	curveArea.Connect("button-press-event", func(da *gtk.DrawingArea, event *gdk.Event) {
		b := gdk.EventButtonNewFromEvent(event)
		p := bezier.P(b.X(), b.Y())
		ed.PointerDown(p)
		ed.Click(p)
		da.QueueDraw()
	})
	curveArea.Connect("motion-notify-event", func(da *gtk.DrawingArea, event *gdk.Event) {
		b := gdk.EventButtonNewFromEvent(event)
		ed.PointerMove(bezier.P(b.X(), b.Y()))
		da.QueueDraw()
		hodographArea.QueueDraw()
	})
	curveArea.Connect("button-release-event", func(da *gtk.DrawingArea, event *gdk.Event) {
		ed.PointerUp()
	})

	// Repaint ticker on the GTK main loop, so every widget call stays there.
	glib.TimeoutAdd(16, func() bool {
		curveArea.QueueDraw()
		hodographArea.QueueDraw()
		return true
	})
}

func newBox(orientation gtk.Orientation) *gtk.Box {
	box, err := gtk.BoxNew(orientation, 4)
	if err != nil {
		log.Fatal(err)
	}
	return box
}

func newButton(label string) *gtk.Button {
	button, err := gtk.ButtonNewWithLabel(label)
	if err != nil {
		log.Fatal(err)
	}
	return button
}

func newArea(b *board.Board) *gtk.DrawingArea {
	area, err := gtk.DrawingAreaNew()
	if err != nil {
		log.Fatal(err)
	}
	width, height := b.Size()
	area.SetSizeRequest(width, height)
	return area
}
