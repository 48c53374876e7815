package ui

import (
	"image/color"
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"TouchBoard/internal/geom"
	"TouchBoard/internal/gesture"
)

// BoardWidget hosts the gesture core inside a Fyne widget. It sources mouse
// input as pointer events and renders the stroke snapshot plus the working
// buffer under the current viewport transform.
//
// Desktop mapping: a primary-button drag acts as a stylus draw, a
// secondary-button drag as a stylus with the barrel button held (erase), a
// tertiary-button drag as a single touch finger (pan), and the scroll wheel
// zooms directly. Real touch and pinch input would feed the same core
// through HandlePointer on drivers that report it.
// canvas units between grid lines at scale 1
const gridSize = 50.0

type BoardWidget struct {
	widget.BaseWidget
	core *gesture.Board

	pointerSeq    gesture.PointerID
	activePointer gesture.PointerID
	activeDevice  gesture.Device
	activeButtons gesture.Buttons
	pressed       bool

	showGrid  bool
	statusBar *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(core *gesture.Board) *BoardWidget {
	b := &BoardWidget{
		core:      core,
		statusBar: widget.NewLabel("Ready"),
	}
	core.OnChanged = func() { b.Refresh() }
	core.OnEraseStart = func() { b.SetStatus("Erasing") }
	core.OnEraseEnd = func() { b.SetStatus("Ready") }
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Core() *gesture.Board { return b.core }

// SetStatus updates the status bar. Callers run on the Fyne event goroutine.
func (b *BoardWidget) SetStatus(text string) {
	b.statusBar.SetText(text)
}

func (b *BoardWidget) StatusBar() *widget.Label { return b.statusBar }

func devicePos(pos fyne.Position) geom.Point {
	return geom.Pt(float64(pos.X), float64(pos.Y))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if b.pressed {
		return
	}
	b.pointerSeq++
	b.activePointer = b.pointerSeq
	b.pressed = true

	switch e.Button {
	case desktop.MouseButtonSecondary:
		b.activeDevice = gesture.Stylus
		b.activeButtons = gesture.ButtonPrimary
	case desktop.MouseButtonTertiary:
		b.activeDevice = gesture.Touch
		b.activeButtons = 0
	default:
		b.activeDevice = gesture.Stylus
		b.activeButtons = 0
	}

	b.core.HandlePointer(gesture.Event{
		Kind:     gesture.Press,
		Pointer:  b.activePointer,
		Device:   b.activeDevice,
		Buttons:  b.activeButtons,
		Position: devicePos(e.Position),
		Time:     time.Now(),
	})

	if b.activeDevice == gesture.Touch {
		// No second finger can arrive from a mouse; close the classify
		// window once it elapses so the pan commits without motion.
		time.AfterFunc(gesture.ClassifyWindow, func() {
			fyne.Do(func() { b.core.Tick(time.Now()) })
		})
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.pressed {
		return
	}
	b.core.HandlePointer(gesture.Event{
		Kind:     gesture.Move,
		Pointer:  b.activePointer,
		Device:   b.activeDevice,
		Buttons:  b.activeButtons,
		Position: devicePos(e.Position),
		Time:     time.Now(),
	})
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if !b.pressed {
		return
	}
	b.pressed = false
	// The mapped barrel button is held for the whole gesture, so the
	// release keeps the mask; otherwise a stationary erase click would
	// classify as a draw and commit a stray point.
	b.core.HandlePointer(gesture.Event{
		Kind:     gesture.Release,
		Pointer:  b.activePointer,
		Device:   b.activeDevice,
		Buttons:  b.activeButtons,
		Position: devicePos(e.Position),
		Time:     time.Now(),
	})
}

func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	if e.Scrolled.DY > 0 {
		b.core.Transform.ApplyZoom(1.1)
	} else if e.Scrolled.DY < 0 {
		b.core.Transform.ApplyZoom(1 / 1.1)
	}
	b.Refresh()
}

func (b *BoardWidget) ZoomIn() {
	b.core.Transform.ApplyZoom(1.2)
	b.Refresh()
}

func (b *BoardWidget) ZoomOut() {
	b.core.Transform.ApplyZoom(1 / 1.2)
	b.Refresh()
}

func (b *BoardWidget) ResetView() {
	b.core.Transform.Reset()
	b.Refresh()
}

func (b *BoardWidget) ToggleGrid() {
	b.showGrid = !b.showGrid
	b.Refresh()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}
func (b *BoardWidget) DragEnd()                       {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type boardRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	core := r.board.core

	toScreen := func(p geom.Point) fyne.Position {
		d := core.Transform.ToDevice(p)
		return fyne.NewPos(float32(d.X), float32(d.Y))
	}

	objects := []fyne.CanvasObject{r.background}
	if r.board.showGrid {
		objects = append(objects, r.gridLines()...)
	}
	for _, st := range core.Strokes.Snapshot() {
		objects = appendPolyline(objects, st.Points, nameToColor(st.Color), float32(st.Width), toScreen)
	}
	if pts, ok := core.Strokes.Working(); ok {
		objects = appendPolyline(objects, pts, color.NRGBA{A: 128}, 2, toScreen)
	}
	return objects
}

func appendPolyline(objects []fyne.CanvasObject, pts []geom.Point, c color.Color, width float32, toScreen func(geom.Point) fyne.Position) []fyne.CanvasObject {
	if len(pts) == 1 {
		// A single committed point still needs to be visible.
		dot := canvas.NewCircle(c)
		pos := toScreen(pts[0])
		dot.Move(fyne.NewPos(pos.X-width/2, pos.Y-width/2))
		dot.Resize(fyne.NewSize(width, width))
		return append(objects, dot)
	}
	for i := 0; i < len(pts)-1; i++ {
		segment := canvas.NewLine(c)
		segment.StrokeWidth = width
		segment.Position1 = toScreen(pts[i])
		segment.Position2 = toScreen(pts[i+1])
		objects = append(objects, segment)
	}
	return objects
}

// gridLines covers the visible area with lines gridSize canvas units apart,
// shifted by the current pan so the grid moves with the content.
func (r *boardRenderer) gridLines() []fyne.CanvasObject {
	size := r.background.Size()
	spacing := float32(gridSize * r.board.core.Transform.Scale())
	if spacing < 4 {
		return nil
	}
	gridColor := color.NRGBA{R: 220, G: 220, B: 220, A: 100}
	off := r.board.core.Transform.Offset()

	var lines []fyne.CanvasObject
	startX := float32(math.Mod(off.X, float64(spacing)))
	if startX < 0 {
		startX += spacing
	}
	for x := startX; x < size.Width; x += spacing {
		line := canvas.NewLine(gridColor)
		line.Position1 = fyne.NewPos(x, 0)
		line.Position2 = fyne.NewPos(x, size.Height)
		line.StrokeWidth = 0.5
		lines = append(lines, line)
	}
	startY := float32(math.Mod(off.Y, float64(spacing)))
	if startY < 0 {
		startY += spacing
	}
	for y := startY; y < size.Height; y += spacing {
		line := canvas.NewLine(gridColor)
		line.Position1 = fyne.NewPos(0, y)
		line.Position2 = fyne.NewPos(size.Width, y)
		line.StrokeWidth = 0.5
		lines = append(lines, line)
	}
	return lines
}

func (r *boardRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Destroy() {}

// nameToColor resolves the small named palette strokes are stored with.
func nameToColor(name string) color.Color {
	switch name {
	case "red":
		return color.NRGBA{R: 255, A: 255}
	case "green":
		return color.NRGBA{G: 255, A: 255}
	case "blue":
		return color.NRGBA{B: 255, A: 255}
	case "yellow":
		return color.NRGBA{R: 255, G: 255, A: 255}
	}
	return color.Black
}

// colorToName is the inverse of nameToColor for toolbar swatches.
func colorToName(c color.Color) string {
	r, g, b, _ := c.RGBA()
	switch {
	case r == 65535 && g == 0 && b == 0:
		return "red"
	case r == 0 && g == 65535 && b == 0:
		return "green"
	case r == 0 && g == 0 && b == 65535:
		return "blue"
	case r == 65535 && g == 65535 && b == 0:
		return "yellow"
	}
	return "black"
}
