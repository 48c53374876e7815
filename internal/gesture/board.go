package gesture

import (
	"log"
	"time"

	"TouchBoard/internal/board"
	"TouchBoard/internal/geom"
)

const (
	// ClassifyWindow is how long the classifier waits for a second touch
	// pointer before committing a single finger to Pan.
	ClassifyWindow = 100 * time.Millisecond

	// minPointSpacing is the minimum canvas-space distance between accepted
	// stroke points; closer samples are discarded as jitter.
	minPointSpacing = 2.0

	// eraserSize is the eraser radius in device units. The canvas-space
	// radius is eraserSize / scale so the eraser keeps its apparent size at
	// any zoom.
	eraserSize = 30.0

	// distEpsilon guards the pinch zoom ratio against a degenerate previous
	// distance.
	distEpsilon = 1e-6
)

type phase uint8

const (
	phaseClassifyStylus phase = iota
	phaseClassifyTouch
	phaseRunning
	phaseDraining
)

// handler consumes the events of one committed gesture until it reports done.
type handler interface {
	handle(ev Event)
	done() bool
}

// session is the ephemeral per-gesture state: the tracked pointer set, the
// classification phase, and the committed handler once one exists. It is
// created on the first pointer-down and destroyed when every tracked pointer
// has released.
type session struct {
	phase   phase
	device  Device
	first   Event
	latest  geom.Point // most recent device position of the first pointer
	pressed map[PointerID]bool
	moves   []Event // moves buffered while the touch classify window is open
	gesture Gesture
	h       handler
}

func newSession(ev Event) *session {
	return &session{
		device:  ev.Device,
		first:   ev,
		latest:  ev.Position,
		pressed: map[PointerID]bool{ev.Pointer: true},
	}
}

// Board is the gesture core: it owns the shared viewport Transform and the
// stroke Store and turns a raw pointer event stream into stroke and
// transform mutations. Events must be delivered sequentially; the renderer
// reads snapshots on its own cadence.
type Board struct {
	Transform *geom.Transform
	Strokes   *board.Store

	// Live-preview signals for the host renderer. All optional.
	OnStrokeStart func()
	OnStrokeEnd   func(board.Stroke)
	OnEraseStart  func()
	OnEraseEnd    func()
	OnChanged     func()

	color string
	width float64
	sess  *session
}

func NewBoard() *Board {
	return &Board{
		Transform: geom.NewTransform(),
		Strokes:   board.NewStore(),
		color:     board.DefaultColor,
		width:     board.DefaultWidth,
	}
}

// SetColor sets the color applied to strokes committed from now on.
func (b *Board) SetColor(c string) { b.color = c }

// SetWidth sets the line width applied to strokes committed from now on.
func (b *Board) SetWidth(w float64) { b.width = w }

// Clear removes every committed stroke.
func (b *Board) Clear() {
	b.Strokes.RemoveWhere(func(board.Stroke) bool { return true })
	b.changed()
}

func (b *Board) changed() {
	if b.OnChanged != nil {
		b.OnChanged()
	}
}

// HandlePointer feeds one pointer event through classification and the
// active gesture handler. It reports whether the event was consumed; events
// referencing untracked pointers are ignored.
func (b *Board) HandlePointer(ev Event) bool {
	if b.sess == nil {
		if ev.Kind != Press {
			return false
		}
		b.sess = newSession(ev)
		if ev.Device == Stylus {
			b.sess.phase = phaseClassifyStylus
		} else {
			b.sess.phase = phaseClassifyTouch
		}
		return true
	}
	switch b.sess.phase {
	case phaseClassifyStylus:
		return b.classifyStylus(ev)
	case phaseClassifyTouch:
		return b.classifyTouch(ev)
	case phaseRunning:
		return b.run(ev)
	default:
		return b.drain(ev)
	}
}

// Tick drives the classifier's second-pointer window when no pointer event
// arrives to do it. The host calls it once the window may have elapsed.
func (b *Board) Tick(now time.Time) {
	s := b.sess
	if s == nil || s.phase != phaseClassifyTouch {
		return
	}
	if now.Sub(s.first.Time) >= ClassifyWindow {
		b.commit(GesturePan)
	}
}

// classifyStylus peeks the button state of the next event for the stylus
// pointer: barrel (primary) button held means erase, anything else draws.
// A secondary-button eraser variant is intentionally not mapped.
func (b *Board) classifyStylus(ev Event) bool {
	if ev.Pointer != b.sess.first.Pointer {
		return false
	}
	if ev.Buttons&ButtonPrimary != 0 {
		b.commit(GestureErase)
	} else {
		b.commit(GestureDraw)
	}
	return b.run(ev)
}

// classifyTouch waits up to ClassifyWindow for a second touch pointer. A
// second press inside the window commits Pan+Zoom; the window elapsing, or
// the first pointer releasing, commits Pan. Moves inside the window are
// buffered and replayed into the pan handler so no motion is lost.
func (b *Board) classifyTouch(ev Event) bool {
	s := b.sess
	elapsed := ev.Time.Sub(s.first.Time)
	if ev.Kind == Press && ev.Pointer != s.first.Pointer {
		if elapsed <= ClassifyWindow {
			b.commit(GesturePanZoom)
		} else {
			// Too late: the gesture stays single-finger. The late pointer
			// is never adopted.
			b.commit(GesturePan)
		}
		return b.run(ev)
	}
	if ev.Pointer != s.first.Pointer {
		return false
	}
	if elapsed > ClassifyWindow || ev.Kind == Release || ev.Kind == Cancel {
		b.commit(GesturePan)
		return b.run(ev)
	}
	if ev.Kind == Move {
		s.latest = ev.Position
		s.moves = append(s.moves, ev)
	}
	return true
}

// commit fixes the classification for this session and builds its handler.
// Classification happens once per gesture and is never re-evaluated.
func (b *Board) commit(g Gesture) {
	s := b.sess
	s.gesture = g
	switch g {
	case GestureDraw:
		s.h = newDrawHandler(b, s.first.Pointer, s.first.Position)
	case GestureErase:
		s.h = newEraseHandler(b, s.first.Pointer)
	case GesturePan:
		s.h = newPanHandler(b, s.first.Pointer, s.first.Position)
		for _, mv := range s.moves {
			s.h.handle(mv)
		}
	case GesturePanZoom:
		s.h = newPanZoomHandler(b, s.first.Pointer, s.latest)
	}
	s.moves = nil
	s.phase = phaseRunning
	log.Printf("[gesture] classified %s (%s)", g, s.device)
}

func (b *Board) run(ev Event) bool {
	s := b.sess
	tracked := s.pressed[ev.Pointer]
	// Only a running pan+zoom adopts additional pointers; every other
	// gesture ignores pointers it was not classified with.
	if !tracked && !(ev.Kind == Press && s.gesture == GesturePanZoom) {
		return false
	}
	switch ev.Kind {
	case Press:
		s.pressed[ev.Pointer] = true
	case Release, Cancel:
		delete(s.pressed, ev.Pointer)
	}
	s.h.handle(ev)
	if s.h.done() {
		if len(s.pressed) == 0 {
			b.sess = nil
		} else {
			s.phase = phaseDraining
		}
	}
	return true
}

// drain swallows the remaining events of tracked pointers after the handler
// finished early (pan+zoom dropping below two fingers) until all release.
func (b *Board) drain(ev Event) bool {
	s := b.sess
	if !s.pressed[ev.Pointer] {
		return false
	}
	if ev.Kind == Release || ev.Kind == Cancel {
		delete(s.pressed, ev.Pointer)
		if len(s.pressed) == 0 {
			b.sess = nil
		}
	}
	return true
}
