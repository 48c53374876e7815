package gesture

import (
	"TouchBoard/internal/board"
	"TouchBoard/internal/geom"
)

// drawHandler captures a freehand stroke. Points closer than minPointSpacing
// to the last accepted point are dropped; that threshold is the only
// smoothing the system applies.
type drawHandler struct {
	b        *Board
	pointer  PointerID
	last     geom.Point // canvas space, last accepted point
	finished bool
}

func newDrawHandler(b *Board, id PointerID, start geom.Point) *drawHandler {
	c := b.Transform.ToCanvas(start)
	b.Strokes.BeginStroke(c)
	if b.OnStrokeStart != nil {
		b.OnStrokeStart()
	}
	b.changed()
	return &drawHandler{b: b, pointer: id, last: c}
}

func (h *drawHandler) handle(ev Event) {
	if ev.Pointer != h.pointer {
		return
	}
	switch ev.Kind {
	case Move:
		c := h.b.Transform.ToCanvas(ev.Position)
		if c.Dist(h.last) > minPointSpacing {
			h.b.Strokes.ExtendStroke(c)
			h.last = c
			h.b.changed()
		}
	case Release, Cancel:
		st, ok := h.b.Strokes.FinishStroke(h.b.color, h.b.width)
		if ok && h.b.OnStrokeEnd != nil {
			h.b.OnStrokeEnd(st)
		}
		h.finished = true
		h.b.changed()
	}
}

func (h *drawHandler) done() bool { return h.finished }

// eraseHandler removes every stroke the eraser disc touches as the stylus
// moves. Removal is immediate; there is no undo.
type eraseHandler struct {
	b        *Board
	pointer  PointerID
	finished bool
}

func newEraseHandler(b *Board, id PointerID) *eraseHandler {
	if b.OnEraseStart != nil {
		b.OnEraseStart()
	}
	return &eraseHandler{b: b, pointer: id}
}

func (h *eraseHandler) handle(ev Event) {
	if ev.Pointer != h.pointer {
		return
	}
	switch ev.Kind {
	case Move:
		h.eraseAt(ev.Position)
	case Release, Cancel:
		if h.b.OnEraseEnd != nil {
			h.b.OnEraseEnd()
		}
		h.finished = true
	}
}

func (h *eraseHandler) eraseAt(devPos geom.Point) {
	p := h.b.Transform.ToCanvas(devPos)
	radius := eraserSize / h.b.Transform.Scale()
	n := h.b.Strokes.RemoveWhere(func(st board.Stroke) bool {
		return board.Intersects(st, p, radius)
	})
	if n > 0 {
		h.b.changed()
	}
}

func (h *eraseHandler) done() bool { return h.finished }

// panHandler translates the viewport by the device-space delta of a single
// finger.
type panHandler struct {
	b        *Board
	pointer  PointerID
	last     geom.Point // device space
	finished bool
}

func newPanHandler(b *Board, id PointerID, start geom.Point) *panHandler {
	return &panHandler{b: b, pointer: id, last: start}
}

func (h *panHandler) handle(ev Event) {
	if ev.Pointer != h.pointer {
		return
	}
	switch ev.Kind {
	case Move:
		h.b.Transform.ApplyPan(ev.Position.Sub(h.last))
		h.last = ev.Position
		h.b.changed()
	case Release, Cancel:
		h.finished = true
	}
}

func (h *panHandler) done() bool { return h.finished }

// panZoomHandler tracks two or more fingers, zooming by the ratio of
// successive mean pairwise distances and panning by the centroid delta.
// It finishes once fewer than two tracked fingers remain pressed.
type panZoomHandler struct {
	b            *Board
	points       map[PointerID]geom.Point // device positions of pressed fingers
	lastCentroid geom.Point
	lastDist     float64
	seeded       bool
	finished     bool
}

func newPanZoomHandler(b *Board, first PointerID, pos geom.Point) *panZoomHandler {
	return &panZoomHandler{
		b:      b,
		points: map[PointerID]geom.Point{first: pos},
	}
}

func (h *panZoomHandler) handle(ev Event) {
	switch ev.Kind {
	case Press:
		h.points[ev.Pointer] = ev.Position
		// Reseed so the arriving finger does not jump the view.
		h.seeded = false
		h.sample()
	case Move:
		if _, ok := h.points[ev.Pointer]; !ok {
			return
		}
		h.points[ev.Pointer] = ev.Position
		h.sample()
	case Release, Cancel:
		delete(h.points, ev.Pointer)
		if len(h.points) < 2 {
			h.finished = true
			return
		}
		h.seeded = false
		h.sample()
	}
}

// sample recomputes centroid and mean pairwise distance, applies the deltas
// against the previous sample if one exists, and records the new sample to
// seed the next delta.
func (h *panZoomHandler) sample() {
	if len(h.points) < 2 {
		return
	}
	centroid, dist := h.measure()
	if h.seeded {
		if h.lastDist > distEpsilon {
			h.b.Transform.ApplyZoom(dist / h.lastDist)
		}
		h.b.Transform.ApplyPan(centroid.Sub(h.lastCentroid))
		h.b.changed()
	}
	h.lastCentroid = centroid
	h.lastDist = dist
	h.seeded = true
}

func (h *panZoomHandler) measure() (geom.Point, float64) {
	pts := make([]geom.Point, 0, len(h.points))
	var c geom.Point
	for _, p := range h.points {
		c = c.Add(p)
		pts = append(pts, p)
	}
	n := float64(len(pts))
	c = geom.Pt(c.X/n, c.Y/n)

	var sum float64
	var pairs int
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			sum += pts[i].Dist(pts[j])
			pairs++
		}
	}
	return c, sum / float64(pairs)
}

func (h *panZoomHandler) done() bool { return h.finished }
