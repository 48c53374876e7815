package geom

import "sync"

// Scale bounds for the viewport. Zooming past either end clamps to the bound.
const (
	MinScale = 0.2
	MaxScale = 10.0
)

// Transform maps device-space coordinates to canvas-space and back using a
// uniform scale and a translation offset. It is shared between the active
// gesture handler (the single writer) and the renderer, so all access goes
// through the mutex.
type Transform struct {
	mu     sync.RWMutex
	scale  float64
	offset Point
}

func NewTransform() *Transform {
	return &Transform{scale: 1.0}
}

// ToCanvas converts a device-space point to canvas space under the current
// scale and offset.
func (t *Transform) ToCanvas(p Point) Point {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return Point{
		X: (p.X - t.offset.X) / t.scale,
		Y: (p.Y - t.offset.Y) / t.scale,
	}
}

// ToDevice is the inverse of ToCanvas.
func (t *Transform) ToDevice(p Point) Point {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return Point{
		X: p.X*t.scale + t.offset.X,
		Y: p.Y*t.scale + t.offset.Y,
	}
}

// ApplyZoom multiplies the scale by factor, clamping the result to
// [MinScale, MaxScale].
func (t *Transform) ApplyZoom(factor float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scale *= factor
	if t.scale < MinScale {
		t.scale = MinScale
	}
	if t.scale > MaxScale {
		t.scale = MaxScale
	}
}

// ApplyPan adds delta to the translation offset. The offset is unclamped.
func (t *Transform) ApplyPan(delta Point) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.offset = t.offset.Add(delta)
}

// Reset restores the identity viewport: scale 1, no offset.
func (t *Transform) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scale = 1.0
	t.offset = Point{}
}

func (t *Transform) Scale() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.scale
}

func (t *Transform) Offset() Point {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.offset
}
